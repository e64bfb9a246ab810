package game

import "unicode"

type Kind int

const (
	NoKind Kind = iota
	Rook
	Queen
	King
	Pawn
)

var kindLetters = map[Kind]rune{
	Rook:  'r',
	Queen: 'q',
	King:  'k',
	Pawn:  'p',
}

// Piece is a board occupant. The zero value is an empty square.
type Piece struct {
	Kind  Kind
	White bool
}

func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// FEN returns the piece letter, upper case for White.
func (p Piece) FEN() string {
	letter, ok := kindLetters[p.Kind]
	if !ok {
		return "1"
	}
	if p.White {
		letter = unicode.ToUpper(letter)
	}
	return string(letter)
}

func (p Piece) String() string {
	return p.FEN()
}
