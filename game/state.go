package game

import (
	"strings"

	"minichess/meta"
	"minichess/utils"
)

// Board is a 4x4 grid indexed by [row][col].
type Board [Rows][Cols]Piece

// StartingBoard returns the standard minichess setup.
func StartingBoard() Board {
	back := func(white bool) [Cols]Piece {
		return [Cols]Piece{{Rook, white}, {Queen, white}, {King, white}, {Rook, white}}
	}
	pawns := func(white bool) [Cols]Piece {
		return [Cols]Piece{{Pawn, white}, {Pawn, white}, {Pawn, white}, {Pawn, white}}
	}
	return Board{back(true), pawns(true), pawns(false), back(false)}
}

// after returns a copy of the board with the move's piece relocated.
func (b Board) after(move Move) Board {
	from, to := move.From(), move.To()
	b[to.Row][to.Col] = b[from.Row][from.Col]
	b[from.Row][from.Col] = Piece{}
	return b
}

// State is an immutable snapshot of a minichess game. Play returns a new State.
type State struct {
	board       Board
	whiteToMove bool
	moveCount   int
	legalMoves  []Move
}

// NewGame returns the starting position with White to move.
func NewGame() *State {
	return NewState(StartingBoard(), true, 0)
}

// NewState builds a position and computes its legal moves. It panics with an
// InvariantError if the side to move could already capture the opposing king.
func NewState(board Board, whiteToMove bool, moveCount int) *State {
	s := &State{
		board:       board,
		whiteToMove: whiteToMove,
		moveCount:   moveCount,
	}
	s.legalMoves = s.computeLegalMoves()
	return s
}

func (s *State) computeLegalMoves() []Move {
	moves, checks := pseudoLegalMoves(&s.board, s.whiteToMove)
	if len(checks) > 0 {
		panic(InvariantError{FEN: s.FEN()})
	}

	// Drop moves that leave the mover's king capturable on the reply
	legal := make([]Move, 0, len(moves))
	for _, move := range moves {
		next := s.board.after(move)
		if _, replies := pseudoLegalMoves(&next, !s.whiteToMove); len(replies) == 0 {
			legal = append(legal, move)
		}
	}
	return legal
}

// LegalMoves returns the moves available to the side to move in generation order.
func (s *State) LegalMoves() []Move {
	moves := make([]Move, len(s.legalMoves))
	copy(moves, s.legalMoves)
	return moves
}

// IsLegal reports whether move can be played from this position.
func (s *State) IsLegal(move Move) bool {
	return utils.FindIndex(s.legalMoves, move) >= 0
}

// Play returns the position after move, or ErrInvalidMove.
func (s *State) Play(move Move) (*State, error) {
	if !s.IsLegal(move) {
		return nil, errorf(ErrInvalidMove, "move %q", move)
	}
	return NewState(s.board.after(move), !s.whiteToMove, s.moveCount+1), nil
}

// Replay plays moves from the standard position and returns the final state.
// It fails with ErrInvalidMove at the first move that is illegal or comes
// after the game is over.
func Replay(moves []Move) (*State, error) {
	state := NewGame()
	for i, move := range moves {
		if state.IsTerminal() {
			return nil, errorf(ErrInvalidMove, "move %d %q after the game is over", i+1, move)
		}
		next, err := state.Play(move)
		if err != nil {
			return nil, errorf(err, "move %d", i+1)
		}
		state = next
	}
	return state, nil
}

// Winner reports the outcome. A side without legal moves loses, whether or
// not its king is attacked.
func (s *State) Winner() Outcome {
	switch {
	case s.moveCount >= meta.MaxMoves:
		return Draw
	case len(s.legalMoves) > 0:
		return NoOutcome
	case s.whiteToMove:
		return BlackWins
	default:
		return WhiteWins
	}
}

// IsTerminal reports whether the game is over in this position.
func (s *State) IsTerminal() bool {
	return s.Winner() != NoOutcome
}

// InCheck reports whether the given side's king is attacked by the opponent.
func (s *State) InCheck(white bool) bool {
	_, checks := pseudoLegalMoves(&s.board, !white)
	return len(checks) > 0
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) PieceAt(sq Square) Piece {
	return s.board[sq.Row][sq.Col]
}

func (s *State) WhiteToMove() bool {
	return s.whiteToMove
}

func (s *State) MoveCount() int {
	return s.moveCount
}

// FEN describes the piece placement from rank 4 down to rank 1. Every empty
// square is written as "1" and every row is padded with "4" so the 4x4 board
// can be shown in the corner of a regular 8x8 diagram.
func (s *State) FEN() string {
	rows := make([]string, 0, Rows)
	for row := Rows - 1; row >= 0; row-- {
		var sb strings.Builder
		for _, piece := range s.board[row] {
			sb.WriteString(piece.FEN())
		}
		sb.WriteString("4")
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "/")
}

// AnalysisURL links to an external analysis board showing the position.
func (s *State) AnalysisURL() string {
	return "https://lichess.org/analysis/standard/8/8/8/8/" + s.FEN()
}

func (s *State) String() string {
	return s.FEN()
}
