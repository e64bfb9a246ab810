package game

// Square addresses a board cell. Row 0 is rank 1 (White's back rank), column
// 0 is file a.
type Square struct {
	Row int
	Col int
}

const (
	files = "abcd"
	ranks = "1234"
)

// ParseSquare converts algebraic coordinates such as "b3".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, errorf(ErrMalformedMove, "square %q", s)
	}
	col := indexOf(files, s[0])
	row := indexOf(ranks, s[1])
	if col < 0 || row < 0 {
		return Square{}, errorf(ErrMalformedMove, "square %q", s)
	}
	return Square{Row: row, Col: col}, nil
}

func (s Square) String() string {
	return string([]byte{files[s.Col], ranks[s.Row]})
}

// OnBoard reports whether the square lies within the 4x4 board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < Rows && s.Col >= 0 && s.Col < Cols
}

func (s Square) offset(dy, dx int) Square {
	return Square{Row: s.Row + dy, Col: s.Col + dx}
}

func indexOf(alphabet string, c byte) int {
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == c {
			return i
		}
	}
	return -1
}
