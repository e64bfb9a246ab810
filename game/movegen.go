package game

type direction struct {
	dy, dx int
}

var (
	straight = []direction{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonal = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

type captureRule int

const (
	mayCapture captureRule = iota
	mustCapture
	cannotCapture
)

// pseudoLegalMoves scans the board row by row and returns every move of the
// given side, ignoring whether it exposes its own king. Moves that would take
// the enemy king are returned separately as checks: kings are never captured.
func pseudoLegalMoves(b *Board, white bool) (moves, checks []Move) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			piece := b[row][col]
			if piece.IsEmpty() || piece.White != white {
				continue
			}
			from := Square{Row: row, Col: col}

			switch piece.Kind {
			case Pawn:
				// Pawns only ever advance towards the opponent's back rank
				dy := 1
				if !white {
					dy = -1
				}
				moves, checks = slide(b, moves, checks, from, white, direction{dy, 0}, 1, cannotCapture)
				moves, checks = slide(b, moves, checks, from, white, direction{dy, 1}, 1, mustCapture)
				moves, checks = slide(b, moves, checks, from, white, direction{dy, -1}, 1, mustCapture)
			case Rook:
				for _, d := range straight {
					moves, checks = slide(b, moves, checks, from, white, d, 0, mayCapture)
				}
			case Queen:
				for _, d := range straight {
					moves, checks = slide(b, moves, checks, from, white, d, 0, mayCapture)
				}
				for _, d := range diagonal {
					moves, checks = slide(b, moves, checks, from, white, d, 0, mayCapture)
				}
			case King:
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dy == 0 && dx == 0 {
							continue
						}
						moves, checks = slide(b, moves, checks, from, white, direction{dy, dx}, 1, mayCapture)
					}
				}
			}
		}
	}
	return moves, checks
}

// slide walks from a square in one direction until it leaves the board, hits
// a piece or exhausts limit steps (0 means unlimited).
func slide(b *Board, moves, checks []Move, from Square, white bool, d direction, limit int, rule captureRule) ([]Move, []Move) {
	for step := 1; limit == 0 || step <= limit; step++ {
		to := from.offset(d.dy*step, d.dx*step)
		if !to.OnBoard() {
			break
		}

		target := b[to.Row][to.Col]
		move := NewMove(from, to)
		if target.IsEmpty() {
			if rule != mustCapture {
				moves = append(moves, move)
			}
			continue
		}

		if target.White != white && rule != cannotCapture {
			if target.Kind == King {
				checks = append(checks, move)
			} else {
				moves = append(moves, move)
			}
		}
		break
	}
	return moves, checks
}
