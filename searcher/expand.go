package searcher

import "minichess/game"

// Expand builds the complete game tree of the given depth from state. The
// root holds rootMove; children follow the order of state.LegalMoves(). Leaves
// score 1.0 when White has won and 0.0 otherwise.
//
// The tree grows exponentially with depth; see meta.MaxExpansionDepth.
func Expand(rootMove game.Move, state *game.State, depth int) *Node {
	if depth < 0 {
		panic("cannot expand a negative depth")
	}

	node := NewNode(rootMove, state.WhiteToMove(), 0)
	if depth == 0 || state.IsTerminal() {
		if state.Winner() == game.WhiteWins {
			node.WhiteWinProbability = 1
		}
		return node
	}

	for _, move := range state.LegalMoves() {
		next, err := state.Play(move)
		if err != nil {
			panic(err)
		}
		node.AddChild(Expand(move, next, depth-1))
	}
	return node
}
