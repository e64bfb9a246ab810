package searcher

import "minichess/game"

// InsertSequence records a game as a chain of descendants: moves[0] becomes
// (or reuses) a child of n, moves[1] a child of that node, and so on. New
// nodes start with the given probability and alternate the side to move.
// Every node on the path refreshes its probability once its child is done,
// so repeated insertions keep the aggregates current.
func (n *Node) InsertSequence(moves []game.Move, whiteWinProbability float64) {
	n.insert(moves, 0, whiteWinProbability)
}

func (n *Node) insert(moves []game.Move, i int, whiteWinProbability float64) {
	if i == len(moves) {
		return
	}

	child := n.FindChild(moves[i])
	if child == nil {
		child = NewNode(moves[i], !n.WhiteToMove, whiteWinProbability)
		child.insert(moves, i+1, whiteWinProbability)
		n.AddChild(child)
		return
	}

	child.insert(moves, i+1, whiteWinProbability)
	n.update()
}
