package searcher

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pkg/errors"
)

const graphName = "gametree"

// WriteDOT renders the tree in Graphviz DOT. Nodes where White moves next are
// boxes, the others ellipses. Levels below maxDepth are left out; a negative
// maxDepth renders the whole tree.
func WriteDOT(root *Node, maxDepth int) (string, error) {
	graph := gographviz.NewGraph()
	if err := graph.SetName(graphName); err != nil {
		return "", errors.WithStack(err)
	}
	if err := graph.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	ids := 0
	var add func(n *Node, depth int) (string, error)
	add = func(n *Node, depth int) (string, error) {
		id := fmt.Sprintf("n%d", ids)
		ids++

		shape := "ellipse"
		if n.WhiteToMove {
			shape = "box"
		}
		attrs := map[string]string{
			"label": strconv.Quote(fmt.Sprintf("%s\n%.3f", n.Move, n.WhiteWinProbability)),
			"shape": shape,
		}
		if err := graph.AddNode(graphName, id, attrs); err != nil {
			return "", errors.Wrapf(err, "failed to add node %s", n.Move)
		}

		if maxDepth >= 0 && depth >= maxDepth {
			return id, nil
		}
		for _, child := range n.children {
			childID, err := add(child, depth+1)
			if err != nil {
				return "", err
			}
			if err := graph.AddEdge(id, childID, true, nil); err != nil {
				return "", errors.Wrapf(err, "failed to add edge to %s", child.Move)
			}
		}
		return id, nil
	}

	if _, err := add(root, 0); err != nil {
		return "", err
	}
	return graph.String(), nil
}
