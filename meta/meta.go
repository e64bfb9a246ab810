// meta/meta.go
package meta

// MaxMoves is the number of half-moves after which a game is drawn.
const MaxMoves = 50

// MaxExpansionDepth is the deepest complete game tree worth building; the
// tree grows exponentially beyond it.
const MaxExpansionDepth = 6

// RollingWindow is the number of recent games in a rolling win rate.
const RollingWindow = 50

// DefaultExplorationProbability is the exploring agent's chance to leave the tree.
const DefaultExplorationProbability = 0.5

// GraphDepth is how many tree levels an experiment's DOT rendering shows.
const GraphDepth = 3
