package searcher

import (
	"math"

	"kalah/game"
)

// node is a position in the search tree. Moves are expanded in LegalMoves
// order and children line up with moves by index.
type node struct {
	parent   *node
	player   game.Player // Player whose move led here
	moves    []game.Move
	children []*node
	rewards  float64
	visits   float64
}

func newNode(parent *node, player game.Player, state *game.GameState) *node {
	moves := state.LegalMoves()
	return &node{
		parent:   parent,
		player:   player,
		moves:    moves,
		children: make([]*node, 0, len(moves)),
	}
}

// selectOrExpand returns the next node on the way down together with its
// state. selected reports a fully expanded node handing over to one of its
// children, so the descent goes on.
func (n *node) selectOrExpand(state *game.GameState) (child *node, childState *game.GameState, selected bool) {
	if len(n.moves) == 0 { // Terminal node
		return n, state, false
	}

	if len(n.moves) > len(n.children) { // Expandable node
		move := n.moves[len(n.children)]
		next, _ := state.Play(move)
		child := newNode(n, move.Player, next)
		n.children = append(n.children, child)
		return child, next, false
	}

	// Fully expanded node
	ith := n.pickChild()
	next, _ := state.Play(n.moves[ith])
	return n.children[ith], next, true
}

func (n *node) pickChild() int {
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(CSquared, n.visits)

	maxIndex := -1
	maxScore := math.Inf(-1)
	for i, child := range n.children {
		score := policy.evaluate(child.rewards, child.visits)
		if score > maxScore {
			maxScore = score
			maxIndex = i
		}
	}
	return maxIndex
}

func (n *node) backup(reward func(game.Player) float64) *node {
	n.rewards += reward(n.player)
	n.visits++
	return n.parent
}

// bestMove returns the most visited move, the first one on ties.
func (n *node) bestMove() (game.Move, float64) {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := n.children[0].visits
	for i, child := range n.children[1:] {
		if child.visits > maxVisits {
			maxVisits = child.visits
			bestIndex = i + 1
		}
	}
	return n.moves[bestIndex], maxVisits
}
