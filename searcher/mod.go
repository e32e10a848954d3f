package searcher

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

// MaxDepth is the number of plies searched below each root move.
const MaxDepth = 9

type Searcher interface {
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}

var defaultMinimax = NewMinimax()

// ChooseMove runs the default depth-9 search for forPlayer. When no move is
// legal it returns forPlayer's pit 1, which callers must not assume is legal.
func ChooseMove(state *game.GameState, forPlayer game.Player) game.Move {
	return defaultMinimax.ChooseMove(state, forPlayer)
}

// Evaluate scores state for decideFor by exhaustive minimax, looking
// remainingDepth plies ahead and using the store difference at the leaves.
func Evaluate(state *game.GameState, decideFor game.Player, remainingDepth int) int {
	return defaultMinimax.Evaluate(state, decideFor, remainingDepth)
}
