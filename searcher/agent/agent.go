package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

type Agent interface {
	// FindMove returns the move to play for the actor of state and the
	// search metrics (zero values when none were collected)
	FindMove(state *game.GameState) (game.Move, metrics.SearchMetric)
}
