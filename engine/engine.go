package engine

import (
	"kalah/experiments/metrics"
	"kalah/game"
)

type Runner interface {
	// Run plays a game until it ends or the turn cap is reached
	Run() (winner game.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

var _ Runner = (*Engine)(nil)
