package agent

import (
	"kalah/experiments/metrics"
	"kalah/game"
	"kalah/searcher"
)

type evaluationAgent struct {
	searcher searcher.Searcher
}

// NewEvaluationAgent returns an agent that plays the searcher's best move.
func NewEvaluationAgent(s searcher.Searcher) Agent {
	return evaluationAgent{searcher: s}
}

func (a evaluationAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	return a.searcher.FindMove(state)
}
