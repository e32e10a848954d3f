package searcher

import (
	"kalah/experiments/metrics"
	"kalah/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a brute-force fixed-depth searcher: no pruning, no caching.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    MaxDepth,
		evaluate: game.EvaluateStores,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches for the player to move and reports search statistics
// (zero values unless WithMetrics was given).
func (m *Minimax) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	move, score, found := m.pickMove(state, state.Actor)
	m.metrics.SetBestScore(score)
	metric := m.metrics.Complete()

	if !found {
		log.Warn().Msgf("no legal move for %s on %s, falling back to %d", state.Actor, state.Board, move.Encode())
	}
	log.Debug().Msgf("%s picked %d (score %d) after %d nodes", state.Actor, move.Encode(), score, metric.Nodes)
	return move, metric
}

// ChooseMove picks forPlayer's move with the strictly greatest evaluation;
// ties go to the lowest pit. Without any legal move it returns pit 1.
func (m *Minimax) ChooseMove(state *game.GameState, forPlayer game.Player) game.Move {
	move, _, _ := m.pickMove(state, forPlayer)
	return move
}

func (m *Minimax) pickMove(state *game.GameState, forPlayer game.Player) (game.Move, int, bool) {
	// The root is always searched as if forPlayer were to move.
	root := state.Copy()
	root.Actor = forPlayer

	best := game.NewMove(forPlayer, 1)
	bestScore := 0
	found := false
	for pit := 1; pit <= game.PitsPerSide; pit++ {
		move := game.NewMove(forPlayer, pit)
		child := root.Copy()
		if child.Act(move) == game.Illegal {
			m.metrics.AddPruned()
			continue
		}

		score := m.Evaluate(child, forPlayer, m.depth)
		if !found || score > bestScore {
			best, bestScore, found = move, score, true
		}
	}
	return best, bestScore, found
}

// Evaluate maximizes on decideFor's turns and minimizes on the opponent's.
// A running position without any legal child is scored statically.
func (m *Minimax) Evaluate(state *game.GameState, decideFor game.Player, remainingDepth int) int {
	m.metrics.AddNode()
	if state.Ended || remainingDepth == 0 {
		m.metrics.AddLeaf()
		return m.evaluate(state, decideFor)
	}

	maximize := state.Actor == decideFor
	value := 0
	found := false
	for pit := 1; pit <= game.PitsPerSide; pit++ {
		child := state.Copy()
		if child.Act(game.NewMove(state.Actor, pit)) == game.Illegal {
			m.metrics.AddPruned()
			continue
		}

		v := m.Evaluate(child, decideFor, remainingDepth-1)
		if !found || (maximize && v > value) || (!maximize && v < value) {
			value, found = v, true
		}
	}

	if !found {
		m.metrics.AddLeaf()
		return m.evaluate(state, decideFor)
	}
	return value
}
