package searcher

import (
	"time"

	"kalah/experiments/metrics"
	"kalah/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type MCTSOption func(mcts *MCTS)

// MCTS is a Monte Carlo tree search with UCT selection and random rollouts.
// A fresh tree is grown for every move.
type MCTS struct {
	duration time.Duration
	episodes int
	cutoff   int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDuration(duration time.Duration) MCTSOption {
	return func(u *MCTS) {
		if duration > 0 {
			u.duration = duration
		}
	}
}

func WithEpisodes(episodes int) MCTSOption {
	return func(u *MCTS) {
		if episodes > 0 {
			u.episodes = episodes
		}
	}
}

func WithCutoff(depth int) MCTSOption {
	return func(u *MCTS) {
		if depth > 0 {
			u.cutoff = depth
		}
	}
}

// WithRolloutEvaluation scores rollouts stopped by the cutoff.
func WithRolloutEvaluation(evaluate game.Evaluate) MCTSOption {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithRolloutMetrics() MCTSOption {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...MCTSOption) *MCTS {
	m := &MCTS{ // Default values
		cutoff:   MaxCutoff,
		evaluate: game.EvaluateStores,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

// FindMove returns the most visited move of the player to move. Nodes counts
// episodes and BestScore the visits of the chosen move.
func (m *MCTS) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.cutoff)

	root := newNode(nil, game.NoPlayer, state)
	if len(root.moves) == 0 {
		move := game.NewMove(state.Actor, 1)
		log.Warn().Msgf("no legal move for %s on %s, falling back to %d", state.Actor, state.Board, move.Encode())
		return move, m.metrics.Complete()
	}

	if m.episodes > 0 {
		m.iterate(root, state)
	} else {
		m.countdown(root, state)
	}

	move, visits := root.bestMove()
	m.metrics.SetBestScore(int(visits))
	metric := m.metrics.Complete()

	log.Debug().Msgf("%s picked %d (%v visits) after %d episodes", state.Actor, move.Encode(), visits, metric.Nodes)
	return move, metric
}

func (m *MCTS) iterate(root *node, state *game.GameState) {
	for i := 0; i < m.episodes; i++ {
		m.simulate(root, state)
	}
}

func (m *MCTS) countdown(root *node, state *game.GameState) {
	deadline := time.Now().Add(m.duration)
	for time.Now().Before(deadline) {
		m.simulate(root, state)
	}
}

func (m *MCTS) simulate(root *node, state *game.GameState) {
	leaf, leafState := selectThenExpand(root, state)
	player, score := rollout(leafState, m.cutoff, m.evaluate, m.metrics)
	backup(leaf, rewarder(player, score))
	m.metrics.AddNode()
}

func selectThenExpand(root *node, state *game.GameState) (*node, *game.GameState) {
	parent := root
	child, state, selected := parent.selectOrExpand(state)
	for selected {
		parent = child
		child, state, selected = parent.selectOrExpand(state)
	}
	return child, state
}

// rollout plays random moves until the game ends or cutoff moves were made
// and returns a score in [Loss, Win] along with the player it is scored for.
func rollout(state *game.GameState, cutoff int, evaluate game.Evaluate, metrics metrics.Collector) (game.Player, float64) {
	depth := 0
	moves := state.LegalMoves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && (depth < cutoff) {
		move := moves[rand.Intn(len(moves))] // Random rollout policy
		state, _ = state.Play(move)
		moves = state.LegalMoves()
		depth++
	}
	metrics.AddLeaf()

	if state.Ended { // Game over before cutoff
		return state.Winner(), Win
	}

	// At cutoff state, return an evaluation score from current player's perspective
	return state.Actor, float64(evaluate(state, state.Actor)) / game.TotalStones
}

func backup(leaf *node, reward func(game.Player) float64) {
	n := leaf
	for n != nil {
		n = n.backup(reward)
	}
}
