package agent

import (
	"testing"

	"kalah/game"
	"kalah/searcher"

	"github.com/stretchr/testify/require"
)

func TestEvaluationAgent(t *testing.T) {
	state := game.FromBoard(game.PlayerTwo, game.Board{4, 4, 4, 4, 4, 4, 0, 0, 0, 0, 0, 5, 0, 19})
	a := NewEvaluationAgent(searcher.NewMinimax(searcher.WithDepth(2), searcher.WithMetrics()))

	move, metric := a.FindMove(state)

	require.Equal(t, game.NewMove(game.PlayerTwo, 5), move, "Only legal pit should be played")
	require.Equal(t, 2, metric.Depth)
	require.Positive(t, metric.Nodes)
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent(42)
		state := game.NewGameState(game.PlayerOne)

		for !state.Ended {
			move, _ := a.FindMove(state)
			require.NoError(t, state.Check(move))
			state.Act(move)
		}
	})

	t.Run("is reproducible for a seed", func(t *testing.T) {
		a, b := NewRandomAgent(7), NewRandomAgent(7)
		state := game.NewGameState(game.PlayerOne)

		for i := 0; i < 10; i++ {
			ma, _ := a.FindMove(state)
			mb, _ := b.FindMove(state)
			require.Equal(t, ma, mb)
		}
	})

	t.Run("falls back to pit 1 without legal moves", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, game.Board{0, 0, 0, 0, 0, 0, 20, 4, 4, 4, 4, 4, 4, 4})

		move, _ := NewRandomAgent(1).FindMove(state)

		require.Equal(t, game.NewMove(game.PlayerOne, 1), move)
	})
}
