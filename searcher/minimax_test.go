package searcher

import (
	"testing"

	"kalah/game"

	"github.com/stretchr/testify/require"
)

var midGame = game.Board{1, 0, 2, 0, 3, 1, 18, 0, 2, 1, 0, 1, 2, 17}

func TestChooseMove(t *testing.T) {
	t.Run("only legal pit is returned regardless of its score", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, game.Board{0, 0, 0, 3, 0, 0, 20, 4, 4, 4, 4, 4, 1, 4})

		got := ChooseMove(state, game.PlayerOne)

		require.Equal(t, game.NewMove(game.PlayerOne, 4), got)
	})

	t.Run("falls back to pit 1 without any legal move", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, game.Board{0, 0, 0, 0, 0, 0, 20, 4, 4, 4, 4, 4, 4, 4})

		got := ChooseMove(state, game.PlayerOne)

		require.Equal(t, game.NewMove(game.PlayerOne, 1), got)
		require.Equal(t, game.Illegal, state.Copy().Act(got), "Fallback move is not legal")
	})

	t.Run("full depth search in the middle game", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, midGame)

		require.Equal(t, game.NewMove(game.PlayerOne, 1), ChooseMove(state, game.PlayerOne))
		require.Equal(t, game.NewMove(game.PlayerTwo, 6), ChooseMove(state, game.PlayerTwo))
	})

	t.Run("does not mutate the searched state", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, midGame)
		before := *state

		ChooseMove(state, game.PlayerOne)

		require.Equal(t, before, *state)
	})
}

func TestChooseMoveWithDepth(t *testing.T) {
	opening := game.NewGameState(game.PlayerOne)

	tests := []struct {
		depth int
		want1 int
		want2 int
	}{
		{1, 13, 23},
		{2, 13, 23},
		{3, 16, 26},
		{4, 13, 23},
	}

	for _, tt := range tests {
		m := NewMinimax(WithDepth(tt.depth))

		require.Equal(t, tt.want1, m.ChooseMove(opening, game.PlayerOne).Encode(), "depth %d", tt.depth)
		require.Equal(t, tt.want2, m.ChooseMove(opening, game.PlayerTwo).Encode(), "depth %d", tt.depth)
	}
}

func TestEvaluate(t *testing.T) {
	t.Run("minimax value", func(t *testing.T) {
		require.Equal(t, 1, Evaluate(game.FromBoard(game.PlayerOne, midGame), game.PlayerOne, 3))
		require.Equal(t, -1, Evaluate(game.FromBoard(game.PlayerOne, midGame), game.PlayerTwo, 3))
		require.Equal(t, -1, Evaluate(game.FromBoard(game.PlayerTwo, midGame), game.PlayerOne, 4))
	})

	t.Run("depth zero is the store difference", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, midGame)

		require.Equal(t, 1, Evaluate(state, game.PlayerOne, 0))
		require.Equal(t, -1, Evaluate(state, game.PlayerTwo, 0))
	})

	t.Run("ended state is not expanded", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, midGame)
		state.Ended = true
		m := NewMinimax(WithMetrics())

		require.Equal(t, 1, m.Evaluate(state, game.PlayerOne, 5))
	})

	t.Run("running state without legal moves is scored statically", func(t *testing.T) {
		state := game.FromBoard(game.PlayerOne, game.Board{0, 0, 0, 0, 0, 0, 20, 4, 4, 4, 4, 4, 4, 4})

		require.Equal(t, 16, Evaluate(state, game.PlayerOne, 5))
		require.Equal(t, -16, Evaluate(state, game.PlayerTwo, 5))
	})
}

func TestFindMoveMetrics(t *testing.T) {
	state := game.FromBoard(game.PlayerOne, game.Board{0, 0, 0, 3, 0, 0, 20, 4, 4, 4, 4, 4, 1, 4})
	m := NewMinimax(WithDepth(1), WithMetrics())

	move, metric := m.FindMove(state)

	require.Equal(t, game.NewMove(game.PlayerOne, 4), move)
	require.Equal(t, 1, metric.Depth)
	require.Equal(t, 3, metric.Nodes, "Root child and its two replies")
	require.Equal(t, 2, metric.Leaves)
	require.Equal(t, 9, metric.Pruned, "Five empty root pits and four empty pits after the extra turn")
	require.Equal(t, 18, metric.BestScore)

	_, again := m.FindMove(state)
	require.Equal(t, metric.Nodes, again.Nodes, "Counters should reset between searches")
}

func TestCustomEvaluation(t *testing.T) {
	calls := 0
	m := NewMinimax(WithDepth(1), WithEvaluationFn(func(gs *game.GameState, p game.Player) int {
		calls++
		return gs.Board[p.Store()]
	}))

	m.ChooseMove(game.NewGameState(game.PlayerOne), game.PlayerOne)

	require.Positive(t, calls, "Custom evaluation should be used at the leaves")
	require.Equal(t, 1, m.Depth())
}
