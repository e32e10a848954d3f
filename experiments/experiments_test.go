package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"kalah/experiments/metrics"
	"kalah/game"

	"github.com/stretchr/testify/require"
)

func TestMatchUps(t *testing.T) {
	configs, matchUps := DepthMatchUps(9, []int{1, 3})
	require.Len(t, configs, 3)
	require.Len(t, matchUps, 2)
	require.Equal(t, 9, matchUps[1][0].Depth)
	require.Equal(t, 3, matchUps[1][1].Depth)
	require.Equal(t, 2, matchUps[1][1].ID)

	configs, matchUps = MCTSMatchUps(4, []int{100, 1000})
	require.Len(t, configs, 3)
	require.Equal(t, 1000, matchUps[1][1].Episodes)
	require.Equal(t, 4, matchUps[1][0].Depth)

	configs, matchUps = RandomMatchUps([]int{2}, 7)
	require.Len(t, configs, 2)
	require.True(t, matchUps[0][1].Random, "The random agent plays player 2")
	require.Equal(t, uint64(7), matchUps[0][1].Seed)
}

func TestCreateAgent(t *testing.T) {
	state := game.NewGameState(game.PlayerOne)

	move, metric := createAgent(metrics.AgentConfig{Depth: 1, Evaluation: "stores"}).FindMove(state)
	require.Equal(t, game.NewMove(game.PlayerOne, 3), move)
	require.Equal(t, 1, metric.Depth)

	move, _ = createAgent(metrics.AgentConfig{Random: true, Seed: 1}).FindMove(state)
	require.NoError(t, state.Check(move))

	move, metric = createAgent(metrics.AgentConfig{Depth: 20, Episodes: 50}).FindMove(state)
	require.NoError(t, state.Check(move))
	require.Equal(t, 50, metric.Nodes)
	require.Equal(t, 20, metric.Depth, "Depth is the rollout cutoff")
}

func TestExperimentRun(t *testing.T) {
	t.Run("plays and stores every game", func(t *testing.T) {
		x := Experiment{
			Name:      "random",
			Games:     2,
			OutputDir: t.TempDir(),
			Quiet:     true,
		}
		configs, matchUps := RandomMatchUps([]int{1, 2}, 3)

		report, err := x.Run(configs, matchUps)
		require.NoError(t, err)
		require.Len(t, report.Games, 4)
		require.Len(t, report.Results, 2)

		for i, tally := range report.Results {
			require.Equal(t, 2, tally.Wins1+tally.Wins2+tally.Draws, "match-up %d", i+1)
		}

		moves := 0
		for i, record := range report.Games {
			require.Equal(t, i+1, record.ID)
			require.Equal(t, i/2+1, record.MatchUp)
			moves += record.TotalMoves
		}
		require.Len(t, report.Moves, moves)

		require.Equal(t, game.PlayerOne, report.Games[0].StartingPlayer)
		require.Equal(t, game.PlayerTwo, report.Games[1].StartingPlayer, "The opening player alternates")

		for _, name := range []string{"agent_configs.csv", "games.csv", "moves.csv", "score_diff.html"} {
			_, err := os.Stat(filepath.Join(report.Dir, name))
			require.NoError(t, err, "%s should exist", name)
		}
	})

	t.Run("needs games", func(t *testing.T) {
		_, err := Experiment{Name: "empty", OutputDir: t.TempDir(), Quiet: true}.Run(nil, nil)
		require.Error(t, err)
	})
}
