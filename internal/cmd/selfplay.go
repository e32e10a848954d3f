package cmd

import (
	"fmt"

	"kalah/experiments"
	"kalah/experiments/metrics"
	"kalah/meta"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func SelfPlay(cfg *meta.Config) *cobra.Command {
	var (
		depth1, depth2 int
		games          int
		random2        bool
		episodes2      int
		seed           uint64
		quiet          bool
	)

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Plays searchers against each other and records the games",
		Long: heredoc.Doc(`
			selfplay plays --games games between two agents, alternating the
			opening player, and stores the agent configs, game and move records
			as CSV together with an HTML chart of the score differences under
			the output directory (KALAH_OUTPUT_DIR).

			Depths default to --depth. With --random2 the second agent plays
			random legal moves instead of searching, with --episodes2 it runs
			Monte Carlo tree search for that many episodes per move.
		`),
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("depth1") {
				depth1 = cfg.Depth
			}
			if !cmd.Flags().Changed("depth2") {
				depth2 = cfg.Depth
			}
			if !cmd.Flags().Changed("games") {
				games = cfg.Games
			}
			if depth1 <= 0 || depth2 <= 0 {
				return fmt.Errorf("invalid depths %d and %d: must be positive", depth1, depth2)
			}

			agent1 := metrics.AgentConfig{ID: 1, Depth: depth1, Evaluation: "stores"}
			agent2 := metrics.AgentConfig{ID: 2, Depth: depth2, Evaluation: "stores"}
			switch {
			case random2:
				agent2 = metrics.AgentConfig{ID: 2, Random: true, Seed: seed}
			case episodes2 > 0:
				agent2 = metrics.AgentConfig{ID: 2, Evaluation: "stores", Episodes: episodes2}
			}

			x := experiments.Experiment{
				Name:      "selfplay",
				Games:     games,
				OutputDir: cfg.OutputDir,
				Quiet:     quiet,
			}
			report, err := x.Run(
				[]metrics.AgentConfig{agent1, agent2},
				[]experiments.MatchUp{{agent1, agent2}},
			)
			if err != nil {
				return err
			}

			tally := report.Results[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "player1 wins: %d, player2 wins: %d, draws: %d\n", tally.Wins1, tally.Wins2, tally.Draws)
			fmt.Fprintf(out, "results stored in %s\n", report.Dir)
			return nil
		},
	}

	cmd.Flags().IntVar(&depth1, "depth1", meta.DEPTH, "Search depth of player 1")
	cmd.Flags().IntVar(&depth2, "depth2", meta.DEPTH, "Search depth of player 2")
	cmd.Flags().IntVarP(&games, "games", "n", meta.NUM_GAMES, "Number of games to play")
	cmd.Flags().BoolVar(&random2, "random2", false, "Let player 2 play random moves")
	cmd.Flags().IntVar(&episodes2, "episodes2", 0, "Let player 2 run MCTS with this many episodes per move")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed of the random player")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Hide the progress spinner")
	return cmd
}
