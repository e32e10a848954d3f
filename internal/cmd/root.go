package cmd

import (
	"fmt"
	"strings"

	"kalah/game"
	"kalah/meta"
	"kalah/utils"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	cfg := meta.Default()
	depth := 0

	root := &cobra.Command{
		Use:   "kalah",
		Short: "Kalah rules engine and minimax player",
		Long: heredoc.Doc(`
			kalah replays and scores move sequences of six-pit Kalah and searches
			for the best move of a position.

			Moves are written as player*10+pit, e.g. 13 is player 1's third pit.
			Settings are read from KALAH_* environment variables or a .env file.
		`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := meta.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("depth") {
				if depth <= 0 {
					return fmt.Errorf("invalid --depth %d: must be positive", depth)
				}
				loaded.Depth = depth
			}
			cfg = loaded

			zerolog.SetGlobalLevel(cfg.LogLevel)
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flags().Changed("trace") {
				zerolog.SetGlobalLevel(zerolog.TraceLevel)
			}
			return nil
		},
	}

	// global flags
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")
	root.PersistentFlags().IntVarP(&depth, "depth", "d", meta.DEPTH, "Search depth below each candidate move")

	root.AddCommand(Result())
	root.AddCommand(Board())
	root.AddCommand(Best(&cfg))
	root.AddCommand(Replay())
	root.AddCommand(SelfPlay(&cfg))

	return root
}

func parsePlayer(flag string, value int) (game.Player, error) {
	player := game.Player(value)
	if !player.Valid() {
		return game.NoPlayer, fmt.Errorf("invalid --%s %d: must be 1 or 2", flag, value)
	}
	return player, nil
}

// parseSequence accepts moves split over any number of arguments.
func parseSequence(args []string) ([]int, error) {
	seq, err := utils.ParseInts(strings.Join(args, ","))
	if err != nil {
		return nil, fmt.Errorf("failed to parse moves: %w", err)
	}
	return seq, nil
}
