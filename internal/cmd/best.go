package cmd

import (
	"fmt"
	"strings"

	"kalah/game"
	"kalah/meta"
	"kalah/searcher"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Best(cfg *meta.Config) *cobra.Command {
	player := 1

	cmd := &cobra.Command{
		Use:   "best <board>",
		Short: "Prints the best move of a position",
		Long: heredoc.Doc(`
			best searches the position for --player and prints the chosen move.
			The board is either 14 hole counts in index order or the
			<6,store1,store2,pits1,pits2> form. Without any legal move the
			player's first pit is printed.
		`),
		Args: cobra.MinimumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlayer("player", player)
			if err != nil {
				return err
			}
			board, err := game.ParseBoard(strings.Join(args, ","))
			if err != nil {
				return err
			}
			if err := board.Validate(); err != nil {
				log.Warn().Err(err).Msg("searching an unusual board")
			}

			m := searcher.NewMinimax(searcher.WithDepth(cfg.Depth))
			move := m.ChooseMove(game.FromBoard(p, board), p)
			log.Debug().Msgf("best move for %s at depth %d on %s: %d", p, cfg.Depth, board, move.Encode())

			fmt.Fprintln(cmd.OutOrStdout(), move.Encode())
			return nil
		},
	}

	cmd.Flags().IntVarP(&player, "player", "p", 1, "Player to move")
	return cmd
}
