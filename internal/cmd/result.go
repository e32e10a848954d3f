package cmd

import (
	"fmt"

	"kalah/boundary"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Result() *cobra.Command {
	first := 1

	cmd := &cobra.Command{
		Use:   "result [moves...]",
		Short: "Prints the packed score code of a move sequence",
		Long: heredoc.Doc(`
			result replays the moves from the opening position and prints
			30000+i if move i is illegal, 15000 plus the final store difference
			if the game ended, or 20000 plus the current store otherwise. Scores
			are taken from the point of view of the --first player.
		`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parsePlayer("first", first); err != nil {
				return err
			}
			seq, err := parseSequence(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), boundary.ScoreCode(first, seq))
			return nil
		},
	}

	cmd.Flags().IntVarP(&first, "first", "f", 1, "Player who opens the game")
	return cmd
}
