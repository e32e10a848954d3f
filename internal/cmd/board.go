package cmd

import (
	"fmt"

	"kalah/boundary"
	"kalah/utils"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func Board() *cobra.Command {
	flag := 1

	cmd := &cobra.Command{
		Use:   "board [moves...]",
		Short: "Prints the board reached by a move sequence",
		Long: heredoc.Doc(`
			board replays the moves, with the opening player taken from the first
			move, and prints the 14 holes followed by a status value: the player
			to move, 200 plus the store difference once the game ended, or a
			forfeit score for --flag when the last move is illegal.
		`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parsePlayer("flag", flag); err != nil {
				return err
			}
			seq, err := parseSequence(args)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), utils.JoinInts(boundary.BoardSnapshot(flag, seq)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&flag, "flag", "f", 1, "Player whose forfeit score is reported")
	return cmd
}
