package cmd

import (
	"fmt"

	"kalah/engine"
	"kalah/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
)

func Replay() *cobra.Command {
	first := 1
	noColor := false

	cmd := &cobra.Command{
		Use:   "replay [moves...]",
		Short: "Replays a move sequence and draws the board",
		Long: heredoc.Doc(`
			replay plays the moves from the opening position, stopping at the
			first illegal one, then draws the board reached and the result.
			An illegal move is reported with the reason it was rejected.
		`),
		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePlayer("first", first)
			if err != nil {
				return err
			}
			seq, err := parseSequence(args)
			if err != nil {
				return err
			}

			moves := game.DecodeMoves(seq)
			result, state := engine.Replay(p, moves)

			au := aurora.NewAurora(!noColor)
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderBoard(au, state))
			fmt.Fprintln(out, result)

			if illegal, ok := result.(engine.Illegal); ok {
				fmt.Fprintln(out, au.Red(state.Check(moves[illegal.Index])))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&first, "first", "f", 1, "Player who opens the game")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
