package cmd

import (
	"fmt"
	"strings"

	"kalah/game"

	"github.com/logrusorgru/aurora"
)

// renderBoard draws player 2's pits on top from right to left, the stores
// at either end of the middle line and player 1's pits at the bottom. The
// row of the player to move is highlighted.
func renderBoard(au aurora.Aurora, state *game.GameState) string {
	b := state.Board
	var sb strings.Builder

	row := func(p game.Player) string {
		first, last := p.Pits()
		cells := make([]string, 0, game.PitsPerSide)
		for i := first; i <= last; i++ {
			cells = append(cells, fmt.Sprintf("%3d", b[i]))
		}
		if p == game.PlayerTwo {
			for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
				cells[i], cells[j] = cells[j], cells[i]
			}
		}

		line := strings.Join(cells, "")
		if !state.Ended && state.Actor == p {
			return au.Green(line).String()
		}
		return line
	}

	store := func(p game.Player) string {
		return au.Yellow(fmt.Sprintf("%3d", b[p.Store()])).String()
	}

	fmt.Fprintf(&sb, "   %s\n", row(game.PlayerTwo))
	fmt.Fprintf(&sb, "%s%s%s\n", store(game.PlayerTwo), strings.Repeat(" ", 3*game.PitsPerSide), store(game.PlayerOne))
	fmt.Fprintf(&sb, "   %s\n", row(game.PlayerOne))

	switch {
	case !state.Ended:
		fmt.Fprintf(&sb, "%s to move\n", state.Actor)
	case state.Winner() == game.NoPlayer:
		sb.WriteString(au.Bold("draw").String() + "\n")
	default:
		sb.WriteString(au.Bold(fmt.Sprintf("%s wins", state.Winner())).String() + "\n")
	}

	return sb.String()
}
