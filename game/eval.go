package game

// EvaluateStores is the store difference from decideFor's point of view.
func EvaluateStores(gs *GameState, decideFor Player) int {
	value := gs.Board[PlayerOneStore] - gs.Board[PlayerTwoStore]
	if decideFor == PlayerOne {
		return value
	}
	return -value
}

// EvaluateSides also counts the stones still on each side, since those
// usually end up in that side's store when the game is swept.
func EvaluateSides(gs *GameState, decideFor Player) int {
	value := gs.Board.SideStones(PlayerOne) + gs.Board[PlayerOneStore] -
		gs.Board.SideStones(PlayerTwo) - gs.Board[PlayerTwoStore]
	if decideFor == PlayerOne {
		return value
	}
	return -value
}

// Evaluations lists the named evaluation functions selectable from the CLI.
var Evaluations = map[string]Evaluate{
	"stores": EvaluateStores,
	"sides":  EvaluateSides,
}
