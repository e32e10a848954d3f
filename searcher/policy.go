package searcher

import (
	"math"

	"kalah/game"
)

// Hyperparameters for MCTS

const CSquared = 2.0 // Exploration constant

const Win = 1.0   // Reward for winning outcome
const Loss = -Win // Reward for loss outcome (negate from opponent perspective)
const Draw = 0.0

// MaxCutoff bounds random rollouts. Kalah games end long before that.
const MaxCutoff = 300

type uct struct {
	numerator float64
}

func newUCT(cSquared float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(q float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = q/n + sqrt(c^2*ln(N)/n)
	return q/n + math.Sqrt(u.numerator/n)
}

// rewarder scores a playout for any player, given the player it was scored for.
func rewarder(player game.Player, score float64) func(game.Player) float64 {
	return func(p game.Player) float64 {
		switch {
		case player == game.NoPlayer:
			return Draw
		case p == player:
			return score
		default:
			return -score
		}
	}
}
