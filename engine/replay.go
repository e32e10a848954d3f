package engine

import (
	"fmt"

	"kalah/game"
)

// Result classifies a replayed move sequence. It is one of Illegal, Ended
// or NotEnded.
type Result interface {
	isResult()
}

// Illegal reports the index of the first rejected move.
type Illegal struct {
	Index int
}

// Ended carries the final store difference from the opening player's view.
type Ended struct {
	ScoreDiff int
}

// NotEnded carries the opening player's current store.
type NotEnded struct {
	Partial int
}

func (Illegal) isResult()  {}
func (Ended) isResult()    {}
func (NotEnded) isResult() {}

func (r Illegal) String() string  { return fmt.Sprintf("illegal move at index %d", r.Index) }
func (r Ended) String() string    { return fmt.Sprintf("ended with score difference %d", r.ScoreDiff) }
func (r NotEnded) String() string { return fmt.Sprintf("in progress with %d in store", r.Partial) }

// Replay plays moves from the opening position with first to move and stops
// at the first illegal move. The returned state is the position reached,
// which excludes the rejected move.
func Replay(first game.Player, moves []game.Move) (Result, *game.GameState) {
	state := game.NewGameState(first)
	for i, move := range moves {
		if state.Act(move) == game.Illegal {
			return Illegal{Index: i}, state
		}
	}

	if state.Ended {
		return Ended{ScoreDiff: state.Score(first)}, state
	}
	return NotEnded{Partial: state.Board[first.Store()]}, state
}
