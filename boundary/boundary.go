// Package boundary packs engine results into plain integers for callers
// across a foreign-call interface. Everything in here is a projection of
// engine.Replay or searcher.ChooseMove.
package boundary

import (
	"kalah/engine"
	"kalah/game"
	"kalah/searcher"
)

// Offsets chosen so the three outcome classes of ScoreCode never overlap.
const (
	EndedMarker    = 15000
	NotEndedMarker = 20000
	IllegalMarker  = 30000

	// SnapshotBase offsets the score carried in the last value of BoardSnapshot.
	SnapshotBase = 200
)

// ScoreCode replays seq from the opening position with flag to move.
// It returns IllegalMarker plus the index of the first illegal move,
// EndedMarker plus flag's final store difference, or NotEndedMarker plus
// flag's current store.
func ScoreCode(flag int, seq []int) int {
	result, _ := engine.Replay(game.Player(flag), game.DecodeMoves(seq))
	return Encode(result)
}

// Encode packs a replay result into the ScoreCode ranges.
func Encode(result engine.Result) int {
	switch r := result.(type) {
	case engine.Illegal:
		return IllegalMarker + r.Index
	case engine.Ended:
		return EndedMarker + r.ScoreDiff
	case engine.NotEnded:
		return NotEndedMarker + r.Partial
	default:
		panic("unexpected result type")
	}
}

// Decode classifies a ScoreCode value by its range.
func Decode(code int) engine.Result {
	switch {
	case code >= IllegalMarker-(IllegalMarker-NotEndedMarker)/2:
		return engine.Illegal{Index: code - IllegalMarker}
	case code >= NotEndedMarker-(NotEndedMarker-EndedMarker)/2:
		return engine.NotEnded{Partial: code - NotEndedMarker}
	default:
		return engine.Ended{ScoreDiff: code - EndedMarker}
	}
}

// BoardSnapshot returns the 14 holes plus a status value. The opening
// player is taken from the first move. Every move but the last is replayed
// regardless of its outcome; the last one decides the status value:
//   - illegal: 200 + 2*store1 - 48 for flag 1, 200 - 2*store2 + 48 otherwise
//   - ended: 200 + store1 - store2
//   - otherwise: the player to move
//
// An empty sequence yields the opening board with flag to move.
func BoardSnapshot(flag int, seq []int) []int {
	snapshot := make([]int, game.HoleCount+1)
	if len(seq) == 0 {
		board := game.NewBoard()
		copy(snapshot, board[:])
		snapshot[game.HoleCount] = flag
		return snapshot
	}

	state := game.NewGameState(game.DecodeMove(seq[0]).Player)
	for _, code := range seq[:len(seq)-1] {
		state.Act(game.DecodeMove(code))
	}
	outcome := state.Act(game.DecodeMove(seq[len(seq)-1]))

	copy(snapshot, state.Board[:])
	store1 := state.Board[game.PlayerOneStore]
	store2 := state.Board[game.PlayerTwoStore]
	switch {
	case outcome == game.Illegal && game.Player(flag) == game.PlayerOne:
		snapshot[game.HoleCount] = SnapshotBase + 2*store1 - game.TotalStones
	case outcome == game.Illegal:
		snapshot[game.HoleCount] = SnapshotBase - 2*store2 + game.TotalStones
	case state.Ended:
		snapshot[game.HoleCount] = SnapshotBase + store1 - store2
	default:
		snapshot[game.HoleCount] = int(state.Actor)
	}
	return snapshot
}

// BestMove searches status for flag and returns the packed move code.
func BestMove(flag int, status []int) int {
	player := game.Player(flag)
	state := game.FromBoard(player, game.BoardFrom(status))
	return searcher.ChooseMove(state, player).Encode()
}
