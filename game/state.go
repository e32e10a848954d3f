package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
)

// Outcome is the result of a single Act call.
type Outcome int

const (
	Illegal Outcome = iota
	Ended
	NotEnded
)

func (o Outcome) String() string {
	switch o {
	case Illegal:
		return "illegal"
	case Ended:
		return "ended"
	case NotEnded:
		return "not ended"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// ErrIllegalMove is wrapped by every error returned from Check.
var ErrIllegalMove = errors.New("illegal move")

// GameState is the whole position: the board, the player to move, and
// whether the game is over. Once Ended is set every move is rejected.
type GameState struct {
	Board Board
	Actor Player
	Ended bool
}

// NewGameState returns the opening position with first to move.
func NewGameState(first Player) *GameState {
	return &GameState{
		Board: NewBoard(),
		Actor: first,
	}
}

// FromBoard builds a state around an existing board. The board is trusted
// as-is and the game is considered running.
func FromBoard(actor Player, board Board) *GameState {
	return &GameState{
		Board: board,
		Actor: actor,
	}
}

func (gs GameState) Copy() *GameState {
	return &gs
}

func (gs GameState) Player() Player {
	return gs.Actor
}

// Check runs the legality checks of Act without applying anything.
func (gs *GameState) Check(m Move) error {
	if gs.Ended {
		return fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if !m.Player.Valid() {
		return fmt.Errorf("%w: %d is not a player", ErrIllegalMove, int(m.Player))
	}
	if m.Player != gs.Actor {
		return fmt.Errorf("%w: %s moved but %s is to move", ErrIllegalMove, m.Player, gs.Actor)
	}
	if m.Pit < 1 || m.Pit > PitsPerSide {
		return fmt.Errorf("%w: pit %d does not exist", ErrIllegalMove, m.Pit)
	}
	if gs.Board[m.Index()] == 0 {
		return fmt.Errorf("%w: pit %d is empty", ErrIllegalMove, m.Pit)
	}
	return nil
}

// Act applies a move in place. An Illegal outcome leaves the state untouched.
func (gs *GameState) Act(m Move) Outcome {
	if gs.Check(m) != nil {
		return Illegal
	}

	mover := gs.Actor
	skip := mover.Opponent().Store()

	hole := m.Index()
	stones := gs.Board[hole]
	gs.Board[hole] = 0

	// sow
	for stones > 0 {
		hole = nextHole(hole)
		if hole == skip {
			hole = nextHole(hole)
		}
		gs.Board[hole]++
		stones--
	}

	// Ending in the own store keeps the turn.
	if hole != mover.Store() {
		gs.capture(mover, hole)
		gs.Actor = mover.Opponent()
	}

	if gs.TryEnd() {
		return Ended
	}
	return NotEnded
}

func nextHole(index int) int {
	return (index + 1) % HoleCount
}

func (gs *GameState) capture(mover Player, hole int) {
	if !mover.OwnsPit(hole) || gs.Board[hole] != 1 {
		return
	}
	opposite := Opposite(hole)
	if gs.Board[opposite] == 0 {
		return
	}
	gs.Board[mover.Store()] += 1 + gs.Board[opposite]
	gs.Board[hole] = 0
	gs.Board[opposite] = 0
}

// TryEnd sweeps the remaining stones once a side runs out. Both sides are
// checked every time, in order, so an empty player 1 side is swept first.
func (gs *GameState) TryEnd() bool {
	if gs.Board.SideEmpty(PlayerOne) {
		gs.sweep(PlayerTwo)
		gs.Ended = true
	}
	if gs.Board.SideEmpty(PlayerTwo) {
		gs.sweep(PlayerOne)
		gs.Ended = true
	}
	return gs.Ended
}

func (gs *GameState) sweep(p Player) {
	first, last := p.Pits()
	for i := first; i <= last; i++ {
		gs.Board[p.Store()] += gs.Board[i]
		gs.Board[i] = 0
	}
}

// LegalMoves returns the actor's playable pits in ascending order.
func (gs GameState) LegalMoves() []Move {
	moves := []Move{}
	for pit := 1; pit <= PitsPerSide; pit++ {
		m := NewMove(gs.Actor, pit)
		if gs.Check(m) == nil {
			moves = append(moves, m)
		}
	}
	return moves
}

// Play applies the move to a copy and leaves gs untouched.
func (gs GameState) Play(m Move) (*GameState, Outcome) {
	next := gs.Copy()
	outcome := next.Act(m)
	return next, outcome
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Actor))
	binary.Write(hasher, binary.LittleEndian, gs.Ended)
	for _, count := range gs.Board {
		binary.Write(hasher, binary.LittleEndian, int64(count))
	}

	return StateHash(hasher.Sum64())
}

// Score is p's store minus the opponent's store.
func (gs GameState) Score(p Player) int {
	return gs.Board[p.Store()] - gs.Board[p.Opponent().Store()]
}

// Winner returns the player with the larger store once the game is over,
// NoPlayer for a draw or a running game.
func (gs GameState) Winner() Player {
	if !gs.Ended {
		return NoPlayer
	}
	switch diff := gs.Score(PlayerOne); {
	case diff > 0:
		return PlayerOne
	case diff < 0:
		return PlayerTwo
	default:
		return NoPlayer
	}
}
