package game

const (
	HoleCount     = 14
	PitsPerSide   = 6
	InitialStones = 4
	TotalStones   = InitialStones * PitsPerSide * 2

	PlayerOneStore = 6
	PlayerTwoStore = 13
)

// Player identifies a side of the board. The zero value is no player.
type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

func (p Player) Valid() bool {
	return p == PlayerOne || p == PlayerTwo
}

// Opponent returns the other player. Undefined for NoPlayer.
func (p Player) Opponent() Player {
	return 3 - p
}

// Store returns the board index of the player's store.
func (p Player) Store() int {
	if p == PlayerOne {
		return PlayerOneStore
	}
	return PlayerTwoStore
}

// Pits returns the first and last board index of the player's pits.
func (p Player) Pits() (first, last int) {
	first = (int(p) - 1) * (PitsPerSide + 1)
	return first, first + PitsPerSide - 1
}

// OwnsPit reports whether index is one of the player's six pits (never a store).
func (p Player) OwnsPit(index int) bool {
	first, last := p.Pits()
	return first <= index && index <= last
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "player1"
	case PlayerTwo:
		return "player2"
	default:
		return "none"
	}
}

type StateHash uint64

// Evaluate scores a state from decideFor's point of view. Higher is better.
type Evaluate func(state *GameState, decideFor Player) int
