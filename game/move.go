package game

import (
	"fmt"
	"strconv"
)

// Move selects one of the mover's own pits, numbered 1 to 6 from the
// mover's point of view.
type Move struct {
	Player Player
	Pit    int
}

// NewMove returns the move of player on pit.
func NewMove(player Player, pit int) Move {
	return Move{Player: player, Pit: pit}
}

// DecodeMove reads the packed player*10+pit form.
func DecodeMove(code int) Move {
	return Move{Player: Player(code / 10), Pit: code % 10}
}

// DecodeMoves decodes every packed code in order.
func DecodeMoves(codes []int) []Move {
	moves := make([]Move, len(codes))
	for i, code := range codes {
		moves[i] = DecodeMove(code)
	}
	return moves
}

// Encode packs the move as player*10+pit.
func (m Move) Encode() int {
	return int(m.Player)*10 + m.Pit
}

// Index returns the board index of the pit the move sows from.
func (m Move) Index() int {
	return m.Pit + (int(m.Player)-1)*(PitsPerSide+1) - 1
}

func (m Move) String() string {
	return strconv.Itoa(m.Encode())
}

// GoString is used by %#v in logs and test failures.
func (m Move) GoString() string {
	return fmt.Sprintf("Move{%s pit %d}", m.Player, m.Pit)
}
