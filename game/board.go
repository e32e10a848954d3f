package game

import (
	"bytes"
	"fmt"
	"strings"

	"kalah/utils"
)

// Board holds the stones of all 14 holes. Indices 0-5 are player 1's pits,
// 6 its store, 7-12 player 2's pits and 13 its store.
type Board [HoleCount]int

// NewBoard returns the opening position.
func NewBoard() Board {
	var b Board
	for i := range b {
		b[i] = InitialStones
	}
	b[PlayerOneStore] = 0
	b[PlayerTwoStore] = 0
	return b
}

// BoardFrom copies the first 14 values of status. Missing values are zero.
func BoardFrom(status []int) Board {
	var b Board
	copy(b[:], status)
	return b
}

// ParseBoard accepts either 14 comma separated hole counts in index order,
// or the text form produced by String.
func ParseBoard(str string) (Board, error) {
	str = strings.TrimSpace(str)
	str = strings.TrimPrefix(str, "<")
	str = strings.TrimSuffix(str, ">")

	data, err := utils.ParseInts(str)
	if err != nil {
		return Board{}, fmt.Errorf("failed to parse board: %w", err)
	}

	switch len(data) {
	case HoleCount:
		return BoardFrom(data), nil
	case HoleCount + 1:
		if data[0] != PitsPerSide {
			return Board{}, fmt.Errorf("failed to parse board: unsupported size %d", data[0])
		}
		var b Board
		b[PlayerOneStore] = data[1]
		b[PlayerTwoStore] = data[2]
		copy(b[0:PitsPerSide], data[3:3+PitsPerSide])
		copy(b[PlayerOneStore+1:PlayerTwoStore], data[3+PitsPerSide:])
		return b, nil
	default:
		return Board{}, fmt.Errorf("failed to parse board: expected %d values, got %d", HoleCount, len(data))
	}
}

// String renders the board as <size,store1,store2,pits of player 1,pits of player 2>.
func (b Board) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d,%d", PitsPerSide, b[PlayerOneStore], b[PlayerTwoStore])
	for _, pit := range b[0:PitsPerSide] {
		fmt.Fprintf(&buf, ",%d", pit)
	}
	for _, pit := range b[PlayerOneStore+1 : PlayerTwoStore] {
		fmt.Fprintf(&buf, ",%d", pit)
	}
	fmt.Fprint(&buf, ">")

	return buf.String()
}

func (b Board) Sum() int {
	sum := 0
	for _, v := range b {
		sum += v
	}
	return sum
}

// SideEmpty reports whether all six pits of p are empty.
func (b Board) SideEmpty(p Player) bool {
	return b.SideStones(p) == 0
}

// SideStones counts the stones in p's pits, excluding the store.
func (b Board) SideStones(p Player) int {
	first, last := p.Pits()
	n := 0
	for i := first; i <= last; i++ {
		n += b[i]
	}
	return n
}

// Opposite returns the pit facing index. Stores have no opposite.
func Opposite(index int) int {
	if index == PlayerOneStore || index == PlayerTwoStore {
		panic("store has no opposite pit")
	}
	return 2*PitsPerSide - index
}

// Validate checks the board holds a reachable amount of stones.
func (b Board) Validate() error {
	for i, v := range b {
		if v < 0 {
			return fmt.Errorf("invalid board: hole %d holds %d stones", i, v)
		}
	}
	if sum := b.Sum(); sum != TotalStones {
		return fmt.Errorf("invalid board: %d stones in total, expected %d", sum, TotalStones)
	}
	return nil
}
