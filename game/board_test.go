package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("raw hole order", func(t *testing.T) {
		got, err := ParseBoard("4,4,0,5,5,5,1,4,4,4,4,4,4,0")

		require.NoError(t, err)
		require.Equal(t, Board{4, 4, 0, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 0}, got)
	})

	t.Run("text form round trip", func(t *testing.T) {
		board := Board{2, 0, 3, 13, 11, 0, 3, 0, 0, 0, 0, 0, 1, 15}

		got, err := ParseBoard(board.String())

		require.NoError(t, err)
		require.Equal(t, board, got)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseBoard("4,4,4")

		require.Error(t, err)
	})

	t.Run("unsupported size", func(t *testing.T) {
		_, err := ParseBoard("<7,0,0,4,4,4,4,4,4,4,4,4,4,4,4>")

		require.Error(t, err)
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := ParseBoard("4,4,x,4,4,4,0,4,4,4,4,4,4,0")

		require.Error(t, err)
	})
}

func TestBoardString(t *testing.T) {
	board := Board{4, 4, 0, 5, 5, 5, 1, 4, 4, 4, 4, 4, 4, 0}

	require.Equal(t, "<6,1,0,4,4,0,5,5,5,4,4,4,4,4,4>", board.String())
}

func TestBoardValidate(t *testing.T) {
	require.NoError(t, NewBoard().Validate())
	require.Error(t, Board{-1, 5, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 4}.Validate(), "Negative holes should be rejected")
	require.Error(t, Board{4, 4, 4, 4, 4, 4, 1, 4, 4, 4, 4, 4, 4, 0}.Validate(), "Stone count should be 48")
}

func TestOpposite(t *testing.T) {
	for i := 0; i < PitsPerSide; i++ {
		require.Equal(t, 12-i, Opposite(i))
		require.Equal(t, i, Opposite(Opposite(i)))
	}
	require.Panics(t, func() { Opposite(PlayerOneStore) })
	require.Panics(t, func() { Opposite(PlayerTwoStore) })
}

func TestPlayer(t *testing.T) {
	first, last := PlayerTwo.Pits()

	require.Equal(t, 7, first)
	require.Equal(t, 12, last)
	require.Equal(t, PlayerOne, PlayerTwo.Opponent())
	require.Equal(t, PlayerTwoStore, PlayerTwo.Store())
	require.True(t, PlayerOne.OwnsPit(5))
	require.False(t, PlayerOne.OwnsPit(PlayerOneStore), "Store is not a pit")
	require.False(t, NoPlayer.Valid())
}
