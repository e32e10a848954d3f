package boundary

import (
	"testing"

	"kalah/engine"

	"github.com/stretchr/testify/require"
)

func TestScoreCode(t *testing.T) {
	tests := []struct {
		name string
		flag int
		seq  []int
		want int
	}{
		{"same player twice", 1, []int{11, 12}, IllegalMarker + 1},
		{"extra turn", 1, []int{14}, NotEndedMarker + 1},
		{"empty pit", 1, []int{
			11, 22, 12, 13, 21,
			14, 22, 16, 23, 15,
			23, 14, 22,
		}, IllegalMarker + 12},
		{"wrong player", 1, []int{
			11, 22, 12, 13, 21,
			14, 22, 16, 23, 15,
			23, 14, 21, 13, 24,
			16, 15, 25, 16, 15,
		}, IllegalMarker + 16},
		{"move after the end", 1, []int{
			11, 21, 12, 13, 25,
			11, 21, 12, 22, 11,
			23, 12, 24, 13, 11,
			26, 12, 25, 11, 26,
			11,
		}, IllegalMarker + 20},
		{"finished game", 1, []int{
			11, 21, 12, 13, 25,
			11, 21, 12, 22, 11,
			23, 12, 24, 13, 11,
			26, 12, 25, 11, 26,
		}, EndedMarker + 16},
		{"two moves", 1, []int{11, 22}, NotEndedMarker + 0},
		{"four moves", 1, []int{11, 22, 12, 13}, NotEndedMarker + 2},
		{"twelve moves", 1, []int{
			11, 22, 12, 13, 21, 14,
			22, 16, 23, 15, 23, 14,
		}, NotEndedMarker + 8},
		{"capture", 1, []int{11, 21, 12, 13, 25}, NotEndedMarker + 2},
		{"unknown player", 3, []int{31}, IllegalMarker + 0},
		{"move without a player", 1, []int{5}, IllegalMarker + 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ScoreCode(tt.flag, tt.seq))
		})
	}
}

func TestDecode(t *testing.T) {
	require.Equal(t, engine.Illegal{Index: 12}, Decode(30012))
	require.Equal(t, engine.NotEnded{Partial: 8}, Decode(20008))
	require.Equal(t, engine.Ended{ScoreDiff: 16}, Decode(15016))
	require.Equal(t, engine.Ended{ScoreDiff: -48}, Decode(EndedMarker-48))

	for _, code := range []int{30001, 20000, 20048, 14952, 15048} {
		require.Equal(t, code, Encode(Decode(code)), "code %d should round trip", code)
	}
}

func TestBoardSnapshot(t *testing.T) {
	t.Run("illegal last move for player one", func(t *testing.T) {
		got := BoardSnapshot(1, []int{
			11, 21, 12, 13, 25,
			11, 21, 12, 22, 11,
			23, 12, 24, 13, 11,
			26, 12, 25, 12,
		})

		require.Equal(t, []int{2, 0, 3, 13, 11, 0, 3, 0, 0, 0, 0, 0, 1, 15, 200 + 3*2 - 48}, got)
	})

	t.Run("finished game", func(t *testing.T) {
		got := BoardSnapshot(2, []int{
			11, 21, 12, 13, 25,
			11, 21, 12, 22, 11,
			23, 12, 24, 13, 11,
			26, 12, 25, 11, 26,
		})

		require.Equal(t, []int{0, 0, 0, 0, 0, 0, 32, 0, 0, 0, 0, 0, 0, 16, 216}, got)
	})

	t.Run("finished games in favour of player two", func(t *testing.T) {
		got := BoardSnapshot(1, []int{
			13, 11, 23, 26, 11,
			25, 12, 26, 21, 13,
			14, 22, 12, 21, 11,
			23, 24, 16,
		})
		require.Equal(t, 198, got[14])

		got = BoardSnapshot(2, []int{
			21, 15, 22, 13, 15,
			23, 14, 24, 14, 25,
			14, 21, 12, 23, 14,
			22, 15, 26, 13, 25,
			12, 23, 14, 21, 15,
			16, 13, 24, 25, 16,
			14, 23, 15, 16, 11,
			22,
		})
		require.Equal(t, 188, got[14])
	})

	t.Run("game in progress reports the player to move", func(t *testing.T) {
		got := BoardSnapshot(1, []int{
			11, 21, 12, 13, 25,
			11, 21, 12, 22, 11,
			23, 12, 24, 13, 11,
			26, 12, 25, 11,
		})
		require.Equal(t, []int{0, 1, 4, 13, 11, 0, 3, 0, 0, 0, 0, 0, 1, 15, 2}, got)

		got = BoardSnapshot(2, []int{
			13, 11, 23, 26, 11,
			25, 12, 26, 21, 13,
			14, 22, 12, 21, 11,
			23, 24,
		})
		require.Equal(t, []int{0, 0, 0, 0, 0, 8, 17, 0, 0, 0, 0, 2, 3, 18, 1}, got)
	})

	t.Run("unknown opening player is an illegal last move", func(t *testing.T) {
		opening := []int{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0}

		for _, seq := range [][]int{{31}, {5}} {
			got := BoardSnapshot(1, seq)
			require.Equal(t, opening, got[:14], "seq %v", seq)
			require.Equal(t, SnapshotBase-48, got[14], "seq %v", seq)
		}
		require.Equal(t, SnapshotBase+48, BoardSnapshot(2, []int{31})[14])
	})

	t.Run("empty sequence", func(t *testing.T) {
		got := BoardSnapshot(2, nil)

		require.Equal(t, []int{4, 4, 4, 4, 4, 4, 0, 4, 4, 4, 4, 4, 4, 0, 2}, got)
	})
}

func TestBestMove(t *testing.T) {
	require.Equal(t, 14, BestMove(1, []int{0, 0, 0, 3, 0, 0, 20, 4, 4, 4, 4, 4, 1, 4}))
	require.Equal(t, 11, BestMove(1, []int{1, 0, 2, 0, 3, 1, 18, 0, 2, 1, 0, 1, 2, 17}))
	require.Equal(t, 26, BestMove(2, []int{1, 0, 2, 0, 3, 1, 18, 0, 2, 1, 0, 1, 2, 17}))
	require.Equal(t, 21, BestMove(2, []int{4, 4, 4, 4, 4, 4, 24, 0, 0, 0, 0, 0, 0, 0}), "No legal move falls back to pit 1")
}
