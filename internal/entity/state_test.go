package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allBoards enumerates every assignment of the three cell values to the nine cells.
func allBoards() []Board {
	boards := make([]Board, 0, 19683)
	for n := 0; n < 19683; n++ {
		var board Board
		rest := n
		for i := 0; i < BoardSize*BoardSize; i++ {
			board[i/BoardSize][i%BoardSize] = Cell(rest % 3)
			rest /= 3
		}
		boards = append(boards, board)
	}
	return boards
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  StateID
	}{
		{name: "empty board", board: Board{}, want: 0},
		{name: "PlayerOne top left", board: Board{{PlayerOne}}, want: 1},
		{name: "PlayerTwo top left", board: Board{{PlayerTwo}}, want: 2},
		{name: "PlayerOne centre", board: Board{{}, {Empty, PlayerOne}}, want: 256},
		{name: "PlayerTwo bottom right", board: Board{{}, {}, {Empty, Empty, PlayerTwo}}, want: 131072},
		{
			name: "mixed",
			board: Board{
				{PlayerOne, PlayerTwo, Empty},
				{Empty, Empty, Empty},
				{Empty, Empty, PlayerOne},
			},
			want: 1 | 8 | 65536,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.board))
		})
	}
}

func TestCodecRoundTrip(t *testing.T) {
	seen := make(map[StateID]bool, 19683)

	for _, board := range allBoards() {
		id := Encode(board)
		require.Less(t, int(id), StateCount)
		require.False(t, seen[id], "two boards share state %d", id)
		seen[id] = true

		require.Equal(t, board, Decode(id))
		require.Equal(t, id, Encode(Decode(id)))
	}
}

func TestDecode_DoubleOccupiedCell(t *testing.T) {
	// Given: a state where both bits of the first cell are set
	id := StateID(0b11)

	// When: decoding it
	board := Decode(id)

	// Then: the PlayerTwo bit wins
	assert.Equal(t, PlayerTwo, board[0][0])
}

func TestNextStates(t *testing.T) {
	t.Run("Empty board yields nine states in row-major order", func(t *testing.T) {
		states := NextStates(0, PlayerOne)

		assert.Equal(t, []StateID{1, 4, 16, 64, 256, 1024, 4096, 16384, 65536}, states)
	})

	t.Run("Occupied cells are skipped", func(t *testing.T) {
		// Given: PlayerOne on the first cell and PlayerTwo on the centre
		board := Board{{PlayerOne}, {Empty, PlayerTwo}}
		id := Encode(board)

		// When: enumerating PlayerOne's moves
		states := NextStates(id, PlayerOne)

		// Then: seven successors, each adding exactly one PlayerOne mark
		require.Len(t, states, 7)
		for _, next := range states {
			child := Decode(next)
			assert.Equal(t, 3, child.Occupied())
			assert.Equal(t, PlayerOne, child[0][0])
			assert.Equal(t, PlayerTwo, child[1][1])
		}
		assert.Equal(t, id|4, states[0])
	})

	t.Run("Full board has no successors", func(t *testing.T) {
		board := Board{
			{PlayerOne, PlayerTwo, PlayerOne},
			{PlayerTwo, PlayerOne, PlayerOne},
			{PlayerTwo, PlayerOne, PlayerTwo},
		}

		assert.Empty(t, NextStates(Encode(board), PlayerTwo))
	})
}

func TestMoveBetween(t *testing.T) {
	t.Run("Finds the placed cell", func(t *testing.T) {
		// Given: a state and its successor with PlayerTwo on (2,1)
		from := Board{{PlayerOne}}
		to := from
		to[1][2] = PlayerTwo

		// When: recovering the move
		move, ok := MoveBetween(Encode(from), Encode(to))

		// Then: it is column 2, row 1
		require.True(t, ok)
		assert.Equal(t, Move{X: 2, Y: 1}, move)
	})

	t.Run("Identical states have no move", func(t *testing.T) {
		_, ok := MoveBetween(42, 42)
		assert.False(t, ok)
	})
}
