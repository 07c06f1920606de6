package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markerX = "X"
	markerO = "O"
)

func boardOf(markers ...string) *Board {
	board := NewBoard()
	for i, marker := range markers {
		if marker != EmptyMarker {
			board.Set(i+1, marker)
		}
	}

	return board
}

func TestBoard_WinningMarker(t *testing.T) {
	for _, line := range WinningLines {
		t.Run("Line completed", func(t *testing.T) {
			// Given: a board where one line is fully marked by X
			board := NewBoard()
			for _, index := range line {
				board.Set(index, markerX)
			}

			// When: looking for the winner
			winner := board.WinningMarker()

			// Then: X wins
			assert.Equal(t, markerX, winner, "line %v", line)
			assert.True(t, board.SomeoneWon())
		})
	}

	t.Run("Mixed line does not win", func(t *testing.T) {
		// Given: the top row holds two different markers
		board := boardOf(
			markerX, markerX, markerO,
			"", "", "",
			"", "", "",
		)

		// When: looking for the winner
		winner := board.WinningMarker()

		// Then: nobody has won
		assert.Equal(t, EmptyMarker, winner)
		assert.False(t, board.SomeoneWon())
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := boardOf(
			markerX, markerO, markerX,
			markerX, markerO, markerO,
			markerO, markerX, markerX,
		)

		// When: looking for the winner
		winner := board.WinningMarker()

		// Then: nobody has won and the board is full
		assert.Equal(t, EmptyMarker, winner)
		assert.True(t, board.IsFull())
	})

	t.Run("Only lines of the table win", func(t *testing.T) {
		// Given: three X cells that do not form a line
		board := boardOf(
			markerX, markerX, "",
			"", "", markerX,
			"", "", "",
		)

		// Then: nobody has won
		assert.False(t, board.SomeoneWon())
	})
}

func TestBoard_UnmarkedIndices(t *testing.T) {
	t.Run("Shrinks by one per set", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		require.True(t, board.IsEmpty())
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, board.UnmarkedIndices())

		markers := []string{markerX, markerO}
		for i := 1; i <= BoardSize; i++ {
			before := len(board.UnmarkedIndices())

			// When: marking the next square
			board.Set(i, markers[i%2])

			// Then: exactly one index less is unmarked
			assert.Len(t, board.UnmarkedIndices(), before-1)
			assert.Equal(t, i == BoardSize, board.IsFull())
			assert.False(t, board.IsEmpty())
		}

		assert.Empty(t, board.UnmarkedIndices())
	})

	t.Run("Lists the remaining squares in order", func(t *testing.T) {
		// Given: a partly marked board
		board := boardOf(
			markerX, "", markerO,
			"", markerX, "",
			"", "", markerO,
		)

		// Then: the empty squares are listed in ascending order
		assert.Equal(t, []int{2, 4, 6, 7, 8}, board.UnmarkedIndices())
		assert.True(t, board.IsUnmarked(2))
		assert.False(t, board.IsUnmarked(1))
		assert.False(t, board.IsUnmarked(0))
		assert.False(t, board.IsUnmarked(10))
	})
}

func TestBoard_LinesWithTwoAndEmpty(t *testing.T) {
	t.Run("Empty board has none", func(t *testing.T) {
		assert.Nil(t, NewBoard().LinesWithTwoAndEmpty())
	})

	t.Run("Finds two matching markers with an empty cell", func(t *testing.T) {
		// Given: X holds 1 and 2, O holds 5 and 9
		board := boardOf(
			markerX, markerX, "",
			"", markerO, "",
			"", "", markerO,
		)

		// When: looking for near-win lines
		lines := board.LinesWithTwoAndEmpty()

		// Then: only the top row qualifies, the main diagonal has no empty cell
		assert.Equal(t, []Line{{1, 2, 3}}, lines)
	})

	t.Run("Finds lines of both players", func(t *testing.T) {
		// Given: X holds 1 and 2, O holds 4 and 5
		board := boardOf(
			markerX, markerX, "",
			markerO, markerO, "",
			"", "", "",
		)

		// When: looking for near-win lines
		lines := board.LinesWithTwoAndEmpty()

		// Then: both rows are returned in table order
		assert.Equal(t, []Line{{1, 2, 3}, {4, 5, 6}}, lines)
	})

	t.Run("Ignores mixed, single and complete lines", func(t *testing.T) {
		// Given: no line holds two equal markers next to an empty cell
		board := boardOf(
			markerX, markerO, "",
			"", "", "",
			"", "", "",
		)

		// Then: nothing is returned
		assert.Nil(t, board.LinesWithTwoAndEmpty())

		// Given: a full board
		full := boardOf(
			markerX, markerO, markerX,
			markerX, markerO, markerO,
			markerO, markerX, markerX,
		)

		// Then: nothing is returned
		assert.Nil(t, full.LinesWithTwoAndEmpty())
	})

	t.Run("Empty cell of a line", func(t *testing.T) {
		// Given: O holds 3 and 7
		board := boardOf(
			"", "", markerO,
			"", "", "",
			markerO, "", "",
		)

		// When: looking for near-win lines
		lines := board.LinesWithTwoAndEmpty()

		// Then: the anti-diagonal is returned and its empty cell is the center
		require.Equal(t, []Line{{3, 5, 7}}, lines)
		assert.Equal(t, CenterSquare, board.EmptyCellOf(lines[0]))
	})
}

func TestBoard_Mark(t *testing.T) {
	t.Run("Marks an empty square", func(t *testing.T) {
		board := NewBoard()

		err := board.Mark(5, markerX)

		require.NoError(t, err)
		assert.Equal(t, markerX, board.Get(5))
	})

	t.Run("Error on occupied square", func(t *testing.T) {
		// Given: square 5 is taken by X
		board := NewBoard()
		require.NoError(t, board.Mark(5, markerX))

		// When: O tries the same square
		err := board.Mark(5, markerO)

		// Then: ErrCellOccupied is returned and the square is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, markerX, board.Get(5))
	})

	t.Run("Error on out of range square", func(t *testing.T) {
		board := NewBoard()

		assert.ErrorIs(t, board.Mark(0, markerX), apperror.ErrInvalidCell)
		assert.ErrorIs(t, board.Mark(10, markerX), apperror.ErrInvalidCell)
		assert.True(t, board.IsEmpty())
	})

	t.Run("Error on empty marker", func(t *testing.T) {
		board := NewBoard()

		assert.ErrorIs(t, board.Mark(1, EmptyMarker), apperror.ErrInvalidMarker)
	})
}

func TestBoard_Reset(t *testing.T) {
	// Given: a board with a few marks
	board := boardOf(markerX, markerO, markerX)

	// When: resetting it
	board.Reset()

	// Then: every square is empty again
	assert.True(t, board.IsEmpty())
	assert.Equal(t, [BoardSize]string{}, board.Cells())
}

func TestBoard_TopRowWin(t *testing.T) {
	// Given: an empty board
	board := NewBoard()

	moves := []struct {
		index  int
		marker string
	}{
		{1, markerX},
		{5, markerO},
		{2, markerX},
		{8, markerO},
	}

	for _, move := range moves {
		require.NoError(t, board.Mark(move.index, move.marker))
		require.False(t, board.SomeoneWon())
	}

	// When: X plays its third move
	require.NoError(t, board.Mark(3, markerX))

	// Then: X has completed the top row
	assert.Equal(t, markerX, board.WinningMarker())
}
