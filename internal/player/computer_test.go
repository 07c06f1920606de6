package player

import (
	"context"
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	markerX = "X"
	markerO = "O"
)

// stubRandom returns its values in order and records every bound it was asked for.
type stubRandom struct {
	values []int
	bounds []int
}

func (that *stubRandom) Intn(n int) int {
	that.bounds = append(that.bounds, n)

	if len(that.values) == 0 {
		return 0
	}

	value := that.values[0]
	that.values = that.values[1:]

	return value % n
}

func boardOf(markers ...string) *entity.Board {
	board := entity.NewBoard()
	for i, marker := range markers {
		if marker != entity.EmptyMarker {
			board.Set(i+1, marker)
		}
	}

	return board
}

func TestComputer_ChooseSquare(t *testing.T) {
	ctx := context.Background()

	t.Run("Completes its own line", func(t *testing.T) {
		// Given: the computer plays X and holds 1 and 2
		computer := NewComputer(entity.NewPlayer("Steel", markerX), &stubRandom{})
		board := boardOf(
			markerX, markerX, "",
			markerO, markerO, "",
			"", "", "",
		)

		// When: choosing a square
		square, err := computer.ChooseSquare(ctx, board)

		// Then: it wins at 3 instead of blocking at 6
		require.NoError(t, err)
		assert.Equal(t, 3, square)
	})

	t.Run("Blocks the opponent", func(t *testing.T) {
		// Given: the computer plays X and O holds 1 and 2
		computer := NewComputer(entity.NewPlayer("Steel", markerX), &stubRandom{})
		board := boardOf(
			markerO, markerO, "",
			"", markerX, "",
			"", "", "",
		)

		// When: choosing a square
		square, err := computer.ChooseSquare(ctx, board)

		// Then: it blocks at 3
		require.NoError(t, err)
		assert.Equal(t, 3, square)
	})

	t.Run("Takes the center", func(t *testing.T) {
		// Given: no near-win line and a free center
		computer := NewComputer(entity.NewPlayer("Steel", markerX), &stubRandom{})
		board := boardOf(
			markerO, "", "",
			"", "", "",
			"", "", "",
		)

		// When: choosing a square
		square, err := computer.ChooseSquare(ctx, board)

		// Then: it takes 5
		require.NoError(t, err)
		assert.Equal(t, entity.CenterSquare, square)
	})

	t.Run("Picks an unmarked square when the center is taken", func(t *testing.T) {
		// Given: the center is taken and there is no near-win line
		random := &stubRandom{values: []int{2}}
		computer := NewComputer(entity.NewPlayer("Steel", markerX), random)
		board := boardOf(
			"", "", "",
			"", markerO, "",
			"", "", "",
		)

		// When: choosing a square
		square, err := computer.ChooseSquare(ctx, board)

		// Then: it draws uniformly from the eight free squares
		require.NoError(t, err)
		assert.True(t, board.IsUnmarked(square))
		assert.Equal(t, 3, square)
		assert.Equal(t, []int{8}, random.bounds)
	})

	t.Run("Chooses among several winning lines at random", func(t *testing.T) {
		// Given: X can complete either the top row or the left column
		random := &stubRandom{values: []int{1}}
		computer := NewComputer(entity.NewPlayer("Steel", markerX), random)
		board := boardOf(
			markerX, markerX, "",
			markerX, markerO, "",
			"", markerO, "",
		)

		// When: choosing a square
		square, err := computer.ChooseSquare(ctx, board)

		// Then: the second winning line is picked and its empty cell is 7
		require.NoError(t, err)
		assert.Equal(t, 7, square)
		assert.Equal(t, []int{2}, random.bounds)
	})

	t.Run("Chooses among several blocking lines at random", func(t *testing.T) {
		// Given: O threatens the middle column and the main diagonal, X has no line to finish
		random := &stubRandom{values: []int{1}}
		computer := NewComputer(entity.NewPlayer("Steel", markerX), random)
		board := boardOf(
			markerO, markerO, markerX,
			markerX, markerO, "",
			"", "", "",
		)

		// When: choosing a square
		square, err := computer.ChooseSquare(ctx, board)

		// Then: the second threat is blocked at 9
		require.NoError(t, err)
		assert.Equal(t, 9, square)
		assert.Equal(t, []int{2}, random.bounds)
	})

	t.Run("Error on a full board", func(t *testing.T) {
		computer := NewComputer(entity.NewPlayer("Steel", markerX), &stubRandom{})
		board := boardOf(
			markerX, markerO, markerX,
			markerX, markerO, markerO,
			markerO, markerX, markerX,
		)

		_, err := computer.ChooseSquare(ctx, board)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableSquares)
	})

	t.Run("Always returns an unmarked square", func(t *testing.T) {
		// Given: a seeded random source and random games
		random := rand.New(rand.NewSource(42)) //nolint: gosec // it's ok
		computer := NewComputer(entity.NewPlayer("Steel", markerX), random)

		for i := 0; i < 200; i++ {
			board := entity.NewBoard()
			marker := markerO

			for !board.IsFull() && !board.SomeoneWon() {
				var square int
				if marker == markerX {
					var err error
					square, err = computer.ChooseSquare(ctx, board)
					require.NoError(t, err)
				} else {
					unmarked := board.UnmarkedIndices()
					square = unmarked[random.Intn(len(unmarked))]
				}

				// Then: every move lands on a free square
				require.NoError(t, board.Mark(square, marker))

				if marker == markerX {
					marker = markerO
				} else {
					marker = markerX
				}
			}
		}
	})
}

func TestNewComputerProfile(t *testing.T) {
	t.Run("Never takes the human marker", func(t *testing.T) {
		// Given: the random source always picks the first candidate
		random := &stubRandom{}

		// When: the human took A
		profile := NewComputerProfile([]string{"Kazaam"}, "A", random)

		// Then: the computer gets B out of 25 letters
		assert.Equal(t, "Kazaam", profile.Name)
		assert.Equal(t, "B", profile.Marker)
		assert.Equal(t, []int{1, 25}, random.bounds)
	})

	t.Run("Keeps all letters for a digit marker", func(t *testing.T) {
		random := &stubRandom{values: []int{2, 25}}

		profile := NewComputerProfile(nil, "7", random)

		assert.Equal(t, "Steel", profile.Name)
		assert.Equal(t, "Z", profile.Marker)
		assert.Zero(t, profile.Wins)
	})
}
