package player

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type squareReader interface {
	ReadSquare(ctx context.Context, name string, unmarked []int) (int, error)
}

// Human - player whose squares come from the console.
type Human struct {
	profile *entity.Player
	reader  squareReader
}

func NewHuman(profile *entity.Player, reader squareReader) *Human {
	return &Human{
		profile: profile,
		reader:  reader,
	}
}

func (that *Human) Profile() *entity.Player {
	return that.profile
}

func (that *Human) ChooseSquare(ctx context.Context, board *entity.Board) (int, error) {
	square, err := that.reader.ReadSquare(ctx, that.profile.Name, board.UnmarkedIndices())
	if err != nil {
		return 0, fmt.Errorf("could not read square: %w", err)
	}

	return square, nil
}
