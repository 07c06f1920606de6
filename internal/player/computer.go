package player

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var DefaultComputerNames = []string{"Blue Chip", "Kazaam", "Steel"}

// Computer - opponent that picks squares with a fixed priority: win, block, center, random.
type Computer struct {
	profile *entity.Player
	random  Random
}

func NewComputer(profile *entity.Player, random Random) *Computer {
	return &Computer{
		profile: profile,
		random:  random,
	}
}

// NewComputerProfile - random name from names and a random letter marker different from humanMarker.
func NewComputerProfile(names []string, humanMarker string, random Random) *entity.Player {
	if len(names) == 0 {
		names = DefaultComputerNames
	}

	markers := make([]string, 0, 26)
	for letter := 'A'; letter <= 'Z'; letter++ {
		if string(letter) != humanMarker {
			markers = append(markers, string(letter))
		}
	}

	return entity.NewPlayer(names[random.Intn(len(names))], markers[random.Intn(len(markers))])
}

func (that *Computer) Profile() *entity.Player {
	return that.profile
}

func (that *Computer) ChooseSquare(_ context.Context, board *entity.Board) (int, error) {
	if lines := board.LinesWithTwoAndEmpty(); lines != nil {
		if square, ok := that.winningSquare(board, lines); ok {
			return square, nil
		}

		return that.defensiveSquare(board, lines), nil
	}

	if board.IsUnmarked(entity.CenterSquare) {
		return entity.CenterSquare, nil
	}

	unmarked := board.UnmarkedIndices()
	if len(unmarked) == 0 {
		return 0, apperror.ErrNoAvailableSquares
	}

	return unmarked[that.random.Intn(len(unmarked))], nil
}

func (that *Computer) winningSquare(board *entity.Board, lines []entity.Line) (int, bool) {
	var own []entity.Line
	for _, line := range lines {
		if that.holdsLine(board, line) {
			own = append(own, line)
		}
	}

	if len(own) == 0 {
		return 0, false
	}

	return board.EmptyCellOf(that.pick(own)), true
}

// defensiveSquare - any near-win line qualifies, own lines were already taken by winningSquare.
func (that *Computer) defensiveSquare(board *entity.Board, lines []entity.Line) int {
	return board.EmptyCellOf(that.pick(lines))
}

func (that *Computer) holdsLine(board *entity.Board, line entity.Line) bool {
	for _, index := range line {
		if board.Get(index) == that.profile.Marker {
			return true
		}
	}

	return false
}

func (that *Computer) pick(lines []entity.Line) entity.Line {
	return lines[that.random.Intn(len(lines))]
}
