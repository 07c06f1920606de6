package tictactoe

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const DefaultWinsToMatch = 5

const (
	PromptGoFirst   = "Would you like to mark the first square in this round?"
	PromptNextRound = "Would you like to play the next round?"
	PromptNewMatch  = "Would you like to play a new game?"
)

type State string

const (
	StateIdle            State = "idle"
	StateRoundInProgress State = "round:in-progress"
	StateRoundOver       State = "round:over"
	StateScoreUpdated    State = "score:updated"
	StateMatchOver       State = "match:over"
	StateTerminated      State = "terminated"
)

// FirstMover - policy deciding who marks the first square of a round.
type FirstMover string

const (
	FirstMoverHuman     FirstMover = "human"
	FirstMoverComputer  FirstMover = "computer"
	FirstMoverChoose    FirstMover = "choose"
	FirstMoverAlternate FirstMover = "alternate"
)

type Options struct {
	WinsToMatch int
	FirstMover  FirstMover
}

type playerDep interface {
	Profile() *entity.Player
	ChooseSquare(ctx context.Context, board *entity.Board) (int, error)
}

type displayDep interface {
	Clear()
	Render(board *entity.Board)
	Announce(event entity.Event)
}

type promptDep interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
	WaitForEnter(ctx context.Context) error
}
