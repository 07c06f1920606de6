package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
)

// MatchController - runs rounds until a player reaches the winning tally, then offers a new match.
type MatchController struct {
	logger *slog.Logger

	board    *entity.Board
	human    playerDep
	computer playerDep
	display  displayDep
	prompt   promptDep

	winsToMatch int
	firstMover  FirstMover

	state         State
	currentMarker string
	roundStarter  string
	matchID       string
}

func NewMatchController(
	logger *slog.Logger,
	board *entity.Board,
	human, computer playerDep,
	display displayDep,
	prompt promptDep,
	opts Options,
) *MatchController {
	if opts.WinsToMatch <= 0 {
		opts.WinsToMatch = DefaultWinsToMatch
	}

	if opts.FirstMover == "" {
		opts.FirstMover = FirstMoverChoose
	}

	return &MatchController{
		logger: logger.With("component", "match_controller"),

		board:    board,
		human:    human,
		computer: computer,
		display:  display,
		prompt:   prompt,

		winsToMatch: opts.WinsToMatch,
		firstMover:  opts.FirstMover,

		state: StateIdle,
	}
}

func (that *MatchController) State() State {
	return that.state
}

// Play - plays matches until the human declines a new one.
func (that *MatchController) Play(ctx context.Context) error {
	for {
		winner, err := that.PlayMatch(ctx)
		if err != nil {
			return fmt.Errorf("match failed: %w", err)
		}

		if winner != nil {
			that.display.Announce(entity.Event{
				Kind:        entity.EventMatchWon,
				Player:      winner,
				Human:       that.human.Profile(),
				WinsToMatch: that.winsToMatch,
			})
		}

		again, err := that.prompt.Confirm(ctx, PromptNewMatch)
		if err != nil {
			return fmt.Errorf("could not confirm new game: %w", err)
		}

		that.display.Clear()

		if !again {
			break
		}

		that.display.Announce(entity.Event{Kind: entity.EventNewMatch})
	}

	that.setState(StateTerminated)
	that.display.Announce(entity.Event{Kind: entity.EventGoodbye})

	return nil
}

// PlayMatch - resets the scores and plays rounds. The winner is nil when the human stopped early.
func (that *MatchController) PlayMatch(ctx context.Context) (*entity.Player, error) {
	if err := that.startMatch(ctx); err != nil {
		return nil, err
	}

	for {
		if _, err := that.PlayRound(ctx); err != nil {
			return nil, fmt.Errorf("round failed: %w", err)
		}

		that.displayResults()

		if winner := that.MatchWinner(); winner != nil {
			that.setState(StateMatchOver)
			that.logger.Info("match finished", "match_id", that.matchID, "winner", winner.Name,
				"human_wins", that.human.Profile().Wins, "computer_wins", that.computer.Profile().Wins)

			return winner, nil
		}

		next, err := that.prompt.Confirm(ctx, PromptNextRound)
		if err != nil {
			return nil, fmt.Errorf("could not confirm next round: %w", err)
		}

		that.display.Clear()

		if !next {
			that.setState(StateMatchOver)
			that.logger.Info("match abandoned", "match_id", that.matchID)

			return nil, nil
		}

		if err = that.startRound(ctx); err != nil {
			return nil, err
		}
	}
}

// PlayRound - alternates turns until a line is completed or the board is full.
// Returns the winning marker, EmptyMarker for a tie.
func (that *MatchController) PlayRound(ctx context.Context) (string, error) {
	log := that.logger.With("match_id", that.matchID)

	if that.currentMarker == entity.EmptyMarker {
		that.currentMarker = that.human.Profile().Marker
	}

	that.setState(StateRoundInProgress)

	if that.isHumanTurn() {
		that.displayBoard()
	}

	for {
		if err := ctx.Err(); err != nil {
			return entity.EmptyMarker, err
		}

		if err := that.currentPlayerMoves(ctx); err != nil {
			return entity.EmptyMarker, err
		}

		that.toggleCurrentMarker()

		if winner := that.board.WinningMarker(); winner != entity.EmptyMarker {
			that.setState(StateRoundOver)
			that.incrementWinnerScore(winner)
			log.Info("round won", "marker", winner)

			return winner, nil
		}

		if that.board.IsFull() {
			that.setState(StateRoundOver)
			that.setState(StateScoreUpdated)
			log.Info("round tied")

			return entity.EmptyMarker, nil
		}

		if that.isHumanTurn() {
			that.display.Clear()
			that.displayBoard()
		}
	}
}

// MatchWinner - the player whose tally reached the winning number, nil while the match goes on.
func (that *MatchController) MatchWinner() *entity.Player {
	switch {
	case that.human.Profile().HasWon(that.winsToMatch):
		return that.human.Profile()
	case that.computer.Profile().HasWon(that.winsToMatch):
		return that.computer.Profile()
	default:
		return nil
	}
}

func (that *MatchController) startMatch(ctx context.Context) error {
	that.matchID = pkg.GenerateMatchID()
	that.roundStarter = entity.EmptyMarker

	that.human.Profile().ResetWins()
	that.computer.Profile().ResetWins()
	that.board.Reset()

	if err := that.resetFirstMover(ctx); err != nil {
		return err
	}

	that.logger.Info("match started", "match_id", that.matchID, "first_mover", that.currentPlayer().Profile().Name)

	that.display.Announce(entity.Event{
		Kind:        entity.EventMatchStart,
		Player:      that.currentPlayer().Profile(),
		WinsToMatch: that.winsToMatch,
	})

	if err := that.prompt.WaitForEnter(ctx); err != nil {
		return fmt.Errorf("could not start match: %w", err)
	}

	that.display.Clear()

	return nil
}

func (that *MatchController) startRound(ctx context.Context) error {
	that.board.Reset()
	that.display.Announce(entity.Event{Kind: entity.EventNewRound})

	return that.resetFirstMover(ctx)
}

func (that *MatchController) resetFirstMover(ctx context.Context) error {
	humanMarker := that.human.Profile().Marker
	computerMarker := that.computer.Profile().Marker

	switch that.firstMover {
	case FirstMoverHuman:
		that.currentMarker = humanMarker
	case FirstMoverComputer:
		that.currentMarker = computerMarker
	case FirstMoverAlternate:
		if that.roundStarter == humanMarker {
			that.currentMarker = computerMarker
		} else {
			that.currentMarker = humanMarker
		}
	default:
		goFirst, err := that.prompt.Confirm(ctx, PromptGoFirst)
		if err != nil {
			return fmt.Errorf("could not decide first mover: %w", err)
		}

		if goFirst {
			that.currentMarker = humanMarker
		} else {
			that.currentMarker = computerMarker
		}

		that.display.Clear()
	}

	that.roundStarter = that.currentMarker

	return nil
}

func (that *MatchController) currentPlayerMoves(ctx context.Context) error {
	current := that.currentPlayer()
	profile := current.Profile()

	square, err := current.ChooseSquare(ctx, that.board)
	if err != nil {
		return fmt.Errorf("%s could not choose a square: %w", profile.Name, err)
	}

	// move sources promise a free square, a broken promise ends the round with an error
	if err = that.board.Mark(square, profile.Marker); err != nil {
		return fmt.Errorf("invalid move by %s: %w", profile.Name, err)
	}

	that.logger.Debug("square marked", "match_id", that.matchID, "player", profile.Name, "square", square)

	return nil
}

func (that *MatchController) currentPlayer() playerDep {
	if that.isHumanTurn() {
		return that.human
	}

	return that.computer
}

func (that *MatchController) isHumanTurn() bool {
	return that.currentMarker == that.human.Profile().Marker
}

func (that *MatchController) toggleCurrentMarker() {
	if that.isHumanTurn() {
		that.currentMarker = that.computer.Profile().Marker
	} else {
		that.currentMarker = that.human.Profile().Marker
	}
}

func (that *MatchController) incrementWinnerScore(winner string) {
	switch winner {
	case that.human.Profile().Marker:
		that.human.Profile().AddWin()
	case that.computer.Profile().Marker:
		that.computer.Profile().AddWin()
	}

	that.setState(StateScoreUpdated)
}

func (that *MatchController) displayBoard() {
	that.display.Announce(entity.Event{
		Kind:     entity.EventLegend,
		Human:    that.human.Profile(),
		Computer: that.computer.Profile(),
	})
	that.display.Render(that.board)
}

func (that *MatchController) displayResults() {
	that.display.Clear()
	that.displayBoard()

	switch winner := that.board.WinningMarker(); winner {
	case that.human.Profile().Marker:
		that.display.Announce(entity.Event{Kind: entity.EventRoundWon, Player: that.human.Profile()})
	case that.computer.Profile().Marker:
		that.display.Announce(entity.Event{Kind: entity.EventRoundWon, Player: that.computer.Profile()})
	default:
		that.display.Announce(entity.Event{Kind: entity.EventRoundTie})
	}

	that.display.Announce(entity.Event{
		Kind:        entity.EventScore,
		Human:       that.human.Profile(),
		Computer:    that.computer.Profile(),
		WinsToMatch: that.winsToMatch,
	})
}

func (that *MatchController) setState(state State) {
	that.logger.Debug("state changed", "match_id", that.matchID, "from", that.state, "to", state)
	that.state = state
}
