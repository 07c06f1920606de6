package console

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const scoreColumnWidth = 17

func (that *Console) Render(board *entity.Board) {
	cells := board.Cells()

	square := func(i int) string {
		if cells[i] == entity.EmptyMarker {
			return " "
		}

		return that.marker(cells[i])
	}

	that.println()
	for row := 0; row < 3; row++ {
		if row > 0 {
			that.println("     -----+-----+-----")
		}

		that.println("          |     |")
		that.printf("       %s  |  %s  |  %s\n", square(row*3), square(row*3+1), square(row*3+2))
		that.println("          |     |")
	}
	that.println()
}

func (that *Console) Announce(event entity.Event) {
	switch event.Kind {
	case entity.EventWelcome:
		that.println(that.heading("Welcome to Tic Tac Toe"))
		that.println()
	case entity.EventOpponent:
		that.printf("\nYour opponent for this game is %s who will use the letter %s as a marker\n\n",
			event.Player.Name, that.marker(event.Player.Marker))
	case entity.EventMatchStart:
		that.printf("The first player to win %d rounds wins the game\n", event.WinsToMatch)
		that.printf("%s starts the game.\n", event.Player.Name)
		that.println("\nPress 'enter' to begin")
	case entity.EventLegend:
		that.printf("%s uses %s. %s uses %s.\n",
			event.Human.Name, that.marker(event.Human.Marker),
			event.Computer.Name, that.marker(event.Computer.Marker))
	case entity.EventRoundWon:
		that.printf("%s has won the round\n", event.Player.Name)
	case entity.EventRoundTie:
		that.println("It's a tie!")
	case entity.EventScore:
		that.println("\n" + that.heading("The score is:"))
		that.println(scoreLine(event.Human))
		that.println(scoreLine(event.Computer))
		that.println()
	case entity.EventNewRound:
		that.println("New Round")
		that.println()
	case entity.EventMatchWon:
		if event.Human != nil && event.Player == event.Human {
			that.println(that.heading("Congratulations. You have won the game!"))
		} else {
			that.println(that.heading(event.Player.Name + " has won the game!"))
		}
	case entity.EventNewMatch:
		that.println("New Game!")
		that.println()
	case entity.EventGoodbye:
		that.println("Thank you for playing Tic Tac Toe. Goodbye")
	}
}

func scoreLine(player *entity.Player) string {
	return fmt.Sprintf("%*s", scoreColumnWidth, fmt.Sprintf("%s has %d", player.Name, player.Wins))
}
