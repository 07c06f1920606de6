package entity

// Player - identity and round-win tally of a participant.
type Player struct {
	Name   string
	Marker string
	Wins   int
}

func NewPlayer(name, marker string) *Player {
	return &Player{
		Name:   name,
		Marker: marker,
	}
}

func (that *Player) AddWin() {
	that.Wins++
}

func (that *Player) ResetWins() {
	that.Wins = 0
}

// HasWon - reports whether the tally reached the number of round wins that takes the match.
func (that *Player) HasWon(winsToMatch int) bool {
	return that.Wins >= winsToMatch
}
