package entity

type EventKind string

const (
	EventWelcome     EventKind = "welcome"
	EventOpponent    EventKind = "opponent"
	EventMatchStart  EventKind = "match:start"
	EventLegend      EventKind = "legend"
	EventRoundWon    EventKind = "round:won"
	EventRoundTie    EventKind = "round:tie"
	EventScore       EventKind = "score"
	EventNewRound    EventKind = "round:new"
	EventMatchWon    EventKind = "match:won"
	EventNewMatch    EventKind = "match:new"
	EventGoodbye     EventKind = "goodbye"
)

// Event - something the display sink should tell the human about.
type Event struct {
	Kind EventKind

	// Player is the subject of the event: the round or match winner, the first mover, the opponent.
	Player *Player

	// Human and Computer are set for events that show both sides.
	Human    *Player
	Computer *Player

	WinsToMatch int
}
