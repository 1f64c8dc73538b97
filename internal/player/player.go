package player

import (
	"github.com/jfm56/Cluedo-Game/internal/board"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
)

// Player is the capability interface every seat at the table implements,
// human or AI. Decision methods are pure for AI players; the human
// implementation defers them to the engine's prompt cycle and returns nil.
// Players also listen on the event bus to maintain their own knowledge.
type Player interface {
	events.Listener

	Name() string
	IsHuman() bool
	Hand() []string
	HasCard(card string) bool
	Position() string
	SetPosition(loc string)
	Eliminated() bool
	Eliminate()

	Setup(cfg *config.GameConfig, b *board.Board, playerNames []string, myName string)
	ReceiveHand(cards []string)

	// ChooseMove picks one of the legal destination spaces. Humans return
	// "" and are prompted instead.
	ChooseMove(legal []string) string
	// MakeSuggestion builds a suggestion for the player's current room, or
	// nil to skip. Humans return nil and are prompted instead.
	MakeSuggestion() map[config.CardCategory]string
	// ShouldAccuse returns a full accusation when the player is certain,
	// nil otherwise. Humans return nil and are prompted instead.
	ShouldAccuse() map[config.CardCategory]string
	// ChooseCardToShow picks the card this player reveals to refute the
	// suggestion, or "" when the hand has no match.
	ChooseCardToShow(suggestion map[config.CardCategory]string) string
}
