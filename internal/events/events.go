// Package events carries the game's publish/subscribe bus. Rendering and
// AI deduction both hang off it, which keeps the engine loop free of any
// output or knowledge-tracking concerns.
package events

import (
	"github.com/jfm56/Cluedo-Game/internal/config"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener is implemented by any component that reacts to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager dispatches events to subscribed listeners, in subscription order.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Subscribe(l Listener) {
	m.listeners = append(m.listeners, l)
}

func (m *Manager) Publish(e Event) {
	for _, l := range m.listeners {
		l.HandleEvent(e)
	}
}

// --- Rendering events ---

type GameReadyEvent struct {
	GameID  string
	Players []string
}

type TurnStartEvent struct {
	TurnNumber int
	PlayerName string
}

type MoveEvent struct {
	PlayerName string
	From       string
	To         string
	FromCoord  string
	ToCoord    string
}

type SuggestionMadeEvent struct {
	PlayerName string
	Suggestion map[config.CardCategory]string
}

type DisprovalEvent struct {
	SuggesterName string
	DisproverName string
}

type NoDisprovalEvent struct {
	SuggesterName string
}

type AccusationEvent struct {
	PlayerName  string
	Accusation  map[config.CardCategory]string
	IsCorrect   bool
	GuessesLeft int
}

type HumanHandRevealedEvent struct {
	PlayerName string
	Hand       []string
}

type GameOverEvent struct {
	Winner   string // empty when the game was lost or aborted
	Solution map[config.CardCategory]string
	Lost     bool
}

// --- AI logic event ---

// TurnResolvedEvent is the private per-player fan-out of a resolved
// suggestion. RevealedCard is populated only on the copies delivered to the
// suggester and the refuter; everyone else learns just who disproved whom.
type TurnResolvedEvent struct {
	SuggesterName string
	Suggestion    map[config.CardCategory]string
	DisproverName string // empty if no one disproved
	RevealedCard  string // empty unless the recipient saw the card
}
