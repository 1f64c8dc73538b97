package player

import (
	"sort"

	"github.com/jfm56/Cluedo-Game/internal/board"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
)

// HumanPlayer is a seat controlled by a person. Its decisions arrive
// through the engine's prompt cycle, so the policy methods all abstain.
type HumanPlayer struct {
	name         string
	cfg          *config.GameConfig
	hand         map[string]struct{}
	position     string
	eliminated   bool
	eventManager *events.Manager
}

// NewHumanPlayer creates a human seat publishing to the given bus.
func NewHumanPlayer(eventManager *events.Manager) *HumanPlayer {
	return &HumanPlayer{
		hand:         make(map[string]struct{}),
		eventManager: eventManager,
	}
}

func (h *HumanPlayer) Name() string  { return h.name }
func (h *HumanPlayer) IsHuman() bool { return true }

func (h *HumanPlayer) Hand() []string {
	cards := make([]string, 0, len(h.hand))
	for card := range h.hand {
		cards = append(cards, card)
	}
	sort.Strings(cards)
	return cards
}

func (h *HumanPlayer) HasCard(card string) bool {
	_, ok := h.hand[card]
	return ok
}

func (h *HumanPlayer) Position() string       { return h.position }
func (h *HumanPlayer) SetPosition(loc string) { h.position = loc }
func (h *HumanPlayer) Eliminated() bool       { return h.eliminated }
func (h *HumanPlayer) Eliminate()             { h.eliminated = true }

func (h *HumanPlayer) Setup(cfg *config.GameConfig, _ *board.Board, _ []string, myName string) {
	h.name = myName
	h.cfg = cfg
}

func (h *HumanPlayer) ReceiveHand(cards []string) {
	for _, card := range cards {
		h.hand[card] = struct{}{}
	}
	h.eventManager.Publish(events.HumanHandRevealedEvent{
		PlayerName: h.name,
		Hand:       h.Hand(),
	})
}

func (h *HumanPlayer) HandleEvent(events.Event) {}

// ChooseCardToShow picks the first matching card in suspect, weapon, room
// order. The turn state machine has no refutation phase, so the human's
// refutation choice is deterministic rather than prompted.
func (h *HumanPlayer) ChooseCardToShow(suggestion map[config.CardCategory]string) string {
	for _, cat := range config.Categories() {
		if card, ok := suggestion[cat]; ok && h.HasCard(card) {
			return card
		}
	}
	return ""
}

// Interactive decisions are collected by the engine's prompt cycle.
func (h *HumanPlayer) ChooseMove([]string) string                     { return "" }
func (h *HumanPlayer) MakeSuggestion() map[config.CardCategory]string { return nil }
func (h *HumanPlayer) ShouldAccuse() map[config.CardCategory]string   { return nil }
