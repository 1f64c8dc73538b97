// Package ai implements the computer player: a deduction engine over the
// suggestion history plus movement and suggestion policies.
package ai

import (
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/board"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
)

// Brain is an AI-controlled seat. All decisions are pure functions of its
// knowledge and the injected random source; it never blocks on input and
// only ever selects from legal candidate sets.
type Brain struct {
	name          string
	cfg           *config.GameConfig
	brd           *board.Board
	players       []string
	hand          map[string]struct{}
	position      string
	eliminated    bool
	knowledge     *Knowledge
	visitedRooms  map[string]bool
	recentTargets *recentRing
	strategies    []SuggestionStrategy
	chooser       Chooser
	rng           *rand.Rand
	log           logrus.FieldLogger
}

// NewBrain creates an AI player with injected logger, random source, and
// chooser. Tests pass a DeterministicChooser and a fixed seed.
func NewBrain(logger logrus.FieldLogger, rng *rand.Rand, chooser Chooser) *Brain {
	return &Brain{
		strategies: []SuggestionStrategy{
			ExploitStrategy{},
			SurgicalStrikeStrategy{},
			ExploreStrategy{},
		},
		chooser: chooser,
		rng:     rng,
		log:     logger,
	}
}

func (b *Brain) Name() string  { return b.name }
func (b *Brain) IsHuman() bool { return false }

func (b *Brain) Hand() []string {
	cards := make([]string, 0, len(b.hand))
	for card := range b.hand {
		cards = append(cards, card)
	}
	sort.Strings(cards)
	return cards
}

func (b *Brain) HasCard(card string) bool {
	_, ok := b.hand[card]
	return ok
}

func (b *Brain) Position() string { return b.position }

func (b *Brain) SetPosition(loc string) {
	b.position = loc
	if b.brd != nil && b.brd.IsRoom(loc) {
		b.visitedRooms[loc] = true
	}
}

func (b *Brain) Eliminated() bool { return b.eliminated }
func (b *Brain) Eliminate()       { b.eliminated = true }

func (b *Brain) Setup(cfg *config.GameConfig, brd *board.Board, playerNames []string, myName string) {
	b.name = myName
	b.cfg = cfg
	b.brd = brd
	b.players = append([]string(nil), playerNames...)
	b.hand = make(map[string]struct{})
	b.visitedRooms = make(map[string]bool)
	b.recentTargets = newRecentRing(3)
	b.log = b.log.WithField("player", myName)
	b.knowledge = NewKnowledge(cfg, b.players, myName, b.log)
	b.log.Debugf("deduction engine initialized")
}

func (b *Brain) ReceiveHand(cards []string) {
	for _, card := range cards {
		b.hand[card] = struct{}{}
		b.knowledge.MarkInHand(card)
	}
	b.knowledge.Deduce()
}

// Knowledge exposes the deduction state for rendering and tests.
func (b *Brain) Knowledge() *Knowledge { return b.knowledge }

func (b *Brain) Config() *config.GameConfig { return b.cfg }

// HandleEvent feeds resolved turns into the deduction engine.
func (b *Brain) HandleEvent(e events.Event) {
	ev, ok := e.(events.TurnResolvedEvent)
	if !ok {
		return
	}
	b.processTurn(ev)
}

func (b *Brain) processTurn(ev events.TurnResolvedEvent) {
	switch {
	case ev.DisproverName == "":
		// No one refuted. Weak evidence only: each suggested card not in
		// our own hand may be in the solution, but is not eliminated.
		for _, card := range ev.Suggestion {
			if !b.HasCard(card) {
				b.knowledge.MarkSuspected(card)
			}
		}
	case ev.RevealedCard != "":
		// We witnessed the shown card, as suggester or as refuter.
		b.knowledge.MarkShown(ev.RevealedCard, ev.DisproverName)
	case ev.SuggesterName != b.name && ev.DisproverName != b.name:
		// Two other players exchanged a card we could not see.
		cards := make([]string, 0, len(ev.Suggestion))
		for _, card := range ev.Suggestion {
			cards = append(cards, card)
		}
		sort.Strings(cards)
		b.knowledge.NoteMystery(ev.DisproverName, cards)
	}
	b.knowledge.Deduce()
}

// ChooseMove picks one legal destination, routed toward the most promising
// room: unvisited solution candidates first, then any candidate room, with
// a uniform random fallback when nothing stands out.
func (b *Brain) ChooseMove(legal []string) string {
	if len(legal) == 0 {
		return ""
	}
	filters := []func(string) bool{
		func(room string) bool {
			return room != b.position && !b.visitedRooms[room] && !b.knowledge.NotInSolution(room)
		},
		func(room string) bool {
			return room != b.position && !b.knowledge.NotInSolution(room)
		},
	}
	for _, filter := range filters {
		target, _, ok := b.brd.ClosestRoom(b.position, filter)
		if !ok {
			continue
		}
		path, err := b.brd.ShortestPath(b.position, target)
		if err != nil || len(path) == 0 {
			continue
		}
		for _, option := range legal {
			if option == path[0] {
				return option
			}
		}
	}
	return b.chooser.Choose(legal)
}

// MakeSuggestion builds a suggestion for the room the AI occupies, or nil
// when it stands in a corridor. In this variant an AI suggestion must name
// its current room.
func (b *Brain) MakeSuggestion() map[config.CardCategory]string {
	if !b.brd.IsRoom(b.position) {
		return nil
	}
	for _, s := range b.strategies {
		if suggestion, ok := s.BuildSuggestion(b); ok {
			suggestion[config.CategoryRoom] = b.position
			return suggestion
		}
	}
	suggestion := ExploreStrategy{}.mustBuild(b)
	suggestion[config.CategoryRoom] = b.position
	return suggestion
}

// ShouldAccuse accuses only at full certainty: exactly one remaining
// candidate in every category.
func (b *Brain) ShouldAccuse() map[config.CardCategory]string {
	solution := b.knowledge.SolutionIfCertain()
	if solution != nil {
		b.log.Infof("certain of the solution, accusing: %v", solution)
	}
	return solution
}

// ChooseCardToShow picks the first matching card in suspect, weapon, room
// order, so refutations are deterministic.
func (b *Brain) ChooseCardToShow(suggestion map[config.CardCategory]string) string {
	for _, cat := range config.Categories() {
		if card, ok := suggestion[cat]; ok && b.HasCard(card) {
			return card
		}
	}
	return ""
}
