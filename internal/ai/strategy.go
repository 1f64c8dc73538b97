package ai

import (
	"sort"

	"github.com/jfm56/Cluedo-Game/internal/config"
)

// SuggestionStrategy builds the suspect and weapon halves of a suggestion.
// The room is always the room the AI occupies, so strategies only decide
// the other two categories. Strategies are tried in priority order; the
// first that applies wins.
type SuggestionStrategy interface {
	BuildSuggestion(b *Brain) (map[config.CardCategory]string, bool)
}

var probeCategories = []config.CardCategory{config.CategorySuspect, config.CategoryWeapon}

// ExploitStrategy fires once part of the solution is known: it repeats the
// known cards so any refutation must target the remaining unknowns.
type ExploitStrategy struct{}

func (ExploitStrategy) BuildSuggestion(b *Brain) (map[config.CardCategory]string, bool) {
	suggestion := make(map[config.CardCategory]string, 2)
	known := 0
	for _, cat := range probeCategories {
		if card, ok := b.knowledge.solutionFor(cat); ok {
			suggestion[cat] = card
			known++
		}
	}
	if known == 0 {
		return nil, false
	}
	b.log.Debugf("strategy: exploit (%d/2 probe categories solved)", known)
	for _, cat := range probeCategories {
		if _, ok := suggestion[cat]; !ok {
			suggestion[cat] = b.pickUnknownCard(cat)
		}
	}
	return suggestion, true
}

// SurgicalStrikeStrategy probes the card most often implicated by open
// mysteries, padding the other category from its own hand so the probe
// result is unambiguous.
type SurgicalStrikeStrategy struct{}

func (SurgicalStrikeStrategy) BuildSuggestion(b *Brain) (map[config.CardCategory]string, bool) {
	frequency := make(map[string]int)
	for _, m := range b.knowledge.Mysteries() {
		for card := range m.PossibleCards {
			if cat := b.cfg.CardToType[card]; cat == config.CategoryRoom {
				continue // the room slot is pinned to our position
			}
			frequency[card]++
		}
	}
	if len(frequency) == 0 {
		return nil, false
	}

	targets := sortByFrequency(frequency)
	var patient []string
	for _, card := range targets {
		if !b.recentTargets.Contains(card) {
			patient = append(patient, card)
		}
	}
	if len(patient) == 0 {
		patient = targets
	}
	// Only the top-frequency band goes to the chooser, so the probe always
	// hits a most-implicated card.
	top := patient[:1]
	for _, card := range patient[1:] {
		if frequency[card] == frequency[top[0]] {
			top = append(top, card)
		}
	}
	target := b.chooser.Choose(top)
	b.recentTargets.Push(target)
	b.log.Debugf("strategy: surgical strike on %q", target)

	suggestion := map[config.CardCategory]string{b.cfg.CardToType[target]: target}
	// Pad the other category with a card from our own hand when possible:
	// a held card cannot be the one shown, so the probe stays clean.
	for _, cat := range probeCategories {
		if _, ok := suggestion[cat]; ok {
			continue
		}
		if card := b.handCardOfCategory(cat); card != "" {
			suggestion[cat] = card
		} else {
			suggestion[cat] = b.pickUnknownCard(cat)
		}
	}
	return suggestion, true
}

// ExploreStrategy is the fallback: probe unknowns in both categories.
type ExploreStrategy struct{}

func (s ExploreStrategy) BuildSuggestion(b *Brain) (map[config.CardCategory]string, bool) {
	b.log.Debugf("strategy: explore")
	return s.mustBuild(b), true
}

func (ExploreStrategy) mustBuild(b *Brain) map[config.CardCategory]string {
	return map[config.CardCategory]string{
		config.CategorySuspect: b.pickUnknownCard(config.CategorySuspect),
		config.CategoryWeapon:  b.pickUnknownCard(config.CategoryWeapon),
	}
}

// pickUnknownCard selects a probe card for one category: suspected cards
// first (an unrefuted suggestion named them), then open candidates, then
// anything not in hand.
func (b *Brain) pickUnknownCard(cat config.CardCategory) string {
	cards := b.cfg.CardListForCategory(cat)
	var suspectedMaybes, maybes, notMine []string
	for _, card := range cards {
		if b.HasCard(card) {
			continue
		}
		notMine = append(notMine, card)
		if !b.knowledge.NotInSolution(card) {
			maybes = append(maybes, card)
			if b.knowledge.Suspected(card) {
				suspectedMaybes = append(suspectedMaybes, card)
			}
		}
	}
	switch {
	case len(suspectedMaybes) > 0:
		return b.chooser.Choose(suspectedMaybes)
	case len(maybes) > 0:
		return b.chooser.Choose(maybes)
	case len(notMine) > 0:
		return b.chooser.Choose(notMine)
	default:
		return b.chooser.Choose(cards)
	}
}

func (b *Brain) handCardOfCategory(cat config.CardCategory) string {
	for _, card := range b.Hand() {
		if b.cfg.CardToType[card] == cat {
			return card
		}
	}
	return ""
}

// recentRing remembers the last few surgical targets so the AI does not
// hammer the same card every turn.
type recentRing struct {
	elements []string
	maxSize  int
}

func newRecentRing(maxSize int) *recentRing {
	return &recentRing{maxSize: maxSize}
}

func (r *recentRing) Push(s string) {
	r.elements = append(r.elements, s)
	if len(r.elements) > r.maxSize {
		r.elements = r.elements[1:]
	}
}

func (r *recentRing) Contains(s string) bool {
	for _, e := range r.elements {
		if e == s {
			return true
		}
	}
	return false
}

func sortByFrequency(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Sort by count descending, name ascending for a stable order.
	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
