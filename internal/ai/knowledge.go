package ai

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/config"
)

// CardStatus is one cell of the holder grid: can this holder have the card?
type CardStatus int

const (
	StatusMaybe CardStatus = iota
	StatusYes
	StatusNo
)

// Belief is the per-card deduction state. A card leaves Unknown exactly once,
// through a transition function, and every non-Unknown state means the card
// is eliminated from the solution.
type Belief int

const (
	// BeliefUnknown: no evidence yet; still a solution candidate.
	BeliefUnknown Belief = iota
	// BeliefSeenInHand: the card was dealt to this player.
	BeliefSeenInHand
	// BeliefSeenAsRefutation: the card was shown to this player during a
	// refutation it took part in.
	BeliefSeenAsRefutation
	// BeliefEliminated: ownership was inferred by deduction rather than
	// witnessed directly.
	BeliefEliminated
)

func (b Belief) String() string {
	return []string{"unknown", "seen-in-hand", "seen-as-refutation", "eliminated"}[b]
}

// SolutionHolder is the pseudo-holder column of the grid representing the
// hidden solution envelope.
const SolutionHolder = "solution"

// Mystery tracks a refutation witnessed between two other players: the
// disprover showed one of the suggested cards, but which one is unknown.
type Mystery struct {
	Disprover     string
	PossibleCards map[string]struct{}
}

// Knowledge is one player's deduction state: a card-by-holder grid, the
// per-card belief states derived from it, weak-evidence marks from
// unrefuted suggestions, and the open mysteries still being narrowed.
// All updates go through the transition methods so the deduction logic
// stays auditable.
type Knowledge struct {
	cfg       *config.GameConfig
	owner     string
	players   []string
	grid      map[string]map[string]CardStatus
	beliefs   map[string]Belief
	suspected map[string]bool
	mysteries []Mystery
	log       logrus.FieldLogger
}

// NewKnowledge builds an all-Maybe grid over every card and holder
// (players plus the solution envelope).
func NewKnowledge(cfg *config.GameConfig, players []string, owner string, log logrus.FieldLogger) *Knowledge {
	k := &Knowledge{
		cfg:       cfg,
		owner:     owner,
		players:   append([]string(nil), players...),
		grid:      make(map[string]map[string]CardStatus, len(cfg.AllCards)),
		beliefs:   make(map[string]Belief, len(cfg.AllCards)),
		suspected: make(map[string]bool),
		log:       log,
	}
	for _, card := range cfg.AllCards {
		k.grid[card] = make(map[string]CardStatus, len(players)+1)
		for _, p := range k.players {
			k.grid[card][p] = StatusMaybe
		}
		k.grid[card][SolutionHolder] = StatusMaybe
	}
	return k
}

func (k *Knowledge) holders() []string {
	all := make([]string, len(k.players)+1)
	copy(all, k.players)
	all[len(k.players)] = SolutionHolder
	return all
}

// --- Transition functions ---

// MarkInHand records a card dealt to the owner.
func (k *Knowledge) MarkInHand(card string) {
	if k.place(card, k.owner) {
		k.beliefs[card] = BeliefSeenInHand
	}
}

// MarkShown records a card this player witnessed during a refutation,
// either shown to it as suggester or shown by it as refuter.
func (k *Knowledge) MarkShown(card, holder string) {
	if k.place(card, holder) {
		if k.beliefs[card] == BeliefUnknown {
			k.beliefs[card] = BeliefSeenAsRefutation
		}
	}
}

// MarkSuspected records weak evidence that a card may be in the solution:
// a suggestion naming it went unrefuted. Absence of a refutation does not
// prove solution membership, so the card is not eliminated anywhere.
func (k *Knowledge) MarkSuspected(card string) {
	if !k.cfg.IsCard(card) || k.suspected[card] {
		return
	}
	k.suspected[card] = true
	k.log.Debugf("weak evidence: %q may be in the solution", card)
}

// NoteMystery records a refutation between two other players.
func (k *Knowledge) NoteMystery(disprover string, cards []string) {
	m := Mystery{Disprover: disprover, PossibleCards: make(map[string]struct{}, len(cards))}
	for _, card := range cards {
		if k.cfg.IsCard(card) {
			m.PossibleCards[card] = struct{}{}
		}
	}
	if len(m.PossibleCards) == 0 {
		return
	}
	k.mysteries = append(k.mysteries, m)
	k.log.Debugf("noted that %s holds one of %v", disprover, setKeys(m.PossibleCards))
}

// place pins a card to one holder and rules out every other holder.
// Reports whether anything changed.
func (k *Knowledge) place(card, holder string) bool {
	cells, ok := k.grid[card]
	if !ok {
		k.log.Errorf("knowledge update for card outside the universe: %q", card)
		return false
	}
	if cells[holder] == StatusYes {
		return false
	}
	for _, h := range k.holders() {
		cells[h] = StatusNo
	}
	cells[holder] = StatusYes
	k.log.Debugf("learned that %q is with %s", card, holder)
	return true
}

// placeDeduced is place for facts arrived at by elimination rather than
// witnessed; the belief state records the weaker provenance.
func (k *Knowledge) placeDeduced(card, holder string) bool {
	if !k.place(card, holder) {
		return false
	}
	if holder != SolutionHolder && k.beliefs[card] == BeliefUnknown {
		k.beliefs[card] = BeliefEliminated
	}
	return true
}

// Deduce runs the elimination passes to a fixed point.
func (k *Knowledge) Deduce() {
	for i := 0; i < 10; i++ { // safety break
		changed := k.pruneMysteries()
		changed = k.deduceSolutionByElimination() || changed
		changed = k.deduceHoldersByElimination() || changed
		if !changed {
			return
		}
	}
}

// pruneMysteries drops impossible cards from each mystery; a mystery down
// to one card tells us exactly what the disprover showed.
func (k *Knowledge) pruneMysteries() bool {
	var changed bool
	var remaining []Mystery
	for _, m := range k.mysteries {
		pruned := make(map[string]struct{}, len(m.PossibleCards))
		for card := range m.PossibleCards {
			if k.grid[card][m.Disprover] != StatusNo {
				pruned[card] = struct{}{}
			}
		}
		if len(pruned) < len(m.PossibleCards) {
			changed = true
		}
		switch len(pruned) {
		case 0:
			changed = true
		case 1:
			card := setKeys(pruned)[0]
			k.log.Debugf("mystery solved: %s must have shown %q", m.Disprover, card)
			if k.placeDeduced(card, m.Disprover) {
				changed = true
			}
		default:
			m.PossibleCards = pruned
			remaining = append(remaining, m)
		}
	}
	k.mysteries = remaining
	return changed
}

// deduceSolutionByElimination pins the solution card of any category with a
// single remaining candidate.
func (k *Knowledge) deduceSolutionByElimination() bool {
	var changed bool
	for _, cat := range config.Categories() {
		if _, ok := k.solutionFor(cat); ok {
			continue
		}
		var maybes []string
		for _, card := range k.cfg.CardListForCategory(cat) {
			if k.grid[card][SolutionHolder] == StatusMaybe {
				maybes = append(maybes, card)
			}
		}
		if len(maybes) == 1 {
			if k.placeDeduced(maybes[0], SolutionHolder) {
				changed = true
			}
		}
	}
	return changed
}

// deduceHoldersByElimination pins any card with a single remaining possible
// holder.
func (k *Knowledge) deduceHoldersByElimination() bool {
	var changed bool
	for _, card := range k.cfg.AllCards {
		var maybes []string
		known := false
		for _, h := range k.holders() {
			switch k.grid[card][h] {
			case StatusYes:
				known = true
			case StatusMaybe:
				maybes = append(maybes, h)
			}
		}
		if !known && len(maybes) == 1 {
			if k.placeDeduced(card, maybes[0]) {
				changed = true
			}
		}
	}
	return changed
}

// --- Queries ---

// Belief returns the per-card deduction state.
func (k *Knowledge) Belief(card string) Belief {
	return k.beliefs[card]
}

// NotInSolution reports whether the card has been ruled out of the solution.
func (k *Knowledge) NotInSolution(card string) bool {
	return k.grid[card][SolutionHolder] == StatusNo
}

// Suspected reports whether the card carries weak unrefuted-suggestion
// evidence.
func (k *Knowledge) Suspected(card string) bool {
	return k.suspected[card]
}

// Candidates returns the cards of one category still possibly (or certainly)
// in the solution.
func (k *Knowledge) Candidates(cat config.CardCategory) []string {
	var out []string
	for _, card := range k.cfg.CardListForCategory(cat) {
		if k.grid[card][SolutionHolder] != StatusNo {
			out = append(out, card)
		}
	}
	return out
}

func (k *Knowledge) solutionFor(cat config.CardCategory) (string, bool) {
	for _, card := range k.cfg.CardListForCategory(cat) {
		if k.grid[card][SolutionHolder] == StatusYes {
			return card, true
		}
	}
	return "", false
}

// SolutionIfCertain returns the full solution once every category has
// exactly one remaining candidate, nil before that.
func (k *Knowledge) SolutionIfCertain() map[config.CardCategory]string {
	out := make(map[config.CardCategory]string, 3)
	for _, cat := range config.Categories() {
		card, ok := k.solutionFor(cat)
		if !ok {
			return nil
		}
		out[cat] = card
	}
	return out
}

// Mysteries returns the open mysteries; used by the surgical-strike
// strategy to pick probe targets.
func (k *Knowledge) Mysteries() []Mystery {
	return k.mysteries
}

// Grid exposes the holder grid for rendering detective notes.
func (k *Knowledge) Grid() map[string]map[string]CardStatus {
	return k.grid
}

// Players returns the holder names excluding the solution column.
func (k *Knowledge) Players() []string {
	return append([]string(nil), k.players...)
}

func setKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
