package ai

import (
	"math/rand"
	"sort"
)

// Chooser selects a single option from a candidate list. Swapping the
// implementation is how tests make every AI decision reproducible.
type Chooser interface {
	Choose(options []string) string
}

// RandomChooser picks uniformly at random from the supplied source.
type RandomChooser struct {
	rng *rand.Rand
}

func NewRandomChooser(rng *rand.Rand) *RandomChooser {
	return &RandomChooser{rng: rng}
}

func (r *RandomChooser) Choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.rng.Intn(len(options))]
}

// DeterministicChooser always picks the alphabetically first option.
type DeterministicChooser struct{}

func (DeterministicChooser) Choose(options []string) string {
	if len(options) == 0 {
		return ""
	}
	sorted := append([]string(nil), options...)
	sort.Strings(sorted)
	return sorted[0]
}
