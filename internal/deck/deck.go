// Package deck draws the hidden solution and deals the remaining cards.
package deck

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jfm56/Cluedo-Game/internal/config"
)

// ErrEmptyDeck is returned when the universe cannot cover a solution plus
// at least one card per hand. Fatal at startup, before any turn is played.
var ErrEmptyDeck = errors.New("deck: not enough cards to deal")

// ErrBadDeal is returned when a finished deal violates the partition
// invariant. It indicates a bug, not a recoverable condition.
var ErrBadDeal = errors.New("deck: dealt cards do not partition the universe")

// Deal is the outcome of dealing one game: the hidden solution and each
// player's hand, in seat order.
type Deal struct {
	Solution map[config.CardCategory]string
	Hands    [][]string
}

// NewDeal draws one card per category uniformly at random as the solution,
// shuffles the remainder of the universe with a Fisher-Yates pass over the
// supplied source, and deals round-robin into numPlayers hands. Hand sizes
// differ by at most one. The same source state reproduces the same deal.
func NewDeal(cfg *config.GameConfig, rng *rand.Rand, numPlayers int) (*Deal, error) {
	if numPlayers < 1 {
		return nil, fmt.Errorf("%w: %d players", ErrEmptyDeck, numPlayers)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	solution := make(map[config.CardCategory]string, 3)
	for _, cat := range config.Categories() {
		cards := cfg.CardListForCategory(cat)
		solution[cat] = cards[rng.Intn(len(cards))]
	}

	var rest []string
	for _, card := range cfg.AllCards {
		if solution[cfg.CardToType[card]] == card {
			continue
		}
		rest = append(rest, card)
	}
	if len(rest) < numPlayers {
		return nil, fmt.Errorf("%w: %d cards for %d players", ErrEmptyDeck, len(rest), numPlayers)
	}

	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	hands := make([][]string, numPlayers)
	for i, card := range rest {
		hands[i%numPlayers] = append(hands[i%numPlayers], card)
	}

	d := &Deal{Solution: solution, Hands: hands}
	if err := d.verify(cfg); err != nil {
		return nil, err
	}
	return d, nil
}

// verify checks the partition invariant: hands plus solution cover the full
// universe with no card in two places.
func (d *Deal) verify(cfg *config.GameConfig) error {
	seen := make(map[string]bool, len(cfg.AllCards))
	for _, card := range d.Solution {
		if seen[card] {
			return fmt.Errorf("%w: %q appears twice", ErrBadDeal, card)
		}
		seen[card] = true
	}
	for _, hand := range d.Hands {
		for _, card := range hand {
			if seen[card] {
				return fmt.Errorf("%w: %q appears twice", ErrBadDeal, card)
			}
			seen[card] = true
		}
	}
	if len(seen) != len(cfg.AllCards) {
		return fmt.Errorf("%w: %d of %d cards dealt", ErrBadDeal, len(seen), len(cfg.AllCards))
	}
	for _, card := range cfg.AllCards {
		if !seen[card] {
			return fmt.Errorf("%w: %q never dealt", ErrBadDeal, card)
		}
	}
	return nil
}
