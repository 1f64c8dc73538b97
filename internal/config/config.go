package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
)

// CardCategory defines the type of a card using a typed enum.
type CardCategory int

const (
	CategorySuspect CardCategory = iota
	CategoryWeapon
	CategoryRoom
)

func (cc CardCategory) String() string {
	return []string{"suspects", "weapons", "rooms"}[cc]
}

// Categories lists the card categories in canonical order.
func Categories() []CardCategory {
	return []CardCategory{CategorySuspect, CategoryWeapon, CategoryRoom}
}

// GameConfig holds the static card universe for a game of Cluedo.
type GameConfig struct {
	Suspects   []string                `json:"suspects"`
	Weapons    []string                `json:"weapons"`
	Rooms      []string                `json:"rooms"`
	AllCards   []string                `json:"-"`
	CardToType map[string]CardCategory `json:"-"`
}

// Load reads, parses, and prepares the card universe from a JSON file.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg GameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.prepare()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the classic card universe: six suspects, six weapons,
// nine rooms. Used when no config file is present.
func Default() *GameConfig {
	cfg := &GameConfig{
		Suspects: []string{
			"Miss Scarlett", "Colonel Mustard", "Mrs. White",
			"Mr. Green", "Mrs. Peacock", "Professor Plum",
		},
		Weapons: []string{
			"Candlestick", "Dagger", "Lead Pipe",
			"Revolver", "Rope", "Wrench",
		},
		Rooms: []string{
			"Kitchen", "Ballroom", "Conservatory", "Dining Room",
			"Billiard Room", "Library", "Lounge", "Hall", "Study",
		},
	}
	cfg.prepare()
	return cfg
}

// prepare sorts each category and builds the derived lookups. Sorted order
// gives deterministic iteration everywhere the universe is walked.
func (c *GameConfig) prepare() {
	sort.Strings(c.Suspects)
	sort.Strings(c.Weapons)
	sort.Strings(c.Rooms)

	c.AllCards = nil
	c.CardToType = make(map[string]CardCategory)
	for _, card := range c.Suspects {
		c.AllCards = append(c.AllCards, card)
		c.CardToType[card] = CategorySuspect
	}
	for _, card := range c.Weapons {
		c.AllCards = append(c.AllCards, card)
		c.CardToType[card] = CategoryWeapon
	}
	for _, card := range c.Rooms {
		c.AllCards = append(c.AllCards, card)
		c.CardToType[card] = CategoryRoom
	}
}

// Validate rejects a universe that cannot seed a solution. Checked once at
// startup; a failure here is fatal before any turn is played.
func (c *GameConfig) Validate() error {
	if len(c.Suspects) == 0 || len(c.Weapons) == 0 || len(c.Rooms) == 0 {
		return errors.New("config: every card category needs at least one card")
	}
	return nil
}

// DeepCopy creates a new GameConfig with all slices copied to prevent
// shared state between players.
func (c *GameConfig) DeepCopy() *GameConfig {
	newCfg := &GameConfig{
		CardToType: make(map[string]CardCategory, len(c.CardToType)),
	}
	newCfg.Suspects = append([]string(nil), c.Suspects...)
	newCfg.Weapons = append([]string(nil), c.Weapons...)
	newCfg.Rooms = append([]string(nil), c.Rooms...)
	newCfg.AllCards = append([]string(nil), c.AllCards...)
	for k, v := range c.CardToType {
		newCfg.CardToType[k] = v
	}
	return newCfg
}

// CardListForCategory returns the card list for one category.
func (c *GameConfig) CardListForCategory(cat CardCategory) []string {
	switch cat {
	case CategorySuspect:
		return c.Suspects
	case CategoryWeapon:
		return c.Weapons
	case CategoryRoom:
		return c.Rooms
	default:
		return nil
	}
}

// IsCard reports whether name is part of the card universe.
func (c *GameConfig) IsCard(name string) bool {
	_, ok := c.CardToType[name]
	return ok
}
