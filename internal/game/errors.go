package game

import "errors"

// Recoverable per-turn input errors. The engine reports them in the turn
// outcome and re-prompts; they never abort the game.
var (
	ErrInvalidMove             = errors.New("game: destination is not reachable this turn")
	ErrInvalidSuggestionTarget = errors.New("game: suggestion names an unknown card")
	ErrInvalidAccusation       = errors.New("game: accusation is incomplete or names an unknown card")
)
