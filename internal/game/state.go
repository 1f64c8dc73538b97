// Package game owns the turn engine: game construction, the per-turn state
// machine, suggestion resolution, and the accusation endgame.
package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/board"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
	"github.com/jfm56/Cluedo-Game/internal/history"
	"github.com/jfm56/Cluedo-Game/internal/player"
)

// Status is the game-level outcome.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
	StatusAborted
)

func (s Status) String() string {
	return []string{"in progress", "won", "lost", "aborted"}[s]
}

// Phase is the active player's position in the turn state machine.
type Phase int

const (
	PhaseAwaitingMove Phase = iota
	PhaseAwaitingSuggestion
	PhaseAwaitingAccusation
	PhaseTurnComplete
)

func (p Phase) String() string {
	return []string{"awaiting move", "awaiting suggestion", "awaiting accusation", "turn complete"}[p]
}

// PromptKind tells the shell which question to ask the human.
type PromptKind int

const (
	PromptMove PromptKind = iota
	PromptSuggestion
	PromptAccusation
)

// Prompt is a request for human input. Options carries the legal candidate
// set when the decision is a pick-one (moves); suggestion and accusation
// prompts draw their choices from the card universe instead.
type Prompt struct {
	Kind    PromptKind
	Player  string
	Roll    int
	Options []string
}

// Input is one unit of external input fed into Step. Exactly one field is
// meaningful per call; a zero Input means "no input yet" and yields a
// prompt when the active player is human.
type Input struct {
	Move       string
	Suggestion map[config.CardCategory]string
	Accusation map[config.CardCategory]string
	Skip       bool
	Quit       bool
}

// TurnOutcome reports what one Step call did: a prompt when human input is
// required, an executed-action summary otherwise. Err is a recoverable
// input error; the phase does not advance until valid input arrives.
type TurnOutcome struct {
	Phase   Phase
	Player  string
	Prompt  *Prompt
	Summary string
	Err     error
}

// Game is the state of a single match. It owns the board, the dealt
// solution, the players, and the history log, and is their sole mutator.
type Game struct {
	ID           string
	Config       *config.GameConfig
	Board        *board.Board
	Players      []player.Player
	Solution     map[config.CardCategory]string
	EventManager *events.Manager

	history     *history.Log
	active      int
	turn        int
	phase       Phase
	status      Status
	winner      string
	roll        int
	guessesLeft int

	log  *logrus.Logger
	rand *rand.Rand
}

// sharedGuessBudget is the accusation budget for the whole table, not per
// player. An incorrect accusation by anyone burns one guess.
const sharedGuessBudget = 6

func (g *Game) Status() Status   { return g.status }
func (g *Game) Winner() string   { return g.winner }
func (g *Game) Phase() Phase     { return g.phase }
func (g *Game) Turn() int        { return g.turn }
func (g *Game) Roll() int        { return g.roll }
func (g *Game) GuessesLeft() int { return g.guessesLeft }

// ActivePlayer returns the player whose turn it is.
func (g *Game) ActivePlayer() player.Player {
	return g.Players[g.active]
}

// GetHistory returns the suggestion log filtered for the viewer.
func (g *Game) GetHistory(viewer string) []history.Record {
	return g.history.View(viewer)
}

// History exposes the raw log for rendering through its own table writer.
func (g *Game) History() *history.Log {
	return g.history
}

// PlayerByName finds a seat by suspect name.
func (g *Game) PlayerByName(name string) (player.Player, bool) {
	for _, p := range g.Players {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

func (g *Game) activePlayers() int {
	n := 0
	for _, p := range g.Players {
		if !p.Eliminated() {
			n++
		}
	}
	return n
}
