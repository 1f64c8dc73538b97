package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/ai"
	"github.com/jfm56/Cluedo-Game/internal/board"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/deck"
	"github.com/jfm56/Cluedo-Game/internal/events"
	"github.com/jfm56/Cluedo-Game/internal/history"
	"github.com/jfm56/Cluedo-Game/internal/player"
)

// GameBuilder provides a step-by-step API for constructing a Game.
type GameBuilder struct {
	cfg          *config.GameConfig
	brd          *board.Board
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	numHumans    int
	numAI        int
}

// NewBuilder creates a builder with its required dependencies. The board
// defaults to the mansion; tests swap in smaller graphs with WithBoard.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		brd:          board.NewMansion(),
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field, so renderers
// can subscribe before Build publishes GameReadyEvent.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

func (b *GameBuilder) WithHumanPlayers(n int) *GameBuilder {
	b.numHumans = n
	return b
}

func (b *GameBuilder) WithAIPlayers(n int) *GameBuilder {
	b.numAI = n
	return b
}

func (b *GameBuilder) WithBoard(brd *board.Board) *GameBuilder {
	b.brd = brd
	return b
}

// Build constructs the Game after all options have been configured: it
// validates player counts, shuffles seats, places suspects on their
// starting spaces, deals, and announces readiness on the bus.
func (b *GameBuilder) Build() (*Game, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("building game: %w", err)
	}
	totalPlayers := b.numHumans + b.numAI
	if totalPlayers < 2 || totalPlayers > len(b.cfg.Suspects) {
		return nil, errors.New("game: player count must be between 2 and the number of suspects")
	}

	// Seat order is a shuffle of the first N suspects.
	playerNames := make([]string, totalPlayers)
	copy(playerNames, b.cfg.Suspects[:totalPlayers])
	b.rand.Shuffle(len(playerNames), func(i, j int) {
		playerNames[i], playerNames[j] = playerNames[j], playerNames[i]
	})

	game := &Game{
		ID:           uuid.New().String(),
		Config:       b.cfg,
		Board:        b.brd,
		EventManager: b.eventManager,
		history:      history.NewLog(),
		guessesLeft:  sharedGuessBudget,
		log:          b.log,
		rand:         b.rand,
	}

	for i, name := range playerNames {
		var p player.Player
		if i < b.numHumans {
			p = player.NewHumanPlayer(b.eventManager)
		} else {
			aiRand := rand.New(rand.NewSource(b.rand.Int63()))
			p = ai.NewBrain(b.log, aiRand, ai.NewRandomChooser(aiRand))
		}

		namesCopy := make([]string, len(playerNames))
		copy(namesCopy, playerNames)
		p.Setup(b.cfg.DeepCopy(), b.brd, namesCopy, name)

		// Suspects start from their fixed corridor spaces, in suspect
		// order rather than seat order.
		p.SetPosition(b.brd.StartingSpace(b.suspectIndex(name)))

		game.Players = append(game.Players, p)
		b.eventManager.Subscribe(p)
	}

	if err := game.deal(); err != nil {
		return nil, err
	}

	b.eventManager.Publish(events.GameReadyEvent{GameID: game.ID, Players: playerNames})
	b.eventManager.Publish(events.TurnStartEvent{TurnNumber: 1, PlayerName: game.ActivePlayer().Name()})

	return game, nil
}

func (b *GameBuilder) suspectIndex(name string) int {
	for i, s := range b.cfg.Suspects {
		if s == name {
			return i
		}
	}
	return 0
}

// deal draws the solution and distributes the remaining cards.
func (g *Game) deal() error {
	d, err := deck.NewDeal(g.Config, g.rand, len(g.Players))
	if err != nil {
		return fmt.Errorf("dealing: %w", err)
	}
	g.Solution = d.Solution
	for i, p := range g.Players {
		p.ReceiveHand(d.Hands[i])
		g.log.WithField("game", g.ID).Debugf("%s hand: %v", p.Name(), d.Hands[i])
	}
	g.log.WithField("game", g.ID).Debugf("ground truth initialized, solution: %+v", g.Solution)
	return nil
}
