// Package cli is the interactive shell: it collects human decisions for the
// turn engine's prompts and renders game events.
package cli

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/game"
)

// CLI manages all command-line interactions.
type CLI struct {
	log  *logrus.Logger
	line *liner.State
}

// NewCLI creates a new command-line interface manager.
func NewCLI(log *logrus.Logger) *CLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &CLI{
		log:  log,
		line: line,
	}
}

// Run is the main entry point for the CLI application. Modes: "game" plays
// interactively, "ai" runs a headless simulation, "test" and "lint" print
// the matching toolchain invocation.
func (c *CLI) Run(args []string, cfg *config.GameConfig, rng *rand.Rand) error {
	defer c.line.Close()
	if len(args) < 1 {
		c.printUsage()
		return errors.New("no command provided")
	}

	switch args[0] {
	case "game":
		numAI := 3
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				c.printUsage()
				return fmt.Errorf("invalid AI player count %q", args[1])
			}
			numAI = n
		}
		return c.runGameMode(cfg, numAI, rng)
	case "ai":
		numPlayers := 4
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 2 {
				c.printUsage()
				return fmt.Errorf("invalid player count %q", args[1])
			}
			numPlayers = n
		}
		return c.runSimulationMode(cfg, numPlayers, rng)
	case "test":
		fmt.Println("go test ./...")
		return nil
	case "lint":
		fmt.Println("go vet ./...")
		return nil
	default:
		c.printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (c *CLI) runSimulationMode(cfg *config.GameConfig, numPlayers int, rng *rand.Rand) error {
	C.Header.Println("--- Running AI Simulation ---")

	builder := game.NewBuilder(cfg, c.log, rng)
	builder.EventManager().Subscribe(&SimulationRenderer{})

	g, err := builder.WithAIPlayers(numPlayers).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	winnerName, _ := g.RunSimulation(200)
	if winnerName != "" {
		if p, ok := g.PlayerByName(winnerName); ok {
			DisplayAINotes(p)
		}
	}
	return nil
}

func (c *CLI) runGameMode(cfg *config.GameConfig, numAI int, rng *rand.Rand) error {
	C.Header.Println("--- Starting Interactive Game ---")
	c.printGameHelp()

	builder := game.NewBuilder(cfg, c.log, rng)
	builder.EventManager().Subscribe(&SimulationRenderer{})

	g, err := builder.WithHumanPlayers(1).WithAIPlayers(numAI).Build()
	if err != nil {
		return fmt.Errorf("failed to build game: %w", err)
	}

	var humanName string
	for _, p := range g.Players {
		if p.IsHuman() {
			humanName = p.Name()
			break
		}
	}
	C.Info.Printf("\nYou are %s.\n", ColorizeCard(humanName))

	var input game.Input
	for g.Status() == game.StatusInProgress {
		outcome := g.Step(input)
		input = game.Input{}
		if outcome.Err != nil {
			C.Warn.Printf("Invalid input: %v\n", outcome.Err)
		}
		if outcome.Prompt != nil {
			input = c.collectInput(g, outcome.Prompt, humanName)
		}
	}

	C.Header.Println("\n--- Final Suggestion History ---")
	g.History().Render(os.Stdout, humanName)
	return nil
}

// collectInput turns an engine prompt into a concrete Input, serving the
// history and hand side-commands in place without consuming the prompt.
func (c *CLI) collectInput(g *game.Game, p *game.Prompt, humanName string) game.Input {
	for {
		var picked, action string
		switch p.Kind {
		case game.PromptMove:
			picked, action = c.promptForSelection(
				fmt.Sprintf("You rolled a %d. Where do you move?", p.Roll), p.Options)
			if action == "" {
				return game.Input{Move: picked}
			}
		case game.PromptSuggestion:
			suggestion, a := c.collectCards(g, "suggestion")
			if a != "" {
				action = a
				break
			}
			return game.Input{Suggestion: suggestion}
		case game.PromptAccusation:
			accusation, a := c.collectCards(g, "accusation")
			if a != "" {
				action = a
				break
			}
			return game.Input{Accusation: accusation}
		}

		switch action {
		case "skip":
			return game.Input{Skip: true}
		case "quit":
			return game.Input{Quit: true}
		case "history":
			g.History().Render(os.Stdout, humanName)
		case "hand":
			c.showHand(g, humanName)
		}
	}
}

// collectCards gathers a full suspect/weapon/room triple.
func (c *CLI) collectCards(g *game.Game, what string) (map[config.CardCategory]string, string) {
	out := make(map[config.CardCategory]string, 3)
	questions := map[config.CardCategory]string{
		config.CategorySuspect: "Which suspect does your %s name?",
		config.CategoryWeapon:  "Which weapon does your %s name?",
		config.CategoryRoom:    "Which room does your %s name?",
	}
	for _, cat := range config.Categories() {
		picked, action := c.promptForSelection(
			fmt.Sprintf(questions[cat], what), g.Config.CardListForCategory(cat))
		if action != "" {
			return nil, action
		}
		out[cat] = picked
	}
	return out, ""
}

func (c *CLI) showHand(g *game.Game, humanName string) {
	p, ok := g.PlayerByName(humanName)
	if !ok {
		return
	}
	C.Header.Println("\n--- Your Hand ---")
	for _, card := range p.Hand() {
		C.Info.Println(" - " + ColorizeCard(card))
	}
}
