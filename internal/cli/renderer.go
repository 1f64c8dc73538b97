package cli

import (
	"fmt"
	"strings"

	"github.com/jfm56/Cluedo-Game/internal/ai"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
	"github.com/jfm56/Cluedo-Game/internal/player"
)

// SimulationRenderer prints game events to the console. It subscribes to
// the bus like any other listener, which keeps the engine free of output.
type SimulationRenderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *SimulationRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		C.Header.Printf("--- Starting Game %s ---\n", event.GameID)
		var parts []string
		for _, name := range event.Players {
			parts = append(parts, ColorizeCard(name))
		}
		C.Info.Printf("Seating order: %s\n", strings.Join(parts, ", "))
	case events.HumanHandRevealedEvent:
		var cardParts []string
		for _, card := range event.Hand {
			cardParts = append(cardParts, ColorizeCard(card))
		}
		C.Info.Printf("\n%s's hand: %s\n", ColorizeCard(event.PlayerName), strings.Join(cardParts, ", "))
	case events.TurnStartEvent:
		C.Header.Printf("\n--- Turn %d: %s ---\n", event.TurnNumber, ColorizeCard(event.PlayerName))
	case events.MoveEvent:
		C.Info.Printf("%s moves from %s (%s) to %s (%s).\n",
			ColorizeCard(event.PlayerName), event.From, event.FromCoord, event.To, event.ToCoord)
	case events.SuggestionMadeEvent:
		C.Info.Printf("%s suggests: %s\n", ColorizeCard(event.PlayerName), formatSuggestion(event.Suggestion))
	case events.DisprovalEvent:
		C.Info.Printf("-> %s shows a card to %s.\n", ColorizeCard(event.DisproverName), ColorizeCard(event.SuggesterName))
	case events.NoDisprovalEvent:
		C.Info.Println("-> No player could show a card.")
	case events.AccusationEvent:
		C.Info.Printf("%s ACCUSES: %s\n", ColorizeCard(event.PlayerName), formatSuggestion(event.Accusation))
		if event.IsCorrect {
			C.Yes.Println("The accusation is CORRECT!")
		} else {
			C.No.Printf("The accusation is INCORRECT! %s is out of the game. %d guesses remain.\n",
				event.PlayerName, event.GuessesLeft)
		}
	case events.GameOverEvent:
		r.renderGameResult(event)
	}
}

func (r *SimulationRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Println("\n--- GAME OVER ---")
	switch {
	case event.Winner != "":
		C.Yes.Printf("%s wins!\n", ColorizeCard(event.Winner))
	case event.Lost:
		C.No.Println("All guesses spent. The culprit escapes.")
	default:
		C.Warn.Println("Game ended without a correct accusation.")
	}
	C.Info.Printf("The correct solution was: %s\n", formatSuggestion(event.Solution))
}

func formatSuggestion(s map[config.CardCategory]string) string {
	var parts []string
	for _, cat := range config.Categories() {
		parts = append(parts, ColorizeCard(s[cat]))
	}
	return strings.Join(parts, ", ")
}

// DisplayAINotes renders the knowledge grid of an AI player.
func DisplayAINotes(p player.Player) {
	if brain, ok := p.(*ai.Brain); ok {
		fmt.Println()
		k := brain.Knowledge()
		RenderNotes(brain.Name(), brain.Config(), k.Players(), k.Grid())
	}
}
