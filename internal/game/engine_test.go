package game

import (
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/jfm56/Cluedo-Game/internal/ai"
	"github.com/jfm56/Cluedo-Game/internal/board"
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
	"github.com/jfm56/Cluedo-Game/internal/history"
	"github.com/jfm56/Cluedo-Game/internal/player"
)

// setupScriptedGame constructs a game with fixed seats, hands, and solution
// so tests are free of dealing randomness.
func setupScriptedGame(t *testing.T, order []string, hands map[string][]string, solution map[config.CardCategory]string) *Game {
	t.Helper()

	cfg := config.Default()
	log := logrus.New()
	log.SetOutput(io.Discard)
	seededRand := rand.New(rand.NewSource(1))

	eventManager := events.NewManager()
	g := &Game{
		ID:           "scripted",
		Config:       cfg,
		Board:        board.NewMansion(),
		Solution:     solution,
		EventManager: eventManager,
		history:      history.NewLog(),
		guessesLeft:  sharedGuessBudget,
		log:          log,
		rand:         seededRand,
	}

	for i, name := range order {
		aiRand := rand.New(rand.NewSource(seededRand.Int63()))
		brain := ai.NewBrain(log, aiRand, ai.DeterministicChooser{})
		brain.Setup(cfg.DeepCopy(), g.Board, order, name)
		brain.SetPosition(g.Board.StartingSpace(i))
		brain.ReceiveHand(hands[name])
		g.Players = append(g.Players, brain)
		eventManager.Subscribe(brain)
	}
	return g
}

func scriptedThreeSeats(t *testing.T) *Game {
	t.Helper()
	order := []string{"Miss Scarlett", "Mr. Green", "Colonel Mustard"}
	hands := map[string][]string{
		"Miss Scarlett":   {"Colonel Mustard", "Mrs. Peacock", "Rope", "Ballroom", "Dining Room", "Lounge"},
		"Mr. Green":       {"Professor Plum", "Hall", "Conservatory", "Mr. Green", "Study", "Billiard Room"},
		"Colonel Mustard": {"Miss Scarlett", "Dagger", "Candlestick", "Wrench", "Revolver", "Library"},
	}
	solution := map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Lead Pipe",
		config.CategoryRoom:    "Kitchen",
	}
	return setupScriptedGame(t, order, hands, solution)
}

func TestResolveSuggestionRefuterOrder(t *testing.T) {
	t.Run("the first matching seat after the suggester refutes", func(t *testing.T) {
		// GIVEN a suggestion whose weapon sits two seats after the suggester
		g := scriptedThreeSeats(t)
		suggestion := map[config.CardCategory]string{
			config.CategorySuspect: "Mrs. White",
			config.CategoryWeapon:  "Dagger", // held by Colonel Mustard, seat 3
			config.CategoryRoom:    "Kitchen",
		}

		// WHEN Miss Scarlett's suggestion resolves
		record := g.resolveSuggestion(g.Players[0], suggestion)

		// THEN Colonel Mustard refutes with that weapon
		if record.Refuter != "Colonel Mustard" {
			t.Errorf("expected Colonel Mustard to refute, got %q", record.Refuter)
		}
		if record.ShownCard != "Dagger" {
			t.Errorf("expected the Dagger shown, got %q", record.ShownCard)
		}
	})

	t.Run("an earlier matching seat wins over a later one", func(t *testing.T) {
		// GIVEN a suggestion matched by both other seats
		g := scriptedThreeSeats(t)
		suggestion := map[config.CardCategory]string{
			config.CategorySuspect: "Miss Scarlett", // held by Colonel Mustard
			config.CategoryWeapon:  "Lead Pipe",
			config.CategoryRoom:    "Hall", // held by Mr. Green, one seat after
		}

		// WHEN Miss Scarlett's suggestion resolves
		record := g.resolveSuggestion(g.Players[0], suggestion)

		// THEN the nearer seat in turn order refutes
		if record.Refuter != "Mr. Green" {
			t.Errorf("expected Mr. Green to refute first, got %q", record.Refuter)
		}
	})

	t.Run("no matching seat means no refuter", func(t *testing.T) {
		// GIVEN a suggestion naming only solution cards
		g := scriptedThreeSeats(t)
		suggestion := map[config.CardCategory]string{
			config.CategorySuspect: "Mrs. White",
			config.CategoryWeapon:  "Lead Pipe",
			config.CategoryRoom:    "Kitchen",
		}

		// WHEN the suggestion resolves
		record := g.resolveSuggestion(g.Players[1], suggestion)

		// THEN the record carries no refuter and no card
		if record.Refuted() {
			t.Errorf("expected no refutation, got %q showing %q", record.Refuter, record.ShownCard)
		}
	})

	t.Run("the suggester relocates to the suggested room regardless", func(t *testing.T) {
		g := scriptedThreeSeats(t)
		for _, suggestion := range []map[config.CardCategory]string{
			{config.CategorySuspect: "Mrs. White", config.CategoryWeapon: "Dagger", config.CategoryRoom: "Study"},
			{config.CategorySuspect: "Mrs. White", config.CategoryWeapon: "Lead Pipe", config.CategoryRoom: "Kitchen"},
		} {
			g.resolveSuggestion(g.Players[0], suggestion)
			if got := g.Players[0].Position(); got != suggestion[config.CategoryRoom] {
				t.Errorf("expected the suggester in %s, got %s", suggestion[config.CategoryRoom], got)
			}
		}
	})
}

func TestResolveSuggestionPrivacy(t *testing.T) {
	// GIVEN a resolved suggestion between seats 1 and 3
	g := scriptedThreeSeats(t)
	suggestion := map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Dagger",
		config.CategoryRoom:    "Kitchen",
	}
	g.resolveSuggestion(g.Players[0], suggestion)

	t.Run("the suggester learns the exact card", func(t *testing.T) {
		suggester := g.Players[0].(*ai.Brain)
		if suggester.Knowledge().Grid()["Dagger"]["Colonel Mustard"] != ai.StatusYes {
			t.Error("expected the suggester to pin the shown card to its holder")
		}
	})

	t.Run("a bystander records only a mystery", func(t *testing.T) {
		bystander := g.Players[1].(*ai.Brain)
		if bystander.Knowledge().Grid()["Dagger"]["Colonel Mustard"] == ai.StatusYes {
			t.Error("a bystander must not learn the exact card")
		}
		if len(bystander.Knowledge().Mysteries()) == 0 {
			t.Error("expected the bystander to note an open mystery")
		}
	})

	t.Run("the history hides the card from every viewer", func(t *testing.T) {
		for _, viewer := range []string{"Miss Scarlett", "Mr. Green", "Colonel Mustard"} {
			view := g.GetHistory(viewer)
			if len(view) == 0 {
				t.Fatal("expected a history record")
			}
			if view[0].ShownCard != history.Hidden {
				t.Errorf("viewer %s sees %q, expected hidden", viewer, view[0].ShownCard)
			}
		}
	})
}

func TestAccusationSemantics(t *testing.T) {
	correct := map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. White",
		config.CategoryWeapon:  "Lead Pipe",
		config.CategoryRoom:    "Kitchen",
	}
	wrong := map[config.CardCategory]string{
		config.CategorySuspect: "Mrs. Peacock",
		config.CategoryWeapon:  "Lead Pipe",
		config.CategoryRoom:    "Kitchen",
	}

	t.Run("a correct accusation wins immediately", func(t *testing.T) {
		g := scriptedThreeSeats(t)
		g.applyAccusation(g.Players[0], correct)
		if g.Status() != StatusWon {
			t.Errorf("expected won, got %v", g.Status())
		}
		if g.Winner() != "Miss Scarlett" {
			t.Errorf("expected Miss Scarlett as winner, got %q", g.Winner())
		}
		if g.GuessesLeft() != sharedGuessBudget {
			t.Error("a correct accusation must not burn a guess")
		}
	})

	t.Run("a wrong accusation burns a shared guess and the accuser", func(t *testing.T) {
		g := scriptedThreeSeats(t)
		g.applyAccusation(g.Players[0], wrong)
		if g.Status() != StatusInProgress {
			t.Errorf("expected the game to continue, got %v", g.Status())
		}
		if g.GuessesLeft() != sharedGuessBudget-1 {
			t.Errorf("expected %d guesses left, got %d", sharedGuessBudget-1, g.GuessesLeft())
		}
		if !g.Players[0].Eliminated() {
			t.Error("expected the accuser eliminated")
		}
	})

	t.Run("the game is lost when every seat is eliminated", func(t *testing.T) {
		g := scriptedThreeSeats(t)
		for _, p := range g.Players {
			g.applyAccusation(p, wrong)
		}
		if g.Status() != StatusLost {
			t.Errorf("expected lost with no active players, got %v", g.Status())
		}
	})

	t.Run("the game is lost exactly when the budget empties", func(t *testing.T) {
		g := scriptedThreeSeats(t)
		// Exhaust the budget from a single seat; the seat is eliminated after
		// the first miss but the counter is shared.
		for i := 0; i < sharedGuessBudget-1; i++ {
			g.guessesLeft--
		}
		if g.Status() != StatusInProgress {
			t.Fatal("expected the game still in progress")
		}
		g.applyAccusation(g.Players[0], wrong)
		if g.Status() != StatusLost {
			t.Errorf("expected lost at zero guesses, got %v", g.Status())
		}
		if g.GuessesLeft() != 0 {
			t.Errorf("expected 0 guesses left, got %d", g.GuessesLeft())
		}
	})
}

func TestStepHumanPrompts(t *testing.T) {
	// GIVEN an interactive game with the human in the first seat
	cfg := config.Default()
	log := logrus.New()
	log.SetOutput(io.Discard)
	g, err := NewBuilder(cfg, log, rand.New(rand.NewSource(3))).
		WithHumanPlayers(1).WithAIPlayers(2).Build()
	if err != nil {
		t.Fatalf("failed to build game: %v", err)
	}
	var human player.Player
	for _, p := range g.Players {
		if p.IsHuman() {
			human = p
		}
	}
	if human == nil || g.ActivePlayer() != human {
		t.Fatal("expected the human in the first seat")
	}

	// WHEN the engine steps with no input
	outcome := g.Step(Input{})

	// THEN it prompts for a move with the legal destinations
	if outcome.Prompt == nil || outcome.Prompt.Kind != PromptMove {
		t.Fatalf("expected a move prompt, got %+v", outcome)
	}
	if outcome.Prompt.Roll < 1 || outcome.Prompt.Roll > 6 {
		t.Errorf("expected a die roll between 1 and 6, got %d", outcome.Prompt.Roll)
	}
	if len(outcome.Prompt.Options) == 0 {
		t.Fatal("expected at least one legal destination")
	}

	t.Run("an illegal move re-prompts without advancing", func(t *testing.T) {
		retry := g.Step(Input{Move: "Narnia"})
		if !errors.Is(retry.Err, ErrInvalidMove) {
			t.Errorf("expected ErrInvalidMove, got %v", retry.Err)
		}
		if retry.Prompt == nil || g.Phase() != PhaseAwaitingMove {
			t.Error("expected the move phase to hold for a retry")
		}
	})

	t.Run("a legal move advances to the suggestion decision", func(t *testing.T) {
		dest := outcome.Prompt.Options[0]
		moved := g.Step(Input{Move: dest})
		if moved.Err != nil {
			t.Fatalf("unexpected error: %v", moved.Err)
		}
		if human.Position() != dest {
			t.Errorf("expected the human at %s, got %s", dest, human.Position())
		}
		if g.Phase() != PhaseAwaitingSuggestion {
			t.Errorf("expected the suggestion phase, got %v", g.Phase())
		}
	})

	t.Run("a malformed suggestion re-prompts", func(t *testing.T) {
		prompted := g.Step(Input{})
		if prompted.Prompt == nil || prompted.Prompt.Kind != PromptSuggestion {
			t.Fatalf("expected a suggestion prompt, got %+v", prompted)
		}
		bad := g.Step(Input{Suggestion: map[config.CardCategory]string{
			config.CategorySuspect: "Sherlock Holmes",
			config.CategoryWeapon:  "Rope",
			config.CategoryRoom:    "Kitchen",
		}})
		if !errors.Is(bad.Err, ErrInvalidSuggestionTarget) {
			t.Errorf("expected ErrInvalidSuggestionTarget, got %v", bad.Err)
		}
		if g.Phase() != PhaseAwaitingSuggestion {
			t.Error("expected the suggestion phase to hold for a retry")
		}
	})

	t.Run("a valid suggestion resolves and relocates the human", func(t *testing.T) {
		done := g.Step(Input{Suggestion: map[config.CardCategory]string{
			config.CategorySuspect: "Mrs. Peacock",
			config.CategoryWeapon:  "Rope",
			config.CategoryRoom:    "Library",
		}})
		if done.Err != nil {
			t.Fatalf("unexpected error: %v", done.Err)
		}
		if human.Position() != "Library" {
			t.Errorf("expected the human relocated to the Library, got %s", human.Position())
		}
		if g.History().Len() != 1 {
			t.Errorf("expected one history record, got %d", g.History().Len())
		}
		if g.Phase() != PhaseAwaitingAccusation {
			t.Errorf("expected the accusation phase, got %v", g.Phase())
		}
	})

	t.Run("a malformed accusation re-prompts", func(t *testing.T) {
		prompted := g.Step(Input{})
		if prompted.Prompt == nil || prompted.Prompt.Kind != PromptAccusation {
			t.Fatalf("expected an accusation prompt, got %+v", prompted)
		}
		bad := g.Step(Input{Accusation: map[config.CardCategory]string{
			config.CategorySuspect: "Mrs. Peacock",
		}})
		if !errors.Is(bad.Err, ErrInvalidAccusation) {
			t.Errorf("expected ErrInvalidAccusation, got %v", bad.Err)
		}
	})

	t.Run("skipping the accusation completes the turn", func(t *testing.T) {
		skipped := g.Step(Input{Skip: true})
		if skipped.Err != nil {
			t.Fatalf("unexpected error: %v", skipped.Err)
		}
		if g.Phase() != PhaseTurnComplete {
			t.Errorf("expected turn complete, got %v", g.Phase())
		}
		next := g.Step(Input{})
		if g.Phase() != PhaseAwaitingMove {
			t.Errorf("expected the next move phase, got %v", g.Phase())
		}
		if next.Player == human.Name() {
			t.Error("expected the next seat to act")
		}
	})

	t.Run("a quit sentinel aborts the game", func(t *testing.T) {
		g.Step(Input{Quit: true})
		if g.Status() != StatusAborted {
			t.Errorf("expected aborted, got %v", g.Status())
		}
	})
}

func TestStepSkipsEliminatedSeats(t *testing.T) {
	// GIVEN a scripted game where the second seat is eliminated
	g := scriptedThreeSeats(t)
	g.Players[1].Eliminate()
	g.phase = PhaseTurnComplete

	// WHEN the turn completes
	g.Step(Input{})

	// THEN the third seat is active, not the eliminated one
	if got := g.ActivePlayer().Name(); got != "Colonel Mustard" {
		t.Errorf("expected Colonel Mustard active, got %s", got)
	}
}
