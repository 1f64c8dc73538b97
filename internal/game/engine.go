package game

import (
	"fmt"

	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
	"github.com/jfm56/Cluedo-Game/internal/player"
)

// Step advances the state machine by exactly one decision point. When the
// active player is human and the current phase needs a decision, Step
// returns a prompt until the shell feeds the answer back in; AI decisions
// execute immediately and come back as summaries. Invalid input is reported
// in the outcome and the phase holds for a retry.
func (g *Game) Step(input Input) TurnOutcome {
	if g.status != StatusInProgress {
		return TurnOutcome{Phase: g.phase, Summary: fmt.Sprintf("game over: %s", g.status)}
	}
	if input.Quit {
		g.status = StatusAborted
		g.log.WithField("game", g.ID).Info("game aborted")
		return TurnOutcome{Phase: g.phase, Summary: "game aborted"}
	}

	current := g.ActivePlayer()
	switch g.phase {
	case PhaseAwaitingMove:
		return g.stepMove(current, input)
	case PhaseAwaitingSuggestion:
		return g.stepSuggestion(current, input)
	case PhaseAwaitingAccusation:
		return g.stepAccusation(current, input)
	default:
		return g.stepTurnComplete()
	}
}

func (g *Game) stepMove(current player.Player, input Input) TurnOutcome {
	if g.roll == 0 {
		g.roll = g.rand.Intn(6) + 1
		g.log.WithField("game", g.ID).Debugf("%s rolled a %d", current.Name(), g.roll)
	}
	legal := g.Board.DestinationsFrom(current.Position(), g.roll)

	var dest string
	if current.IsHuman() {
		if input.Move == "" && !input.Skip {
			return TurnOutcome{
				Phase:  g.phase,
				Player: current.Name(),
				Prompt: &Prompt{Kind: PromptMove, Player: current.Name(), Roll: g.roll, Options: legal},
			}
		}
		if input.Skip {
			g.phase = PhaseAwaitingSuggestion
			return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s stays in %s", current.Name(), current.Position())}
		}
		dest = input.Move
		if !containsString(legal, dest) {
			return TurnOutcome{
				Phase:  g.phase,
				Player: current.Name(),
				Prompt: &Prompt{Kind: PromptMove, Player: current.Name(), Roll: g.roll, Options: legal},
				Err:    fmt.Errorf("%w: %q", ErrInvalidMove, dest),
			}
		}
	} else {
		dest = current.ChooseMove(legal)
		if dest == "" {
			g.phase = PhaseAwaitingSuggestion
			return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s stays in %s", current.Name(), current.Position())}
		}
	}

	from := current.Position()
	current.SetPosition(dest)
	g.publishMove(current.Name(), from, dest)
	g.phase = PhaseAwaitingSuggestion
	return TurnOutcome{
		Phase:   g.phase,
		Player:  current.Name(),
		Summary: fmt.Sprintf("%s moves from %s to %s (rolled %d)", current.Name(), from, dest, g.roll),
	}
}

func (g *Game) stepSuggestion(current player.Player, input Input) TurnOutcome {
	var suggestion map[config.CardCategory]string
	if current.IsHuman() {
		switch {
		case input.Skip:
			g.phase = PhaseAwaitingAccusation
			return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s makes no suggestion", current.Name())}
		case input.Suggestion == nil:
			return TurnOutcome{
				Phase:  g.phase,
				Player: current.Name(),
				Prompt: &Prompt{Kind: PromptSuggestion, Player: current.Name()},
			}
		default:
			if err := g.validateSuggestion(input.Suggestion); err != nil {
				return TurnOutcome{
					Phase:  g.phase,
					Player: current.Name(),
					Prompt: &Prompt{Kind: PromptSuggestion, Player: current.Name()},
					Err:    err,
				}
			}
			suggestion = input.Suggestion
		}
	} else {
		suggestion = current.MakeSuggestion()
		if suggestion == nil {
			g.phase = PhaseAwaitingAccusation
			return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s makes no suggestion", current.Name())}
		}
	}

	g.EventManager.Publish(events.SuggestionMadeEvent{PlayerName: current.Name(), Suggestion: copySuggestion(suggestion)})
	record := g.resolveSuggestion(current, suggestion)
	g.phase = PhaseAwaitingAccusation

	summary := fmt.Sprintf("%s suggests %s with the %s in the %s",
		current.Name(),
		suggestion[config.CategorySuspect],
		suggestion[config.CategoryWeapon],
		suggestion[config.CategoryRoom])
	if record.Refuted() {
		summary += fmt.Sprintf("; %s disproves it", record.Refuter)
	} else {
		summary += "; no one can disprove it"
	}
	return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: summary}
}

func (g *Game) stepAccusation(current player.Player, input Input) TurnOutcome {
	var accusation map[config.CardCategory]string
	if current.IsHuman() {
		switch {
		case input.Skip:
			g.phase = PhaseTurnComplete
			return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s makes no accusation", current.Name())}
		case input.Accusation == nil:
			return TurnOutcome{
				Phase:  g.phase,
				Player: current.Name(),
				Prompt: &Prompt{Kind: PromptAccusation, Player: current.Name()},
			}
		default:
			if err := g.validateAccusation(input.Accusation); err != nil {
				return TurnOutcome{
					Phase:  g.phase,
					Player: current.Name(),
					Prompt: &Prompt{Kind: PromptAccusation, Player: current.Name()},
					Err:    err,
				}
			}
			accusation = input.Accusation
		}
	} else {
		accusation = current.ShouldAccuse()
		if accusation == nil {
			g.phase = PhaseTurnComplete
			return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s makes no accusation", current.Name())}
		}
	}

	return g.applyAccusation(current, accusation)
}

func (g *Game) applyAccusation(current player.Player, accusation map[config.CardCategory]string) TurnOutcome {
	correct := g.checkAccusation(accusation)
	if !correct {
		g.guessesLeft--
		current.Eliminate()
	}
	g.EventManager.Publish(events.AccusationEvent{
		PlayerName:  current.Name(),
		Accusation:  copySuggestion(accusation),
		IsCorrect:   correct,
		GuessesLeft: g.guessesLeft,
	})

	switch {
	case correct:
		g.status = StatusWon
		g.winner = current.Name()
		g.EventManager.Publish(events.GameOverEvent{Winner: current.Name(), Solution: g.Solution})
		return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: fmt.Sprintf("%s accuses correctly and wins", current.Name())}
	case g.guessesLeft <= 0 || g.activePlayers() == 0:
		g.status = StatusLost
		g.EventManager.Publish(events.GameOverEvent{Solution: g.Solution, Lost: true})
		return TurnOutcome{Phase: g.phase, Player: current.Name(), Summary: "no guesses remain; the culprit escapes"}
	default:
		g.phase = PhaseTurnComplete
		return TurnOutcome{
			Phase:   g.phase,
			Player:  current.Name(),
			Summary: fmt.Sprintf("%s accuses incorrectly and is out of the game (%d guesses left)", current.Name(), g.guessesLeft),
		}
	}
}

// stepTurnComplete advances to the next non-eliminated seat and opens its
// movement phase.
func (g *Game) stepTurnComplete() TurnOutcome {
	g.turn++
	for i := 0; i < len(g.Players); i++ {
		g.active = (g.active + 1) % len(g.Players)
		if !g.Players[g.active].Eliminated() {
			break
		}
	}
	g.roll = 0
	g.phase = PhaseAwaitingMove
	next := g.ActivePlayer()
	g.EventManager.Publish(events.TurnStartEvent{TurnNumber: g.turn + 1, PlayerName: next.Name()})
	return TurnOutcome{Phase: g.phase, Player: next.Name(), Summary: fmt.Sprintf("turn %d: %s", g.turn+1, next.Name())}
}

func (g *Game) checkAccusation(accusation map[config.CardCategory]string) bool {
	for _, cat := range config.Categories() {
		if g.Solution[cat] != accusation[cat] {
			return false
		}
	}
	return true
}

func (g *Game) validateSuggestion(s map[config.CardCategory]string) error {
	for _, cat := range config.Categories() {
		card, ok := s[cat]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidSuggestionTarget, cat)
		}
		if g.Config.CardToType[card] != cat || !g.Config.IsCard(card) {
			return fmt.Errorf("%w: %q is not one of the %s", ErrInvalidSuggestionTarget, card, cat)
		}
	}
	return nil
}

func (g *Game) validateAccusation(a map[config.CardCategory]string) error {
	for _, cat := range config.Categories() {
		card, ok := a[cat]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrInvalidAccusation, cat)
		}
		if g.Config.CardToType[card] != cat || !g.Config.IsCard(card) {
			return fmt.Errorf("%w: %q is not one of the %s", ErrInvalidAccusation, card, cat)
		}
	}
	return nil
}

// RunSimulation drives an AI-only game to completion, capped at maxTurns.
// It returns the winner's name and whether anyone won.
func (g *Game) RunSimulation(maxTurns int) (string, bool) {
	for g.status == StatusInProgress && g.turn < maxTurns {
		outcome := g.Step(Input{})
		if outcome.Prompt != nil {
			// A human seat in a headless run cannot be served.
			g.status = StatusAborted
			break
		}
	}
	if g.status == StatusInProgress {
		g.EventManager.Publish(events.GameOverEvent{Solution: g.Solution})
	}
	return g.winner, g.status == StatusWon
}

func containsString(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}
