package game

import (
	"github.com/jfm56/Cluedo-Game/internal/config"
	"github.com/jfm56/Cluedo-Game/internal/events"
	"github.com/jfm56/Cluedo-Game/internal/history"
	"github.com/jfm56/Cluedo-Game/internal/player"
)

// resolveSuggestion runs the refutation protocol for one suggestion: the
// first player in turn order after the suggester holding a matching card
// shows exactly one card of their choosing. The suggester is relocated to
// the suggested room whether or not anyone refutes, the record lands in
// the history log, and every seat receives its private view of the result.
func (g *Game) resolveSuggestion(suggester player.Player, suggestion map[config.CardCategory]string) history.Record {
	suggesterIdx := g.indexOf(suggester.Name())

	var disproverName, shownCard string
	for i := 1; i < len(g.Players); i++ {
		p := g.Players[(suggesterIdx+i)%len(g.Players)]
		if card := p.ChooseCardToShow(suggestion); card != "" {
			disproverName, shownCard = p.Name(), card
			break
		}
	}

	// The suggested suspect's token would move too in the physical game;
	// here only the suggester relocates, since tokens are seats.
	room := suggestion[config.CategoryRoom]
	if from := suggester.Position(); from != room {
		suggester.SetPosition(room)
		g.publishMove(suggester.Name(), from, room)
	}

	record := history.Record{
		Turn:           g.turn + 1,
		Suggester:      suggester.Name(),
		SuggesterHuman: suggester.IsHuman(),
		Suggestion:     copySuggestion(suggestion),
		Refuter:        disproverName,
		ShownCard:      shownCard,
	}
	g.history.Append(record)

	if disproverName != "" {
		g.EventManager.Publish(events.DisprovalEvent{
			SuggesterName: suggester.Name(),
			DisproverName: disproverName,
		})
	} else {
		g.EventManager.Publish(events.NoDisprovalEvent{SuggesterName: suggester.Name()})
	}

	// Private fan-out: only the suggester and the refuter learn which card
	// changed hands. Everyone else sees just who disproved whom.
	for _, p := range g.Players {
		ev := events.TurnResolvedEvent{
			SuggesterName: suggester.Name(),
			Suggestion:    copySuggestion(suggestion),
			DisproverName: disproverName,
		}
		if p.Name() == suggester.Name() || p.Name() == disproverName {
			ev.RevealedCard = shownCard
		}
		p.HandleEvent(ev)
	}

	return record
}

func (g *Game) indexOf(name string) int {
	for i, p := range g.Players {
		if p.Name() == name {
			return i
		}
	}
	return -1
}

func (g *Game) publishMove(name, from, to string) {
	fromLoc, _ := g.Board.Lookup(from)
	toLoc, _ := g.Board.Lookup(to)
	g.EventManager.Publish(events.MoveEvent{
		PlayerName: name,
		From:       from,
		To:         to,
		FromCoord:  fromLoc.Coord.String(),
		ToCoord:    toLoc.Coord.String(),
	})
}

func copySuggestion(s map[config.CardCategory]string) map[config.CardCategory]string {
	out := make(map[config.CardCategory]string, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
