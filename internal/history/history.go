// Package history keeps the append-only log of suggestions and their
// refutations, with access-controlled views.
package history

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jfm56/Cluedo-Game/internal/config"
)

// Hidden is the placeholder rendered when a shown card is not visible to
// the viewer.
const Hidden = "—"

// Record is one resolved suggestion. ShownCard holds the ground truth; the
// privacy rule is applied at view time, never at write time.
type Record struct {
	Turn           int
	Suggester      string
	SuggesterHuman bool
	Suggestion     map[config.CardCategory]string
	Refuter        string // empty when no one refuted
	ShownCard      string // empty when no one refuted
}

// Refuted reports whether any player showed a card.
func (r Record) Refuted() bool {
	return r.Refuter != ""
}

// Log is the ordered suggestion history for one game. Append-only for the
// game's lifetime.
type Log struct {
	records []Record
}

func NewLog() *Log {
	return &Log{}
}

// Append adds a record to the end of the log.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}

// View returns displayable copies of every record for the given viewer.
// A shown card is visible only when the suggesting player is human; records
// authored by an AI always carry the hidden marker, even for a human viewer,
// so the log never leaks what one AI privately showed another.
func (l *Log) View(viewer string) []Record {
	out := make([]Record, len(l.records))
	for i, r := range l.records {
		c := r
		if c.Refuted() && !c.SuggesterHuman {
			c.ShownCard = Hidden
		} else if c.Refuted() && c.ShownCard == "" {
			c.ShownCard = Hidden
		} else if !c.Refuted() {
			c.ShownCard = Hidden
		}
		out[i] = c
	}
	return out
}

// Render writes the filtered history for viewer as a table.
func (l *Log) Render(w io.Writer, viewer string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Turn", "Suggester", "Suggestion", "Refuter", "Card Shown"})
	for _, r := range l.View(viewer) {
		suggestion := r.Suggestion[config.CategorySuspect] + " / " +
			r.Suggestion[config.CategoryWeapon] + " / " +
			r.Suggestion[config.CategoryRoom]
		refuter := r.Refuter
		if refuter == "" {
			refuter = "None"
		}
		t.AppendRow(table.Row{r.Turn, r.Suggester, suggestion, refuter, r.ShownCard})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
