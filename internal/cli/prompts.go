package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jfm56/Cluedo-Game/internal/ai"
	"github.com/jfm56/Cluedo-Game/internal/config"
)

// C holds pre-configured color objects for printing to the console.
var C = struct {
	Yes, No, Maybe, Info, Warn, Header, Prompt, Debug *color.Color
}{
	Yes:    color.New(color.FgGreen),
	No:     color.New(color.FgRed),
	Maybe:  color.New(color.FgYellow),
	Info:   color.New(color.FgCyan),
	Warn:   color.New(color.FgHiYellow),
	Header: color.New(color.FgWhite, color.Bold),
	Prompt: color.New(color.FgHiWhite),
	Debug:  color.New(color.FgMagenta),
}

// SuspectColors maps suspect names to specific colors for display.
var SuspectColors = map[string]*color.Color{
	"Miss Scarlett":   color.New(color.FgRed),
	"Colonel Mustard": color.New(color.FgYellow),
	"Mrs. White":      color.New(color.FgWhite),
	"Mr. Green":       color.New(color.FgGreen),
	"Mrs. Peacock":    color.New(color.FgBlue),
	"Professor Plum":  color.New(color.FgMagenta),
}

// ColorizeCard returns a card name as a colored string if it's a suspect.
func ColorizeCard(name string) string {
	if c, ok := SuspectColors[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// RenderNotes displays an AI's knowledge grid in a formatted table.
func RenderNotes(playerName string, cfg *config.GameConfig, players []string, grid map[string]map[string]ai.CardStatus) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s's Detective Notes", playerName))
	header := table.Row{"ID", "Card", "Type"}
	for _, pName := range players {
		header = append(header, ColorizeCard(pName))
	}
	header = append(header, "Solution")
	t.AppendHeader(header)

	for cardID, card := range cfg.AllCards {
		if cardID > 0 && cfg.CardToType[card] != cfg.CardToType[cfg.AllCards[cardID-1]] {
			t.AppendSeparator()
		}
		cat := cfg.CardToType[card]
		row := table.Row{cardID + 1, ColorizeCard(card), cat.String()}
		for _, pName := range players {
			row = append(row, statusToSymbol(grid[card][pName]))
		}
		row = append(row, statusToSymbol(grid[card][ai.SolutionHolder]))
		t.AppendRow(row)
	}
	t.SetStyle(table.StyleRounded)
	t.Style().Options.SeparateRows = false
	t.Style().Title.Align = text.AlignCenter
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignRight}})
	t.Render()
}

func statusToSymbol(status ai.CardStatus) string {
	switch status {
	case ai.StatusYes:
		return C.Yes.Sprint("✔")
	case ai.StatusNo:
		return C.No.Sprint("✖")
	default:
		return C.Maybe.Sprint("?")
	}
}

// --- Prompting and usage ---

func (c *CLI) printUsage() {
	C.Header.Println("\n--- Cluedo ---")
	fmt.Println("Usage:")
	fmt.Println("  cluedo game [ai-players]")
	fmt.Println("    Play an interactive game against AI opponents (default 3).")
	fmt.Println("  cluedo ai [players]")
	fmt.Println("    Run a headless AI-only simulation (default 4 players).")
	fmt.Println("  cluedo test | lint")
	fmt.Println("    Print the matching toolchain invocation.")
	fmt.Println("\nFlags:")
	fmt.Println("  -loglevel debug    Enable detailed AI logic tracing.")
	fmt.Println("  -config FILE       Card universe JSON (built-in classic set by default).")
	fmt.Println("  -seed N            Fix the random seed for a reproducible game.")
}

func (c *CLI) printGameHelp() {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Command", "Alias", "Description"})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"history", "hi", "Show the suggestion history you are allowed to see."},
		{"hand", "ha", "Show the cards in your hand."},
		{"skip", "s", "Decline the current decision."},
		{"help", "h", "Show this help message."},
		{"quit", "q", "Abandon the game."},
	})
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (c *CLI) promptForString(prompt string) (string, bool) {
	for {
		C.Prompt.Print(prompt)
		input, err := c.line.Prompt("")
		if err != nil {
			// Ctrl-C or EOF aborts the game, never the process mid-state.
			return "", false
		}
		trimmed := strings.TrimSpace(input)
		if trimmed != "" {
			c.line.AppendHistory(trimmed)
			return trimmed, true
		}
	}
}

// promptForSelection asks the player to pick one option by number or name.
// The returned bool is false when the player asked to skip or quit; which of
// the two it was is reported through the second string.
func (c *CLI) promptForSelection(prompt string, options []string) (string, string) {
	for {
		C.Header.Println("\n" + prompt)
		for i, opt := range options {
			fmt.Printf(" %2d: %s\n", i+1, ColorizeCard(opt))
		}
		input, ok := c.promptForString("Enter number or name (or 'skip'/'quit'): ")
		if !ok {
			return "", "quit"
		}
		switch strings.ToLower(input) {
		case "quit", "q":
			return "", "quit"
		case "skip", "s":
			return "", "skip"
		case "history", "hi":
			return "", "history"
		case "hand", "ha":
			return "", "hand"
		case "help", "h":
			c.printGameHelp()
			continue
		}
		if num, err := strconv.Atoi(input); err == nil && num >= 1 && num <= len(options) {
			return options[num-1], ""
		}
		for _, opt := range options {
			if strings.EqualFold(opt, input) {
				return opt, ""
			}
		}
		C.Warn.Println("Invalid selection.")
	}
}
