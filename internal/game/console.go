// ABOUTME: Line-based console rendering for the game
// ABOUTME: Prompts, coloured results and note tables styled with lipgloss
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/chordgame/pkg/theory"
	"github.com/muesli/termenv"
)

const clearScreen = "\x1b[1;1H\x1b[2J"

// Console writes game text to a terminal or plain writer
type Console struct {
	w       io.Writer
	clear   bool
	correct lipgloss.Style
	wrong   lipgloss.Style
	header  lipgloss.Style
	faint   lipgloss.Style
}

// NewConsole creates a console. With fancy false, no colours or clear codes are written.
func NewConsole(w io.Writer, fancy bool) *Console {
	r := lipgloss.NewRenderer(w)
	if !fancy {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Console{
		w:       w,
		clear:   fancy,
		correct: r.NewStyle().Foreground(lipgloss.Color("2")),
		wrong:   r.NewStyle().Foreground(lipgloss.Color("1")),
		header:  r.NewStyle().Bold(true),
		faint:   r.NewStyle().Faint(true),
	}
}

// Clear wipes the screen when the console is a terminal
func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.w, clearScreen)
	}
}

// Printf writes formatted text
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.w, format, args...)
}

// TurnHeader announces a new turn
func (c *Console) TurnHeader(number int) {
	fmt.Fprintf(c.w, "\n%s\n", c.header.Render(fmt.Sprintf("Turn %d:", number)))
}

// Prompt asks for guess number index+1
func (c *Console) Prompt(index int) {
	fmt.Fprintf(c.w, "Please guess note name [%d] (e.g., C, D#, Ab), or 'r' to repeat, 's' to solo, 'x' to delete last, 'q' to quit: ", index+1)
}

// NoteTable lists notes with octave and frequency
func (c *Console) NoteTable(notes []theory.Note) {
	for _, n := range notes {
		fmt.Fprintf(c.w, " Note: %-10s | Octave: %d | Frequency: %.2f Hz\n", n.Name, n.Octave, n.Frequency)
	}
}

// SoloLine reports a note after it has been soloed
func (c *Console) SoloLine(index int, n theory.Note) {
	fmt.Fprintf(c.w, "note [%d] is [%s] at %.2fHz\n", index+1, n.Name, n.Frequency)
}

// Correct prints a success message
func (c *Console) Correct(msg string) {
	fmt.Fprintln(c.w, c.correct.Render(msg))
}

// Incorrect prints a failure message
func (c *Console) Incorrect(msg string) {
	fmt.Fprintln(c.w, c.wrong.Render(msg))
}

// Warn prints a dimmed notice
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.w, c.faint.Render(msg))
}

// Summary prints the running percentage
func (c *Console) Summary(score Score) {
	fmt.Fprintf(c.w, "You got %.2f%% of the guesses correct across all %d turns.\n", score.Percentage(), score.Played)
}
