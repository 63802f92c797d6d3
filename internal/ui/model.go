// ABOUTME: Bubbletea model for the guessing TUI
// ABOUTME: Drives turns through play, guess, result and done states
package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/chordgame/internal/game"
	"github.com/harperreed/chordgame/pkg/theory"
)

type state int

const (
	statePlaying state = iota
	stateGuessing
	stateResult
	stateDone
)

// playDoneMsg reports that a playback command finished
type playDoneMsg struct {
	err error
}

// soloDoneMsg carries the per-note lines reported while soloing
type soloDoneMsg struct {
	lines []string
	err   error
}

// Model represents the TUI state
type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	session *game.Session
	audio   game.Audio

	// Turn
	state   state
	turn    *game.Turn
	input   string
	message string
	solo    []string
	correct bool

	// Exit
	quit bool
	err  error

	// Dimensions
	width  int
	height int
}

// NewModel creates a model for session. Playback runs under a context
// derived from ctx that is cancelled when the model quits.
func NewModel(ctx context.Context, session *game.Session, audio game.Audio) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		ctx:     ctx,
		cancel:  cancel,
		session: session,
		audio:   audio,
		state:   stateDone,
	}
}

// Init starts the first turn
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return nextTurnMsg{} }
}

type nextTurnMsg struct{}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case nextTurnMsg:
		return m.startTurn()
	case playDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m.exit()
		}
		if m.state == statePlaying {
			m.state = stateGuessing
		}
	case soloDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m.exit()
		}
		m.solo = msg.lines
		if m.state == statePlaying {
			if m.turn.Complete() {
				m.state = stateResult
			} else {
				m.state = stateGuessing
			}
		}
	}

	return m, nil
}

func (m Model) startTurn() (tea.Model, tea.Cmd) {
	if m.session.Done() {
		m.state = stateDone
		return m.exit()
	}

	m.turn = m.session.NextTurn()
	m.input = ""
	m.message = "Playing audio..."
	m.solo = nil
	m.state = statePlaying
	return m, m.play()
}

func (m Model) play() tea.Cmd {
	ctx, audio, notes, d := m.ctx, m.audio, m.turn.Selection, m.session.Options().PlayDuration
	return func() tea.Msg {
		return playDoneMsg{err: audio.Play(ctx, notes, d)}
	}
}

func (m Model) soloAll() tea.Cmd {
	ctx, audio, notes, d := m.ctx, m.audio, m.turn.Selection, m.session.Options().SoloDuration
	return func() tea.Msg {
		var lines []string
		err := audio.Solo(ctx, notes, d, func(i int, n theory.Note) {
			lines = append(lines, fmt.Sprintf("note [%d] is [%s] at %.2fHz", i+1, n.Name, n.Frequency))
		})
		return soloDoneMsg{lines: lines, err: err}
	}
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quit = true
		return m.exit()
	}

	switch m.state {
	case stateGuessing:
		return m.handleGuessKey(msg)
	case stateResult:
		if msg.Type == tea.KeyEnter || msg.String() == " " {
			return m.startTurn()
		}
		if msg.String() == "q" {
			m.quit = !m.session.Done()
			return m.exit()
		}
	}

	return m, nil
}

func (m Model) handleGuessKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeyRunes:
		if len(m.input)+len(msg.Runes) <= 3 {
			m.input += string(msg.Runes)
		}
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input
	m.input = ""

	switch m.turn.Input(line) {
	case game.ActionRepeat:
		m.message = "Repeating selection."
		m.state = statePlaying
		return m, m.play()
	case game.ActionSolo:
		m.message = "Soloing selection."
		m.state = statePlaying
		return m, m.soloAll()
	case game.ActionQuit:
		m.quit = true
		return m.exit()
	case game.ActionUndo:
		m.message = "Deleted last guess. Please re-enter."
	case game.ActionInvalid:
		m.message = "Invalid note. Please enter a valid musical note."
		m.state = statePlaying
		return m, m.play()
	case game.ActionAccepted:
		m.message = ""
	case game.ActionComplete:
		m.correct = m.session.Evaluate(m.turn)
		if m.correct {
			m.message = "Correct! You guessed all the notes correctly."
			m.solo = noteTable(m.turn.Selection)
			m.state = stateResult
			return m, nil
		}
		m.message = "Incorrect guesses. Better Luck Next Time."
		m.state = statePlaying
		return m, m.soloAll()
	}

	return m, nil
}

// exit stops any playback still running and ends the program
func (m Model) exit() (tea.Model, tea.Cmd) {
	m.cancel()
	return m, tea.Quit
}

// Quit reports whether the player left before finishing
func (m Model) Quit() bool {
	return m.quit
}

// Err returns the audio error that stopped the program, if any
func (m Model) Err() error {
	return m.err
}

// View renders the TUI
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205")).
		MarginBottom(1)

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86"))

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	correctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	wrongStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("Chord Game"))
	b.WriteString("\n\n")

	score := m.session.Score()
	b.WriteString(headerStyle.Render("Score: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d/%d (%.2f%%)", score.Correct, score.Played, score.Percentage())))
	b.WriteString("\n")

	if m.turn != nil {
		b.WriteString(headerStyle.Render("Turn: "))
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d of %d", m.turn.Number, m.session.Options().Turns)))
		b.WriteString("\n\n")

		b.WriteString(headerStyle.Render("Guesses: "))
		b.WriteString(renderSlots(m.turn))
		b.WriteString("\n\n")
	}

	for _, line := range m.solo {
		b.WriteString(valueStyle.Render(line))
		b.WriteString("\n")
	}

	switch {
	case m.state == stateResult && m.correct:
		b.WriteString(correctStyle.Render(m.message))
	case m.state == stateResult:
		b.WriteString(wrongStyle.Render(m.message))
	default:
		b.WriteString(m.message)
	}
	b.WriteString("\n\n")

	switch m.state {
	case statePlaying:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("♪ playing..."))
	case stateGuessing:
		b.WriteString(fmt.Sprintf("Note [%d]: %s█", m.turn.Index()+1, m.input))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Enter a note (C, D#, Ab) · r:Repeat  s:Solo  x:Delete last  q:Quit"))
	case stateResult:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Enter: next turn · q: quit"))
	case stateDone:
		b.WriteString(lipgloss.NewStyle().Faint(true).Render("Game over"))
	}
	b.WriteString("\n")

	return b.String()
}

// renderSlots shows entered guesses and blanks for the remaining notes
func renderSlots(t *game.Turn) string {
	guesses := t.Guesses()
	slots := make([]string, len(t.Selection))
	for i := range slots {
		if i < len(guesses) {
			slots[i] = fmt.Sprintf("[%s]", guesses[i])
		} else {
			slots[i] = "[  ]"
		}
	}
	return strings.Join(slots, " ")
}

// noteTable lists the selection the way the console does after a correct turn
func noteTable(notes []theory.Note) []string {
	lines := make([]string, len(notes))
	for i, n := range notes {
		lines[i] = fmt.Sprintf("Note: %-10s | Octave: %d | Frequency: %.2f Hz", n.Name, n.Octave, n.Frequency)
	}
	return lines
}
