// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the guessing UI
package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/chordgame/internal/game"
)

// Run plays the whole session in the TUI. It returns game.ErrQuit if the
// player quit early, or the audio error that stopped playback.
func Run(ctx context.Context, session *game.Session, audio game.Audio) error {
	model := NewModel(ctx, session, audio)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return nil
	}
	if m.Err() != nil {
		return m.Err()
	}
	if m.Quit() {
		return game.ErrQuit
	}
	return nil
}
