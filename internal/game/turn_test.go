// ABOUTME: Tests for the guess entry state machine
// ABOUTME: Commands, undo rules, validation and token truncation
package game

import (
	"testing"

	"github.com/harperreed/chordgame/pkg/theory"
)

func selection(names ...string) []theory.Note {
	out := make([]theory.Note, 0, len(names))
	for i, name := range names {
		p, err := theory.ParsePitchClass(name)
		if err != nil {
			panic(err)
		}
		out = append(out, theory.NewNote(p, 3+i))
	}
	return out
}

func TestToken(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"C", "C"},
		{"  d# \n", "d#"},
		{"C# extra words", "C#"},
		{"abcdef", "abc"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := Token(tt.input); got != tt.expected {
			t.Errorf("Token(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestTurnCommands(t *testing.T) {
	turn := NewTurn(1, selection("C", "E"))

	tests := []struct {
		input    string
		expected Action
	}{
		{"r", ActionRepeat},
		{"R", ActionRepeat},
		{"s", ActionSolo},
		{"S", ActionSolo},
		{"q", ActionQuit},
		{"Q", ActionQuit},
	}

	for _, tt := range tests {
		if got := turn.Input(tt.input); got != tt.expected {
			t.Errorf("Input(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
	if turn.Index() != 0 {
		t.Errorf("commands should not store guesses, index = %d", turn.Index())
	}
}

func TestTurnUndoOnlyWithGuesses(t *testing.T) {
	turn := NewTurn(1, selection("C", "E", "G"))

	if got := turn.Input("x"); got != ActionInvalid {
		t.Errorf("x with no guesses = %v, want invalid", got)
	}

	turn.Input("C")
	if got := turn.Input("X"); got != ActionUndo {
		t.Errorf("X after a guess = %v, want undo", got)
	}
	if turn.Index() != 0 {
		t.Errorf("expected index 0 after undo, got %d", turn.Index())
	}
}

func TestTurnCollectsGuesses(t *testing.T) {
	turn := NewTurn(2, selection("C", "E", "G"))

	steps := []struct {
		input    string
		expected Action
	}{
		{"c", ActionAccepted},
		{"h", ActionInvalid},
		{"", ActionInvalid},
		{"Fb", ActionInvalid},
		{"e", ActionAccepted},
		{"x", ActionUndo},
		{"Eb", ActionAccepted},
		{"G", ActionComplete},
	}

	for i, step := range steps {
		if got := turn.Input(step.input); got != step.expected {
			t.Errorf("step %d Input(%q) = %v, want %v", i, step.input, got, step.expected)
		}
	}

	guesses := turn.Guesses()
	if len(guesses) != 3 || guesses[0] != "c" || guesses[1] != "Eb" || guesses[2] != "G" {
		t.Errorf("unexpected guesses %v", guesses)
	}
	if !turn.Complete() {
		t.Error("expected turn complete")
	}
	if got := turn.Input("A"); got != ActionComplete {
		t.Errorf("input after completion = %v, want complete", got)
	}
}

func TestTurnTruncatesToken(t *testing.T) {
	turn := NewTurn(1, selection("C#"))

	// "c#major" is read as "c#m", which is not a note
	if got := turn.Input("c#major"); got != ActionInvalid {
		t.Errorf("expected truncated token to be rejected, got %v", got)
	}
	if got := turn.Input("c# please"); got != ActionComplete {
		t.Errorf("expected first word to be accepted, got %v", got)
	}
	if turn.Guesses()[0] != "c#" {
		t.Errorf("expected stored guess c#, got %q", turn.Guesses()[0])
	}
}

func TestTurnGuessesCopy(t *testing.T) {
	turn := NewTurn(1, selection("C", "D"))
	turn.Input("C")

	g := turn.Guesses()
	g[0] = "changed"
	if turn.Guesses()[0] != "C" {
		t.Error("Guesses should return a copy")
	}
}

func TestActionString(t *testing.T) {
	if ActionUndo.String() != "undo" || Action(99).String() != "unknown" {
		t.Errorf("unexpected strings %q %q", ActionUndo.String(), Action(99).String())
	}
}

func TestScorePercentage(t *testing.T) {
	var s Score
	if s.Percentage() != 0 {
		t.Errorf("expected 0 with no turns, got %f", s.Percentage())
	}
	s.Record(true)
	s.Record(false)
	s.Record(true)
	s.Record(true)
	if s.Correct != 3 || s.Played != 4 {
		t.Errorf("expected 3/4, got %d/%d", s.Correct, s.Played)
	}
	if s.Percentage() != 75 {
		t.Errorf("expected 75%%, got %f", s.Percentage())
	}
}
