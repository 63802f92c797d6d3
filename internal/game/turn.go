// ABOUTME: Per-turn guess entry state machine
// ABOUTME: Interprets input tokens as commands or note names and collects guesses
package game

import (
	"strings"

	"github.com/harperreed/chordgame/pkg/theory"
)

// maxTokenLen is how many characters of a token are considered
const maxTokenLen = 3

// Action is the outcome of feeding one line of input to a Turn
type Action int

const (
	// ActionRepeat asks for the selection to be played again
	ActionRepeat Action = iota
	// ActionSolo asks for each note to be played alone
	ActionSolo
	// ActionUndo removed the last stored guess
	ActionUndo
	// ActionQuit ends the game
	ActionQuit
	// ActionInvalid means the token was neither a command nor a note name
	ActionInvalid
	// ActionAccepted stored a guess; more are needed
	ActionAccepted
	// ActionComplete stored the final guess
	ActionComplete
)

func (a Action) String() string {
	switch a {
	case ActionRepeat:
		return "repeat"
	case ActionSolo:
		return "solo"
	case ActionUndo:
		return "undo"
	case ActionQuit:
		return "quit"
	case ActionInvalid:
		return "invalid"
	case ActionAccepted:
		return "accepted"
	case ActionComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Token extracts the first whitespace-separated word of line, cut to 3 characters
func Token(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	tok := fields[0]
	if len(tok) > maxTokenLen {
		tok = tok[:maxTokenLen]
	}
	return tok
}

// Turn holds one round's selection and the guesses entered so far
type Turn struct {
	Number    int
	Selection []theory.Note
	guesses   []string
}

// NewTurn starts a turn for selection
func NewTurn(number int, selection []theory.Note) *Turn {
	return &Turn{
		Number:    number,
		Selection: selection,
		guesses:   make([]string, 0, len(selection)),
	}
}

// Input interprets one line. Commands are checked before note validation;
// "x" only undoes when there is a guess to remove.
func (t *Turn) Input(line string) Action {
	if t.Complete() {
		return ActionComplete
	}

	tok := Token(line)
	switch strings.ToLower(tok) {
	case "r":
		return ActionRepeat
	case "s":
		return ActionSolo
	case "q":
		return ActionQuit
	case "x":
		if len(t.guesses) > 0 {
			t.guesses = t.guesses[:len(t.guesses)-1]
			return ActionUndo
		}
	}

	if !theory.IsNoteName(tok) {
		return ActionInvalid
	}

	t.guesses = append(t.guesses, tok)
	if t.Complete() {
		return ActionComplete
	}
	return ActionAccepted
}

// Index is the zero-based slot the next guess fills
func (t *Turn) Index() int {
	return len(t.guesses)
}

// Complete reports whether every note has a guess
func (t *Turn) Complete() bool {
	return len(t.guesses) >= len(t.Selection)
}

// Guesses returns a copy of the stored guesses
func (t *Turn) Guesses() []string {
	out := make([]string, len(t.guesses))
	copy(out, t.guesses)
	return out
}
