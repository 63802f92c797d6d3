// ABOUTME: Game session driving turns over a curated note pool
// ABOUTME: Runs the console loop: play, collect guesses, score, report
package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/chordgame/pkg/theory"
)

// ErrQuit is returned when the player quits before the last turn
var ErrQuit = errors.New("player quit")

const (
	// DefaultResultPause is the wait before a correct answer is announced
	DefaultResultPause = 500 * time.Millisecond

	// DefaultSummaryPause is the wait before the screen clears for the summary
	DefaultSummaryPause = 300 * time.Millisecond
)

// Audio plays selections; *player.Player satisfies it
type Audio interface {
	Play(ctx context.Context, notes []theory.Note, d time.Duration) error
	Solo(ctx context.Context, notes []theory.Note, d time.Duration, onNote func(i int, n theory.Note)) error
}

// Options holds session settings
type Options struct {
	Notes        int
	Turns        int
	PlayDuration time.Duration
	SoloDuration time.Duration

	// Pauses between the result and summary screens
	ResultPause  time.Duration
	SummaryPause time.Duration
}

// Session owns the pool and random source for one run
type Session struct {
	ID      string
	opts    Options
	pool    []theory.Note
	picker  *theory.Picker
	audio   Audio
	score   Score
	turn    int
	scoreFn func([]theory.Note, []string) bool
}

// NewSession creates a session. A notes count above the pool's distinct pitch
// classes is clamped, and an empty pool is an error.
func NewSession(opts Options, pool []theory.Note, picker *theory.Picker, audio Audio) (*Session, error) {
	if len(pool) == 0 {
		return nil, errors.New("note pool is empty: check -scale and -range")
	}
	if opts.Notes < 1 {
		return nil, fmt.Errorf("invalid note count %d", opts.Notes)
	}
	if distinct := theory.DistinctPitchClasses(pool); opts.Notes > distinct {
		log.Printf("Warning: requested %d notes but pool has %d distinct pitch classes, clamping", opts.Notes, distinct)
		opts.Notes = distinct
	}

	s := &Session{
		ID:      uuid.NewString(),
		opts:    opts,
		pool:    pool,
		picker:  picker,
		audio:   audio,
		scoreFn: theory.ScoreGuesses,
	}
	log.Printf("Session %s: %d pool notes, %d notes per turn, %d turns", s.ID, len(pool), opts.Notes, opts.Turns)
	return s, nil
}

// Notes returns the per-turn note count after clamping
func (s *Session) Notes() int {
	return s.opts.Notes
}

// Options returns the effective session options
func (s *Session) Options() Options {
	return s.opts
}

// Score returns the running score
func (s *Session) Score() Score {
	return s.score
}

// Done reports whether every turn has been played
func (s *Session) Done() bool {
	return s.turn >= s.opts.Turns
}

// NextTurn draws a fresh selection and starts the next turn
func (s *Session) NextTurn() *Turn {
	s.turn++
	sel := s.picker.Select(s.pool, s.opts.Notes)
	log.Printf("Session %s turn %d: selected %v", s.ID, s.turn, sel)
	return NewTurn(s.turn, sel)
}

// Evaluate scores a completed turn and records the result
func (s *Session) Evaluate(t *Turn) bool {
	correct := s.scoreFn(t.Selection, t.Guesses())
	s.score.Record(correct)
	log.Printf("Session %s turn %d: guesses %v correct=%v", s.ID, t.Number, t.Guesses(), correct)
	return correct
}

// Run plays every turn on the console, reading guesses line by line from in.
// It returns ErrQuit if the player quits or input ends early.
func (s *Session) Run(ctx context.Context, in io.Reader, con *Console) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := newLineReader(ctx, in)
	con.Clear()

	for !s.Done() {
		t := s.NextTurn()
		con.TurnHeader(t.Number)

		con.Printf("Playing audio...\n")
		if err := s.audio.Play(ctx, t.Selection, s.opts.PlayDuration); err != nil {
			return err
		}

		if err := s.collect(ctx, t, lines, con); err != nil {
			return err
		}

		if s.Evaluate(t) {
			con.NoteTable(t.Selection)
			if err := sleep(ctx, s.opts.ResultPause); err != nil {
				return err
			}
			con.Correct("Correct! You guessed all the notes correctly.")
		} else {
			con.Clear()
			if err := s.solo(ctx, t, con); err != nil {
				return err
			}
			con.Incorrect("Incorrect guesses. Better Luck Next Time.")
		}

		if err := sleep(ctx, s.opts.SummaryPause); err != nil {
			return err
		}
		con.Clear()
		con.Summary(s.score)
	}

	return nil
}

// collect reads lines until the turn has a guess for every note
func (s *Session) collect(ctx context.Context, t *Turn, lines *lineReader, con *Console) error {
	for !t.Complete() {
		con.Prompt(t.Index())
		line, err := lines.next(ctx)
		if errors.Is(err, io.EOF) {
			con.Printf("\nQuitting.\n")
			return ErrQuit
		}
		if err != nil {
			return err
		}

		switch t.Input(line) {
		case ActionRepeat:
			con.Printf("Repeating selection.\n")
			if err := s.audio.Play(ctx, t.Selection, s.opts.PlayDuration); err != nil {
				return err
			}
		case ActionSolo:
			con.Clear()
			con.Printf("Soloing selection.\n")
			if err := s.solo(ctx, t, con); err != nil {
				return err
			}
		case ActionQuit:
			con.Printf("Quitting.\n")
			return ErrQuit
		case ActionUndo:
			con.Printf("Deleted last guess. Please re-enter.\n")
		case ActionInvalid:
			if err := s.audio.Play(ctx, t.Selection, s.opts.PlayDuration); err != nil {
				return err
			}
			con.Printf("Invalid note. Please enter a valid musical note.\n")
		}
	}
	return nil
}

// lineReader scans input on its own goroutine so a blocked read never holds
// up cancellation
type lineReader struct {
	lines chan string
	err   error
}

func newLineReader(ctx context.Context, in io.Reader) *lineReader {
	r := &lineReader{lines: make(chan string)}
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		r.err = scanner.Err()
	}()
	return r
}

// next returns the next line, io.EOF once input ends, or the context error
func (r *lineReader) next(ctx context.Context) (string, error) {
	select {
	case line, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", fmt.Errorf("failed to read input: %w", r.err)
			}
			return "", io.EOF
		}
		return line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Session) solo(ctx context.Context, t *Turn, con *Console) error {
	return s.audio.Solo(ctx, t.Selection, s.opts.SoloDuration, con.SoloLine)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
