// ABOUTME: Major-scale pitch-class sets and scale pool generation
// ABOUTME: Walks the 2-2-1-2-2-2-1 pattern per root and octave with a capacity bound
package theory

import (
	"log"
	"strings"
)

// DefaultPoolCapacity bounds the number of notes a Generator will emit
const DefaultPoolCapacity = 100

// MajorScaleIntervals are the semitone steps of a major scale
var MajorScaleIntervals = [7]int{2, 2, 1, 2, 2, 2, 1}

// PitchClassSet marks which of the 12 pitch classes are allowed
type PitchClassSet [NumPitchClasses]bool

// Contains reports whether p is in the set
func (s PitchClassSet) Contains(p PitchClass) bool {
	return p.Valid() && s[p]
}

// Len returns the number of pitch classes in the set
func (s PitchClassSet) Len() int {
	n := 0
	for _, ok := range s {
		if ok {
			n++
		}
	}
	return n
}

// PitchClasses returns the members in ascending order
func (s PitchClassSet) PitchClasses() []PitchClass {
	out := make([]PitchClass, 0, NumPitchClasses)
	for i, ok := range s {
		if ok {
			out = append(out, PitchClass(i))
		}
	}
	return out
}

// String lists the members by name ("C D E")
func (s PitchClassSet) String() string {
	names := make([]string, 0, NumPitchClasses)
	for _, p := range s.PitchClasses() {
		names = append(names, p.Name())
	}
	return strings.Join(names, " ")
}

// majorScale visits the seven pitch classes of the major scale on root
func majorScale(root PitchClass, visit func(PitchClass)) {
	current := root
	for _, step := range MajorScaleIntervals {
		visit(current)
		current = current.Transpose(step)
	}
}

// AllowedPitchClasses unions the major scales rooted at each name in roots.
// Names that do not resolve are skipped and returned so the caller can warn.
func AllowedPitchClasses(roots []string) (PitchClassSet, []string) {
	var set PitchClassSet
	var skipped []string

	for _, root := range roots {
		pc, err := ParsePitchClass(root)
		if err != nil {
			log.Printf("Warning: could not find pitch class for scale root %q", root)
			skipped = append(skipped, root)
			continue
		}
		majorScale(pc, func(p PitchClass) {
			set[p] = true
		})
	}

	return set, skipped
}

// Generator accumulates scale notes across calls up to a fixed capacity
type Generator struct {
	capacity int
	notes    []Note
}

// NewGenerator creates a generator that emits at most capacity notes in total.
// A non-positive capacity falls back to DefaultPoolCapacity.
func NewGenerator(capacity int) *Generator {
	if capacity <= 0 {
		capacity = DefaultPoolCapacity
	}
	return &Generator{
		capacity: capacity,
		notes:    make([]Note, 0, capacity),
	}
}

// Generate appends the notes of the major scale on root for every octave in
// [low, high] whose pitch class is in allowed. It returns the notes added by
// this call. Unknown roots and low > high add nothing.
func (g *Generator) Generate(root string, low, high int, allowed PitchClassSet) []Note {
	pc, err := ParsePitchClass(root)
	if err != nil {
		log.Printf("Error: invalid root note %q", root)
		return nil
	}

	start := len(g.notes)
	for octave := low; octave <= high; octave++ {
		full := false
		majorScale(pc, func(p PitchClass) {
			if full || len(g.notes) >= g.capacity {
				full = true
				return
			}
			if allowed.Contains(p) {
				g.notes = append(g.notes, NewNote(p, octave))
			}
		})
		if full {
			break
		}
	}

	return g.notes[start:len(g.notes):len(g.notes)]
}

// Notes returns a copy of everything generated so far
func (g *Generator) Notes() []Note {
	out := make([]Note, len(g.notes))
	copy(out, g.notes)
	return out
}

// Len returns the number of notes generated so far
func (g *Generator) Len() int {
	return len(g.notes)
}

// Full reports whether the capacity has been reached
func (g *Generator) Full() bool {
	return len(g.notes) >= g.capacity
}

// GenerateScale is a one-shot helper for a single root with the default capacity
func GenerateScale(root string, low, high int, allowed PitchClassSet) []Note {
	return NewGenerator(DefaultPoolCapacity).Generate(root, low, high, allowed)
}

// BuildPool generates every root over [low, high] and curates the result.
// It returns the pool together with any roots that could not be resolved.
func BuildPool(roots []string, low, high, capacity int) ([]Note, []string) {
	allowed, skipped := AllowedPitchClasses(roots)
	gen := NewGenerator(capacity)
	for _, root := range roots {
		gen.Generate(root, low, high, allowed)
	}
	return Curate(gen.Notes()), skipped
}
