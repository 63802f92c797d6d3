// ABOUTME: Pitch classes, note names and equal-tempered frequencies
// ABOUTME: Parses sharp/flat spellings and implements the fixed enharmonic table
package theory

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// NumPitchClasses is the number of equal-tempered pitch classes in an octave
const NumPitchClasses = 12

// C0Frequency is the reference frequency of C at octave 0 in Hz
const C0Frequency = 16.352

// ErrUnknownNote is returned when a token is not one of the 24 accepted spellings
var ErrUnknownNote = errors.New("unknown note name")

// PitchClass identifies one of the 12 notes independent of octave (C=0 ... B=11)
type PitchClass int

var sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Lower-case alternate spellings; naturals repeat themselves.
var enharmonicNames = [NumPitchClasses]string{"C", "db", "D", "eb", "E", "F", "gb", "G", "ab", "A", "bb", "B"}

// enharmonicPairs is the closed equivalence table used when scoring guesses.
// G#/Ab is not part of it.
var enharmonicPairs = map[[2]string]bool{
	{"f#", "gb"}: true,
	{"c#", "db"}: true,
	{"d#", "eb"}: true,
	{"a#", "bb"}: true,
}

// Valid reports whether p is in the range 0-11
func (p PitchClass) Valid() bool {
	return p >= 0 && p < NumPitchClasses
}

// Name returns the canonical sharp spelling ("C#")
func (p PitchClass) Name() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", int(p))
	}
	return sharpNames[p]
}

// Enharmonic returns the alternate spelling ("db"), or the name itself for naturals
func (p PitchClass) Enharmonic() string {
	if !p.Valid() {
		return p.Name()
	}
	return enharmonicNames[p]
}

// String implements fmt.Stringer
func (p PitchClass) String() string {
	return p.Name()
}

// Transpose moves p up by semitones, wrapping within the octave
func (p PitchClass) Transpose(semitones int) PitchClass {
	v := (int(p) + semitones) % NumPitchClasses
	if v < 0 {
		v += NumPitchClasses
	}
	return PitchClass(v)
}

// ParsePitchClass resolves a case-insensitive note name to its pitch class.
// Both the sharp spelling and the flat alternate are accepted.
func ParsePitchClass(name string) (PitchClass, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized != "" {
		for i := 0; i < NumPitchClasses; i++ {
			if normalized == strings.ToLower(sharpNames[i]) || normalized == strings.ToLower(enharmonicNames[i]) {
				return PitchClass(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNote, name)
}

// IsNoteName reports whether name parses as a pitch class
func IsNoteName(name string) bool {
	_, err := ParsePitchClass(name)
	return err == nil
}

// NoteNumber returns the semitone index counted from C at octave -1
func NoteNumber(p PitchClass, octave int) int {
	return (octave+1)*NumPitchClasses + int(p)
}

// Frequency returns the frequency in Hz of pitch class p at the given octave,
// C0Frequency * 2^(NoteNumber/12). The octave factor is applied with Ldexp so
// Frequency(p, o+1) is exactly twice Frequency(p, o).
func Frequency(p PitchClass, octave int) float64 {
	return math.Ldexp(C0Frequency*math.Pow(2.0, float64(p)/12.0), octave+1)
}

// NamesEnharmonicallyEqual compares two note names case-insensitively, also
// accepting the four pairs F#/Gb, C#/Db, D#/Eb and A#/Bb in either order.
func NamesEnharmonicallyEqual(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == b {
		return true
	}
	return enharmonicPairs[[2]string{a, b}] || enharmonicPairs[[2]string{b, a}]
}

// Note is a concrete pitch at an octave. Values are immutable once built by NewNote.
type Note struct {
	Name       string
	PitchClass PitchClass
	Octave     int
	Frequency  float64
	Enharmonic string
}

// NewNote builds the note for pitch class p at octave
func NewNote(p PitchClass, octave int) Note {
	return Note{
		Name:       p.Name(),
		PitchClass: p,
		Octave:     octave,
		Frequency:  Frequency(p, octave),
		Enharmonic: p.Enharmonic(),
	}
}

// String renders the note as name plus octave ("C#4")
func (n Note) String() string {
	return fmt.Sprintf("%s%d", n.Name, n.Octave)
}
