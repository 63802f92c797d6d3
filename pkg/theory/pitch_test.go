// ABOUTME: Tests for pitch class parsing, frequencies and enharmonics
// ABOUTME: Covers round trips, octave doubling and the fixed pair table
package theory

import (
	"errors"
	"math"
	"testing"
)

func TestParsePitchClassRoundTrip(t *testing.T) {
	for i := 0; i < NumPitchClasses; i++ {
		p := PitchClass(i)

		got, err := ParsePitchClass(p.Name())
		if err != nil {
			t.Fatalf("ParsePitchClass(%q) returned error: %v", p.Name(), err)
		}
		if got != p {
			t.Errorf("ParsePitchClass(%q) = %d, want %d", p.Name(), got, p)
		}

		got, err = ParsePitchClass(p.Enharmonic())
		if err != nil || got != p {
			t.Errorf("ParsePitchClass(%q) = %d, %v; want %d", p.Enharmonic(), got, err, p)
		}
	}
}

func TestParsePitchClassCaseInsensitive(t *testing.T) {
	tests := []struct {
		input    string
		expected PitchClass
	}{
		{"c", 0},
		{"C#", 1},
		{"c#", 1},
		{"Db", 1},
		{"DB", 1},
		{"eb", 3},
		{"Gb", 6},
		{"ab", 8},
		{"Bb", 10},
		{"b", 11},
		{" a ", 9},
	}

	for _, tt := range tests {
		got, err := ParsePitchClass(tt.input)
		if err != nil {
			t.Errorf("ParsePitchClass(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParsePitchClass(%q) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestParsePitchClassRejects(t *testing.T) {
	for _, input := range []string{"", "x", "H", "E#", "Cb", "Fb", "B#", "C##", "r", "q"} {
		_, err := ParsePitchClass(input)
		if err == nil {
			t.Errorf("ParsePitchClass(%q) expected error", input)
			continue
		}
		if !errors.Is(err, ErrUnknownNote) {
			t.Errorf("ParsePitchClass(%q) error %v does not wrap ErrUnknownNote", input, err)
		}
	}
}

func TestFrequencyOctaveDoubling(t *testing.T) {
	for p := PitchClass(0); p < NumPitchClasses; p++ {
		for octave := -1; octave < 9; octave++ {
			lo := Frequency(p, octave)
			hi := Frequency(p, octave+1)
			if hi != 2*lo {
				t.Errorf("Frequency(%s, %d) = %f, want exactly 2 * %f", p, octave+1, hi, lo)
			}
		}
	}
}

func TestFrequencyFormula(t *testing.T) {
	for p := PitchClass(0); p < NumPitchClasses; p++ {
		for octave := 0; octave < 9; octave++ {
			want := C0Frequency * math.Pow(2, float64((octave+1)*12+int(p))/12)
			got := Frequency(p, octave)
			if math.Abs(got-want) > want*1e-12 {
				t.Errorf("Frequency(%s, %d) = %f, want %f", p, octave, got, want)
			}
		}
	}
}

func TestFrequencyReference(t *testing.T) {
	if got := Frequency(0, 0); math.Abs(got-2*C0Frequency) > 1e-9 {
		t.Errorf("Frequency(C, 0) = %f, want %f", got, 2*C0Frequency)
	}
	if got := Frequency(0, -1); math.Abs(got-C0Frequency) > 1e-9 {
		t.Errorf("Frequency(C, -1) = %f, want %f", got, C0Frequency)
	}
}

func TestNamesEnharmonicallyEqual(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"C", "c", true},
		{"F#", "Gb", true},
		{"gb", "f#", true},
		{"C#", "DB", true},
		{"Db", "c#", true},
		{"D#", "Eb", true},
		{"A#", "Bb", true},
		{"bb", "a#", true},
		{"G#", "Ab", false},
		{"ab", "g#", false},
		{"C", "D", false},
		{"E", "F", false},
		{"x", "x", true},
	}

	for _, tt := range tests {
		if got := NamesEnharmonicallyEqual(tt.a, tt.b); got != tt.expected {
			t.Errorf("NamesEnharmonicallyEqual(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestNewNote(t *testing.T) {
	n := NewNote(6, 4)

	if n.Name != "F#" {
		t.Errorf("expected name F#, got %s", n.Name)
	}
	if n.Enharmonic != "gb" {
		t.Errorf("expected enharmonic gb, got %s", n.Enharmonic)
	}
	if n.Octave != 4 {
		t.Errorf("expected octave 4, got %d", n.Octave)
	}
	if n.Frequency != Frequency(6, 4) {
		t.Errorf("expected frequency %f, got %f", Frequency(6, 4), n.Frequency)
	}
	if n.String() != "F#4" {
		t.Errorf("expected String F#4, got %s", n.String())
	}
}

func TestTranspose(t *testing.T) {
	if got := PitchClass(11).Transpose(1); got != 0 {
		t.Errorf("B + 1 = %d, want 0", got)
	}
	if got := PitchClass(0).Transpose(-1); got != 11 {
		t.Errorf("C - 1 = %d, want 11", got)
	}
	if got := PitchClass(4).Transpose(24); got != 4 {
		t.Errorf("E + 24 = %d, want 4", got)
	}
}
