// ABOUTME: Tests for dedupe, frequency sort and random selection
// ABOUTME: Uses fixed seeds so runs are deterministic
package theory

import (
	"testing"
)

func TestDedupeKeepsFirst(t *testing.T) {
	a := NewNote(0, 4)
	b := NewNote(2, 4)
	dup := a
	dup.Name = "dup"

	got := Dedupe([]Note{a, b, dup, NewNote(0, 5)})
	if len(got) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(got))
	}
	if got[0].Name != "C" {
		t.Errorf("expected first occurrence kept, got %s", got[0].Name)
	}
	if got[1].PitchClass != 2 || got[2].Octave != 5 {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestDedupeIdempotent(t *testing.T) {
	allowed, _ := AllowedPitchClasses([]string{"C", "G", "F"})
	gen := NewGenerator(DefaultPoolCapacity)
	for _, root := range []string{"C", "G", "F"} {
		gen.Generate(root, 1, 3, allowed)
	}

	once := Dedupe(gen.Notes())
	twice := Dedupe(once)
	if len(once) != len(twice) {
		t.Fatalf("dedupe not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("index %d differs: %v vs %v", i, once[i], twice[i])
		}
	}

	seen := map[noteKey]bool{}
	for _, n := range once {
		k := noteKey{n.PitchClass, n.Octave}
		if seen[k] {
			t.Errorf("duplicate %v after dedupe", n)
		}
		seen[k] = true
	}
}

func TestSortByFrequencyStable(t *testing.T) {
	first := Note{Name: "first", Frequency: 100}
	second := Note{Name: "second", Frequency: 100}
	low := Note{Name: "low", Frequency: 50}

	notes := []Note{first, second, low}
	SortByFrequency(notes)

	if notes[0].Name != "low" || notes[1].Name != "first" || notes[2].Name != "second" {
		t.Errorf("unexpected order: %s %s %s", notes[0].Name, notes[1].Name, notes[2].Name)
	}
}

func TestSelectDistinctPitchClasses(t *testing.T) {
	pool, _ := BuildPool([]string{"C"}, 0, 3, DefaultPoolCapacity)
	picker := NewPicker(42)

	inPool := map[Note]bool{}
	for _, n := range pool {
		inPool[n] = true
	}

	for round := 0; round < 200; round++ {
		sel := picker.Select(pool, 4)
		if len(sel) != 4 {
			t.Fatalf("round %d: expected 4 notes, got %d", round, len(sel))
		}

		var used PitchClassSet
		for i, n := range sel {
			if used[n.PitchClass] {
				t.Errorf("round %d: pitch class %s repeated", round, n.PitchClass)
			}
			used[n.PitchClass] = true
			if !inPool[n] {
				t.Errorf("round %d: %v not drawn from pool", round, n)
			}
			if i > 0 && sel[i].Frequency < sel[i-1].Frequency {
				t.Errorf("round %d: selection not sorted", round)
			}
		}
	}
}

func TestSelectShortWhenNotEnoughPitchClasses(t *testing.T) {
	pool, _ := BuildPool([]string{"C"}, 2, 4, DefaultPoolCapacity)
	picker := NewPicker(7)

	sel := picker.Select(pool, 9)
	if len(sel) != 7 {
		t.Errorf("expected 7 notes (distinct classes in C major), got %d", len(sel))
	}
}

func TestSelectEdgeCases(t *testing.T) {
	picker := NewPicker(1)

	if sel := picker.Select(nil, 3); len(sel) != 0 {
		t.Errorf("expected empty selection from empty pool, got %d", len(sel))
	}

	pool, _ := BuildPool([]string{"C"}, 4, 4, DefaultPoolCapacity)
	if sel := picker.Select(pool, 0); len(sel) != 0 {
		t.Errorf("expected empty selection for count 0, got %d", len(sel))
	}
}

func TestSelectDoesNotMutatePool(t *testing.T) {
	pool, _ := BuildPool([]string{"D"}, 3, 4, DefaultPoolCapacity)
	before := make([]Note, len(pool))
	copy(before, pool)

	NewPicker(99).Select(pool, 5)

	for i := range pool {
		if pool[i] != before[i] {
			t.Fatalf("pool mutated at %d", i)
		}
	}
}

func TestSelectCoversAllPitchClasses(t *testing.T) {
	pool, _ := BuildPool([]string{"C"}, 3, 4, DefaultPoolCapacity)
	picker := NewPicker(2024)

	var hits [NumPitchClasses]int
	for i := 0; i < 500; i++ {
		for _, n := range picker.Select(pool, 1) {
			hits[n.PitchClass]++
		}
	}

	for _, p := range []PitchClass{0, 2, 4, 5, 7, 9, 11} {
		if hits[p] == 0 {
			t.Errorf("pitch class %s never selected in 500 draws", p)
		}
	}
}

func TestPickerSeedDeterministic(t *testing.T) {
	pool, _ := BuildPool([]string{"C", "Eb"}, 2, 5, DefaultPoolCapacity)

	a := NewPicker(5).Select(pool, 3)
	b := NewPicker(5).Select(pool, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different selections: %v vs %v", a, b)
		}
	}
}

func TestDistinctPitchClasses(t *testing.T) {
	pool, _ := BuildPool([]string{"C", "G"}, 1, 2, DefaultPoolCapacity)
	if got := DistinctPitchClasses(pool); got != 8 {
		t.Errorf("expected 8 distinct pitch classes, got %d", got)
	}
}

func TestEndToEndCMajorTwoOctaves(t *testing.T) {
	allowed, _ := AllowedPitchClasses([]string{"C"})
	if allowed != setOf(0, 2, 4, 5, 7, 9, 11) {
		t.Fatalf("unexpected allowed set %s", allowed)
	}

	pool, _ := BuildPool([]string{"C"}, 0, 1, DefaultPoolCapacity)
	if len(pool) != 14 {
		t.Fatalf("expected 14 pool notes, got %d", len(pool))
	}

	sel := NewPicker(3).Select(pool, 3)
	if len(sel) != 3 {
		t.Fatalf("expected 3 selected, got %d", len(sel))
	}
	for i := 1; i < len(sel); i++ {
		if sel[i].Frequency <= sel[i-1].Frequency {
			t.Errorf("frequencies not strictly increasing: %v", sel)
		}
	}
}
