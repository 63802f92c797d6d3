// ABOUTME: Pool curation and random unique-pitch-class selection
// ABOUTME: Dedupes by pitch class and octave, sorts by frequency, picks per turn
package theory

import (
	"math/rand/v2"
	"slices"
	"time"
)

type noteKey struct {
	pitchClass PitchClass
	octave     int
}

// Dedupe keeps the first note for each (pitch class, octave) pair, preserving order
func Dedupe(notes []Note) []Note {
	seen := make(map[noteKey]bool, len(notes))
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		k := noteKey{n.PitchClass, n.Octave}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, n)
	}
	return out
}

// SortByFrequency sorts notes ascending by frequency; equal frequencies keep their order
func SortByFrequency(notes []Note) {
	slices.SortStableFunc(notes, func(a, b Note) int {
		switch {
		case a.Frequency < b.Frequency:
			return -1
		case a.Frequency > b.Frequency:
			return 1
		default:
			return 0
		}
	})
}

// Curate dedupes notes and sorts the result by frequency
func Curate(notes []Note) []Note {
	pool := Dedupe(notes)
	SortByFrequency(pool)
	return pool
}

// DistinctPitchClasses counts the pitch classes present in notes
func DistinctPitchClasses(notes []Note) int {
	var set PitchClassSet
	for _, n := range notes {
		if n.PitchClass.Valid() {
			set[n.PitchClass] = true
		}
	}
	return set.Len()
}

// Picker draws per-turn selections. It owns its random source, seeded once.
type Picker struct {
	rng *rand.Rand
}

// NewPicker creates a picker. A zero seed seeds from the current time.
func NewPicker(seed uint64) *Picker {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Select returns up to count notes from pool with pairwise-distinct pitch
// classes, sorted by frequency. The result is short when the pool has fewer
// than count distinct pitch classes.
func (p *Picker) Select(pool []Note, count int) []Note {
	if count <= 0 || len(pool) == 0 {
		return []Note{}
	}

	shuffled := make([]Note, len(pool))
	copy(shuffled, pool)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// The first note of each pitch class in a uniform shuffle is a uniform
	// representative; reshuffle the representatives to pick the classes.
	var used PitchClassSet
	reps := make([]Note, 0, NumPitchClasses)
	for _, n := range shuffled {
		if !n.PitchClass.Valid() || used[n.PitchClass] {
			continue
		}
		used[n.PitchClass] = true
		reps = append(reps, n)
	}
	p.rng.Shuffle(len(reps), func(i, j int) {
		reps[i], reps[j] = reps[j], reps[i]
	})

	if count > len(reps) {
		count = len(reps)
	}
	selection := reps[:count:count]
	SortByFrequency(selection)
	return selection
}
