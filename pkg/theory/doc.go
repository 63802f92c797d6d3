// ABOUTME: Music theory package for the ear-training game
// ABOUTME: Pitch classes, major-scale pools, random selection and guess scoring
// Package theory provides the pitch model and note-pool logic used by chordgame.
//
// The package is pure: nothing here touches audio devices or the terminal.
//   - PitchClass / Note: pitch classes 0-11, octaves and equal-tempered frequencies
//   - AllowedPitchClasses / Generator: major-scale pools restricted to an octave range
//   - Dedupe / SortByFrequency / Picker: pool curation and per-turn selection
//   - ScoreGuesses: all-or-nothing comparison of typed names against a selection
//
// Example:
//
//	allowed, _ := theory.AllowedPitchClasses([]string{"C", "G"})
//	gen := theory.NewGenerator(theory.DefaultPoolCapacity)
//	for _, root := range []string{"C", "G"} {
//	    gen.Generate(root, 3, 4, allowed)
//	}
//	pool := theory.Curate(gen.Notes())
//	picker := theory.NewPicker(0)
//	selection := picker.Select(pool, 3)
package theory
