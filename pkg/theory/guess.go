// ABOUTME: Guess evaluation against a turn's selection
// ABOUTME: Positional, all-or-nothing, using the fixed enharmonic table
package theory

// GuessMatches reports whether guess names the given note. Unparseable guesses never match.
func GuessMatches(note Note, guess string) bool {
	if !IsNoteName(guess) {
		return false
	}
	return NamesEnharmonicallyEqual(guess, note.Name)
}

// ScoreGuesses returns true only if every guess[i] matches selection[i].
// A length mismatch is scored as wrong.
func ScoreGuesses(selection []Note, guesses []string) bool {
	if len(selection) != len(guesses) {
		return false
	}
	for i, n := range selection {
		if !GuessMatches(n, guesses[i]) {
			return false
		}
	}
	return true
}

// Mismatches returns the indexes of guesses that do not match the selection
func Mismatches(selection []Note, guesses []string) []int {
	var wrong []int
	for i, n := range selection {
		if i >= len(guesses) || !GuessMatches(n, guesses[i]) {
			wrong = append(wrong, i)
		}
	}
	return wrong
}
