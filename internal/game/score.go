// ABOUTME: Running score across turns
// ABOUTME: Counts correct turns and reports the percentage
package game

// Score tracks results across the turns played so far
type Score struct {
	Correct int
	Played  int
}

// Record adds one turn's result
func (s *Score) Record(correct bool) {
	s.Played++
	if correct {
		s.Correct++
	}
}

// Percentage returns correct turns as a share of played turns (0-100)
func (s Score) Percentage() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Played) * 100
}
