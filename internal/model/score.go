package model

// Score counts correct answers against attempted lines.
type Score struct {
	Correct   int
	Attempted int
}

// Record adds one attempt to the score.
func (s Score) Record(correct bool) Score {
	s.Attempted++
	if correct {
		s.Correct++
	}

	return s
}

// Percent returns the share of correct answers in the range [0, 100].
func (s Score) Percent() float64 {
	if s.Attempted == 0 {
		return 0
	}

	return float64(s.Correct) * 100 / float64(s.Attempted)
}

// Perfect reports whether every attempted line was answered correctly.
func (s Score) Perfect() bool {
	return s.Attempted > 0 && s.Correct == s.Attempted
}

// Round is a single prompt shown to the user.
type Round struct {
	Pass      int // 1-based
	Number    int // 1-based line number within the pass
	Total     int // lines in the corpus
	HideCount int
	Hidden    Hidden
}

// Outcome is the result of checking a guess against a Round.
type Outcome struct {
	Correct  bool
	Guess    string
	Expected []Word
	Score    Score
	// Pass is set when the answer completed a pass over the corpus.
	Pass *PassSummary
}

// PassSummary describes a completed pass over the corpus.
type PassSummary struct {
	Pass          int
	Score         Score
	HideCount     int
	NextHideCount int
	Promoted      bool
}

// SessionSummary describes a finished drill.
type SessionSummary struct {
	Passes    int // completed passes
	Score     Score
	HideCount int
}
