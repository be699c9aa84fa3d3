package domain

import (
	"fmt"
	"log/slog"

	m "github.com/mouse-blink/poematic/internal/model"
)

// SessionOptions configures a drill session.
type SessionOptions struct {
	HideCount int
	Policy    m.Policy
	// Escalate replays the corpus forever and hides one more word per line
	// after every perfect pass.
	Escalate bool
	Logger   *slog.Logger
}

// Session walks the corpus one line at a time and keeps the score.
//
// The escalation rule runs when the last quizzable line of a pass is answered:
// if every line of the pass was correct the hide count grows by one, and the
// pass score resets.
type Session struct {
	lines     []m.Line
	quizzable []int // indices into lines with at least one eligible word
	hider     Hider
	policy    m.Policy
	escalate  bool
	logger    *slog.Logger

	hideCount int
	pass      int
	cursor    int
	passScore m.Score
	total     m.Score
	completed int
	pending   *m.Round
	over      bool
}

// NewSession prepares a session over lines. Lines without any word to hide are
// skipped; a corpus made only of such lines fails with ErrEmptyCorpus.
func NewSession(lines []m.Line, hider Hider, opts SessionOptions) (*Session, error) {
	if opts.HideCount < 1 {
		return nil, fmt.Errorf("%w: hide count must be at least 1, got %d", ErrInvalidArgument, opts.HideCount)
	}

	if !opts.Policy.IsValid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, opts.Policy)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	quizzable := make([]int, 0, len(lines))

	for i, line := range lines {
		if len(EligibleWords(line)) == 0 {
			logger.Debug("skipping line without words", "line", i+1, "text", string(line))
			continue
		}

		quizzable = append(quizzable, i)
	}

	if len(quizzable) == 0 {
		return nil, ErrEmptyCorpus
	}

	return &Session{
		lines:     lines,
		quizzable: quizzable,
		hider:     hider,
		policy:    opts.Policy,
		escalate:  opts.Escalate,
		logger:    logger,
		hideCount: opts.HideCount,
		pass:      1,
	}, nil
}

// Next returns the round waiting for a guess, hiding words in the next line
// when none is pending. It returns ErrSessionOver once the session has ended.
func (s *Session) Next() (m.Round, error) {
	if s.pending != nil {
		return *s.pending, nil
	}

	if s.over {
		return m.Round{}, ErrSessionOver
	}

	line := s.lines[s.quizzable[s.cursor]]

	hidden, err := s.hider.Hide(line, s.hideCount)
	if err != nil {
		return m.Round{}, fmt.Errorf("failed to hide words in line %d: %w", s.quizzable[s.cursor]+1, err)
	}

	s.pending = &m.Round{
		Pass:      s.pass,
		Number:    s.cursor + 1,
		Total:     len(s.quizzable),
		HideCount: s.hideCount,
		Hidden:    hidden,
	}

	return *s.pending, nil
}

// Submit checks guess against the pending round and advances the session.
func (s *Session) Submit(guess string) (m.Outcome, error) {
	if s.pending == nil {
		return m.Outcome{}, ErrNoPendingRound
	}

	round := *s.pending
	s.pending = nil

	correct := GuessMatches(guess, round.Hidden.Words, s.policy)
	s.passScore = s.passScore.Record(correct)
	s.total = s.total.Record(correct)

	outcome := m.Outcome{
		Correct:  correct,
		Guess:    guess,
		Expected: round.Hidden.Words,
		Score:    s.passScore,
	}

	s.cursor++
	if s.cursor == len(s.quizzable) {
		summary := s.finishPass()
		outcome.Pass = &summary
	}

	return outcome, nil
}

func (s *Session) finishPass() m.PassSummary {
	summary := m.PassSummary{
		Pass:          s.pass,
		Score:         s.passScore,
		HideCount:     s.hideCount,
		NextHideCount: s.hideCount,
	}

	s.completed++

	if !s.escalate {
		s.over = true
		return summary
	}

	if s.passScore.Perfect() {
		s.hideCount++
		summary.Promoted = true
		summary.NextHideCount = s.hideCount
		s.logger.Debug("perfect pass, hiding more words", "pass", s.pass, "hide_count", s.hideCount)
	}

	s.pass++
	s.cursor = 0
	s.passScore = m.Score{}

	return summary
}

// Score returns the score of the current pass.
func (s *Session) Score() m.Score {
	return s.passScore
}

// HideCount returns the number of words hidden per line in the current pass.
func (s *Session) HideCount() int {
	return s.hideCount
}

// Summary reports the totals across every pass played so far.
func (s *Session) Summary() m.SessionSummary {
	return m.SessionSummary{
		Passes:    s.completed,
		Score:     s.total,
		HideCount: s.hideCount,
	}
}
