// Package domain contains the recall trainer's text engine and drill workflow.
package domain

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mouse-blink/poematic/internal/adapter"
	"github.com/mouse-blink/poematic/internal/controller"
	m "github.com/mouse-blink/poematic/internal/model"
)

// DrillArgs configures an interactive drill.
type DrillArgs struct {
	Corpus    []m.Path
	HideCount int
	Policy    m.Policy
	Escalate  bool
	Seed      uint64 // 0 picks a random seed
}

// PreviewArgs configures a corpus preview.
type PreviewArgs struct {
	Corpus    []m.Path
	HideCount int
	Seed      uint64
}

// Workflow defines the user-facing operations of the trainer.
type Workflow interface {
	Drill(args DrillArgs) error
	Preview(args PreviewArgs) error
}

// WorkflowOption customizes a Workflow.
type WorkflowOption func(*workflow)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		w.logger = logger
	}
}

// WithSamplerFactory replaces the random sampler construction, mostly for tests.
func WithSamplerFactory(factory func(seed uint64) Sampler) WorkflowOption {
	return func(w *workflow) {
		w.newSampler = factory
	}
}

type workflow struct {
	corpus     adapter.CorpusAdapter
	input      adapter.GuessReader
	ui         controller.UI
	newSampler func(seed uint64) Sampler
	logger     *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(corpus adapter.CorpusAdapter, input adapter.GuessReader, ui controller.UI, opts ...WorkflowOption) Workflow {
	w := &workflow{
		corpus:     corpus,
		input:      input,
		ui:         ui,
		newSampler: NewRandSampler,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *workflow) log() *slog.Logger {
	if w.logger != nil {
		return w.logger
	}

	return slog.Default()
}

// Drill runs the question-and-answer loop until the session ends or input runs out.
func (w *workflow) Drill(args DrillArgs) error {
	lines, err := w.corpus.Load(args.Corpus...)
	if err != nil {
		return err
	}

	session, err := NewSession(lines, NewHider(w.newSampler(args.Seed)), SessionOptions{
		HideCount: args.HideCount,
		Policy:    args.Policy,
		Escalate:  args.Escalate,
		Logger:    w.log(),
	})
	if err != nil {
		return err
	}

	mode := controller.WithSinglePassMode()
	if args.Escalate {
		mode = controller.WithEscalatingMode()
	}

	if err := w.ui.Start(mode); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	if err := w.play(session); err != nil {
		return err
	}

	w.ui.DisplaySummary(session.Summary())

	return nil
}

func (w *workflow) play(session *Session) error {
	for {
		round, err := session.Next()
		if errors.Is(err, ErrSessionOver) {
			return nil
		}

		if err != nil {
			return err
		}

		w.ui.DisplayRound(round)

		guess, err := w.input.ReadGuess()
		if errors.Is(err, io.EOF) {
			w.log().Debug("end of input, stopping drill", "pass", round.Pass, "line", round.Number)
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to read guess: %w", err)
		}

		outcome, err := session.Submit(guess)
		if err != nil {
			return err
		}

		w.ui.DisplayOutcome(outcome)

		if outcome.Pass != nil {
			w.ui.DisplayPassSummary(*outcome.Pass)
		}
	}
}

// Preview shows every corpus line with its word counts and a sample rendering.
func (w *workflow) Preview(args PreviewArgs) error {
	lines, err := w.corpus.Load(args.Corpus...)
	if err != nil {
		return err
	}

	hider := NewHider(w.newSampler(args.Seed))
	rows := make([]m.PreviewRow, 0, len(lines))

	for i, line := range lines {
		hidden, err := hider.Hide(line, args.HideCount)
		if err != nil {
			return fmt.Errorf("failed to preview line %d: %w", i+1, err)
		}

		rows = append(rows, m.PreviewRow{
			Number:   i + 1,
			Words:    len(Tokenize(line)),
			Eligible: len(EligibleWords(line)),
			Hidden:   len(hidden.Words),
			Display:  hidden.Display,
		})
	}

	return w.ui.DisplayPreview(rows)
}
