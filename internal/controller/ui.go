// Package controller provides output adapters for displaying drill rounds and results.
package controller

import (
	"strings"

	m "github.com/mouse-blink/poematic/internal/model"
)

// textWidth is the width of the separator printed after every answer.
const textWidth = 64

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSinglePass StartMode = iota
	ModeEscalating
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithSinglePassMode sets the UI to a single pass over the corpus.
func WithSinglePassMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSinglePass
	}
}

// WithEscalatingMode sets the UI to repeated passes with a growing hide count.
func WithEscalatingMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeEscalating
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for the drill transcript and corpus previews.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayRound(round m.Round)
	DisplayOutcome(outcome m.Outcome)
	DisplayPassSummary(summary m.PassSummary)
	DisplaySummary(summary m.SessionSummary)
	DisplayPreview(rows []m.PreviewRow) error
}

func expectedText(words []m.Word) string {
	cores := make([]string, 0, len(words))
	for _, w := range words {
		cores = append(cores, w.Core)
	}

	return strings.Join(cores, " ")
}
