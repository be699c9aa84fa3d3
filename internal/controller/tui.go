package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/poematic/internal/model"
)

var (
	lineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	goodStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	wrongStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Faint(true)
)

// TUI implements UI with lipgloss styling, and a Bubble Tea pager for long previews.
type TUI struct {
	output    io.Writer
	mode      StartMode
	bar       progress.Model
	prompting bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{
		output: output,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(textWidth/2),
			progress.WithoutPercentage(),
		),
	}
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = newStartConfig(options).mode
	if t.mode == ModeEscalating {
		t.printf("%s\n", headerStyle.Render("Escalating mode: one more word is hidden after every perfect pass."))
	}

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {
	t.endPrompt()
}

// DisplayRound prints pass progress, the blanked line and the prompt.
func (t *TUI) DisplayRound(round m.Round) {
	if t.mode == ModeEscalating && round.Number == 1 {
		t.printf("%s\n", headerStyle.Render(fmt.Sprintf("Pass %d: %s per line", round.Pass, pluralWords(round.HideCount))))
	}

	done := float64(round.Number-1) / float64(max(round.Total, 1))
	t.printf("%s %s\n", t.bar.ViewAs(done), mutedStyle.Render(fmt.Sprintf("%d/%d", round.Number, round.Total)))
	t.printf("%s\n%s", lineStyle.Render(string(round.Hidden.Display)), promptStyle.Render("> "))
	t.prompting = true
}

// DisplayOutcome prints a colored verdict and the running score.
func (t *TUI) DisplayOutcome(outcome m.Outcome) {
	t.prompting = false

	verdict := goodStyle.Render("Good!")
	if !outcome.Correct {
		verdict = wrongStyle.Render(fmt.Sprintf("Wrong! (%s)", expectedText(outcome.Expected)))
	}

	t.printf("%s %d/%d\n", verdict, outcome.Score.Correct, outcome.Score.Attempted)
	t.printf("%s\n", separatorStyle.Render(strings.Repeat("-", textWidth)))
}

// DisplayPassSummary reports a finished pass in escalating mode.
func (t *TUI) DisplayPassSummary(summary m.PassSummary) {
	if t.mode != ModeEscalating {
		return
	}

	t.printf("%s\n", mutedStyle.Render(fmt.Sprintf("Pass %d finished: %d/%d correct",
		summary.Pass, summary.Score.Correct, summary.Score.Attempted)))

	if summary.Promoted {
		t.printf("%s\n", goodStyle.Render(fmt.Sprintf("Perfect pass! Now hiding %s per line.",
			pluralWords(summary.NextHideCount))))
	}
}

// DisplaySummary prints the final score.
func (t *TUI) DisplaySummary(summary m.SessionSummary) {
	t.endPrompt()

	style := wrongStyle
	if summary.Score.Perfect() {
		style = goodStyle
	}

	t.printf("Score: %s\n", style.Render(fmt.Sprintf("%d/%d (%.0f%%)",
		summary.Score.Correct, summary.Score.Attempted, summary.Score.Percent())))

	if t.mode == ModeEscalating {
		t.printf("%s\n", mutedStyle.Render(fmt.Sprintf("Passes completed: %d, hiding %s per line",
			summary.Passes, pluralWords(summary.HideCount))))
	}
}

// DisplayPreview prints the rows directly when they fit the terminal, and
// opens a scrollable list otherwise.
func (t *TUI) DisplayPreview(rows []m.PreviewRow) error {
	model := newPreviewModel(rows)

	if width, height, ok := terminalSize(t.output); ok {
		model.width = width
		model.height = height
	}

	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.staticView())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) endPrompt() {
	if t.prompting {
		t.printf("\n")
		t.prompting = false
	}
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}
