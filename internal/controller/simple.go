package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/poematic/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd       *cobra.Command
	mode      StartMode
	prompting bool
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = newStartConfig(options).mode
	if s.mode == ModeEscalating {
		s.printf("Escalating mode: one more word is hidden after every perfect pass.\n")
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
	s.endPrompt()
}

// DisplayRound prints the blanked line followed by the prompt marker.
func (s *SimpleUI) DisplayRound(round m.Round) {
	if s.mode == ModeEscalating && round.Number == 1 {
		s.printf("Pass %d: %s per line\n", round.Pass, pluralWords(round.HideCount))
	}

	s.printf("%s\n> ", round.Hidden.Display)
	s.prompting = true
}

// DisplayOutcome prints the verdict and the running score.
func (s *SimpleUI) DisplayOutcome(outcome m.Outcome) {
	s.prompting = false

	if outcome.Correct {
		s.printf("Good!")
	} else {
		s.printf("Wrong! (%s)", expectedText(outcome.Expected))
	}

	s.printf(" %d/%d\n%s\n", outcome.Score.Correct, outcome.Score.Attempted, strings.Repeat("-", textWidth))
}

// DisplayPassSummary reports a finished pass. Single pass drills only get the final summary.
func (s *SimpleUI) DisplayPassSummary(summary m.PassSummary) {
	if s.mode != ModeEscalating {
		return
	}

	s.printf("Pass %d finished: %d/%d correct\n", summary.Pass, summary.Score.Correct, summary.Score.Attempted)

	if summary.Promoted {
		s.printf("Perfect pass! Now hiding %s per line.\n", pluralWords(summary.NextHideCount))
	}
}

// DisplaySummary prints the final score.
func (s *SimpleUI) DisplaySummary(summary m.SessionSummary) {
	s.endPrompt()

	s.printf("Score: %d/%d (%.0f%%)\n", summary.Score.Correct, summary.Score.Attempted, summary.Score.Percent())

	if s.mode == ModeEscalating {
		s.printf("Passes completed: %d, hiding %s per line\n", summary.Passes, pluralWords(summary.HideCount))
	}
}

// DisplayPreview renders the corpus as a table.
func (s *SimpleUI) DisplayPreview(rows []m.PreviewRow) error {
	if len(rows) == 0 {
		s.printf("No lines found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Words", "Hidden", "Line"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
	})

	words, eligible := 0, 0

	for _, row := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Number),
			fmt.Sprintf("%d", row.Words),
			fmt.Sprintf("%d/%d", row.Hidden, row.Eligible),
			string(row.Display),
		})

		words += row.Words
		eligible += row.Eligible
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d lines", len(rows)),
		fmt.Sprintf("%d", words),
		fmt.Sprintf("%d", eligible),
		"",
	})

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) endPrompt() {
	if s.prompting {
		s.printf("\n")
		s.prompting = false
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func pluralWords(n int) string {
	if n == 1 {
		return "1 word"
	}

	return fmt.Sprintf("%d words", n)
}
