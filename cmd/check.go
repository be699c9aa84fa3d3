package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/poematic/internal/domain"
	m "github.com/mouse-blink/poematic/internal/model"
)

var errNoMatch = errors.New("guess does not match")

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <expected> <guess>",
		Short: "Check a guess against the expected words",
		Long: `Check compares a guess with the expected words the same way a drill does:
word by word, in order, ignoring case, diacritics and edge punctuation.
Tokens without letters, such as numbers, are ignored on both sides.
It prints "match" and exits 0, or fails with a non-zero status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected := domain.EligibleWords(m.Line(args[0]))
			if !domain.GuessMatches(eligibleText(args[1]), expected, settings.GuessPolicy()) {
				return errNoMatch
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "match")

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// eligibleText drops tokens that have nothing to hide, as the expected side does.
func eligibleText(guess string) string {
	words := domain.EligibleWords(m.Line(guess))

	return strings.Join(m.Hidden{Words: words}.Cores(), " ")
}
