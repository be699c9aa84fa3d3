package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/poematic/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "Preview the text with words hidden",
		Long: `List prints every line of the text with its word counts and a sample of
how it looks with --hide words blanked out. Use --seed to reproduce a
sample.`,
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Preview(domain.PreviewArgs{
				Corpus:    corpusPaths(args),
				HideCount: settings.Hide,
				Seed:      settings.Seed,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
