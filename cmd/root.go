// Package cmd provides the root command and CLI setup for poematic.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/poematic/internal/adapter"
	"github.com/mouse-blink/poematic/internal/config"
	"github.com/mouse-blink/poematic/internal/controller"
	"github.com/mouse-blink/poematic/internal/domain"
	m "github.com/mouse-blink/poematic/internal/model"
)

var corpusAdapter adapter.CorpusAdapter
var workflow domain.Workflow
var settings config.Config

func init() {
	corpusAdapter = adapter.NewLocalCorpusAdapter()
}

var configFlag string
var verboseFlag bool
var hideFlag int
var seedFlag uint64
var policyFlag m.Policy
var colorFlag string
var escalateFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poematic [files...]",
		Short: "Learn a text by heart, one line at a time",
		Long: `Poematic shows a text line by line with one or more words replaced by
blanks and asks you to type the missing words. Answers are compared
without regard to case or diacritics, so "zeby" matches "Żeby".

Files default to poem.txt. Several files are drilled one after another.

With --escalate the text is replayed until input ends, and every perfect
pass hides one more word per line.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return prepare(cmd)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Drill(domain.DrillArgs{
				Corpus:    corpusPaths(args),
				HideCount: settings.Hide,
				Policy:    settings.GuessPolicy(),
				Escalate:  settings.Escalate,
				Seed:      settings.Seed,
			})
		},
	}

	policyFlag = m.PolicyStrict

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", config.DefaultPath, "path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log diagnostics to stderr")
	cmd.PersistentFlags().IntVarP(&hideFlag, "hide", "n", 1, "number of words hidden per line")
	cmd.PersistentFlags().Uint64Var(&seedFlag, "seed", 0, "random seed for word selection (0 picks one)")
	cmd.PersistentFlags().VarP(&policyFlag, "policy", "p", "guess alignment policy: strict or prefix")
	cmd.PersistentFlags().StringVar(&colorFlag, "color", config.ColorAuto, "colored output: auto, always or never")
	cmd.Flags().BoolVarP(&escalateFlag, "escalate", "e", false, "replay the text, hiding one more word after every perfect pass")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// prepare resolves settings (config file, environment, flags) and builds the
// workflow unless one was injected.
func prepare(cmd *cobra.Command) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(configFlag, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg

	logger := newLogger(cmd.ErrOrStderr(), verboseFlag)
	slog.SetDefault(logger)

	if workflow == nil {
		ui := controller.NewUI(cmd, useColor(cfg.Color, cmd.OutOrStdout()))
		input := adapter.NewLineGuessReader(cmd.InOrStdin(), "stdin")
		workflow = domain.NewWorkflow(corpusAdapter, input, ui, domain.WithLogger(logger))
	}

	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("hide") {
		cfg.Hide = hideFlag
	}

	if flags.Changed("seed") {
		cfg.Seed = seedFlag
	}

	if flags.Changed("policy") {
		cfg.Policy = policyFlag.String()
	}

	if flags.Changed("color") {
		cfg.Color = colorFlag
	}

	if flags.Changed("escalate") {
		cfg.Escalate = escalateFlag
	}
}

func corpusPaths(args []string) []m.Path {
	if len(args) == 0 {
		return settings.CorpusPaths()
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return controller.IsTTY(out)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
