package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hyperifyio/styleguard/internal/app"
)

const longHelp = `styleguard scores blog drafts for length, structure, brand voice and
readability. Every check is deterministic: the same draft always gets the
same report.

Scoring criteria (check, starts at 100):
  Word count:   -15 when outside the target range
  Structure:    -5 per structure issue
  Brand voice:  -15 when the voice score is below 50
  Readability:  -5 per readability issue
  A draft passes with 70 or more.

Word count targets:
  tech:          1000-1200 words (5-6 min read)
  personal-dev:  1200-1500 words (6-8 min read)
  default:        800-1500 words

Exit codes:
  0  the requested check passed (suggestions always exits 0)
  1  the check ran and at least one draft failed
  2  the check could not run: missing or unreadable input, invalid UTF-8,
     a glob matching nothing, a bad flag, config or rules file
Callers that only need pass or fail should treat any non-zero status as
failure.`

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout))
}

// exitError carries the process exit status out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return fmt.Sprintf("exit status %d", e.code)
}

func (e *exitError) Unwrap() error { return e.err }

// execute runs the CLI and returns the exit status.
func execute(ctx context.Context, args []string, out io.Writer) int {
	root := newRootCmd()
	root.SetOut(out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			log.Error().Err(ee.err).Msg("run failed")
		}
		return ee.code
	}
	// Usage errors from cobra: unknown command, bad flag, missing args.
	log.Error().Err(err).Msg("run failed")
	return 2
}

type rootFlags struct {
	config      string
	rules       string
	contentType string
	format      string
	workers     int
	pdf         string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "styleguard",
		Short:         "Deterministic content validation for blog drafts",
		Long:          longHelp,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "", "Path to a YAML or JSON config file")
	pf.StringVar(&f.rules, "rules", "", "Path to a YAML or JSON rules file overriding the built-in tables")
	pf.StringVar(&f.contentType, "content-type", "", "Content type override: tech, personal-dev or default")
	pf.StringVar(&f.format, "format", "", "Output format: json or text (default json)")
	pf.IntVar(&f.workers, "workers", 0, "Files analyzed in parallel (default 4)")
	pf.StringVar(&f.pdf, "pdf", "", "Also write a PDF report to this path")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(
		newScorerCmd(f, app.CommandCheck, "Full check: aggregate score out of 100"),
		newScorerCmd(f, app.CommandWordCount, "Word count with per-section breakdown"),
		newScorerCmd(f, app.CommandStructure, "Structure: title, sections, conclusion length"),
		newScorerCmd(f, app.CommandBrandVoice, "Brand voice: professional, friendly, authentic"),
		newScorerCmd(f, app.CommandReadability, "Readability: Flesch score and grade level"),
		newScorerCmd(f, app.CommandSuggestions, "Improvement suggestions only (always exits 0)"),
		newServeCmd(f),
		newWatchCmd(f),
		newVersionCmd(),
	)
	return root
}

// buildConfig layers flags over env over the config file over defaults.
// base carries the command, its inputs and any command-local flag values.
func buildConfig(cmd *cobra.Command, f *rootFlags, base app.Config) (app.Config, error) {
	cfg := base
	fl := cmd.Flags()
	if fl.Changed("rules") {
		cfg.RulesPath = f.rules
	}
	if fl.Changed("content-type") {
		cfg.ContentType = f.contentType
	}
	if fl.Changed("format") {
		cfg.Format = f.format
	}
	if fl.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fl.Changed("pdf") {
		cfg.PDFPath = f.pdf
	}
	cfg.Verbose = f.verbose

	app.ApplyEnvToConfig(&cfg)
	if f.config != "" {
		fc, err := app.LoadConfigFile(f.config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyDefaults(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	return cfg, app.ValidateConfig(cfg)
}
