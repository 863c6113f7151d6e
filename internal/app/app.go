package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/hyperifyio/styleguard/internal/aggregate"
	"github.com/hyperifyio/styleguard/internal/document"
	"github.com/hyperifyio/styleguard/internal/rules"
)

// Caller errors. Together with the document input errors they map to exit
// code 2.
var (
	ErrNoInputs       = errors.New("no input files")
	ErrUnknownCommand = errors.New("unknown command")
)

type App struct {
	cfg   Config
	rules rules.Rules
	ct    document.ContentType
}

// New resolves the rules tables and the content-type override. cfg is
// expected to have passed ValidateConfig.
func New(cfg Config) (*App, error) {
	r := rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.LoadFile(cfg.RulesPath)
		if err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
		r = loaded
		log.Debug().Str("path", cfg.RulesPath).Msg("loaded rules file")
	}
	a := &App{cfg: cfg, rules: r}
	if cfg.ContentType != "" {
		ct, ok := document.ParseContentType(cfg.ContentType)
		if !ok {
			return nil, fmt.Errorf("unknown content type %q", cfg.ContentType)
		}
		a.ct = ct
	}
	if a.cfg.Workers <= 0 {
		a.cfg.Workers = DefaultWorkers
	}
	return a, nil
}

// Rules returns the tables the app scores with.
func (a *App) Rules() rules.Rules { return a.rules }

// ContentType is the override applied to every input, or "" to classify.
func (a *App) ContentType() document.ContentType { return a.ct }

// Config returns the configuration the app was built with.
func (a *App) Config() Config { return a.cfg }

// Expand turns input arguments into file paths. Arguments containing glob
// metacharacters are expanded with ** support; a pattern that matches
// nothing is an error. Plain paths pass through untouched so a missing file
// surfaces as document.ErrNotFound. Duplicates are dropped, order is kept.
func Expand(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		p = filepath.Clean(p)
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, pat := range patterns {
		if !hasMeta(pat) {
			add(pat)
			continue
		}
		matches, err := doublestar.FilepathGlob(pat, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pat, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %q matched no files", ErrNoInputs, pat)
		}
		for _, m := range matches {
			add(m)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoInputs
	}
	return out, nil
}

func hasMeta(p string) bool {
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// AnalyzeFile loads and scores a single draft.
func (a *App) AnalyzeFile(path string) (aggregate.Analysis, error) {
	doc, err := document.Load(path, document.LoadOptions{ContentType: a.ct, Classifier: a.rules.Classifier})
	if err != nil {
		return aggregate.Analysis{}, err
	}
	an := aggregate.Analyze(doc, a.rules)
	log.Debug().
		Str("path", path).
		Str("contentType", string(doc.ContentType)).
		Int("score", an.Overall.Score).
		Bool("valid", an.Overall.Valid).
		Msg("analyzed")
	return an, nil
}

// AnalyzeAll scores paths with at most cfg.Workers files in flight. Results
// keep the order of paths. The first input error cancels the rest and is
// returned; no partial results are reported.
func (a *App) AnalyzeAll(ctx context.Context, paths []string) ([]aggregate.Analysis, error) {
	out := make([]aggregate.Analysis, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			an, err := a.AnalyzeFile(p)
			if err != nil {
				return err
			}
			out[i] = an
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Run executes a scorer command over cfg.Inputs, writes the reports to w and
// optionally renders a PDF. It reports whether every input passed the
// requested check.
func (a *App) Run(ctx context.Context, w io.Writer) (bool, error) {
	if !IsScorerCommand(a.cfg.Command) {
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, a.cfg.Command)
	}
	paths, err := Expand(a.cfg.Inputs)
	if err != nil {
		return false, err
	}
	log.Debug().Int("files", len(paths)).Int("workers", a.cfg.Workers).Str("command", a.cfg.Command).Msg("checking")

	analyses, err := a.AnalyzeAll(ctx, paths)
	if err != nil {
		return false, err
	}
	results := make([]Result, len(analyses))
	allValid := true
	for i, an := range analyses {
		results[i] = Select(a.cfg.Command, an)
		if !results[i].Valid {
			allValid = false
		}
	}

	if err := WriteResults(w, a.cfg.Format, results); err != nil {
		return false, fmt.Errorf("write output: %w", err)
	}
	if a.cfg.PDFPath != "" {
		if err := writeReportPDF(analyses, a.cfg.PDFPath); err != nil {
			return false, fmt.Errorf("write pdf: %w", err)
		}
		log.Info().Str("out", a.cfg.PDFPath).Msg("wrote pdf report")
	}
	return allValid, nil
}

// ExitCode maps a run outcome to the process exit status: 2 for input and
// configuration errors, 1 when a check failed, 0 otherwise.
func ExitCode(valid bool, err error) int {
	if err != nil {
		return 2
	}
	if !valid {
		return 1
	}
	return 0
}
