package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/styleguard/internal/watch"
)

const draftGlob = "**/*.{md,markdown,html,htm}"

// Watch checks every input once and then re-checks drafts as they change,
// until ctx is done. Inputs may be directories, files or globs. Errors while
// re-checking a single draft are logged and do not stop the loop.
func (a *App) Watch(ctx context.Context, out io.Writer) error {
	wcfg := watch.DefaultConfig()
	wcfg.Debounce = a.cfg.Debounce
	roots, files, err := watchTargets(a.cfg.Inputs, wcfg)
	if err != nil {
		return err
	}

	w, err := watch.New(wcfg)
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(roots...); err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	if len(files) > 0 {
		analyses, err := a.AnalyzeAll(ctx, files)
		if err != nil {
			return err
		}
		for _, an := range analyses {
			if err := WriteResults(out, a.cfg.Format, []Result{Select(CommandCheck, an)}); err != nil {
				return err
			}
		}
	}
	log.Info().Strs("paths", roots).Dur("debounce", wcfg.Debounce).Msg("watching for changes")

	go w.Run(ctx)
	for ev := range w.Events() {
		if ev.Op == watch.OpDelete {
			log.Info().Str("path", ev.Path).Msg("draft removed")
			continue
		}
		an, err := a.AnalyzeFile(ev.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", ev.Path).Msg("check failed")
			continue
		}
		if err := WriteResults(out, a.cfg.Format, []Result{Select(CommandCheck, an)}); err != nil {
			return err
		}
	}
	return nil
}

// watchTargets splits inputs into paths to hand to the watcher and the
// drafts to check up front. Drafts inside directories the watcher skips are
// not checked up front either.
func watchTargets(inputs []string, wcfg watch.Config) (roots, files []string, err error) {
	var patterns []string
	for _, in := range inputs {
		info, statErr := os.Stat(in)
		if statErr == nil && info.IsDir() {
			roots = append(roots, in)
			matches, gerr := doublestar.Glob(os.DirFS(in), draftGlob, doublestar.WithFilesOnly())
			if gerr != nil {
				return nil, nil, gerr
			}
			for _, m := range matches {
				if inSkippedDir(m, wcfg) {
					continue
				}
				files = append(files, filepath.Join(in, filepath.FromSlash(m)))
			}
			continue
		}
		patterns = append(patterns, in)
	}
	if len(patterns) > 0 {
		expanded, err := Expand(patterns)
		if err != nil {
			return nil, nil, err
		}
		roots = append(roots, expanded...)
		files = append(files, expanded...)
	}
	if len(roots) == 0 {
		return nil, nil, ErrNoInputs
	}
	return roots, files, nil
}

// inSkippedDir reports whether any directory of the slash-separated relative
// path rel is one the watcher skips.
func inSkippedDir(rel string, wcfg watch.Config) bool {
	dirs := strings.Split(path.Dir(rel), "/")
	for _, d := range dirs {
		if d != "." && wcfg.SkipDir(d) {
			return true
		}
	}
	return false
}
