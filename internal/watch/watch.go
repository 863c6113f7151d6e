// Package watch reports draft files that changed on disk. Changes are
// collected and flushed once per debounce interval, and a file whose content
// hash did not change is not reported again.
package watch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const eventBuffer = 256

// Config configures a Watcher.
type Config struct {
	Debounce    time.Duration
	Extensions  []string
	ExcludeDirs []string
}

// DefaultConfig watches markdown and HTML drafts.
func DefaultConfig() Config {
	return Config{
		Debounce:    500 * time.Millisecond,
		Extensions:  []string{".md", ".markdown", ".html", ".htm"},
		ExcludeDirs: []string{".git", "node_modules", "vendor"},
	}
}

// SkipDir reports whether a directory with this base name is left out of
// watching and scanning. Dot-directories are always skipped.
func (c Config) SkipDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, d := range c.ExcludeDirs {
		if d == name {
			return true
		}
	}
	return false
}

// Op is the kind of change reported for a file.
type Op string

const (
	OpCreate Op = "create"
	OpModify Op = "modify"
	OpDelete Op = "delete"
)

// Event is one debounced change.
type Event struct {
	Path string
	Op   Op
}

// Watcher watches files and directories for draft changes.
type Watcher struct {
	cfg        Config
	fsw        *fsnotify.Watcher
	extensions map[string]bool

	// Explicitly added files; when non-empty for a directory only these
	// files in it are reported.
	filesMu sync.RWMutex
	files   map[string]bool
	dirs    map[string]bool

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	hashMu sync.Mutex
	hashes map[string]string

	events  chan Event
	dropped atomic.Int64
}

// New creates a Watcher. Call Add, then Run.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultConfig().Debounce
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}
	w := &Watcher{
		cfg:        cfg,
		fsw:        fsw,
		extensions: make(map[string]bool),
		files:      make(map[string]bool),
		dirs:       make(map[string]bool),
		pending:    make(map[string]fsnotify.Op),
		hashes:     make(map[string]string),
		events:     make(chan Event, eventBuffer),
	}
	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		w.extensions[strings.ToLower(ext)] = true
	}
	return w, nil
}

// Events returns the channel of debounced changes. It is closed when Run
// returns.
func (w *Watcher) Events() <-chan Event { return w.events }

// Dropped is the number of events lost because the channel was full.
func (w *Watcher) Dropped() int64 { return w.dropped.Load() }

// Add starts watching paths. Directories are watched recursively; a file is
// watched through its parent directory and only that file is reported.
func (w *Watcher) Add(paths ...string) error {
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return err
		}
		if info.IsDir() {
			if err := w.addRecursive(abs); err != nil {
				return err
			}
			continue
		}
		w.filesMu.Lock()
		w.files[abs] = true
		w.filesMu.Unlock()
		if err := w.fsw.Add(filepath.Dir(abs)); err != nil {
			return err
		}
		w.rememberHash(abs)
	}
	return nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			if w.extensions[strings.ToLower(filepath.Ext(path))] {
				w.rememberHash(path)
			}
			return nil
		}
		base := filepath.Base(path)
		if path != root && w.cfg.SkipDir(base) {
			return filepath.SkipDir
		}
		if err := w.fsw.Add(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to watch directory")
			return nil
		}
		w.filesMu.Lock()
		w.dirs[path] = true
		w.filesMu.Unlock()
		log.Debug().Str("path", path).Msg("watching directory")
		return nil
	})
}

// Run processes file system events until ctx is done.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.events)
	ticker := time.NewTicker(w.cfg.Debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Error().Err(err).Msg("watcher error")
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

// Close stops the underlying watcher.
func (w *Watcher) Close() error { return w.fsw.Close() }

func (w *Watcher) handle(ev fsnotify.Event) {
	path := ev.Name
	if !w.extensions[strings.ToLower(filepath.Ext(path))] {
		if ev.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				w.handleNewDir(path)
			}
		}
		return
	}
	if !w.wanted(path) {
		return
	}
	w.pendingMu.Lock()
	w.pending[path] |= ev.Op
	w.pendingMu.Unlock()
	log.Debug().Str("path", path).Str("op", ev.Op.String()).Msg("change detected")
}

// wanted reports whether path is inside a recursively watched directory or
// is one of the explicitly added files.
func (w *Watcher) wanted(path string) bool {
	w.filesMu.RLock()
	defer w.filesMu.RUnlock()
	if w.files[path] {
		return true
	}
	return w.dirs[filepath.Dir(path)]
}

func (w *Watcher) handleNewDir(path string) {
	base := filepath.Base(path)
	if w.cfg.SkipDir(base) {
		return
	}
	w.filesMu.RLock()
	parentWatched := w.dirs[filepath.Dir(path)]
	w.filesMu.RUnlock()
	if !parentWatched {
		return
	}
	if err := w.addRecursive(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to watch new directory")
	}
}

func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	batch := w.pending
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	for path, op := range batch {
		if ctx.Err() != nil {
			return
		}
		if _, err := os.Stat(path); err != nil {
			if op.Has(fsnotify.Remove) || op.Has(fsnotify.Rename) || os.IsNotExist(err) {
				w.hashMu.Lock()
				delete(w.hashes, path)
				w.hashMu.Unlock()
				w.send(Event{Path: path, Op: OpDelete})
			}
			continue
		}
		sum, err := fileHash(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to read changed file")
			continue
		}
		w.hashMu.Lock()
		old, had := w.hashes[path]
		w.hashes[path] = sum
		w.hashMu.Unlock()
		if had && old == sum {
			continue
		}
		if had {
			w.send(Event{Path: path, Op: OpModify})
		} else {
			w.send(Event{Path: path, Op: OpCreate})
		}
	}
}

func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	default:
		n := w.dropped.Add(1)
		log.Warn().Str("path", ev.Path).Int64("dropped", n).Msg("event channel full, dropping event")
	}
}

func (w *Watcher) rememberHash(path string) {
	if sum, err := fileHash(path); err == nil {
		w.hashMu.Lock()
		w.hashes[path] = sum
		w.hashMu.Unlock()
	}
}

func fileHash(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
