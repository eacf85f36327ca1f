package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches definition files for changes and reports them after a
// debounce interval, so that editors writing a file several times in quick
// succession trigger a single reload.
type Watcher struct {
	watcher *fsnotify.Watcher
	logger  *slog.Logger
	config  *WatcherConfig

	mu      sync.Mutex
	running bool
}

// WatcherConfig contains configuration for the watcher.
type WatcherConfig struct {
	// Paths are the files or directories to watch.
	Paths []string

	// DebounceInterval is the quiet period required before changes are
	// reported (default: 100ms).
	DebounceInterval time.Duration

	// Extensions restricts reported events to matching files
	// (default: ".yaml", ".yml").
	Extensions []string
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() *WatcherConfig {
	return &WatcherConfig{
		DebounceInterval: 100 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml"},
	}
}

// NewWatcher creates a watcher for the given configuration. A nil logger
// falls back to slog.Default().
func NewWatcher(config *WatcherConfig, logger *slog.Logger) (*Watcher, error) {
	if config == nil {
		config = DefaultWatcherConfig()
	}
	if config.DebounceInterval <= 0 {
		config.DebounceInterval = 100 * time.Millisecond
	}
	if len(config.Extensions) == 0 {
		config.Extensions = []string{".yaml", ".yml"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		watcher: fsw,
		logger:  logger,
		config:  config,
	}, nil
}

// Watch blocks, reporting batches of changed paths to onChange until the
// context is cancelled. An error from onChange is logged, not fatal: the
// watch continues so a transiently broken file can be fixed and re-reported.
func (w *Watcher) Watch(ctx context.Context, onChange func(paths []string) error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	for _, path := range w.config.Paths {
		if err := w.addPath(path); err != nil {
			return fmt.Errorf("failed to watch %q: %w", path, err)
		}
	}

	w.logger.Info("definition watcher started",
		"paths", w.config.Paths,
		"debounce_ms", w.config.DebounceInterval.Milliseconds(),
	)

	pending := make(map[string]struct{})
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("definition watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.matches(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			pending[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.config.DebounceInterval)
				timerC = timer.C
			} else {
				timer.Reset(w.config.DebounceInterval)
			}

		case <-timerC:
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			pending = make(map[string]struct{})
			timer = nil
			timerC = nil

			w.logger.Debug("definition files changed", "paths", paths)
			if err := onChange(paths); err != nil {
				w.logger.Error("change handler failed", "error", err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)
		}
	}
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// addPath registers a file or directory with the filesystem watcher. For a
// single file the containing directory is watched, since many editors replace
// files by rename.
func (w *Watcher) addPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return w.watcher.Add(path)
	}
	return w.watcher.Add(filepath.Dir(path))
}

// matches reports whether a path carries one of the watched extensions.
func (w *Watcher) matches(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range w.config.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}
