package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sealleci/SheetWizard/pkg/logger"
)

// watcher implements the Watcher interface using fsnotify.
type watcher struct {
	fsw    *fsnotify.Watcher
	logger logger.Logger
	config Config

	events chan Event
	errors chan error

	mu       sync.RWMutex
	running  bool
	closed   bool
	stopChan chan struct{}
}

// New creates a new file system watcher.
//
// Parameters:
//   - cfg: Watcher configuration
//   - log: Logger instance
//
// Returns:
//   - Configured Watcher
//   - Error if the underlying fsnotify watcher cannot be created
func New(cfg Config, log logger.Logger) (Watcher, error) {
	if cfg.QueueSize == 0 {
		cfg.QueueSize = 64
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &watcher{
		fsw:      fsw,
		logger:   log,
		config:   cfg,
		events:   make(chan Event, cfg.QueueSize),
		errors:   make(chan error, 8),
		stopChan: make(chan struct{}),
	}

	log.Info("file watcher created", "ext_filter", cfg.Ext)

	return w, nil
}

// Start implements Watcher.Start.
func (w *watcher) Start(ctx context.Context, root string) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrWatcherClosed
	}
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyStarted
	}
	w.running = true
	w.mu.Unlock()

	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidRoot, root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrInvalidRoot, root)
	}

	if err := w.addRecursive(root); err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	w.logger.Info("watcher started", "root", root)

	go w.processEvents(ctx)

	return nil
}

// Stop implements Watcher.Stop.
func (w *watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if !w.running {
		return ErrNotStarted
	}

	close(w.stopChan)
	w.running = false

	w.logger.Info("watcher stopped")
	return nil
}

// Events implements Watcher.Events.
func (w *watcher) Events() <-chan Event {
	return w.events
}

// Errors implements Watcher.Errors.
func (w *watcher) Errors() <-chan error {
	return w.errors
}

// Inject implements Watcher.Inject.
func (w *watcher) Inject(event Event) {
	w.mu.RLock()
	closed := w.closed
	w.mu.RUnlock()

	if closed {
		return
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	w.events <- event
}

// Close implements Watcher.Close.
func (w *watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	if w.running {
		close(w.stopChan)
		w.running = false
	}

	close(w.events)
	close(w.errors)

	if err := w.fsw.Close(); err != nil {
		w.logger.Error("failed to close fsnotify watcher", "error", err)
		return fmt.Errorf("failed to close watcher: %w", err)
	}

	w.logger.Info("watcher closed")
	return nil
}

// processEvents forwards fsnotify events onto the ordered queue.
func (w *watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("event forwarding stopped", "reason", "context cancelled")
			return

		case <-w.stopChan:
			w.logger.Info("event forwarding stopped", "reason", "stop signal")
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				w.logger.Warn("fsnotify events channel closed")
				return
			}

			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				w.logger.Warn("fsnotify errors channel closed")
				return
			}

			w.handleError(err)
		}
	}
}

// handleEvent translates one fsnotify event into a domain event.
func (w *watcher) handleEvent(event fsnotify.Event) {
	if w.config.Ext != "" {
		ext := strings.TrimPrefix(filepath.Ext(event.Name), ".")
		if ext != w.config.Ext {
			return
		}
	}

	var op Op
	switch {
	case event.Op&fsnotify.Create == fsnotify.Create:
		op = OpCreate
	case event.Op&fsnotify.Write == fsnotify.Write:
		op = OpModify
	case event.Op&fsnotify.Remove == fsnotify.Remove:
		op = OpRemove
	case event.Op&fsnotify.Rename == fsnotify.Rename:
		// Editors often remove their lock file by renaming it away.
		op = OpRemove
	case event.Op&fsnotify.Chmod == fsnotify.Chmod:
		op = OpAccess
	default:
		w.logger.Debug("unknown fsnotify operation",
			"op", event.Op,
			"path", event.Name)
		return
	}

	w.mu.RLock()
	closed := w.closed
	w.mu.RUnlock()

	if closed {
		return
	}

	w.events <- Event{
		Path:      event.Name,
		Op:        op,
		Timestamp: time.Now(),
	}
}

// handleError surfaces an fsnotify error for diagnostics.
func (w *watcher) handleError(err error) {
	w.logger.Error("fsnotify error", "error", err)

	select {
	case w.errors <- err:
	default:
		w.logger.Warn("error channel full, dropping error")
	}
}

// addRecursive registers the root and all existing subdirectories.
func (w *watcher) addRecursive(root string) error {
	if err := w.fsw.Add(root); err != nil {
		return fmt.Errorf("failed to add root: %w", err)
	}

	w.logger.Debug("added watch path", "path", root)

	return filepath.Walk(root, func(subPath string, info os.FileInfo, err error) error {
		if err != nil {
			w.logger.Warn("error walking path",
				"path", subPath,
				"error", err)
			return nil // Skip but continue walking.
		}

		if !info.IsDir() || subPath == root {
			return nil
		}

		if addErr := w.fsw.Add(subPath); addErr != nil {
			w.logger.Warn("failed to add subdirectory",
				"path", subPath,
				"error", addErr)
			return nil
		}

		w.logger.Debug("added watch subdirectory", "path", subPath)
		return nil
	})
}
