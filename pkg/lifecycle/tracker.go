package lifecycle

import (
	"context"
	"path/filepath"

	"github.com/sealleci/SheetWizard/pkg/logger"
	"github.com/sealleci/SheetWizard/pkg/version"
	"github.com/sealleci/SheetWizard/pkg/watcher"
)

// Tracker is the open/modify/close state machine for the expected
// lock file.
//
// State invariants:
//   - modified is only meaningful while open is true
//   - tracked is non-empty exactly while open is true and names the
//     file whose create started the session
//
// The state is owned exclusively by the goroutine calling Run or
// Process; events are handled one at a time in arrival order, so no
// locking is needed.
type Tracker struct {
	classifier classifier
	dispatcher Dispatcher
	logger     logger.Logger

	open     bool
	modified bool
	tracked  string
}

// NewTracker creates a lifecycle tracker.
//
// Parameters:
//   - sel: Version selector resolving the expected file per event
//   - d: Dispatcher invoked once per completed session
//   - log: Logger instance
//
// Returns a Tracker in the idle state.
func NewTracker(sel *version.Selector, d Dispatcher, log logger.Logger) *Tracker {
	return &Tracker{
		classifier: classifier{selector: sel},
		dispatcher: d,
		logger:     log,
	}
}

// Process consumes one event and updates the session state.
//
// On a completed session the dispatcher runs synchronously before
// Process returns; no further event is classified until the action
// has finished.
//
// Returns false when the event is a terminating kind and consumption
// should stop, true otherwise.
func (t *Tracker) Process(ctx context.Context, event watcher.Event) bool {
	switch event.Op {
	case watcher.OpCreate:
		if t.classifier.matchesExpected(event, version.ModeHidden) {
			// A create mid-session restarts tracking: the editor may
			// recreate its lock file.
			t.open = true
			t.modified = false
			t.tracked = filepath.Base(event.Path)
			t.logger.Debug("lock file opened", "file", t.tracked)
		}

	case watcher.OpModify:
		if t.open && t.classifier.matchesExpected(event, version.ModeVisible) {
			t.modified = true
			t.logger.Debug("target file modified", "path", event.Path)
		}

	case watcher.OpRemove:
		if t.open && t.modified && sameFile(event, t.tracked) {
			closed := t.tracked
			t.open = false
			t.modified = false
			t.tracked = ""

			t.logger.Info("edit session completed", "file", closed)

			outcome := t.dispatcher.Dispatch(ctx)
			if !outcome.Success {
				t.logger.Warn("session action failed", "error", outcome.Err)
			}
		}

	case watcher.OpAccess:
		// Never meaningful for the session.

	default:
		// Anything outside the known kinds is the terminating signal.
		return false
	}

	return true
}

// Run consumes events from the queue until a terminating event
// arrives or the queue closes.
//
// Watcher-reported errors are logged and otherwise ignored: they do
// not change session state and do not end the loop.
func (t *Tracker) Run(ctx context.Context, events <-chan watcher.Event, errs <-chan error) error {
	for {
		select {
		case event, ok := <-events:
			if !ok {
				t.logger.Info("event queue closed")
				return nil
			}

			if !t.Process(ctx, event) {
				t.logger.Info("event consumption stopped", "op", event.Op.String())
				return nil
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			t.logger.Error("watcher reported error", "error", err)
		}
	}
}

// Tracking reports whether a session is currently open.
func (t *Tracker) Tracking() bool {
	return t.open
}
