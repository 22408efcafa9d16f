// Package watcher provides real-time monitoring of the spreadsheet
// directory.
//
// It wraps fsnotify behind a small channel-based interface and
// delivers every observed event, in arrival order, onto a single
// queue. No coalescing or debouncing happens here: the lifecycle
// tracker depends on seeing each create/remove pair as it occurred.
//
// Example usage:
//
//	w, err := watcher.New(watcher.Config{Ext: "xlsx"}, logger.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer w.Close()
//
//	if err := w.Start(ctx, "/data/sheets"); err != nil {
//	    log.Fatal(err)
//	}
//
//	for event := range w.Events() {
//	    fmt.Printf("%s: %s\n", event.Op, event.Path)
//	}
package watcher

import (
	"context"
	"time"
)

// Op describes a file operation kind.
type Op uint32

// File operation kinds.
const (
	OpCreate Op = 1 << iota // File created
	OpModify                // File content modified
	OpRemove                // File deleted or renamed away
	OpAccess                // Metadata-only touch
	OpStop                  // Injected sentinel ending consumption
)

// String returns a human-readable operation name.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpModify:
		return "MODIFY"
	case OpRemove:
		return "REMOVE"
	case OpAccess:
		return "ACCESS"
	case OpStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Event represents a file system event.
type Event struct {
	// Path is the absolute path of the affected file. Empty for
	// injected control events.
	Path string

	// Op is the operation that triggered the event.
	Op Op

	// Timestamp is when the event was observed.
	Timestamp time.Time
}

// Watcher provides file system monitoring of one root directory.
type Watcher interface {
	// Start begins watching root and all of its subdirectories.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - root: Directory to watch recursively
	//
	// Returns error if the root watch cannot be registered. Failures
	// on individual subdirectories are logged and skipped.
	Start(ctx context.Context, root string) error

	// Stop gracefully shuts down the watcher.
	Stop() error

	// Events returns the ordered event queue.
	//
	// Events are delivered one at a time in the order observed.
	// Injected events share the same queue.
	Events() <-chan Event

	// Errors returns the channel for watcher-internal errors.
	//
	// Errors are diagnostic only; the event stream continues.
	Errors() <-chan error

	// Inject places an event onto the queue as if it had been
	// observed, preserving arrival ordering with real events. Used by
	// the host to deliver the OpStop sentinel for cooperative
	// shutdown.
	Inject(event Event)

	// Close closes the watcher and releases resources.
	Close() error
}

// Config contains watcher configuration.
type Config struct {
	// Ext filters delivered events to files with this extension
	// (without the leading dot). Empty disables filtering.
	Ext string

	// QueueSize is the event channel capacity. Default: 64.
	QueueSize int
}
