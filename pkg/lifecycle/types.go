// Package lifecycle turns the raw event stream into open/modify/close
// edit sessions for the currently expected spreadsheet.
//
// The editor being observed creates a transient hidden lock file when
// the target spreadsheet is opened and deletes it on close. A session
// counts as completed only when the lock file is removed after an
// observed modification of the visible file; opening and closing
// without changes never fires the downstream action.
//
// All state lives in a single Tracker consumed by one goroutine;
// events are processed strictly in arrival order and the downstream
// action runs synchronously before the next event is considered.
package lifecycle

import (
	"context"

	"github.com/sealleci/SheetWizard/pkg/action"
)

// Dispatcher handles a completed edit session.
//
// Dispatch is invoked at most once per firing and never concurrently:
// the tracker delivers sessions serially from its single consumer
// loop.
type Dispatcher interface {
	Dispatch(ctx context.Context) action.Outcome
}
