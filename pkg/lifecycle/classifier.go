package lifecycle

import (
	"path/filepath"

	"github.com/sealleci/SheetWizard/pkg/version"
	"github.com/sealleci/SheetWizard/pkg/watcher"
)

// classifier decides whether an event concerns the currently expected
// file. The expected file is re-resolved from the live directory on
// every call: versions can be added or removed between the open and
// close of a session, and the expected identity must follow the
// current maximum-rank candidate, never a snapshot.
type classifier struct {
	selector *version.Selector
}

// matchesExpected reports whether the event's path equals the expected
// file in the given mode, by full path equality. An event without a
// path, or a directory without an expected file, never matches.
func (c *classifier) matchesExpected(event watcher.Event, mode version.Mode) bool {
	expected, ok := c.selector.Expected(mode)
	if !ok || event.Path == "" {
		return false
	}

	return event.Path == expected
}

// sameFile reports whether the event's filename equals tracked,
// case-sensitively. Only the final path segment is compared; parent
// directories are irrelevant.
func sameFile(event watcher.Event, tracked string) bool {
	if event.Path == "" || tracked == "" {
		return false
	}

	return filepath.Base(event.Path) == tracked
}
