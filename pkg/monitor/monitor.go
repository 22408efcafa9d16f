// Package monitor wires the watcher and the lifecycle tracker into
// one blocking watch session.
package monitor

import (
	"context"
	"fmt"

	"github.com/sealleci/SheetWizard/pkg/config"
	"github.com/sealleci/SheetWizard/pkg/lifecycle"
	"github.com/sealleci/SheetWizard/pkg/logger"
	"github.com/sealleci/SheetWizard/pkg/watcher"
)

// Monitor runs one watch session over the configured directory.
type Monitor interface {
	// Run registers the watch and consumes events until a stop
	// sentinel arrives. Blocks for the duration of the session.
	//
	// A watch registration failure is fatal unless the configuration
	// marks the watch as lenient, in which case it is logged and the
	// session idles until stopped.
	Run(ctx context.Context) error

	// Stop requests cooperative shutdown by injecting the stop
	// sentinel onto the event queue. The in-flight event, including
	// any dispatched action, completes first.
	Stop()
}

// monitor implements the Monitor interface.
type monitor struct {
	config  *config.Config
	logger  logger.Logger
	watcher watcher.Watcher
	tracker *lifecycle.Tracker
}

// New creates a monitor from its collaborators.
//
// Parameters:
//   - cfg: Application configuration
//   - w: File watcher delivering the ordered event queue
//   - t: Lifecycle tracker consuming it
//   - log: Logger instance
//
// Returns a configured Monitor.
func New(cfg *config.Config, w watcher.Watcher, t *lifecycle.Tracker, log logger.Logger) Monitor {
	return &monitor{
		config:  cfg,
		logger:  log,
		watcher: w,
		tracker: t,
	}
}

// Run implements Monitor.Run.
func (m *monitor) Run(ctx context.Context) error {
	if err := m.watcher.Start(ctx, m.config.Watch.Dir); err != nil {
		if !m.config.Watch.Lenient {
			return fmt.Errorf("watch setup failed: %w", err)
		}

		m.logger.Warn("watch setup failed, continuing without events",
			"dir", m.config.Watch.Dir,
			"error", err)
	}

	m.logger.Info("watch session started",
		"dir", m.config.Watch.Dir,
		"prefix", m.config.Watch.VisiblePrefix,
		"ext", m.config.Watch.Ext)

	err := m.tracker.Run(ctx, m.watcher.Events(), m.watcher.Errors())

	m.logger.Info("watch session ended")
	return err
}

// Stop implements Monitor.Stop.
func (m *monitor) Stop() {
	m.watcher.Inject(watcher.Event{Op: watcher.OpStop})
}
