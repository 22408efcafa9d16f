// Package action dispatches the downstream work for a completed edit
// session: run the processing script once, then tell the user how it
// went.
//
// The dispatcher owns the at-most-once guarantee per firing. It is
// called synchronously from the single event-consuming goroutine, so
// no two dispatches ever overlap; there is no retry and no queueing
// beyond that one attempt.
package action

import (
	"context"

	"github.com/sealleci/SheetWizard/pkg/logger"
	"github.com/sealleci/SheetWizard/pkg/notify"
	"github.com/sealleci/SheetWizard/pkg/runner"
)

// Fixed user-facing outcome messages.
const (
	successMessage = "Processed successfully."
	failureMessage = "Processing failed, the file may not have changed."
)

// Outcome reports the result of one dispatched session action.
type Outcome struct {
	// Success is true iff the script ran and exited with code 0.
	Success bool

	// Err holds the script failure when Success is false.
	Err error
}

// Config contains dispatcher configuration.
type Config struct {
	// Title shown on outcome notifications.
	Title string
}

// Dispatcher runs the session action and reports the outcome.
type Dispatcher interface {
	// Dispatch runs the script and notifies the user of the result.
	//
	// A notification display failure is logged but does not alter the
	// returned outcome: the outcome reports the script, not the
	// messenger.
	Dispatch(ctx context.Context) Outcome
}

// dispatcher implements the Dispatcher interface.
type dispatcher struct {
	config   Config
	runner   runner.Runner
	notifier notify.Notifier
	logger   logger.Logger
}

// New creates an action dispatcher.
//
// Parameters:
//   - cfg: Dispatcher configuration
//   - r: Script runner
//   - n: Outcome notifier
//   - log: Logger instance
//
// Returns a configured Dispatcher.
func New(cfg Config, r runner.Runner, n notify.Notifier, log logger.Logger) Dispatcher {
	return &dispatcher{
		config:   cfg,
		runner:   r,
		notifier: n,
		logger:   log,
	}
}

// Dispatch implements Dispatcher.Dispatch.
func (d *dispatcher) Dispatch(ctx context.Context) Outcome {
	err := d.runner.Run(ctx)

	outcome := Outcome{
		Success: err == nil,
		Err:     err,
	}

	message := successMessage
	if !outcome.Success {
		message = failureMessage
		d.logger.Warn("script run failed", "error", err)
	} else {
		d.logger.Info("script run succeeded")
	}

	if notifyErr := d.notifier.Notify(d.config.Title, message); notifyErr != nil {
		// Unrecoverable for this attempt only; the next firing gets a
		// fresh one.
		d.logger.Error("failed to display outcome", "error", notifyErr)
	}

	return outcome
}
