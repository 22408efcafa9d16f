package notify

import "github.com/sealleci/SheetWizard/pkg/logger"

// logNotifier implements the Notifier interface by writing to the log.
// Used on headless systems where no notification daemon exists.
type logNotifier struct {
	logger logger.Logger
}

// NewLog creates a notifier that reports through the logger.
func NewLog(log logger.Logger) Notifier {
	return &logNotifier{logger: log}
}

// Notify implements Notifier.Notify.
func (n *logNotifier) Notify(title, message string) error {
	n.logger.Info("notification", "title", title, "message", message)
	return nil
}

// New creates a notifier for the configured backend.
//
// Backends:
//   - "desktop": D-Bus desktop notifications
//   - "log": log-backed notifier
//
// Returns ErrUnknownBackend for anything else.
func New(backend string, log logger.Logger) (Notifier, error) {
	switch backend {
	case "desktop":
		return NewDesktop(log)
	case "log":
		return NewLog(log), nil
	default:
		return nil, ErrUnknownBackend
	}
}
