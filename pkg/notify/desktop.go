package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/sealleci/SheetWizard/pkg/logger"
)

const (
	notifyService   = "org.freedesktop.Notifications"
	notifyPath      = "/org/freedesktop/Notifications"
	notifyMethod    = "org.freedesktop.Notifications.Notify"
	notifyTimeoutMs = 5000
)

// desktopNotifier implements the Notifier interface over D-Bus.
type desktopNotifier struct {
	conn   *dbus.Conn
	logger logger.Logger
}

// NewDesktop creates a desktop notifier on the session bus.
//
// Returns:
//   - Configured Notifier
//   - ErrNoSessionBus if the session bus is unreachable; with the
//     display subsystem unavailable the caller should treat this as a
//     startup failure
func NewDesktop(log logger.Logger) (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoSessionBus, err)
	}

	log.Info("desktop notifier connected")

	return &desktopNotifier{
		conn:   conn,
		logger: log,
	}, nil
}

// Notify implements Notifier.Notify.
func (n *desktopNotifier) Notify(title, message string) error {
	obj := n.conn.Object(notifyService, dbus.ObjectPath(notifyPath))

	// Args: app name, replaced id, icon, summary, body, actions,
	// hints, expiry timeout.
	call := obj.Call(notifyMethod, 0, "sheetwizard", uint32(0), "",
		title, message, []string{}, map[string]dbus.Variant{},
		int32(notifyTimeoutMs))
	if call.Err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayFailed, call.Err)
	}

	n.logger.Debug("notification shown", "title", title, "message", message)
	return nil
}
