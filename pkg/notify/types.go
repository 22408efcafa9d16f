// Package notify reports session outcomes to the user.
//
// The primary backend shows a desktop notification over the
// org.freedesktop.Notifications D-Bus interface; a log-backed
// notifier is available for headless runs. Notifications are
// fire-and-forget: a display failure is reported to the caller for
// that single attempt but never retried.
package notify

// Notifier displays a short user-facing message.
type Notifier interface {
	// Notify displays a message under a title.
	//
	// Returns error if the message could not be displayed. The error
	// concerns this attempt only; the notifier stays usable.
	Notify(title, message string) error
}
