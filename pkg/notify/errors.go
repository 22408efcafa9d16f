package notify

import "errors"

// Common errors returned by notifiers.
var (
	// ErrNoSessionBus is returned when the D-Bus session bus cannot be
	// reached.
	ErrNoSessionBus = errors.New("session bus unavailable")

	// ErrDisplayFailed is returned when a single notification could
	// not be displayed.
	ErrDisplayFailed = errors.New("failed to display notification")

	// ErrUnknownBackend is returned for an unrecognized backend name.
	ErrUnknownBackend = errors.New("unknown notify backend")
)
