package runner

import "errors"

// Common errors returned by the runner.
var (
	// ErrScriptDirNotFound is returned when the script working
	// directory does not exist.
	ErrScriptDirNotFound = errors.New("script directory not found")

	// ErrScriptNotFound is returned when the entry-point file does not
	// exist inside the working directory.
	ErrScriptNotFound = errors.New("script file not found")

	// ErrScriptFailed is returned when the script exits with a
	// non-zero code or cannot be started.
	ErrScriptFailed = errors.New("script execution failed")
)
