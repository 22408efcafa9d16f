package config

import "errors"

// Common errors returned by the config package.
var (
	// ErrNoWatchDir is returned when no watched directory is specified.
	ErrNoWatchDir = errors.New("no watched directory specified")

	// ErrNoVisiblePrefix is returned when the filename prefix is empty.
	ErrNoVisiblePrefix = errors.New("no filename prefix specified")

	// ErrNoHiddenPrefix is returned when the hidden filename prefix is empty.
	ErrNoHiddenPrefix = errors.New("no hidden filename prefix specified")

	// ErrNoExtension is returned when the extension filter is empty.
	ErrNoExtension = errors.New("no file extension specified")

	// ErrNoScriptDir is returned when the script directory is empty.
	ErrNoScriptDir = errors.New("no script directory specified")

	// ErrNoScriptFilename is returned when the script filename is empty.
	ErrNoScriptFilename = errors.New("no script filename specified")

	// ErrNoEnvName is returned when the environment name is empty.
	ErrNoEnvName = errors.New("no environment name specified")

	// ErrInvalidNotifyBackend is returned when the notify backend is not recognized.
	ErrInvalidNotifyBackend = errors.New("invalid notify backend: must be desktop or log")

	// ErrInvalidLogLevel is returned when log level is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level: must be debug, info, warn, or error")

	// ErrInvalidLogFormat is returned when log format is not recognized.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrConfigNotFound is returned when config file is not found.
	ErrConfigNotFound = errors.New("config file not found")

	// ErrInvalidYAML is returned when config file has invalid YAML syntax.
	ErrInvalidYAML = errors.New("invalid YAML syntax in config file")
)
