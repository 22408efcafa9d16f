// Package runner executes the external processing script once per
// completed edit session.
//
// The script is a Python entry point living in a configured working
// directory and run inside a named conda environment. Execution is
// synchronous and unbounded: the caller blocks until the script exits,
// which is the intended backpressure for the event loop.
package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/sealleci/SheetWizard/pkg/logger"
)

// Config contains runner configuration.
type Config struct {
	// Dir is the working directory containing the script.
	Dir string

	// Filename is the entry-point file inside Dir.
	Filename string

	// EnvName is the conda environment to run in.
	EnvName string
}

// Runner executes the external processing script.
type Runner interface {
	// Run executes the script synchronously.
	//
	// The working directory and entry point are checked before
	// invocation so a missing script yields a specific diagnostic
	// instead of a generic exec failure.
	//
	// Returns nil only if the process ran and exited with code 0.
	Run(ctx context.Context) error
}

// scriptRunner implements the Runner interface using os/exec.
type scriptRunner struct {
	config Config
	logger logger.Logger
}

// New creates a script runner.
func New(cfg Config, log logger.Logger) Runner {
	return &scriptRunner{
		config: cfg,
		logger: log,
	}
}

// Run implements Runner.Run.
func (r *scriptRunner) Run(ctx context.Context) error {
	if !exists(r.config.Dir) {
		return fmt.Errorf("%w: %s", ErrScriptDirNotFound, r.config.Dir)
	}

	entry := filepath.Join(r.config.Dir, r.config.Filename)
	if !exists(entry) {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, entry)
	}

	r.logger.Debug("running script",
		"script", r.config.Filename,
		"env", r.config.EnvName)

	cmd := exec.CommandContext(ctx, "conda", "run",
		"-n", r.config.EnvName,
		"python", r.config.Filename) // nolint:gosec
	cmd.Dir = r.config.Dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		code := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		}

		r.logger.Debug("script failed",
			"exit_code", code,
			"output", string(output))

		return fmt.Errorf("%w: exit code %d", ErrScriptFailed, code)
	}

	r.logger.Debug("script executed successfully")
	return nil
}

// exists reports whether a path is present on disk.
func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
