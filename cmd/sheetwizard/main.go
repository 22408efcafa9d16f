// Package main provides the sheetwizard watcher daemon.
//
// Sheet Wizard watches a directory for edits to the current
// version-suffixed spreadsheet and runs a processing script each time
// the file is saved and closed, reporting the result as a desktop
// notification.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sealleci/SheetWizard/pkg/action"
	"github.com/sealleci/SheetWizard/pkg/config"
	"github.com/sealleci/SheetWizard/pkg/lifecycle"
	"github.com/sealleci/SheetWizard/pkg/logger"
	"github.com/sealleci/SheetWizard/pkg/monitor"
	"github.com/sealleci/SheetWizard/pkg/notify"
	"github.com/sealleci/SheetWizard/pkg/runner"
	"github.com/sealleci/SheetWizard/pkg/version"
	"github.com/sealleci/SheetWizard/pkg/watcher"
)

// buildVersion is set during build time.
var buildVersion = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run executes the main application logic.
func run() error {
	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("sheetwizard %s\n", buildVersion)
		return nil
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Output: cfg.Logging.Output,
		Format: cfg.Logging.Format,
	})

	notifier, err := notify.New(cfg.Notify.Backend, log)
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}

	w, err := watcher.New(watcher.Config{
		Ext: cfg.Watch.Ext,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			log.Error("failed to close watcher", "error", closeErr)
		}
	}()

	selector := version.NewSelector(version.Config{
		Dir:           cfg.Watch.Dir,
		VisiblePrefix: cfg.Watch.VisiblePrefix,
		HiddenPrefix:  cfg.Watch.HiddenPrefix,
		Ext:           cfg.Watch.Ext,
		Alphabet:      version.HeavenlyStems(),
	}, log)

	dispatcher := action.New(action.Config{
		Title: cfg.Notify.Title,
	}, runner.New(runner.Config{
		Dir:      cfg.Script.Dir,
		Filename: cfg.Script.Filename,
		EnvName:  cfg.Script.EnvName,
	}, log), notifier, log)

	tracker := lifecycle.NewTracker(selector, dispatcher, log)
	m := monitor.New(cfg, w, tracker, log)

	// Stop requests arrive as a sentinel on the same event queue, so
	// the in-flight event finishes before the loop ends.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("shutdown requested", "signal", sig.String())
		m.Stop()
	}()

	return m.Run(context.Background())
}
