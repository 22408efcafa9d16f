package notify

import (
	"errors"
	"testing"

	"github.com/sealleci/SheetWizard/pkg/logger"
)

func TestNewLogBackend(t *testing.T) {
	n, err := New("log", logger.Noop())
	if err != nil {
		t.Fatalf("New(log) error = %v", err)
	}

	if notifyErr := n.Notify("Sheet Wizard", "Processed successfully."); notifyErr != nil {
		t.Errorf("Notify() error = %v", notifyErr)
	}
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New("toast", logger.Noop())
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("New(toast) error = %v, want ErrUnknownBackend", err)
	}
}
