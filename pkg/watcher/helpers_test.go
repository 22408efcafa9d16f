package watcher

import "os"

// writeFile creates a small file for event-delivery tests.
func writeFile(path string) error {
	return os.WriteFile(path, []byte("x"), 0600)
}
