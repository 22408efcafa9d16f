package version

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sealleci/SheetWizard/pkg/logger"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()

	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600); err != nil {
			t.Fatalf("WriteFile(%s) error = %v", name, err)
		}
	}
}

func newTestSelector(dir string) *Selector {
	return NewSelector(Config{
		Dir:           dir,
		VisiblePrefix: "A",
		HiddenPrefix:  "~A",
		Ext:           "xlsx",
		Alphabet:      HeavenlyStems(),
	}, logger.Noop())
}

func TestAlphabetRank(t *testing.T) {
	a := HeavenlyStems()

	if a.Len() != 10 {
		t.Errorf("Len() = %d, want 10", a.Len())
	}

	tests := []struct {
		symbol string
		rank   int
		ok     bool
	}{
		{"甲", 0, true},
		{"乙", 1, true},
		{"癸", 9, true},
		{"子", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		rank, ok := a.Rank(tt.symbol)
		if rank != tt.rank || ok != tt.ok {
			t.Errorf("Rank(%q) = (%d, %v), want (%d, %v)",
				tt.symbol, rank, ok, tt.rank, tt.ok)
		}
	}
}

func TestAlphabetDuplicateSymbol(t *testing.T) {
	a := NewAlphabet([]string{"x", "y", "x"})

	// First occurrence wins so selection stays deterministic.
	rank, ok := a.Rank("x")
	if !ok || rank != 0 {
		t.Errorf("Rank(x) = (%d, %v), want (0, true)", rank, ok)
	}
}

func TestExpectedHidden(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A甲.xlsx", "A丙.xlsx", "A乙.xlsx")

	sel := newTestSelector(dir)

	path, ok := sel.Expected(ModeHidden)
	if !ok {
		t.Fatal("Expected() ok = false, want true")
	}

	want := filepath.Join(dir, "~A丙.xlsx")
	if path != want {
		t.Errorf("Expected() = %s, want %s", path, want)
	}
}

func TestExpectedVisible(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A甲.xlsx", "A癸.xlsx")

	sel := newTestSelector(dir)

	path, ok := sel.Expected(ModeVisible)
	if !ok {
		t.Fatal("Expected() ok = false, want true")
	}

	want := filepath.Join(dir, "A癸.xlsx")
	if path != want {
		t.Errorf("Expected() = %s, want %s", path, want)
	}
}

func TestExpectedNoCandidates(t *testing.T) {
	tests := []struct {
		name  string
		files []string
	}{
		{"empty directory", nil},
		{"wrong extension", []string{"A甲.csv", "A乙.txt"}},
		{"unknown suffix", []string{"A子.xlsx", "Aextra.xlsx"}},
		{"wrong prefix", []string{"B甲.xlsx"}},
		{"suffix only", []string{"甲.xlsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files...)

			sel := newTestSelector(dir)

			if path, ok := sel.Expected(ModeHidden); ok {
				t.Errorf("Expected() = (%s, true), want no candidate", path)
			}
		})
	}
}

func TestExpectedUnreadableDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	sel := newTestSelector(dir)

	if path, ok := sel.Expected(ModeHidden); ok {
		t.Errorf("Expected() = (%s, true), want no candidate", path)
	}
}

func TestExpectedIgnoresNonCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A甲.xlsx", "notes.txt", "A丁.xlsx", "A癸.csv")

	sel := newTestSelector(dir)

	path, ok := sel.Expected(ModeVisible)
	if !ok {
		t.Fatal("Expected() ok = false, want true")
	}

	want := filepath.Join(dir, "A丁.xlsx")
	if path != want {
		t.Errorf("Expected() = %s, want %s", path, want)
	}
}

func TestExpectedIgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "A甲.xlsx")

	if err := os.Mkdir(filepath.Join(dir, "A乙.xlsx"), 0700); err != nil {
		t.Fatalf("Mkdir error = %v", err)
	}

	sel := newTestSelector(dir)

	path, ok := sel.Expected(ModeVisible)
	if !ok {
		t.Fatal("Expected() ok = false, want true")
	}

	want := filepath.Join(dir, "A甲.xlsx")
	if path != want {
		t.Errorf("Expected() = %s, want %s", path, want)
	}
}

func TestExpectedMultiCharPrefix(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "report甲.xlsx", "report戊.xlsx")

	sel := NewSelector(Config{
		Dir:           dir,
		VisiblePrefix: "report",
		HiddenPrefix:  "~$report",
		Ext:           "xlsx",
		Alphabet:      HeavenlyStems(),
	}, logger.Noop())

	path, ok := sel.Expected(ModeHidden)
	if !ok {
		t.Fatal("Expected() ok = false, want true")
	}

	want := filepath.Join(dir, "~$report戊.xlsx")
	if path != want {
		t.Errorf("Expected() = %s, want %s", path, want)
	}
}
