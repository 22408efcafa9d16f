package version

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sealleci/SheetWizard/pkg/logger"
)

// Mode controls which name the selector resolves for the current file.
type Mode int

const (
	// ModeVisible resolves the real target file as the user sees it.
	ModeVisible Mode = iota

	// ModeHidden resolves the transient lock-style file the editor
	// keeps beside the target while it is open, derived by rewriting
	// the visible prefix to the hidden prefix.
	ModeHidden
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeVisible:
		return "visible"
	case ModeHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// Config contains selector configuration.
type Config struct {
	// Dir is the watched directory holding the candidate files.
	Dir string

	// VisiblePrefix is the filename prefix of saved target files.
	VisiblePrefix string

	// HiddenPrefix is the filename prefix of the editor's lock file.
	HiddenPrefix string

	// Ext is the extension filter without the leading dot ("xlsx").
	// Compared case-sensitively.
	Ext string

	// Alphabet orders the version suffixes.
	Alphabet Alphabet
}

// Selector computes the current file among version-suffixed candidates.
//
// Selection is re-evaluated from the live directory contents on every
// call: the set of on-disk versions is a moving target between events,
// so the result is deliberately never cached.
type Selector struct {
	config Config
	logger logger.Logger
}

// NewSelector creates a selector over a watched directory.
//
// Parameters:
//   - cfg: Selector configuration
//   - log: Logger instance
//
// Returns a configured Selector.
func NewSelector(cfg Config, log logger.Logger) *Selector {
	return &Selector{
		config: cfg,
		logger: log,
	}
}

// Expected returns the path of the current file in the given mode.
//
// It scans the directory's immediate entries, keeps files whose
// extension matches exactly and whose stem is the visible prefix
// followed by a known alphabet symbol, and picks the candidate with
// the maximum symbol rank. On equal ranks the first entry in listing
// order wins; listing order is not guaranteed stable across
// filesystems.
//
// Returns:
//   - The selected path, rewritten to the hidden prefix in ModeHidden
//   - false if the directory is unreadable or holds no candidate, or
//     if the selected name does not start with the visible prefix at
//     rewrite time
func (s *Selector) Expected(mode Mode) (string, bool) {
	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		s.logger.Debug("cannot read watched directory",
			"dir", s.config.Dir,
			"error", err)
		return "", false
	}

	bestRank := -1
	bestName := ""

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.TrimPrefix(filepath.Ext(name), ".")
		if ext != s.config.Ext {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		if !strings.HasPrefix(stem, s.config.VisiblePrefix) {
			continue
		}

		rank, ok := s.config.Alphabet.Rank(stem[len(s.config.VisiblePrefix):])
		if !ok {
			// Not an error: the entry simply is not a candidate.
			continue
		}

		if rank > bestRank {
			bestRank = rank
			bestName = name
		}
	}

	if bestRank < 0 {
		return "", false
	}

	if mode == ModeVisible {
		return filepath.Join(s.config.Dir, bestName), true
	}

	// Rewrite visible prefix to hidden prefix. The filter above
	// guarantees the prefix is present; a mismatch here means the
	// directory changed underneath us, so report no expected file
	// rather than fabricating a name.
	if !strings.HasPrefix(bestName, s.config.VisiblePrefix) {
		s.logger.Warn("selected candidate lost its prefix",
			"name", bestName,
			"prefix", s.config.VisiblePrefix)
		return "", false
	}

	hidden := s.config.HiddenPrefix + bestName[len(s.config.VisiblePrefix):]
	return filepath.Join(s.config.Dir, hidden), true
}
