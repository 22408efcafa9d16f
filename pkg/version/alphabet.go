// Package version selects the "current" spreadsheet among
// version-suffixed candidates in a watched directory.
//
// Filenames carry a version suffix drawn from a fixed, totally ordered
// alphabet of symbols (the ten Heavenly Stems in the default domain).
// The candidate whose suffix has the highest rank is the current file.
//
// Example usage:
//
//	sel := version.NewSelector(version.Config{
//	    Dir:           "/data/sheets",
//	    VisiblePrefix: "report",
//	    HiddenPrefix:  "~$report",
//	    Ext:           "xlsx",
//	    Alphabet:      version.HeavenlyStems(),
//	}, logger.Default())
//
//	path, ok := sel.Expected(version.ModeHidden)
package version

// Alphabet is an ordered, finite set of version symbols with a total
// order given by position. It is immutable after construction.
type Alphabet struct {
	symbols []string
	ranks   map[string]int
}

// NewAlphabet creates an alphabet from an ordered symbol list.
//
// The first symbol has rank 0, the last rank len(symbols)-1. If a
// symbol appears more than once, the first occurrence wins.
func NewAlphabet(symbols []string) Alphabet {
	a := Alphabet{
		symbols: make([]string, len(symbols)),
		ranks:   make(map[string]int, len(symbols)),
	}
	copy(a.symbols, symbols)

	for i, s := range symbols {
		if _, exists := a.ranks[s]; !exists {
			a.ranks[s] = i
		}
	}

	return a
}

// HeavenlyStems returns the ten-symbol ordering alphabet used for
// spreadsheet version suffixes: 甲 乙 丙 丁 戊 己 庚 辛 壬 癸.
//
// Constructed once at startup and shared read-only for the process
// lifetime.
func HeavenlyStems() Alphabet {
	return NewAlphabet([]string{
		"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸",
	})
}

// Rank returns the position of a symbol in the alphabet.
//
// Returns:
//   - Rank (0-based) and true if the symbol is known
//   - 0 and false otherwise
func (a Alphabet) Rank(symbol string) (int, bool) {
	rank, ok := a.ranks[symbol]
	return rank, ok
}

// Len returns the number of symbols in the alphabet.
func (a Alphabet) Len() int {
	return len(a.symbols)
}

// Symbols returns a copy of the ordered symbol list.
func (a Alphabet) Symbols() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)
	return out
}
