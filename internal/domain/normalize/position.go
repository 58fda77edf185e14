package normalize

import "strings"

// Position canonicalizes a position code. The roster provider labels team
// defenses DST while the rankings provider uses DEF; both collapse to DEF so
// the two catalogs key identically.
func Position(raw string) string {
	out := strings.ToUpper(strings.TrimSpace(raw))
	if out == "DST" {
		return "DEF"
	}

	return out
}

// SamePosition reports whether two raw position codes describe the same
// concept across providers.
func SamePosition(a, b string) bool {
	return Position(a) == Position(b)
}
