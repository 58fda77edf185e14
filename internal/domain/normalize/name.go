package normalize

import "strings"

// nameSuffixes are generational suffixes stripped from the end of a player
// name before comparison. Only one trailing suffix is removed; internal
// punctuation stays untouched.
var nameSuffixes = map[string]struct{}{
	"II":     {},
	"III":    {},
	"IV":     {},
	"V":      {},
	"JR":     {},
	"JR.":    {},
	"SR":     {},
	"SR.":    {},
	"JUNIOR": {},
	"SENIOR": {},
}

// Name canonicalizes a player display name for cross-provider comparison:
// trimmed, upper-cased, one trailing generational suffix stripped.
func Name(raw string) string {
	out := strings.ToUpper(strings.TrimSpace(raw))
	if out == "" {
		return out
	}

	lastSpace := strings.LastIndexByte(out, ' ')
	if lastSpace < 0 {
		return out
	}
	if _, ok := nameSuffixes[out[lastSpace+1:]]; !ok {
		return out
	}

	return strings.TrimSpace(out[:lastSpace])
}
