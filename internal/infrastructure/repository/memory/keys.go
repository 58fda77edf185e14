package memory

import "fmt"

func scopeKey(sport string, season int) string {
	return fmt.Sprintf("%s|%d", sport, season)
}

// weekKey folds a nil week into 0, mirroring how the season-to-date row is
// keyed in storage.
func weekKey(week *int) int {
	if week == nil {
		return 0
	}
	return *week
}
