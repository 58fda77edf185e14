package defense

import (
	"sort"

	"github.com/gridironlab/rosterlink/internal/domain/normalize"
)

// ComputeRankings derives a 1..N ordinal rank per team from raw defensive
// stats: fewer points allowed per game ranks first (toughest matchup). The
// result is keyed by the canonical abbreviation and by every known alternate
// spelling, so lookups from either naming convention succeed. No stats means
// an empty map; a missing entry means "rank unavailable", never rank zero.
func ComputeRankings(stats []TeamStat) map[string]int {
	out := make(map[string]int)
	if len(stats) == 0 {
		return out
	}

	type teamPoints struct {
		abbr   string
		points float64
	}

	// Duplicate rows for one canonical team: last processed wins.
	byTeam := make(map[string]float64, len(stats))
	order := make([]string, 0, len(stats))
	for _, stat := range stats {
		abbr, ok := normalize.Team(stat.Team)
		if !ok {
			continue
		}

		perGame := stat.PointsAllowed
		if stat.GamesPlayed > 0 {
			perGame = stat.PointsAllowed / float64(stat.GamesPlayed)
		}

		if _, seen := byTeam[abbr]; !seen {
			order = append(order, abbr)
		}
		byTeam[abbr] = perGame
	}

	ranked := make([]teamPoints, 0, len(byTeam))
	for _, abbr := range order {
		ranked = append(ranked, teamPoints{abbr: abbr, points: byTeam[abbr]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].points != ranked[j].points {
			return ranked[i].points < ranked[j].points
		}
		// Ties break on abbreviation so repeated calls agree.
		return ranked[i].abbr < ranked[j].abbr
	})

	for idx, item := range ranked {
		rank := idx + 1
		for _, alias := range normalize.TeamAliases(item.abbr) {
			out[alias] = rank
		}
	}

	return out
}
