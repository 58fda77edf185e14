package normalize

import "strings"

// teamAliasTable maps each canonical NFL abbreviation to every spelling the
// providers have been observed to use for that franchise, including historical
// city names. The canonical abbreviation itself is always implied.
var teamAliasTable = map[string][]string{
	"ARI": {"Arizona Cardinals", "Arizona", "Cardinals", "ARZ"},
	"ATL": {"Atlanta Falcons", "Atlanta", "Falcons"},
	"BAL": {"Baltimore Ravens", "Baltimore", "Ravens"},
	"BUF": {"Buffalo Bills", "Buffalo", "Bills"},
	"CAR": {"Carolina Panthers", "Carolina", "Panthers"},
	"CHI": {"Chicago Bears", "Chicago", "Bears"},
	"CIN": {"Cincinnati Bengals", "Cincinnati", "Bengals"},
	"CLE": {"Cleveland Browns", "Cleveland", "Browns", "CLV"},
	"DAL": {"Dallas Cowboys", "Dallas", "Cowboys"},
	"DEN": {"Denver Broncos", "Denver", "Broncos"},
	"DET": {"Detroit Lions", "Detroit", "Lions"},
	"GB":  {"Green Bay Packers", "Green Bay", "Packers", "GNB"},
	"HOU": {"Houston Texans", "Houston", "Texans", "HST"},
	"IND": {"Indianapolis Colts", "Indianapolis", "Colts"},
	"JAX": {"Jacksonville Jaguars", "Jacksonville", "Jaguars", "JAC"},
	"KC":  {"Kansas City Chiefs", "Kansas City", "Chiefs", "KAN"},
	"LAC": {"Los Angeles Chargers", "LA Chargers", "Chargers", "San Diego Chargers", "San Diego", "SD", "SDG"},
	"LAR": {"Los Angeles Rams", "LA Rams", "Rams", "St. Louis Rams", "St Louis Rams", "STL", "LA"},
	"LV":  {"Las Vegas Raiders", "Las Vegas", "Raiders", "Oakland Raiders", "Oakland", "OAK", "LVR"},
	"MIA": {"Miami Dolphins", "Miami", "Dolphins"},
	"MIN": {"Minnesota Vikings", "Minnesota", "Vikings"},
	"NE":  {"New England Patriots", "New England", "Patriots", "NWE"},
	"NO":  {"New Orleans Saints", "New Orleans", "Saints", "NOR"},
	"NYG": {"New York Giants", "NY Giants", "Giants"},
	"NYJ": {"New York Jets", "NY Jets", "Jets"},
	"PHI": {"Philadelphia Eagles", "Philadelphia", "Eagles"},
	"PIT": {"Pittsburgh Steelers", "Pittsburgh", "Steelers"},
	"SEA": {"Seattle Seahawks", "Seattle", "Seahawks"},
	"SF":  {"San Francisco 49ers", "San Francisco", "49ers", "SFO"},
	"TB":  {"Tampa Bay Buccaneers", "Tampa Bay", "Buccaneers", "TAM"},
	"TEN": {"Tennessee Titans", "Tennessee", "Titans", "Houston Oilers", "Tennessee Oilers"},
	"WAS": {"Washington Commanders", "Washington", "Commanders", "Washington Football Team", "Washington Redskins", "Redskins", "WSH"},
}

var abbrByAlias = buildAliasIndex()

func buildAliasIndex() map[string]string {
	out := make(map[string]string, len(teamAliasTable)*6)
	for abbr, aliases := range teamAliasTable {
		out[aliasKey(abbr)] = abbr
		for _, alias := range aliases {
			out[aliasKey(alias)] = abbr
		}
	}
	return out
}

func aliasKey(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Team maps a raw team name or abbreviation to its canonical abbreviation.
// Unrecognized input returns ok=false; callers skip the record rather than
// treating it as an error.
func Team(raw string) (string, bool) {
	key := aliasKey(raw)
	if key == "" {
		return "", false
	}

	abbr, ok := abbrByAlias[key]
	return abbr, ok
}

// TeamAliases returns every known spelling for a canonical abbreviation,
// the canonical form first. Unknown abbreviations return nil.
func TeamAliases(abbr string) []string {
	canonical, ok := Team(abbr)
	if !ok {
		return nil
	}

	aliases := teamAliasTable[canonical]
	out := make([]string, 0, len(aliases)+1)
	out = append(out, canonical)
	out = append(out, aliases...)

	return out
}
