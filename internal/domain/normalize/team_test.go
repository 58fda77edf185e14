package normalize

import "testing"

func TestTeam_KnownVariants(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want string
	}{
		{"LA Rams", "LAR"},
		{"Los Angeles Rams", "LAR"},
		{"St. Louis Rams", "LAR"},
		{"Washington", "WAS"},
		{"Washington Football Team", "WAS"},
		{"WSH", "WAS"},
		{"Oakland Raiders", "LV"},
		{"San Diego Chargers", "LAC"},
		{"JAC", "JAX"},
		{"min", "MIN"},
		{"Green Bay", "GB"},
	}

	for _, tc := range cases {
		got, ok := Team(tc.raw)
		if !ok {
			t.Fatalf("Team(%q): expected a match", tc.raw)
		}
		if got != tc.want {
			t.Fatalf("Team(%q): got=%q want=%q", tc.raw, got, tc.want)
		}
	}
}

func TestTeam_UnknownReturnsNoMatch(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "  ", "London Monarchs", "XYZ"} {
		if abbr, ok := Team(raw); ok {
			t.Fatalf("Team(%q): expected no match, got %q", raw, abbr)
		}
	}
}

func TestTeamAliases_IncludeCanonicalAndVariants(t *testing.T) {
	t.Parallel()

	aliases := TeamAliases("LV")
	if len(aliases) == 0 {
		t.Fatalf("expected aliases for LV")
	}
	if aliases[0] != "LV" {
		t.Fatalf("canonical abbreviation must come first: got=%q", aliases[0])
	}

	found := false
	for _, alias := range aliases {
		if alias == "Oakland Raiders" {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("historical franchise name missing from aliases: %v", aliases)
	}

	// Lookup through an alias resolves to the same canonical set.
	viaAlias := TeamAliases("OAK")
	if len(viaAlias) != len(aliases) {
		t.Fatalf("alias lookup must resolve to the canonical team: got=%d want=%d", len(viaAlias), len(aliases))
	}

	if TeamAliases("nope") != nil {
		t.Fatalf("unknown abbreviation must return nil aliases")
	}
}

func TestTeam_AllCanonicalAbbreviationsResolveToThemselves(t *testing.T) {
	t.Parallel()

	for abbr := range teamAliasTable {
		got, ok := Team(abbr)
		if !ok || got != abbr {
			t.Fatalf("Team(%q): got=%q ok=%t", abbr, got, ok)
		}
	}
}
