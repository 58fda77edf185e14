package crosswalk

import (
	"fmt"
	"strings"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/normalize"
)

// Entry links one roster-provider identity and one rankings-provider identity
// under a canonical key. Either side may be unpopulated while resolution is
// pending. An entry with ManualOverride set was curated by a human and must
// survive automated re-matching; only a write that itself carries
// ManualOverride may change it.
type Entry struct {
	Sport           string
	Season          int
	CanonicalKey    string
	ESPNID          *int64
	FPID            *string
	MatchConfidence float64
	ManualOverride  bool
	NeedsReview     bool
	UpdatedAt       time.Time
}

func (e Entry) Validate() error {
	if e.Sport == "" {
		return fmt.Errorf("crosswalk sport is required")
	}
	if e.Season <= 0 {
		return fmt.Errorf("crosswalk season must be greater than zero")
	}
	if e.CanonicalKey == "" {
		return fmt.Errorf("crosswalk canonical key is required")
	}
	if e.MatchConfidence < 0 || e.MatchConfidence > 1 {
		return fmt.Errorf("crosswalk match confidence must be within [0,1]: %v", e.MatchConfidence)
	}

	return nil
}

// Resolved reports whether both provider identities are populated.
func (e Entry) Resolved() bool {
	return e.ESPNID != nil && e.FPID != nil
}

// ResolveResult summarizes one resolution pass over a (sport, season) scope.
type ResolveResult struct {
	Created    int
	Updated    int
	Unresolved int
	Ambiguous  int
	Protected  int
}

// CanonicalKey derives the stable identity string for a player within one
// (sport, season): normalized name, canonical team, canonical position. The
// same real-world player resolves to the same key across repeated runs even
// if one provider's record briefly drops out. Unnormalizable teams keep the
// raw spelling so the key stays deterministic rather than colliding on "".
func CanonicalKey(name, team, position string) string {
	abbr, ok := normalize.Team(team)
	if !ok {
		abbr = strings.ToUpper(strings.TrimSpace(team))
	}

	return strings.ToLower(normalize.Name(name)) + "|" + abbr + "|" + normalize.Position(position)
}
