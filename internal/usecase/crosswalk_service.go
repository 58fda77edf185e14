package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
)

// CrosswalkService resolves the two provider catalogs into canonical
// identities and reclaims rankings-side records that never matched.
type CrosswalkService struct {
	espnRepo      espnplayer.Repository
	fpRepo        fpplayer.Repository
	crosswalkRepo crosswalk.Repository
	now           func() time.Time
}

func NewCrosswalkService(
	espnRepo espnplayer.Repository,
	fpRepo fpplayer.Repository,
	crosswalkRepo crosswalk.Repository,
) *CrosswalkService {
	return &CrosswalkService{
		espnRepo:      espnRepo,
		fpRepo:        fpRepo,
		crosswalkRepo: crosswalkRepo,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// ResolveCrosswalk runs one matching pass over a (sport, season) scope.
// Candidates pair on the canonical key: normalized name, canonical team,
// canonical position. Exactly one candidate on each side yields a resolved
// entry with confidence 1.0. A missing side yields a partial entry with
// confidence 0. More than one candidate on either side is never guessed at:
// the entry keeps only its unambiguous side and is flagged for review.
// Entries written earlier with a manual override are left untouched.
func (s *CrosswalkService) ResolveCrosswalk(ctx context.Context, sport string, season int) (crosswalk.ResolveResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CrosswalkService.ResolveCrosswalk")
	defer span.End()

	sport = strings.TrimSpace(strings.ToLower(sport))
	if sport == "" {
		return crosswalk.ResolveResult{}, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if season <= 0 {
		return crosswalk.ResolveResult{}, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	espnRecords, err := s.espnRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return crosswalk.ResolveResult{}, fmt.Errorf("list espn players: %w", err)
	}
	fpRecords, err := s.fpRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return crosswalk.ResolveResult{}, fmt.Errorf("list fp players: %w", err)
	}
	existing, err := s.crosswalkRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return crosswalk.ResolveResult{}, fmt.Errorf("list crosswalk entries: %w", err)
	}

	overridden := make(map[string]struct{})
	for _, entry := range existing {
		if entry.ManualOverride {
			overridden[entry.CanonicalKey] = struct{}{}
		}
	}

	espnByKey := make(map[string][]espnplayer.Record)
	for _, rec := range espnRecords {
		key := crosswalk.CanonicalKey(rec.FullName, rec.Team, rec.Position)
		espnByKey[key] = append(espnByKey[key], rec)
	}
	fpByKey := make(map[string][]fpplayer.Record)
	for _, rec := range fpRecords {
		key := crosswalk.CanonicalKey(rec.FullName, rec.Team, rec.Position)
		fpByKey[key] = append(fpByKey[key], rec)
	}

	keys := make(map[string]struct{}, len(espnByKey)+len(fpByKey))
	for key := range espnByKey {
		keys[key] = struct{}{}
	}
	for key := range fpByKey {
		keys[key] = struct{}{}
	}

	var result crosswalk.ResolveResult
	for key := range keys {
		if _, ok := overridden[key]; ok {
			result.Protected++
			continue
		}

		espnSide := espnByKey[key]
		fpSide := fpByKey[key]

		entry := crosswalk.Entry{
			Sport:        sport,
			Season:       season,
			CanonicalKey: key,
			UpdatedAt:    s.now(),
		}

		ambiguous := len(espnSide) > 1 || len(fpSide) > 1
		if len(espnSide) == 1 {
			id := espnSide[0].ESPNID
			entry.ESPNID = &id
		}
		if len(fpSide) == 1 {
			id := fpSide[0].FPID
			entry.FPID = &id
		}

		switch {
		case ambiguous:
			entry.NeedsReview = true
			result.Ambiguous++
		case entry.Resolved():
			entry.MatchConfidence = 1.0
		default:
			result.Unresolved++
		}

		created, err := s.crosswalkRepo.Upsert(ctx, entry)
		if err != nil {
			return result, fmt.Errorf("upsert crosswalk entry key=%s: %w", key, err)
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result, nil
}

// ApplyManualOverride writes one human-curated entry. The write carries the
// override flag, which is the only way an overridden entry may change.
func (s *CrosswalkService) ApplyManualOverride(ctx context.Context, entry crosswalk.Entry) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CrosswalkService.ApplyManualOverride")
	defer span.End()

	entry.Sport = strings.TrimSpace(strings.ToLower(entry.Sport))
	entry.CanonicalKey = strings.TrimSpace(entry.CanonicalKey)
	entry.ManualOverride = true
	entry.NeedsReview = false
	entry.UpdatedAt = s.now()
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.crosswalkRepo.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("upsert manual override key=%s: %w", entry.CanonicalKey, err)
	}

	return nil
}

func (s *CrosswalkService) ListNeedingReview(ctx context.Context, sport string, season int) ([]crosswalk.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CrosswalkService.ListNeedingReview")
	defer span.End()

	sport = strings.TrimSpace(strings.ToLower(sport))
	if sport == "" {
		return nil, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if season <= 0 {
		return nil, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	entries, err := s.crosswalkRepo.ListNeedingReview(ctx, sport, season)
	if err != nil {
		return nil, fmt.Errorf("list crosswalk entries needing review: %w", err)
	}

	return entries, nil
}

// PurgeScope drops every crosswalk entry in one (sport, season) partition,
// manual overrides included. Deliberately the only deletion path.
func (s *CrosswalkService) PurgeScope(ctx context.Context, sport string, season int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CrosswalkService.PurgeScope")
	defer span.End()

	sport = strings.TrimSpace(strings.ToLower(sport))
	if sport == "" {
		return 0, fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}
	if season <= 0 {
		return 0, fmt.Errorf("%w: season must be greater than zero", ErrInvalidInput)
	}

	deleted, err := s.crosswalkRepo.DeleteBySeason(ctx, sport, season)
	if err != nil {
		return 0, fmt.Errorf("delete crosswalk entries: %w", err)
	}

	return deleted, nil
}

// DeleteFpPlayersWithoutEspnMatch removes every rankings-provider record that
// has no roster-provider counterpart under the matching rule, across all
// stored scopes. Records referenced by a resolved crosswalk entry are kept,
// so manual overrides survive.  Run a resolve pass first; a second reclaim
// pass with unchanged sources deletes nothing.
func (s *CrosswalkService) DeleteFpPlayersWithoutEspnMatch(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CrosswalkService.DeleteFpPlayersWithoutEspnMatch")
	defer span.End()

	scopes, err := s.fpRepo.ListScopes(ctx)
	if err != nil {
		return 0, fmt.Errorf("list fp player scopes: %w", err)
	}

	totalDeleted := 0
	for _, scope := range scopes {
		deleted, err := s.reclaimScope(ctx, scope.Sport, scope.Season)
		if err != nil {
			return totalDeleted, err
		}
		totalDeleted += deleted
	}

	return totalDeleted, nil
}

func (s *CrosswalkService) reclaimScope(ctx context.Context, sport string, season int) (int, error) {
	espnRecords, err := s.espnRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return 0, fmt.Errorf("list espn players: %w", err)
	}
	fpRecords, err := s.fpRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return 0, fmt.Errorf("list fp players: %w", err)
	}
	entries, err := s.crosswalkRepo.ListBySeason(ctx, sport, season)
	if err != nil {
		return 0, fmt.Errorf("list crosswalk entries: %w", err)
	}

	espnKeys := make(map[string]struct{}, len(espnRecords))
	for _, rec := range espnRecords {
		espnKeys[crosswalk.CanonicalKey(rec.FullName, rec.Team, rec.Position)] = struct{}{}
	}
	linkedFPIDs := make(map[string]struct{})
	for _, entry := range entries {
		if entry.Resolved() {
			linkedFPIDs[*entry.FPID] = struct{}{}
		}
	}

	orphanIDs := make([]string, 0)
	for _, rec := range fpRecords {
		key := crosswalk.CanonicalKey(rec.FullName, rec.Team, rec.Position)
		if _, matched := espnKeys[key]; matched {
			continue
		}
		if _, linked := linkedFPIDs[rec.FPID]; linked {
			continue
		}
		orphanIDs = append(orphanIDs, rec.FPID)
	}
	if len(orphanIDs) == 0 {
		return 0, nil
	}

	deleted, err := s.fpRepo.DeleteByIDs(ctx, sport, season, orphanIDs)
	if err != nil {
		return 0, fmt.Errorf("delete orphaned fp players: %w", err)
	}

	return deleted, nil
}
