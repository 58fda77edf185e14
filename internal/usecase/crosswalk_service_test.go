package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/memory"
)

type crosswalkFixture struct {
	svc           *CrosswalkService
	espnRepo      *memory.EspnPlayerRepository
	fpRepo        *memory.FpPlayerRepository
	crosswalkRepo *memory.CrosswalkRepository
}

func newCrosswalkFixture() crosswalkFixture {
	espnRepo := memory.NewEspnPlayerRepository()
	fpRepo := memory.NewFpPlayerRepository()
	crosswalkRepo := memory.NewCrosswalkRepository()
	return crosswalkFixture{
		svc:           NewCrosswalkService(espnRepo, fpRepo, crosswalkRepo),
		espnRepo:      espnRepo,
		fpRepo:        fpRepo,
		crosswalkRepo: crosswalkRepo,
	}
}

func seedEspn(t *testing.T, f crosswalkFixture, records ...espnplayer.Record) {
	t.Helper()
	if _, err := f.espnRepo.BulkUpsert(context.Background(), records); err != nil {
		t.Fatalf("seed espn players: %v", err)
	}
}

func seedFp(t *testing.T, f crosswalkFixture, records ...fpplayer.Record) {
	t.Helper()
	if _, err := f.fpRepo.BulkUpsert(context.Background(), records); err != nil {
		t.Fatalf("seed fp players: %v", err)
	}
}

func espnPlayer(id int64, name, team, position string) espnplayer.Record {
	return espnplayer.Record{
		Sport:     "football",
		Season:    2025,
		ESPNID:    id,
		FullName:  name,
		Team:      team,
		Position:  position,
		FetchedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func fpPlayer(id, name, team, position string) fpplayer.Record {
	return fpplayer.Record{
		Sport:     "football",
		Season:    2025,
		FPID:      id,
		FullName:  name,
		Team:      team,
		Position:  position,
		FetchedAt: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func findEntry(t *testing.T, entries []crosswalk.Entry, name, team, position string) crosswalk.Entry {
	t.Helper()
	key := crosswalk.CanonicalKey(name, team, position)
	for _, entry := range entries {
		if entry.CanonicalKey == key {
			return entry
		}
	}
	t.Fatalf("no entry for key %q", key)
	return crosswalk.Entry{}
}

func TestCrosswalkService_ResolveCrosswalk_ExactMatch(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(100, "Justin Jefferson", "MIN", "WR"))
	seedFp(t, f, fpPlayer("fp-55", "Justin Jefferson", "Minnesota Vikings", "WR"))

	result, err := f.svc.ResolveCrosswalk(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Created != 1 {
		t.Fatalf("created = %d, want 1", result.Created)
	}
	if result.Unresolved != 0 || result.Ambiguous != 0 {
		t.Fatalf("result = %+v, want fully resolved", result)
	}

	entries, err := f.crosswalkRepo.ListBySeason(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	entry := findEntry(t, entries, "Justin Jefferson", "MIN", "WR")
	if entry.ESPNID == nil || *entry.ESPNID != 100 {
		t.Fatalf("espn id = %v, want 100", entry.ESPNID)
	}
	if entry.FPID == nil || *entry.FPID != "fp-55" {
		t.Fatalf("fp id = %v, want fp-55", entry.FPID)
	}
	if entry.MatchConfidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", entry.MatchConfidence)
	}
}

func TestCrosswalkService_ResolveCrosswalk_SuffixAndDefenseEquivalence(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f,
		espnPlayer(200, "Odell Beckham Jr.", "BAL", "WR"),
		espnPlayer(201, "Minnesota Vikings", "MIN", "DST"),
	)
	seedFp(t, f,
		fpPlayer("fp-1", "Odell Beckham", "Baltimore Ravens", "WR"),
		fpPlayer("fp-2", "Minnesota Vikings", "MIN", "DEF"),
	)

	result, err := f.svc.ResolveCrosswalk(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Created != 2 || result.Unresolved != 0 {
		t.Fatalf("result = %+v, want 2 created fully resolved", result)
	}

	entries, err := f.crosswalkRepo.ListBySeason(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("list entries: %v", err)
	}
	obj := findEntry(t, entries, "Odell Beckham", "BAL", "WR")
	if !obj.Resolved() || obj.MatchConfidence != 1.0 {
		t.Fatalf("suffix-variant entry not resolved: %+v", obj)
	}
	dst := findEntry(t, entries, "Minnesota Vikings", "MIN", "DEF")
	if !dst.Resolved() {
		t.Fatalf("DST/DEF entry not resolved: %+v", dst)
	}
}

func TestCrosswalkService_ResolveCrosswalk_NoCandidateYieldsPartialEntry(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(300, "Practice Squad Guy", "GB", "RB"))

	result, err := f.svc.ResolveCrosswalk(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Created != 1 || result.Unresolved != 1 {
		t.Fatalf("result = %+v, want 1 created, 1 unresolved", result)
	}

	entries, _ := f.crosswalkRepo.ListBySeason(ctx, "football", 2025)
	entry := findEntry(t, entries, "Practice Squad Guy", "GB", "RB")
	if entry.ESPNID == nil || entry.FPID != nil {
		t.Fatalf("entry = %+v, want espn-only partial", entry)
	}
	if entry.MatchConfidence != 0 {
		t.Fatalf("confidence = %v, want 0", entry.MatchConfidence)
	}
}

func TestCrosswalkService_ResolveCrosswalk_AmbiguousIsFlaggedNotGuessed(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	// Two roster entries collapse onto one canonical key.
	seedEspn(t, f,
		espnPlayer(400, "Mike Williams", "NYJ", "WR"),
		espnPlayer(401, "Mike Williams Jr.", "NYJ", "WR"),
	)
	seedFp(t, f, fpPlayer("fp-9", "Mike Williams", "NY Jets", "WR"))

	result, err := f.svc.ResolveCrosswalk(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Ambiguous != 1 {
		t.Fatalf("ambiguous = %d, want 1", result.Ambiguous)
	}

	entries, _ := f.crosswalkRepo.ListBySeason(ctx, "football", 2025)
	entry := findEntry(t, entries, "Mike Williams", "NYJ", "WR")
	if !entry.NeedsReview {
		t.Fatal("expected entry flagged for review")
	}
	if entry.ESPNID != nil {
		t.Fatalf("espn id = %v, want nil for ambiguous side", entry.ESPNID)
	}
	if entry.FPID == nil || *entry.FPID != "fp-9" {
		t.Fatalf("fp id = %v, want unambiguous side kept", entry.FPID)
	}

	review, err := f.svc.ListNeedingReview(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("list needing review: %v", err)
	}
	if len(review) != 1 {
		t.Fatalf("review entries = %d, want 1", len(review))
	}
}

func TestCrosswalkService_ResolveCrosswalk_ManualOverrideIsProtected(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(500, "Kenneth Walker III", "SEA", "RB"))
	seedFp(t, f, fpPlayer("fp-77", "Kenneth Walker", "Seattle Seahawks", "RB"))

	key := crosswalk.CanonicalKey("Kenneth Walker", "SEA", "RB")
	curatedID := "fp-correct"
	override := crosswalk.Entry{
		Sport:           "football",
		Season:          2025,
		CanonicalKey:    key,
		FPID:            &curatedID,
		MatchConfidence: 1.0,
	}
	if err := f.svc.ApplyManualOverride(ctx, override); err != nil {
		t.Fatalf("apply override: %v", err)
	}

	result, err := f.svc.ResolveCrosswalk(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if result.Protected != 1 {
		t.Fatalf("protected = %d, want 1", result.Protected)
	}

	entries, _ := f.crosswalkRepo.ListBySeason(ctx, "football", 2025)
	entry := findEntry(t, entries, "Kenneth Walker", "SEA", "RB")
	if !entry.ManualOverride {
		t.Fatal("override flag lost")
	}
	if entry.FPID == nil || *entry.FPID != "fp-correct" {
		t.Fatalf("fp id = %v, want curated value preserved", entry.FPID)
	}
}

func TestCrosswalkService_ResolveCrosswalk_SecondRunCreatesNothing(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(100, "Justin Jefferson", "MIN", "WR"))
	seedFp(t, f, fpPlayer("fp-55", "Justin Jefferson", "MIN", "WR"))

	if _, err := f.svc.ResolveCrosswalk(ctx, "football", 2025); err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}
	second, err := f.svc.ResolveCrosswalk(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}
	if second.Created != 0 || second.Updated != 1 {
		t.Fatalf("second resolve = %+v, want 0 created, 1 updated", second)
	}
}

func TestCrosswalkService_DeleteFpPlayersWithoutEspnMatch(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(100, "Justin Jefferson", "MIN", "WR"))
	seedFp(t, f,
		fpPlayer("fp-55", "Justin Jefferson", "MIN", "WR"),
		fpPlayer("fp-99", "Retired Player", "FA", "WR"),
	)

	if _, err := f.svc.ResolveCrosswalk(ctx, "football", 2025); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	deleted, err := f.svc.DeleteFpPlayersWithoutEspnMatch(ctx)
	if err != nil {
		t.Fatalf("reclaim failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}

	remaining, _ := f.fpRepo.ListBySeason(ctx, "football", 2025)
	if len(remaining) != 1 || remaining[0].FPID != "fp-55" {
		t.Fatalf("remaining = %+v, want only fp-55", remaining)
	}

	again, err := f.svc.DeleteFpPlayersWithoutEspnMatch(ctx)
	if err != nil {
		t.Fatalf("second reclaim failed: %v", err)
	}
	if again != 0 {
		t.Fatalf("second reclaim deleted = %d, want 0", again)
	}
}

func TestCrosswalkService_DeleteFpPlayersWithoutEspnMatch_KeepsOverrideLinkedRecords(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(600, "Marquez Valdes-Scantling", "BUF", "WR"))
	// Different spelling, so the key rule alone would treat this as an orphan.
	seedFp(t, f, fpPlayer("fp-mvs", "Marquez Valdes Scantling", "BUF", "WR"))

	espnID := int64(600)
	fpID := "fp-mvs"
	override := crosswalk.Entry{
		Sport:           "football",
		Season:          2025,
		CanonicalKey:    crosswalk.CanonicalKey("Marquez Valdes-Scantling", "BUF", "WR"),
		ESPNID:          &espnID,
		FPID:            &fpID,
		MatchConfidence: 1.0,
	}
	if err := f.svc.ApplyManualOverride(ctx, override); err != nil {
		t.Fatalf("apply override: %v", err)
	}

	deleted, err := f.svc.DeleteFpPlayersWithoutEspnMatch(ctx)
	if err != nil {
		t.Fatalf("reclaim failed: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("deleted = %d, want 0", deleted)
	}
}

func TestCrosswalkService_PurgeScope(t *testing.T) {
	t.Parallel()

	f := newCrosswalkFixture()
	ctx := context.Background()
	seedEspn(t, f, espnPlayer(100, "Justin Jefferson", "MIN", "WR"))
	if _, err := f.svc.ResolveCrosswalk(ctx, "football", 2025); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	deleted, err := f.svc.PurgeScope(ctx, "football", 2025)
	if err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("deleted = %d, want 1", deleted)
	}
	entries, _ := f.crosswalkRepo.ListBySeason(ctx, "football", 2025)
	if len(entries) != 0 {
		t.Fatalf("entries after purge = %d, want 0", len(entries))
	}
}
