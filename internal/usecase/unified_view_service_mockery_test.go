package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/gridironlab/rosterlink/internal/domain/unified"
	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/memory"
	unifiedmock "github.com/gridironlab/rosterlink/internal/mocks/domain/unified"
)

func newUnifiedServiceWithViewRepo(viewRepo unified.Repository) *UnifiedViewService {
	return NewUnifiedViewService(
		memory.NewCrosswalkRepository(),
		memory.NewEspnPlayerRepository(),
		memory.NewFpPlayerRepository(),
		memory.NewRankingRepository(),
		memory.NewScheduleRepository(),
		memory.NewDefenseRepository(),
		viewRepo,
		1,
	)
}

func TestUnifiedViewService_GetUnifiedView_NormalizesFilterUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	viewRepo := unifiedmock.NewRepository(t)
	service := newUnifiedServiceWithViewRepo(viewRepo)

	expected := []unified.PlayerView{{
		Sport:        "football",
		Season:       2025,
		CanonicalKey: "justin jefferson|MIN|WR",
		FullName:     "Justin Jefferson",
		Team:         "MIN",
		Position:     "WR",
	}}

	viewRepo.
		On("Query", mock.Anything, "football", 2025, unified.Filter{Team: "MIN", Position: "DEF"}).
		Return(expected, nil).
		Once()

	got, err := service.GetUnifiedView(ctx, " Football ", 2025, unified.Filter{Team: "Minnesota Vikings", Position: "DST"})
	if err != nil {
		t.Fatalf("get unified view: %v", err)
	}
	if len(got) != 1 || got[0].CanonicalKey != expected[0].CanonicalKey {
		t.Fatalf("unexpected rows: %+v", got)
	}
}

func TestUnifiedViewService_GetUnifiedView_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	viewRepo := unifiedmock.NewRepository(t)
	service := newUnifiedServiceWithViewRepo(viewRepo)

	repoErr := errors.New("connection reset")
	viewRepo.
		On("Query", mock.Anything, "football", 2025, unified.Filter{}).
		Return(nil, repoErr).
		Once()

	_, err := service.GetUnifiedView(ctx, "football", 2025, unified.Filter{})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}
