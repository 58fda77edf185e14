package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gridironlab/rosterlink/internal/config"
	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	"github.com/gridironlab/rosterlink/internal/domain/ranking"
	"github.com/gridironlab/rosterlink/internal/domain/schedule"
	"github.com/gridironlab/rosterlink/internal/domain/unified"
	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/memory"
	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/postgres"
	"github.com/gridironlab/rosterlink/internal/interfaces/httpapi"
	"github.com/gridironlab/rosterlink/internal/platform/cache"
	"github.com/gridironlab/rosterlink/internal/usecase"
)

type repositories struct {
	espn      espnplayer.Repository
	fp        fpplayer.Repository
	crosswalk crosswalk.Repository
	defense   defense.Repository
	ranking   ranking.Repository
	schedule  schedule.Repository
	unified   unified.Repository
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	var readCache *cache.Store
	if cfg.CacheEnabled {
		readCache = cache.NewStore(cfg.CacheTTL)
	}

	ingestionSvc := usecase.NewIngestionService(
		repos.espn,
		repos.fp,
		repos.defense,
		repos.ranking,
		repos.schedule,
		readCache,
	)
	crosswalkSvc := usecase.NewCrosswalkService(repos.espn, repos.fp, repos.crosswalk)
	defenseSvc := usecase.NewDefenseRankingService(repos.defense, readCache)
	unifiedSvc := usecase.NewUnifiedViewService(
		repos.crosswalk,
		repos.espn,
		repos.fp,
		repos.ranking,
		repos.schedule,
		repos.defense,
		repos.unified,
		cfg.RefreshWorkers,
	)

	handler := httpapi.NewHandler(ingestionSvc, crosswalkSvc, defenseSvc, unifiedSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Warn("DB_URL is empty, using in-memory repositories")
		return repositories{
			espn:      memory.NewEspnPlayerRepository(),
			fp:        memory.NewFpPlayerRepository(),
			crosswalk: memory.NewCrosswalkRepository(),
			defense:   memory.NewDefenseRepository(),
			ranking:   memory.NewRankingRepository(),
			schedule:  memory.NewScheduleRepository(),
			unified:   memory.NewUnifiedViewRepository(),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, err
	}

	return repositories{
		espn:      postgres.NewEspnPlayerRepository(db),
		fp:        postgres.NewFpPlayerRepository(db),
		crosswalk: postgres.NewCrosswalkRepository(db),
		defense:   postgres.NewDefenseRepository(db),
		ranking:   postgres.NewRankingRepository(db),
		schedule:  postgres.NewScheduleRepository(db),
		unified:   postgres.NewUnifiedViewRepository(db),
	}, nil
}
