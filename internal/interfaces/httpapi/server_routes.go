package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/unified", handler.GetUnifiedPlayers)
	mux.HandleFunc("GET /v1/defense/rankings", handler.GetDefenseRankings)
	mux.HandleFunc("GET /v1/crosswalk/review", handler.ListCrosswalkReview)
}

func registerInternalIngestionRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingest/espn-players", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestEspnPlayers)))
	mux.Handle("POST /v1/internal/ingest/fp-players", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestFpPlayers)))
	mux.Handle("POST /v1/internal/ingest/defense-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestDefenseStats)))
	mux.Handle("POST /v1/internal/ingest/schedule", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestSchedule)))
	mux.Handle("POST /v1/internal/ingest/weekly-rankings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestWeeklyRankings)))
	mux.Handle("POST /v1/internal/ingest/weekly-projections", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestWeeklyProjections)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/resolve-crosswalk", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunResolveCrosswalkJob)))
	mux.Handle("POST /v1/internal/jobs/reclaim-orphans", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReclaimOrphansJob)))
	mux.Handle("POST /v1/internal/jobs/refresh-unified", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRefreshUnifiedJob)))
	mux.Handle("POST /v1/internal/crosswalk/override", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ApplyCrosswalkOverride)))
}
