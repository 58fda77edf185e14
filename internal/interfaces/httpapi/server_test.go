package httpapi

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/gridironlab/rosterlink/internal/infrastructure/repository/memory"
	"github.com/gridironlab/rosterlink/internal/usecase"
)

const testJobToken = "job-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	espnRepo := memory.NewEspnPlayerRepository()
	fpRepo := memory.NewFpPlayerRepository()
	crosswalkRepo := memory.NewCrosswalkRepository()
	defenseRepo := memory.NewDefenseRepository()
	rankingRepo := memory.NewRankingRepository()
	scheduleRepo := memory.NewScheduleRepository()
	viewRepo := memory.NewUnifiedViewRepository()

	ingestionService := usecase.NewIngestionService(espnRepo, fpRepo, defenseRepo, rankingRepo, scheduleRepo, nil)
	crosswalkService := usecase.NewCrosswalkService(espnRepo, fpRepo, crosswalkRepo)
	defenseService := usecase.NewDefenseRankingService(defenseRepo, nil)
	unifiedService := usecase.NewUnifiedViewService(crosswalkRepo, espnRepo, fpRepo, rankingRepo, scheduleRepo, defenseRepo, viewRepo, 2)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(ingestionService, crosswalkService, defenseService, unifiedService, logger)

	return NewRouter(handler, logger, []string{"*"}, testJobToken)
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Internal-Job-Token", token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}

	return envelope["data"]
}

func TestRouter_IngestResolveRefreshFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/internal/ingest/espn-players", testJobToken, map[string]any{
		"sport":  "football",
		"season": 2025,
		"players": []map[string]any{
			{
				"espn_id":   100,
				"full_name": "Justin Jefferson",
				"team":      "MIN",
				"position":  "WR",
				"jersey":    "18",
			},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest espn players: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/internal/ingest/fp-players", testJobToken, map[string]any{
		"sport":  "football",
		"season": 2025,
		"players": []map[string]any{
			{
				"fp_id":     "fp-55",
				"full_name": "Justin Jefferson",
				"team":      "MIN",
				"position":  "WR",
			},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("ingest fp players: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/internal/jobs/resolve-crosswalk", testJobToken, map[string]any{
		"sport":  "football",
		"season": 2025,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("resolve crosswalk: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	resolveData, ok := decodeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected resolve result object, got %T", decodeData(t, rec))
	}
	if got, _ := resolveData["created"].(float64); got != 1 {
		t.Fatalf("expected 1 created entry, got %v", resolveData["created"])
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/internal/jobs/refresh-unified", testJobToken, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh unified: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/players/unified?sport=football&season=2025", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get unified players: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	views, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected player view list, got %T", decodeData(t, rec))
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 unified view row, got %d", len(views))
	}
	view, _ := views[0].(map[string]any)
	if got, _ := view["full_name"].(string); got != "Justin Jefferson" {
		t.Fatalf("unexpected full_name: %q", got)
	}
	if got, _ := view["match_confidence"].(float64); got != 1.0 {
		t.Fatalf("expected match_confidence 1.0, got %v", view["match_confidence"])
	}
}

func TestRouter_InternalRoutesRequireToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/internal/jobs/refresh-unified", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/internal/ingest/espn-players", "wrong", map[string]any{
		"sport":  "football",
		"season": 2025,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestRouter_UnifiedQueryValidation(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/players/unified?season=2025", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing sport, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/players/unified?sport=football&season=abc", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-integer season, got %d", rec.Code)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
