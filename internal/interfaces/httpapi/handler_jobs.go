package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gridironlab/rosterlink/internal/domain/crosswalk"
	"github.com/gridironlab/rosterlink/internal/usecase"
)

type resolveCrosswalkRequest struct {
	Sport  string `json:"sport" validate:"required"`
	Season int    `json:"season" validate:"required,gt=0"`
}

type resolveResultDTO struct {
	Created    int `json:"created"`
	Updated    int `json:"updated"`
	Unresolved int `json:"unresolved"`
	Ambiguous  int `json:"ambiguous"`
	Protected  int `json:"protected"`
}

func (h *Handler) RunResolveCrosswalkJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunResolveCrosswalkJob")
	defer span.End()

	if h.crosswalkService == nil {
		writeError(ctx, w, fmt.Errorf("%w: crosswalk service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req resolveCrosswalkRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.crosswalkService.ResolveCrosswalk(ctx, req.Sport, req.Season)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve crosswalk job failed", "sport", req.Sport, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, resolveResultDTO{
		Created:    result.Created,
		Updated:    result.Updated,
		Unresolved: result.Unresolved,
		Ambiguous:  result.Ambiguous,
		Protected:  result.Protected,
	})
}

type reclaimOrphansResponse struct {
	Deleted int `json:"deleted"`
}

func (h *Handler) RunReclaimOrphansJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunReclaimOrphansJob")
	defer span.End()

	if h.crosswalkService == nil {
		writeError(ctx, w, fmt.Errorf("%w: crosswalk service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	deleted, err := h.crosswalkService.DeleteFpPlayersWithoutEspnMatch(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "reclaim orphans job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reclaimOrphansResponse{Deleted: deleted})
}

func (h *Handler) RunRefreshUnifiedJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshUnifiedJob")
	defer span.End()

	if h.unifiedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: unified view service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.unifiedService.RefreshUnifiedView(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh unified view job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

type manualOverrideRequest struct {
	Sport        string  `json:"sport" validate:"required"`
	Season       int     `json:"season" validate:"required,gt=0"`
	CanonicalKey string  `json:"canonical_key" validate:"required"`
	EspnID       *int64  `json:"espn_id" validate:"omitempty,gt=0"`
	FpID         *string `json:"fp_id"`
}

func (h *Handler) ApplyCrosswalkOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApplyCrosswalkOverride")
	defer span.End()

	if h.crosswalkService == nil {
		writeError(ctx, w, fmt.Errorf("%w: crosswalk service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	var req manualOverrideRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	entry := crosswalk.Entry{
		Sport:        req.Sport,
		Season:       req.Season,
		CanonicalKey: req.CanonicalKey,
		ESPNID:       req.EspnID,
		FPID:         req.FpID,
	}
	if err := h.crosswalkService.ApplyManualOverride(ctx, entry); err != nil {
		h.logger.WarnContext(ctx, "apply crosswalk override failed", "canonical_key", req.CanonicalKey, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "applied"})
}
