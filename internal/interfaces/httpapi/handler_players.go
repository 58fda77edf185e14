package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/unified"
	"github.com/gridironlab/rosterlink/internal/usecase"
)

type playerViewDTO struct {
	Sport        string  `json:"sport"`
	Season       int     `json:"season"`
	CanonicalKey string  `json:"canonical_key"`
	EspnID       *int64  `json:"espn_id,omitempty"`
	FpID         *string `json:"fp_id,omitempty"`

	FullName     string `json:"full_name"`
	Team         string `json:"team"`
	Position     string `json:"position"`
	Jersey       string `json:"jersey,omitempty"`
	InjuryStatus string `json:"injury_status,omitempty"`

	PercentOwned   float64 `json:"percent_owned"`
	PercentStarted float64 `json:"percent_started"`
	AvgPoints      float64 `json:"avg_points"`
	TotalPoints    float64 `json:"total_points"`
	OutlookText    string  `json:"outlook_text,omitempty"`
	OutlookWeek    *int    `json:"outlook_week,omitempty"`

	NewsHeadline string     `json:"news_headline,omitempty"`
	NewsAnalysis string     `json:"news_analysis,omitempty"`
	NewsDate     *time.Time `json:"news_date,omitempty"`

	WeeklyRank      *int   `json:"weekly_rank,omitempty"`
	RankScoringType string `json:"rank_scoring_type,omitempty"`
	RankWeek        *int   `json:"rank_week,omitempty"`

	ProjectedPoints *float64 `json:"projected_points,omitempty"`
	ProjectionWeek  *int     `json:"projection_week,omitempty"`

	Opponent        string     `json:"opponent,omitempty"`
	OpponentWeek    *int       `json:"opponent_week,omitempty"`
	OpponentIsHome  *bool      `json:"opponent_is_home,omitempty"`
	KickoffAt       *time.Time `json:"kickoff_at,omitempty"`
	OpponentRank    *int       `json:"opponent_rank,omitempty"`
	OprkScoringType string     `json:"oprk_scoring_type,omitempty"`

	MatchConfidence float64   `json:"match_confidence"`
	NeedsReview     bool      `json:"needs_review"`
	RefreshedAt     time.Time `json:"refreshed_at"`
}

func playerViewDTOFromDomain(v unified.PlayerView) playerViewDTO {
	return playerViewDTO{
		Sport:           v.Sport,
		Season:          v.Season,
		CanonicalKey:    v.CanonicalKey,
		EspnID:          v.ESPNID,
		FpID:            v.FPID,
		FullName:        v.FullName,
		Team:            v.Team,
		Position:        v.Position,
		Jersey:          v.Jersey,
		InjuryStatus:    v.InjuryStatus,
		PercentOwned:    v.PercentOwned,
		PercentStarted:  v.PercentStarted,
		AvgPoints:       v.AvgPoints,
		TotalPoints:     v.TotalPoints,
		OutlookText:     v.OutlookText,
		OutlookWeek:     v.OutlookWeek,
		NewsHeadline:    v.NewsHeadline,
		NewsAnalysis:    v.NewsAnalysis,
		NewsDate:        v.NewsDate,
		WeeklyRank:      v.WeeklyRank,
		RankScoringType: v.RankScoringType,
		RankWeek:        v.RankWeek,
		ProjectedPoints: v.ProjectedPoints,
		ProjectionWeek:  v.ProjectionWeek,
		Opponent:        v.Opponent,
		OpponentWeek:    v.OpponentWeek,
		OpponentIsHome:  v.OpponentIsHome,
		KickoffAt:       v.KickoffAt,
		OpponentRank:    v.OpponentRank,
		OprkScoringType: v.OprkScoringType,
		MatchConfidence: v.MatchConfidence,
		NeedsReview:     v.NeedsReview,
		RefreshedAt:     v.RefreshedAt,
	}
}

func (h *Handler) GetUnifiedPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetUnifiedPlayers")
	defer span.End()

	if h.unifiedService == nil {
		writeError(ctx, w, fmt.Errorf("%w: unified view service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	sport := strings.TrimSpace(r.URL.Query().Get("sport"))
	if sport == "" {
		writeError(ctx, w, fmt.Errorf("%w: sport is required", usecase.ErrInvalidInput))
		return
	}
	season, ok, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: season is required", usecase.ErrInvalidInput))
		return
	}

	filter := unified.Filter{
		Team:     r.URL.Query().Get("team"),
		Position: r.URL.Query().Get("position"),
	}

	views, err := h.unifiedService.GetUnifiedView(ctx, sport, season, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "get unified players failed", "sport", sport, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]playerViewDTO, 0, len(views))
	for _, v := range views {
		out = append(out, playerViewDTOFromDomain(v))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetDefenseRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDefenseRankings")
	defer span.End()

	if h.defenseService == nil {
		writeError(ctx, w, fmt.Errorf("%w: defense ranking service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	season, ok, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: season is required", usecase.ErrInvalidInput))
		return
	}
	var week *int
	if value, ok, err := queryInt(r, "week"); err != nil {
		writeError(ctx, w, err)
		return
	} else if ok {
		week = &value
	}

	rankings, err := h.defenseService.GetRankings(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get defense rankings failed", "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankings)
}

type crosswalkEntryDTO struct {
	Sport           string    `json:"sport"`
	Season          int       `json:"season"`
	CanonicalKey    string    `json:"canonical_key"`
	EspnID          *int64    `json:"espn_id,omitempty"`
	FpID            *string   `json:"fp_id,omitempty"`
	MatchConfidence float64   `json:"match_confidence"`
	ManualOverride  bool      `json:"manual_override"`
	NeedsReview     bool      `json:"needs_review"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (h *Handler) ListCrosswalkReview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCrosswalkReview")
	defer span.End()

	if h.crosswalkService == nil {
		writeError(ctx, w, fmt.Errorf("%w: crosswalk service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	sport := strings.TrimSpace(r.URL.Query().Get("sport"))
	if sport == "" {
		writeError(ctx, w, fmt.Errorf("%w: sport is required", usecase.ErrInvalidInput))
		return
	}
	season, ok, err := queryInt(r, "season")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: season is required", usecase.ErrInvalidInput))
		return
	}

	entries, err := h.crosswalkService.ListNeedingReview(ctx, sport, season)
	if err != nil {
		h.logger.WarnContext(ctx, "list crosswalk review failed", "sport", sport, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]crosswalkEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, crosswalkEntryDTO{
			Sport:           e.Sport,
			Season:          e.Season,
			CanonicalKey:    e.CanonicalKey,
			EspnID:          e.ESPNID,
			FpID:            e.FPID,
			MatchConfidence: e.MatchConfidence,
			ManualOverride:  e.ManualOverride,
			NeedsReview:     e.NeedsReview,
			UpdatedAt:       e.UpdatedAt,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}
