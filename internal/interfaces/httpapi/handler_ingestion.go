package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gridironlab/rosterlink/internal/domain/defense"
	"github.com/gridironlab/rosterlink/internal/domain/espnplayer"
	"github.com/gridironlab/rosterlink/internal/domain/fpplayer"
	"github.com/gridironlab/rosterlink/internal/domain/ranking"
	"github.com/gridironlab/rosterlink/internal/domain/schedule"
	"github.com/gridironlab/rosterlink/internal/usecase"
)

type espnPlayerIngestRequest struct {
	Sport   string              `json:"sport" validate:"required"`
	Season  int                 `json:"season" validate:"required,gt=0"`
	Players []espnPlayerPayload `json:"players" validate:"required,min=1,dive"`
}

type espnPlayerPayload struct {
	EspnID         int64      `json:"espn_id" validate:"required,gt=0"`
	FullName       string     `json:"full_name" validate:"required"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Team           string     `json:"team"`
	Position       string     `json:"position"`
	Jersey         string     `json:"jersey"`
	InjuryStatus   string     `json:"injury_status"`
	PercentOwned   float64    `json:"percent_owned"`
	PercentStarted float64    `json:"percent_started"`
	AvgPoints      float64    `json:"avg_points"`
	TotalPoints    float64    `json:"total_points"`
	OutlookText    string     `json:"outlook_text"`
	OutlookWeek    *int       `json:"outlook_week"`
	NewsDate       *time.Time `json:"news_date"`
	FetchedAt      *time.Time `json:"fetched_at"`
}

type upsertResultDTO struct {
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
}

func (h *Handler) IngestEspnPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestEspnPlayers")
	defer span.End()

	var req espnPlayerIngestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	now := time.Now().UTC()
	records := make([]espnplayer.Record, 0, len(req.Players))
	for _, p := range req.Players {
		fetchedAt := now
		if p.FetchedAt != nil {
			fetchedAt = p.FetchedAt.UTC()
		}
		records = append(records, espnplayer.Record{
			Sport:          req.Sport,
			Season:         req.Season,
			ESPNID:         p.EspnID,
			FullName:       p.FullName,
			FirstName:      p.FirstName,
			LastName:       p.LastName,
			Team:           p.Team,
			Position:       p.Position,
			Jersey:         p.Jersey,
			InjuryStatus:   p.InjuryStatus,
			PercentOwned:   p.PercentOwned,
			PercentStarted: p.PercentStarted,
			AvgPoints:      p.AvgPoints,
			TotalPoints:    p.TotalPoints,
			OutlookText:    p.OutlookText,
			OutlookWeek:    p.OutlookWeek,
			NewsDate:       p.NewsDate,
			FetchedAt:      fetchedAt,
		})
	}

	result, err := h.ingestionService.IngestEspnPlayers(ctx, records)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest espn players failed", "sport", req.Sport, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated})
}

type fpPlayerIngestRequest struct {
	Sport   string            `json:"sport" validate:"required"`
	Season  int               `json:"season" validate:"required,gt=0"`
	Players []fpPlayerPayload `json:"players" validate:"required,min=1,dive"`
}

type fpPlayerPayload struct {
	FpID         string     `json:"fp_id" validate:"required"`
	FullName     string     `json:"full_name" validate:"required"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Team         string     `json:"team"`
	Position     string     `json:"position"`
	Jersey       string     `json:"jersey"`
	NewsHeadline string     `json:"news_headline"`
	NewsAnalysis string     `json:"news_analysis"`
	NewsDate     *time.Time `json:"news_date"`
	FetchedAt    *time.Time `json:"fetched_at"`
}

func (h *Handler) IngestFpPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestFpPlayers")
	defer span.End()

	var req fpPlayerIngestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	now := time.Now().UTC()
	records := make([]fpplayer.Record, 0, len(req.Players))
	for _, p := range req.Players {
		fetchedAt := now
		if p.FetchedAt != nil {
			fetchedAt = p.FetchedAt.UTC()
		}
		records = append(records, fpplayer.Record{
			Sport:        req.Sport,
			Season:       req.Season,
			FPID:         p.FpID,
			FullName:     p.FullName,
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Team:         p.Team,
			Position:     p.Position,
			Jersey:       p.Jersey,
			NewsHeadline: p.NewsHeadline,
			NewsAnalysis: p.NewsAnalysis,
			NewsDate:     p.NewsDate,
			FetchedAt:    fetchedAt,
		})
	}

	result, err := h.ingestionService.IngestFpPlayers(ctx, records)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest fp players failed", "sport", req.Sport, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated})
}

type defenseStatsIngestRequest struct {
	Sport     string                     `json:"sport"`
	Season    int                        `json:"season" validate:"required,gt=0"`
	Week      *int                       `json:"week" validate:"omitempty,gt=0"`
	TeamStats []defenseTeamStatPayload   `json:"team_stats" validate:"omitempty,dive"`
	VsStats   []defenseVsPositionPayload `json:"vs_position_stats" validate:"omitempty,dive"`
}

type defenseTeamStatPayload struct {
	Team          string  `json:"team" validate:"required"`
	PointsAllowed float64 `json:"points_allowed" validate:"gte=0"`
	GamesPlayed   int     `json:"games_played" validate:"gte=0"`
}

type defenseVsPositionPayload struct {
	DefenseTeam      string  `json:"defense_team" validate:"required"`
	Position         string  `json:"position" validate:"required"`
	ScoringType      string  `json:"scoring_type" validate:"required"`
	Rank             int     `json:"rank" validate:"required,gt=0"`
	AvgPointsAllowed float64 `json:"avg_points_allowed"`
}

type defenseIngestResultDTO struct {
	TeamStats  upsertResultDTO `json:"team_stats"`
	VsPosition upsertResultDTO `json:"vs_position_stats"`
}

func (h *Handler) IngestDefenseStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestDefenseStats")
	defer span.End()

	var req defenseStatsIngestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if len(req.TeamStats) == 0 && len(req.VsStats) == 0 {
		writeError(ctx, w, fmt.Errorf("%w: at least one of team_stats or vs_position_stats is required", usecase.ErrInvalidInput))
		return
	}

	var out defenseIngestResultDTO
	if len(req.TeamStats) > 0 {
		stats := make([]defense.TeamStat, 0, len(req.TeamStats))
		for _, p := range req.TeamStats {
			stats = append(stats, defense.TeamStat{
				Season:        req.Season,
				Week:          req.Week,
				Team:          p.Team,
				PointsAllowed: p.PointsAllowed,
				GamesPlayed:   p.GamesPlayed,
			})
		}
		result, err := h.ingestionService.IngestDefenseTeamStats(ctx, stats)
		if err != nil {
			h.logger.WarnContext(ctx, "ingest defense team stats failed", "season", req.Season, "error", err)
			writeError(ctx, w, err)
			return
		}
		out.TeamStats = upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated}
	}
	if len(req.VsStats) > 0 {
		stats := make([]defense.VsPositionStat, 0, len(req.VsStats))
		for _, p := range req.VsStats {
			stats = append(stats, defense.VsPositionStat{
				Sport:            req.Sport,
				Season:           req.Season,
				Week:             req.Week,
				DefenseTeam:      p.DefenseTeam,
				Position:         p.Position,
				ScoringType:      p.ScoringType,
				Rank:             p.Rank,
				AvgPointsAllowed: p.AvgPointsAllowed,
			})
		}
		result, err := h.ingestionService.IngestDefenseVsPosition(ctx, stats)
		if err != nil {
			h.logger.WarnContext(ctx, "ingest defense vs position failed", "season", req.Season, "error", err)
			writeError(ctx, w, err)
			return
		}
		out.VsPosition = upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated}
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

type scheduleIngestRequest struct {
	Season   int              `json:"season" validate:"required,gt=0"`
	Matchups []matchupPayload `json:"matchups" validate:"required,min=1,dive"`
}

type matchupPayload struct {
	Week      int       `json:"week" validate:"required,gt=0"`
	Team      string    `json:"team" validate:"required"`
	Opponent  string    `json:"opponent" validate:"required"`
	IsHome    bool      `json:"is_home"`
	KickoffAt time.Time `json:"kickoff_at" validate:"required"`
}

func (h *Handler) IngestSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestSchedule")
	defer span.End()

	var req scheduleIngestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]schedule.Matchup, 0, len(req.Matchups))
	for _, p := range req.Matchups {
		items = append(items, schedule.Matchup{
			Season:    req.Season,
			Week:      p.Week,
			Team:      p.Team,
			Opponent:  p.Opponent,
			IsHome:    p.IsHome,
			KickoffAt: p.KickoffAt,
		})
	}

	result, err := h.ingestionService.IngestSchedule(ctx, items)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest schedule failed", "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated})
}

type weeklyRankingsIngestRequest struct {
	Sport    string                 `json:"sport" validate:"required"`
	Season   int                    `json:"season" validate:"required,gt=0"`
	Rankings []weeklyRankingPayload `json:"rankings" validate:"required,min=1,dive"`
}

type weeklyRankingPayload struct {
	FpID         string `json:"fp_id" validate:"required"`
	RankType     string `json:"rank_type" validate:"required"`
	ScoringType  string `json:"scoring_type" validate:"required"`
	Week         *int   `json:"week" validate:"omitempty,gt=0"`
	Rank         int    `json:"rank" validate:"required,gt=0"`
	PositionRank string `json:"position_rank"`
}

func (h *Handler) IngestWeeklyRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestWeeklyRankings")
	defer span.End()

	var req weeklyRankingsIngestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]ranking.WeeklyRanking, 0, len(req.Rankings))
	for _, p := range req.Rankings {
		items = append(items, ranking.WeeklyRanking{
			Sport:        req.Sport,
			Season:       req.Season,
			FPID:         p.FpID,
			RankType:     p.RankType,
			ScoringType:  p.ScoringType,
			Week:         p.Week,
			Rank:         p.Rank,
			PositionRank: p.PositionRank,
		})
	}

	result, err := h.ingestionService.IngestWeeklyRankings(ctx, items)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest weekly rankings failed", "sport", req.Sport, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated})
}

type weeklyProjectionsIngestRequest struct {
	Sport       string                    `json:"sport" validate:"required"`
	Season      int                       `json:"season" validate:"required,gt=0"`
	Projections []weeklyProjectionPayload `json:"projections" validate:"required,min=1,dive"`
}

type weeklyProjectionPayload struct {
	FpID        string  `json:"fp_id" validate:"required"`
	ScoringType string  `json:"scoring_type" validate:"required"`
	Week        *int    `json:"week" validate:"omitempty,gt=0"`
	Points      float64 `json:"points"`
}

func (h *Handler) IngestWeeklyProjections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestWeeklyProjections")
	defer span.End()

	var req weeklyProjectionsIngestRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]ranking.WeeklyProjection, 0, len(req.Projections))
	for _, p := range req.Projections {
		items = append(items, ranking.WeeklyProjection{
			Sport:       req.Sport,
			Season:      req.Season,
			FPID:        p.FpID,
			ScoringType: p.ScoringType,
			Week:        p.Week,
			Points:      p.Points,
		})
	}

	result, err := h.ingestionService.IngestWeeklyProjections(ctx, items)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest weekly projections failed", "sport", req.Sport, "season", req.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, upsertResultDTO{Inserted: result.Inserted, Updated: result.Updated})
}
