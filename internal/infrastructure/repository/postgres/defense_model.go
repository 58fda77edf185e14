package postgres

type defenseTeamStatTableModel struct {
	Season        int     `db:"season"`
	Week          *int    `db:"week"`
	Team          string  `db:"team"`
	PointsAllowed float64 `db:"points_allowed"`
	GamesPlayed   int     `db:"games_played"`
}

type defenseVsPositionTableModel struct {
	Sport            string  `db:"sport"`
	Season           int     `db:"season"`
	Week             *int    `db:"week"`
	DefenseTeam      string  `db:"defense_team"`
	Position         string  `db:"position"`
	ScoringType      string  `db:"scoring_type"`
	Rank             int     `db:"rank"`
	AvgPointsAllowed float64 `db:"avg_points_allowed"`
}
