package postgres

type weeklyRankingTableModel struct {
	Sport        string `db:"sport"`
	Season       int    `db:"season"`
	FPID         string `db:"fp_id"`
	RankType     string `db:"rank_type"`
	ScoringType  string `db:"scoring_type"`
	Week         *int   `db:"week"`
	Rank         int    `db:"rank"`
	PositionRank string `db:"position_rank"`
}

type weeklyProjectionTableModel struct {
	Sport       string  `db:"sport"`
	Season      int     `db:"season"`
	FPID        string  `db:"fp_id"`
	ScoringType string  `db:"scoring_type"`
	Week        *int    `db:"week"`
	Points      float64 `db:"points"`
}
