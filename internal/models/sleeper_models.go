package models

// StatLine maps a stat category (e.g. "passing_yards") to its value. The
// category keys are whatever the stats feed emits; they are not a fixed set.
type StatLine map[string]float64

// ScoringTable maps a stat category to its point weight. Weights can be
// negative (turnovers, missed kicks).
type ScoringTable map[string]float64

type SleeperLeague struct {
	LeagueID        string       `json:"league_id"`
	Name            string       `json:"name"`
	Season          string       `json:"season"`
	ScoringSettings ScoringTable `json:"scoring_settings"`
	RosterPositions []string     `json:"roster_positions"`
}

type SleeperRoster struct {
	RosterID int                   `json:"roster_id"`
	OwnerID  string                `json:"owner_id"`
	Players  []string              `json:"players"`
	Settings SleeperRosterSettings `json:"settings"`
}

type SleeperRosterSettings struct {
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	Ties      int     `json:"ties"`
	PointsFor float64 `json:"fpts"`
}

type SleeperUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

type SleeperMatchup struct {
	RosterID  int      `json:"roster_id"`
	MatchupID int      `json:"matchup_id"`
	Players   []string `json:"players"`
	Points    float64  `json:"points"`
}

type SleeperPlayer struct {
	PlayerID     string `json:"player_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	InjuryStatus string `json:"injury_status"`
}

// SleeperState is the league-wide NFL state, used to resolve the current week.
type SleeperState struct {
	Week       int    `json:"week"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
}
