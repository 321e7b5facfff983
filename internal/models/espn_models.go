package models

// Wire types for the ESPN NFL scoreboard, which supplies the live game clock
// per pro team. Only the fields we read are modeled.

type ScoreboardResponse struct {
	Events []ScoreboardEvent `json:"events"`
}

type ScoreboardEvent struct {
	Date         string             `json:"date"`
	Status       EventStatus        `json:"status"`
	Competitions []EventCompetition `json:"competitions"`
}

type EventStatus struct {
	Period int             `json:"period"`
	Clock  float64         `json:"clock"`
	Type   EventStatusType `json:"type"`
}

type EventStatusType struct {
	State     string `json:"state"`
	Completed bool   `json:"completed"`
}

type EventCompetition struct {
	Competitors []EventCompetitor `json:"competitors"`
}

type EventCompetitor struct {
	HomeAway string    `json:"homeAway"`
	Score    string    `json:"score"`
	Team     EventTeam `json:"team"`
}

type EventTeam struct {
	Abbreviation string `json:"abbreviation"`
}
