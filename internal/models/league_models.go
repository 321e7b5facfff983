package models

import (
	"fmt"
	"time"
)

// GameProgress is the live context for one pro team's game this week: the
// current period and seconds remaining, plus the matchup framing used for
// status lines. A team with no entry has no game scheduled (bye).
type GameProgress struct {
	Period int
	Clock  int

	State         string // "pre", "in", "post"
	StartTime     time.Time
	Home          bool
	Opponent      string
	TeamScore     string
	OpponentScore string
}

// Player is a rostered player with the per-week derived scores attached.
type Player struct {
	ID           string
	FirstName    string
	LastName     string
	Position     string
	Team         string // pro team abbreviation; empty for free agents
	InjuryStatus string

	Points     float64 // points scored so far this week
	Projection float64 // full-game pre-kickoff projection
	Optimistic float64 // blended best estimate of the final score
	PctPlayed  float64 // completion fraction of the player's game, in [0,1]
	Bye        bool

	// GameStatus is the rendered game context, e.g. "Sun 1:00 PM vs NYG",
	// "5:00 4th Q 14-7 @ NYG", "Final 21-14 @ NYG", or "Bye".
	GameStatus string
}

// Name renders the short display form, e.g. "J. Jefferson".
func (p Player) Name() string {
	if p.FirstName == "" {
		return p.LastName
	}
	return fmt.Sprintf("%c. %s", p.FirstName[0], p.LastName)
}

func (p Player) Live() bool {
	return p.PctPlayed > 0 && p.PctPlayed < 1
}

func (p Player) Final() bool {
	return p.PctPlayed >= 1
}

// LineupSlot is one filled (or empty) slot of a computed lineup.
type LineupSlot struct {
	Slot   string
	Bench  bool
	Player *Player // nil when no eligible player remained
}

type TeamSummary struct {
	RosterID  int
	OwnerID   string
	Name      string
	MatchupID int

	// Current reflects what is locked in right now (by actual points);
	// Optimal is the best achievable final lineup (by optimistic points).
	Current []LineupSlot
	Optimal []LineupSlot

	Points     float64 // current starters total
	Optimistic float64 // optimal starters total, blended
}

type MatchupSummary struct {
	MatchupID int
	Teams     [2]TeamSummary
}

type WeekReport struct {
	Week       int
	LeagueName string
	Matchups   []MatchupSummary
	// Malformed lists matchup ids whose team grouping was not a pair.
	// They are reported as unavailable rather than scored.
	Malformed []int
}

type TeamStanding struct {
	Rank      int
	Name      string
	Wins      int
	Losses    int
	Ties      int
	PointsFor float64
}

type WhoHasResult struct {
	Found       bool
	PlayerName  string
	Position    string
	Team        string
	FantasyTeam string // empty means free agent
	Starting    bool
	Points      float64
	Optimistic  float64
	Bye         bool
}

// WeekSnapshot is everything the engine needs for one (league, week)
// computation, fetched up front and treated as read-only.
type WeekSnapshot struct {
	Week        int
	League      SleeperLeague
	Rosters     []SleeperRoster
	Users       []SleeperUser
	Matchups    []SleeperMatchup
	Players     map[string]SleeperPlayer
	Stats       map[string]StatLine
	Projections map[string]StatLine
	Games       map[string]GameProgress
}
