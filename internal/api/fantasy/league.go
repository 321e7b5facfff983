package fantasy

import (
	"fmt"

	"github.com/bestball-live/bestballbot/internal/api/espn"
	"github.com/bestball-live/bestballbot/internal/api/sleeper"
	"github.com/bestball-live/bestballbot/internal/models"
)

// API joins the two upstream feeds (Sleeper for league data and stats, ESPN
// for live game clocks) behind one surface the service layer consumes.
type API struct {
	sleeperAPI *sleeper.API
	espnAPI    *espn.API
}

func NewAPI(sleeperAPI *sleeper.API, espnAPI *espn.API) *API {
	return &API{sleeperAPI: sleeperAPI, espnAPI: espnAPI}
}

func (a *API) GetCurrentWeek() (int, error) {
	state, err := a.sleeperAPI.GetState()
	if err != nil {
		return 0, err
	}
	return state.Week, nil
}

func (a *API) GetLeague(leagueID string) (*models.SleeperLeague, error) {
	return a.sleeperAPI.GetLeague(leagueID)
}

func (a *API) GetAllPlayers() (map[string]models.SleeperPlayer, error) {
	return a.sleeperAPI.GetAllPlayers()
}

func (a *API) GetRosters(leagueID string) ([]models.SleeperRoster, error) {
	return a.sleeperAPI.GetRosters(leagueID)
}

func (a *API) GetUsers(leagueID string) ([]models.SleeperUser, error) {
	return a.sleeperAPI.GetUsers(leagueID)
}

// GetWeekSnapshot assembles the full read-only input set for one week's
// computation. The league config and player directory are passed in so the
// caller can reuse its cached copies.
func (a *API) GetWeekSnapshot(league *models.SleeperLeague, players map[string]models.SleeperPlayer, week int) (*models.WeekSnapshot, error) {
	rosters, err := a.sleeperAPI.GetRosters(league.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("assembling week snapshot: %w", err)
	}

	users, err := a.sleeperAPI.GetUsers(league.LeagueID)
	if err != nil {
		return nil, fmt.Errorf("assembling week snapshot: %w", err)
	}

	matchups, err := a.sleeperAPI.GetMatchups(league.LeagueID, week)
	if err != nil {
		return nil, fmt.Errorf("assembling week snapshot: %w", err)
	}

	stats, err := a.sleeperAPI.GetWeekStats(league.Season, week)
	if err != nil {
		return nil, fmt.Errorf("assembling week snapshot: %w", err)
	}

	projections, err := a.sleeperAPI.GetWeekProjections(league.Season, week)
	if err != nil {
		return nil, fmt.Errorf("assembling week snapshot: %w", err)
	}

	games, err := a.espnAPI.GetGameProgress(league.Season, week)
	if err != nil {
		return nil, fmt.Errorf("assembling week snapshot: %w", err)
	}

	return &models.WeekSnapshot{
		Week:        week,
		League:      *league,
		Rosters:     rosters,
		Users:       users,
		Matchups:    matchups,
		Players:     players,
		Stats:       stats,
		Projections: projections,
		Games:       games,
	}, nil
}
