package sleeper

import (
	"fmt"

	"github.com/bestball-live/bestballbot/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetState returns the league-wide NFL state, including the current week.
func (a *API) GetState() (*models.SleeperState, error) {
	var state models.SleeperState
	if err := a.client.Get("/state/nfl", &state); err != nil {
		return nil, fmt.Errorf("fetching nfl state: %w", err)
	}
	return &state, nil
}

func (a *API) GetLeague(leagueID string) (*models.SleeperLeague, error) {
	var league models.SleeperLeague
	endpoint := fmt.Sprintf("/league/%s", leagueID)
	if err := a.client.Get(endpoint, &league); err != nil {
		return nil, fmt.Errorf("fetching league: %w", err)
	}
	return &league, nil
}

func (a *API) GetRosters(leagueID string) ([]models.SleeperRoster, error) {
	var rosters []models.SleeperRoster
	endpoint := fmt.Sprintf("/league/%s/rosters", leagueID)
	if err := a.client.Get(endpoint, &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}
	return rosters, nil
}

func (a *API) GetUsers(leagueID string) ([]models.SleeperUser, error) {
	var users []models.SleeperUser
	endpoint := fmt.Sprintf("/league/%s/users", leagueID)
	if err := a.client.Get(endpoint, &users); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return users, nil
}

func (a *API) GetMatchups(leagueID string, week int) ([]models.SleeperMatchup, error) {
	var matchups []models.SleeperMatchup
	endpoint := fmt.Sprintf("/league/%s/matchups/%d", leagueID, week)
	if err := a.client.Get(endpoint, &matchups); err != nil {
		return nil, fmt.Errorf("fetching matchups: %w", err)
	}
	return matchups, nil
}
