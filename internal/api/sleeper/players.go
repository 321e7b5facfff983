package sleeper

import (
	"fmt"

	"github.com/bestball-live/bestballbot/internal/models"
)

// GetAllPlayers fetches the full NFL player directory, keyed by player id.
// The payload is large; callers are expected to cache it.
func (a *API) GetAllPlayers() (map[string]models.SleeperPlayer, error) {
	var players map[string]models.SleeperPlayer
	if err := a.client.Get("/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return players, nil
}

// GetWeekStats returns each player's actual stat line so far this week.
func (a *API) GetWeekStats(season string, week int) (map[string]models.StatLine, error) {
	var stats map[string]models.StatLine
	endpoint := fmt.Sprintf("/stats/nfl/regular/%s/%d", season, week)
	if err := a.client.Get(endpoint, &stats); err != nil {
		return nil, fmt.Errorf("fetching week stats: %w", err)
	}
	return stats, nil
}

// GetWeekProjections returns each player's pre-game projected stat line.
func (a *API) GetWeekProjections(season string, week int) (map[string]models.StatLine, error) {
	var projections map[string]models.StatLine
	endpoint := fmt.Sprintf("/projections/nfl/regular/%s/%d", season, week)
	if err := a.client.Get(endpoint, &projections); err != nil {
		return nil, fmt.Errorf("fetching week projections: %w", err)
	}
	return projections, nil
}
