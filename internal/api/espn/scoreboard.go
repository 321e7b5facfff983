package espn

import (
	"fmt"
	"time"

	"github.com/bestball-live/bestballbot/internal/models"
	"github.com/bestball-live/bestballbot/internal/scoring"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetGameProgress fetches the week's scoreboard and returns each pro team's
// game context (clock, state, opponent, score), keyed by canonical team
// abbreviation. Teams with no game that week simply have no entry.
func (a *API) GetGameProgress(season string, week int) (map[string]models.GameProgress, error) {
	var scoreboard models.ScoreboardResponse
	params := map[string]string{
		"dates":      season,
		"seasontype": "2",
		"week":       fmt.Sprintf("%d", week),
	}

	if err := a.client.Get("/scoreboard", params, &scoreboard); err != nil {
		return nil, fmt.Errorf("fetching scoreboard: %w", err)
	}

	games := make(map[string]models.GameProgress)
	for _, event := range scoreboard.Events {
		base := models.GameProgress{
			Period:    event.Status.Period,
			Clock:     int(event.Status.Clock),
			State:     event.Status.Type.State,
			StartTime: parseEventDate(event.Date),
		}
		if event.Status.Type.Completed {
			// Completed games report period/clock inconsistently across
			// providers; pin them to end of regulation.
			base.Period = scoring.Periods
			base.Clock = 0
		}

		for _, competition := range event.Competitions {
			competitors := competition.Competitors
			for i, competitor := range competitors {
				entry := base
				entry.Home = competitor.HomeAway == "home"
				entry.TeamScore = competitor.Score
				for j, other := range competitors {
					if j == i {
						continue
					}
					entry.Opponent = scoring.CanonicalTeam(other.Team.Abbreviation)
					entry.OpponentScore = other.Score
				}
				games[scoring.CanonicalTeam(competitor.Team.Abbreviation)] = entry
			}
		}
	}
	return games, nil
}

// ESPN emits event dates at minute precision ("2024-09-08T17:00Z") but
// occasionally with full seconds.
func parseEventDate(date string) time.Time {
	t, err := time.Parse("2006-01-02T15:04Z", date)
	if err != nil {
		t, _ = time.Parse("2006-01-02T15:04:05Z", date)
	}
	return t
}
