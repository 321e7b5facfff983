package espn

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreboardBody = `{
  "events": [
    {
      "date": "2024-09-08T17:00Z",
      "status": {
        "period": 2,
        "clock": 600.0,
        "type": {"state": "in", "completed": false}
      },
      "competitions": [
        {
          "competitors": [
            {"homeAway": "away", "score": "7", "team": {"abbreviation": "WSH"}},
            {"homeAway": "home", "score": "14", "team": {"abbreviation": "DAL"}}
          ]
        }
      ]
    },
    {
      "date": "2024-09-08T20:25:00Z",
      "status": {
        "period": 4,
        "clock": 122.0,
        "type": {"state": "post", "completed": true}
      },
      "competitions": [
        {
          "competitors": [
            {"homeAway": "home", "score": "21", "team": {"abbreviation": "GB"}},
            {"homeAway": "away", "score": "14", "team": {"abbreviation": "CHI"}}
          ]
        }
      ]
    }
  ]
}`

func TestGetGameProgress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scoreboard", r.URL.Path)
		assert.Equal(t, "2024", r.URL.Query().Get("dates"))
		assert.Equal(t, "2", r.URL.Query().Get("seasontype"))
		assert.Equal(t, "3", r.URL.Query().Get("week"))
		w.Write([]byte(scoreboardBody))
	}))
	defer server.Close()

	api := NewAPI(NewClient(server.URL))
	games, err := api.GetGameProgress("2024", 3)
	require.NoError(t, err)

	// WSH is keyed under the Sleeper abbreviation, on both sides.
	require.Contains(t, games, "WAS")
	assert.NotContains(t, games, "WSH")

	was := games["WAS"]
	assert.Equal(t, 2, was.Period)
	assert.Equal(t, 600, was.Clock)
	assert.Equal(t, "in", was.State)
	assert.False(t, was.Home)
	assert.Equal(t, "DAL", was.Opponent)
	assert.Equal(t, "7", was.TeamScore)
	assert.Equal(t, "14", was.OpponentScore)
	assert.True(t, was.StartTime.Equal(time.Date(2024, 9, 8, 17, 0, 0, 0, time.UTC)))

	dal := games["DAL"]
	assert.True(t, dal.Home)
	assert.Equal(t, "WAS", dal.Opponent)
	assert.Equal(t, "14", dal.TeamScore)
	assert.Equal(t, "7", dal.OpponentScore)

	// Completed games are pinned to end of regulation regardless of the
	// clock the feed reports.
	gb := games["GB"]
	assert.Equal(t, 4, gb.Period)
	assert.Equal(t, 0, gb.Clock)
	assert.Equal(t, "post", gb.State)
	assert.Equal(t, "CHI", gb.Opponent)
	assert.True(t, gb.StartTime.Equal(time.Date(2024, 9, 8, 20, 25, 0, 0, time.UTC)))
}

func TestGetGameProgress_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	api := NewAPI(NewClient(server.URL))
	_, err := api.GetGameProgress("2024", 3)
	assert.Error(t, err)
}
