package sleeper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, routes map[string]string) *API {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewAPI(NewClient(server.URL))
}

func TestGetState(t *testing.T) {
	api := newTestAPI(t, map[string]string{
		"/state/nfl": `{"week": 7, "season": "2024", "season_type": "regular"}`,
	})

	state, err := api.GetState()
	require.NoError(t, err)
	assert.Equal(t, 7, state.Week)
	assert.Equal(t, "2024", state.Season)
}

func TestGetLeague(t *testing.T) {
	api := newTestAPI(t, map[string]string{
		"/league/123": `{
			"league_id": "123",
			"name": "Test League",
			"season": "2024",
			"scoring_settings": {"passing_yards": 0.04, "receiving_touchdowns": 6},
			"roster_positions": ["QB", "RB", "RB", "WR", "FLEX", "BN"]
		}`,
	})

	league, err := api.GetLeague("123")
	require.NoError(t, err)
	assert.Equal(t, "Test League", league.Name)
	assert.InDelta(t, 0.04, league.ScoringSettings["passing_yards"], 1e-9)
	assert.InDelta(t, 6.0, league.ScoringSettings["receiving_touchdowns"], 1e-9)
	assert.Equal(t, []string{"QB", "RB", "RB", "WR", "FLEX", "BN"}, league.RosterPositions)
}

func TestGetMatchups(t *testing.T) {
	api := newTestAPI(t, map[string]string{
		"/league/123/matchups/7": `[
			{"roster_id": 1, "matchup_id": 1, "players": ["100", "200"], "points": 55.4},
			{"roster_id": 2, "matchup_id": 1, "players": ["300"], "points": 41.1}
		]`,
	})

	matchups, err := api.GetMatchups("123", 7)
	require.NoError(t, err)
	require.Len(t, matchups, 2)
	assert.Equal(t, 1, matchups[0].RosterID)
	assert.Equal(t, []string{"100", "200"}, matchups[0].Players)
	assert.InDelta(t, 55.4, matchups[0].Points, 1e-9)
}

func TestGetLeague_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	api := NewAPI(NewClient(server.URL))
	_, err := api.GetLeague("123")
	assert.ErrorContains(t, err, "fetching league")
}
