package optimizer

import (
	"fmt"
	"sort"

	"github.com/bestball-live/bestballbot/internal/models"
)

// ShapeError reports matchup groups that did not contain exactly two teams.
// The upstream feed promises head-to-head pairs; anything else is a data
// shape problem that must surface instead of producing a misleading total.
type ShapeError struct {
	MatchupIDs []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("matchup groups without exactly two teams: %v", e.MatchupIDs)
}

// PairMatchups groups team summaries by matchup id into head-to-head pairs.
// Well-formed pairs are always returned; if any group has a different
// cardinality the returned error lists the affected matchup ids so the
// caller can report them as unavailable.
func PairMatchups(teams []models.TeamSummary) ([]models.MatchupSummary, error) {
	groups := make(map[int][]models.TeamSummary)
	for _, team := range teams {
		groups[team.MatchupID] = append(groups[team.MatchupID], team)
	}

	ids := make([]int, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var matchups []models.MatchupSummary
	var malformed []int
	for _, id := range ids {
		group := groups[id]
		if len(group) != 2 {
			malformed = append(malformed, id)
			continue
		}
		sort.Slice(group, func(i, j int) bool {
			return group[i].RosterID < group[j].RosterID
		})
		matchups = append(matchups, models.MatchupSummary{
			MatchupID: id,
			Teams:     [2]models.TeamSummary{group[0], group[1]},
		})
	}

	if len(malformed) > 0 {
		return matchups, &ShapeError{MatchupIDs: malformed}
	}
	return matchups, nil
}
