package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bestball-live/bestballbot/internal/models"
	"github.com/bestball-live/bestballbot/internal/optimizer"
	"github.com/bestball-live/bestballbot/internal/scoring"
)

// buildWeekReport runs the scoring and lineup engine over one week's
// snapshot. It is a pure function of the snapshot: no I/O, no clocks.
func buildWeekReport(snap models.WeekSnapshot) models.WeekReport {
	slots := optimizer.BuildSlots(snap.League.RosterPositions)

	userNames := make(map[string]string, len(snap.Users))
	for _, user := range snap.Users {
		userNames[user.UserID] = user.DisplayName
	}
	ownerByRoster := make(map[int]string, len(snap.Rosters))
	rosterPlayers := make(map[int][]string, len(snap.Rosters))
	for _, roster := range snap.Rosters {
		ownerByRoster[roster.RosterID] = roster.OwnerID
		rosterPlayers[roster.RosterID] = roster.Players
	}

	teams := make([]models.TeamSummary, 0, len(snap.Matchups))
	for _, matchup := range snap.Matchups {
		ids := poolIDs(matchup.Players, rosterPlayers[matchup.RosterID])
		pool := make([]models.Player, 0, len(ids))
		for _, id := range ids {
			pool = append(pool, buildPlayer(id, snap))
		}

		current := optimizer.Assign(pool, slots, optimizer.CurrentPoints)
		optimal := optimizer.Assign(pool, slots, optimizer.OptimisticPoints)

		ownerID := ownerByRoster[matchup.RosterID]
		name := userNames[ownerID]
		if name == "" {
			name = fmt.Sprintf("Roster %d", matchup.RosterID)
		}

		teams = append(teams, models.TeamSummary{
			RosterID:   matchup.RosterID,
			OwnerID:    ownerID,
			Name:       name,
			MatchupID:  matchup.MatchupID,
			Current:    toLineupSlots(current),
			Optimal:    toLineupSlots(optimal),
			Points:     optimizer.TeamTotal(current, optimizer.CurrentPoints),
			Optimistic: optimizer.TeamTotal(optimal, optimizer.OptimisticPoints),
		})
	}

	matchups, err := optimizer.PairMatchups(teams)
	report := models.WeekReport{
		Week:       snap.Week,
		LeagueName: snap.League.Name,
		Matchups:   matchups,
	}

	var shapeErr *optimizer.ShapeError
	if errors.As(err, &shapeErr) {
		report.Malformed = shapeErr.MatchupIDs
		slog.Warn("Malformed matchup groups in feed", "matchups", shapeErr.MatchupIDs)
	}

	return report
}

// buildPlayer derives one player's scores for the week. Missing stat lines,
// projections, and game records all resolve to neutral defaults rather than
// errors; an id absent from the directory yields an unassignable player
// with zero scores.
func buildPlayer(id string, snap models.WeekSnapshot) models.Player {
	meta := snap.Players[id]
	table := snap.League.ScoringSettings

	actual := scoring.Score(snap.Stats[id], table)
	projected := scoring.Score(snap.Projections[id], table)
	fraction, bye := scoring.Completion(meta.Team, snap.Games)
	game := snap.Games[scoring.CanonicalTeam(meta.Team)]

	return models.Player{
		ID:           id,
		FirstName:    meta.FirstName,
		LastName:     meta.LastName,
		Position:     meta.Position,
		Team:         meta.Team,
		InjuryStatus: meta.InjuryStatus,
		Points:       actual,
		Projection:   projected,
		Optimistic:   scoring.Optimistic(actual, projected, fraction),
		PctPlayed:    fraction,
		Bye:          bye,
		GameStatus:   gameStatus(game, bye),
	}
}

// poolIDs merges the matchup feed's player list with the roster's. The
// matchup feed can omit deep bench players; the roster list is the
// authoritative membership.
func poolIDs(matchupPlayers, rosterPlayers []string) []string {
	ids := make([]string, 0, len(matchupPlayers))
	ids = append(ids, matchupPlayers...)
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		seen[id] = true
	}
	for _, id := range rosterPlayers {
		if !seen[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// gameStatus renders the player's game context: kickoff and opponent before
// the game, clock and score while live, a final line after, "Bye" when there
// is no game.
func gameStatus(game models.GameProgress, bye bool) string {
	if bye {
		return "Bye"
	}
	if game.Opponent == "" {
		return ""
	}

	venue := "@"
	if game.Home {
		venue = "vs"
	}
	matchup := fmt.Sprintf("%s %s", venue, game.Opponent)

	switch game.State {
	case "in":
		return fmt.Sprintf("%s %s %s-%s %s",
			clockLabel(game.Clock), periodLabel(game.Period),
			game.TeamScore, game.OpponentScore, matchup)
	case "post":
		return fmt.Sprintf("Final %s-%s %s", game.TeamScore, game.OpponentScore, matchup)
	default:
		if game.StartTime.IsZero() {
			return matchup
		}
		return fmt.Sprintf("%s %s", game.StartTime.In(time.Local).Format("Mon 3:04 PM"), matchup)
	}
}

func clockLabel(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func periodLabel(period int) string {
	switch period {
	case 1:
		return "1st Q"
	case 2:
		return "2nd Q"
	case 3:
		return "3rd Q"
	case 4:
		return "4th Q"
	default:
		return "OT"
	}
}

func toLineupSlots(lineup optimizer.Lineup) []models.LineupSlot {
	out := make([]models.LineupSlot, 0, len(lineup))
	for _, assignment := range lineup {
		slot := models.LineupSlot{
			Slot:  assignment.Slot.Name,
			Bench: assignment.Slot.Bench,
		}
		if assignment.Player != nil {
			player := *assignment.Player
			slot.Player = &player
		}
		out = append(out, slot)
	}
	return out
}
