package service

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/bestball-live/bestballbot/internal/api/fantasy"
	"github.com/bestball-live/bestballbot/internal/models"
	"github.com/bestball-live/bestballbot/internal/repository/memory"
	"github.com/bestball-live/bestballbot/internal/scoring"
)

const (
	leagueTTL  = time.Hour
	playersTTL = 24 * time.Hour
)

type FantasyService struct {
	api      *fantasy.API
	repo     *memory.Repository
	leagueID string
}

func NewFantasyService(api *fantasy.API, repo *memory.Repository, leagueID string) *FantasyService {
	return &FantasyService{api: api, repo: repo, leagueID: leagueID}
}

func (s *FantasyService) GetCurrentWeek() (int, error) {
	week, err := s.api.GetCurrentWeek()
	if err != nil {
		return 0, fmt.Errorf("error fetching current week: %w", err)
	}
	slog.Info("Current week", "week", week)
	return week, nil
}

func (s *FantasyService) getLeague() (*models.SleeperLeague, error) {
	if league := s.repo.GetLeague(leagueTTL); league != nil {
		return league, nil
	}
	league, err := s.api.GetLeague(s.leagueID)
	if err != nil {
		return nil, err
	}
	s.repo.SaveLeague(league)
	return league, nil
}

func (s *FantasyService) getPlayers() (map[string]models.SleeperPlayer, error) {
	if players := s.repo.GetPlayers(playersTTL); players != nil {
		return players, nil
	}
	players, err := s.api.GetAllPlayers()
	if err != nil {
		return nil, err
	}
	s.repo.SavePlayers(players)
	return players, nil
}

func (s *FantasyService) weekReport() (*models.WeekReport, *models.WeekSnapshot, error) {
	week, err := s.GetCurrentWeek()
	if err != nil {
		return nil, nil, err
	}

	league, err := s.getLeague()
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching league: %w", err)
	}

	players, err := s.getPlayers()
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching players: %w", err)
	}

	snap, err := s.api.GetWeekSnapshot(league, players, week)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching week snapshot: %w", err)
	}

	report := buildWeekReport(*snap)
	return &report, snap, nil
}

func (s *FantasyService) GetCurrentScores() (string, error) {
	report, _, err := s.weekReport()
	if err != nil {
		return "", err
	}
	return formatScoreboard(report), nil
}

// GetLiveScores returns the scoreboard plus whether any game is currently
// in progress, so scheduled polls can stay quiet between game windows.
func (s *FantasyService) GetLiveScores() (string, bool, error) {
	report, snap, err := s.weekReport()
	if err != nil {
		return "", false, err
	}

	live := false
	for _, game := range snap.Games {
		fraction := scoring.Fraction(game.Period, game.Clock)
		if fraction > 0 && fraction < 1 {
			live = true
			break
		}
	}

	return formatScoreboard(report), live, nil
}

func formatScoreboard(report *models.WeekReport) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *%s - Week %d Scores*\n\n", report.LeagueName, report.Week))

	for _, matchup := range report.Matchups {
		a, b := matchup.Teams[0], matchup.Teams[1]
		sb.WriteString(fmt.Sprintf("*%s* vs *%s*\n", a.Name, b.Name))
		sb.WriteString(fmt.Sprintf("Current: %.2f - %.2f\n", a.Points, b.Points))
		sb.WriteString(fmt.Sprintf("Projected: %s - %s\n", formatTotal(a), formatTotal(b)))
		if teamSettled(a) && teamSettled(b) {
			sb.WriteString("(Final)\n")
		}
		sb.WriteString("\n")
	}

	for _, id := range report.Malformed {
		sb.WriteString(fmt.Sprintf("⚠️ Matchup %d unavailable: unexpected team grouping\n", id))
	}

	return sb.String()
}

func (s *FantasyService) GetMatchups() (string, error) {
	report, _, err := s.weekReport()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d Matchups*\n\n", report.Week))

	slog.Info("Matchups", "matchups", len(report.Matchups))
	for _, matchup := range report.Matchups {
		for _, team := range matchup.Teams {
			sb.WriteString(fmt.Sprintf("*%s* - %s\n", team.Name, formatTotal(team)))
			for _, slot := range team.Optimal {
				if slot.Bench {
					continue
				}
				writePlayerLine(&sb, slot)
			}
			sb.WriteString("\n")
		}
	}

	for _, id := range report.Malformed {
		sb.WriteString(fmt.Sprintf("⚠️ Matchup %d unavailable: unexpected team grouping\n", id))
	}

	return sb.String(), nil
}

func (s *FantasyService) GetTeamRoster(teamName string) (string, error) {
	report, _, err := s.weekReport()
	if err != nil {
		return "", err
	}

	var bestMatch *models.TeamSummary
	bestScore := -1.0
	threshold := 0.6

	for i := range report.Matchups {
		for j := range report.Matchups[i].Teams {
			team := &report.Matchups[i].Teams[j]
			score := similarity(teamName, team.Name)
			if score > threshold && score > bestScore {
				bestScore = score
				bestMatch = team
			}
		}
	}

	if bestMatch == nil {
		return "", fmt.Errorf("team not found: %s", teamName)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s*\n", bestMatch.Name))
	sb.WriteString(fmt.Sprintf("Current: %.2f | Projected: %s\n\n", bestMatch.Points, formatTotal(*bestMatch)))

	sb.WriteString("*Best Lineup:*\n")
	for _, slot := range bestMatch.Optimal {
		if slot.Bench {
			continue
		}
		writePlayerLine(&sb, slot)
	}

	sb.WriteString("\n*Bench:*\n")
	for _, slot := range bestMatch.Optimal {
		if !slot.Bench {
			continue
		}
		writePlayerLine(&sb, slot)
	}

	return sb.String(), nil
}

func (s *FantasyService) WhoHas(playerName string) (string, error) {
	report, snap, err := s.weekReport()
	if err != nil {
		return "", err
	}

	result := searchPlayers(report, snap, playerName)
	if !result.Found {
		return fmt.Sprintf("🔍 No player found matching '%s'.", playerName), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s - %s)\n", result.PlayerName, result.Position, result.Team))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")

	sb.WriteString(fmt.Sprintf("*%s*\n", result.FantasyTeam))
	if result.Starting {
		sb.WriteString("Starting\n")
	} else {
		sb.WriteString("Bench\n")
	}

	if result.Bye {
		sb.WriteString("\nBye week")
	} else {
		sb.WriteString(fmt.Sprintf("\n%.2f pts (est %.2f)", result.Points, result.Optimistic))
	}

	return sb.String(), nil
}

func searchPlayers(report *models.WeekReport, snap *models.WeekSnapshot, playerName string) models.WhoHasResult {
	rosterNames := make(map[int]string)
	starters := make(map[string]bool)
	for _, matchup := range report.Matchups {
		for _, team := range matchup.Teams {
			rosterNames[team.RosterID] = team.Name
			for _, slot := range team.Current {
				if !slot.Bench && slot.Player != nil {
					starters[slot.Player.ID] = true
				}
			}
		}
	}

	bestScore := -1.0
	threshold := 0.7
	var bestID string
	var bestRoster int

	for _, matchup := range snap.Matchups {
		for _, id := range matchup.Players {
			meta, ok := snap.Players[id]
			if !ok {
				continue
			}
			fullName := strings.TrimSpace(meta.FirstName + " " + meta.LastName)
			score := similarity(playerName, fullName)
			if score > threshold && score > bestScore {
				bestScore = score
				bestID = id
				bestRoster = matchup.RosterID
			}
		}
	}

	if bestID == "" {
		return models.WhoHasResult{Found: false, PlayerName: playerName}
	}

	meta := snap.Players[bestID]
	player := buildPlayer(bestID, *snap)

	return models.WhoHasResult{
		Found:       true,
		PlayerName:  strings.TrimSpace(meta.FirstName + " " + meta.LastName),
		Position:    player.Position,
		Team:        player.Team,
		FantasyTeam: rosterNames[bestRoster],
		Starting:    starters[bestID],
		Points:      player.Points,
		Optimistic:  player.Optimistic,
		Bye:         player.Bye,
	}
}

func (s *FantasyService) GetStandings() (string, error) {
	rosters, err := s.api.GetRosters(s.leagueID)
	if err != nil {
		return "", fmt.Errorf("error fetching rosters: %w", err)
	}

	users, err := s.api.GetUsers(s.leagueID)
	if err != nil {
		return "", fmt.Errorf("error fetching users: %w", err)
	}

	userNames := make(map[string]string, len(users))
	for _, user := range users {
		userNames[user.UserID] = user.DisplayName
	}

	standings := make([]models.TeamStanding, len(rosters))
	for i, roster := range rosters {
		name := userNames[roster.OwnerID]
		if name == "" {
			name = fmt.Sprintf("Roster %d", roster.RosterID)
		}
		standings[i] = models.TeamStanding{
			Name:      name,
			Wins:      roster.Settings.Wins,
			Losses:    roster.Settings.Losses,
			Ties:      roster.Settings.Ties,
			PointsFor: roster.Settings.PointsFor,
		}
	}

	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].PointsFor > standings[j].PointsFor
	})

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for i := range standings {
		standings[i].Rank = i + 1
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", standings[i].Rank, standings[i].Name))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", standings[i].Wins, standings[i].Losses, standings[i].Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n\n", standings[i].PointsFor))
	}

	return sb.String(), nil
}

func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	distance := fuzzy.LevenshteinDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(distance)/float64(maxLen)
}

func writePlayerLine(sb *strings.Builder, slot models.LineupSlot) {
	if slot.Player == nil {
		sb.WriteString(fmt.Sprintf("▫️ %s -\n", slot.Slot))
		return
	}

	player := slot.Player
	injuryStr := ""
	if abbr := injuryAbbr(player.InjuryStatus); abbr != "" {
		injuryStr = fmt.Sprintf(" (%s)", abbr)
	}
	statusStr := ""
	if player.GameStatus != "" {
		statusStr = fmt.Sprintf(" | %s", player.GameStatus)
	}

	sb.WriteString(fmt.Sprintf("▫️ %s %s%s - %s (est %s)%s\n",
		slot.Slot,
		player.Name(),
		injuryStr,
		formatPoints(player),
		formatEstimate(player),
		statusStr))
}

func injuryAbbr(status string) string {
	return map[string]string{
		"Questionable": "Q",
		"Doubtful":     "D",
		"Out":          "O",
		"IR":           "IR",
	}[status]
}

// formatPoints renders actual points: "-" until the player's game kicks off
// so "no data yet" is never confused with a scored zero. Bye weeks show "-"
// too; the status column carries the "Bye" label.
func formatPoints(p *models.Player) string {
	if p == nil {
		return "-"
	}
	if p.Points == 0 && p.PctPlayed == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", p.Points)
}

// formatEstimate renders the blended score, starred while it still carries
// projection weight.
func formatEstimate(p *models.Player) string {
	if p == nil {
		return "-"
	}
	if p.Points == 0 && p.Projection == 0 {
		return "-"
	}
	label := fmt.Sprintf("%.2f", p.Optimistic)
	if !p.Final() {
		label += "*"
	}
	return label
}

// formatTotal renders a team's optimistic total, starred while any starter
// still has game time left.
func formatTotal(team models.TeamSummary) string {
	label := fmt.Sprintf("%.2f", team.Optimistic)
	if !teamSettled(team) {
		label += "*"
	}
	return label
}

func teamSettled(team models.TeamSummary) bool {
	for _, slot := range team.Current {
		if slot.Bench || slot.Player == nil {
			continue
		}
		if !slot.Player.Final() {
			return false
		}
	}
	return true
}
