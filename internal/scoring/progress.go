package scoring

import "github.com/bestball-live/bestballbot/internal/models"

// NFL regulation game shape. Overtime clamps to a finished game rather than
// pushing the fraction past 1.
const (
	PeriodSeconds = 900
	Periods       = 4
)

// The live-score feed and the player directory disagree on a few team
// abbreviations. Feed abbreviations are canonicalized before lookup.
var teamAliases = map[string]string{
	"WSH": "WAS",
}

// CanonicalTeam resolves a feed team abbreviation to the directory's form.
func CanonicalTeam(abbr string) string {
	if canonical, ok := teamAliases[abbr]; ok {
		return canonical
	}
	return abbr
}

// Fraction converts a game clock into the share of scheduled game time
// elapsed, clamped to [0,1]. Period 1 with a full clock is 0; the end of
// regulation (or any overtime period) is 1.
func Fraction(period, secondsRemaining int) float64 {
	elapsed := (period-1)*PeriodSeconds + (PeriodSeconds - secondsRemaining)
	fraction := float64(elapsed) / float64(Periods*PeriodSeconds)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

// Completion looks up the completion fraction for a player's pro team. Teams
// with no game record this week, unknown aliases, and free agents (empty
// team) are all byes: fraction 0 with the bye flag set, so blending falls
// back to the full projection and the status can still say "Bye".
func Completion(team string, games map[string]models.GameProgress) (float64, bool) {
	if team == "" {
		return 0, true
	}
	game, ok := games[CanonicalTeam(team)]
	if !ok {
		return 0, true
	}
	return Fraction(game.Period, game.Clock), false
}
