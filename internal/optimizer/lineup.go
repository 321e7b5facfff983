package optimizer

import (
	"sort"

	"github.com/bestball-live/bestballbot/internal/models"
)

// ScoreKey selects which derived score drives an assignment pass.
type ScoreKey func(models.Player) float64

// CurrentPoints orders players by what they have actually scored, producing
// the lineup that is locked in right now.
func CurrentPoints(p models.Player) float64 { return p.Points }

// OptimisticPoints orders players by the blended best estimate, producing
// the best achievable final lineup.
func OptimisticPoints(p models.Player) float64 { return p.Optimistic }

// Assignment pairs a slot with the player filling it, nil when unfilled.
type Assignment struct {
	Slot   SlotDefinition
	Player *models.Player
}

type Lineup []Assignment

// Assign fills slots greedily: players are ranked descending by key (stable
// on input order for ties) and each slot, in catalog order, takes the
// highest-ranked unassigned player its eligibility set allows. A slot with
// no eligible player left stays empty; that is expected when a roster is
// smaller than the slot list. The greedy pass is deterministic but not a
// true optimal assignment across all slots at once.
func Assign(players []models.Player, slots []SlotDefinition, key ScoreKey) Lineup {
	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return key(players[order[i]]) > key(players[order[j]])
	})

	used := make([]bool, len(players))
	lineup := make(Lineup, 0, len(slots))
	for _, slot := range slots {
		assignment := Assignment{Slot: slot}
		for _, idx := range order {
			if used[idx] || !slot.Allows(players[idx].Position) {
				continue
			}
			used[idx] = true
			assignment.Player = &players[idx]
			break
		}
		lineup = append(lineup, assignment)
	}
	return lineup
}

// TeamTotal sums the keyed score over filled starting slots. Bench players
// never contribute.
func TeamTotal(lineup Lineup, key ScoreKey) float64 {
	var total float64
	for _, a := range lineup {
		if a.Slot.Bench || a.Player == nil {
			continue
		}
		total += key(*a.Player)
	}
	return total
}
