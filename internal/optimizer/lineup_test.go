package optimizer

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestball-live/bestballbot/internal/models"
)

func pool(entries ...[3]interface{}) []models.Player {
	players := make([]models.Player, len(entries))
	for i, e := range entries {
		players[i] = models.Player{
			ID:         fmt.Sprintf("p%d", i+1),
			Position:   e[0].(string),
			Points:     float64(e[1].(int)),
			Optimistic: float64(e[2].(int)),
		}
	}
	return players
}

// assignedSlot returns the slot name the given player id landed in.
func assignedSlot(l Lineup, id string) string {
	for _, a := range l {
		if a.Player != nil && a.Player.ID == id {
			return a.Slot.Name
		}
	}
	return ""
}

func TestAssign_SinglePlayerSingleSlot(t *testing.T) {
	players := pool([3]interface{}{"QB", 10, 10})
	lineup := Assign(players, BuildSlots([]string{"QB"}), CurrentPoints)

	require.Len(t, lineup, 1)
	assert.Equal(t, "p1", lineup[0].Player.ID)
}

func TestAssign_TwoReceiversByEachKey(t *testing.T) {
	players := pool(
		[3]interface{}{"WR", 9, 11},
		[3]interface{}{"WR", 8, 12},
	)
	slots := BuildSlots([]string{"WR", "WR"})

	current := Assign(players, slots, CurrentPoints)
	assert.Equal(t, "WR1", assignedSlot(current, "p1"))
	assert.Equal(t, "WR2", assignedSlot(current, "p2"))

	optimal := Assign(players, slots, OptimisticPoints)
	assert.Equal(t, "WR2", assignedSlot(optimal, "p1"))
	assert.Equal(t, "WR1", assignedSlot(optimal, "p2"))
}

func TestAssign_BenchAbsorbsTheLesserPlayer(t *testing.T) {
	players := pool(
		[3]interface{}{"WR", 7, 11},
		[3]interface{}{"WR", 8, 12},
	)
	slots := BuildSlots([]string{"WR", "BN"})

	current := Assign(players, slots, CurrentPoints)
	assert.Equal(t, "BN", assignedSlot(current, "p1"))
	assert.Equal(t, "WR", assignedSlot(current, "p2"))
}

func TestAssign_FlexGrid(t *testing.T) {
	players := pool(
		[3]interface{}{"RB", 7, 11},
		[3]interface{}{"RB", 9, 10},
		[3]interface{}{"WR", 8, 12},
		[3]interface{}{"WR", 6, 9},
	)
	slots := BuildSlots([]string{"RB", "WR", "FLEX", "BN"})

	current := Assign(players, slots, CurrentPoints)
	assert.Equal(t, "FLEX", assignedSlot(current, "p1"))
	assert.Equal(t, "RB", assignedSlot(current, "p2"))
	assert.Equal(t, "WR", assignedSlot(current, "p3"))
	assert.Equal(t, "BN", assignedSlot(current, "p4"))

	optimal := Assign(players, slots, OptimisticPoints)
	assert.Equal(t, "RB", assignedSlot(optimal, "p1"))
	assert.Equal(t, "FLEX", assignedSlot(optimal, "p2"))
	assert.Equal(t, "WR", assignedSlot(optimal, "p3"))
	assert.Equal(t, "BN", assignedSlot(optimal, "p4"))
}

func TestAssign_SparseRosterLeavesSlotsEmpty(t *testing.T) {
	players := pool(
		[3]interface{}{"QB", 12, 20},
		[3]interface{}{"WR", 9, 15},
		[3]interface{}{"TE", 7, 10},
		[3]interface{}{"RB", 5, 8},
	)
	slots := BuildSlots([]string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "SUPER_FLEX", "DEF"})

	lineup := Assign(players, slots, CurrentPoints)
	require.Len(t, lineup, len(slots))

	assert.Equal(t, "QB", assignedSlot(lineup, "p1"))
	assert.Equal(t, "WR1", assignedSlot(lineup, "p2"))
	assert.Equal(t, "TE", assignedSlot(lineup, "p3"))
	assert.Equal(t, "RB1", assignedSlot(lineup, "p4"))

	filled := 0
	for _, a := range lineup {
		if a.Player != nil {
			filled++
		}
	}
	assert.Equal(t, 4, filled, "FLEX, SFLEX and the remaining slots stay empty")
}

func TestAssign_EligibilityAndExclusivityProperties(t *testing.T) {
	positions := []string{"QB", "RB", "WR", "TE", "K", "DEF"}
	codes := []string{"QB", "RB", "WR", "TE", "K", "DEF", "FLEX", "SUPER_FLEX", "BN"}
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		players := make([]models.Player, rng.Intn(20))
		for i := range players {
			players[i] = models.Player{
				ID:         fmt.Sprintf("p%d", i),
				Position:   positions[rng.Intn(len(positions))],
				Points:     float64(rng.Intn(300)) / 10,
				Optimistic: float64(rng.Intn(300)) / 10,
			}
		}

		rosterPositions := make([]string, rng.Intn(15))
		for i := range rosterPositions {
			rosterPositions[i] = codes[rng.Intn(len(codes))]
		}
		slots := BuildSlots(rosterPositions)

		lineup := Assign(players, slots, OptimisticPoints)
		require.Len(t, lineup, len(slots))

		seen := make(map[string]bool)
		for _, a := range lineup {
			if a.Player == nil {
				continue
			}
			assert.True(t, a.Slot.Allows(a.Player.Position),
				"player %s (%s) in slot %s", a.Player.ID, a.Player.Position, a.Slot.Name)
			assert.False(t, seen[a.Player.ID], "player %s assigned twice", a.Player.ID)
			seen[a.Player.ID] = true
		}
	}
}

func TestAssign_DoesNotMutateInputs(t *testing.T) {
	players := pool(
		[3]interface{}{"WR", 1, 1},
		[3]interface{}{"WR", 2, 2},
		[3]interface{}{"WR", 3, 3},
	)
	slots := BuildSlots([]string{"WR", "WR"})

	Assign(players, slots, CurrentPoints)

	assert.Equal(t, "p1", players[0].ID)
	assert.Equal(t, "p2", players[1].ID)
	assert.Equal(t, "p3", players[2].ID)
}
