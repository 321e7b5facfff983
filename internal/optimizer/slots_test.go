package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotNamesOf(slots []SlotDefinition) []string {
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = s.Name
	}
	return names
}

func TestBuildSlots_FullLeagueConfig(t *testing.T) {
	slots := BuildSlots([]string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "SUPER_FLEX", "DEF"})

	assert.Equal(t,
		[]string{"QB", "RB1", "RB2", "WR1", "WR2", "WR3", "TE", "DEF", "FLEX", "SFLEX"},
		slotNamesOf(slots))

	byName := make(map[string]SlotDefinition)
	for _, s := range slots {
		byName[s.Name] = s
	}
	assert.Equal(t, []string{"QB"}, byName["QB"].Eligible)
	assert.Equal(t, []string{"RB"}, byName["RB1"].Eligible)
	assert.Equal(t, []string{"RB", "WR", "TE"}, byName["FLEX"].Eligible)
	assert.Equal(t, []string{"QB", "RB", "WR", "TE"}, byName["SFLEX"].Eligible)
	assert.Equal(t, []string{"DEF"}, byName["DEF"].Eligible)
	for _, s := range slots {
		assert.False(t, s.Bench)
	}
}

func TestBuildSlots_DuplicatesGetSuffixes(t *testing.T) {
	slots := BuildSlots([]string{"WR", "WR"})
	assert.Equal(t, []string{"WR1", "WR2"}, slotNamesOf(slots))
}

func TestBuildSlots_SingleOccurrenceKeepsBareName(t *testing.T) {
	slots := BuildSlots([]string{"WR", "TE"})
	assert.Equal(t, []string{"WR", "TE"}, slotNamesOf(slots))
}

func TestBuildSlots_BenchOrderedLastWithFullEligibility(t *testing.T) {
	slots := BuildSlots([]string{"BN", "QB", "FLEX", "BN"})

	require.Len(t, slots, 4)
	assert.Equal(t, []string{"QB", "FLEX", "BN1", "BN2"}, slotNamesOf(slots))
	assert.True(t, slots[2].Bench)
	assert.Equal(t, []string{"QB", "RB", "WR", "TE", "K", "DEF"}, slots[2].Eligible)
}

func TestBuildSlots_IRIsBench(t *testing.T) {
	slots := BuildSlots([]string{"IR", "QB"})
	assert.Equal(t, []string{"QB", "IR"}, slotNamesOf(slots))
	assert.True(t, slots[1].Bench)
}

func TestBuildSlots_UnknownCodeIsSinglePosition(t *testing.T) {
	slots := BuildSlots([]string{"DL"})
	require.Len(t, slots, 1)
	assert.Equal(t, "DL", slots[0].Name)
	assert.Equal(t, []string{"DL"}, slots[0].Eligible)
}
