package optimizer

import (
	"fmt"
	"sort"
)

// SlotDefinition is one uniquely-named lineup slot and the positions that
// may fill it.
type SlotDefinition struct {
	Name     string
	Eligible []string
	Bench    bool
}

// Allows reports whether a player position can fill this slot.
func (s SlotDefinition) Allows(position string) bool {
	for _, p := range s.Eligible {
		if p == position {
			return true
		}
	}
	return false
}

// Positions a league can roster; bench slots accept any of them.
var rosterablePositions = []string{"QB", "RB", "WR", "TE", "K", "DEF"}

// Eligible-position families per slot-category code, as Sleeper configures
// them in roster_positions.
var slotEligibility = map[string][]string{
	"QB":         {"QB"},
	"RB":         {"RB"},
	"WR":         {"WR"},
	"TE":         {"TE"},
	"K":          {"K"},
	"DEF":        {"DEF"},
	"FLEX":       {"RB", "WR", "TE"},
	"REC_FLEX":   {"WR", "TE"},
	"SUPER_FLEX": {"QB", "RB", "WR", "TE"},
}

var benchCodes = map[string]bool{
	"BN":   true,
	"IR":   true,
	"TAXI": true,
}

// Display names for codes whose wire form is unwieldy.
var slotNames = map[string]string{
	"SUPER_FLEX": "SFLEX",
	"REC_FLEX":   "RFLEX",
}

// BuildSlots expands a league's flat roster_positions list into uniquely
// named slots. A code appearing N>1 times gets suffixes 1..N ("RB","RB" ->
// "RB1","RB2"); a single occurrence keeps the bare name. The returned order
// is the assignment order: narrower eligibility first and all starting slots
// before bench, so specialist slots are never starved by flex assignment.
func BuildSlots(rosterPositions []string) []SlotDefinition {
	counts := make(map[string]int, len(rosterPositions))
	for _, code := range rosterPositions {
		counts[code]++
	}

	slots := make([]SlotDefinition, 0, len(rosterPositions))
	seen := make(map[string]int, len(counts))
	for _, code := range rosterPositions {
		seen[code]++
		name := code
		if display, ok := slotNames[code]; ok {
			name = display
		}
		if counts[code] > 1 {
			name = fmt.Sprintf("%s%d", name, seen[code])
		}
		slots = append(slots, SlotDefinition{
			Name:     name,
			Eligible: eligibleFor(code),
			Bench:    benchCodes[code],
		})
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Bench != slots[j].Bench {
			return !slots[i].Bench
		}
		return len(slots[i].Eligible) < len(slots[j].Eligible)
	})

	return slots
}

func eligibleFor(code string) []string {
	if benchCodes[code] {
		return append([]string(nil), rosterablePositions...)
	}
	if eligible, ok := slotEligibility[code]; ok {
		return append([]string(nil), eligible...)
	}
	// Unknown codes are treated as single-position slots for that code.
	return []string{code}
}
