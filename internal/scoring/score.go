package scoring

import (
	"math"

	"github.com/bestball-live/bestballbot/internal/models"
)

// Score converts a raw stat line into fantasy points under the league's
// scoring settings. Only categories present in both the stat line and the
// table contribute; everything else counts as zero. A nil stat line scores 0.
func Score(stats models.StatLine, table models.ScoringTable) float64 {
	var total float64
	for category, value := range stats {
		if math.IsNaN(value) {
			continue
		}
		weight, ok := table[category]
		if !ok {
			continue
		}
		total += value * weight
	}
	return total
}
