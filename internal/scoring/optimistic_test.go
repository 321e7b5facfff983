package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimistic(t *testing.T) {
	tests := []struct {
		name      string
		actual    float64
		projected float64
		fraction  float64
		want      float64
	}{
		{"not started", 0, 8, 0, 8},
		{"banked plus remaining share", 10, 96, 2.0 / 3, 42},
		{"game over keeps actual only", 10, 96, 1, 10},
		{"over-delivering keeps the surplus", 30, 12, 0.5, 36},
		{"inactive with nothing projected", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Optimistic(tt.actual, tt.projected, tt.fraction), 1e-9)
		})
	}
}

func TestOptimistic_FinishedIgnoresProjection(t *testing.T) {
	for _, projected := range []float64{0, 5, 500} {
		assert.InDelta(t, 7.5, Optimistic(7.5, projected, 1), 1e-9)
	}
}
