package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"playbracket/internal/standings"
)

func TestHitRatio(t *testing.T) {
	tests := []struct {
		name  string
		hit   int
		total int
		want  float64
	}{
		{"zero out of zero", 0, 0, 0},
		{"nonzero hit with zero total", 3, 0, 0},
		{"half", 1, 2, 50.0},
		{"all", 2, 2, 100.0},
		{"none", 0, 5, 0.0},
		{"third", 1, 3, 100.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, standings.HitRatio(tt.hit, tt.total), 1e-9)
		})
	}
}
