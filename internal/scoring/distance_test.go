package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistances(t *testing.T) {
	assert.Equal(t, 0, lbDistance(5, 7))
	assert.Equal(t, 3, lbDistance(5, 2))
	assert.Equal(t, 0, ubDistance(5, 3))
	assert.Equal(t, 4, ubDistance(5, 9))
}

func TestDistBand(t *testing.T) {
	// [3, 7): inclusive lower, exclusive upper.
	assert.Equal(t, 0, dist(3, 7, 3))
	assert.Equal(t, 0, dist(3, 7, 6))
	assert.Equal(t, 1, dist(3, 7, 7))
	assert.Equal(t, 1, dist(3, 7, 2))
	assert.Equal(t, 3, dist(3, 7, 0))
	assert.Equal(t, 4, dist(3, 7, 10))
}

func TestAffinity(t *testing.T) {
	assert.Equal(t, 100, affinity(0))
	assert.Equal(t, 82, affinity(1))
	assert.Equal(t, 67, affinity(2))
	assert.Equal(t, 14, affinity(10))
	assert.Equal(t, 0, affinity(50))
}

func TestAffinityRange(t *testing.T) {
	for score := 0; score <= 200; score++ {
		a := affinity(score)
		assert.GreaterOrEqual(t, a, 0)
		assert.LessOrEqual(t, a, 100)
	}
}

func TestMissingTiersPenalized(t *testing.T) {
	v := 12
	assert.Equal(t, missingPenalty, lbTier(nil, 5))
	assert.Equal(t, missingPenalty, ubTier(nil, 5))
	assert.Equal(t, missingPenalty, bandTier(nil, &v, 5))
	assert.Equal(t, missingPenalty, bandTier(&v, nil, 5))
}

func TestDamageAverage(t *testing.T) {
	tests := []struct {
		expr string
		want int
		ok   bool
	}{
		{"2d6 (8)", 8, true},
		{"4d10+12 (34)", 34, true},
		{"1d4 (2)", 2, true},
		{"2d6", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := DamageAverage(tt.expr)
		assert.Equal(t, tt.ok, ok, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}
