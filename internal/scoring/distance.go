package scoring

import "math"

// missingPenalty is added whenever a scale row or weapon datum required by a
// constraint is absent.
const missingPenalty = 20

// lbDistance measures how far v falls short of lower bound lb.
func lbDistance(lb, v int) int {
	if v < lb {
		return lb - v
	}
	return 0
}

// ubDistance measures how far v overshoots upper bound ub.
func ubDistance(ub, v int) int {
	if v > ub {
		return v - ub
	}
	return 0
}

// dist measures the distance of v from the half-open band [lb, ub):
// zero inside, distance to the nearest bound outside.
func dist(lb, ub, v int) int {
	if v >= lb && v < ub {
		return 0
	}
	if v < lb {
		return lb - v
	}
	return v - ub + 1
}

// affinity maps a cumulative distance score to a percentage:
// round(100 * e^(-0.2 * score)).
func affinity(score int) int {
	return int(math.Round(100 * math.Exp(-0.2*float64(score))))
}

// lbTier adds the shortfall against a tier value, or the missing penalty
// when the tier is absent from the table.
func lbTier(tier *int, v int) int {
	if tier == nil {
		return missingPenalty
	}
	return lbDistance(*tier, v)
}

// ubTier adds the overshoot against a tier value, or the missing penalty.
func ubTier(tier *int, v int) int {
	if tier == nil {
		return missingPenalty
	}
	return ubDistance(*tier, v)
}

// bandTier adds the distance from the [lo, hi) band; either bound missing
// yields the penalty.
func bandTier(lo, hi *int, v int) int {
	if lo == nil || hi == nil {
		return missingPenalty
	}
	return dist(*lo, *hi, v)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
