// Package encounter holds the XP math and the budget solver that turns a
// party vector and a difficulty band into a concrete creature or hazard
// multiset.
package encounter

import (
	"sort"

	"lorevault/internal/model"
)

// ExpRange is the inclusive XP band of one challenge tier for a given
// party size.
type ExpRange struct {
	LowerBound int `json:"lower_bound"`
	UpperBound int `json:"upper_bound"`
}

// creatureXP maps enemy_level - party_average (floored) to XP.
var creatureXP = map[int]int{
	-4: 20, -3: 30, -2: 40, -1: 60, 0: 80, 1: 120, 2: 160, 3: 240, 4: 320,
}

// creatureXPPWL is the variant table for Proficiency Without Level play,
// which spreads over a wider level difference range.
var creatureXPPWL = map[int]int{
	-7: 18, -6: 24, -5: 28, -4: 36, -3: 42, -2: 52, -1: 64,
	0: 80, 1: 96, 2: 120, 3: 144, 4: 180, 5: 216, 6: 270, 7: 320,
}

// Hazard XP tables, keyed the same way but carrying complexity.
var hazardSimpleXP = map[int]int{
	-4: 2, -3: 3, -2: 4, -1: 6, 0: 8, 1: 12, 2: 16, 3: 22, 4: 30,
}

var hazardComplexXP = map[int]int{
	-4: 10, -3: 15, -2: 20, -1: 30, 0: 40, 1: 60, 2: 80, 3: 120, 4: 160,
}

// Base budgets for a four-member party and the per-extra-member increment.
var challengeBudget = map[model.Challenge]int{
	model.ChallengeTrivial:    40,
	model.ChallengeLow:        60,
	model.ChallengeModerate:   80,
	model.ChallengeSevere:     120,
	model.ChallengeExtreme:    160,
	model.ChallengeImpossible: 320,
}

var challengeIncrement = map[model.Challenge]int{
	model.ChallengeTrivial:    10,
	model.ChallengeLow:        15,
	model.ChallengeModerate:   20,
	model.ChallengeSevere:     30,
	model.ChallengeExtreme:    40,
	model.ChallengeImpossible: 60,
}

func tableBounds(table map[int]int) (lo, hi int) {
	first := true
	for k := range table {
		if first {
			lo, hi, first = k, k, false
			continue
		}
		if k < lo {
			lo = k
		}
		if k > hi {
			hi = k
		}
	}
	return lo, hi
}

// CreatureXP returns the XP one enemy is worth against the party average.
// Below the minimum mapped difference the creature is too weak to matter
// and contributes zero; above the maximum it is clamped to the top value.
func CreatureXP(enemyLevel, partyAvg int, pwl bool) int {
	table := creatureXP
	if pwl {
		table = creatureXPPWL
	}
	diff := enemyLevel - partyAvg
	lo, hi := tableBounds(table)
	if diff < lo {
		return 0
	}
	if diff > hi {
		diff = hi
	}
	return table[diff]
}

// HazardXP is the hazard analogue of CreatureXP.
func HazardXP(hazardLevel, partyAvg int, complexity model.HazardComplexity) int {
	table := hazardSimpleXP
	if complexity == model.HazardComplex {
		table = hazardComplexXP
	}
	diff := hazardLevel - partyAvg
	lo, hi := tableBounds(table)
	if diff < lo {
		return 0
	}
	if diff > hi {
		diff = hi
	}
	return table[diff]
}

// PartyAverage floors the mean of the party level vector.
func PartyAverage(partyLevels []int) int {
	if len(partyLevels) == 0 {
		return 0
	}
	sum := 0
	for _, l := range partyLevels {
		sum += l
	}
	avg := sum / len(partyLevels)
	// Floor toward negative infinity for negative sums.
	if sum < 0 && sum%len(partyLevels) != 0 {
		avg--
	}
	return avg
}

// ScaledLowerBound is the XP floor of a challenge for the given party size.
func ScaledLowerBound(c model.Challenge, partySize int) int {
	extra := partySize - 4
	return challengeBudget[c] + extra*challengeIncrement[c]
}

// Band returns the inclusive XP range of a challenge for the party size.
// The upper bound is one short of the next tier's floor; the Impossible
// ceiling is its own floor doubled.
func Band(c model.Challenge, partySize int) ExpRange {
	lower := ScaledLowerBound(c, partySize)
	if c == model.ChallengeImpossible {
		return ExpRange{LowerBound: lower, UpperBound: lower * 2}
	}
	for i, ch := range model.AllChallenges {
		if ch == c {
			next := model.AllChallenges[i+1]
			return ExpRange{LowerBound: lower, UpperBound: ScaledLowerBound(next, partySize) - 1}
		}
	}
	return ExpRange{LowerBound: lower, UpperBound: lower}
}

// Classify picks the hardest challenge whose scaled floor is at or below
// the encounter XP; reaching the Impossible floor classifies Impossible.
func Classify(xp, partySize int) model.Challenge {
	result := model.ChallengeTrivial
	for _, c := range model.AllChallenges {
		if xp >= ScaledLowerBound(c, partySize) {
			result = c
		}
	}
	return result
}

// creatureEntries lists the (diff, xp) candidates of the active table in
// ascending XP order.
func creatureEntries(pwl bool) []tableEntry {
	table := creatureXP
	if pwl {
		table = creatureXPPWL
	}
	out := make([]tableEntry, 0, len(table))
	for diff, xp := range table {
		out = append(out, tableEntry{Diff: diff, XP: xp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].XP < out[j].XP })
	return out
}

// hazardEntries flattens both complexity tables into one candidate list so
// that identical XP values with different provenance stay distinct.
func hazardEntries() []tableEntry {
	var out []tableEntry
	for diff, xp := range hazardSimpleXP {
		out = append(out, tableEntry{Diff: diff, XP: xp, Complexity: model.HazardSimple})
	}
	for diff, xp := range hazardComplexXP {
		out = append(out, tableEntry{Diff: diff, XP: xp, Complexity: model.HazardComplex})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].XP != out[j].XP {
			return out[i].XP < out[j].XP
		}
		if out[i].Complexity != out[j].Complexity {
			return out[i].Complexity < out[j].Complexity
		}
		return out[i].Diff < out[j].Diff
	})
	return out
}

type tableEntry struct {
	Diff       int
	XP         int
	Complexity model.HazardComplexity
}
