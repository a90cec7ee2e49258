package encounter

import (
	"testing"

	"lorevault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatureCombosStayInBand(t *testing.T) {
	band := Band(model.ChallengeModerate, 4)
	combos := CreatureCombos(band, 5, false)
	require.NotEmpty(t, combos)

	for _, combo := range combos {
		assert.GreaterOrEqual(t, combo.XP, band.LowerBound)
		assert.LessOrEqual(t, combo.XP, band.UpperBound)
		assert.LessOrEqual(t, len(combo.Levels), maxEnemies)

		sum := 0
		for _, l := range combo.Levels {
			assert.GreaterOrEqual(t, l, minCreatureLevel)
			sum += CreatureXP(l, 5, false)
		}
		assert.Equal(t, combo.XP, sum)
	}
}

// The walk keeps candidate indexes non-decreasing, so no multiset shows up
// twice under reordering.
func TestCreatureCombosNoDuplicates(t *testing.T) {
	combos := CreatureCombos(Band(model.ChallengeLow, 4), 3, false)
	seen := map[string]bool{}
	for _, combo := range combos {
		key := ""
		for _, l := range combo.Levels {
			key += string(rune('a' + l + 8))
		}
		assert.False(t, seen[key], "duplicate multiset %v", combo.Levels)
		seen[key] = true
	}
}

// At a low party average the deep negative differences resolve below the
// published level floor and must be pruned.
func TestCreatureCombosLevelFloor(t *testing.T) {
	combos := CreatureCombos(Band(model.ChallengeSevere, 4), 0, false)
	require.NotEmpty(t, combos)
	for _, combo := range combos {
		for _, l := range combo.Levels {
			assert.GreaterOrEqual(t, l, -1)
		}
	}
}

// A 30 XP budget is reachable by a lone simple hazard four above the party
// and by a lone complex hazard one below it; both must be offered.
func TestHazardCombosComplexityCollision(t *testing.T) {
	combos := HazardCombos(ExpRange{LowerBound: 30, UpperBound: 30}, 0)

	var simpleSolo, complexSolo bool
	for _, combo := range combos {
		if len(combo.Picks) != 1 {
			continue
		}
		p := combo.Picks[0]
		if p.Complexity == model.HazardSimple && p.Level == 4 {
			simpleSolo = true
		}
		if p.Complexity == model.HazardComplex && p.Level == -1 {
			complexSolo = true
		}
	}
	assert.True(t, simpleSolo, "missing the lone simple hazard option")
	assert.True(t, complexSolo, "missing the lone complex hazard option")
}

func TestTemplateCombo(t *testing.T) {
	combo, ok := TemplateCombo(model.GroupMookSquad, 5, false)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1}, combo.Levels)
	assert.Equal(t, 120, combo.XP)

	combo, ok = TemplateCombo(model.GroupBossAndLieutenant, 3, false)
	require.True(t, ok)
	assert.Equal(t, []int{5, 3}, combo.Levels)
	assert.Equal(t, 240, combo.XP)

	// Lackeys four below a level-2 party would sit under the level floor.
	_, ok = TemplateCombo(model.GroupBossAndLackeys, 2, false)
	assert.False(t, ok)

	_, ok = TemplateCombo(model.AdventureGroup("NotATemplate"), 5, false)
	assert.False(t, ok)
}
