package encounter

import (
	"lorevault/internal/model"
)

// maxEnemies caps how many members one generated encounter may hold.
const maxEnemies = 10

// minCreatureLevel is the floor of published creature levels; combinations
// that would require a weaker enemy are unfillable and get pruned.
const minCreatureLevel = -1

// CreatureCombo is one level multiset whose XP sum lands in the target band.
type CreatureCombo struct {
	Levels []int
	XP     int
}

// HazardPick is one hazard slot of a hazard combination.
type HazardPick struct {
	Level      int
	Complexity model.HazardComplexity
}

// HazardCombo is the hazard analogue of CreatureCombo.
type HazardCombo struct {
	Picks []HazardPick
	XP    int
}

// groupTemplates are the fixed level-difference compositions offered as an
// alternative to budget search.
var groupTemplates = map[model.AdventureGroup][]int{
	model.GroupBossAndLackeys:       {2, -4, -4, -4, -4},
	model.GroupBossAndLieutenant:    {2, 0},
	model.GroupEliteEnemies:         {0, 0, 0},
	model.GroupLieutenantAndLackeys: {0, -4, -4, -4, -4},
	model.GroupMatedPair:            {0, 0},
	model.GroupTroop:                {0, -2, -2},
	model.GroupMookSquad:            {-4, -4, -4, -4, -4, -4},
}

// TemplateCombo resolves an adventure group template against the party
// average, returning the concrete level multiset and its XP.
func TemplateCombo(group model.AdventureGroup, partyAvg int, pwl bool) (CreatureCombo, bool) {
	diffs, ok := groupTemplates[group]
	if !ok {
		return CreatureCombo{}, false
	}
	combo := CreatureCombo{Levels: make([]int, 0, len(diffs))}
	for _, d := range diffs {
		level := partyAvg + d
		if level < minCreatureLevel {
			return CreatureCombo{}, false
		}
		combo.Levels = append(combo.Levels, level)
		combo.XP += CreatureXP(level, partyAvg, pwl)
	}
	return combo, true
}

// CreatureCombos enumerates every level multiset of at most maxEnemies
// members whose XP sum falls inside the band. Candidates are walked with a
// non-decreasing index so each multiset appears exactly once.
func CreatureCombos(band ExpRange, partyAvg int, pwl bool) []CreatureCombo {
	entries := creatureEntries(pwl)
	// Drop entries that resolve below the level floor.
	usable := entries[:0:0]
	for _, e := range entries {
		if partyAvg+e.Diff >= minCreatureLevel {
			usable = append(usable, e)
		}
	}

	var out []CreatureCombo
	var pick []tableEntry
	var walk func(start, sum int)
	walk = func(start, sum int) {
		if sum >= band.LowerBound && sum <= band.UpperBound && len(pick) > 0 {
			combo := CreatureCombo{Levels: make([]int, len(pick)), XP: sum}
			for i, e := range pick {
				combo.Levels[i] = partyAvg + e.Diff
			}
			out = append(out, combo)
		}
		if len(pick) == maxEnemies {
			return
		}
		for i := start; i < len(usable); i++ {
			next := sum + usable[i].XP
			if next > band.UpperBound {
				// Entries are XP-sorted, nothing further fits.
				return
			}
			pick = append(pick, usable[i])
			walk(i, next)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0, 0)
	return out
}

// HazardCombos enumerates hazard multisets over both complexity tables.
// Two entries with equal XP but different complexity stay distinct picks.
func HazardCombos(band ExpRange, partyAvg int) []HazardCombo {
	entries := hazardEntries()
	usable := entries[:0:0]
	for _, e := range entries {
		if partyAvg+e.Diff >= minCreatureLevel {
			usable = append(usable, e)
		}
	}

	var out []HazardCombo
	var pick []tableEntry
	var walk func(start, sum int)
	walk = func(start, sum int) {
		if sum >= band.LowerBound && sum <= band.UpperBound && len(pick) > 0 {
			combo := HazardCombo{Picks: make([]HazardPick, len(pick)), XP: sum}
			for i, e := range pick {
				combo.Picks[i] = HazardPick{Level: partyAvg + e.Diff, Complexity: e.Complexity}
			}
			out = append(out, combo)
		}
		if len(pick) == maxEnemies {
			return
		}
		for i := start; i < len(usable); i++ {
			next := sum + usable[i].XP
			if next > band.UpperBound {
				return
			}
			pick = append(pick, usable[i])
			walk(i, next)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0, 0)
	return out
}
