// Package scoring derives the seven role-affinity percentages of a creature
// by measuring its stats against the per-level scale tables.
package scoring

import (
	"regexp"
	"strconv"

	"lorevault/internal/model"
)

// ScaleRow holds the tier values of one scale table at one level. Any tier a
// table does not define stays nil and counts as a missing datum.
type ScaleRow struct {
	Extreme  *int
	High     *int
	Moderate *int
	Low      *int
	Terrible *int
}

// HPScaleRow keeps the high/low bands of the hit-point table, each an
// inclusive range.
type HPScaleRow struct {
	HighUB int
	HighLB int
	LowUB  int
	LowLB  int
}

// StrikeDamageRow keeps damage tier expressions like "2d6 (8)"; the
// parenthesized average is what scoring compares against.
type StrikeDamageRow struct {
	Extreme  string
	High     string
	Moderate string
	Low      string
}

// Scales bundles every per-level table, keyed by creature level.
type Scales struct {
	Ability      map[int]ScaleRow
	AC           map[int]ScaleRow
	HP           map[int]HPScaleRow
	Perception   map[int]ScaleRow
	SavingThrow  map[int]ScaleRow
	Skill        map[int]ScaleRow
	StrikeBonus  map[int]ScaleRow
	StrikeDamage map[int]StrikeDamageRow
	SpellDC      map[int]ScaleRow
	AreaDamage   map[int]ScaleRow
	Item         map[int]ScaleRow
	ResWeak      map[int]ScaleRow
}

var damageAvgRe = regexp.MustCompile(`\((\d+)\)`)

// DamageAverage extracts the parenthesized average from a damage expression
// like "2d6 (8)". Returns false when no average is present.
func DamageAverage(expr string) (int, bool) {
	m := damageAvgRe.FindStringSubmatch(expr)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Profile is everything scoring needs to know about one creature,
// assembled by the store from the normalized tables.
type Profile struct {
	Level      int
	Perception int
	HP         int
	AC         int

	// Ability modifiers.
	Str, Dex, Con, Int, Wis, Cha int

	Fortitude, Reflex, Will int

	Skills map[string]int
	Speeds map[string]int

	Weapons []WeaponProfile

	// Action names (or slugs) flagged offensive in the action table.
	OffensiveActions []string

	SpellDC    *int
	SpellCount int
}

// WeaponProfile is the slice of a weapon row scoring cares about.
type WeaponProfile struct {
	Name      string
	ToHit     *int
	DamageAvg *int
	Ranged    bool
}

// RoleScores maps each role to its affinity percentage.
type RoleScores map[model.Role]int
