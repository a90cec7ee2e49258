package scoring

import (
	"testing"

	"lorevault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func iptr(n int) *int { return &n }

func testScales() *Scales {
	return &Scales{
		Ability: map[int]ScaleRow{
			3: {Extreme: iptr(5), High: iptr(4), Moderate: iptr(2), Low: iptr(1)},
		},
		AC: map[int]ScaleRow{
			3: {Extreme: iptr(21), High: iptr(19), Moderate: iptr(18), Low: iptr(16)},
		},
		HP: map[int]HPScaleRow{
			3: {HighUB: 53, HighLB: 42, LowUB: 28, LowLB: 21},
		},
		Perception: map[int]ScaleRow{
			3: {Extreme: iptr(11), High: iptr(9), Moderate: iptr(7), Low: iptr(5)},
		},
		SavingThrow: map[int]ScaleRow{
			3: {Extreme: iptr(14), High: iptr(12), Moderate: iptr(9), Low: iptr(6)},
		},
		Skill: map[int]ScaleRow{
			3: {Extreme: iptr(13), High: iptr(11), Moderate: iptr(9), Low: iptr(7)},
		},
		StrikeBonus: map[int]ScaleRow{
			3: {Extreme: iptr(14), High: iptr(12), Moderate: iptr(10), Low: iptr(8)},
		},
		StrikeDamage: map[int]StrikeDamageRow{
			3: {Extreme: "2d10+4 (15)", High: "2d8+2 (11)", Moderate: "2d6+1 (8)", Low: "1d6+3 (6)"},
		},
		SpellDC: map[int]ScaleRow{
			3: {Extreme: iptr(23), High: iptr(20), Moderate: iptr(17), Low: iptr(14)},
		},
	}
}

func bruteProfile() Profile {
	return Profile{
		Level: 3, Perception: 4, HP: 50, AC: 18,
		Str: 4, Dex: 1, Con: 3, Int: -1, Wis: 0, Cha: -1,
		Fortitude: 12, Reflex: 5, Will: 5,
		Weapons: []WeaponProfile{{Name: "greataxe", ToHit: iptr(12), DamageAvg: iptr(12)}},
	}
}

func TestBruteScoresPerfectFit(t *testing.T) {
	scores := ScoreRoles(bruteProfile(), testScales())
	assert.Equal(t, 100, scores[model.RoleBrute])
	// A melee bruiser without spells is a poor spellcaster.
	assert.Less(t, scores[model.RoleSpellcaster], 10)
}

func TestSpellcasterScoresPerfectFit(t *testing.T) {
	p := Profile{
		Level: 3, Perception: 7, HP: 25, AC: 17,
		Str: 0, Dex: 2, Con: 1, Int: 4, Wis: 2, Cha: 1,
		Fortitude: 5, Reflex: 8, Will: 12,
		SpellDC: iptr(20), SpellCount: 3,
	}
	scores := ScoreRoles(p, testScales())
	assert.Equal(t, 100, scores[model.RoleSpellcaster])
	assert.Less(t, scores[model.RoleBrute], 20)
}

func TestSniperNeedsRangedWeapon(t *testing.T) {
	p := Profile{
		Level: 3, Perception: 9, HP: 30, AC: 18,
		Str: 1, Dex: 4, Con: 1, Int: 0, Wis: 2, Cha: 0,
		Fortitude: 6, Reflex: 12, Will: 9,
		Weapons: []WeaponProfile{
			{Name: "dagger", ToHit: iptr(12), DamageAvg: iptr(8), Ranged: false},
		},
	}
	meleeOnly := ScoreRoles(p, testScales())[model.RoleSniper]

	p.Weapons = append(p.Weapons, WeaponProfile{
		Name: "longbow", ToHit: iptr(12), DamageAvg: iptr(8), Ranged: true,
	})
	withBow := ScoreRoles(p, testScales())[model.RoleSniper]

	assert.Greater(t, withBow, meleeOnly)
	assert.Equal(t, 100, withBow)
}

func TestSkirmisherSpeedConstraint(t *testing.T) {
	p := Profile{
		Level: 3, Dex: 4, Fortitude: 5, Reflex: 12,
		Speeds: map[string]int{"land": 35},
	}
	fast := ScoreRoles(p, testScales())[model.RoleSkirmisher]
	assert.Equal(t, 100, fast)

	p.Speeds = map[string]int{"land": 20}
	slow := ScoreRoles(p, testScales())[model.RoleSkirmisher]
	assert.Less(t, slow, fast)
}

func TestSoldierPrefersAttackOfOpportunity(t *testing.T) {
	p := Profile{
		Level: 3, AC: 19, Str: 4, Fortitude: 12,
		Weapons: []WeaponProfile{{Name: "longsword", ToHit: iptr(12), DamageAvg: iptr(11)}},
	}
	none := ScoreRoles(p, testScales())[model.RoleSoldier]

	p.OffensiveActions = []string{"Power Slam"}
	some := ScoreRoles(p, testScales())[model.RoleSoldier]

	p.OffensiveActions = []string{"Attack of Opportunity"}
	aoo := ScoreRoles(p, testScales())[model.RoleSoldier]

	assert.Greater(t, some, none)
	assert.Greater(t, aoo, some)
	assert.Equal(t, 100, aoo)
}

func TestMissingScaleRowPenalized(t *testing.T) {
	// Level 9 has no rows in the fixture; everything should bottom out.
	p := bruteProfile()
	p.Level = 9
	scores := ScoreRoles(p, testScales())
	for role, v := range scores {
		assert.LessOrEqual(t, v, 1, "role %s", role)
	}
}

func TestScoresAlwaysInRange(t *testing.T) {
	profiles := []Profile{
		bruteProfile(),
		{Level: 3},
		{Level: -1, HP: 5},
		{Level: 25, Str: 10, Weapons: []WeaponProfile{{Name: "claw"}}},
	}
	for _, p := range profiles {
		for role, v := range ScoreRoles(p, testScales()) {
			require.GreaterOrEqual(t, v, 0, "role %s", role)
			require.LessOrEqual(t, v, 100, "role %s", role)
		}
	}
}

func TestCeilHalf(t *testing.T) {
	assert.Equal(t, 0, ceilHalf(-3))
	assert.Equal(t, 0, ceilHalf(0))
	assert.Equal(t, 1, ceilHalf(1))
	assert.Equal(t, 1, ceilHalf(2))
	assert.Equal(t, 2, ceilHalf(3))
	assert.Equal(t, 10, ceilHalf(20))
}
