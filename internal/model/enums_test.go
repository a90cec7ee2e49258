package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Unknown strings resolve to the enum default rather than erroring.
func TestParseDefaults(t *testing.T) {
	assert.Equal(t, SizeMedium, ParseSize("enormous"))
	assert.Equal(t, RarityCommon, ParseRarity("mythic"))
	assert.Equal(t, AlignmentNo, ParseAlignment("XX"))
	assert.Equal(t, TypeMonster, ParseCreatureType("beast"))
	assert.Equal(t, VariantBase, ParseVariant("super"))
	assert.Equal(t, ChallengeModerate, ParseChallenge("deadly"))
	assert.Equal(t, ItemEquipment, ParseItemType("gadget"))
	assert.Equal(t, VersionAny, ParseGameSystemVersion(""))
	assert.Equal(t, SortByID, ParseSortField("unknown"))
	assert.Equal(t, OrderAscending, ParseOrder("sideways"))
	assert.Equal(t, Pathfinder, ParseGameSystem("unknown"))
}

func TestParseCaseInsensitive(t *testing.T) {
	assert.Equal(t, SizeGargantuan, ParseSize("gargantuan"))
	assert.Equal(t, RarityUnique, ParseRarity("UNIQUE"))
	assert.Equal(t, VariantElite, ParseVariant("Elite"))
	assert.Equal(t, Starfinder, ParseGameSystem("Starfinder"))
	assert.Equal(t, OrderDescending, ParseOrder("descending"))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("brute")
	assert.True(t, ok)
	assert.Equal(t, RoleBrute, r)

	_, ok = ParseRole("tank")
	assert.False(t, ok)
}

func TestRoleColumns(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range AllRoles {
		col := r.Column()
		assert.NotEmpty(t, col)
		assert.False(t, seen[col], "duplicate column %s", col)
		seen[col] = true
	}
}

func TestSizeOrdinal(t *testing.T) {
	assert.Equal(t, 0, SizeTiny.Ordinal())
	assert.Equal(t, 5, SizeGargantuan.Ordinal())
	assert.Less(t, SizeSmall.Ordinal(), SizeLarge.Ordinal())
}

func TestArchiveLinkFor(t *testing.T) {
	id := int64(42)
	link := ArchiveLinkFor(&id, TypeMonster)
	assert.NotNil(t, link)
	assert.Equal(t, "https://2e.aonprd.com/Monsters.aspx?ID=42", *link)

	link = ArchiveLinkFor(&id, TypeNPC)
	assert.Equal(t, "https://2e.aonprd.com/NPCs.aspx?ID=42", *link)

	assert.Nil(t, ArchiveLinkFor(nil, TypeMonster))
}

func TestGameSystemWireRoundTrip(t *testing.T) {
	for _, gs := range []GameSystem{Pathfinder, Starfinder} {
		assert.Equal(t, gs, GameSystemFromWire(gs.WireIndex()))
	}
}
