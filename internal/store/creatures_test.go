package store

import (
	"context"
	"testing"

	"lorevault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCreaturesSortAndPage(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	total, page, err := c.ListCreatures(ctx, model.Pathfinder, CreatureFilter{},
		model.SortByName, model.OrderAscending, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Goblin Archer", page[0].Name)
	assert.Equal(t, "Goblin Warrior", page[1].Name)

	// Cursor past the total yields an empty slice with the same total.
	total, page, err = c.ListCreatures(ctx, model.Pathfinder, CreatureFilter{},
		model.SortByName, model.OrderAscending, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, page)
}

func TestListCreaturesLevelFilter(t *testing.T) {
	c := rebuiltTestCatalog(t)

	total, page, err := c.ListCreatures(context.Background(), model.Pathfinder,
		CreatureFilter{Levels: []int{3}}, model.SortByID, model.OrderAscending, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, page, 1)
	assert.Equal(t, "Hell Hound", page[0].Name)
}

func TestListCreaturesTraitIntersection(t *testing.T) {
	c := rebuiltTestCatalog(t)

	total, page, err := c.ListCreatures(context.Background(), model.Pathfinder,
		CreatureFilter{Traits: []string{"goblin"}}, model.SortByID, model.OrderAscending, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, cr := range page {
		assert.Contains(t, cr.Traits, "goblin")
	}
}

// Trait and family filters ignore the caller's casing; family matches on
// substrings.
func TestListCreaturesCaseInsensitiveFilters(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	total, _, err := c.ListCreatures(ctx, model.Pathfinder,
		CreatureFilter{Traits: []string{"Goblin"}}, model.SortByID, model.OrderAscending, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, page, err := c.ListCreatures(ctx, model.Pathfinder,
		CreatureFilter{Families: []string{"gob"}}, model.SortByID, model.OrderAscending, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, cr := range page {
		assert.Equal(t, "Goblin", cr.Family)
	}
}

func TestListCreaturesModalityAndVersion(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	total, _, err := c.ListCreatures(ctx, model.Pathfinder,
		CreatureFilter{Spellcaster: []bool{true}}, model.SortByID, model.OrderAscending, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, page, err := c.ListCreatures(ctx, model.Pathfinder,
		CreatureFilter{Version: model.VersionRemaster}, model.SortByID, model.OrderAscending, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Imp Occultist", page[0].Name)
}

func TestGetCreatureDetail(t *testing.T) {
	c := rebuiltTestCatalog(t)

	d, err := c.GetCreature(context.Background(), model.Pathfinder, 2)
	require.NoError(t, err)

	assert.Equal(t, "Hell Hound", d.Core.Name)
	assert.Equal(t, model.VariantBase, d.VariantData.Variant)
	assert.Equal(t, 3, d.VariantData.Level)

	require.NotNil(t, d.Extra)
	assert.Equal(t, 7, d.Extra.Perception)
	assert.Equal(t, 40, d.Extra.Speeds["land"])
	assert.Contains(t, d.Extra.Senses, "scent")

	require.NotNil(t, d.Combat)
	assert.Equal(t, 19, d.Combat.AC)
	require.Len(t, d.Combat.Attacks, 1)
	assert.Equal(t, "Jaws", d.Combat.Attacks[0].Name)
	assert.Equal(t, 12, d.Combat.Attacks[0].ToHit)
	assert.Equal(t, 10, d.Combat.Resistances["fire"])
	assert.Contains(t, d.Combat.Immunities, "fire")

	// Not a caster.
	assert.Nil(t, d.Spellcaster)
}

func TestGetCreatureSpellcasterBlock(t *testing.T) {
	c := rebuiltTestCatalog(t)

	d, err := c.GetCreature(context.Background(), model.Pathfinder, 3)
	require.NoError(t, err)
	require.NotNil(t, d.Spellcaster)
	assert.Equal(t, 17, d.Spellcaster.SpellDC)
	assert.Equal(t, 9, d.Spellcaster.SpellAttack)
	assert.Equal(t, 3, d.Spellcaster.SpellCount)
	assert.Equal(t, "occult", d.Spellcaster.Tradition)
}

func TestGetCreatureNotFound(t *testing.T) {
	c := rebuiltTestCatalog(t)

	_, err := c.GetCreature(context.Background(), model.Pathfinder, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestValueLists(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	families := c.Families(ctx, model.Pathfinder)
	assert.Equal(t, []string{"Devil", "Goblin", "Hound"}, families)

	sources := c.Sources(ctx, model.Pathfinder)
	assert.Equal(t, []string{"Bestiary", "Bestiary 2"}, sources)

	traits := c.Traits(ctx, model.Pathfinder)
	assert.Contains(t, traits, "goblin")
	assert.Contains(t, traits, "uncommon")
	// Axis traits are blacklisted from the enumeration.
	assert.NotContains(t, traits, "evil")
	assert.NotContains(t, traits, "lawful")
}

// Value lists are cached after first population.
func TestValueListsCached(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	first := c.Families(ctx, model.Pathfinder)
	_, err := c.db.Exec(`INSERT INTO pf_creature_core
		(id, name, hp, level, size, rarity, cr_type, family)
		VALUES (99, 'Late Arrival', 10, 1, 'Medium', 'Common', 'Monster', 'Zombie')`)
	require.NoError(t, err)

	second := c.Families(ctx, model.Pathfinder)
	assert.Equal(t, first, second)
}

func TestHazardFetch(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	hazards, err := c.FetchHazards(ctx, model.Pathfinder, HazardFilter{})
	require.NoError(t, err)
	require.Len(t, hazards, 2)

	pit, err := c.GetHazard(ctx, model.Pathfinder, 1)
	require.NoError(t, err)
	assert.Equal(t, "Hidden Pit", pit.Name)
	assert.Equal(t, model.HazardSimple, pit.Complexity)
	assert.True(t, pit.HasHealth)
	require.NotNil(t, pit.Saves.Reflex)
	assert.Equal(t, 8, *pit.Saves.Reflex)
	assert.Nil(t, pit.Saves.Will)
	assert.Contains(t, pit.Actions, "Pitfall")

	haunts, err := c.FetchHazards(ctx, model.Pathfinder,
		HazardFilter{Complexities: []model.HazardComplexity{model.HazardComplex}})
	require.NoError(t, err)
	require.Len(t, haunts, 1)
	assert.Equal(t, "Bloodthirsty Urge", haunts[0].Name)
}

func TestItemFetch(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	it, err := c.GetItem(ctx, model.Pathfinder, 14)
	require.NoError(t, err)
	assert.Equal(t, "Chain Mail", it.Name)
	assert.Equal(t, model.ItemArmor, it.Type)
	require.NotNil(t, it.Armor)
	assert.Equal(t, 4, it.Armor.ACBonus)

	potion, err := c.GetItem(ctx, model.Pathfinder, 13)
	require.NoError(t, err)
	assert.Equal(t, []string{"magical", "healing"}, potion.Traits)

	sword, err := c.GetItem(ctx, model.Pathfinder, 17)
	require.NoError(t, err)
	require.NotNil(t, sword.Weapon)
	assert.Equal(t, []string{"flaming"}, sword.Weapon.PropertyRunes)

	weapons, err := c.FetchItems(ctx, model.Pathfinder,
		ItemFilter{Types: []model.ItemType{model.ItemWeapon}}, false, 0)
	require.NoError(t, err)
	assert.Len(t, weapons, 4)
	for _, w := range weapons {
		assert.NotNil(t, w.Weapon, w.Name)
	}

	lo, hi := 1, 1
	leveled, err := c.FetchItems(ctx, model.Pathfinder,
		ItemFilter{MinLevel: &lo, MaxLevel: &hi}, false, 0)
	require.NoError(t, err)
	assert.Len(t, leveled, 3)

	_, err = c.GetItem(ctx, model.Pathfinder, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
