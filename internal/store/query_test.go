package store

import (
	"testing"

	"lorevault/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildCreatureQueryEmptyFilter(t *testing.T) {
	query, args := BuildCreatureQuery(model.Pathfinder, CreatureFilter{}, false)
	assert.Equal(t, "SELECT * FROM pf_creature_core", query)
	assert.Empty(t, args)
}

func TestBuildCreatureQueryRandomSampling(t *testing.T) {
	query, _ := BuildCreatureQuery(model.Pathfinder, CreatureFilter{}, true)
	assert.Equal(t, "SELECT * FROM pf_creature_core ORDER BY RANDOM() LIMIT 20", query)
}

func TestBuildCreatureQueryScalarFilters(t *testing.T) {
	f := CreatureFilter{
		Levels:   []int{1, 2},
		Rarities: []model.Rarity{model.RarityCommon},
	}
	query, args := BuildCreatureQuery(model.Pathfinder, f, false)
	assert.Equal(t,
		"SELECT * FROM pf_creature_core WHERE level IN (?, ?) AND rarity IN (?)",
		query)
	assert.Equal(t, []any{1, 2, model.RarityCommon}, args)
}

func TestBuildCreatureQueryTraitSubselect(t *testing.T) {
	f := CreatureFilter{Traits: []string{"Goblin", "fire"}}
	query, args := BuildCreatureQuery(model.Pathfinder, f, false)

	assert.Contains(t, query,
		"id IN (SELECT tcat.creature_id FROM pf_trait_creature_association_table tcat "+
			"RIGHT JOIN (SELECT * FROM pf_trait_table WHERE LOWER(name) IN (?, ?)) tt "+
			"ON tcat.trait_id = tt.name GROUP BY tcat.creature_id)")
	// Trait values travel as bind args, never spliced into the query text,
	// and are folded to the lowercase form the trait table stores.
	assert.NotContains(t, query, "oblin")
	assert.Equal(t, []any{"goblin", "fire"}, args)
}

// Family matching is a case-insensitive substring search, so "gob" or
// "Goblins" both find the Goblin family.
func TestBuildCreatureQueryFamilySubstring(t *testing.T) {
	f := CreatureFilter{Families: []string{"Gob", "hound"}}
	query, args := BuildCreatureQuery(model.Pathfinder, f, false)

	assert.Contains(t, query,
		"(LOWER(family) LIKE '%' || ? || '%' OR LOWER(family) LIKE '%' || ? || '%')")
	assert.Equal(t, []any{"gob", "hound"}, args)
}

func TestBuildCreatureQueryRoleDefaults(t *testing.T) {
	f := CreatureFilter{Roles: []model.Role{model.RoleBrute}}
	query, args := BuildCreatureQuery(model.Pathfinder, f, false)
	assert.Contains(t, query, "(brute_percentage >= ? AND brute_percentage <= ?)")
	assert.Equal(t, []any{DefaultRoleLower, DefaultRoleUpper}, args)
}

func TestBuildCreatureQueryRoleCustomBounds(t *testing.T) {
	lo, hi := 30, 70
	f := CreatureFilter{
		Roles:     []model.Role{model.RoleSniper, model.RoleSoldier},
		RoleLower: &lo,
		RoleUpper: &hi,
	}
	query, args := BuildCreatureQuery(model.Pathfinder, f, false)
	assert.Contains(t, query, "(sniper_percentage >= ? AND sniper_percentage <= ?)")
	assert.Contains(t, query, "(soldier_percentage >= ? AND soldier_percentage <= ?)")
	assert.Equal(t, []any{30, 70, 30, 70}, args)
}

func TestBuildCreatureQueryVersion(t *testing.T) {
	query, args := BuildCreatureQuery(model.Pathfinder,
		CreatureFilter{Version: model.VersionLegacy}, false)
	assert.Contains(t, query, "remaster = ?")
	assert.Equal(t, []any{false}, args)

	query, args = BuildCreatureQuery(model.Pathfinder,
		CreatureFilter{Version: model.VersionRemaster}, false)
	assert.Contains(t, query, "remaster = ?")
	assert.Equal(t, []any{true}, args)

	query, _ = BuildCreatureQuery(model.Pathfinder,
		CreatureFilter{Version: model.VersionAny}, false)
	assert.NotContains(t, query, "remaster")
}

func TestBuildCreatureQueryStarfinderPrefix(t *testing.T) {
	query, _ := BuildCreatureQuery(model.Starfinder, CreatureFilter{Traits: []string{"tech"}}, false)
	assert.Contains(t, query, "sf_creature_core")
	assert.Contains(t, query, "sf_trait_creature_association_table")
}

func TestPageSlice(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	assert.Equal(t, []int{0, 1}, PageSlice(items, 0, 2))
	assert.Equal(t, []int{2, 3}, PageSlice(items, 2, 2))
	assert.Equal(t, []int{4}, PageSlice(items, 4, 2))
	// Unbounded page size.
	assert.Equal(t, items, PageSlice(items, 0, -1))
	assert.Equal(t, []int{3, 4}, PageSlice(items, 3, -1))
	// Cursor at or past the total yields an empty slice.
	assert.Empty(t, PageSlice(items, 5, 2))
	assert.Empty(t, PageSlice(items, 100, -1))
}

func TestSortCreatures(t *testing.T) {
	items := []model.Creature{
		{ID: 2, Name: "zombie", Level: 1, HP: 30, Size: model.SizeLarge},
		{ID: 1, Name: "Archon", Level: 3, HP: 10, Size: model.SizeTiny},
		{ID: 3, Name: "goblin", Level: 2, HP: 20, Size: model.SizeMedium},
	}

	SortCreatures(items, model.SortByName, model.OrderAscending)
	assert.Equal(t, []int64{1, 3, 2}, ids(items))

	SortCreatures(items, model.SortByLevel, model.OrderDescending)
	assert.Equal(t, []int64{1, 3, 2}, ids(items))

	SortCreatures(items, model.SortByHP, model.OrderAscending)
	assert.Equal(t, []int64{1, 3, 2}, ids(items))

	SortCreatures(items, model.SortBySize, model.OrderDescending)
	assert.Equal(t, []int64{2, 3, 1}, ids(items))

	SortCreatures(items, model.SortByID, model.OrderAscending)
	assert.Equal(t, []int64{1, 2, 3}, ids(items))
}

func ids(items []model.Creature) []int64 {
	out := make([]int64, len(items))
	for i, c := range items {
		out[i] = c.ID
	}
	return out
}
