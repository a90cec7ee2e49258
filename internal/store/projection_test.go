package store

import (
	"context"
	"testing"

	"lorevault/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebuildProjection(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	var n int
	require.NoError(t, c.db.QueryRow("SELECT COUNT(*) FROM pf_creature_core").Scan(&n))
	assert.Equal(t, 4, n)

	// The temp projection is an implementation device, not a durable artifact.
	var tmpCount int
	err := c.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='pf_tmp_creature_core'").
		Scan(&tmpCount)
	require.NoError(t, err)
	assert.Zero(t, tmpCount)

	items, err := c.FetchCreatures(ctx, model.Pathfinder, CreatureFilter{}, false)
	require.NoError(t, err)
	require.Len(t, items, 4)

	byName := map[string]model.Creature{}
	for _, cr := range items {
		byName[cr.Name] = cr
	}

	warrior := byName["Goblin Warrior"]
	assert.True(t, warrior.IsMelee)
	assert.False(t, warrior.IsRanged)
	assert.False(t, warrior.IsSpellcaster)
	require.NotNil(t, warrior.ArchiveLink)
	assert.Equal(t, "https://2e.aonprd.com/Monsters.aspx?ID=56", *warrior.ArchiveLink)
	assert.Equal(t, model.AlignmentCE, warrior.Alignment)
	assert.NotContains(t, warrior.Traits, "chaotic")
	assert.Contains(t, warrior.Traits, "goblin")

	archer := byName["Goblin Archer"]
	assert.True(t, archer.IsRanged)
	assert.False(t, archer.IsMelee)

	imp := byName["Imp Occultist"]
	assert.True(t, imp.IsSpellcaster)
	assert.False(t, imp.IsMelee)
	// Remaster rows have no alignment and no archive id.
	assert.Equal(t, model.AlignmentNo, imp.Alignment)
	assert.Nil(t, imp.ArchiveLink)

	hound := byName["Hell Hound"]
	assert.Equal(t, model.AlignmentLE, hound.Alignment)
}

// Every projected creature carries role percentages inside [0,100].
func TestRebuildProjectionRolePercentages(t *testing.T) {
	c := rebuiltTestCatalog(t)

	items, err := c.FetchCreatures(context.Background(), model.Pathfinder, CreatureFilter{}, false)
	require.NoError(t, err)
	for _, cr := range items {
		require.Len(t, cr.RolePercentages, 7, cr.Name)
		for role, pct := range cr.RolePercentages {
			assert.GreaterOrEqual(t, pct, 0, "%s %s", cr.Name, role)
			assert.LessOrEqual(t, pct, 100, "%s %s", cr.Name, role)
		}
	}
}

// The rebuild is idempotent across restarts.
func TestRebuildProjectionIdempotent(t *testing.T) {
	c := rebuiltTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, c.RebuildProjection(ctx, model.Pathfinder))

	var n int
	require.NoError(t, c.db.QueryRow("SELECT COUNT(*) FROM pf_creature_core").Scan(&n))
	assert.Equal(t, 4, n)
}
