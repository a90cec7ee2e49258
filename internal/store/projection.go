package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lorevault/internal/model"
	"lorevault/internal/scoring"
)

// RebuildProjection drops and rebuilds the flat creature_core projection for
// one game system, then backfills the alignment and role-percentage columns
// row by row. The rebuild runs to completion before the HTTP listener
// accepts connections; a role-column update touching zero rows aborts the
// process by propagating a fatal error.
func (c *Catalog) RebuildProjection(ctx context.Context, gs model.GameSystem) error {
	core := tbl(gs, tblCreatureCore)
	tmp := tbl(gs, tblTmpCreatureCore)

	c.log.Info("rebuilding creature projection", zap.String("game_system", string(gs)))

	if _, err := c.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", core)); err != nil {
		return fmt.Errorf("failed to drop projection: %w", err)
	}
	if _, err := c.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", tmp)); err != nil {
		return fmt.Errorf("failed to drop stale temp projection: %w", err)
	}

	// The temp projection derives the attack modalities from the
	// weapon-association tables, spellcasting from the spell table, and the
	// archive link from the archive id and creature type.
	tmpSelect := fmt.Sprintf(`
CREATE TABLE %[1]s AS
SELECT
  c.id, c.aon_id, c.name, c.hp, c.level, c.size, c.rarity,
  CASE WHEN EXISTS (
    SELECT 1 FROM %[3]s ica
    JOIN %[4]s w ON w.item_id = ica.item_id
    WHERE ica.creature_id = c.id AND w.ranged = 0
  ) THEN 1 ELSE 0 END AS is_melee,
  CASE WHEN EXISTS (
    SELECT 1 FROM %[3]s ica
    JOIN %[4]s w ON w.item_id = ica.item_id
    WHERE ica.creature_id = c.id AND w.ranged = 1
  ) THEN 1 ELSE 0 END AS is_ranged,
  CASE WHEN EXISTS (
    SELECT 1 FROM %[5]s s WHERE s.creature_id = c.id
  ) THEN 1 ELSE 0 END AS is_spellcaster,
  c.focus_points,
  CASE WHEN c.aon_id IS NOT NULL THEN
    'https://2e.aonprd.com/' ||
    CASE c.cr_type WHEN 'NPC' THEN 'NPCs' ELSE 'Monsters' END ||
    '.aspx?ID=' || c.aon_id
  ELSE NULL END AS archive_link,
  c.cr_type, c.family, c.license, c.source, c.remaster
FROM %[2]s c`,
		tmp, tbl(gs, tblCreature), tbl(gs, tblItemCreature), tbl(gs, tblWeapon), tbl(gs, tblSpell))
	if _, err := c.db.ExecContext(ctx, tmpSelect); err != nil {
		return fmt.Errorf("failed to build temp projection: %w", err)
	}

	createCore := fmt.Sprintf(`
CREATE TABLE %s (
  id INTEGER PRIMARY KEY,
  aon_id INTEGER,
  name TEXT NOT NULL,
  hp INTEGER NOT NULL,
  level INTEGER NOT NULL,
  size TEXT NOT NULL,
  rarity TEXT NOT NULL,
  is_melee BOOLEAN NOT NULL DEFAULT 0,
  is_ranged BOOLEAN NOT NULL DEFAULT 0,
  is_spellcaster BOOLEAN NOT NULL DEFAULT 0,
  focus_points INTEGER NOT NULL DEFAULT 0,
  archive_link TEXT,
  cr_type TEXT NOT NULL,
  family TEXT NOT NULL DEFAULT '-',
  license TEXT NOT NULL DEFAULT '',
  source TEXT NOT NULL DEFAULT '',
  remaster BOOLEAN NOT NULL DEFAULT 0,
  alignment TEXT NOT NULL DEFAULT 'No',
  brute_percentage INTEGER NOT NULL DEFAULT 0,
  magical_striker_percentage INTEGER NOT NULL DEFAULT 0,
  skill_paragon_percentage INTEGER NOT NULL DEFAULT 0,
  skirmisher_percentage INTEGER NOT NULL DEFAULT 0,
  sniper_percentage INTEGER NOT NULL DEFAULT 0,
  soldier_percentage INTEGER NOT NULL DEFAULT 0,
  spellcaster_percentage INTEGER NOT NULL DEFAULT 0
)`, core)
	if _, err := c.db.ExecContext(ctx, createCore); err != nil {
		return fmt.Errorf("failed to create projection: %w", err)
	}

	insert := fmt.Sprintf(`
INSERT INTO %s (
  id, aon_id, name, hp, level, size, rarity,
  is_melee, is_ranged, is_spellcaster, focus_points, archive_link,
  cr_type, family, license, source, remaster
)
SELECT
  id, aon_id, name, hp, level, size, rarity,
  is_melee, is_ranged, is_spellcaster, focus_points, archive_link,
  cr_type, family, license, source, remaster
FROM %s`, core, tmp)
	if _, err := c.db.ExecContext(ctx, insert); err != nil {
		return fmt.Errorf("failed to populate projection: %w", err)
	}

	if _, err := c.db.ExecContext(ctx, fmt.Sprintf("DROP TABLE %s", tmp)); err != nil {
		return fmt.Errorf("failed to drop temp projection: %w", err)
	}

	if err := c.updateDerivedColumns(ctx, gs); err != nil {
		return err
	}

	c.log.Info("projection rebuilt", zap.String("game_system", string(gs)))
	return nil
}

// updateDerivedColumns computes the alignment and the seven role
// percentages for every projected creature and writes them back.
func (c *Catalog) updateDerivedColumns(ctx context.Context, gs model.GameSystem) error {
	scales, err := c.Scales(ctx, gs)
	if err != nil {
		return fmt.Errorf("failed to load scales: %w", err)
	}

	ids, err := c.projectedIDs(ctx, gs)
	if err != nil {
		return err
	}

	update := fmt.Sprintf(`
UPDATE %s SET
  alignment = ?,
  brute_percentage = ?,
  magical_striker_percentage = ?,
  skill_paragon_percentage = ?,
  skirmisher_percentage = ?,
  sniper_percentage = ?,
  soldier_percentage = ?,
  spellcaster_percentage = ?
WHERE id = ?`, tbl(gs, tblCreatureCore))

	for _, id := range ids {
		profile, remaster, err := c.scoringProfile(ctx, gs, id)
		if err != nil {
			return fmt.Errorf("failed to assemble scoring profile for creature %d: %w", id, err)
		}
		traits, err := c.creatureTraits(ctx, gs, id, true)
		if err != nil {
			return fmt.Errorf("failed to fetch traits for creature %d: %w", id, err)
		}
		alignment := model.DeriveAlignment(traits, remaster)
		scores := scoring.ScoreRoles(profile, scales)

		res, err := c.db.ExecContext(ctx, update,
			string(alignment),
			scores[model.RoleBrute],
			scores[model.RoleMagicalStriker],
			scores[model.RoleSkillParagon],
			scores[model.RoleSkirmisher],
			scores[model.RoleSniper],
			scores[model.RoleSoldier],
			scores[model.RoleSpellcaster],
			id,
		)
		if err != nil {
			return fmt.Errorf("failed to update role columns for creature %d: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read update result for creature %d: %w", id, err)
		}
		if n == 0 {
			return fmt.Errorf("role column update affected zero rows for creature %d", id)
		}
	}
	return nil
}

func (c *Catalog) projectedIDs(ctx context.Context, gs model.GameSystem) ([]int64, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("SELECT id FROM %s ORDER BY id", tbl(gs, tblCreatureCore)))
	if err != nil {
		return nil, fmt.Errorf("failed to list projected creatures: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan creature id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
