package store

import (
	"context"
	"database/sql"
	"fmt"

	"lorevault/internal/model"
	"lorevault/internal/scoring"
)

// scoringProfile assembles everything the role scorer needs to know about
// one creature from the normalized tables. Also returns the remaster flag
// for the alignment derivation done alongside scoring.
func (c *Catalog) scoringProfile(ctx context.Context, gs model.GameSystem, id int64) (scoring.Profile, bool, error) {
	var p scoring.Profile
	var remaster bool
	var spellDC, spellAttack sql.NullInt64
	var tradition sql.NullString

	row := c.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT level, hp, ac, perception,
       strength, dexterity, constitution, intelligence, wisdom, charisma,
       fortitude, reflex, will,
       spell_dc, spell_attack, tradition, remaster
FROM %s WHERE id = ?`, tbl(gs, tblCreature)), id)
	err := row.Scan(&p.Level, &p.HP, &p.AC, &p.Perception,
		&p.Str, &p.Dex, &p.Con, &p.Int, &p.Wis, &p.Cha,
		&p.Fortitude, &p.Reflex, &p.Will,
		&spellDC, &spellAttack, &tradition, &remaster)
	if err != nil {
		return p, false, fmt.Errorf("failed to read creature %d: %w", id, err)
	}
	p.SpellDC = nullableInt(spellDC)

	if p.Skills, err = c.creatureSkills(ctx, gs, id); err != nil {
		return p, false, err
	}
	if p.Speeds, err = c.creatureSpeeds(ctx, gs, id); err != nil {
		return p, false, err
	}
	if p.Weapons, err = c.creatureWeapons(ctx, gs, id); err != nil {
		return p, false, err
	}
	if p.OffensiveActions, err = c.creatureOffensiveActions(ctx, gs, id); err != nil {
		return p, false, err
	}
	if p.SpellCount, err = c.creatureSpellCount(ctx, gs, id); err != nil {
		return p, false, err
	}
	return p, remaster, nil
}

func (c *Catalog) creatureSkills(ctx context.Context, gs model.GameSystem, id int64) (map[string]int, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT name, modifier FROM %s WHERE creature_id = ?", tbl(gs, tblSkill)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read skills for creature %d: %w", id, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var mod int
		if err := rows.Scan(&name, &mod); err != nil {
			return nil, err
		}
		out[name] = mod
	}
	return out, rows.Err()
}

func (c *Catalog) creatureSpeeds(ctx context.Context, gs model.GameSystem, id int64) (map[string]int, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT name, value FROM %s WHERE creature_id = ?", tbl(gs, tblSpeed)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read speeds for creature %d: %w", id, err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var name string
		var v int
		if err := rows.Scan(&name, &v); err != nil {
			return nil, err
		}
		out[name] = v
	}
	return out, rows.Err()
}

func (c *Catalog) creatureWeapons(ctx context.Context, gs model.GameSystem, id int64) ([]scoring.WeaponProfile, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
SELECT i.name, w.to_hit, w.damage_avg, w.ranged
FROM %s ica
JOIN %s w ON w.item_id = ica.item_id
JOIN %s i ON i.id = ica.item_id
WHERE ica.creature_id = ?`,
		tbl(gs, tblItemCreature), tbl(gs, tblWeapon), tbl(gs, tblItem)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read weapons for creature %d: %w", id, err)
	}
	defer rows.Close()

	var out []scoring.WeaponProfile
	for rows.Next() {
		var w scoring.WeaponProfile
		var toHit, dmg sql.NullInt64
		if err := rows.Scan(&w.Name, &toHit, &dmg, &w.Ranged); err != nil {
			return nil, err
		}
		w.ToHit = nullableInt(toHit)
		w.DamageAvg = nullableInt(dmg)
		out = append(out, w)
	}
	return out, rows.Err()
}

func (c *Catalog) creatureOffensiveActions(ctx context.Context, gs model.GameSystem, id int64) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT name FROM %s WHERE creature_id = ? AND offensive = 1", tbl(gs, tblAction)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read actions for creature %d: %w", id, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (c *Catalog) creatureSpellCount(ctx context.Context, gs model.GameSystem, id int64) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE creature_id = ?", tbl(gs, tblSpell)), id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count spells for creature %d: %w", id, err)
	}
	return n, nil
}
