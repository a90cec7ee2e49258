package store

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"lorevault/internal/model"
	"lorevault/internal/scoring"
)

// creatureDetailBlocks loads the optional extra/combat/spellcaster payloads
// from the normalized tables. A failed sub-fetch collapses to an absent
// block rather than failing the whole detail response.
func (c *Catalog) creatureDetailBlocks(ctx context.Context, gs model.GameSystem, id int64) (*model.CreatureExtra, *model.CreatureCombat, *model.CreatureSpellcaster) {
	extra, err := c.creatureExtra(ctx, gs, id)
	if err != nil {
		c.log.Warn("extra block fetch failed", zap.Int64("creature_id", id), zap.Error(err))
		extra = nil
	}
	combat, err := c.creatureCombat(ctx, gs, id)
	if err != nil {
		c.log.Warn("combat block fetch failed", zap.Int64("creature_id", id), zap.Error(err))
		combat = nil
	}
	caster, err := c.creatureSpellcasterBlock(ctx, gs, id)
	if err != nil {
		c.log.Warn("spellcaster block fetch failed", zap.Int64("creature_id", id), zap.Error(err))
		caster = nil
	}
	return extra, combat, caster
}

func (c *Catalog) creatureExtra(ctx context.Context, gs model.GameSystem, id int64) (*model.CreatureExtra, error) {
	var ex model.CreatureExtra
	var str, dex, con, intl, wis, cha int

	row := c.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT perception, strength, dexterity, constitution, intelligence, wisdom, charisma
FROM %s WHERE id = ?`, tbl(gs, tblCreature)), id)
	if err := row.Scan(&ex.Perception, &str, &dex, &con, &intl, &wis, &cha); err != nil {
		return nil, fmt.Errorf("failed to read creature %d: %w", id, err)
	}
	ex.AbilityScores = map[string]int{
		"str": str, "dex": dex, "con": con, "int": intl, "wis": wis, "cha": cha,
	}

	var err error
	if ex.Skills, err = c.creatureSkills(ctx, gs, id); err != nil {
		return nil, err
	}
	if ex.Speeds, err = c.creatureSpeeds(ctx, gs, id); err != nil {
		return nil, err
	}
	if ex.Languages, err = c.stringColumn(ctx, tbl(gs, tblLanguage), id); err != nil {
		return nil, err
	}
	if ex.Senses, err = c.stringColumn(ctx, tbl(gs, tblSense), id); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (c *Catalog) creatureCombat(ctx context.Context, gs model.GameSystem, id int64) (*model.CreatureCombat, error) {
	var cb model.CreatureCombat
	row := c.db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT ac, fortitude, reflex, will FROM %s WHERE id = ?", tbl(gs, tblCreature)), id)
	if err := row.Scan(&cb.AC, &cb.Fortitude, &cb.Reflex, &cb.Will); err != nil {
		return nil, fmt.Errorf("failed to read creature %d: %w", id, err)
	}

	weapons, err := c.creatureAttackRows(ctx, gs, id)
	if err != nil {
		return nil, err
	}
	cb.Attacks = weapons

	if cb.Resistances, err = c.namedValueColumn(ctx, tbl(gs, tblResistance), id); err != nil {
		return nil, err
	}
	if cb.Weaknesses, err = c.namedValueColumn(ctx, tbl(gs, tblWeakness), id); err != nil {
		return nil, err
	}
	if cb.Immunities, err = c.stringColumn(ctx, tbl(gs, tblImmunity), id); err != nil {
		return nil, err
	}
	return &cb, nil
}

func (c *Catalog) creatureAttackRows(ctx context.Context, gs model.GameSystem, id int64) ([]model.CreatureAttack, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
SELECT i.name, w.to_hit, w.damage_dice, w.damage_avg, w.ranged
FROM %s ica
JOIN %s w ON w.item_id = ica.item_id
JOIN %s i ON i.id = ica.item_id
WHERE ica.creature_id = ?`,
		tbl(gs, tblItemCreature), tbl(gs, tblWeapon), tbl(gs, tblItem)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read attacks for creature %d: %w", id, err)
	}
	defer rows.Close()

	var out []model.CreatureAttack
	for rows.Next() {
		var a model.CreatureAttack
		var toHit, avg sql.NullInt64
		if err := rows.Scan(&a.Name, &toHit, &a.Damage, &avg, &a.Ranged); err != nil {
			return nil, err
		}
		if toHit.Valid {
			a.ToHit = int(toHit.Int64)
		}
		if avg.Valid {
			a.DamageAvg = int(avg.Int64)
		} else if v, ok := scoring.DamageAverage(a.Damage); ok {
			a.DamageAvg = v
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (c *Catalog) creatureSpellcasterBlock(ctx context.Context, gs model.GameSystem, id int64) (*model.CreatureSpellcaster, error) {
	var sc model.CreatureSpellcaster
	var dc, attack sql.NullInt64
	var tradition sql.NullString

	row := c.db.QueryRowContext(ctx, fmt.Sprintf(
		"SELECT spell_dc, spell_attack, tradition, focus_points FROM %s WHERE id = ?",
		tbl(gs, tblCreature)), id)
	if err := row.Scan(&dc, &attack, &tradition, &sc.FocusPoints); err != nil {
		return nil, fmt.Errorf("failed to read creature %d: %w", id, err)
	}
	if !dc.Valid {
		return nil, nil
	}
	sc.SpellDC = int(dc.Int64)
	if attack.Valid {
		sc.SpellAttack = int(attack.Int64)
	}
	if tradition.Valid {
		sc.Tradition = tradition.String
	}

	n, err := c.creatureSpellCount(ctx, gs, id)
	if err != nil {
		return nil, err
	}
	sc.SpellCount = n
	return &sc, nil
}

// stringColumn reads single-name association rows (languages, senses,
// immunities).
func (c *Catalog) stringColumn(ctx context.Context, table string, id int64) ([]string, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("SELECT name FROM %s WHERE creature_id = ?", table), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// namedValueColumn reads name/value association rows (resistances,
// weaknesses).
func (c *Catalog) namedValueColumn(ctx context.Context, table string, id int64) (map[string]int, error) {
	rows, err := c.db.QueryContext(ctx,
		fmt.Sprintf("SELECT name, value FROM %s WHERE creature_id = ?", table), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
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
	if len(out) == 0 {
		return nil, rows.Err()
	}
	return out, rows.Err()
}
