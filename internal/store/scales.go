package store

import (
	"context"
	"database/sql"
	"fmt"

	"lorevault/internal/model"
	"lorevault/internal/scoring"
)

// Scales loads the per-level scale tables for one game system. The result
// is cached for the process lifetime.
func (c *Catalog) Scales(ctx context.Context, gs model.GameSystem) (*scoring.Scales, error) {
	return cached(c, "scales:"+string(gs), func() (*scoring.Scales, error) {
		return c.loadScales(ctx, gs)
	})
}

func (c *Catalog) loadScales(ctx context.Context, gs model.GameSystem) (*scoring.Scales, error) {
	s := &scoring.Scales{}
	var err error

	tiered := []struct {
		suffix string
		dst    *map[int]scoring.ScaleRow
	}{
		{tblAbilityScales, &s.Ability},
		{tblACScales, &s.AC},
		{tblPerceptionScales, &s.Perception},
		{tblSavingThrowScales, &s.SavingThrow},
		{tblSkillScales, &s.Skill},
		{tblStrikeBonusScales, &s.StrikeBonus},
		{tblSpellDCScales, &s.SpellDC},
		{tblAreaDamageScales, &s.AreaDamage},
		{tblItemScales, &s.Item},
		{tblResWeakScales, &s.ResWeak},
	}
	for _, t := range tiered {
		if *t.dst, err = c.loadTieredScale(ctx, tbl(gs, t.suffix)); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", t.suffix, err)
		}
	}
	if s.HP, err = c.loadHPScale(ctx, tbl(gs, tblHPScales)); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", tblHPScales, err)
	}
	if s.StrikeDamage, err = c.loadStrikeDamageScale(ctx, tbl(gs, tblStrikeDmgScales)); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", tblStrikeDmgScales, err)
	}
	return s, nil
}

func (c *Catalog) loadTieredScale(ctx context.Context, table string) (map[int]scoring.ScaleRow, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT level, extreme, high, moderate, low, terrible FROM %s", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]scoring.ScaleRow)
	for rows.Next() {
		var level int
		var extreme, high, moderate, low, terrible sql.NullInt64
		if err := rows.Scan(&level, &extreme, &high, &moderate, &low, &terrible); err != nil {
			return nil, err
		}
		out[level] = scoring.ScaleRow{
			Extreme:  nullableInt(extreme),
			High:     nullableInt(high),
			Moderate: nullableInt(moderate),
			Low:      nullableInt(low),
			Terrible: nullableInt(terrible),
		}
	}
	return out, rows.Err()
}

func (c *Catalog) loadHPScale(ctx context.Context, table string) (map[int]scoring.HPScaleRow, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT level, high_ub, high_lb, low_ub, low_lb FROM %s", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]scoring.HPScaleRow)
	for rows.Next() {
		var level int
		var r scoring.HPScaleRow
		if err := rows.Scan(&level, &r.HighUB, &r.HighLB, &r.LowUB, &r.LowLB); err != nil {
			return nil, err
		}
		out[level] = r
	}
	return out, rows.Err()
}

func (c *Catalog) loadStrikeDamageScale(ctx context.Context, table string) (map[int]scoring.StrikeDamageRow, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT level, extreme, high, moderate, low FROM %s", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]scoring.StrikeDamageRow)
	for rows.Next() {
		var level int
		var r scoring.StrikeDamageRow
		if err := rows.Scan(&level, &r.Extreme, &r.High, &r.Moderate, &r.Low); err != nil {
			return nil, err
		}
		out[level] = r
	}
	return out, rows.Err()
}

func nullableInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
