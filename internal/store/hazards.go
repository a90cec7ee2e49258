package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"lorevault/internal/model"
)

// HazardFilter narrows hazard fetches for the encounter builder.
type HazardFilter struct {
	Levels       []int                     `json:"levels,omitempty"`
	Complexities []model.HazardComplexity  `json:"complexities,omitempty"`
	Rarities     []model.Rarity            `json:"rarities,omitempty"`
	Sources      []string                  `json:"sources,omitempty"`
	Version      model.GameSystemVersion   `json:"game_system_version,omitempty"`
}

func (f HazardFilter) predicates() []Expr {
	var preds []Expr
	if len(f.Levels) > 0 {
		preds = append(preds, InList{Col: "level", Values: anySlice(f.Levels)})
	}
	if len(f.Complexities) > 0 {
		preds = append(preds, InList{Col: "complexity", Values: anySlice(f.Complexities)})
	}
	if len(f.Rarities) > 0 {
		preds = append(preds, InList{Col: "rarity", Values: anySlice(f.Rarities)})
	}
	if len(f.Sources) > 0 {
		preds = append(preds, InList{Col: "source", Values: anySlice(f.Sources)})
	}
	switch f.Version {
	case model.VersionLegacy:
		preds = append(preds, Equals{Col: "remaster", Value: false})
	case model.VersionRemaster:
		preds = append(preds, Equals{Col: "remaster", Value: true})
	}
	return preds
}

const hazardColumns = `id, name, ac, hardness, hp, has_health, complexity, level,
rarity, size, source, license, remaster, will, reflex, fortitude,
description, disable, reset`

func scanHazard(rows *sql.Rows) (model.Hazard, error) {
	var h model.Hazard
	var complexity, rarity, size string
	var will, reflex, fortitude sql.NullInt64

	err := rows.Scan(&h.ID, &h.Name, &h.AC, &h.Hardness, &h.HP, &h.HasHealth,
		&complexity, &h.Level, &rarity, &size, &h.Source, &h.License, &h.Remaster,
		&will, &reflex, &fortitude, &h.Description, &h.Disable, &h.Reset)
	if err != nil {
		return h, err
	}
	h.Complexity = model.ParseHazardComplexity(complexity)
	h.Rarity = model.ParseRarity(rarity)
	h.Size = model.ParseSize(size)
	h.Saves = model.HazardSaves{
		Will:      nullableInt(will),
		Reflex:    nullableInt(reflex),
		Fortitude: nullableInt(fortitude),
	}
	return h, nil
}

// FetchHazards lists hazards matching the filter, with traits and actions
// attached.
func (c *Catalog) FetchHazards(ctx context.Context, gs model.GameSystem, f HazardFilter) ([]model.Hazard, error) {
	var sb strings.Builder
	var args []any
	fmt.Fprintf(&sb, "SELECT %s FROM %s", hazardColumns, tbl(gs, tblHazard))
	for i, p := range f.predicates() {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		p.render(&sb, &args)
	}

	rows, err := c.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("hazard query failed: %w", err)
	}
	defer rows.Close()

	var out []model.Hazard
	for rows.Next() {
		h, err := scanHazard(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hazard: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hazard query failed: %w", err)
	}
	for i := range out {
		c.attachHazardDetails(ctx, gs, &out[i])
	}
	return out, nil
}

// GetHazard fetches one hazard by id.
func (c *Catalog) GetHazard(ctx context.Context, gs model.GameSystem, id int64) (model.Hazard, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?", hazardColumns, tbl(gs, tblHazard)), id)
	if err != nil {
		return model.Hazard{}, fmt.Errorf("hazard fetch failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Hazard{}, fmt.Errorf("hazard fetch failed: %w", err)
		}
		return model.Hazard{}, ErrNotFound
	}
	h, err := scanHazard(rows)
	if err != nil {
		return model.Hazard{}, fmt.Errorf("failed to scan hazard: %w", err)
	}
	rows.Close()
	c.attachHazardDetails(ctx, gs, &h)
	return h, nil
}

func (c *Catalog) attachHazardDetails(ctx context.Context, gs model.GameSystem, h *model.Hazard) {
	if traits, err := c.hazardTraits(ctx, gs, h.ID); err == nil {
		h.Traits = traits
	}
	if actions, err := c.hazardActions(ctx, gs, h.ID); err == nil {
		h.Actions = actions
	}
}

func (c *Catalog) hazardTraits(ctx context.Context, gs model.GameSystem, id int64) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT trait_id FROM %s WHERE hazard_id = ? ORDER BY rowid", tbl(gs, tblTraitHazard)), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (c *Catalog) hazardActions(ctx context.Context, gs model.GameSystem, id int64) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT name FROM %s WHERE hazard_id = ?", tbl(gs, tblAction)), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
