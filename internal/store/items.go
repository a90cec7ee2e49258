package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"lorevault/internal/model"
)

// ItemFilter narrows shop item fetches.
type ItemFilter struct {
	MinLevel   *int                    `json:"min_level,omitempty"`
	MaxLevel   *int                    `json:"max_level,omitempty"`
	Categories []string                `json:"categories,omitempty"`
	Rarities   []model.Rarity          `json:"rarities,omitempty"`
	Types      []model.ItemType        `json:"item_types,omitempty"`
	Sources    []string                `json:"sources,omitempty"`
	Version    model.GameSystemVersion `json:"game_system_version,omitempty"`
}

func (f ItemFilter) predicates() []Expr {
	var preds []Expr
	if f.MinLevel != nil || f.MaxLevel != nil {
		lo, hi := -1, 30
		if f.MinLevel != nil {
			lo = *f.MinLevel
		}
		if f.MaxLevel != nil {
			hi = *f.MaxLevel
		}
		preds = append(preds, Between{Col: "level", Lo: lo, Hi: hi})
	}
	if len(f.Categories) > 0 {
		preds = append(preds, InList{Col: "category", Values: anySlice(f.Categories)})
	}
	if len(f.Rarities) > 0 {
		preds = append(preds, InList{Col: "rarity", Values: anySlice(f.Rarities)})
	}
	if len(f.Types) > 0 {
		preds = append(preds, InList{Col: "item_type", Values: anySlice(f.Types)})
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

const itemColumns = `id, name, bulk, quantity, base_item, category, item_group,
description, hardness, hp, level, price, usage, item_type,
material_grade, material_type, number_of_uses,
license, source, remaster, rarity, size`

func scanItem(rows *sql.Rows) (model.Item, error) {
	var it model.Item
	var baseItem, materialGrade, materialType, rarity, size, itemType sql.NullString
	var uses sql.NullInt64

	err := rows.Scan(&it.ID, &it.Name, &it.Bulk, &it.Quantity, &baseItem,
		&it.Category, &it.Group, &it.Description, &it.Hardness, &it.HP,
		&it.Level, &it.PriceCopper, &it.Usage, &itemType,
		&materialGrade, &materialType, &uses,
		&it.License, &it.Source, &it.Remaster, &rarity, &size)
	if err != nil {
		return it, err
	}
	if baseItem.Valid {
		v := baseItem.String
		it.BaseItem = &v
	}
	if materialGrade.Valid {
		v := materialGrade.String
		it.MaterialGrade = &v
	}
	if materialType.Valid {
		v := materialType.String
		it.MaterialType = &v
	}
	it.NumberOfUses = nullableInt(uses)
	it.Type = model.ParseItemType(itemType.String)
	it.Rarity = model.ParseRarity(rarity.String)
	it.Size = model.ParseSize(size.String)
	if it.Quantity == 0 {
		it.Quantity = 1
	}
	return it, nil
}

// FetchItems lists items matching the filter; random orders by RANDOM()
// with the sampling limit.
func (c *Catalog) FetchItems(ctx context.Context, gs model.GameSystem, f ItemFilter, random bool, limit int) ([]model.Item, error) {
	var sb strings.Builder
	var args []any
	fmt.Fprintf(&sb, "SELECT %s FROM %s", itemColumns, tbl(gs, tblItem))
	for i, p := range f.predicates() {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		p.render(&sb, &args)
	}
	if random {
		sb.WriteString(" ORDER BY RANDOM()")
	}
	if limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", limit)
	}

	rows, err := c.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("item query failed: %w", err)
	}
	defer rows.Close()

	var out []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("item query failed: %w", err)
	}
	for i := range out {
		c.attachItemDetails(ctx, gs, &out[i])
	}
	return out, nil
}

// ListItems pages through the filtered item set sorted by id.
func (c *Catalog) ListItems(ctx context.Context, gs model.GameSystem, f ItemFilter, cursor uint32, pageSize int) (int, []model.Item, error) {
	items, err := c.FetchItems(ctx, gs, f, false, 0)
	if err != nil {
		return 0, nil, err
	}
	return len(items), PageSlice(items, cursor, pageSize), nil
}

// GetItem fetches one item with its sub-shape.
func (c *Catalog) GetItem(ctx context.Context, gs model.GameSystem, id int64) (model.Item, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?", itemColumns, tbl(gs, tblItem)), id)
	if err != nil {
		return model.Item{}, fmt.Errorf("item fetch failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return model.Item{}, fmt.Errorf("item fetch failed: %w", err)
		}
		return model.Item{}, ErrNotFound
	}
	it, err := scanItem(rows)
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to scan item: %w", err)
	}
	rows.Close()
	c.attachItemDetails(ctx, gs, &it)
	return it, nil
}

// itemTraits reads the trait names associated with an item.
func (c *Catalog) itemTraits(ctx context.Context, gs model.GameSystem, id int64) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
SELECT trait_id FROM %s WHERE item_id = ? ORDER BY rowid`,
		tbl(gs, tblTraitItem)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read traits for item %d: %w", id, err)
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

func (c *Catalog) attachItemDetails(ctx context.Context, gs model.GameSystem, it *model.Item) {
	traits, err := c.itemTraits(ctx, gs, it.ID)
	if err != nil {
		c.log.Warn("trait fetch failed", zap.Int64("item_id", it.ID), zap.Error(err))
	}
	it.Traits = traits

	switch it.Type {
	case model.ItemWeapon:
		var w model.WeaponData
		var toHit, rng sql.NullInt64
		var reload sql.NullString
		var propertyRunes string
		row := c.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT damage_dice, to_hit, potency_runes, striking_runes, property_runes, weapon_range, reload, ranged
FROM %s WHERE item_id = ?`, tbl(gs, tblWeapon)), it.ID)
		if err := row.Scan(&w.DamageDice, &toHit, &w.PotencyRunes, &w.StrikingRunes,
			&propertyRunes, &rng, &reload, &w.Ranged); err == nil {
			if toHit.Valid {
				w.ToHit = int(toHit.Int64)
			}
			if propertyRunes != "" {
				w.PropertyRunes = strings.Split(propertyRunes, ",")
			}
			w.Range = nullableInt(rng)
			if reload.Valid {
				v := reload.String
				w.Reload = &v
			}
			it.Weapon = &w
		}
	case model.ItemArmor:
		var a model.ArmorData
		row := c.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT ac_bonus, check_penalty, speed_penalty, dex_cap, potency_runes, resilient_runes
FROM %s WHERE item_id = ?`, tbl(gs, tblArmor)), it.ID)
		if err := row.Scan(&a.ACBonus, &a.CheckPenalty, &a.SpeedPenalty,
			&a.DexCap, &a.PotencyRunes, &a.ResilientRunes); err == nil {
			it.Armor = &a
		}
	case model.ItemShield:
		var s model.ShieldData
		row := c.db.QueryRowContext(ctx, fmt.Sprintf(`
SELECT ac_bonus, reinforcing_runes, speed_penalty FROM %s WHERE item_id = ?`,
			tbl(gs, tblShield)), it.ID)
		if err := row.Scan(&s.ACBonus, &s.ReinforcingRunes, &s.SpeedPenalty); err == nil {
			it.Shield = &s
		}
	}
}
