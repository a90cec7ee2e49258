package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lorevault/internal/model"
)

// ErrNotFound is returned when an id resolves to no catalog row.
var ErrNotFound = errors.New("not found")

// creatureCoreColumns is the projection column order used by every scan.
const creatureCoreColumns = `id, aon_id, name, hp, level, size, rarity,
is_melee, is_ranged, is_spellcaster, focus_points, archive_link,
cr_type, family, license, source, remaster, alignment,
brute_percentage, magical_striker_percentage, skill_paragon_percentage,
skirmisher_percentage, sniper_percentage, soldier_percentage, spellcaster_percentage`

func scanCreature(rows *sql.Rows) (model.Creature, error) {
	var cr model.Creature
	var aonID sql.NullInt64
	var archive sql.NullString
	var size, rarity, crType, alignment string
	roles := make([]int, 7)

	err := rows.Scan(&cr.ID, &aonID, &cr.Name, &cr.HP, &cr.Level, &size, &rarity,
		&cr.IsMelee, &cr.IsRanged, &cr.IsSpellcaster, &cr.FocusPoints, &archive,
		&crType, &cr.Family, &cr.License, &cr.Source, &cr.Remaster, &alignment,
		&roles[0], &roles[1], &roles[2], &roles[3], &roles[4], &roles[5], &roles[6])
	if err != nil {
		return cr, err
	}
	if aonID.Valid {
		v := aonID.Int64
		cr.AonID = &v
	}
	if archive.Valid {
		v := archive.String
		cr.ArchiveLink = &v
	}
	cr.Size = model.ParseSize(size)
	cr.Rarity = model.ParseRarity(rarity)
	cr.Type = model.ParseCreatureType(crType)
	cr.Alignment = model.ParseAlignment(alignment)
	cr.RolePercentages = map[model.Role]int{
		model.RoleBrute:          roles[0],
		model.RoleMagicalStriker: roles[1],
		model.RoleSkillParagon:   roles[2],
		model.RoleSkirmisher:     roles[3],
		model.RoleSniper:         roles[4],
		model.RoleSoldier:        roles[5],
		model.RoleSpellcaster:    roles[6],
	}
	return cr, nil
}

// creatureTraits reads the trait names associated with a creature. When
// includeAlignment is false the four axis traits are stripped.
func (c *Catalog) creatureTraits(ctx context.Context, gs model.GameSystem, id int64, includeAlignment bool) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(`
SELECT trait_id FROM %s WHERE creature_id = ? ORDER BY rowid`,
		tbl(gs, tblTraitCreature)), id)
	if err != nil {
		return nil, fmt.Errorf("failed to read traits for creature %d: %w", id, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		if !includeAlignment && model.IsAlignmentTrait(t) {
			continue
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// finishCreature attaches traits and recomputes alignment from the
// authoritative trait set; a trait fetch failure yields empty traits.
func (c *Catalog) finishCreature(ctx context.Context, gs model.GameSystem, cr model.Creature) model.Creature {
	all, err := c.creatureTraits(ctx, gs, cr.ID, true)
	if err != nil {
		c.log.Warn("trait fetch failed", zap.Int64("creature_id", cr.ID), zap.Error(err))
		cr.Traits = []string{}
		return cr
	}
	cr.Alignment = model.DeriveAlignment(all, cr.Remaster)
	public := make([]string, 0, len(all))
	for _, t := range all {
		if !model.IsAlignmentTrait(t) {
			public = append(public, t)
		}
	}
	cr.Traits = public
	return cr
}

// FetchCreatures runs an assembled projection query and finishes each row.
func (c *Catalog) FetchCreatures(ctx context.Context, gs model.GameSystem, f CreatureFilter, random bool) ([]model.Creature, error) {
	query, args := BuildCreatureQuery(gs, f, random)
	query = strings.Replace(query, "SELECT *", "SELECT "+creatureCoreColumns, 1)

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("creature query failed: %w", err)
	}
	defer rows.Close()

	var out []model.Creature
	for rows.Next() {
		cr, err := scanCreature(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan creature: %w", err)
		}
		out = append(out, cr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("creature query failed: %w", err)
	}
	for i := range out {
		out[i] = c.finishCreature(ctx, gs, out[i])
	}
	return out, nil
}

// ListCreatures fetches the filtered set, sorts it in-process, and returns
// the total count with the requested page slice.
func (c *Catalog) ListCreatures(ctx context.Context, gs model.GameSystem, f CreatureFilter,
	sortBy model.SortField, order model.Order, cursor uint32, pageSize int) (int, []model.Creature, error) {

	items, err := c.FetchCreatures(ctx, gs, f, false)
	if err != nil {
		return 0, nil, err
	}
	SortCreatures(items, sortBy, order)
	total := len(items)
	return total, PageSlice(items, cursor, pageSize), nil
}

// RandomCreatures samples up to 20 creatures matching the filter.
func (c *Catalog) RandomCreatures(ctx context.Context, gs model.GameSystem, f CreatureFilter) ([]model.Creature, error) {
	return c.FetchCreatures(ctx, gs, f, true)
}

// GetCreature fetches one projected creature with its detail blocks.
func (c *Catalog) GetCreature(ctx context.Context, gs model.GameSystem, id int64) (model.CreatureDetail, error) {
	var d model.CreatureDetail

	rows, err := c.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?", creatureCoreColumns, tbl(gs, tblCreatureCore)), id)
	if err != nil {
		return d, fmt.Errorf("creature fetch failed: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return d, fmt.Errorf("creature fetch failed: %w", err)
		}
		return d, ErrNotFound
	}
	cr, err := scanCreature(rows)
	if err != nil {
		return d, fmt.Errorf("failed to scan creature: %w", err)
	}
	rows.Close()

	d.Core = c.finishCreature(ctx, gs, cr)
	d.VariantData = model.CreatureVariantData{
		Variant:     model.VariantBase,
		Level:       d.Core.Level,
		ArchiveLink: d.Core.ArchiveLink,
	}
	d.Extra, d.Combat, d.Spellcaster = c.creatureDetailBlocks(ctx, gs, id)
	return d, nil
}

// PageSlice returns items[cursor : cursor+pageSize]; pageSize -1 means
// unbounded. A cursor at or past the total yields an empty slice.
func PageSlice[T any](items []T, cursor uint32, pageSize int) []T {
	start := int(cursor)
	if start >= len(items) {
		return []T{}
	}
	if pageSize < 0 {
		return items[start:]
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// SortCreatures orders the listing in-process by the requested field.
func SortCreatures(items []model.Creature, by model.SortField, order model.Order) {
	less := func(a, b model.Creature) bool { return a.ID < b.ID }
	switch by {
	case model.SortByName:
		less = func(a, b model.Creature) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	case model.SortByLevel:
		less = func(a, b model.Creature) bool { return a.Level < b.Level }
	case model.SortByTrait:
		less = func(a, b model.Creature) bool {
			return strings.ToLower(strings.Join(a.Traits, ",")) <
				strings.ToLower(strings.Join(b.Traits, ","))
		}
	case model.SortBySize:
		less = func(a, b model.Creature) bool { return a.Size.Ordinal() < b.Size.Ordinal() }
	case model.SortByType:
		less = func(a, b model.Creature) bool { return a.Type < b.Type }
	case model.SortByHP:
		less = func(a, b model.Creature) bool { return a.HP < b.HP }
	case model.SortByRarity:
		less = func(a, b model.Creature) bool { return a.Rarity.Ordinal() < b.Rarity.Ordinal() }
	case model.SortByFamily:
		less = func(a, b model.Creature) bool {
			return strings.ToLower(a.Family) < strings.ToLower(b.Family)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if order == model.OrderDescending {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}
