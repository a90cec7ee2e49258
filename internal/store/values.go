package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"lorevault/internal/model"
)

// Filter-value enumerations. Populated once per process; a failed
// population fetch collapses to an empty list instead of erroring.

// traitBlacklist forbids exact (case-insensitive) trait names from the
// public enumeration; traitWhitelist admits substring matches back in.
var traitBlacklist = []string{"good", "evil", "lawful", "chaotic", "common"}

var traitWhitelist = []string{"uncommon"}

func traitListed(name string) bool {
	lower := strings.ToLower(name)
	for _, w := range traitWhitelist {
		if strings.Contains(lower, w) {
			return true
		}
	}
	for _, b := range traitBlacklist {
		if lower == b {
			return false
		}
	}
	return true
}

// Families lists the distinct creature families in the projection.
func (c *Catalog) Families(ctx context.Context, gs model.GameSystem) []string {
	return c.valueList(ctx, "families:"+string(gs), fmt.Sprintf(
		"SELECT DISTINCT family FROM %s ORDER BY family", tbl(gs, tblCreatureCore)))
}

// Sources lists the distinct sources in the projection.
func (c *Catalog) Sources(ctx context.Context, gs model.GameSystem) []string {
	return c.valueList(ctx, "sources:"+string(gs), fmt.Sprintf(
		"SELECT DISTINCT source FROM %s ORDER BY source", tbl(gs, tblCreatureCore)))
}

// Traits lists the trait vocabulary minus blacklisted names.
func (c *Catalog) Traits(ctx context.Context, gs model.GameSystem) []string {
	all := c.valueList(ctx, "traits:"+string(gs), fmt.Sprintf(
		"SELECT DISTINCT name FROM %s ORDER BY name", tbl(gs, tblTrait)))
	out := make([]string, 0, len(all))
	for _, t := range all {
		if traitListed(t) {
			out = append(out, t)
		}
	}
	return out
}

func (c *Catalog) valueList(ctx context.Context, key, query string) []string {
	vs, err := cached(c, key, func() ([]string, error) {
		rows, err := c.db.QueryContext(ctx, query)
		if err != nil {
			return nil, err
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
	})
	if err != nil {
		c.log.Warn("value list population failed", zap.String("key", key), zap.Error(err))
		return []string{}
	}
	return vs
}

// AllCreatures is the cached full creature list used by the encounter
// builder's availability intersection.
func (c *Catalog) AllCreatures(ctx context.Context, gs model.GameSystem) ([]model.Creature, error) {
	return cached(c, "creatures:"+string(gs), func() ([]model.Creature, error) {
		items, err := c.FetchCreatures(ctx, gs, CreatureFilter{}, false)
		if err != nil {
			return nil, err
		}
		sort.Slice(items, func(i, j int) bool { return items[i].Level < items[j].Level })
		return items, nil
	})
}
