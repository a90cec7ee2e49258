package store

import (
	"strings"

	"lorevault/internal/model"
)

// Queries over the projection are assembled from a small expression tree
// rendered to parameterized SQL. User-controlled strings never reach the
// query text; they travel as bind arguments.

// Expr is one predicate in the WHERE clause.
type Expr interface {
	render(sb *strings.Builder, args *[]any)
}

// InList renders `col IN (?, ...)`.
type InList struct {
	Col    string
	Values []any
}

func (e InList) render(sb *strings.Builder, args *[]any) {
	sb.WriteString(e.Col)
	sb.WriteString(" IN (")
	for i, v := range e.Values {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
		*args = append(*args, v)
	}
	sb.WriteString(")")
}

// Between renders an inclusive bounded predicate.
type Between struct {
	Col    string
	Lo, Hi any
}

func (e Between) render(sb *strings.Builder, args *[]any) {
	sb.WriteString("(")
	sb.WriteString(e.Col)
	sb.WriteString(" >= ? AND ")
	sb.WriteString(e.Col)
	sb.WriteString(" <= ?)")
	*args = append(*args, e.Lo, e.Hi)
}

// Equals renders `col = ?`.
type Equals struct {
	Col   string
	Value any
}

func (e Equals) render(sb *strings.Builder, args *[]any) {
	sb.WriteString(e.Col)
	sb.WriteString(" = ?")
	*args = append(*args, e.Value)
}

// LikeAnyFold renders a case-insensitive substring match against any of
// the given values.
type LikeAnyFold struct {
	Col    string
	Values []string
}

func (e LikeAnyFold) render(sb *strings.Builder, args *[]any) {
	sb.WriteString("(")
	for i, v := range e.Values {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		sb.WriteString("LOWER(")
		sb.WriteString(e.Col)
		sb.WriteString(") LIKE '%' || ? || '%'")
		*args = append(*args, strings.ToLower(v))
	}
	sb.WriteString(")")
}

// SubSelectTraits renders the trait-intersection membership subquery
// against the trait association table. Trait names are folded to lower
// case on both sides; the trait table stores them lowercased.
type SubSelectTraits struct {
	GS     model.GameSystem
	Traits []string
}

func (e SubSelectTraits) render(sb *strings.Builder, args *[]any) {
	sb.WriteString("id IN (SELECT tcat.creature_id FROM ")
	sb.WriteString(tbl(e.GS, tblTraitCreature))
	sb.WriteString(" tcat RIGHT JOIN (SELECT * FROM ")
	sb.WriteString(tbl(e.GS, tblTrait))
	sb.WriteString(" WHERE LOWER(name) IN (")
	for i, t := range e.Traits {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("?")
		*args = append(*args, strings.ToLower(t))
	}
	sb.WriteString(")) tt ON tcat.trait_id = tt.name GROUP BY tcat.creature_id)")
}

// CreatureFilter is the typed filter vocabulary of the listing and random
// sampling endpoints. Empty value sets omit their predicate.
type CreatureFilter struct {
	Levels        []int                   `json:"levels,omitempty"`
	Families      []string                `json:"families,omitempty"`
	Sizes         []model.Size            `json:"sizes,omitempty"`
	Rarities      []model.Rarity          `json:"rarities,omitempty"`
	Melee         []bool                  `json:"melee,omitempty"`
	Ranged        []bool                  `json:"ranged,omitempty"`
	Spellcaster   []bool                  `json:"spellcaster,omitempty"`
	Sources       []string                `json:"sources,omitempty"`
	Traits        []string                `json:"traits,omitempty"`
	CreatureTypes []model.CreatureType    `json:"creature_types,omitempty"`
	Roles         []model.Role            `json:"creature_roles,omitempty"`
	RoleLower     *int                    `json:"role_lower_threshold,omitempty"`
	RoleUpper     *int                    `json:"role_upper_threshold,omitempty"`
	Version       model.GameSystemVersion `json:"game_system_version,omitempty"`
}

// Default role thresholds for the bounded role predicate.
const (
	DefaultRoleLower = 50
	DefaultRoleUpper = 100
)

func anySlice[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// predicates translates a filter to its expression list.
func (f CreatureFilter) predicates(gs model.GameSystem) []Expr {
	var preds []Expr
	if len(f.Levels) > 0 {
		preds = append(preds, InList{Col: "level", Values: anySlice(f.Levels)})
	}
	if len(f.Families) > 0 {
		preds = append(preds, LikeAnyFold{Col: "family", Values: f.Families})
	}
	if len(f.Sizes) > 0 {
		preds = append(preds, InList{Col: "size", Values: anySlice(f.Sizes)})
	}
	if len(f.Rarities) > 0 {
		preds = append(preds, InList{Col: "rarity", Values: anySlice(f.Rarities)})
	}
	if len(f.Melee) > 0 {
		preds = append(preds, InList{Col: "is_melee", Values: anySlice(f.Melee)})
	}
	if len(f.Ranged) > 0 {
		preds = append(preds, InList{Col: "is_ranged", Values: anySlice(f.Ranged)})
	}
	if len(f.Spellcaster) > 0 {
		preds = append(preds, InList{Col: "is_spellcaster", Values: anySlice(f.Spellcaster)})
	}
	if len(f.Sources) > 0 {
		preds = append(preds, InList{Col: "source", Values: anySlice(f.Sources)})
	}
	if len(f.CreatureTypes) > 0 {
		preds = append(preds, InList{Col: "cr_type", Values: anySlice(f.CreatureTypes)})
	}
	if len(f.Roles) > 0 {
		lo, hi := DefaultRoleLower, DefaultRoleUpper
		if f.RoleLower != nil {
			lo = *f.RoleLower
		}
		if f.RoleUpper != nil {
			hi = *f.RoleUpper
		}
		for _, r := range f.Roles {
			preds = append(preds, Between{Col: r.Column(), Lo: lo, Hi: hi})
		}
	}
	if len(f.Traits) > 0 {
		preds = append(preds, SubSelectTraits{GS: gs, Traits: f.Traits})
	}
	switch f.Version {
	case model.VersionLegacy:
		preds = append(preds, Equals{Col: "remaster", Value: false})
	case model.VersionRemaster:
		preds = append(preds, Equals{Col: "remaster", Value: true})
	}
	return preds
}

// BuildCreatureQuery assembles the SELECT over the projection. Random
// sampling paths add ORDER BY RANDOM() LIMIT 20.
func BuildCreatureQuery(gs model.GameSystem, f CreatureFilter, random bool) (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT * FROM ")
	sb.WriteString(tbl(gs, tblCreatureCore))

	preds := f.predicates(gs)
	for i, p := range preds {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		p.render(&sb, &args)
	}
	if random {
		sb.WriteString(" ORDER BY RANDOM() LIMIT 20")
	}
	return sb.String(), args
}
