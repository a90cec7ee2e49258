package shop

import (
	"math/rand"
	"strings"
)

// Template shapes the inventory mix of a generated shop. The same three
// merchant archetypes serve both game systems; the item pool they draw
// from is what changes.
type Template string

const (
	TemplateBlacksmith Template = "Blacksmith"
	TemplateAlchemist  Template = "Alchemist"
	TemplateGeneral    Template = "General"
)

// ParseTemplate falls back to the general store for unknown input.
func ParseTemplate(s string) Template {
	switch strings.ToLower(s) {
	case "blacksmith":
		return TemplateBlacksmith
	case "alchemist":
		return TemplateAlchemist
	default:
		return TemplateGeneral
	}
}

// templateData sizes a shop: dice bundles for the two top-level rolls and
// the percentage split of equipables. Whatever the percentages leave over
// is plain equipment.
type templateData struct {
	equipables  Dice
	consumables Dice
	weaponPct   int
	armorPct    int
	shieldPct   int
}

var templates = map[Template]templateData{
	TemplateBlacksmith: {
		equipables:  Dice{Count: 4, Sides: 6, Modifier: 4},
		consumables: Dice{Count: 1, Sides: 4},
		weaponPct:   45, armorPct: 30, shieldPct: 15,
	},
	TemplateAlchemist: {
		equipables:  Dice{Count: 1, Sides: 4},
		consumables: Dice{Count: 4, Sides: 6, Modifier: 4},
	},
	TemplateGeneral: {
		equipables:  Dice{Count: 2, Sides: 6, Modifier: 2},
		consumables: Dice{Count: 2, Sides: 6, Modifier: 2},
		weaponPct:   25, armorPct: 20, shieldPct: 10,
	},
}

// Quotas is the per-bucket item count of one generated shop.
type Quotas struct {
	Equipment   int
	Weapons     int
	Armors      int
	Shields     int
	Consumables int
}

// Equipables is the martial side of the inventory.
func (q Quotas) Equipables() int {
	return q.Equipment + q.Weapons + q.Armors + q.Shields
}

// rollQuotas rolls the template's dice and splits the equipables. A shop
// never stocks more shields than suits of armor.
func rollQuotas(t Template, rng *rand.Rand) Quotas {
	data, ok := templates[t]
	if !ok {
		data = templates[TemplateGeneral]
	}
	n := data.equipables.Roll(rng)
	q := Quotas{
		Consumables: data.consumables.Roll(rng),
		Weapons:     n * data.weaponPct / 100,
		Armors:      n * data.armorPct / 100,
		Shields:     n * data.shieldPct / 100,
	}
	if q.Shields > q.Armors {
		q.Shields = q.Armors
	}
	q.Equipment = n - q.Weapons - q.Armors - q.Shields
	return q
}
