// Package shop synthesizes randomized shop inventories from the item
// catalog, sized by dice rolls and shaped by merchant templates.
package shop

import (
	"fmt"
	"math/rand"
)

// Dice is a bundle of identical dice plus a flat modifier, e.g. 2d6+2.
type Dice struct {
	Count    int
	Sides    int
	Modifier int
}

// Roll sums Count rolls of a Sides-sided die and adds the modifier.
func (d Dice) Roll(rng *rand.Rand) int {
	total := d.Modifier
	for i := 0; i < d.Count; i++ {
		total += rng.Intn(d.Sides) + 1
	}
	return total
}

func (d Dice) String() string {
	if d.Modifier == 0 {
		return fmt.Sprintf("%dd%d", d.Count, d.Sides)
	}
	return fmt.Sprintf("%dd%d+%d", d.Count, d.Sides, d.Modifier)
}
