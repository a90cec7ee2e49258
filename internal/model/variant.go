package model

// Variant adjustment, resolved in one place: level shift, HP band delta,
// modifier delta and the regenerated archive link all derive from a single
// switch on the variant.

// VariantLevel returns the adjusted level for a base level.
// Weak subtracts 1, or 2 at base level 1; Elite adds 1, or 2 at base
// level -1 or 0.
func VariantLevel(base int, v Variant) int {
	switch v {
	case VariantWeak:
		if base == 1 {
			return base - 2
		}
		return base - 1
	case VariantElite:
		if base == -1 || base == 0 {
			return base + 2
		}
		return base + 1
	default:
		return base
	}
}

// VariantHP returns the adjusted hit points, clamped to at least 1.
// The delta is a piecewise band keyed on the base level.
func VariantHP(baseHP, baseLevel int, v Variant) int {
	hp := baseHP
	switch v {
	case VariantWeak:
		switch {
		case baseLevel >= 21:
			hp -= 30
		case baseLevel >= 6:
			hp -= 20
		case baseLevel >= 3:
			hp -= 15
		default:
			hp -= 10
		}
	case VariantElite:
		switch {
		case baseLevel >= 20:
			hp += 30
		case baseLevel >= 5:
			hp += 20
		case baseLevel >= 2:
			hp += 15
		default:
			hp += 10
		}
	}
	if hp < 1 {
		hp = 1
	}
	return hp
}

// ModifierDelta is the flat adjustment applied to attack/DC/save/skill/
// perception modifiers and average strike damage for a variant.
func (v Variant) ModifierDelta() int {
	switch v {
	case VariantWeak:
		return -2
	case VariantElite:
		return 2
	default:
		return 0
	}
}

// ApplyVariant produces the variant view of a creature, adjusting the core
// level/HP and, when present, the detail blocks. When pwl is set, the
// absolute base level is additionally subtracted from every proficiency
// modifier.
func ApplyVariant(d CreatureDetail, v Variant, pwl bool) CreatureDetail {
	base := d.Core.Level
	delta := v.ModifierDelta()
	pwlShift := 0
	if pwl {
		pwlShift = abs(base)
	}

	d.Core.Level = VariantLevel(base, v)
	d.Core.HP = VariantHP(d.Core.HP, base, v)
	d.VariantData = CreatureVariantData{
		Variant:     v,
		Level:       d.Core.Level,
		ArchiveLink: ArchiveLinkFor(d.Core.AonID, d.Core.Type),
	}

	if d.Extra != nil {
		ex := *d.Extra
		ex.Perception = ex.Perception + delta - pwlShift
		skills := make(map[string]int, len(ex.Skills))
		for k, val := range ex.Skills {
			skills[k] = val + delta - pwlShift
		}
		ex.Skills = skills
		d.Extra = &ex
	}
	if d.Combat != nil {
		cb := *d.Combat
		cb.Fortitude = cb.Fortitude + delta - pwlShift
		cb.Reflex = cb.Reflex + delta - pwlShift
		cb.Will = cb.Will + delta - pwlShift
		attacks := make([]CreatureAttack, len(cb.Attacks))
		for i, a := range cb.Attacks {
			a.ToHit = a.ToHit + delta - pwlShift
			a.DamageAvg += delta
			attacks[i] = a
		}
		cb.Attacks = attacks
		d.Combat = &cb
	}
	if d.Spellcaster != nil {
		sc := *d.Spellcaster
		sc.SpellDC = sc.SpellDC + delta - pwlShift
		sc.SpellAttack = sc.SpellAttack + delta - pwlShift
		d.Spellcaster = &sc
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
