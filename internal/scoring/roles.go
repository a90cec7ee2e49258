package scoring

import (
	"strings"

	"lorevault/internal/model"
)

// ScoreRoles computes every role affinity for one creature profile.
// Each role sums distance terms from its constraint set and maps the total
// through the exponential affinity curve.
func ScoreRoles(p Profile, s *Scales) RoleScores {
	return RoleScores{
		model.RoleBrute:          affinity(bruteScore(p, s)),
		model.RoleMagicalStriker: affinity(magicalStrikerScore(p, s)),
		model.RoleSkillParagon:   affinity(skillParagonScore(p, s)),
		model.RoleSkirmisher:     affinity(skirmisherScore(p, s)),
		model.RoleSniper:         affinity(sniperScore(p, s)),
		model.RoleSoldier:        affinity(soldierScore(p, s)),
		model.RoleSpellcaster:    affinity(spellcasterScore(p, s)),
	}
}

func scaleRow(m map[int]ScaleRow, level int) ScaleRow {
	if m == nil {
		return ScaleRow{}
	}
	return m[level]
}

func damageTier(m map[int]StrikeDamageRow, level int, pick func(StrikeDamageRow) string) *int {
	row, ok := m[level]
	if !ok {
		return nil
	}
	avg, ok := DamageAverage(pick(row))
	if !ok {
		return nil
	}
	return &avg
}

// weaponTerm scores one weapon against a to-hit tier and a damage tier;
// missing weapon data contributes the fixed penalty per datum.
func weaponTerm(w WeaponProfile, toHitTier, dmgTier *int) int {
	score := 0
	if w.ToHit == nil {
		score += missingPenalty
	} else {
		score += lbTier(toHitTier, *w.ToHit)
	}
	if w.DamageAvg == nil {
		score += missingPenalty
	} else {
		score += lbTier(dmgTier, *w.DamageAvg)
	}
	return score
}

// bestWeapon returns the lowest score term across the candidate weapons, or
// the fixed penalty when none qualify.
func bestWeapon(ws []WeaponProfile, rangedOnly bool, term func(WeaponProfile) int) int {
	best := -1
	for _, w := range ws {
		if rangedOnly && !w.Ranged {
			continue
		}
		t := term(w)
		if best < 0 || t < best {
			best = t
		}
	}
	if best < 0 {
		return missingPenalty
	}
	return best
}

func bruteScore(p Profile, s *Scales) int {
	per := scaleRow(s.Perception, p.Level)
	ab := scaleRow(s.Ability, p.Level)
	sv := scaleRow(s.SavingThrow, p.Level)
	ac := scaleRow(s.AC, p.Level)
	sb := scaleRow(s.StrikeBonus, p.Level)

	score := ubTier(per.Low, p.Perception)
	score += lbTier(ab.High, p.Str)
	score += bandTier(ab.Moderate, ab.High, p.Con)
	score += ubTier(ab.Low, p.Int)
	score += ubTier(ab.Low, p.Wis)
	score += ubTier(ab.Low, p.Cha)
	score += ubTier(sv.Low, p.Reflex)
	score += ubTier(sv.Low, p.Will)
	score += lbTier(sv.High, p.Fortitude)
	score += ubTier(ac.High, p.AC)

	if hp, ok := s.HP[p.Level]; ok {
		score += lbDistance(hp.HighLB, p.HP)
	} else {
		score += missingPenalty
	}

	dmgHigh := damageTier(s.StrikeDamage, p.Level, func(r StrikeDamageRow) string { return r.High })
	dmgExtreme := damageTier(s.StrikeDamage, p.Level, func(r StrikeDamageRow) string { return r.Extreme })
	score += bestWeapon(p.Weapons, false, func(w WeaponProfile) int {
		highHigh := weaponTerm(w, sb.High, dmgHigh)
		modExtreme := weaponTerm(w, sb.Moderate, dmgExtreme)
		return minInt(highHigh, modExtreme)
	})
	return score
}

func sniperScore(p Profile, s *Scales) int {
	per := scaleRow(s.Perception, p.Level)
	ab := scaleRow(s.Ability, p.Level)
	sv := scaleRow(s.SavingThrow, p.Level)
	sb := scaleRow(s.StrikeBonus, p.Level)

	score := lbTier(per.High, p.Perception)
	score += lbTier(ab.High, p.Dex)
	score += lbTier(sv.High, p.Reflex)

	dmgModerate := damageTier(s.StrikeDamage, p.Level, func(r StrikeDamageRow) string { return r.Moderate })
	score += bestWeapon(p.Weapons, true, func(w WeaponProfile) int {
		return weaponTerm(w, sb.High, dmgModerate)
	})
	return score
}

func skirmisherScore(p Profile, s *Scales) int {
	ab := scaleRow(s.Ability, p.Level)
	sv := scaleRow(s.SavingThrow, p.Level)

	score := lbTier(ab.High, p.Dex)
	score += ubTier(sv.Low, p.Fortitude)
	score += lbTier(sv.High, p.Reflex)

	maxSpeed := 0
	for _, v := range p.Speeds {
		if v > maxSpeed {
			maxSpeed = v
		}
	}
	if len(p.Speeds) == 0 {
		score += missingPenalty
	} else {
		score += lbDistance(30, maxSpeed)
	}
	return score
}

func soldierScore(p Profile, s *Scales) int {
	ab := scaleRow(s.Ability, p.Level)
	sv := scaleRow(s.SavingThrow, p.Level)
	ac := scaleRow(s.AC, p.Level)
	sb := scaleRow(s.StrikeBonus, p.Level)

	score := lbTier(ab.High, p.Str)
	score += lbTier(ac.High, p.AC)
	score += lbTier(sv.High, p.Fortitude)

	dmgHigh := damageTier(s.StrikeDamage, p.Level, func(r StrikeDamageRow) string { return r.High })
	score += bestWeapon(p.Weapons, false, func(w WeaponProfile) int {
		return weaponTerm(w, sb.High, dmgHigh)
	})
	score += offensiveActionTerm(p.OffensiveActions)
	return score
}

// offensiveActionTerm prefers Attack of Opportunity, tolerates any other
// offensive action, and penalizes having none.
func offensiveActionTerm(actions []string) int {
	if len(actions) == 0 {
		return missingPenalty
	}
	for _, a := range actions {
		n := strings.ToLower(strings.ReplaceAll(a, " ", "-"))
		if n == "attack-of-opportunity" {
			return 0
		}
	}
	return 5
}

func magicalStrikerScore(p Profile, s *Scales) int {
	sb := scaleRow(s.StrikeBonus, p.Level)
	dc := scaleRow(s.SpellDC, p.Level)

	dmgHigh := damageTier(s.StrikeDamage, p.Level, func(r StrikeDamageRow) string { return r.High })
	score := bestWeapon(p.Weapons, false, func(w WeaponProfile) int {
		return weaponTerm(w, sb.High, dmgHigh)
	})

	if p.SpellDC == nil || dc.Moderate == nil || dc.High == nil {
		score += missingPenalty
	} else {
		score += dist(*dc.Moderate, *dc.High+1, *p.SpellDC)
	}

	score += lbDistance(ceilHalf(p.Level)-1, p.SpellCount)
	return score
}

func skillParagonScore(p Profile, s *Scales) int {
	ab := scaleRow(s.Ability, p.Level)
	sv := scaleRow(s.SavingThrow, p.Level)
	sk := scaleRow(s.Skill, p.Level)

	score := 0
	if best, ok := bestSkillAbility(p); ok {
		score += lbTier(ab.High, best)
	} else {
		score += missingPenalty
	}

	score += minInt(lbTier(sv.High, p.Reflex), lbTier(sv.High, p.Will))
	score += ubTier(sv.Low, p.Fortitude)

	if len(p.Skills) == 0 || sk.Moderate == nil {
		score += missingPenalty
	} else {
		have := 0
		for _, v := range p.Skills {
			if v >= *sk.Moderate {
				have++
			}
		}
		need := (7*len(p.Skills) + 9) / 10
		score += lbDistance(need, have)
	}

	score += lbDistance(2, len(p.OffensiveActions))
	return score
}

func spellcasterScore(p Profile, s *Scales) int {
	sv := scaleRow(s.SavingThrow, p.Level)
	dc := scaleRow(s.SpellDC, p.Level)
	ab := scaleRow(s.Ability, p.Level)

	score := ubTier(sv.Low, p.Fortitude)
	score += lbTier(sv.High, p.Will)

	if hp, ok := s.HP[p.Level]; ok {
		score += ubDistance(hp.LowUB, p.HP)
	} else {
		score += missingPenalty
	}

	if p.SpellDC == nil {
		score += missingPenalty
	} else {
		score += lbTier(dc.High, *p.SpellDC)
	}

	score += lbDistance(ceilHalf(p.Level), p.SpellCount)

	mental := p.Int
	if p.Wis > mental {
		mental = p.Wis
	}
	if p.Cha > mental {
		mental = p.Cha
	}
	score += lbTier(ab.High, mental)
	return score
}

// skillAbility maps skill names to the ability modifier backing them.
func bestSkillAbility(p Profile) (int, bool) {
	bestSkill := ""
	bestMod := 0
	first := true
	for name, mod := range p.Skills {
		if first || mod > bestMod {
			bestSkill, bestMod, first = name, mod, false
		}
	}
	if bestSkill == "" {
		return 0, false
	}
	switch strings.ToLower(bestSkill) {
	case "athletics":
		return p.Str, true
	case "acrobatics", "stealth", "thievery":
		return p.Dex, true
	case "arcana", "crafting", "occultism", "society":
		return p.Int, true
	case "medicine", "nature", "religion", "survival":
		return p.Wis, true
	case "deception", "diplomacy", "intimidation", "performance":
		return p.Cha, true
	default:
		return p.Int, true
	}
}

// ceilHalf is ceil(level/2), floored at zero for negative levels.
func ceilHalf(level int) int {
	if level <= 0 {
		return 0
	}
	return (level + 1) / 2
}
