package store

import (
	"fmt"

	"lorevault/internal/model"
)

// Source table name suffixes. Every table is prefixed with the game system
// tag, e.g. pf_creature_table.
const (
	tblCreature        = "creature_table"
	tblTrait           = "trait_table"
	tblTraitCreature   = "trait_creature_association_table"
	tblTraitHazard     = "trait_hazard_association_table"
	tblTraitItem       = "trait_item_association_table"
	tblWeapon          = "weapon_table"
	tblArmor           = "armor_table"
	tblShield          = "shield_table"
	tblItem            = "item_table"
	tblItemCreature    = "item_creature_association_table"
	tblSpell           = "spell_table"
	tblAction          = "action_table"
	tblHazard          = "hazard_table"
	tblResistance      = "resistance_table"
	tblWeakness        = "weakness_table"
	tblImmunity        = "immunity_table"
	tblLanguage        = "language_table"
	tblSense           = "sense_table"
	tblSpeed           = "speed_table"
	tblSkill           = "skill_table"

	tblAbilityScales     = "ability_scales_table"
	tblACScales          = "ac_scales_table"
	tblAreaDamageScales  = "area_damage_scales_table"
	tblHPScales          = "hp_scales_table"
	tblItemScales        = "item_scales_table"
	tblPerceptionScales  = "perception_scales_table"
	tblResWeakScales     = "res_weak_scales_table"
	tblSavingThrowScales = "saving_throw_scales_table"
	tblSkillScales       = "skill_scales_table"
	tblSpellDCScales     = "spell_dc_and_attack_scales_table"
	tblStrikeBonusScales = "strike_bonus_scales_table"
	tblStrikeDmgScales   = "strike_damage_scales_table"

	tblCreatureCore    = "creature_core"
	tblTmpCreatureCore = "tmp_creature_core"
)

// tbl prefixes a table suffix with the game system tag.
func tbl(gs model.GameSystem, suffix string) string {
	return fmt.Sprintf("%s_%s", gs, suffix)
}
