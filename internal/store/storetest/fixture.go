// Package storetest holds the shared database fixture for tests in this
// module. The fixture is a small but complete pf schema: four creatures,
// two hazards, shop stock, and scale rows for levels -1..3.
//
// It deliberately depends only on database/sql so both the store package
// tests and the HTTP server tests can seed a catalog without an import
// cycle.
package storetest

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

// Apply creates the fixture schema and inserts the seed rows.
func Apply(t *testing.T, db *sql.DB) {
	t.Helper()
	for _, stmt := range Schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err, "schema statement failed: %s", stmt)
	}
	for _, stmt := range Seed {
		_, err := db.Exec(stmt)
		require.NoError(t, err, "seed statement failed: %s", stmt)
	}
}

var Schema = []string{
	`CREATE TABLE pf_creature_table (
		id INTEGER PRIMARY KEY,
		aon_id INTEGER,
		name TEXT NOT NULL,
		hp INTEGER NOT NULL,
		level INTEGER NOT NULL,
		size TEXT NOT NULL,
		rarity TEXT NOT NULL,
		family TEXT NOT NULL DEFAULT '-',
		cr_type TEXT NOT NULL DEFAULT 'Monster',
		license TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		remaster BOOLEAN NOT NULL DEFAULT 0,
		focus_points INTEGER NOT NULL DEFAULT 0,
		ac INTEGER NOT NULL DEFAULT 10,
		fortitude INTEGER NOT NULL DEFAULT 0,
		reflex INTEGER NOT NULL DEFAULT 0,
		will INTEGER NOT NULL DEFAULT 0,
		perception INTEGER NOT NULL DEFAULT 0,
		strength INTEGER NOT NULL DEFAULT 0,
		dexterity INTEGER NOT NULL DEFAULT 0,
		constitution INTEGER NOT NULL DEFAULT 0,
		intelligence INTEGER NOT NULL DEFAULT 0,
		wisdom INTEGER NOT NULL DEFAULT 0,
		charisma INTEGER NOT NULL DEFAULT 0,
		spell_dc INTEGER,
		spell_attack INTEGER,
		tradition TEXT
	)`,
	`CREATE TABLE pf_trait_table (name TEXT PRIMARY KEY)`,
	`CREATE TABLE pf_trait_creature_association_table (
		creature_id INTEGER NOT NULL, trait_id TEXT NOT NULL)`,
	`CREATE TABLE pf_trait_hazard_association_table (
		hazard_id INTEGER NOT NULL, trait_id TEXT NOT NULL)`,
	`CREATE TABLE pf_trait_item_association_table (
		item_id INTEGER NOT NULL, trait_id TEXT NOT NULL)`,
	`CREATE TABLE pf_item_table (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		bulk REAL NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 1,
		base_item TEXT,
		category TEXT NOT NULL DEFAULT '',
		item_group TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		hardness INTEGER NOT NULL DEFAULT 0,
		hp INTEGER NOT NULL DEFAULT 0,
		level INTEGER NOT NULL DEFAULT 0,
		price INTEGER NOT NULL DEFAULT 0,
		usage TEXT NOT NULL DEFAULT '',
		item_type TEXT NOT NULL DEFAULT 'Equipment',
		material_grade TEXT,
		material_type TEXT,
		number_of_uses INTEGER,
		license TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT '',
		remaster BOOLEAN NOT NULL DEFAULT 0,
		rarity TEXT NOT NULL DEFAULT 'Common',
		size TEXT NOT NULL DEFAULT 'Medium'
	)`,
	`CREATE TABLE pf_weapon_table (
		item_id INTEGER NOT NULL,
		damage_dice TEXT NOT NULL DEFAULT '',
		damage_avg INTEGER,
		to_hit INTEGER,
		potency_runes INTEGER NOT NULL DEFAULT 0,
		striking_runes INTEGER NOT NULL DEFAULT 0,
		property_runes TEXT NOT NULL DEFAULT '',
		weapon_range INTEGER,
		reload TEXT,
		ranged BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE pf_armor_table (
		item_id INTEGER NOT NULL,
		ac_bonus INTEGER NOT NULL DEFAULT 0,
		check_penalty INTEGER NOT NULL DEFAULT 0,
		speed_penalty INTEGER NOT NULL DEFAULT 0,
		dex_cap INTEGER NOT NULL DEFAULT 0,
		potency_runes INTEGER NOT NULL DEFAULT 0,
		resilient_runes INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE pf_shield_table (
		item_id INTEGER NOT NULL,
		ac_bonus INTEGER NOT NULL DEFAULT 0,
		reinforcing_runes INTEGER NOT NULL DEFAULT 0,
		speed_penalty INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE pf_item_creature_association_table (
		creature_id INTEGER NOT NULL, item_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1)`,
	`CREATE TABLE pf_spell_table (
		creature_id INTEGER NOT NULL, name TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 1)`,
	`CREATE TABLE pf_action_table (
		creature_id INTEGER, hazard_id INTEGER,
		name TEXT NOT NULL, slug TEXT NOT NULL DEFAULT '',
		offensive BOOLEAN NOT NULL DEFAULT 0)`,
	`CREATE TABLE pf_hazard_table (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		ac INTEGER NOT NULL DEFAULT 0,
		hardness INTEGER NOT NULL DEFAULT 0,
		hp INTEGER NOT NULL DEFAULT 0,
		has_health BOOLEAN NOT NULL DEFAULT 0,
		complexity TEXT NOT NULL DEFAULT 'Simple',
		level INTEGER NOT NULL DEFAULT 0,
		rarity TEXT NOT NULL DEFAULT 'Common',
		size TEXT NOT NULL DEFAULT 'Medium',
		source TEXT NOT NULL DEFAULT '',
		license TEXT NOT NULL DEFAULT '',
		remaster BOOLEAN NOT NULL DEFAULT 0,
		will INTEGER, reflex INTEGER, fortitude INTEGER,
		description TEXT NOT NULL DEFAULT '',
		disable TEXT NOT NULL DEFAULT '',
		reset TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE pf_resistance_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL, value INTEGER NOT NULL)`,
	`CREATE TABLE pf_weakness_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL, value INTEGER NOT NULL)`,
	`CREATE TABLE pf_immunity_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL)`,
	`CREATE TABLE pf_language_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL)`,
	`CREATE TABLE pf_sense_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL)`,
	`CREATE TABLE pf_speed_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL, value INTEGER NOT NULL)`,
	`CREATE TABLE pf_skill_table (creature_id INTEGER NOT NULL, name TEXT NOT NULL, modifier INTEGER NOT NULL)`,
	`CREATE TABLE pf_ability_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_ac_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_area_damage_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_item_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_perception_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_res_weak_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_saving_throw_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_skill_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_spell_dc_and_attack_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_strike_bonus_scales_table (level INTEGER PRIMARY KEY, extreme INTEGER, high INTEGER, moderate INTEGER, low INTEGER, terrible INTEGER)`,
	`CREATE TABLE pf_hp_scales_table (level INTEGER PRIMARY KEY, high_ub INTEGER NOT NULL, high_lb INTEGER NOT NULL, low_ub INTEGER NOT NULL, low_lb INTEGER NOT NULL)`,
	`CREATE TABLE pf_strike_damage_scales_table (level INTEGER PRIMARY KEY, extreme TEXT NOT NULL, high TEXT NOT NULL, moderate TEXT NOT NULL, low TEXT NOT NULL)`,
}

var Seed = []string{
	// Traits.
	`INSERT INTO pf_trait_table (name) VALUES
		('goblin'), ('humanoid'), ('fiend'), ('devil'), ('fire'),
		('chaotic'), ('lawful'), ('evil'), ('good'), ('uncommon'),
		('magical'), ('healing'), ('alchemical')`,

	// Creatures.
	`INSERT INTO pf_creature_table
		(id, aon_id, name, hp, level, size, rarity, family, cr_type, source, remaster, focus_points,
		 ac, fortitude, reflex, will, perception,
		 strength, dexterity, constitution, intelligence, wisdom, charisma, spell_dc, spell_attack, tradition)
	 VALUES
		(1, 56, 'Goblin Warrior', 15, 1, 'Small', 'Common', 'Goblin', 'Monster', 'Bestiary', 0, 0,
		 16, 5, 7, 3, 5, 2, 3, 1, 0, 0, 1, NULL, NULL, NULL),
		(2, 122, 'Hell Hound', 40, 3, 'Medium', 'Common', 'Hound', 'Monster', 'Bestiary', 0, 0,
		 19, 12, 8, 6, 7, 4, 2, 3, -1, 1, -1, NULL, NULL, NULL),
		(3, NULL, 'Imp Occultist', 14, 1, 'Tiny', 'Uncommon', 'Devil', 'NPC', 'Bestiary 2', 1, 1,
		 15, 5, 7, 9, 7, 0, 3, 1, 2, 2, 4, 17, 9, 'occult'),
		(4, 310, 'Goblin Archer', 18, 1, 'Small', 'Common', 'Goblin', 'Monster', 'Bestiary', 0, 0,
		 16, 4, 9, 3, 6, 1, 4, 1, 0, 0, 1, NULL, NULL, NULL)`,

	`INSERT INTO pf_trait_creature_association_table (creature_id, trait_id) VALUES
		(1, 'goblin'), (1, 'humanoid'), (1, 'chaotic'), (1, 'evil'),
		(2, 'fiend'), (2, 'fire'), (2, 'lawful'), (2, 'evil'),
		(3, 'devil'), (3, 'fiend'),
		(4, 'goblin'), (4, 'humanoid'), (4, 'chaotic'), (4, 'evil')`,

	// Items: creature weapons plus shop stock.
	`INSERT INTO pf_item_table (id, name, category, level, price, item_type, rarity, source) VALUES
		(10, 'Dogslicer', 'martial', 0, 10, 'Weapon', 'Common', 'Bestiary'),
		(11, 'Jaws', 'unarmed', 0, 0, 'Weapon', 'Common', 'Bestiary'),
		(12, 'Shortbow', 'martial', 0, 300, 'Weapon', 'Common', 'Bestiary'),
		(13, 'Healing Potion', 'potion', 1, 400, 'Consumable', 'Common', 'Core'),
		(14, 'Chain Mail', 'armor', 1, 600, 'Armor', 'Common', 'Core'),
		(15, 'Steel Shield', 'shield', 0, 200, 'Shield', 'Common', 'Core'),
		(16, 'Torch', 'adventuring gear', 0, 1, 'Equipment', 'Common', 'Core'),
		(17, 'Longsword', 'martial', 0, 100, 'Weapon', 'Common', 'Core'),
		(18, 'Alchemist Fire', 'bomb', 1, 300, 'Consumable', 'Common', 'Core'),
		(19, 'Rope', 'adventuring gear', 0, 50, 'Equipment', 'Common', 'Core')`,

	`INSERT INTO pf_weapon_table (item_id, damage_dice, damage_avg, to_hit, property_runes, ranged) VALUES
		(10, '1d6 (3)', 3, 8, '', 0),
		(11, '1d8+2 (6)', 6, 12, '', 0),
		(12, '1d6 (3)', 3, 9, '', 1),
		(17, '1d8 (4)', 4, 0, 'flaming', 0)`,
	`INSERT INTO pf_armor_table (item_id, ac_bonus, check_penalty, speed_penalty, dex_cap) VALUES
		(14, 4, -2, -5, 1)`,
	`INSERT INTO pf_shield_table (item_id, ac_bonus, reinforcing_runes, speed_penalty) VALUES
		(15, 2, 0, 0)`,

	`INSERT INTO pf_trait_item_association_table (item_id, trait_id) VALUES
		(13, 'magical'), (13, 'healing'), (18, 'alchemical'), (18, 'fire')`,

	`INSERT INTO pf_item_creature_association_table (creature_id, item_id, quantity) VALUES
		(1, 10, 1), (2, 11, 1), (4, 12, 1)`,

	`INSERT INTO pf_spell_table (creature_id, name, level) VALUES
		(3, 'fear', 1), (3, 'detect magic', 1), (3, 'invisibility', 2)`,

	`INSERT INTO pf_action_table (creature_id, hazard_id, name, slug, offensive) VALUES
		(2, NULL, 'Breath Weapon', 'breath-weapon', 1),
		(4, NULL, 'Attack of Opportunity', 'attack-of-opportunity', 1)`,

	`INSERT INTO pf_speed_table (creature_id, name, value) VALUES
		(1, 'land', 25), (2, 'land', 40), (3, 'fly', 40), (4, 'land', 25)`,
	`INSERT INTO pf_skill_table (creature_id, name, modifier) VALUES
		(1, 'Acrobatics', 5), (1, 'Stealth', 5),
		(2, 'Acrobatics', 7),
		(3, 'Deception', 7), (3, 'Occultism', 6)`,
	`INSERT INTO pf_language_table (creature_id, name) VALUES (1, 'Goblin'), (3, 'Common')`,
	`INSERT INTO pf_sense_table (creature_id, name) VALUES (1, 'darkvision'), (2, 'scent')`,
	`INSERT INTO pf_resistance_table (creature_id, name, value) VALUES (2, 'fire', 10)`,
	`INSERT INTO pf_weakness_table (creature_id, name, value) VALUES (3, 'good', 3)`,
	`INSERT INTO pf_immunity_table (creature_id, name) VALUES (2, 'fire')`,

	// Hazards.
	`INSERT INTO pf_hazard_table
		(id, name, ac, hardness, hp, has_health, complexity, level, rarity, size, source, will, reflex, fortitude, description, disable, reset)
	 VALUES
		(1, 'Hidden Pit', 10, 5, 20, 1, 'Simple', 0, 'Common', 'Large', 'Core', NULL, 8, NULL, 'A pit.', 'Thievery DC 12', 'Manual'),
		(2, 'Bloodthirsty Urge', 17, 0, 0, 0, 'Complex', 2, 'Uncommon', 'Medium', 'Core', 11, NULL, NULL, 'A haunt.', 'Religion DC 18', '1 day')`,
	`INSERT INTO pf_trait_hazard_association_table (hazard_id, trait_id) VALUES
		(1, 'uncommon'), (2, 'evil')`,
	`INSERT INTO pf_action_table (creature_id, hazard_id, name, slug, offensive) VALUES
		(NULL, 1, 'Pitfall', 'pitfall', 1)`,

	// Scale rows for levels -1..3.
	`INSERT INTO pf_ability_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 4, 3, 2, 0, -4), (0, 4, 3, 2, 0, -4), (1, 5, 4, 3, 1, -4),
		(2, 5, 4, 3, 1, -4), (3, 5, 4, 2, 1, -4)`,
	`INSERT INTO pf_ac_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 18, 15, 14, 12, NULL), (0, 19, 16, 15, 13, NULL), (1, 19, 16, 15, 13, NULL),
		(2, 21, 18, 17, 15, NULL), (3, 22, 19, 18, 16, NULL)`,
	`INSERT INTO pf_perception_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 9, 8, 5, 2, 0), (0, 10, 9, 6, 3, 1), (1, 11, 10, 7, 4, 2),
		(2, 12, 11, 8, 5, 3), (3, 14, 12, 9, 6, 4)`,
	`INSERT INTO pf_saving_throw_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 9, 8, 5, 2, 0), (0, 10, 9, 6, 3, 1), (1, 11, 10, 7, 4, 2),
		(2, 12, 11, 8, 5, 3), (3, 14, 12, 9, 6, 4)`,
	`INSERT INTO pf_skill_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 8, 5, 4, 2, NULL), (0, 9, 6, 5, 3, NULL), (1, 10, 7, 6, 4, NULL),
		(2, 11, 8, 7, 5, NULL), (3, 13, 10, 9, 7, NULL)`,
	`INSERT INTO pf_strike_bonus_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 10, 8, 6, 4, NULL), (0, 10, 8, 6, 4, NULL), (1, 11, 9, 7, 5, NULL),
		(2, 13, 11, 9, 7, NULL), (3, 14, 12, 10, 8, NULL)`,
	`INSERT INTO pf_spell_dc_and_attack_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 19, 16, 13, 10, NULL), (0, 19, 16, 13, 10, NULL), (1, 20, 17, 14, 11, NULL),
		(2, 22, 18, 15, 12, NULL), (3, 23, 20, 17, 14, NULL)`,
	`INSERT INTO pf_area_damage_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 4, 3, 2, 1, NULL), (0, 6, 4, 3, 2, NULL), (1, 7, 5, 4, 2, NULL),
		(2, 11, 8, 6, 4, NULL), (3, 14, 10, 7, 5, NULL)`,
	`INSERT INTO pf_item_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 0, 0, 0, 0, NULL), (0, 0, 0, 0, 0, NULL), (1, 1, 1, 0, 0, NULL),
		(2, 2, 1, 1, 0, NULL), (3, 3, 2, 1, 1, NULL)`,
	`INSERT INTO pf_res_weak_scales_table (level, extreme, high, moderate, low, terrible) VALUES
		(-1, 1, 1, 1, 1, NULL), (0, 3, 1, 1, 1, NULL), (1, 3, 2, 2, 2, NULL),
		(2, 5, 2, 2, 2, NULL), (3, 6, 3, 3, 3, NULL)`,
	`INSERT INTO pf_hp_scales_table (level, high_ub, high_lb, low_ub, low_lb) VALUES
		(-1, 9, 9, 6, 5), (0, 20, 17, 13, 11), (1, 26, 24, 16, 14),
		(2, 40, 36, 25, 21), (3, 59, 53, 37, 31)`,
	`INSERT INTO pf_strike_damage_scales_table (level, extreme, high, moderate, low) VALUES
		(-1, '1d6+2 (5)', '1d6+1 (4)', '1d4+1 (3)', '1d4 (2)'),
		(0, '1d6+3 (6)', '1d6+2 (5)', '1d4+2 (4)', '1d4+1 (3)'),
		(1, '1d8+4 (8)', '1d6+3 (6)', '1d6+2 (5)', '1d4+2 (4)'),
		(2, '1d12+4 (11)', '1d10+4 (9)', '1d8+4 (8)', '1d6+3 (6)'),
		(3, '1d12+8 (14)', '1d10+6 (12)', '1d8+6 (10)', '1d6+5 (8)')`,
}
