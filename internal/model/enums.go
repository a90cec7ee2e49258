// Package model holds the catalog domain types: creatures, hazards, items
// and the enumerations they are described with. Parsing an unknown string
// never fails; every enum has a default it falls back to, so a malformed
// database row degrades instead of erroring.
package model

import "strings"

// GameSystem selects which catalog a request operates on.
type GameSystem string

const (
	Pathfinder GameSystem = "pf"
	Starfinder GameSystem = "sf"
)

// WireIndex returns the stable variant index used by the shareable codec.
func (g GameSystem) WireIndex() uint64 {
	if g == Starfinder {
		return 1
	}
	return 0
}

// GameSystemFromWire is the inverse of WireIndex.
func GameSystemFromWire(idx uint64) GameSystem {
	if idx == 1 {
		return Starfinder
	}
	return Pathfinder
}

func ParseGameSystem(s string) GameSystem {
	switch strings.ToLower(s) {
	case "sf", "starfinder":
		return Starfinder
	default:
		return Pathfinder
	}
}

// Size is the creature/hazard size category.
type Size string

const (
	SizeTiny       Size = "Tiny"
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeHuge       Size = "Huge"
	SizeGargantuan Size = "Gargantuan"
)

// AllSizes is ordered smallest to largest; ordinal comparisons rely on it.
var AllSizes = []Size{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}

func ParseSize(s string) Size {
	for _, v := range AllSizes {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return SizeMedium
}

// Ordinal returns the size rank for sorting; Tiny is 0.
func (s Size) Ordinal() int {
	for i, v := range AllSizes {
		if v == s {
			return i
		}
	}
	return 2
}

// Rarity of a catalog entry.
type Rarity string

const (
	RarityCommon   Rarity = "Common"
	RarityUncommon Rarity = "Uncommon"
	RarityRare     Rarity = "Rare"
	RarityUnique   Rarity = "Unique"
)

var AllRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityUnique}

func ParseRarity(s string) Rarity {
	for _, v := range AllRarities {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return RarityCommon
}

func (r Rarity) Ordinal() int {
	for i, v := range AllRarities {
		if v == r {
			return i
		}
	}
	return 0
}

// Alignment covers the nine classical alignments plus the remaster "No"
// and the wildcard "Any".
type Alignment string

const (
	AlignmentLG  Alignment = "LG"
	AlignmentNG  Alignment = "NG"
	AlignmentCG  Alignment = "CG"
	AlignmentLN  Alignment = "LN"
	AlignmentN   Alignment = "N"
	AlignmentCN  Alignment = "CN"
	AlignmentLE  Alignment = "LE"
	AlignmentNE  Alignment = "NE"
	AlignmentCE  Alignment = "CE"
	AlignmentNo  Alignment = "No"
	AlignmentAny Alignment = "Any"
)

var AllAlignments = []Alignment{
	AlignmentLG, AlignmentNG, AlignmentCG,
	AlignmentLN, AlignmentN, AlignmentCN,
	AlignmentLE, AlignmentNE, AlignmentCE,
	AlignmentNo, AlignmentAny,
}

func ParseAlignment(s string) Alignment {
	for _, v := range AllAlignments {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return AlignmentNo
}

// CreatureType distinguishes stock monsters from statted NPCs.
type CreatureType string

const (
	TypeMonster CreatureType = "Monster"
	TypeNPC     CreatureType = "NPC"
)

var AllCreatureTypes = []CreatureType{TypeMonster, TypeNPC}

func ParseCreatureType(s string) CreatureType {
	if strings.EqualFold(s, string(TypeNPC)) {
		return TypeNPC
	}
	return TypeMonster
}

// Role is one of the seven combat archetypes a creature is scored against.
type Role string

const (
	RoleBrute          Role = "Brute"
	RoleMagicalStriker Role = "MagicalStriker"
	RoleSkillParagon   Role = "SkillParagon"
	RoleSkirmisher     Role = "Skirmisher"
	RoleSniper         Role = "Sniper"
	RoleSoldier        Role = "Soldier"
	RoleSpellcaster    Role = "Spellcaster"
)

var AllRoles = []Role{
	RoleBrute, RoleMagicalStriker, RoleSkillParagon,
	RoleSkirmisher, RoleSniper, RoleSoldier, RoleSpellcaster,
}

func ParseRole(s string) (Role, bool) {
	for _, v := range AllRoles {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}

// Column returns the creature_core column holding this role's percentage.
func (r Role) Column() string {
	switch r {
	case RoleBrute:
		return "brute_percentage"
	case RoleMagicalStriker:
		return "magical_striker_percentage"
	case RoleSkillParagon:
		return "skill_paragon_percentage"
	case RoleSkirmisher:
		return "skirmisher_percentage"
	case RoleSniper:
		return "sniper_percentage"
	case RoleSoldier:
		return "soldier_percentage"
	default:
		return "spellcaster_percentage"
	}
}

// Variant selects the base stat block or its weak/elite adjustment.
type Variant string

const (
	VariantBase  Variant = "Base"
	VariantWeak  Variant = "Weak"
	VariantElite Variant = "Elite"
)

func ParseVariant(s string) Variant {
	switch strings.ToLower(s) {
	case "weak":
		return VariantWeak
	case "elite":
		return VariantElite
	default:
		return VariantBase
	}
}

// Challenge is the encounter difficulty band.
type Challenge string

const (
	ChallengeTrivial    Challenge = "Trivial"
	ChallengeLow        Challenge = "Low"
	ChallengeModerate   Challenge = "Moderate"
	ChallengeSevere     Challenge = "Severe"
	ChallengeExtreme    Challenge = "Extreme"
	ChallengeImpossible Challenge = "Impossible"
)

var AllChallenges = []Challenge{
	ChallengeTrivial, ChallengeLow, ChallengeModerate,
	ChallengeSevere, ChallengeExtreme, ChallengeImpossible,
}

func ParseChallenge(s string) Challenge {
	for _, v := range AllChallenges {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return ChallengeModerate
}

// AdventureGroup is a fixed composition template used instead of a
// difficulty band.
type AdventureGroup string

const (
	GroupBossAndLackeys        AdventureGroup = "BossAndLackeys"
	GroupBossAndLieutenant     AdventureGroup = "BossAndLieutenant"
	GroupEliteEnemies          AdventureGroup = "EliteEnemies"
	GroupLieutenantAndLackeys  AdventureGroup = "LieutenantAndLackeys"
	GroupMatedPair             AdventureGroup = "MatedPair"
	GroupTroop                 AdventureGroup = "Troop"
	GroupMookSquad             AdventureGroup = "MookSquad"
)

var AllAdventureGroups = []AdventureGroup{
	GroupBossAndLackeys, GroupBossAndLieutenant, GroupEliteEnemies,
	GroupLieutenantAndLackeys, GroupMatedPair, GroupTroop, GroupMookSquad,
}

func ParseAdventureGroup(s string) (AdventureGroup, bool) {
	for _, v := range AllAdventureGroups {
		if strings.EqualFold(string(v), s) {
			return v, true
		}
	}
	return "", false
}

// HazardComplexity distinguishes one-roll hazards from initiative-taking ones.
type HazardComplexity string

const (
	HazardSimple  HazardComplexity = "Simple"
	HazardComplex HazardComplexity = "Complex"
)

func ParseHazardComplexity(s string) HazardComplexity {
	if strings.EqualFold(s, string(HazardComplex)) {
		return HazardComplex
	}
	return HazardSimple
}

// ItemType buckets shop inventory.
type ItemType string

const (
	ItemConsumable ItemType = "Consumable"
	ItemEquipment  ItemType = "Equipment"
	ItemWeapon     ItemType = "Weapon"
	ItemArmor      ItemType = "Armor"
	ItemShield     ItemType = "Shield"
)

func ParseItemType(s string) ItemType {
	switch strings.ToLower(s) {
	case "consumable":
		return ItemConsumable
	case "weapon":
		return ItemWeapon
	case "armor":
		return ItemArmor
	case "shield":
		return ItemShield
	default:
		return ItemEquipment
	}
}

// GameSystemVersion filters legacy vs remaster content.
type GameSystemVersion string

const (
	VersionLegacy   GameSystemVersion = "Legacy"
	VersionRemaster GameSystemVersion = "Remaster"
	VersionAny      GameSystemVersion = "Any"
)

func ParseGameSystemVersion(s string) GameSystemVersion {
	switch strings.ToLower(s) {
	case "legacy":
		return VersionLegacy
	case "remaster":
		return VersionRemaster
	default:
		return VersionAny
	}
}

// SortField names the listing sort keys.
type SortField string

const (
	SortByID     SortField = "Id"
	SortByName   SortField = "Name"
	SortByLevel  SortField = "Level"
	SortByTrait  SortField = "Trait"
	SortBySize   SortField = "Size"
	SortByType   SortField = "Type"
	SortByHP     SortField = "Hp"
	SortByRarity SortField = "Rarity"
	SortByFamily SortField = "Family"
)

func ParseSortField(s string) SortField {
	for _, v := range []SortField{
		SortByID, SortByName, SortByLevel, SortByTrait, SortBySize,
		SortByType, SortByHP, SortByRarity, SortByFamily,
	} {
		if strings.EqualFold(string(v), s) {
			return v
		}
	}
	return SortByID
}

// Order is the listing sort direction.
type Order string

const (
	OrderAscending  Order = "Ascending"
	OrderDescending Order = "Descending"
)

func ParseOrder(s string) Order {
	if strings.EqualFold(s, string(OrderDescending)) {
		return OrderDescending
	}
	return OrderAscending
}
