package model

import "fmt"

// Creature is the flat projection row every read path works from, plus the
// trait list fetched from the association table.
type Creature struct {
	ID          int64        `json:"id"`
	AonID       *int64       `json:"aon_id,omitempty"`
	Name        string       `json:"name"`
	HP          int          `json:"hp"`
	Level       int          `json:"level"`
	Size        Size         `json:"size"`
	Rarity      Rarity       `json:"rarity"`
	Family      string       `json:"family"`
	Alignment   Alignment    `json:"alignment"`
	Type        CreatureType `json:"creature_type"`
	License     string       `json:"license"`
	Source      string       `json:"source"`
	Remaster    bool         `json:"remaster"`
	FocusPoints int          `json:"focus_points"`
	ArchiveLink *string      `json:"archive_link,omitempty"`

	IsMelee       bool `json:"is_melee"`
	IsRanged      bool `json:"is_ranged"`
	IsSpellcaster bool `json:"is_spellcaster"`

	// Role affinity percentages, each in [0,100].
	RolePercentages map[Role]int `json:"role_percentages"`

	// Non-alignment trait names, ordered as stored.
	Traits []string `json:"traits"`
}

// ArchiveLink computes the external archive URL for a creature. It is
// present iff the archive id is present.
func ArchiveLinkFor(aonID *int64, t CreatureType) *string {
	if aonID == nil {
		return nil
	}
	page := "Monsters"
	if t == TypeNPC {
		page = "NPCs"
	}
	link := fmt.Sprintf("https://2e.aonprd.com/%s.aspx?ID=%d", page, *aonID)
	return &link
}

// CreatureVariantData is the runtime view of a creature under a variant.
type CreatureVariantData struct {
	Variant     Variant `json:"variant"`
	Level       int     `json:"level"`
	ArchiveLink *string `json:"archive_link,omitempty"`
}

// CreatureExtra carries the non-combat detail block.
type CreatureExtra struct {
	AbilityScores map[string]int `json:"ability_scores"`
	Perception    int            `json:"perception"`
	Skills        map[string]int `json:"skills"`
	Speeds        map[string]int `json:"speeds"`
	Languages     []string       `json:"languages"`
	Senses        []string       `json:"senses"`
}

// CreatureAttack is one strike entry.
type CreatureAttack struct {
	Name      string `json:"name"`
	ToHit     int    `json:"to_hit"`
	Damage    string `json:"damage"`
	DamageAvg int    `json:"damage_avg"`
	Ranged    bool   `json:"ranged"`
}

// CreatureCombat carries the combat detail block.
type CreatureCombat struct {
	AC          int              `json:"ac"`
	Fortitude   int              `json:"fortitude"`
	Reflex      int              `json:"reflex"`
	Will        int              `json:"will"`
	Attacks     []CreatureAttack `json:"attacks"`
	Resistances map[string]int   `json:"resistances,omitempty"`
	Weaknesses  map[string]int   `json:"weaknesses,omitempty"`
	Immunities  []string         `json:"immunities,omitempty"`
}

// CreatureSpellcaster carries the casting detail block.
type CreatureSpellcaster struct {
	Tradition   string `json:"tradition"`
	SpellDC     int    `json:"spell_dc"`
	SpellAttack int    `json:"spell_attack"`
	SpellCount  int    `json:"spell_count"`
	FocusPoints int    `json:"focus_points"`
}

// CreatureDetail is the full payload of a detail endpoint.
type CreatureDetail struct {
	Core        Creature             `json:"core"`
	VariantData CreatureVariantData  `json:"variant_data"`
	Extra       *CreatureExtra       `json:"extra,omitempty"`
	Combat      *CreatureCombat      `json:"combat,omitempty"`
	Spellcaster *CreatureSpellcaster `json:"spellcaster,omitempty"`
}
