package model

// Item is a piece of equipment or consumable; weapons, armor and shields
// carry an extra sub-shape.
type Item struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Bulk        float64  `json:"bulk"`
	Quantity    int      `json:"quantity"`
	BaseItem    *string  `json:"base_item,omitempty"`
	Category    string   `json:"category"`
	Group       string   `json:"group"`
	Description string   `json:"description"`
	Hardness    int      `json:"hardness"`
	HP          int      `json:"hp"`
	Level       int      `json:"level"`
	PriceCopper int      `json:"price"`
	Usage       string   `json:"usage"`
	Type        ItemType `json:"item_type"`

	MaterialGrade *string `json:"material_grade,omitempty"`
	MaterialType  *string `json:"material_type,omitempty"`
	NumberOfUses  *int    `json:"number_of_uses,omitempty"`

	License  string `json:"license"`
	Source   string `json:"source"`
	Remaster bool   `json:"remaster"`
	Rarity   Rarity `json:"rarity"`
	Size     Size   `json:"size"`

	Traits []string `json:"traits,omitempty"`

	Weapon *WeaponData `json:"weapon_data,omitempty"`
	Armor  *ArmorData  `json:"armor_data,omitempty"`
	Shield *ShieldData `json:"shield_data,omitempty"`
}

// WeaponData is the weapon sub-shape.
type WeaponData struct {
	DamageDice    string   `json:"damage_dice"`
	ToHit         int      `json:"to_hit"`
	PotencyRunes  int      `json:"potency_runes"`
	StrikingRunes int      `json:"striking_runes"`
	PropertyRunes []string `json:"property_runes,omitempty"`
	Range         *int     `json:"range,omitempty"`
	Reload        *string  `json:"reload,omitempty"`
	Ranged        bool     `json:"ranged"`
}

// ArmorData is the armor sub-shape.
type ArmorData struct {
	ACBonus        int `json:"ac_bonus"`
	CheckPenalty   int `json:"check_penalty"`
	SpeedPenalty   int `json:"speed_penalty"`
	DexCap         int `json:"dex_cap"`
	PotencyRunes   int `json:"potency_runes"`
	ResilientRunes int `json:"resilient_runes"`
}

// ShieldData is the shield sub-shape.
type ShieldData struct {
	ACBonus          int `json:"ac_bonus"`
	ReinforcingRunes int `json:"reinforcing_runes"`
	SpeedPenalty     int `json:"speed_penalty"`
}
