package model

// HazardSaves holds the optional save modifiers of a hazard.
type HazardSaves struct {
	Will      *int `json:"will,omitempty"`
	Reflex    *int `json:"reflex,omitempty"`
	Fortitude *int `json:"fortitude,omitempty"`
}

// Hazard is a trap or environmental danger.
type Hazard struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	AC         int              `json:"ac"`
	Hardness   int              `json:"hardness"`
	HP         int              `json:"hp"`
	HasHealth  bool             `json:"has_health"`
	Complexity HazardComplexity `json:"complexity"`
	Level      int              `json:"level"`
	Rarity     Rarity           `json:"rarity"`
	Size       Size             `json:"size"`
	Source     string           `json:"source"`
	License    string           `json:"license"`
	Remaster   bool             `json:"remaster"`
	Saves      HazardSaves      `json:"saves"`

	Description string `json:"description"`
	Disable     string `json:"disable,omitempty"`
	Reset       string `json:"reset,omitempty"`

	Actions []string `json:"actions,omitempty"`
	Traits  []string `json:"traits,omitempty"`
}
