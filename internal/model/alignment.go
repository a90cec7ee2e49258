package model

import "strings"

// DeriveAlignment recomputes a creature's alignment from its trait set and
// remaster flag. Remaster content dropped alignment entirely, so remaster
// rows always come back "No". Legacy rows combine the lawful/chaotic and
// good/evil axis traits; a legacy creature with no axis traits is true
// neutral.
//
// The trait set is the authoritative source; the projection column is only a
// pre-derived seed for SQL-side filtering.
func DeriveAlignment(traits []string, remaster bool) Alignment {
	if remaster {
		return AlignmentNo
	}
	var lawAxis, moralAxis byte
	for _, t := range traits {
		switch strings.ToLower(t) {
		case "lawful":
			lawAxis = 'L'
		case "chaotic":
			lawAxis = 'C'
		case "good":
			moralAxis = 'G'
		case "evil":
			moralAxis = 'E'
		}
	}
	switch {
	case lawAxis == 0 && moralAxis == 0:
		return AlignmentN
	case lawAxis == 0:
		if moralAxis == 'G' {
			return AlignmentNG
		}
		return AlignmentNE
	case moralAxis == 0:
		if lawAxis == 'L' {
			return AlignmentLN
		}
		return AlignmentCN
	default:
		return ParseAlignment(string([]byte{lawAxis, moralAxis}))
	}
}

// IsAlignmentTrait reports whether a trait name is one of the four axis
// traits, which are stripped from the public trait list.
func IsAlignmentTrait(t string) bool {
	switch strings.ToLower(t) {
	case "lawful", "chaotic", "good", "evil":
		return true
	}
	return false
}
