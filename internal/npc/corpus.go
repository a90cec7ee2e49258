// Package npc generates non-player characters: Markov-chain names trained
// on a JSON corpus, nicknames, and random class/level/job rolls.
package npc

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"lorevault/internal/model"
)

// Origin picks which half of the corpus a name request draws from.
type Origin string

const (
	OriginAncestry Origin = "ancestry"
	OriginCulture  Origin = "culture"
)

// Gender keys the training lists inside one corpus entry.
type Gender string

const (
	GenderMale      Gender = "Male"
	GenderFemale    Gender = "Female"
	GenderNonBinary Gender = "NonBinary"
)

var allGenders = []Gender{GenderMale, GenderFemale, GenderNonBinary}

func ParseGender(s string) (Gender, bool) {
	for _, g := range allGenders {
		if strings.EqualFold(s, string(g)) {
			return g, true
		}
	}
	return "", false
}

// Corpus mirrors the names JSON: one block per game system, each split
// into ancestry entries (grouped by rarity) and culture entries.
type Corpus struct {
	PathfinderNames SystemNames `json:"pf_names"`
	StarfinderNames SystemNames `json:"sf_names"`
}

type SystemNames struct {
	ByAncestry AncestryRarities `json:"by_ancestry"`
	ByCulture  []CultureEntry   `json:"by_culture"`
}

type AncestryRarities struct {
	Rarity RarityBuckets `json:"rarity"`
}

type RarityBuckets struct {
	Common   []AncestryEntry `json:"common"`
	Uncommon []AncestryEntry `json:"uncommon"`
	Rare     []AncestryEntry `json:"rare"`
	Unique   []AncestryEntry `json:"unique"`
}

type AncestryEntry struct {
	Ancestry string       `json:"ancestry"`
	Names    []GenderList `json:"names"`
}

type CultureEntry struct {
	Culture string       `json:"culture"`
	Names   []GenderList `json:"names"`
}

type GenderList struct {
	Gender Gender   `json:"gender"`
	List   []string `json:"list"`
}

// Nicknames mirrors the nickname JSON word lists.
type Nicknames struct {
	Terms NicknameTerms `json:"terms"`
}

type NicknameTerms struct {
	Adjectives []string `json:"adjective"`
	Nouns      []string `json:"nouns"`
}

// LoadCorpus reads and decodes the names JSON at path.
func LoadCorpus(path string) (*Corpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name corpus: %w", err)
	}
	var c Corpus
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decoding name corpus: %w", err)
	}
	return &c, nil
}

// LoadNicknames reads and decodes the nickname JSON at path.
func LoadNicknames(path string) (*Nicknames, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading nickname corpus: %w", err)
	}
	var n Nicknames
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("decoding nickname corpus: %w", err)
	}
	return &n, nil
}

func (c *Corpus) system(gs model.GameSystem) SystemNames {
	if gs == model.Starfinder {
		return c.StarfinderNames
	}
	return c.PathfinderNames
}

func (b RarityBuckets) all() []AncestryEntry {
	out := make([]AncestryEntry, 0, len(b.Common)+len(b.Uncommon)+len(b.Rare)+len(b.Unique))
	out = append(out, b.Common...)
	out = append(out, b.Uncommon...)
	out = append(out, b.Rare...)
	out = append(out, b.Unique...)
	return out
}

// ancestryEntry finds the named ancestry across every rarity bucket.
func (c *Corpus) ancestryEntry(gs model.GameSystem, name string) (AncestryEntry, bool) {
	for _, e := range c.system(gs).ByAncestry.Rarity.all() {
		if strings.EqualFold(e.Ancestry, name) {
			return e, true
		}
	}
	return AncestryEntry{}, false
}

func (c *Corpus) cultureEntry(gs model.GameSystem, name string) (CultureEntry, bool) {
	for _, e := range c.system(gs).ByCulture {
		if strings.EqualFold(e.Culture, name) {
			return e, true
		}
	}
	return CultureEntry{}, false
}

// Ancestries lists the ancestry keys of one game system, sorted.
func (c *Corpus) Ancestries(gs model.GameSystem) []string {
	var out []string
	for _, e := range c.system(gs).ByAncestry.Rarity.all() {
		out = append(out, e.Ancestry)
	}
	sort.Strings(out)
	return out
}

// Cultures lists the culture keys of one game system, sorted.
func (c *Corpus) Cultures(gs model.GameSystem) []string {
	var out []string
	for _, e := range c.system(gs).ByCulture {
		out = append(out, e.Culture)
	}
	sort.Strings(out)
	return out
}

// genderLists extracts the non-empty training lists of an entry.
func genderLists(names []GenderList) map[Gender][]string {
	out := map[Gender][]string{}
	for _, gl := range names {
		if len(gl.List) > 0 {
			out[gl.Gender] = gl.List
		}
	}
	return out
}

// trainingList resolves (origin, key, gender) to a training list, checking
// the entry's advertised gender set first.
func (c *Corpus) trainingList(gs model.GameSystem, origin Origin, key string, gender Gender) ([]string, error) {
	var lists map[Gender][]string
	switch origin {
	case OriginCulture:
		entry, ok := c.cultureEntry(gs, key)
		if !ok {
			return nil, fmt.Errorf("%w: culture %q", ErrUnknownKey, key)
		}
		lists = genderLists(entry.Names)
	default:
		entry, ok := c.ancestryEntry(gs, key)
		if !ok {
			return nil, fmt.Errorf("%w: ancestry %q", ErrUnknownKey, key)
		}
		lists = genderLists(entry.Names)
	}
	list, ok := lists[gender]
	if !ok {
		supported := make([]string, 0, len(lists))
		for g := range lists {
			supported = append(supported, string(g))
		}
		sort.Strings(supported)
		return nil, fmt.Errorf("%w: %q does not support gender %s (valid: %s)",
			ErrIncompatibleGender, key, gender, strings.Join(supported, ", "))
	}
	return list, nil
}
