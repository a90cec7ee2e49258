package npc

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"lorevault/internal/model"
)

var (
	// ErrUnknownKey means the requested ancestry or culture is not in the
	// corpus.
	ErrUnknownKey = errors.New("unknown name corpus key")
	// ErrIncompatibleGender means the corpus entry does not train a list
	// for the requested gender.
	ErrIncompatibleGender = errors.New("gender not supported by corpus entry")
)

var pathfinderClasses = []string{
	"Alchemist", "Barbarian", "Bard", "Champion", "Cleric", "Druid",
	"Fighter", "Gunslinger", "Inventor", "Investigator", "Kineticist",
	"Magus", "Monk", "Oracle", "Psychic", "Ranger", "Rogue", "Sorcerer",
	"Summoner", "Swashbuckler", "Thaumaturge", "Witch", "Wizard",
}

var starfinderClasses = []string{
	"Envoy", "Mechanic", "Mystic", "Operative", "Solarian", "Soldier",
	"Technomancer", "Witchwarper",
}

var commonJobs = []string{
	"Baker", "Blacksmith", "Farmer", "Fisher", "Guard", "Herbalist",
	"Innkeeper", "Merchant", "Miner", "Sailor", "Scribe", "Tailor",
	"Tanner",
}

// Generator owns the lazily-loaded corpora and the per-entry Markov
// chains. Both are populated once per process; concurrent first callers
// collapse onto one loader.
type Generator struct {
	namesPath     string
	nicknamesPath string
	log           *zap.Logger

	group  singleflight.Group
	mu     sync.Mutex
	corpus *Corpus
	nick   *Nicknames
	chains map[string]*chain

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewGenerator(namesPath, nicknamesPath string, log *zap.Logger, rng *rand.Rand) *Generator {
	return &Generator{
		namesPath:     namesPath,
		nicknamesPath: nicknamesPath,
		log:           log.Named("npc"),
		chains:        map[string]*chain{},
		rng:           rng,
	}
}

func (g *Generator) intn(n int) int {
	g.rngMu.Lock()
	defer g.rngMu.Unlock()
	return g.rng.Intn(n)
}

func (g *Generator) corpusOnce() (*Corpus, error) {
	g.mu.Lock()
	if g.corpus != nil {
		defer g.mu.Unlock()
		return g.corpus, nil
	}
	g.mu.Unlock()

	v, err, _ := g.group.Do("corpus", func() (any, error) {
		c, err := LoadCorpus(g.namesPath)
		if err != nil {
			return nil, err
		}
		g.mu.Lock()
		g.corpus = c
		g.mu.Unlock()
		g.log.Info("name corpus loaded", zap.String("path", g.namesPath))
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Corpus), nil
}

func (g *Generator) nicknamesOnce() (*Nicknames, error) {
	g.mu.Lock()
	if g.nick != nil {
		defer g.mu.Unlock()
		return g.nick, nil
	}
	g.mu.Unlock()

	v, err, _ := g.group.Do("nicknames", func() (any, error) {
		n, err := LoadNicknames(g.nicknamesPath)
		if err != nil {
			return nil, err
		}
		g.mu.Lock()
		g.nick = n
		g.mu.Unlock()
		return n, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Nicknames), nil
}

// chainFor builds (or recalls) the Markov chain of one corpus entry.
func (g *Generator) chainFor(gs model.GameSystem, origin Origin, key string, gender Gender) (*chain, error) {
	cacheKey := fmt.Sprintf("chain/%s/%s/%s/%s", gs, origin, strings.ToLower(key), gender)

	g.mu.Lock()
	if c, ok := g.chains[cacheKey]; ok {
		g.mu.Unlock()
		return c, nil
	}
	g.mu.Unlock()

	v, err, _ := g.group.Do(cacheKey, func() (any, error) {
		corpus, err := g.corpusOnce()
		if err != nil {
			return nil, err
		}
		list, err := corpus.trainingList(gs, origin, key, gender)
		if err != nil {
			return nil, err
		}
		c := newChain(list, chainOrder(list), chainMaxLen(list))
		g.mu.Lock()
		g.chains[cacheKey] = c
		g.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*chain), nil
}

// Names generates up to n deduplicated names for (origin, key, gender).
// Incompatible ancestry/gender pairs fail before any generation happens.
func (g *Generator) Names(gs model.GameSystem, origin Origin, key string, gender Gender, n int) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("name count must be positive, got %d", n)
	}
	c, err := g.chainFor(gs, origin, key, gender)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	out := make([]string, 0, n)
	g.rngMu.Lock()
	defer g.rngMu.Unlock()
	for attempts := 0; len(out) < n && attempts < n*20; attempts++ {
		name := c.Generate(g.rng)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out, nil
}

// Nickname glues a random adjective to a random noun.
func (g *Generator) Nickname() (string, error) {
	nick, err := g.nicknamesOnce()
	if err != nil {
		return "", err
	}
	if len(nick.Terms.Adjectives) == 0 || len(nick.Terms.Nouns) == 0 {
		return "", errors.New("nickname corpus has empty term lists")
	}
	adj := nick.Terms.Adjectives[g.intn(len(nick.Terms.Adjectives))]
	noun := nick.Terms.Nouns[g.intn(len(nick.Terms.Nouns))]
	return adj + " " + noun, nil
}

// Class rolls a class of the requested game system.
func (g *Generator) Class(gs model.GameSystem) string {
	pool := pathfinderClasses
	if gs == model.Starfinder {
		pool = starfinderClasses
	}
	return pool[g.intn(len(pool))]
}

// Level rolls a character level in 1..20.
func (g *Generator) Level() int {
	return g.intn(20) + 1
}

// Job rolls a mundane occupation.
func (g *Generator) Job() string {
	return commonJobs[g.intn(len(commonJobs))]
}

// Ancestry rolls an ancestry key known to the corpus.
func (g *Generator) Ancestry(gs model.GameSystem) (string, error) {
	corpus, err := g.corpusOnce()
	if err != nil {
		return "", err
	}
	keys := corpus.Ancestries(gs)
	if len(keys) == 0 {
		return "", fmt.Errorf("corpus has no ancestries for %s", gs)
	}
	return keys[g.intn(len(keys))], nil
}

// Culture rolls a culture key known to the corpus.
func (g *Generator) Culture(gs model.GameSystem) (string, error) {
	corpus, err := g.corpusOnce()
	if err != nil {
		return "", err
	}
	keys := corpus.Cultures(gs)
	if len(keys) == 0 {
		return "", fmt.Errorf("corpus has no cultures for %s", gs)
	}
	return keys[g.intn(len(keys))], nil
}

// Gender rolls a gender valid for the given ancestry, or any gender when
// the ancestry is unknown.
func (g *Generator) Gender(gs model.GameSystem, ancestry string) (Gender, error) {
	corpus, err := g.corpusOnce()
	if err != nil {
		return "", err
	}
	entry, ok := corpus.ancestryEntry(gs, ancestry)
	if !ok {
		return allGenders[g.intn(len(allGenders))], nil
	}
	valid := make([]Gender, 0, 3)
	for gender := range genderLists(entry.Names) {
		valid = append(valid, gender)
	}
	if len(valid) == 0 {
		return "", fmt.Errorf("ancestry %q trains no gender list", ancestry)
	}
	// Map iteration order is random already, but keep the roll on the
	// generator's source for reproducibility.
	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })
	return valid[g.intn(len(valid))], nil
}

// NPC is one fully rolled character.
type NPC struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Ancestry string `json:"ancestry"`
	Culture  string `json:"culture"`
	Gender   Gender `json:"gender"`
	Class    string `json:"class"`
	Level    int    `json:"level"`
	Job      string `json:"job"`
}

// Generate rolls a complete NPC: random ancestry, a gender that ancestry
// supports, a name trained on the pair, and the flavor fields.
func (g *Generator) Generate(gs model.GameSystem) (NPC, error) {
	ancestry, err := g.Ancestry(gs)
	if err != nil {
		return NPC{}, err
	}
	gender, err := g.Gender(gs, ancestry)
	if err != nil {
		return NPC{}, err
	}
	names, err := g.Names(gs, OriginAncestry, ancestry, gender, 1)
	if err != nil {
		return NPC{}, err
	}
	if len(names) == 0 {
		return NPC{}, fmt.Errorf("name generation produced nothing for %s/%s", ancestry, gender)
	}
	nickname, err := g.Nickname()
	if err != nil {
		return NPC{}, err
	}
	culture, err := g.Culture(gs)
	if err != nil {
		return NPC{}, err
	}
	return NPC{
		Name:     names[0],
		Nickname: nickname,
		Ancestry: ancestry,
		Culture:  culture,
		Gender:   gender,
		Class:    g.Class(gs),
		Level:    g.Level(),
		Job:      g.Job(),
	}, nil
}
