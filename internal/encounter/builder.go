package encounter

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"lorevault/internal/model"
	"lorevault/internal/store"
)

// ErrNoCombination means no XP combination inside the requested band can be
// filled from the creatures that survived the caller's filter.
var ErrNoCombination = errors.New("no fillable combination for the requested challenge")

// Source is the slice of the catalog the builder reads.
type Source interface {
	FetchCreatures(ctx context.Context, gs model.GameSystem, f store.CreatureFilter, random bool) ([]model.Creature, error)
	FetchHazards(ctx context.Context, gs model.GameSystem, f store.HazardFilter) ([]model.Hazard, error)
}

// Builder assembles encounters from the catalog. The rand source is owned
// by the builder so tests can pin a seed.
type Builder struct {
	src Source
	log *zap.Logger
	rng *rand.Rand
}

func NewBuilder(src Source, log *zap.Logger, rng *rand.Rand) *Builder {
	return &Builder{src: src, log: log.Named("encounter"), rng: rng}
}

// Params selects what kind of encounter to build. Exactly one of Challenge
// or AdventureGroup drives the level composition; IsHazard switches the
// builder from creatures to hazards.
type Params struct {
	PartyLevels    []int
	Challenge      model.Challenge
	AdventureGroup *model.AdventureGroup
	PWL            bool
	IsHazard       bool
	Filter         store.CreatureFilter
	HazardFilter   store.HazardFilter
}

// Result is a generated encounter plus the XP math that produced it.
type Result struct {
	Creatures []model.Creature `json:"creatures,omitempty"`
	Hazards   []model.Hazard   `json:"hazards,omitempty"`
	XP        int              `json:"experience"`
	Challenge model.Challenge  `json:"challenge"`
}

// Info classifies an already-composed encounter without touching the store.
func Info(partyLevels, enemyLevels []int, hazards []HazardPick, pwl bool) (int, model.Challenge) {
	avg := PartyAverage(partyLevels)
	xp := 0
	for _, l := range enemyLevels {
		xp += CreatureXP(l, avg, pwl)
	}
	for _, h := range hazards {
		xp += HazardXP(h.Level, avg, h.Complexity)
	}
	return xp, Classify(xp, len(partyLevels))
}

// Generate builds one random encounter matching the params.
func (b *Builder) Generate(ctx context.Context, gs model.GameSystem, p Params) (Result, error) {
	if len(p.PartyLevels) == 0 {
		return Result{}, fmt.Errorf("party must have at least one member")
	}
	avg := PartyAverage(p.PartyLevels)

	if p.IsHazard {
		return b.generateHazards(ctx, gs, p, avg)
	}
	return b.generateCreatures(ctx, gs, p, avg)
}

func (b *Builder) generateCreatures(ctx context.Context, gs model.GameSystem, p Params, avg int) (Result, error) {
	var combos []CreatureCombo
	if p.AdventureGroup != nil {
		combo, ok := TemplateCombo(*p.AdventureGroup, avg, p.PWL)
		if !ok {
			return Result{}, fmt.Errorf("adventure group %q cannot be filled at party average %d", *p.AdventureGroup, avg)
		}
		combos = []CreatureCombo{combo}
	} else {
		band := Band(p.Challenge, len(p.PartyLevels))
		combos = CreatureCombos(band, avg, p.PWL)
	}
	if len(combos) == 0 {
		return Result{}, ErrNoCombination
	}

	creatures, err := b.src.FetchCreatures(ctx, gs, p.Filter, false)
	if err != nil {
		return Result{}, fmt.Errorf("fetching candidate creatures: %w", err)
	}
	byLevel := map[int][]model.Creature{}
	for _, c := range creatures {
		byLevel[c.Level] = append(byLevel[c.Level], c)
	}

	fillable := combos[:0:0]
	for _, combo := range combos {
		if levelsAvailable(combo.Levels, byLevel) {
			fillable = append(fillable, combo)
		}
	}
	if len(fillable) == 0 {
		return Result{}, ErrNoCombination
	}

	chosen := fillable[b.rng.Intn(len(fillable))]
	b.log.Debug("combination selected",
		zap.Ints("levels", chosen.Levels),
		zap.Int("experience", chosen.XP),
		zap.Int("fillable", len(fillable)))

	out := Result{
		XP:        chosen.XP,
		Challenge: Classify(chosen.XP, len(p.PartyLevels)),
	}
	for level, count := range multiplicities(chosen.Levels) {
		out.Creatures = append(out.Creatures, sampleCreatures(b.rng, byLevel[level], count)...)
	}
	return out, nil
}

func (b *Builder) generateHazards(ctx context.Context, gs model.GameSystem, p Params, avg int) (Result, error) {
	band := Band(p.Challenge, len(p.PartyLevels))
	combos := HazardCombos(band, avg)
	if len(combos) == 0 {
		return Result{}, ErrNoCombination
	}

	hazards, err := b.src.FetchHazards(ctx, gs, p.HazardFilter)
	if err != nil {
		return Result{}, fmt.Errorf("fetching candidate hazards: %w", err)
	}
	type slot struct {
		level      int
		complexity model.HazardComplexity
	}
	bySlot := map[slot][]model.Hazard{}
	for _, h := range hazards {
		bySlot[slot{h.Level, h.Complexity}] = append(bySlot[slot{h.Level, h.Complexity}], h)
	}

	fillable := combos[:0:0]
	for _, combo := range combos {
		ok := true
		for _, pick := range combo.Picks {
			if len(bySlot[slot{pick.Level, pick.Complexity}]) == 0 {
				ok = false
				break
			}
		}
		if ok {
			fillable = append(fillable, combo)
		}
	}
	if len(fillable) == 0 {
		return Result{}, ErrNoCombination
	}

	chosen := fillable[b.rng.Intn(len(fillable))]
	out := Result{
		XP:        chosen.XP,
		Challenge: Classify(chosen.XP, len(p.PartyLevels)),
	}
	counts := map[slot]int{}
	for _, pick := range chosen.Picks {
		counts[slot{pick.Level, pick.Complexity}]++
	}
	for s, count := range counts {
		out.Hazards = append(out.Hazards, sampleHazards(b.rng, bySlot[s], count)...)
	}
	return out, nil
}

func levelsAvailable(levels []int, byLevel map[int][]model.Creature) bool {
	for _, l := range levels {
		if len(byLevel[l]) == 0 {
			return false
		}
	}
	return true
}

func multiplicities(levels []int) map[int]int {
	out := map[int]int{}
	for _, l := range levels {
		out[l]++
	}
	return out
}

// sampleCreatures draws count members from the pool, distinct first and
// resampling only once the pool is exhausted.
func sampleCreatures(rng *rand.Rand, pool []model.Creature, count int) []model.Creature {
	shuffled := make([]model.Creature, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	out := make([]model.Creature, 0, count)
	for len(out) < count {
		need := count - len(out)
		if need >= len(shuffled) {
			out = append(out, shuffled...)
			continue
		}
		out = append(out, shuffled[:need]...)
	}
	return out
}

func sampleHazards(rng *rand.Rand, pool []model.Hazard, count int) []model.Hazard {
	shuffled := make([]model.Hazard, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	out := make([]model.Hazard, 0, count)
	for len(out) < count {
		need := count - len(out)
		if need >= len(shuffled) {
			out = append(out, shuffled...)
			continue
		}
		out = append(out, shuffled[:need]...)
	}
	return out
}
