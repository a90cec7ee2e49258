package shop

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"

	"lorevault/internal/model"
	"lorevault/internal/store"
)

// Source is the slice of the catalog the generator reads.
type Source interface {
	FetchItems(ctx context.Context, gs model.GameSystem, f store.ItemFilter, random bool, limit int) ([]model.Item, error)
}

// Generator assembles shop inventories. The rand source is owned by the
// generator so tests can pin a seed.
type Generator struct {
	src Source
	log *zap.Logger
	rng *rand.Rand
}

func NewGenerator(src Source, log *zap.Logger, rng *rand.Rand) *Generator {
	return &Generator{src: src, log: log.Named("shop"), rng: rng}
}

// Params selects the merchant template plus the item filters every bucket
// shares.
type Params struct {
	Template Template                `json:"shop_type"`
	MinLevel *int                    `json:"min_level,omitempty"`
	MaxLevel *int                    `json:"max_level,omitempty"`
	Rarities []model.Rarity          `json:"rarity_filter,omitempty"`
	Traits   []string                `json:"trait_whitelist_filter,omitempty"`
	Sources  []string                `json:"source_filter,omitempty"`
	Version  model.GameSystemVersion `json:"game_version,omitempty"`
}

// Result is one generated inventory plus the quota roll that produced it.
type Result struct {
	Items  []model.Item `json:"results"`
	Quotas Quotas       `json:"-"`
}

// Generate rolls the template quotas, fetches the filtered item pool once,
// and fills each bucket from its slice of the pool.
func (g *Generator) Generate(ctx context.Context, gs model.GameSystem, p Params) (Result, error) {
	if p.MinLevel != nil && p.MaxLevel != nil && *p.MinLevel > *p.MaxLevel {
		return Result{}, fmt.Errorf("min level %d exceeds max level %d", *p.MinLevel, *p.MaxLevel)
	}
	quotas := rollQuotas(p.Template, g.rng)

	filter := store.ItemFilter{
		MinLevel: p.MinLevel,
		MaxLevel: p.MaxLevel,
		Rarities: p.Rarities,
		Sources:  p.Sources,
		Version:  p.Version,
	}
	pool, err := g.src.FetchItems(ctx, gs, filter, false, 0)
	if err != nil {
		return Result{}, fmt.Errorf("fetching shop item pool: %w", err)
	}

	buckets := map[model.ItemType][]model.Item{}
	for _, it := range pool {
		if len(p.Traits) > 0 && !hasAnyTrait(it, p.Traits) {
			continue
		}
		buckets[it.Type] = append(buckets[it.Type], it)
	}

	out := Result{Quotas: quotas}
	for _, want := range []struct {
		t     model.ItemType
		count int
	}{
		{model.ItemEquipment, quotas.Equipment},
		{model.ItemWeapon, quotas.Weapons},
		{model.ItemArmor, quotas.Armors},
		{model.ItemShield, quotas.Shields},
		{model.ItemConsumable, quotas.Consumables},
	} {
		bucket := buckets[want.t]
		if len(bucket) == 0 {
			if want.count > 0 {
				g.log.Warn("no stock for bucket",
					zap.String("item_type", string(want.t)),
					zap.Int("wanted", want.count))
			}
			continue
		}
		out.Items = append(out.Items, fillBucket(g.rng, bucket, want.count)...)
	}
	g.rng.Shuffle(len(out.Items), func(i, j int) {
		out.Items[i], out.Items[j] = out.Items[j], out.Items[i]
	})
	return out, nil
}

// hasAnyTrait matches the whitelist case-insensitively; clients send
// display-cased trait names.
func hasAnyTrait(it model.Item, traits []string) bool {
	for _, want := range traits {
		for _, have := range it.Traits {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// fillBucket draws count items, distinct first and resampling once the
// bucket is exhausted.
func fillBucket(rng *rand.Rand, bucket []model.Item, count int) []model.Item {
	shuffled := make([]model.Item, len(bucket))
	copy(shuffled, bucket)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	out := make([]model.Item, 0, count)
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
