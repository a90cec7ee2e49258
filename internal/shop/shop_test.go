package shop

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"lorevault/internal/model"
	"lorevault/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiceRoll(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := Dice{Count: 2, Sides: 6, Modifier: 2}
	for i := 0; i < 100; i++ {
		got := d.Roll(rng)
		assert.GreaterOrEqual(t, got, 4)
		assert.LessOrEqual(t, got, 14)
	}
	assert.Equal(t, "2d6+2", d.String())
	assert.Equal(t, "1d4", Dice{Count: 1, Sides: 4}.String())
}

func TestParseTemplate(t *testing.T) {
	assert.Equal(t, TemplateBlacksmith, ParseTemplate("blacksmith"))
	assert.Equal(t, TemplateAlchemist, ParseTemplate("Alchemist"))
	assert.Equal(t, TemplateGeneral, ParseTemplate("general"))
	assert.Equal(t, TemplateGeneral, ParseTemplate("tavern"))
}

// The quota split conserves the equipables roll and never stocks more
// shields than armor.
func TestRollQuotasBlacksmith(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		q := rollQuotas(TemplateBlacksmith, rng)
		assert.GreaterOrEqual(t, q.Equipables(), 8) // 4d6+4 floor
		assert.LessOrEqual(t, q.Shields, q.Armors)
		assert.GreaterOrEqual(t, q.Equipment, 0)
		assert.Positive(t, q.Consumables)
	}
}

func TestRollQuotasAlchemist(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	q := rollQuotas(TemplateAlchemist, rng)
	// An alchemist carries no martial split, just shelf stock.
	assert.Zero(t, q.Weapons)
	assert.Zero(t, q.Armors)
	assert.Zero(t, q.Shields)
	assert.Equal(t, q.Equipables(), q.Equipment)
	assert.GreaterOrEqual(t, q.Consumables, 8)
}

type stubSource struct {
	items []model.Item
	got   store.ItemFilter
}

func (s *stubSource) FetchItems(_ context.Context, _ model.GameSystem, f store.ItemFilter, _ bool, _ int) ([]model.Item, error) {
	s.got = f
	var out []model.Item
	for _, it := range s.items {
		if f.MinLevel != nil && it.Level < *f.MinLevel {
			continue
		}
		if f.MaxLevel != nil && it.Level > *f.MaxLevel {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func stockedSource() *stubSource {
	src := &stubSource{}
	id := int64(1)
	add := func(t model.ItemType, n int) {
		for i := 0; i < n; i++ {
			src.items = append(src.items, model.Item{
				ID:   id,
				Name: fmt.Sprintf("%s %d", t, i),
				Type: t, Level: i % 4,
			})
			id++
		}
	}
	add(model.ItemEquipment, 6)
	add(model.ItemWeapon, 5)
	add(model.ItemArmor, 4)
	add(model.ItemShield, 2)
	add(model.ItemConsumable, 8)
	return src
}

func TestGenerateFillsQuotas(t *testing.T) {
	src := stockedSource()
	g := NewGenerator(src, zap.NewNop(), rand.New(rand.NewSource(11)))

	res, err := g.Generate(context.Background(), model.Pathfinder, Params{Template: TemplateBlacksmith})
	require.NoError(t, err)

	counts := map[model.ItemType]int{}
	for _, it := range res.Items {
		counts[it.Type]++
	}
	assert.Equal(t, res.Quotas.Equipment, counts[model.ItemEquipment])
	assert.Equal(t, res.Quotas.Weapons, counts[model.ItemWeapon])
	assert.Equal(t, res.Quotas.Armors, counts[model.ItemArmor])
	assert.Equal(t, res.Quotas.Shields, counts[model.ItemShield])
	assert.Equal(t, res.Quotas.Consumables, counts[model.ItemConsumable])
	assert.Equal(t, res.Quotas.Equipables(),
		counts[model.ItemEquipment]+counts[model.ItemWeapon]+counts[model.ItemArmor]+counts[model.ItemShield])
}

// A thin bucket reaches its quota by repeating stock.
func TestGenerateResamplesThinBucket(t *testing.T) {
	src := &stubSource{items: []model.Item{
		{ID: 1, Name: "Healing Potion", Type: model.ItemConsumable},
	}}
	g := NewGenerator(src, zap.NewNop(), rand.New(rand.NewSource(2)))

	res, err := g.Generate(context.Background(), model.Pathfinder, Params{Template: TemplateAlchemist})
	require.NoError(t, err)
	require.NotEmpty(t, res.Items)
	consumables := 0
	for _, it := range res.Items {
		if it.Type == model.ItemConsumable {
			consumables++
		}
	}
	assert.Equal(t, res.Quotas.Consumables, consumables)
}

// Empty buckets are skipped rather than failing the whole shop.
func TestGenerateEmptyBucket(t *testing.T) {
	src := &stubSource{items: []model.Item{
		{ID: 1, Name: "Rope", Type: model.ItemEquipment},
	}}
	g := NewGenerator(src, zap.NewNop(), rand.New(rand.NewSource(5)))

	res, err := g.Generate(context.Background(), model.Pathfinder, Params{Template: TemplateBlacksmith})
	require.NoError(t, err)
	for _, it := range res.Items {
		assert.Equal(t, model.ItemEquipment, it.Type)
	}
}

// The trait whitelist keeps only stock carrying one of the listed traits,
// regardless of how either side is cased.
func TestGenerateTraitWhitelist(t *testing.T) {
	src := &stubSource{items: []model.Item{
		{ID: 1, Name: "Healing Potion", Type: model.ItemConsumable, Traits: []string{"magical", "healing"}},
		{ID: 2, Name: "Alchemist Fire", Type: model.ItemConsumable, Traits: []string{"alchemical", "fire"}},
		{ID: 3, Name: "Torch", Type: model.ItemEquipment},
	}}
	g := NewGenerator(src, zap.NewNop(), rand.New(rand.NewSource(9)))

	res, err := g.Generate(context.Background(), model.Pathfinder,
		Params{Template: TemplateAlchemist, Traits: []string{"Magical"}})
	require.NoError(t, err)
	require.NotEmpty(t, res.Items)
	for _, it := range res.Items {
		assert.Equal(t, int64(1), it.ID)
	}
}

func TestGenerateLevelValidation(t *testing.T) {
	lo, hi := 5, 2
	g := NewGenerator(stockedSource(), zap.NewNop(), rand.New(rand.NewSource(1)))

	_, err := g.Generate(context.Background(), model.Pathfinder,
		Params{Template: TemplateGeneral, MinLevel: &lo, MaxLevel: &hi})
	assert.Error(t, err)
}

func TestGeneratePassesFilterThrough(t *testing.T) {
	src := stockedSource()
	g := NewGenerator(src, zap.NewNop(), rand.New(rand.NewSource(1)))
	lo, hi := 0, 2

	_, err := g.Generate(context.Background(), model.Pathfinder, Params{
		Template: TemplateGeneral,
		MinLevel: &lo, MaxLevel: &hi,
		Rarities: []model.Rarity{model.RarityCommon},
	})
	require.NoError(t, err)
	assert.Equal(t, &lo, src.got.MinLevel)
	assert.Equal(t, &hi, src.got.MaxLevel)
	assert.Equal(t, []model.Rarity{model.RarityCommon}, src.got.Rarities)
}
