package encounter

import (
	"context"
	"math/rand"
	"testing"

	"go.uber.org/zap"

	"lorevault/internal/model"
	"lorevault/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	creatures []model.Creature
	hazards   []model.Hazard
}

func (s *stubSource) FetchCreatures(_ context.Context, _ model.GameSystem, f store.CreatureFilter, _ bool) ([]model.Creature, error) {
	if len(f.Levels) == 0 {
		return s.creatures, nil
	}
	want := map[int]bool{}
	for _, l := range f.Levels {
		want[l] = true
	}
	var out []model.Creature
	for _, c := range s.creatures {
		if want[c.Level] {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubSource) FetchHazards(_ context.Context, _ model.GameSystem, _ store.HazardFilter) ([]model.Hazard, error) {
	return s.hazards, nil
}

func benchSource() *stubSource {
	src := &stubSource{}
	id := int64(1)
	for level := -1; level <= 9; level++ {
		for i := 0; i < 3; i++ {
			src.creatures = append(src.creatures, model.Creature{
				ID: id, Name: "dummy", Level: level,
			})
			id++
		}
	}
	src.hazards = []model.Hazard{
		{ID: 1, Name: "Pit", Level: 4, Complexity: model.HazardSimple},
		{ID: 2, Name: "Haunt", Level: -1, Complexity: model.HazardComplex},
		{ID: 3, Name: "Trap", Level: 0, Complexity: model.HazardSimple},
	}
	return src
}

func newTestBuilder(src Source) *Builder {
	return NewBuilder(src, zap.NewNop(), rand.New(rand.NewSource(1)))
}

func TestGenerateModerateEncounter(t *testing.T) {
	b := newTestBuilder(benchSource())
	band := Band(model.ChallengeModerate, 4)

	for i := 0; i < 25; i++ {
		res, err := b.Generate(context.Background(), model.Pathfinder, Params{
			PartyLevels: []int{5, 5, 5, 5},
			Challenge:   model.ChallengeModerate,
		})
		require.NoError(t, err)
		require.NotEmpty(t, res.Creatures)

		sum := 0
		for _, c := range res.Creatures {
			sum += CreatureXP(c.Level, 5, false)
		}
		assert.Equal(t, res.XP, sum)
		assert.GreaterOrEqual(t, res.XP, band.LowerBound)
		assert.LessOrEqual(t, res.XP, band.UpperBound)
		assert.Equal(t, model.ChallengeModerate, res.Challenge)
	}
}

func TestGenerateHonorsAvailability(t *testing.T) {
	// Only level-5 creatures exist, so every viable combination is made of
	// on-level enemies.
	src := &stubSource{creatures: []model.Creature{
		{ID: 1, Name: "only", Level: 5},
	}}
	b := newTestBuilder(src)

	res, err := b.Generate(context.Background(), model.Pathfinder, Params{
		PartyLevels: []int{5, 5, 5, 5},
		Challenge:   model.ChallengeModerate,
	})
	require.NoError(t, err)
	require.Len(t, res.Creatures, 1)
	assert.Equal(t, 5, res.Creatures[0].Level)
	assert.Equal(t, 80, res.XP)
}

func TestGenerateNoCombination(t *testing.T) {
	src := &stubSource{} // nothing survives the filter
	b := newTestBuilder(src)

	_, err := b.Generate(context.Background(), model.Pathfinder, Params{
		PartyLevels: []int{5, 5, 5, 5},
		Challenge:   model.ChallengeModerate,
	})
	assert.ErrorIs(t, err, ErrNoCombination)
}

func TestGenerateAdventureGroup(t *testing.T) {
	b := newTestBuilder(benchSource())
	group := model.GroupTroop

	res, err := b.Generate(context.Background(), model.Pathfinder, Params{
		PartyLevels:    []int{4, 4, 4, 4},
		AdventureGroup: &group,
	})
	require.NoError(t, err)
	require.Len(t, res.Creatures, 3)

	levels := map[int]int{}
	for _, c := range res.Creatures {
		levels[c.Level]++
	}
	assert.Equal(t, map[int]int{4: 1, 2: 2}, levels)
	assert.Equal(t, 160, res.XP)
	assert.Equal(t, model.ChallengeExtreme, res.Challenge)
}

// A pool smaller than the slot count pads by repeating members.
func TestGenerateResamplesSmallPool(t *testing.T) {
	src := &stubSource{creatures: []model.Creature{
		{ID: 1, Name: "lone mook", Level: 0},
	}}
	b := newTestBuilder(src)
	group := model.GroupMookSquad

	res, err := b.Generate(context.Background(), model.Pathfinder, Params{
		PartyLevels:    []int{4, 4, 4, 4},
		AdventureGroup: &group,
	})
	require.NoError(t, err)
	require.Len(t, res.Creatures, 6)
	for _, c := range res.Creatures {
		assert.Equal(t, int64(1), c.ID)
	}
}

func TestGenerateHazardEncounter(t *testing.T) {
	b := newTestBuilder(benchSource())

	res, err := b.Generate(context.Background(), model.Pathfinder, Params{
		PartyLevels: []int{0, 0, 0, 0},
		Challenge:   model.ChallengeTrivial,
		IsHazard:    true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Hazards)
	assert.Empty(t, res.Creatures)

	band := Band(model.ChallengeTrivial, 4)
	sum := 0
	for _, h := range res.Hazards {
		sum += HazardXP(h.Level, 0, h.Complexity)
	}
	assert.Equal(t, res.XP, sum)
	assert.GreaterOrEqual(t, res.XP, band.LowerBound)
	assert.LessOrEqual(t, res.XP, band.UpperBound)
}
