package npc

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChainSingleNameRoundTrip(t *testing.T) {
	// With one training name every context has exactly one successor.
	c := newChain([]string{"Mira"}, 2, 10)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 5; i++ {
		assert.Equal(t, "Mira", c.Generate(rng))
	}
}

func TestChainRespectsMaxLen(t *testing.T) {
	c := newChain([]string{"abababababababababab"}, 2, 8)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.LessOrEqual(t, len(c.Generate(rng)), 8)
	}
}

func TestChainOutputDrawsFromTraining(t *testing.T) {
	names := []string{"Anna", "Anne", "Annika", "Annette"}
	c := newChain(names, 2, 12)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		got := c.Generate(rng)
		assert.NotEmpty(t, got)
		assert.True(t, strings.HasPrefix(got, "Ann"), got)
	}
}

func TestChainOrder(t *testing.T) {
	assert.Equal(t, 2, chainOrder([]string{"Bob", "Ann", "Ed"}))
	assert.Equal(t, 3, chainOrder([]string{"Bartholomew", "Evangeline"}))
}

func TestChainMaxLen(t *testing.T) {
	assert.Equal(t, 8, chainMaxLen([]string{"Ed", "Al"}))
	assert.Equal(t, 15, chainMaxLen([]string{"Bartholomew"}))
	assert.Equal(t, 30, chainMaxLen([]string{strings.Repeat("a", 40)}))
}

func TestCapitalizeWords(t *testing.T) {
	assert.Equal(t, "Anna", capitalizeWords("anna"))
	assert.Equal(t, "Mara Vel", capitalizeWords("mara vel"))
	assert.Equal(t, "Ko-Ro", capitalizeWords("ko-ro"))
	assert.Equal(t, "", capitalizeWords(""))
}
