package npc

import (
	"math/rand"
	"strings"
	"unicode"
)

// terminator marks end-of-name in a transition table.
const terminator = '\x00'

// chain is a character-level Markov model over one training list.
type chain struct {
	order       int
	maxLen      int
	transitions map[string][]rune
}

// chainOrder picks the context size for a training list: short, punchy
// name stocks train better on two characters, longer ones on three.
func chainOrder(names []string) int {
	if averageLength(names) >= 8 {
		return 3
	}
	return 2
}

// chainMaxLen caps generated output a little above the longest training
// name, clamped to the 8..30 window.
func chainMaxLen(names []string) int {
	longest := 0
	for _, n := range names {
		if len(n) > longest {
			longest = len(n)
		}
	}
	max := longest + 4
	if max < 8 {
		max = 8
	}
	if max > 30 {
		max = 30
	}
	return max
}

func averageLength(names []string) int {
	if len(names) == 0 {
		return 0
	}
	total := 0
	for _, n := range names {
		total += len(n)
	}
	return total / len(names)
}

// newChain trains a transition table of the given order. Names are
// lowercased; capitalization is reapplied on output.
func newChain(names []string, order, maxLen int) *chain {
	c := &chain{order: order, maxLen: maxLen, transitions: map[string][]rune{}}
	pad := strings.Repeat(" ", order)
	for _, name := range names {
		runes := []rune(pad + strings.ToLower(name))
		runes = append(runes, terminator)
		for i := order; i < len(runes); i++ {
			key := string(runes[i-order : i])
			c.transitions[key] = append(c.transitions[key], runes[i])
		}
	}
	return c
}

// Generate walks the transition table until the terminator or the length
// cap, then capitalizes word-initial characters.
func (c *chain) Generate(rng *rand.Rand) string {
	var out []rune
	context := []rune(strings.Repeat(" ", c.order))
	for len(out) < c.maxLen {
		candidates := c.transitions[string(context)]
		if len(candidates) == 0 {
			break
		}
		next := candidates[rng.Intn(len(candidates))]
		if next == terminator {
			break
		}
		out = append(out, next)
		context = append(context[1:], next)
	}
	return capitalizeWords(string(out))
}

func capitalizeWords(s string) string {
	runes := []rune(s)
	atWordStart := true
	for i, r := range runes {
		if atWordStart {
			runes[i] = unicode.ToUpper(r)
		}
		atWordStart = r == ' ' || r == '-' || r == '\''
	}
	return strings.TrimSpace(string(runes))
}
