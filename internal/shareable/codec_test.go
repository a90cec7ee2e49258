package shareable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lorevault/internal/model"
)

// referenceBlob is a known-good link for a two-reference shop produced by
// an earlier release; decoding it must keep working forever.
const referenceBlob = "KLUv_QBYKQAAAgAAAgA="

func TestDecodeReferenceBlob(t *testing.T) {
	var p ShopPayload
	require.NoError(t, Decode(referenceBlob, &p))

	want := ShopPayload{Items: []ItemRef{
		{ID: 0, Game: model.Pathfinder},
		{ID: 1, Game: model.Pathfinder},
	}}
	assert.Empty(t, cmp.Diff(want, p))
}

// The reference blob circulates with padding; stripped padding must
// decode identically.
func TestDecodeUnpaddedBlob(t *testing.T) {
	var p ShopPayload
	require.NoError(t, Decode("KLUv_QBYKQAAAgAAAgA", &p))
	require.Len(t, p.Items, 2)
	assert.Equal(t, int64(1), p.Items[1].ID)
}

func TestShopRoundTrip(t *testing.T) {
	orig := ShopPayload{Items: []ItemRef{
		{ID: 42, Game: model.Pathfinder},
		{ID: -7, Game: model.Starfinder},
		{ID: 1 << 40, Game: model.Pathfinder},
	}}

	var got ShopPayload
	require.NoError(t, Decode(Encode(&orig), &got))
	assert.Empty(t, cmp.Diff(orig, got))
}

func TestShopRoundTripEmpty(t *testing.T) {
	var got ShopPayload
	require.NoError(t, Decode(Encode(&ShopPayload{}), &got))
	assert.Empty(t, got.Items)
}

func TestEncounterRoundTrip(t *testing.T) {
	orig := EncounterPayload{
		Party: []int{5, 5, 4, 6},
		Creatures: []ItemRef{
			{ID: 17, Game: model.Pathfinder},
			{ID: 17, Game: model.Pathfinder},
			{ID: 230, Game: model.Pathfinder},
		},
		Hazards: []ItemRef{{ID: 9, Game: model.Pathfinder}},
	}

	var got EncounterPayload
	require.NoError(t, Decode(Encode(&orig), &got))
	assert.Empty(t, cmp.Diff(orig, got))
}

func TestNPCRoundTrip(t *testing.T) {
	orig := NPCPayload{NPCs: []SavedNPC{
		{
			Name: "Mira Duskwalker", Nickname: "Grim Raven",
			Ancestry: "Human", Culture: "Taldan", Gender: "Female",
			Class: "Rogue", Level: 7, Job: "Scribe",
		},
		{
			Name: "Thistle", Nickname: "Swift Fox",
			Ancestry: "Leshy", Culture: "Mwangi", Gender: "NonBinary",
			Class: "Druid", Level: 3, Job: "Herbalist",
		},
	}}

	var got NPCPayload
	require.NoError(t, Decode(Encode(&orig), &got))
	assert.Empty(t, cmp.Diff(orig, got))
}

func TestDecodeBadLinks(t *testing.T) {
	var p ShopPayload

	// Not base64 at all.
	assert.ErrorIs(t, Decode("!!!not base64!!!", &p), ErrBadLink)
	// Valid base64, not a zstd frame.
	assert.ErrorIs(t, Decode("aGVsbG8gd29ybGQ=", &p), ErrBadLink)
	// Valid frame, truncated payload: a one-element vector with no body.
	var w writer
	w.uvarint(1)
	blob := Encode(rawPayload(w.bytes()))
	assert.ErrorIs(t, Decode(blob, &p), ErrBadLink)
	// Valid frame, trailing garbage after the payload.
	w = writer{}
	ShopPayload{}.encodeTo(&w)
	w.buf = append(w.buf, 0xFF)
	assert.ErrorIs(t, Decode(Encode(rawPayload(w.bytes())), &p), ErrBadLink)
}

// rawPayload lets tests push arbitrary bytes through the compression and
// base64 stages.
type rawPayload []byte

func (r rawPayload) encodeTo(w *writer) { w.buf = append(w.buf, r...) }
func (r rawPayload) decodeFrom(*reader) {}

func TestWirePrimitives(t *testing.T) {
	var w writer
	w.uvarint(300)
	w.varint(-150)
	w.str("góblin")
	w.boolean(true)
	w.boolean(false)

	r := reader{buf: w.bytes()}
	assert.Equal(t, uint64(300), r.uvarint())
	assert.Equal(t, int64(-150), r.varint())
	assert.Equal(t, "góblin", r.str())
	assert.True(t, r.boolean())
	assert.False(t, r.boolean())
	require.NoError(t, r.finish())
}

func TestReaderStickyError(t *testing.T) {
	r := reader{buf: []byte{0x05}} // string claims 5 bytes, none follow
	assert.Equal(t, "", r.str())
	assert.Error(t, r.err)
	// Later reads stay zero-valued instead of panicking.
	assert.Zero(t, r.uvarint())
	assert.False(t, r.boolean())
	assert.Error(t, r.finish())
}

// Zigzag keeps small magnitudes small regardless of sign.
func TestVarintCompactness(t *testing.T) {
	var w writer
	w.varint(1)
	assert.Equal(t, []byte{0x02}, w.bytes())

	w = writer{}
	w.varint(-1)
	assert.Equal(t, []byte{0x01}, w.bytes())
}
