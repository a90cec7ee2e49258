package shareable

import (
	"lorevault/internal/model"
)

// Payload is a domain value with a stable wire shape. Field order is part
// of the format and must never change for a released payload.
type Payload interface {
	encodeTo(w *writer)
	decodeFrom(r *reader)
}

// decodeFrom needs a pointer receiver, so only the pointer forms satisfy
// Payload.
var (
	_ Payload = (*ShopPayload)(nil)
	_ Payload = (*EncounterPayload)(nil)
	_ Payload = (*NPCPayload)(nil)
)

// ItemRef points at one catalog record in a specific game system.
type ItemRef struct {
	ID   int64            `json:"id"`
	Game model.GameSystem `json:"game"`
}

func (i ItemRef) encodeTo(w *writer) {
	w.varint(i.ID)
	w.uvarint(i.Game.WireIndex())
}

func (i *ItemRef) decodeFrom(r *reader) {
	i.ID = r.varint()
	i.Game = model.GameSystemFromWire(r.uvarint())
}

// ShopPayload is a saved shop inventory: catalog references only, the
// receiver re-fetches the full records.
type ShopPayload struct {
	Items []ItemRef `json:"items"`
}

func (p ShopPayload) encodeTo(w *writer) {
	w.uvarint(uint64(len(p.Items)))
	for _, it := range p.Items {
		it.encodeTo(w)
	}
}

func (p *ShopPayload) decodeFrom(r *reader) {
	n := r.uvarint()
	p.Items = nil
	for i := uint64(0); i < n && r.err == nil; i++ {
		var it ItemRef
		it.decodeFrom(r)
		p.Items = append(p.Items, it)
	}
}

// EncounterPayload is a saved encounter: the party vector plus creature
// and hazard references.
type EncounterPayload struct {
	Party     []int     `json:"party"`
	Creatures []ItemRef `json:"creatures"`
	Hazards   []ItemRef `json:"hazards"`
}

func (p EncounterPayload) encodeTo(w *writer) {
	w.uvarint(uint64(len(p.Party)))
	for _, l := range p.Party {
		w.varint(int64(l))
	}
	w.uvarint(uint64(len(p.Creatures)))
	for _, c := range p.Creatures {
		c.encodeTo(w)
	}
	w.uvarint(uint64(len(p.Hazards)))
	for _, h := range p.Hazards {
		h.encodeTo(w)
	}
}

func (p *EncounterPayload) decodeFrom(r *reader) {
	n := r.uvarint()
	p.Party = nil
	for i := uint64(0); i < n && r.err == nil; i++ {
		p.Party = append(p.Party, int(r.varint()))
	}
	n = r.uvarint()
	p.Creatures = nil
	for i := uint64(0); i < n && r.err == nil; i++ {
		var ref ItemRef
		ref.decodeFrom(r)
		p.Creatures = append(p.Creatures, ref)
	}
	n = r.uvarint()
	p.Hazards = nil
	for i := uint64(0); i < n && r.err == nil; i++ {
		var ref ItemRef
		ref.decodeFrom(r)
		p.Hazards = append(p.Hazards, ref)
	}
}

// SavedNPC is one fully rolled character in an NPC list payload.
type SavedNPC struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Ancestry string `json:"ancestry"`
	Culture  string `json:"culture"`
	Gender   string `json:"gender"`
	Class    string `json:"class"`
	Level    int    `json:"level"`
	Job      string `json:"job"`
}

func (n SavedNPC) encodeTo(w *writer) {
	w.str(n.Name)
	w.str(n.Nickname)
	w.str(n.Ancestry)
	w.str(n.Culture)
	w.str(n.Gender)
	w.str(n.Class)
	w.varint(int64(n.Level))
	w.str(n.Job)
}

func (n *SavedNPC) decodeFrom(r *reader) {
	n.Name = r.str()
	n.Nickname = r.str()
	n.Ancestry = r.str()
	n.Culture = r.str()
	n.Gender = r.str()
	n.Class = r.str()
	n.Level = int(r.varint())
	n.Job = r.str()
}

// NPCPayload is a saved list of generated characters.
type NPCPayload struct {
	NPCs []SavedNPC `json:"npcs"`
}

func (p NPCPayload) encodeTo(w *writer) {
	w.uvarint(uint64(len(p.NPCs)))
	for _, n := range p.NPCs {
		n.encodeTo(w)
	}
}

func (p *NPCPayload) decodeFrom(r *reader) {
	n := r.uvarint()
	p.NPCs = nil
	for i := uint64(0); i < n && r.err == nil; i++ {
		var saved SavedNPC
		saved.decodeFrom(r)
		p.NPCs = append(p.NPCs, saved)
	}
}
