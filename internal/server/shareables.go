package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lorevault/internal/shareable"
)

type encodeResponse struct {
	Link string `json:"link"`
}

func (s *Server) encodePayload(w http.ResponseWriter, r *http.Request, p shareable.Payload) {
	if err := decodeBody(r, p); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, encodeResponse{Link: shareable.Encode(p)})
}

func (s *Server) decodePayload(w http.ResponseWriter, r *http.Request, p shareable.Payload) {
	if err := shareable.Decode(chi.URLParam(r, "blob"), p); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, p)
}

func (s *Server) handleShareableShopEncode(w http.ResponseWriter, r *http.Request) {
	s.encodePayload(w, r, &shareable.ShopPayload{})
}

func (s *Server) handleShareableShopDecode(w http.ResponseWriter, r *http.Request) {
	s.decodePayload(w, r, &shareable.ShopPayload{})
}

func (s *Server) handleShareableEncounterEncode(w http.ResponseWriter, r *http.Request) {
	s.encodePayload(w, r, &shareable.EncounterPayload{})
}

func (s *Server) handleShareableEncounterDecode(w http.ResponseWriter, r *http.Request) {
	s.decodePayload(w, r, &shareable.EncounterPayload{})
}

func (s *Server) handleShareableNPCEncode(w http.ResponseWriter, r *http.Request) {
	s.encodePayload(w, r, &shareable.NPCPayload{})
}

func (s *Server) handleShareableNPCDecode(w http.ResponseWriter, r *http.Request) {
	s.decodePayload(w, r, &shareable.NPCPayload{})
}
