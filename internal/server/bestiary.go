package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"lorevault/internal/model"
	"lorevault/internal/store"
)

func gameSystemOf(r *http.Request) model.GameSystem {
	return model.ParseGameSystem(r.URL.Query().Get("game"))
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, badRequestf("invalid id %q", raw)
	}
	return id, nil
}

// variantOf derives the creature variant from the route: /bestiary/elite/7
// serves the elite adjustment of creature 7.
func variantOf(r *http.Request) model.Variant {
	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(parts) >= 2 {
		return model.ParseVariant(parts[1])
	}
	return model.VariantBase
}

// handleCreature serves base, elite and weak creature reads. The variant
// adjustment is applied server-side so clients get final numbers.
func (s *Server) handleCreature(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	detail, err := s.cat.GetCreature(r.Context(), gameSystemOf(r), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	variant := variantOf(r)
	pwl := r.URL.Query().Get("pwl") == "true"
	if variant != model.VariantBase || pwl {
		detail = model.ApplyVariant(detail, variant, pwl)
	}
	s.writeJSON(w, r, http.StatusOK, detail)
}

// creatureListRequest is the POST body of /bestiary/list.
type creatureListRequest struct {
	Game string `json:"game"`
	store.CreatureFilter
}

func (s *Server) handleCreatureList(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req creatureListRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	gs := model.ParseGameSystem(req.Game)
	total, page, err := s.cat.ListCreatures(r.Context(), gs, req.CreatureFilter,
		pq.SortBy, pq.OrderBy, pq.Cursor, pq.PageSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, newListResponse(s, "bestiary/list", pq, total, page))
}

func (s *Server) handleFamilies(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.cat.Families(r.Context(), gameSystemOf(r)))
}

func (s *Server) handleTraits(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.cat.Traits(r.Context(), gameSystemOf(r)))
}

func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, s.cat.Sources(r.Context(), gameSystemOf(r)))
}

func (s *Server) handleRarities(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, model.AllRarities)
}

func (s *Server) handleSizes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, model.AllSizes)
}

func (s *Server) handleAlignments(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, model.AllAlignments)
}

func (s *Server) handleCreatureTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, model.AllCreatureTypes)
}

func (s *Server) handleCreatureRoles(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, model.AllRoles)
}
