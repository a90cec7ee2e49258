package server

import (
	"net/http"

	"lorevault/internal/model"
	"lorevault/internal/shop"
	"lorevault/internal/store"
)

// shopGeneratorRequest wraps the generator params with a game selector.
type shopGeneratorRequest struct {
	Game string `json:"game"`
	shop.Params
}

func (s *Server) handleShopGenerator(w http.ResponseWriter, r *http.Request) {
	var req shopGeneratorRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.MinLevel != nil && req.MaxLevel != nil && *req.MinLevel > *req.MaxLevel {
		s.writeError(w, r, badRequestf("min_level %d exceeds max_level %d", *req.MinLevel, *req.MaxLevel))
		return
	}

	result, err := s.shopGenerator().Generate(r.Context(), model.ParseGameSystem(req.Game), req.Params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleShopItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	item, err := s.cat.GetItem(r.Context(), gameSystemOf(r), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, item)
}

type shopListRequest struct {
	Game string `json:"game"`
	store.ItemFilter
}

func (s *Server) handleShopList(w http.ResponseWriter, r *http.Request) {
	pq, err := parsePageQuery(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req shopListRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.MinLevel != nil && req.MaxLevel != nil && *req.MinLevel > *req.MaxLevel {
		s.writeError(w, r, badRequestf("min_level %d exceeds max_level %d", *req.MinLevel, *req.MaxLevel))
		return
	}

	gs := model.ParseGameSystem(req.Game)
	total, page, err := s.cat.ListItems(r.Context(), gs, req.ItemFilter, pq.Cursor, pq.PageSize)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, newListResponse(s, "shop/list", pq, total, page))
}
