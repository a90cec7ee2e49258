package server

import (
	"fmt"
	"net/http"
	"strconv"

	"lorevault/internal/model"
)

const maxPageSize = 100

// pageQuery is the paging state carried in the query string of every
// listing endpoint.
type pageQuery struct {
	Cursor   uint32
	PageSize int
	SortBy   model.SortField
	OrderBy  model.Order
}

func parsePageQuery(r *http.Request) (pageQuery, error) {
	q := r.URL.Query()
	pq := pageQuery{
		PageSize: -1,
		SortBy:   model.ParseSortField(q.Get("sort_by")),
		OrderBy:  model.ParseOrder(q.Get("order_by")),
	}

	if raw := q.Get("cursor"); raw != "" {
		cursor, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return pageQuery{}, badRequestf("invalid cursor %q", raw)
		}
		pq.Cursor = uint32(cursor)
	}
	if raw := q.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return pageQuery{}, badRequestf("invalid page_size %q", raw)
		}
		if size < -1 || size > maxPageSize {
			return pageQuery{}, badRequestf("page_size must be in [-1,%d], got %d", maxPageSize, size)
		}
		pq.PageSize = size
	}
	return pq, nil
}

// listResponse is the envelope of every paginated listing.
type listResponse[T any] struct {
	Results []T     `json:"results"`
	Count   int     `json:"count"`
	Total   int     `json:"total"`
	Next    *string `json:"next,omitempty"`
}

// nextURL builds the follow-up link. The leading ampersand after the
// resource path is part of the published URL shape and must be kept.
func (s *Server) nextURL(resource string, pq pageQuery, returned, total int) *string {
	if pq.PageSize < 0 {
		return nil
	}
	next := pq.Cursor + uint32(returned)
	if returned == 0 || next >= uint32(total) {
		return nil
	}
	u := fmt.Sprintf("%s/%s/&cursor=%d&page_size=%d&sort_by=%s&order_by%s",
		s.cfg.BackendURL, resource, next, pq.PageSize, pq.SortBy, pq.OrderBy)
	return &u
}

func newListResponse[T any](s *Server, resource string, pq pageQuery, total int, page []T) listResponse[T] {
	if page == nil {
		page = []T{}
	}
	return listResponse[T]{
		Results: page,
		Count:   len(page),
		Total:   total,
		Next:    s.nextURL(resource, pq, len(page), total),
	}
}
