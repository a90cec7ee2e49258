package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"lorevault/internal/encounter"
	"lorevault/internal/npc"
	"lorevault/internal/shareable"
	"lorevault/internal/store"
)

// badRequestError marks validation failures so writeError maps them to 400.
type badRequestError struct {
	msg string
}

func (e badRequestError) Error() string { return e.msg }

func badRequestf(format string, args ...any) error {
	return badRequestError{msg: fmt.Sprintf(format, args...)}
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("writing response",
			zap.Error(err),
			zap.String("path", r.URL.Path))
	}
}

// writeError maps domain errors onto status codes: validation and bad
// links are the client's fault, everything else is ours.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	var br badRequestError
	switch {
	case errors.As(err, &br),
		errors.Is(err, shareable.ErrBadLink),
		errors.Is(err, npc.ErrUnknownKey),
		errors.Is(err, npc.ErrIncompatibleGender):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, encounter.ErrNoCombination):
		status = http.StatusUnprocessableEntity
	}

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.Error(err),
			zap.String("path", r.URL.Path))
	}
	s.writeJSON(w, r, status, map[string]string{"error": err.Error()})
}

// decodeBody parses a JSON request body; an empty body decodes to the
// zero value so POST endpoints work without one.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return badRequestf("invalid request body: %v", err)
}
