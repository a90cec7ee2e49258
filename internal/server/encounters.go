package server

import (
	"net/http"

	"lorevault/internal/encounter"
	"lorevault/internal/model"
	"lorevault/internal/store"
)

type hazardRef struct {
	Level      int    `json:"level"`
	Complexity string `json:"complexity"`
}

// encounterInfoRequest classifies an already-composed encounter.
type encounterInfoRequest struct {
	PartyLevels []int       `json:"party_levels"`
	EnemyLevels []int       `json:"enemy_levels"`
	Hazards     []hazardRef `json:"hazards,omitempty"`
	PWL         bool        `json:"is_pwl"`
}

type encounterInfoResponse struct {
	Experience int             `json:"experience"`
	Challenge  model.Challenge `json:"challenge"`
}

func (s *Server) handleEncounterInfo(w http.ResponseWriter, r *http.Request) {
	var req encounterInfoRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.PartyLevels) == 0 {
		s.writeError(w, r, badRequestf("party_levels must not be empty"))
		return
	}

	hazards := make([]encounter.HazardPick, 0, len(req.Hazards))
	for _, h := range req.Hazards {
		hazards = append(hazards, encounter.HazardPick{
			Level:      h.Level,
			Complexity: model.ParseHazardComplexity(h.Complexity),
		})
	}
	xp, challenge := encounter.Info(req.PartyLevels, req.EnemyLevels, hazards, req.PWL)
	s.writeJSON(w, r, http.StatusOK, encounterInfoResponse{Experience: xp, Challenge: challenge})
}

// encounterGeneratorRequest builds a new encounter. adventure_group, when
// set, overrides the challenge-band search.
type encounterGeneratorRequest struct {
	Game           string               `json:"game"`
	PartyLevels    []int                `json:"party_levels"`
	Challenge      string               `json:"challenge"`
	AdventureGroup string               `json:"adventure_group,omitempty"`
	PWL            bool                 `json:"is_pwl"`
	IsHazard       bool                 `json:"is_hazard"`
	Filter         store.CreatureFilter `json:"filter"`
	HazardFilter   store.HazardFilter   `json:"hazard_filter"`
}

func (s *Server) handleEncounterGenerator(w http.ResponseWriter, r *http.Request) {
	var req encounterGeneratorRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.PartyLevels) == 0 {
		s.writeError(w, r, badRequestf("party_levels must not be empty"))
		return
	}

	params := encounter.Params{
		PartyLevels:  req.PartyLevels,
		Challenge:    model.ParseChallenge(req.Challenge),
		PWL:          req.PWL,
		IsHazard:     req.IsHazard,
		Filter:       req.Filter,
		HazardFilter: req.HazardFilter,
	}
	if req.AdventureGroup != "" {
		group, ok := model.ParseAdventureGroup(req.AdventureGroup)
		if !ok {
			s.writeError(w, r, badRequestf("unknown adventure_group %q", req.AdventureGroup))
			return
		}
		params.AdventureGroup = &group
	}

	result, err := s.encounterBuilder().Generate(r.Context(), model.ParseGameSystem(req.Game), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, result)
}
