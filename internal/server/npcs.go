package server

import (
	"net/http"

	"lorevault/internal/model"
	"lorevault/internal/npc"
)

// npcGeneratorRequest rolls complete characters.
type npcGeneratorRequest struct {
	Game  string `json:"game"`
	Count int    `json:"count"`
}

const maxNPCBatch = 25

func (s *Server) handleNPCGenerator(w http.ResponseWriter, r *http.Request) {
	var req npcGeneratorRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Count <= 0 {
		req.Count = 1
	}
	if req.Count > maxNPCBatch {
		s.writeError(w, r, badRequestf("count must be at most %d", maxNPCBatch))
		return
	}

	gs := model.ParseGameSystem(req.Game)
	out := make([]npc.NPC, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		rolled, err := s.npc.Generate(gs)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		out = append(out, rolled)
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

// npcNamesRequest asks for names of one (origin, key, gender) triple.
type npcNamesRequest struct {
	Game   string `json:"game"`
	Origin string `json:"origin"`
	Key    string `json:"key"`
	Gender string `json:"gender"`
	Count  int    `json:"count"`
}

func (s *Server) handleNPCNames(w http.ResponseWriter, r *http.Request) {
	var req npcNamesRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Count <= 0 {
		req.Count = 10
	}
	gender, ok := npc.ParseGender(req.Gender)
	if !ok {
		s.writeError(w, r, badRequestf("unknown gender %q", req.Gender))
		return
	}
	origin := npc.OriginAncestry
	if req.Origin == string(npc.OriginCulture) {
		origin = npc.OriginCulture
	}

	names, err := s.npc.Names(model.ParseGameSystem(req.Game), origin, req.Key, gender, req.Count)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, names)
}

type gameRequest struct {
	Game string `json:"game"`
}

func (s *Server) handleNPCNickname(w http.ResponseWriter, r *http.Request) {
	nick, err := s.npc.Nickname()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]string{"nickname": nick})
}

func (s *Server) handleNPCClass(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	class := s.npc.Class(model.ParseGameSystem(req.Game))
	s.writeJSON(w, r, http.StatusOK, map[string]string{"class": class})
}

func (s *Server) handleNPCLevel(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]int{"level": s.npc.Level()})
}

func (s *Server) handleNPCJob(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]string{"job": s.npc.Job()})
}

func (s *Server) handleNPCAncestry(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	ancestry, err := s.npc.Ancestry(model.ParseGameSystem(req.Game))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]string{"ancestry": ancestry})
}

func (s *Server) handleNPCCulture(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	culture, err := s.npc.Culture(model.ParseGameSystem(req.Game))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]string{"culture": culture})
}

// npcGenderRequest rolls a gender compatible with the given ancestry.
type npcGenderRequest struct {
	Game     string `json:"game"`
	Ancestry string `json:"ancestry"`
}

func (s *Server) handleNPCGender(w http.ResponseWriter, r *http.Request) {
	var req npcGenderRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	gender, err := s.npc.Gender(model.ParseGameSystem(req.Game), req.Ancestry)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]npc.Gender{"gender": gender})
}
