// Package server wires the HTTP surface: routing, middleware, request
// parsing, and the mapping from domain errors to status codes.
package server

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lorevault/internal/config"
	"lorevault/internal/encounter"
	"lorevault/internal/npc"
	"lorevault/internal/shop"
	"lorevault/internal/store"
)

// Server holds the shared state every handler reads. The catalog and the
// NPC generator are process-wide; encounter builders and shop generators
// are cheap and built per request around a fresh rand source.
type Server struct {
	cfg config.Config
	cat *store.Catalog
	npc *npc.Generator
	log *zap.Logger
}

func New(cfg config.Config, cat *store.Catalog, npcGen *npc.Generator, log *zap.Logger) *Server {
	return &Server{
		cfg: cfg,
		cat: cat,
		npc: npcGen,
		log: log.Named("http"),
	}
}

func (s *Server) encounterBuilder() *encounter.Builder {
	return encounter.NewBuilder(s.cat, s.log, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (s *Server) shopGenerator() *shop.Generator {
	return shop.NewGenerator(s.cat, s.log, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// Router assembles the full route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.cors)
	r.Use(s.recoverPanics)

	r.Get("/health", s.handleHealth)

	r.Route("/bestiary", func(r chi.Router) {
		r.Get("/base/{id}", s.handleCreature)
		r.Get("/elite/{id}", s.handleCreature)
		r.Get("/weak/{id}", s.handleCreature)
		r.Post("/list", s.handleCreatureList)

		r.Get("/families", s.handleFamilies)
		r.Get("/traits", s.handleTraits)
		r.Get("/sources", s.handleSources)
		r.Get("/rarities", s.handleRarities)
		r.Get("/sizes", s.handleSizes)
		r.Get("/alignments", s.handleAlignments)
		r.Get("/creature_types", s.handleCreatureTypes)
		r.Get("/creature_roles", s.handleCreatureRoles)
	})

	r.Route("/encounter", func(r chi.Router) {
		r.Post("/info", s.handleEncounterInfo)
		r.Post("/generator", s.handleEncounterGenerator)
	})

	r.Route("/shop", func(r chi.Router) {
		r.Post("/generator", s.handleShopGenerator)
		r.Get("/item/{id}", s.handleShopItem)
		r.Post("/list", s.handleShopList)
	})

	r.Route("/npc", func(r chi.Router) {
		r.Post("/generator", s.handleNPCGenerator)
		r.Post("/generator/names", s.handleNPCNames)
		r.Post("/generator/nickname", s.handleNPCNickname)
		r.Post("/generator/class", s.handleNPCClass)
		r.Post("/generator/level", s.handleNPCLevel)
		r.Post("/generator/ancestry", s.handleNPCAncestry)
		r.Post("/generator/culture", s.handleNPCCulture)
		r.Post("/generator/gender", s.handleNPCGender)
		r.Post("/generator/job", s.handleNPCJob)
	})

	r.Route("/shareable", func(r chi.Router) {
		r.Post("/shop/encode", s.handleShareableShopEncode)
		r.Get("/shop/decode/{blob}", s.handleShareableShopDecode)
		r.Post("/encounter/encode", s.handleShareableEncounterEncode)
		r.Get("/encounter/decode/{blob}", s.handleShareableEncounterDecode)
		r.Post("/npc/encode", s.handleShareableNPCEncode)
		r.Get("/npc/decode/{blob}", s.handleShareableNPCDecode)
	})

	return r
}

// Run serves until the context is canceled, then drains connections.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	err := <-errc
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.cat.Ping(r.Context()); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
