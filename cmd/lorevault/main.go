package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lorevault/internal/config"
	"lorevault/internal/logging"
	"lorevault/internal/model"
	"lorevault/internal/npc"
	"lorevault/internal/server"
	"lorevault/internal/store"
)

var (
	verbose bool

	logger *zap.Logger
	cfg    config.Config
)

var rootCmd = &cobra.Command{
	Use:   "lorevault",
	Short: "lorevault - tabletop RPG catalog service",
	Long: `lorevault serves a read-mostly catalog of creatures, hazards and items
over HTTP, plus generators for encounters, shop inventories and NPCs.

Run without arguments to start the server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if verbose {
			level = "debug"
		}

		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if level == "" {
			level = cfg.LogLevel
		}

		logger, err = logging.New(level)
		if err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Rebuild the projection and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild the creature projection tables and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := store.Open(cfg.DatabaseURL, logger)
		if err != nil {
			return err
		}
		defer cat.Close()
		return rebuildProjections(cmd.Context(), cat)
	},
}

func rebuildProjections(ctx context.Context, cat *store.Catalog) error {
	for _, gs := range []model.GameSystem{model.Pathfinder, model.Starfinder} {
		start := time.Now()
		if err := cat.RebuildProjection(ctx, gs); err != nil {
			return fmt.Errorf("rebuilding %s projection: %w", gs, err)
		}
		logger.Info("projection rebuilt",
			zap.String("game_system", string(gs)),
			zap.Duration("elapsed", time.Since(start)))
	}
	return nil
}

func runServe(ctx context.Context) error {
	cat, err := store.Open(cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer cat.Close()

	// The listener must not accept connections before the projection is
	// consistent; a failed rebuild aborts startup.
	if cfg.StartupState == config.StartupClean {
		if err := rebuildProjections(ctx, cat); err != nil {
			return err
		}
	} else {
		logger.Info("persistent startup, trusting existing projection")
	}

	npcGen := npc.NewGenerator(cfg.NamesPath, cfg.NicknamesPath, logger,
		rand.New(rand.NewSource(time.Now().UnixNano())))

	srv := server.New(cfg, cat, npcGen, logger)
	return srv.Run(ctx)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, rebuildCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
