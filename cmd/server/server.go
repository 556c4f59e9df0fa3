package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/AnotherWeak/prova/internal/config"
	apiv1 "github.com/AnotherWeak/prova/internal/handlers/api/v1"
	"github.com/AnotherWeak/prova/internal/middleware"
	characterorch "github.com/AnotherWeak/prova/internal/orchestrators/character"
	itemorch "github.com/AnotherWeak/prova/internal/orchestrators/item"
	characterrepo "github.com/AnotherWeak/prova/internal/repositories/character"
	itemrepo "github.com/AnotherWeak/prova/internal/repositories/item"
	"github.com/AnotherWeak/prova/internal/sqlite"
)

var (
	httpPort     int
	databasePath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the API server with all configured routes.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 0, "HTTP server port (overrides PORT)")
	serverCmd.Flags().StringVar(&databasePath, "database", "", "SQLite database path (overrides DATABASE_PATH)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if httpPort != 0 {
		cfg.Port = httpPort
	}
	if databasePath != "" {
		cfg.DatabasePath = databasePath
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	charRepo, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{DB: db})
	if err != nil {
		return fmt.Errorf("failed to create character repository: %w", err)
	}
	itRepo, err := itemrepo.NewSQLite(&itemrepo.SQLiteConfig{DB: db})
	if err != nil {
		return fmt.Errorf("failed to create item repository: %w", err)
	}

	characterService, err := characterorch.New(&characterorch.Config{
		CharacterRepo: charRepo,
		ItemRepo:      itRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create character orchestrator: %w", err)
	}
	itemService, err := itemorch.New(&itemorch.Config{
		ItemRepo: itRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create item orchestrator: %w", err)
	}

	handler, err := apiv1.NewHandler(&apiv1.HandlerConfig{
		CharacterService: characterService,
		ItemService:      itemService,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", srv.Addr, "database", cfg.DatabasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down http server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed, forcing close", "error", err)
			_ = srv.Close()
		}
		slog.Info("http server stopped")
		return nil
	case err := <-errChan:
		return err
	}
}
