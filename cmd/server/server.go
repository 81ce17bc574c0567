package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/axellelanca/linkboard/cmd"
	"github.com/axellelanca/linkboard/internal/api"
	"github.com/axellelanca/linkboard/internal/monitor"
	"github.com/axellelanca/linkboard/internal/repository"
	"github.com/axellelanca/linkboard/internal/services"
	"github.com/axellelanca/linkboard/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// RunServerCmd starts the HTTP server and the background link monitor.
var RunServerCmd = &cobra.Command{
	Use:   "run-server",
	Short: "Starts the link board HTTP server.",
	Long: `This command opens and migrates the database, starts the link monitor
when enabled, then serves the submission form, the listing page and the JSON API.`,
	RunE: func(c *cobra.Command, args []string) error {
		cfg := cmd.Cfg
		logger := cmd.Logger
		defer func() { _ = logger.Sync() }()

		db, err := storage.Open(cfg.Database)
		if err != nil {
			return err
		}
		defer func() { _ = storage.Close(db) }()

		if err := storage.Migrate(db); err != nil {
			return err
		}

		linkRepo := repository.NewLinkRepository(db)
		linkService := services.NewLinkService(linkRepo, logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if cfg.Monitor.Enabled {
			urlMonitor := monitor.NewUrlMonitor(linkRepo, cfg.MonitorInterval(), logger)
			go urlMonitor.Start(ctx)
		}

		gin.SetMode(gin.ReleaseMode)
		if cfg.Log.Development {
			gin.SetMode(gin.DebugMode)
		}
		router := api.NewRouter(linkService, logger)

		serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
		srv := &http.Server{
			Addr:              serverAddr,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			logger.Info("starting server", zap.String("addr", serverAddr), zap.String("base_url", cfg.Server.BaseURL))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutdown signal received, stopping server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}

		logger.Info("server stopped")
		return nil
	},
}

func init() {
	cmd.RootCmd.AddCommand(RunServerCmd)
}
