package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"personal-assistant/internal/auth"
	"personal-assistant/internal/config"
	"personal-assistant/internal/logging"
	"personal-assistant/internal/mcp"
	"personal-assistant/internal/repository/sqlite"
	"personal-assistant/internal/seed"
	"personal-assistant/internal/server"
	"personal-assistant/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := seed.Run(ctx, repo, logger); err != nil {
		return err
	}

	clock := services.SystemClock()
	srv := server.New(
		cfg,
		logger,
		services.NewSprintService(repo, clock),
		services.NewProjectService(repo, clock),
		services.NewRitualService(repo),
		auth.NewTokenService(cfg.Auth.SecretKey, cfg.Auth.TokenExpiry),
		mcp.NewClient(cfg.MCP.ServerURL, cfg.MCP.AuthToken, cfg.MCP.Timeout),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("received signal", zap.String("signal", sig.String()))
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
