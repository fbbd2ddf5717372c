package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"myflix/internal/config"
	"myflix/internal/database"
	"myflix/internal/handlers"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:           "myflix-server",
		Short:         "Serve the MyFlix video API",
		Long:          `Serve the MyFlix video catalog API over HTTP, backed by PostgreSQL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadDotEnv(".env")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "failed to load configuration:", err)
				return err
			}
			logger := cfg.NewLogger()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := serve(ctx, cfg, logger); err != nil {
				logger.Error("server stopped with error", slog.Any("error", err))
				return err
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $MYFLIX_CONFIG)")

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if err := database.Migrate(cfg.PostgresURI); err != nil {
				cfg.NewLogger().Error("migration failed", slog.Any("error", err))
				return err
			}
			cmd.Println("Migrations applied")
			return nil
		},
	})

	return cmd
}

// loadDotEnv exports the variables of an optional .env file. Variables
// already present in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("failed to close database", slog.Any("error", err))
		}
	}()

	if cfg.AutoMigrate {
		err = database.AutoMigrate(db)
	} else {
		err = database.Migrate(cfg.PostgresURI)
	}
	if err != nil {
		return err
	}
	logger.Info("database ready", slog.Bool("auto_migrate", cfg.AutoMigrate))

	store := database.NewVideoStore(db)
	router := handlers.NewRouter(handlers.NewVideoHandler(store, logger), cfg.AllowedOrigins, logger)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("service stopped")
	return nil
}
