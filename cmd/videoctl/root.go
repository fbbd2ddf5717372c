package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"myflix/internal/client"
	"myflix/internal/config"
	"myflix/internal/models"
	"myflix/internal/registry"
)

// API is what the commands need from the server.
type API interface {
	registry.API
	Get(ctx context.Context, id uint) (*models.Video, error)
}

// apiFactory connects to the server named by the --server flag or the client config.
type apiFactory func(serverURL string) (API, error)

func httpAPI(serverURL string) (API, error) {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		if err := config.ValidateServerURL(serverURL); err != nil {
			return nil, err
		}
		cfg.ServerURL = serverURL
	}
	return client.New(cfg.ServerURL, client.WithTimeout(cfg.Timeout)), nil
}

// app carries what every subcommand shares.
type app struct {
	newAPI    apiFactory
	serverURL string
	verbose   bool
}

func (a *app) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (a *app) api() (API, error) {
	api, err := a.newAPI(a.serverURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return api, nil
}

func (a *app) registry(cmd *cobra.Command) (*registry.Registry, API, error) {
	api, err := a.api()
	if err != nil {
		return nil, nil, err
	}
	return registry.New(api, newWriterNotifier(cmd.ErrOrStderr()), a.logger(cmd)), api, nil
}

func newRootCommand(factory apiFactory) *cobra.Command {
	a := &app{newAPI: factory}

	cmd := &cobra.Command{
		Use:          "videoctl",
		Short:        "Manage your MyFlix video catalog",
		Long:         `Browse, add, edit and delete videos in a MyFlix catalog from the terminal.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&a.serverURL, "server", "", "API base URL (overrides $VIDEOCTL_SERVER_URL and the config file)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	cmd.AddCommand(
		newListCommand(a),
		newShowCommand(a),
		newAddCommand(a),
		newEditCommand(a),
		newDeleteCommand(a),
		newConfigCommand(),
	)
	return cmd
}
