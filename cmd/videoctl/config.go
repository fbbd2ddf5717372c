package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"myflix/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long:  `Manage configuration settings for videoctl.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [SERVER_URL]",
		Short: "Initialize configuration file",
		Long:  `Create a new configuration file pointing at a MyFlix API server.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var serverURL string
			if len(args) > 0 {
				serverURL = args[0]
			}

			if err := config.InitClientConfig(serverURL); err != nil {
				return err
			}

			configPath, err := config.GetClientConfigPath()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created configuration file: %s\n", configPath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  `Display the configuration file path and the effective settings.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.GetClientConfigPath()
			if err != nil {
				return err
			}

			cfg, err := config.LoadClientConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configuration file: %s\n\n", configPath)
			fmt.Fprintf(out, "SERVER_URL: %s\n", cfg.ServerURL)
			fmt.Fprintf(out, "TIMEOUT: %s\n", cfg.Timeout)
			return nil
		},
	})

	return cmd
}
