// Copyright (c) 2025 Findhub
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Sahilkhan-creator/Learnstream/internal/config"
)

// configCmd shows and edits the non-secret CLI settings kept in the XDG
// config file. Credentials never live here; they stay in the keychain.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		pterm.Printfln("api url:   %s", cfg.APIBaseURL)
		pterm.Printfln("log level: %s", cfg.LogLevel)
		return nil
	},
}

var (
	configAPIURL   string
	configLogLevel string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Persist CLI settings",
	Long: `Set one or more CLI settings and write them to the config file. Settings
persist across invocations; the FINDHUB_API_URL and FINDHUB_LOG_LEVEL
environment variables still override them per-invocation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cmd.Flags().Changed("api-url") && !cmd.Flags().Changed("log-level") {
			return fmt.Errorf("nothing to set; pass --api-url and/or --log-level")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		cfg = mergeConfig(cfg, configAPIURL, configLogLevel)
		if err := config.Save(cfg); err != nil {
			return err
		}
		pterm.Success.Println("Settings saved.")
		return nil
	},
}

// mergeConfig applies the flags that were set onto the loaded configuration.
func mergeConfig(c config.Config, apiURL, logLevel string) config.Config {
	if apiURL != "" {
		c.APIBaseURL = apiURL
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	return c
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)

	configSetCmd.Flags().StringVar(&configAPIURL, "api-url", "", "Findhub API base URL")
	configSetCmd.Flags().StringVar(&configLogLevel, "log-level", "", "Log level: debug, info, warn, or error")
}
