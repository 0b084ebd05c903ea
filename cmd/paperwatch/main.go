// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperwatch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperwatch/internal/observability"
	"github.com/pdiddy/paperwatch/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, else the secret value for
// key if one was loaded.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// logger is the process-wide diagnostic logger, built in PersistentPreRunE.
// Diagnostics go to stderr; results go to stdout.
var logger zerolog.Logger

// rootCmd is the base command for the paperwatch CLI.
var rootCmd = &cobra.Command{
	Use:   "paperwatch",
	Short: "Watch a research topic for freshly published papers",
	Long: `paperwatch queries the Semantic Scholar paper search API for papers on a
fixed topic published within the trailing seven days and prints the most
recently published match.

The watched topic is compiled in; run "paperwatch latest" to query it.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = observability.NewLogger(observability.LoggingConfig{
			Level:  viper.GetString("log.level"),
			Format: viper.GetString("log.format"),
		}, os.Stderr)

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			logger.Debug().Int("count", len(s)).Msg("loaded secrets")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// .env may carry PAPERWATCH_SEMANTIC_SCHOLAR_API_KEY for local runs.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperwatch.yaml or ~/.config/paperwatch/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperwatch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperwatch"))
		}
	}

	viper.SetDefault("http.timeout", "30s")
	viper.SetDefault("http.user_agent", "paperwatch/0.1")
	viper.SetDefault("http.requests_per_second", 1.0)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	viper.SetEnvPrefix("PAPERWATCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
