// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperwatch/internal/finder"
	"github.com/pdiddy/paperwatch/pkg/types"
)

// searchTopic is the fixed topic this tool watches. Changing it requires a
// rebuild.
const searchTopic = "Resource recovery bioprocesses"

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the most recently published paper on the watched topic",
	Long: `Latest queries the Semantic Scholar paper search API for papers on the
watched topic published within the seven days ending today (UTC) and prints
the most recently published match. Papers without a full publication date
fall back to January 1 of their publication year for ranking.

A window with no matching papers is reported explicitly and is not an
error. Network failures and non-success responses abort the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := time.Now().UTC()
		if asOf, _ := cmd.Flags().GetString("as-of"); asOf != "" {
			t, err := time.Parse("2006-01-02", asOf)
			if err != nil {
				return fmt.Errorf("parsing --as-of date: %w", err)
			}
			ref = t
		}

		cfg := finderConfig()
		f := finder.New(cfg)

		logger.Debug().
			Str("topic", searchTopic).
			Str("window", finder.NewSearchWindow(ref).String()).
			Msg("querying search service")

		rec, err := f.FindMostRecent(cmd.Context(), searchTopic, ref)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		asYAML, _ := cmd.Flags().GetBool("yaml")
		switch {
		case asJSON:
			return finder.FormatJSON(rec, os.Stdout)
		case asYAML:
			return finder.FormatYAML(rec, os.Stdout)
		default:
			finder.FormatText(rec, os.Stdout)
			return nil
		}
	},
}

// finderConfig assembles the finder settings from viper and loaded secrets.
func finderConfig() types.FinderConfig {
	return types.FinderConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		SemanticScholarAPIKey: secretDefault("semantic-scholar-api-key",
			viper.GetString("semantic_scholar_api_key")),
		RequestsPerSecond: viper.GetFloat64("http.requests_per_second"),
	}
}

func init() {
	latestCmd.Flags().Bool("json", false, "output the record as JSON")
	latestCmd.Flags().Bool("yaml", false, "output the record as YAML")
	latestCmd.Flags().String("as-of", "", "reference date (YYYY-MM-DD, default: today UTC)")

	rootCmd.AddCommand(latestCmd)
}
