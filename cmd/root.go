package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/location-insights/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "location-insights",
	Short: "Synthetic location analytics report generator",
	Long:  "Synthesizes a mock user population and behavioral event stream across 20 cities, then reports usage patterns, density hotspots, and ranked event launch zones.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
