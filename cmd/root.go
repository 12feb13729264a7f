package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "minai",
	Short: "Basin analytics dashboard",
	Long:  "Fetches well, rig and section footage data from the basin gateway and derives the footage charts, wells-needed deficit and timeline map views.",
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
