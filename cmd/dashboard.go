package main

import (
	"github.com/spf13/cobra"
)

var (
	dashboardRadius   float64
	dashboardOperator string
	dashboardDate     string
	dashboardFormat   string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Load all basin data and print the full dashboard view",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStore(cfg, "cli", nil)
		if err != nil {
			return err
		}
		defer s.Close()

		radius := dashboardRadius
		if radius == 0 {
			radius = cfg.Basin.DefaultRadius
		}
		_ = loadAll(cmd.Context(), s, radius)

		if err := applySelection(s, dashboardOperator, dashboardDate); err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), dashboardFormat, s.Snapshot())
	},
}

func init() {
	dashboardCmd.Flags().Float64Var(&dashboardRadius, "radius", 0, "search radius in miles (default from config)")
	dashboardCmd.Flags().StringVar(&dashboardOperator, "operator", "", "operator to filter the timeline by (default All)")
	dashboardCmd.Flags().StringVar(&dashboardDate, "date", "", "timeline date, YYYY-MM-DD (default today, clamped)")
	dashboardCmd.Flags().StringVar(&dashboardFormat, "format", formatJSON, "output format: json or yaml")
	rootCmd.AddCommand(dashboardCmd)
}
