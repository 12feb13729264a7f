package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/chart"
	"github.com/energyinsights-ai/minai-demo/internal/store"
)

var (
	footageRadius   float64
	footageTRS      string
	footageFormat   string
	footageMappings bool
)

var footageCmd = &cobra.Command{
	Use:   "footage",
	Short: "Print the footage charts for a radius and section",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStore(cfg, "cli", nil)
		if err != nil {
			return err
		}
		defer s.Close()

		if footageTRS != "" {
			if err := s.SetSelectedTRS(footageTRS); err != nil {
				return err
			}
		}

		radius := footageRadius
		if radius == 0 {
			radius = cfg.Basin.DefaultRadius
		}
		if err := s.SetRadius(cmd.Context(), radius); err != nil {
			zap.L().Warn("footage data is unavailable", zap.Error(err))
		}

		v := s.Snapshot()
		if footageMappings {
			return writeOutput(cmd.OutOrStdout(), footageFormat, v.Footage)
		}
		return writeOutput(cmd.OutOrStdout(), footageFormat, footageOutput(v))
	},
}

type footageReport struct {
	Radius      float64      `json:"radius" yaml:"radius"`
	SelectedTRS string       `json:"selected_trs" yaml:"selected_trs"`
	Charts      chart.Charts `json:"charts" yaml:"charts"`
}

func footageOutput(v store.View) footageReport {
	return footageReport{
		Radius:      v.Filter.Radius,
		SelectedTRS: v.Filter.SelectedTRS,
		Charts:      v.Footage.Charts,
	}
}

func init() {
	footageCmd.Flags().Float64Var(&footageRadius, "radius", 0, "search radius in miles (default from config)")
	footageCmd.Flags().StringVar(&footageTRS, "trs", "", "selected township-range-section (default from config)")
	footageCmd.Flags().StringVar(&footageFormat, "format", formatJSON, "output format: json or yaml")
	footageCmd.Flags().BoolVar(&footageMappings, "mappings", false, "print the footage mappings alongside the charts")
	rootCmd.AddCommand(footageCmd)
}
