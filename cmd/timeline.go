package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/store"
)

var (
	timelineOperator string
	timelineDate     string
	timelineSweep    bool
	timelineFormat   string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Print the rig and well visibility for an operator and date",
	Long:  "Loads rigs, wells and activity records and prints what the map shows. With --sweep, walks the slider month by month from the first to the last date and prints one summary row per stop.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStore(cfg, "cli", nil)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.LoadTimeline(cmd.Context()); err != nil {
			zap.L().Warn("timeline data is unavailable", zap.Error(err))
		}
		if err := applySelection(s, timelineOperator, timelineDate); err != nil {
			return err
		}

		if timelineSweep {
			return writeOutput(cmd.OutOrStdout(), timelineFormat, sweep(s))
		}
		return writeOutput(cmd.OutOrStdout(), timelineFormat, s.Snapshot().Timeline)
	},
}

type sweepRow struct {
	Date        model.Date `json:"date" yaml:"date"`
	VisibleRigs int        `json:"visible_rigs" yaml:"visible_rigs"`
	ActiveWells int        `json:"active_wells" yaml:"active_wells"`
	PlotRecords int        `json:"plot_records" yaml:"plot_records"`
	Rigs        []string   `json:"rigs" yaml:"rigs"`
}

// sweep moves the store's date across every slider stop of the current
// operator and summarizes each view.
func sweep(s *store.Store) []sweepRow {
	stops := s.Snapshot().Timeline.Bounds.Months()
	rows := make([]sweepRow, 0, len(stops))
	for _, d := range stops {
		s.SetCurrentDate(d)
		v := s.Snapshot().Timeline

		row := sweepRow{
			Date:        v.CurrentDate,
			VisibleRigs: len(v.VisibleRigs),
			PlotRecords: len(v.PlotData),
			Rigs:        make([]string, 0, len(v.VisibleRigs)),
		}
		for _, r := range v.VisibleRigs {
			row.Rigs = append(row.Rigs, r.RigID)
		}
		for _, w := range v.VisibleWells {
			if w.Active {
				row.ActiveWells++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func init() {
	timelineCmd.Flags().StringVar(&timelineOperator, "operator", "", "operator to filter by (default All)")
	timelineCmd.Flags().StringVar(&timelineDate, "date", "", "timeline date, YYYY-MM-DD (default today, clamped)")
	timelineCmd.Flags().BoolVar(&timelineSweep, "sweep", false, "walk the timeline month by month")
	timelineCmd.Flags().StringVar(&timelineFormat, "format", formatJSON, "output format: json or yaml")
	rootCmd.AddCommand(timelineCmd)
}
