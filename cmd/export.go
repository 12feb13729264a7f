package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/export"
)

var (
	exportXLSX     string
	exportShp      string
	exportRadius   float64
	exportOperator string
	exportDate     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the footage charts to XLSX and the map markers to shapefiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportXLSX == "" && exportShp == "" {
			return eris.New("export: at least one of --xlsx or --shp is required")
		}

		s, err := initStore(cfg, "cli", nil)
		if err != nil {
			return err
		}
		defer s.Close()

		radius := exportRadius
		if radius == 0 {
			radius = cfg.Basin.DefaultRadius
		}
		_ = loadAll(cmd.Context(), s, radius)
		if err := applySelection(s, exportOperator, exportDate); err != nil {
			return err
		}
		v := s.Snapshot()

		if exportXLSX != "" {
			if err := export.WriteChartsXLSX(exportXLSX, v.Footage.Charts); err != nil {
				return err
			}
			zap.L().Info("wrote charts", zap.String("path", exportXLSX))
		}
		if exportShp != "" {
			paths, err := export.WriteMarkersShapefile(exportShp, v.Timeline.VisibleRigs, v.Timeline.VisibleWells, v.Timeline.WellsShown)
			if err != nil {
				return err
			}
			zap.L().Info("wrote marker layers", zap.Strings("paths", paths))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportXLSX, "xlsx", "", "path of the chart workbook to write")
	exportCmd.Flags().StringVar(&exportShp, "shp", "", "directory to write rigs.shp and wells.shp into")
	exportCmd.Flags().Float64Var(&exportRadius, "radius", 0, "search radius in miles (default from config)")
	exportCmd.Flags().StringVar(&exportOperator, "operator", "", "operator to filter the markers by (default All)")
	exportCmd.Flags().StringVar(&exportDate, "date", "", "timeline date, YYYY-MM-DD (default today, clamped)")
	rootCmd.AddCommand(exportCmd)
}
