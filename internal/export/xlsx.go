// Package export writes dashboard views to files analysts open outside the
// browser: chart datasets to an XLSX workbook and map markers to ESRI
// shapefiles.
package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/energyinsights-ai/minai-demo/internal/chart"
)

// Sheet names, one per chart.
const (
	SheetAverageFootage    = "Average Footage"
	SheetSelectedFormation = "Selected Formation"
	SheetWellsNeeded       = "Wells Needed"
)

const footageFormat = "#,##0"

// WriteChartsXLSX saves the three charts to path, one sheet each. Every
// sheet has an Interval column followed by one column per dataset.
func WriteChartsXLSX(path string, charts chart.Charts) error {
	f := xlsx.NewFile()

	sheets := []struct {
		name   string
		data   chart.Data
		format string
	}{
		{SheetAverageFootage, charts.AverageFootage, footageFormat},
		{SheetSelectedFormation, charts.SelectedFormation, footageFormat},
		{SheetWellsNeeded, charts.WellsNeeded, "0"},
	}
	for _, s := range sheets {
		if err := addChartSheet(f, s.name, s.data, s.format); err != nil {
			return err
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}
	return nil
}

func addChartSheet(f *xlsx.File, name string, data chart.Data, format string) error {
	sheet, err := f.AddSheet(name)
	if err != nil {
		return eris.Wrapf(err, "xlsx: add sheet %q", name)
	}

	header := sheet.AddRow()
	header.AddCell().SetString("Interval")
	for _, ds := range data.Datasets {
		header.AddCell().SetString(ds.Label)
	}

	for i, label := range data.Labels {
		row := sheet.AddRow()
		row.AddCell().SetString(label)
		for _, ds := range data.Datasets {
			cell := row.AddCell()
			if i < len(ds.Data) {
				cell.SetFloatWithFormat(ds.Data[i], format)
			}
		}
	}
	return nil
}
