package timeline

import (
	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// DefaultWellColor styles wells with no activity in the current month.
const DefaultWellColor = "#3388ff"

// VisibleRigs returns the rigs active on d, inclusive of both ends of their
// interval.
func VisibleRigs(rigs []model.RigRecord, d model.Date) []model.RigRecord {
	out := make([]model.RigRecord, 0)
	for _, r := range rigs {
		if r.ActiveOn(d) {
			out = append(out, r)
		}
	}
	return out
}

// PlotData returns the records stamped on or before d. Records without a
// timestamp are never plotted.
func PlotData(records []model.DataRecord, d model.Date) []model.DataRecord {
	out := make([]model.DataRecord, 0)
	for _, r := range records {
		if !r.Timestamp.IsZero() && !r.Timestamp.After(d) {
			out = append(out, r)
		}
	}
	return out
}

// MonthColor returns the color of the first activity entry in the same
// calendar month and year as d.
func MonthColor(activity []model.WellActivity, d model.Date) (string, bool) {
	for _, a := range activity {
		if !a.Timestamp.IsZero() && a.Timestamp.SameMonth(d) {
			return a.Color, true
		}
	}
	return "", false
}

// VisibleWells tags every well of a single operator with its color for the
// month of d. With all operators selected there are no well markers and ok
// is false.
func VisibleWells(wells *model.WellCollection, sel model.OperatorSelection, d model.Date, defaultColor string) (markers []WellMarker, ok bool) {
	if sel.IsAll() {
		return nil, false
	}
	if defaultColor == "" {
		defaultColor = DefaultWellColor
	}

	filtered := FilterWells(wells, sel)
	markers = make([]WellMarker, 0, filtered.Len())
	for _, f := range filtered.Features {
		color, active := MonthColor(f.Properties.Data, d)
		if !active || color == "" {
			color = defaultColor
		}
		markers = append(markers, newWellMarker(f, color, active))
	}
	return markers, true
}
