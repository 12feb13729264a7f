package timeline

import (
	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// Input is everything the timeline view is derived from.
type Input struct {
	Rigs         []model.RigRecord
	Wells        *model.WellCollection
	Records      []model.DataRecord
	Selection    model.OperatorSelection
	Date         model.Date
	Epoch        model.Date
	DefaultColor string
}

// View is the derived timeline state for one (operator, date) pair.
type View struct {
	Operator     string             `json:"operator" yaml:"operator"`
	Bounds       Bounds             `json:"bounds" yaml:"bounds"`
	CurrentDate  model.Date         `json:"current_date" yaml:"current_date"`
	Operators    []string           `json:"operators" yaml:"operators"`
	VisibleRigs  []RigMarker        `json:"visible_rigs" yaml:"visible_rigs"`
	WellsShown   bool               `json:"wells_shown" yaml:"wells_shown"`
	VisibleWells []WellMarker       `json:"visible_wells" yaml:"visible_wells"`
	PlotData     []model.DataRecord `json:"plot_data" yaml:"plot_data"`
	BBox         []float64          `json:"bbox,omitempty" yaml:"bbox,omitempty"`
}

// FilteredBounds computes the slider range for the selection.
func FilteredBounds(in Input) Bounds {
	return ComputeBounds(FilterRigs(in.Rigs, in.Selection), FilterWells(in.Wells, in.Selection), in.Epoch)
}

// Derive computes the view. in.Date is clamped into the filtered bounds
// before anything is filtered by it.
func Derive(in Input) View {
	rigs := FilterRigs(in.Rigs, in.Selection)
	wells := FilterWells(in.Wells, in.Selection)
	bounds := ComputeBounds(rigs, wells, in.Epoch)
	date := bounds.Clamp(in.Date)

	v := View{
		Operator:    in.Selection.String(),
		Bounds:      bounds,
		CurrentDate: date,
		Operators:   Operators(in.Rigs, in.Wells),
		VisibleRigs: RigMarkers(VisibleRigs(rigs, date)),
		PlotData:    PlotData(FilterRecords(in.Records, in.Selection), date),
	}
	v.VisibleWells, v.WellsShown = VisibleWells(wells, in.Selection, date, in.DefaultColor)

	if bound, ok := Viewport(v.VisibleRigs, v.VisibleWells); ok {
		v.BBox = []float64{bound.Min.X(), bound.Min.Y(), bound.Max.X(), bound.Max.Y()}
	}
	return v
}
