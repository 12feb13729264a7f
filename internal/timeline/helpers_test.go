package timeline

import (
	"github.com/twpayne/go-geom"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

func day(s string) model.Date {
	if s == "" {
		return model.Date{}
	}
	return model.MustParseDate(s)
}

func rig(id, op, first, last string) model.RigRecord {
	return model.RigRecord{
		RigID:     model.Text(id),
		LeaseName: model.Text("Lease " + id),
		Operator:  model.Text(op),
		FirstDate: day(first),
		LastDate:  day(last),
		LatMean:   40.2,
		LonMean:   -104.8,
	}
}

func well(id, op, permit, spud string, activity ...model.WellActivity) model.WellFeature {
	return model.WellFeature{
		Type: "Feature",
		Geometry: model.Geometry{
			T: geom.NewLineStringFlat(geom.XY, []float64{-104.9, 40.1, -104.85, 40.1}),
		},
		Properties: model.WellProperties{
			WellID:             model.Text(id),
			Operator:           model.Text(op),
			PermitApprovedDate: day(permit),
			SpudDate:           day(spud),
			Data:               activity,
		},
	}
}

func act(ts, color string) model.WellActivity {
	return model.WellActivity{Timestamp: day(ts), Color: color}
}

func collection(fs ...model.WellFeature) *model.WellCollection {
	return &model.WellCollection{Type: "FeatureCollection", Features: fs}
}

func record(ts, op string) model.DataRecord {
	return model.DataRecord{Timestamp: day(ts), Operator: op}
}
