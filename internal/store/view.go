package store

import (
	"maps"
	"slices"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/energyinsights-ai/minai-demo/internal/chart"
	"github.com/energyinsights-ai/minai-demo/internal/timeline"
)

// View is a point-in-time copy of everything a dashboard renders. It shares
// no mutable state with the store; property values nested inside maps are
// copied by reference and must be treated as read-only.
type View struct {
	Filter   FilterState                `json:"filter" yaml:"filter"`
	Footage  FootageState               `json:"footage" yaml:"footage"`
	Timeline timeline.View              `json:"timeline" yaml:"timeline"`
	Township *geojson.FeatureCollection `json:"township,omitempty" yaml:"-"`
}

// Snapshot returns the current view.
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Filter: s.filter,
		Footage: FootageState{
			Mappings: s.footage.Mappings.Clone(),
			Charts:   cloneCharts(s.footage.Charts),
		},
		Timeline: cloneTimeline(s.timeline),
		Township: cloneTownship(s.cache.Township),
	}
}

func cloneCharts(c chart.Charts) chart.Charts {
	return chart.Charts{
		AverageFootage:    cloneData(c.AverageFootage),
		SelectedFormation: cloneData(c.SelectedFormation),
		WellsNeeded:       cloneData(c.WellsNeeded),
	}
}

func cloneData(d chart.Data) chart.Data {
	out := chart.Data{Labels: slices.Clone(d.Labels), Datasets: slices.Clone(d.Datasets)}
	for i := range out.Datasets {
		out.Datasets[i].Data = slices.Clone(out.Datasets[i].Data)
	}
	return out
}

func cloneTimeline(v timeline.View) timeline.View {
	v.Operators = slices.Clone(v.Operators)
	v.VisibleRigs = slices.Clone(v.VisibleRigs)
	v.VisibleWells = slices.Clone(v.VisibleWells)
	v.PlotData = slices.Clone(v.PlotData)
	for i := range v.PlotData {
		v.PlotData[i].Fields = maps.Clone(v.PlotData[i].Fields)
	}
	v.BBox = slices.Clone(v.BBox)
	return v
}

func cloneTownship(fc *geojson.FeatureCollection) *geojson.FeatureCollection {
	if fc == nil {
		return nil
	}
	out := *fc
	out.BBox = slices.Clone(fc.BBox)
	out.ExtraMembers = maps.Clone(fc.ExtraMembers)
	out.Features = slices.Clone(fc.Features)
	for i, f := range out.Features {
		if f == nil {
			continue
		}
		cf := *f
		cf.BBox = slices.Clone(f.BBox)
		cf.Geometry = orb.Clone(f.Geometry)
		cf.Properties = maps.Clone(f.Properties)
		cf.ExtraMembers = maps.Clone(f.ExtraMembers)
		out.Features[i] = &cf
	}
	return &out
}
