// Package timeline derives the operator- and date-filtered views of rigs,
// wells and activity records that drive the map and the timeline slider.
package timeline

import (
	"maps"
	"slices"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// FilterWells keeps the wells owned by the selected operator.
func FilterWells(fc *model.WellCollection, sel model.OperatorSelection) *model.WellCollection {
	return fc.Filter(func(f model.WellFeature) bool {
		return sel.Matches(f.Properties.Operator.String())
	})
}

// FilterRigs keeps the rigs owned by the selected operator.
func FilterRigs(rigs []model.RigRecord, sel model.OperatorSelection) []model.RigRecord {
	out := make([]model.RigRecord, 0, len(rigs))
	for _, r := range rigs {
		if sel.Matches(r.Operator.String()) {
			out = append(out, r)
		}
	}
	return out
}

// FilterRecords keeps the activity records owned by the selected operator.
func FilterRecords(records []model.DataRecord, sel model.OperatorSelection) []model.DataRecord {
	out := make([]model.DataRecord, 0, len(records))
	for _, r := range records {
		if sel.Matches(r.Operator) {
			out = append(out, r)
		}
	}
	return out
}

// Operators lists the distinct operators seen across rigs and wells, sorted,
// with the all-operators choice first.
func Operators(rigs []model.RigRecord, wells *model.WellCollection) []string {
	set := make(map[string]struct{})
	for _, r := range rigs {
		if op := r.Operator.String(); op != "" {
			set[op] = struct{}{}
		}
	}
	if wells != nil {
		for _, f := range wells.Features {
			if op := f.Properties.Operator.String(); op != "" {
				set[op] = struct{}{}
			}
		}
	}
	delete(set, model.AllOperators)
	return append([]string{model.AllOperators}, slices.Sorted(maps.Keys(set))...)
}
