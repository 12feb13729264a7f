package timeline

import (
	"time"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// DefaultEpoch is the earliest date the timeline considers in range.
var DefaultEpoch = model.NewDate(2022, time.January, 1)

// Bounds is the closed date range the timeline slider spans.
type Bounds struct {
	Min model.Date `json:"min_date" yaml:"min_date"`
	Max model.Date `json:"max_date" yaml:"max_date"`
}

// ComputeBounds spans the rigs' active intervals and the wells' permit and
// spud dates. Min is never earlier than epoch and Max is never earlier than
// Min; with no dated input both equal epoch.
func ComputeBounds(rigs []model.RigRecord, wells *model.WellCollection, epoch model.Date) Bounds {
	var lo, hi model.Date
	add := func(d model.Date) {
		lo = model.MinDate(lo, d)
		hi = model.MaxDate(hi, d)
	}

	for _, r := range rigs {
		add(r.FirstDate)
		add(r.LastDate)
	}
	if wells != nil {
		for _, f := range wells.Features {
			add(f.Properties.PermitApprovedDate)
			add(f.Properties.SpudDate)
		}
	}

	b := Bounds{Min: model.MaxDate(lo, epoch), Max: hi}
	if b.Min.IsZero() {
		b.Min = hi
	}
	if b.Max.IsZero() || b.Max.Before(b.Min) {
		b.Max = b.Min
	}
	return b
}

// Clamp pins d into the range. A zero d clamps to Min.
func (b Bounds) Clamp(d model.Date) model.Date {
	switch {
	case d.IsZero(), d.Before(b.Min):
		return b.Min
	case d.After(b.Max):
		return b.Max
	default:
		return d
	}
}

// Contains reports whether d lies inside the range, inclusive.
func (b Bounds) Contains(d model.Date) bool {
	return !d.Before(b.Min) && !d.After(b.Max)
}

// Months returns the slider stops from Min to Max: Min itself, the first of
// every following month, and Max when it is not already a stop.
func (b Bounds) Months() []model.Date {
	if b.Min.IsZero() {
		return nil
	}
	stops := []model.Date{b.Min}
	for d := b.Min.AddMonths(1); !d.After(b.Max); d = d.AddMonths(1) {
		stops = append(stops, d)
	}
	if last := stops[len(stops)-1]; last.Before(b.Max) {
		stops = append(stops, b.Max)
	}
	return stops
}
