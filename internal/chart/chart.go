// Package chart projects footage mappings into chart-library-agnostic
// series: one label axis and one or more datasets with their styling.
package chart

import (
	"math"

	"github.com/energyinsights-ai/minai-demo/internal/footage"
)

// DefaultFootagePerWell is the lateral footage one well is assumed to
// develop when converting average footage into a well count.
const DefaultFootagePerWell = 5000.0

// deadband is the smallest deficit reported as a whole well.
const deadband = 0.5

// Dataset labels.
const (
	LabelAverageFootage    = "Average Footage by Formation"
	LabelSelectedFormation = "Total Footage by Interval for Selected Formation"
	LabelWellsNeeded       = "Additional Wells Needed"
)

// Style is the fill and stroke of a dataset.
type Style struct {
	BackgroundColor string
	BorderColor     string
	BorderWidth     int
}

var (
	teal = Style{BackgroundColor: "rgba(75, 192, 192, 0.6)", BorderColor: "rgba(75, 192, 192, 1)", BorderWidth: 1}
	blue = Style{BackgroundColor: "rgba(54, 162, 235, 0.6)", BorderColor: "rgba(54, 162, 235, 1)", BorderWidth: 1}
)

// Dataset is one series over the chart's labels.
type Dataset struct {
	Label           string    `json:"label" yaml:"label"`
	Data            []float64 `json:"data" yaml:"data"`
	BackgroundColor string    `json:"backgroundColor" yaml:"backgroundColor"`
	BorderColor     string    `json:"borderColor" yaml:"borderColor"`
	BorderWidth     int       `json:"borderWidth" yaml:"borderWidth"`
}

// Data is a complete chart: labels plus datasets aligned to them.
type Data struct {
	Labels   []string  `json:"labels" yaml:"labels"`
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
}

func single(label string, style Style, labels []string, values []float64) Data {
	return Data{
		Labels: labels,
		Datasets: []Dataset{{
			Label:           label,
			Data:            values,
			BackgroundColor: style.BackgroundColor,
			BorderColor:     style.BorderColor,
			BorderWidth:     style.BorderWidth,
		}},
	}
}

func series(m footage.FormationFootage) ([]string, []float64) {
	labels := make([]string, 0, m.Len())
	values := make([]float64, 0, m.Len())
	m.Each(func(k string, v float64) {
		labels = append(labels, k)
		values = append(values, v)
	})
	return labels, values
}

// AverageFootage charts the basin-wide average footage per formation.
func AverageFootage(avg footage.FormationFootage) Data {
	labels, values := series(avg)
	return single(LabelAverageFootage, teal, labels, values)
}

// SelectedFormation charts the footage per interval of the selected section.
func SelectedFormation(sel footage.FormationFootage) Data {
	labels, values := series(sel)
	return single(LabelSelectedFormation, blue, labels, values)
}

// WellsNeeded charts the per-formation well deficit of the selected section
// against the basin average. Labels are the average formations followed by
// any section-only intervals, each once.
func WellsNeeded(avg footage.FormationFootage, section footage.SectionFootage, footagePerWell float64) Data {
	labels := make([]string, 0, avg.Len()+section.Len())
	seen := make(map[string]struct{}, avg.Len()+section.Len())
	for _, keys := range [][]string{avg.Keys(), section.Keys()} {
		for _, k := range keys {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			labels = append(labels, k)
		}
	}

	values := make([]float64, 0, len(labels))
	for _, label := range labels {
		avgFootage, _ := avg.Get(label)
		avgWellCount := WellCount(avgFootage, footagePerWell)

		var diff float64
		if stat, ok := section.Get(label); ok {
			diff = stat.WellCount - avgWellCount
		} else {
			diff = avgWellCount
		}
		values = append(values, Deficit(diff))
	}

	return single(LabelWellsNeeded, teal, labels, values)
}

// Deficit applies the reporting rule to a raw well-count difference: values
// below half a well (including negatives) are 0, anything else is rounded
// to the nearest whole well.
func Deficit(diff float64) float64 {
	if math.IsNaN(diff) || diff < deadband {
		return 0
	}
	return math.Round(diff)
}

// WellCount converts footage to a fractional well count.
func WellCount(footage, footagePerWell float64) float64 {
	if footagePerWell <= 0 {
		footagePerWell = DefaultFootagePerWell
	}
	return footage / footagePerWell
}

// Charts groups the three dashboard charts.
type Charts struct {
	AverageFootage    Data `json:"average_footage" yaml:"average_footage"`
	SelectedFormation Data `json:"selected_formation" yaml:"selected_formation"`
	WellsNeeded       Data `json:"wells_needed" yaml:"wells_needed"`
}

// Build derives all three charts from a footage result.
func Build(res footage.Result, footagePerWell float64) Charts {
	return Charts{
		AverageFootage:    AverageFootage(res.Average),
		SelectedFormation: SelectedFormation(res.SelectedTRS),
		WellsNeeded:       WellsNeeded(res.Average, res.SelectedSection, footagePerWell),
	}
}
