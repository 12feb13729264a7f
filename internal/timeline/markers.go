package timeline

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

var printer = message.NewPrinter(language.English)

// RigMarker is a map-ready rig.
type RigMarker struct {
	RigID     string     `json:"rig_id" yaml:"rig_id"`
	LeaseName string     `json:"lease_name" yaml:"lease_name"`
	Operator  string     `json:"operator" yaml:"operator"`
	FirstDate model.Date `json:"first_date" yaml:"first_date"`
	LastDate  model.Date `json:"last_date" yaml:"last_date"`
	Position  orb.Point  `json:"position" yaml:"position"`
	Tooltip   string     `json:"tooltip" yaml:"tooltip"`
}

// WellMarker is a map-ready well styled for the current month.
type WellMarker struct {
	WellID   string    `json:"well_id" yaml:"well_id"`
	WellName string    `json:"well_name" yaml:"well_name"`
	Operator string    `json:"operator" yaml:"operator"`
	TRS      string    `json:"trs" yaml:"trs"`
	Position orb.Point `json:"position" yaml:"position"`
	Located  bool      `json:"located" yaml:"located"`
	Color    string    `json:"color" yaml:"color"`
	Active   bool      `json:"active" yaml:"active"`
	Tooltip  string    `json:"tooltip" yaml:"tooltip"`
}

// RigMarkers converts rigs to markers at their mean location.
func RigMarkers(rigs []model.RigRecord) []RigMarker {
	out := make([]RigMarker, 0, len(rigs))
	for _, r := range rigs {
		out = append(out, RigMarker{
			RigID:     r.RigID.String(),
			LeaseName: r.LeaseName.String(),
			Operator:  r.Operator.String(),
			FirstDate: r.FirstDate,
			LastDate:  r.LastDate,
			Position:  orb.Point{r.LonMean, r.LatMean},
			Tooltip:   rigTooltip(r),
		})
	}
	return out
}

func rigTooltip(r model.RigRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rig %s", r.RigID)
	if r.LeaseName != "" {
		fmt.Fprintf(&b, " on %s", r.LeaseName)
	}
	if r.Operator != "" {
		fmt.Fprintf(&b, " (%s)", r.Operator)
	}
	fmt.Fprintf(&b, "\nActive %s to %s", r.FirstDate, r.LastDate)
	return b.String()
}

func newWellMarker(f model.WellFeature, color string, active bool) WellMarker {
	p := f.Properties
	m := WellMarker{
		WellID:   p.WellID.String(),
		WellName: p.WellName.String(),
		Operator: p.Operator.String(),
		TRS:      p.TRS.String(),
		Color:    color,
		Active:   active,
		Tooltip:  wellTooltip(p),
	}
	if lon, lat, ok := f.Geometry.Anchor(); ok {
		m.Position = orb.Point{lon, lat}
		m.Located = true
	}
	return m
}

func wellTooltip(p model.WellProperties) string {
	var b strings.Builder
	name := p.WellName.String()
	if name == "" {
		name = "Well " + p.WellID.String()
	}
	b.WriteString(name)
	if p.Operator != "" {
		fmt.Fprintf(&b, " (%s)", p.Operator)
	}
	if !p.SpudDate.IsZero() {
		fmt.Fprintf(&b, "\nSpud %s", p.SpudDate)
	}
	var total float64
	p.IntervalFootages.Each(func(_ string, s model.IntervalStat) {
		total += s.Footage
	})
	if total > 0 {
		b.WriteString("\n")
		b.WriteString(printer.Sprintf("%d ft", int64(math.Round(total))))
	}
	return b.String()
}

// Viewport is the bounding box of every located marker, for fitting the map.
// ok is false when there is nothing to frame.
func Viewport(rigs []RigMarker, wells []WellMarker) (bound orb.Bound, ok bool) {
	var pts orb.MultiPoint
	for _, r := range rigs {
		if r.Position != (orb.Point{}) {
			pts = append(pts, r.Position)
		}
	}
	for _, w := range wells {
		if w.Located {
			pts = append(pts, w.Position)
		}
	}
	if len(pts) == 0 {
		return orb.Bound{}, false
	}
	return pts.Bound(), true
}
