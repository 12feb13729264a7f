package timeline

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energyinsights-ai/minai-demo/internal/model"
)

func TestRigMarkers(t *testing.T) {
	t.Parallel()

	markers := RigMarkers([]model.RigRecord{rig("7", "Chevron", "2022-03-01", "2022-05-01")})
	require.Len(t, markers, 1)

	m := markers[0]
	assert.Equal(t, "7", m.RigID)
	assert.Equal(t, orb.Point{-104.8, 40.2}, m.Position)
	assert.Equal(t, "Rig 7 on Lease 7 (Chevron)\nActive 2022-03-01 to 2022-05-01", m.Tooltip)
}

func TestWellMarker_AnchorAndTooltip(t *testing.T) {
	t.Parallel()

	f := well("42", "Civitas", "2022-01-01", "2022-02-03")
	f.Properties.WellName = "Kodiak 4H"
	f.Properties.IntervalFootages.Set("Niobrara B", model.IntervalStat{Footage: 7250.4})
	f.Properties.IntervalFootages.Set("Codell", model.IntervalStat{Footage: 3000})

	m := newWellMarker(f, "#abcdef", true)
	assert.True(t, m.Located)
	assert.Equal(t, orb.Point{-104.9, 40.1}, m.Position)
	assert.Equal(t, "#abcdef", m.Color)
	assert.Equal(t, "Kodiak 4H (Civitas)\nSpud 2022-02-03\n10,250 ft", m.Tooltip)
}

func TestWellMarker_NoGeometry(t *testing.T) {
	t.Parallel()

	f := well("9", "Civitas", "", "")
	f.Geometry = model.Geometry{}

	m := newWellMarker(f, DefaultWellColor, false)
	assert.False(t, m.Located)
	assert.Equal(t, "Well 9 (Civitas)", m.Tooltip)
}

func TestViewport(t *testing.T) {
	t.Parallel()

	_, ok := Viewport(nil, nil)
	assert.False(t, ok)

	rigs := []RigMarker{{Position: orb.Point{-105, 40}}}
	wells := []WellMarker{
		{Position: orb.Point{-104, 41}, Located: true},
		{Position: orb.Point{0, 0}},
	}
	b, ok := Viewport(rigs, wells)
	require.True(t, ok)
	assert.Equal(t, orb.Point{-105, 40}, b.Min)
	assert.Equal(t, orb.Point{-104, 41}, b.Max)
}
