package store

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/energyinsights-ai/minai-demo/internal/fetcher"
	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/timeline"
)

func rigIDs(v View) []string {
	var ids []string
	for _, r := range v.Timeline.VisibleRigs {
		ids = append(ids, r.RigID)
	}
	return ids
}

func TestLoadTimeline_AllOperators(t *testing.T) {
	h := newHarness(t)
	h.expectTimeline(t)

	require.NoError(t, h.store.LoadTimeline(context.Background()))
	v := h.store.Snapshot()

	assert.Equal(t, "2022-01-01", v.Timeline.Bounds.Min.String())
	assert.Equal(t, "2022-08-31", v.Timeline.Bounds.Max.String())
	// The clock's today is inside the bounds and survives the reload.
	assert.Equal(t, "2022-06-15", v.Filter.CurrentDate.String())
	assert.Equal(t, []string{"All", "Chevron", "Civitas"}, v.Timeline.Operators)
	assert.Equal(t, []string{"R1"}, rigIDs(v))
	assert.False(t, v.Timeline.WellsShown)
	assert.Len(t, v.Timeline.PlotData, 2)
	assert.NotNil(t, v.Township)
	assert.Len(t, v.Timeline.BBox, 4)
}

func TestSetSelectedOperator_ResetsDateToMin(t *testing.T) {
	h := newHarness(t)
	h.expectTimeline(t)
	require.NoError(t, h.store.LoadTimeline(context.Background()))

	events, cancel := h.store.Subscribe()
	defer cancel()

	h.store.SetSelectedOperator(model.Operator("Chevron"))
	v := h.store.Snapshot()
	assert.Equal(t, "Chevron", v.Filter.SelectedOperator.Operator)
	assert.Equal(t, "2022-03-01", v.Timeline.Bounds.Min.String())
	// 2022-06-15 was still in range, but an operator change always resets.
	assert.Equal(t, "2022-03-01", v.Filter.CurrentDate.String())
	assert.True(t, v.Timeline.WellsShown)
	require.Len(t, v.Timeline.VisibleWells, 1)
	assert.Equal(t, timeline.DefaultWellColor, v.Timeline.VisibleWells[0].Color)
	assert.Equal(t, EventOperator, (<-events).Kind)

	assert.Equal(t, "2022-06-20", h.store.SetCurrentDate(model.MustParseDate("2022-06-20")).String())
	v = h.store.Snapshot()
	assert.Equal(t, "#ff0000", v.Timeline.VisibleWells[0].Color)
	assert.Len(t, v.Timeline.PlotData, 1)
	assert.Equal(t, EventDate, (<-events).Kind)

	h.store.SetSelectedOperator(model.Operator("Chevron"))
	assert.Equal(t, "2022-03-01", h.store.Filter().CurrentDate.String())

	h.store.SetSelectedOperator(model.OperatorSelection{})
	v = h.store.Snapshot()
	assert.True(t, v.Filter.SelectedOperator.IsAll())
	assert.Equal(t, "2022-01-01", v.Filter.CurrentDate.String())
	assert.Nil(t, v.Timeline.VisibleWells)
}

func TestSetCurrentDate_Clamps(t *testing.T) {
	h := newHarness(t)
	h.expectTimeline(t)
	require.NoError(t, h.store.LoadTimeline(context.Background()))

	assert.Equal(t, "2022-08-31", h.store.SetCurrentDate(model.MustParseDate("2031-01-01")).String())
	assert.Equal(t, "2022-01-01", h.store.SetCurrentDate(model.MustParseDate("2019-01-01")).String())
	assert.Equal(t, "2022-01-01", h.store.SetCurrentDate(model.Date{}).String())

	v := h.store.Snapshot()
	assert.True(t, v.Timeline.Bounds.Contains(v.Filter.CurrentDate))
}

func TestSetCurrentDate_DailySweep(t *testing.T) {
	h := newHarness(t)
	h.expectTimeline(t)
	require.NoError(t, h.store.LoadTimeline(context.Background()))

	b := h.store.Snapshot().Timeline.Bounds
	runs := map[string]int{}
	prev := map[string]bool{}
	for d := b.Min.Time(); !d.After(b.Max.Time()); d = d.AddDate(0, 0, 1) {
		h.store.SetCurrentDate(model.DateOf(d))
		now := map[string]bool{}
		for _, id := range rigIDs(h.store.Snapshot()) {
			now[id] = true
			if !prev[id] {
				runs[id]++
			}
		}
		prev = now
	}
	assert.Equal(t, map[string]int{"R1": 1, "R2": 1}, runs)
}

func TestLoadTimeline_FailuresClearSlots(t *testing.T) {
	h := newHarness(t)
	h.expectTimeline(t)
	require.NoError(t, h.store.LoadTimeline(context.Background()))

	h.client.On("Rigs", anyCtx).Return(nil, &fetcher.NetworkError{URL: "rigs", StatusCode: 503}).Once()
	h.client.On("AllWells", anyCtx).Return(wellsFixture(t), nil).Once()
	h.client.On("GeoJSON", anyCtx).Return(nil, &fetcher.NetworkError{URL: "geojson", StatusCode: 404}).Once()
	h.client.On("AllData", anyCtx).Return(decode[[]model.DataRecord](t, allDataPayload), nil).Once()

	err := h.store.LoadTimeline(context.Background())
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)

	raw := h.store.Raw()
	assert.Nil(t, raw.Rigs)
	assert.Nil(t, raw.Township)
	assert.NotNil(t, raw.TimelineWells)
	assert.Len(t, raw.AllData, 3)

	v := h.store.Snapshot()
	assert.Empty(t, v.Timeline.VisibleRigs)
	assert.Nil(t, v.Township)
	assert.Equal(t, "2022-05-01", v.Timeline.Bounds.Max.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.FetchFailures.WithLabelValues(SlotRigs)))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.FetchFailures.WithLabelValues(SlotTownship)))
}

func TestSetSelectedOperator_BeforeLoad(t *testing.T) {
	h := newHarness(t)

	h.store.SetSelectedOperator(model.Operator("Chevron"))
	v := h.store.Snapshot()
	assert.Equal(t, timeline.DefaultEpoch, v.Filter.CurrentDate)
	assert.True(t, v.Timeline.WellsShown)
	assert.Empty(t, v.Timeline.VisibleWells)
}

func TestSnapshot_TimelineIsIsolated(t *testing.T) {
	h := newHarness(t)
	h.expectTimeline(t)
	require.NoError(t, h.store.LoadTimeline(context.Background()))

	v := h.store.Snapshot()
	require.NotEmpty(t, v.Timeline.PlotData)
	require.NotNil(t, v.Township)
	require.Len(t, v.Township.Features, 1)

	v.Timeline.PlotData[0].Fields["oil_bbl"] = "changed"
	v.Timeline.PlotData[0].Fields["extra"] = 1
	v.Township.Features[0].Properties["name"] = "changed"
	v.Township.Features[0] = nil

	again := h.store.Snapshot()
	assert.Equal(t, 100.0, again.Timeline.PlotData[0].Fields["oil_bbl"])
	assert.NotContains(t, again.Timeline.PlotData[0].Fields, "extra")
	require.NotNil(t, again.Township.Features[0])
	assert.NotContains(t, again.Township.Features[0].Properties, "name")

	raw := h.store.Raw()
	assert.Equal(t, 100.0, raw.AllData[0].Fields["oil_bbl"])
	require.NotNil(t, raw.Township.Features[0])
	assert.NotContains(t, raw.Township.Features[0].Properties, "name")
	assert.Equal(t, again, h.store.Snapshot())
}
