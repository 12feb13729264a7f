package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/require"

	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/observability"
	"github.com/energyinsights-ai/minai-demo/pkg/basinapi/mocks"
)

const trsPayload = `{"type":"FeatureCollection","features":[
 {"type":"Feature","geometry":null,"properties":{
   "trs":"13-04N-65W",
   "interval_footages":{"CODELL":{"footage":4000,"well_count":1}},
   "avg_interval_footages":{"NIOBRARA C":{"footage":10000},"CODELL":{"footage":2500},"NIOBRARA A":{"footage":1000}}
 }},
 {"type":"Feature","geometry":null,"properties":{
   "trs":"14-04N-65W",
   "interval_footages":{"NIOBRARA A":{"footage":5100,"well_count":1},"NIOBRARA C":{"footage":9800,"well_count":2}},
   "avg_interval_footages":{"NIOBRARA C":{"footage":10000},"CODELL":{"footage":2500},"NIOBRARA A":{"footage":1000}}
 }}
]}`

const wellsPayload = `{"type":"FeatureCollection","features":[
 {"type":"Feature","geometry":{"type":"LineString","coordinates":[[-104.81,40.21],[-104.79,40.21]]},
  "properties":{"well_id":"W1","well_name":"Kodiak 1H","operator":"Chevron","permit_approved_date":"2022-04-01","spud_date":"2022-05-01",
   "trs":"14-04N-65W","interval_footages":{"NIOBRARA C":{"footage":9800,"well_count":1}},
   "data":[{"timestamp":"2022-06-01","color":"#ff0000"}]}},
 {"type":"Feature","geometry":{"type":"LineString","coordinates":[[-104.71,40.31],[-104.69,40.31]]},
  "properties":{"well_id":"W2","well_name":"Bison 2H","operator":"Civitas","permit_approved_date":"2021-11-01","spud_date":"2022-01-10",
   "trs":"13-04N-65W","data":[]}}
]}`

const rigsPayload = `[
 {"rig_id":"R1","lease_name":"Kodiak","first_date":"2022-03-01","last_date":"2022-08-31","lat_mean":40.2,"lon_mean":-104.8,"api_lst":"05-123-45678","operator":"Chevron"},
 {"rig_id":"R2","lease_name":"Bison","first_date":"Tue, 01 Feb 2022 00:00:00 GMT","last_date":"2022-04-15","lat_mean":40.3,"lon_mean":-104.7,"api_lst":"","operator":"Civitas"}
]`

const allDataPayload = `[
 {"timestamp":"2022-02-01","operator":"Civitas","oil_bbl":100},
 {"timestamp":"2022-06-01","operator":"Chevron","oil_bbl":50},
 {"timestamp":"2022-09-01","operator":"Chevron","oil_bbl":20}
]`

func decode[T any](t *testing.T, payload string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(payload), &v))
	return v
}

func trsFixture(t *testing.T) *model.TRSCollection {
	fc := decode[model.TRSCollection](t, trsPayload)
	return &fc
}

func wellsFixture(t *testing.T) *model.WellCollection {
	fc := decode[model.WellCollection](t, wellsPayload)
	return &fc
}

func townshipFixture() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{-104.8, 40.2}))
	return fc
}

type harness struct {
	client  *mocks.MockClient
	clock   *clockwork.FakeClock
	metrics *observability.Metrics
	store   *Store
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	h := &harness{
		client:  mocks.NewMockClient(t),
		clock:   clockwork.NewFakeClockAt(time.Date(2022, time.June, 15, 9, 30, 0, 0, time.UTC)),
		metrics: observability.NewMetricsForTesting(),
	}
	opts = append([]Option{WithClock(h.clock), WithMetrics(h.metrics)}, opts...)
	h.store = New(h.client, opts...)
	t.Cleanup(h.store.Close)
	return h
}

func (h *harness) expectTimeline(t *testing.T) {
	h.client.On("Rigs", anyCtx).Return(decode[[]model.RigRecord](t, rigsPayload), nil).Once()
	h.client.On("AllWells", anyCtx).Return(wellsFixture(t), nil).Once()
	h.client.On("GeoJSON", anyCtx).Return(townshipFixture(), nil).Once()
	h.client.On("AllData", anyCtx).Return(decode[[]model.DataRecord](t, allDataPayload), nil).Once()
}
