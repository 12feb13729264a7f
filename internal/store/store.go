// Package store is the Basin Analytics Store: it caches the last payloads
// fetched from the gateway, holds the user's filter state, and keeps the
// footage and timeline views derived from both up to date. Subscribers are
// told whenever a view is recomputed.
package store

import (
	"math"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/orb/geojson"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/energyinsights-ai/minai-demo/internal/chart"
	"github.com/energyinsights-ai/minai-demo/internal/footage"
	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/observability"
	"github.com/energyinsights-ai/minai-demo/internal/timeline"
	"github.com/energyinsights-ai/minai-demo/pkg/basinapi"
)

// Cache slot names, as used in FetchError and metrics.
const (
	SlotTRS           = "trs"
	SlotRadiusWells   = "wells"
	SlotTownship      = "township"
	SlotRigs          = "rigs"
	SlotTimelineWells = "timeline_wells"
	SlotAllData       = "all_data"
)

// ErrSuperseded is returned by a fetch whose results were discarded because
// a newer request of the same kind started while it was in flight.
var ErrSuperseded = eris.New("store: superseded by a newer request")

// FetchError reports a gateway call that failed. Its cache slot has been
// cleared by the time the error is returned.
type FetchError struct {
	Slot string
	Err  error
}

func (e *FetchError) Error() string { return "store: fetch " + e.Slot + ": " + e.Err.Error() }

// Unwrap returns the underlying gateway error.
func (e *FetchError) Unwrap() error { return e.Err }

// Cache holds the last payload of every gateway call. Each slot is replaced
// wholesale by a fetch and reset to empty when the fetch fails. Payloads are
// never mutated after they are stored.
type Cache struct {
	TRS           *model.TRSCollection
	RadiusWells   *model.WellCollection
	Township      *geojson.FeatureCollection
	Rigs          []model.RigRecord
	TimelineWells *model.WellCollection
	AllData       []model.DataRecord
}

// FilterState is the user's current selection.
type FilterState struct {
	Radius           float64                 `json:"radius" yaml:"radius"`
	SelectedTRS      string                  `json:"selected_trs" yaml:"selected_trs"`
	SelectedOperator model.OperatorSelection `json:"selected_operator" yaml:"selected_operator"`
	CurrentDate      model.Date              `json:"current_date" yaml:"current_date"`
}

// FootageState is the footage side of the store: the three mappings derived
// from the TRS slot and the charts built from them.
type FootageState struct {
	Mappings footage.Result `json:"mappings" yaml:"mappings"`
	Charts   chart.Charts   `json:"charts" yaml:"charts"`
}

// Store is safe for concurrent use. Gateway calls run without holding the
// lock; results are committed and views recomputed under it.
type Store struct {
	client         basinapi.Client
	clock          clockwork.Clock
	metrics        *observability.Metrics
	bus            *eventBus
	footagePerWell float64
	epoch          model.Date
	defaultColor   string

	mu       sync.RWMutex
	cache    Cache
	filter   FilterState
	wantDate model.Date
	footage  FootageState
	timeline timeline.View

	radiusGen   uint64
	timelineGen uint64
}

// New returns a store with empty caches and default filters. Nothing is
// fetched until SetRadius or LoadTimeline is called.
func New(client basinapi.Client, opts ...Option) *Store {
	s := &Store{
		client:         client,
		clock:          clockwork.NewRealClock(),
		footagePerWell: chart.DefaultFootagePerWell,
		epoch:          timeline.DefaultEpoch,
		defaultColor:   timeline.DefaultWellColor,
		filter: FilterState{
			Radius:           DefaultRadius,
			SelectedTRS:      footage.DefaultSelectedTRS,
			SelectedOperator: model.Operator(model.AllOperators),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.bus = newEventBus(s.metrics.SetSubscribers)

	s.wantDate = model.DateOf(s.clock.Now())
	s.footage = FootageState{Charts: chart.Build(footage.Result{}, s.footagePerWell)}
	s.recomputeTimeline()
	return s
}

// Subscribe returns a channel that receives an Event after every
// recomputation, and a cancel function that closes it. Slow subscribers
// miss events rather than block the store.
func (s *Store) Subscribe() (<-chan Event, func()) {
	return s.bus.subscribe()
}

// Close ends every subscription. The store stays readable.
func (s *Store) Close() {
	s.bus.close()
}

// Filter returns the current filter state.
func (s *Store) Filter() FilterState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Raw returns the cached payloads. The payloads are shared and must not be
// modified.
func (s *Store) Raw() Cache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache
}

func validRadius(r float64) bool {
	return r > 0 && !math.IsInf(r, 0) && !math.IsNaN(r)
}

// fetched records the outcome of one gateway call and returns the error to
// report for it, or nil on success.
func (s *Store) fetched(slot string, err error) error {
	if err == nil {
		return nil
	}
	zap.L().Error("store: fetch failed, clearing slot",
		zap.String("slot", slot),
		zap.Error(err),
	)
	s.metrics.FetchFailed(slot)
	return &FetchError{Slot: slot, Err: err}
}
