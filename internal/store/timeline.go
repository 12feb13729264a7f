package store

import (
	"context"
	"errors"

	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/timeline"
)

// LoadTimeline fetches rigs, the full well list, the township layer and the
// activity feed concurrently, then rebuilds the timeline view. The current
// date is re-clamped into the new bounds. Failed calls clear their slots.
func (s *Store) LoadTimeline(ctx context.Context) error {
	s.mu.Lock()
	s.timelineGen++
	gen := s.timelineGen
	s.mu.Unlock()

	var (
		rigs     []model.RigRecord
		wells    *model.WellCollection
		township *geojson.FeatureCollection
		records  []model.DataRecord

		rigsErr, wellsErr, townshipErr, recordsErr error
	)
	// Errors stay per slot; a failed call must not cancel its siblings.
	var g errgroup.Group
	g.Go(func() error {
		rigs, rigsErr = s.client.Rigs(ctx)
		return nil
	})
	g.Go(func() error {
		wells, wellsErr = s.client.AllWells(ctx)
		return nil
	})
	g.Go(func() error {
		township, townshipErr = s.client.GeoJSON(ctx)
		return nil
	})
	g.Go(func() error {
		records, recordsErr = s.client.AllData(ctx)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	if gen != s.timelineGen {
		s.mu.Unlock()
		zap.L().Debug("store: dropping superseded timeline results")
		return ErrSuperseded
	}
	errs := []error{
		s.fetched(SlotRigs, rigsErr),
		s.fetched(SlotTimelineWells, wellsErr),
		s.fetched(SlotTownship, townshipErr),
		s.fetched(SlotAllData, recordsErr),
	}
	if rigsErr != nil {
		rigs = nil
	}
	if wellsErr != nil {
		wells = nil
	}
	if townshipErr != nil {
		township = nil
	}
	if recordsErr != nil {
		records = nil
	}
	s.cache.Rigs = rigs
	s.cache.TimelineWells = wells
	s.cache.Township = township
	s.cache.AllData = records
	s.recomputeTimeline()
	s.mu.Unlock()

	s.bus.publish(EventTimeline)
	return errors.Join(errs...)
}

// SetSelectedOperator filters the timeline to one operator, or to all of
// them. The current date always moves to the earliest date of the new
// filter, even when the old date would still be in range.
func (s *Store) SetSelectedOperator(sel model.OperatorSelection) {
	sel = model.Operator(sel.Operator)

	s.mu.Lock()
	s.filter.SelectedOperator = sel
	s.wantDate = timeline.FilteredBounds(s.timelineInput()).Min
	s.recomputeTimeline()
	s.mu.Unlock()

	s.bus.publish(EventOperator)
}

// SetCurrentDate moves the timeline cursor. Dates outside the filtered
// bounds are clamped; the date actually applied is returned.
func (s *Store) SetCurrentDate(d model.Date) model.Date {
	s.mu.Lock()
	s.wantDate = d
	s.recomputeTimeline()
	applied := s.filter.CurrentDate
	s.mu.Unlock()

	s.bus.publish(EventDate)
	return applied
}

func (s *Store) timelineInput() timeline.Input {
	return timeline.Input{
		Rigs:         s.cache.Rigs,
		Wells:        s.cache.TimelineWells,
		Records:      s.cache.AllData,
		Selection:    s.filter.SelectedOperator,
		Date:         s.wantDate,
		Epoch:        s.epoch,
		DefaultColor: s.defaultColor,
	}
}

// recomputeTimeline rebuilds the timeline view and stores the clamped date
// back into the filter state. Callers hold s.mu.
func (s *Store) recomputeTimeline() {
	start := s.clock.Now()
	s.timeline = timeline.Derive(s.timelineInput())
	s.filter.CurrentDate = s.timeline.CurrentDate
	s.metrics.Recomputed("timeline", s.clock.Since(start))
}
