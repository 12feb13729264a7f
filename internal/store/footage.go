package store

import (
	"context"
	"errors"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/energyinsights-ai/minai-demo/internal/chart"
	"github.com/energyinsights-ai/minai-demo/internal/footage"
	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// SetRadius fetches TRS statistics and wells for radius r concurrently and
// commits both only after both calls have returned, so the footage views
// never mix two radii. A failed call clears its own slot. If another
// SetRadius started meanwhile, the results are dropped and ErrSuperseded is
// returned.
func (s *Store) SetRadius(ctx context.Context, r float64) error {
	if !validRadius(r) {
		return eris.Errorf("store: invalid radius %v", r)
	}

	s.mu.Lock()
	s.radiusGen++
	gen := s.radiusGen
	s.mu.Unlock()

	var (
		trs              *model.TRSCollection
		wells            *model.WellCollection
		trsErr, wellsErr error
	)
	// Errors stay per slot; a failed call must not cancel its siblings.
	var g errgroup.Group
	g.Go(func() error {
		trs, trsErr = s.client.TRS(ctx, r)
		return nil
	})
	g.Go(func() error {
		wells, wellsErr = s.client.Wells(ctx, r)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	if gen != s.radiusGen {
		s.mu.Unlock()
		zap.L().Debug("store: dropping superseded radius results", zap.Float64("radius", r))
		return ErrSuperseded
	}
	errs := []error{
		s.fetched(SlotTRS, trsErr),
		s.fetched(SlotRadiusWells, wellsErr),
	}
	if trsErr != nil {
		trs = nil
	}
	if wellsErr != nil {
		wells = nil
	}
	s.filter.Radius = r
	s.cache.TRS = trs
	s.cache.RadiusWells = wells
	s.recomputeFootage()
	s.mu.Unlock()

	s.bus.publish(EventRadius)
	return errors.Join(errs...)
}

// SetSelectedTRS points the selected-TRS and section views at another
// section. The cached TRS collection is reused; nothing is fetched.
func (s *Store) SetSelectedTRS(trs string) error {
	trs = strings.TrimSpace(trs)
	if trs == "" {
		return eris.New("store: empty TRS identifier")
	}

	s.mu.Lock()
	s.filter.SelectedTRS = trs
	s.recomputeFootage()
	s.mu.Unlock()

	s.bus.publish(EventTRS)
	return nil
}

// recomputeFootage rebuilds the footage state from the TRS slot. Callers
// hold s.mu.
func (s *Store) recomputeFootage() {
	start := s.clock.Now()

	res, err := footage.Compute(s.cache.TRS, s.filter.SelectedTRS)
	if footage.IsEmptyData(err) {
		s.metrics.SoftFailure("empty_data")
	}
	if footage.IsLookupMiss(err) {
		s.metrics.SoftFailure("lookup_miss")
	}

	s.footage = FootageState{
		Mappings: res,
		Charts:   chart.Build(res, s.footagePerWell),
	}
	s.metrics.Recomputed("footage", s.clock.Since(start))
}
