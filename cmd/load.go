package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/store"
)

// loadAll fetches the radius-dependent footage data and the timeline data
// concurrently. Failures are logged and returned joined; the store has
// already fallen back to empty views for whatever failed.
func loadAll(ctx context.Context, s *store.Store, radius float64) error {
	var (
		g                      errgroup.Group
		radiusErr, timelineErr error
	)
	g.Go(func() error {
		radiusErr = s.SetRadius(ctx, radius)
		return nil
	})
	g.Go(func() error {
		timelineErr = s.LoadTimeline(ctx)
		return nil
	})
	_ = g.Wait()

	err := errors.Join(radiusErr, timelineErr)
	if err != nil {
		zap.L().Warn("some basin data is unavailable", zap.Error(err))
	}
	return err
}

// applySelection applies the operator and date flags, in that order, since
// an operator change resets the date.
func applySelection(s *store.Store, operator, date string) error {
	if operator != "" {
		s.SetSelectedOperator(model.Operator(operator))
	}
	if date != "" {
		d, err := model.ParseDate(date)
		if err != nil {
			return err
		}
		s.SetCurrentDate(d)
	}
	return nil
}
