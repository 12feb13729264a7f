package store

import (
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/energyinsights-ai/minai-demo/internal/model"
	"github.com/energyinsights-ai/minai-demo/internal/observability"
)

// DefaultRadius is the initial search radius in miles.
const DefaultRadius = 5.0

// Option configures a Store.
type Option func(*Store)

// WithSelectedTRS sets the section the selected-TRS and section views read.
func WithSelectedTRS(trs string) Option {
	return func(s *Store) {
		if trs = strings.TrimSpace(trs); trs != "" {
			s.filter.SelectedTRS = trs
		}
	}
}

// WithFootagePerWell sets the lateral feet per well used by the deficit chart.
func WithFootagePerWell(ft float64) Option {
	return func(s *Store) {
		if ft > 0 {
			s.footagePerWell = ft
		}
	}
}

// WithEpoch sets the earliest date the timeline reaches back to.
func WithEpoch(d model.Date) Option {
	return func(s *Store) {
		if !d.IsZero() {
			s.epoch = d
		}
	}
}

// WithDefaultColor sets the marker color for wells idle in the current month.
func WithDefaultColor(color string) Option {
	return func(s *Store) {
		if color != "" {
			s.defaultColor = color
		}
	}
}

// WithRadius sets the initial search radius.
func WithRadius(r float64) Option {
	return func(s *Store) {
		if r > 0 {
			s.filter.Radius = r
		}
	}
}

// WithClock replaces the clock the initial current date is read from.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// WithMetrics records fetch failures, recomputations and subscriptions.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}
