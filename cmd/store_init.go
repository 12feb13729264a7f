package main

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/energyinsights-ai/minai-demo/internal/config"
	"github.com/energyinsights-ai/minai-demo/internal/fetcher"
	"github.com/energyinsights-ai/minai-demo/internal/observability"
	"github.com/energyinsights-ai/minai-demo/internal/store"
	"github.com/energyinsights-ai/minai-demo/pkg/basinapi"
)

// initStore validates the configuration and builds a gateway client and a
// store around it. metrics may be nil.
func initStore(c *config.Config, mode string, metrics *observability.Metrics) (*store.Store, error) {
	if err := c.Validate(mode); err != nil {
		return nil, err
	}
	epoch, err := c.Basin.EpochDate()
	if err != nil {
		return nil, err
	}

	client := basinapi.NewClient(c.Gateway.BaseURL, basinapi.WithHTTPOptions(fetcher.HTTPOptions{
		UserAgent:  c.Gateway.UserAgent,
		Timeout:    time.Duration(c.Gateway.TimeoutSecs) * time.Second,
		MaxRetries: c.Gateway.MaxRetries,
		RateLimit:  rate.Limit(c.Gateway.RateLimit),
		Observer:   observerOf(metrics),
	}))

	return store.New(client,
		store.WithRadius(c.Basin.DefaultRadius),
		store.WithSelectedTRS(c.Basin.SelectedTRS),
		store.WithFootagePerWell(c.Basin.FootagePerWell),
		store.WithEpoch(epoch),
		store.WithDefaultColor(c.Basin.DefaultWellColor),
		store.WithMetrics(metrics),
	), nil
}

// observerOf avoids handing the fetcher a non-nil interface around a nil
// *Metrics.
func observerOf(m *observability.Metrics) fetcher.RequestObserver {
	if m == nil {
		return nil
	}
	return m
}
