// Package basinapi is a client for the basin dashboard data gateway: the
// HTTP service that serves TRS footage statistics, wells, rigs and the
// tabular activity feed.
package basinapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"

	"github.com/energyinsights-ai/minai-demo/internal/fetcher"
	"github.com/energyinsights-ai/minai-demo/internal/model"
)

// Gateway endpoint paths.
const (
	PathTRS      = "/api/trs"
	PathWells    = "/api/wells"
	PathGeoJSON  = "/api/geojson"
	PathRigs     = "/api/get_rigs"
	PathAllWells = "/api/get_wells"
	PathAllData  = "/api/all_data"
)

// DefaultBaseURL is where the gateway listens in local development.
const DefaultBaseURL = "http://localhost:5000"

// Client reads basin data from the gateway. Every method reports a non-2xx
// response or a transport failure as a *fetcher.NetworkError.
type Client interface {
	// TRS returns the section footage statistics within radius miles of the
	// gateway's center section.
	TRS(ctx context.Context, radius float64) (*model.TRSCollection, error)

	// Wells returns the well laterals around the center section.
	Wells(ctx context.Context, radius float64) (*model.WellCollection, error)

	// GeoJSON returns the township-range grid layer.
	GeoJSON(ctx context.Context) (*geojson.FeatureCollection, error)

	// Rigs returns every rig active since the gateway's cutoff date.
	Rigs(ctx context.Context) ([]model.RigRecord, error)

	// AllWells returns the full well collection used by the timeline.
	AllWells(ctx context.Context) (*model.WellCollection, error)

	// AllData returns the tabular activity feed.
	AllData(ctx context.Context) ([]model.DataRecord, error)
}

// Option configures the client.
type Option func(*client)

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f fetcher.Fetcher) Option {
	return func(c *client) {
		c.fetcher = f
	}
}

// WithHTTPOptions builds the fetcher from opts.
func WithHTTPOptions(opts fetcher.HTTPOptions) Option {
	return func(c *client) {
		c.fetcher = fetcher.NewHTTPFetcher(opts)
	}
}

type client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

// NewClient creates a gateway Client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = fetcher.NewHTTPFetcher(fetcher.HTTPOptions{})
	}
	return c
}

func (c *client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func radiusQuery(radius float64) url.Values {
	return url.Values{"radius": {strconv.FormatFloat(radius, 'f', -1, 64)}}
}

func (c *client) TRS(ctx context.Context, radius float64) (*model.TRSCollection, error) {
	return fetcher.GetJSON[model.TRSCollection](ctx, c.fetcher, c.url(PathTRS, radiusQuery(radius)))
}

func (c *client) Wells(ctx context.Context, radius float64) (*model.WellCollection, error) {
	return fetcher.GetJSON[model.WellCollection](ctx, c.fetcher, c.url(PathWells, radiusQuery(radius)))
}

func (c *client) GeoJSON(ctx context.Context) (*geojson.FeatureCollection, error) {
	return fetcher.GetJSON[geojson.FeatureCollection](ctx, c.fetcher, c.url(PathGeoJSON, nil))
}

func (c *client) Rigs(ctx context.Context) ([]model.RigRecord, error) {
	return fetcher.GetJSONArray[model.RigRecord](ctx, c.fetcher, c.url(PathRigs, nil))
}

func (c *client) AllWells(ctx context.Context) (*model.WellCollection, error) {
	return fetcher.GetJSON[model.WellCollection](ctx, c.fetcher, c.url(PathAllWells, nil))
}

func (c *client) AllData(ctx context.Context) ([]model.DataRecord, error) {
	return fetcher.GetJSONArray[model.DataRecord](ctx, c.fetcher, c.url(PathAllData, nil))
}
