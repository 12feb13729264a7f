package fetcher

import (
	"context"
	"io"
	"math"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries a per-request correlation id to the gateway.
const RequestIDHeader = "X-Request-ID"

// HTTPOptions configures the HTTP fetcher.
type HTTPOptions struct {
	UserAgent string
	// Timeout bounds each attempt. Zero means no client-side timeout; the
	// caller's context still applies.
	Timeout time.Duration
	// MaxRetries is the number of extra attempts after a transient failure.
	// Zero means every request is tried exactly once.
	MaxRetries int
	// RateLimit is the steady-state requests per second allowed per host.
	RateLimit rate.Limit
	Observer  RequestObserver
}

// AdaptiveLimiter wraps a rate.Limiter with adaptive rate adjustment.
// On success it increases the rate by 20% (up to 2x initial).
// On 429 it halves the rate (down to initial/4 minimum).
type AdaptiveLimiter struct {
	mu          sync.Mutex
	limiter     *rate.Limiter
	initialRate rate.Limit
	maxRate     rate.Limit
	minRate     rate.Limit
	currentRate rate.Limit
}

// NewAdaptiveLimiter creates an adaptive rate limiter that auto-tunes.
func NewAdaptiveLimiter(initialRate rate.Limit, burst int) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		limiter:     rate.NewLimiter(initialRate, burst),
		initialRate: initialRate,
		maxRate:     initialRate * 2,
		minRate:     initialRate / 4,
		currentRate: initialRate,
	}
}

// Wait blocks until the limiter allows an event.
func (a *AdaptiveLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

// OnSuccess increases the rate by 20%, up to 2x initial.
func (a *AdaptiveLimiter) OnSuccess() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentRate = min(a.currentRate*1.2, a.maxRate)
	a.limiter.SetLimit(a.currentRate)
}

// OnRateLimit halves the rate on 429 responses.
func (a *AdaptiveLimiter) OnRateLimit() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentRate = max(a.currentRate*0.5, a.minRate)
	a.limiter.SetLimit(a.currentRate)
	zap.L().Warn("adaptive rate limit: reducing rate after 429",
		zap.Float64("new_rate", float64(a.currentRate)),
	)
}

// Limit returns the current rate limit.
func (a *AdaptiveLimiter) Limit() rate.Limit {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentRate
}

// HTTPFetcher implements Fetcher using net/http with per-host rate limiting
// and optional retries.
type HTTPFetcher struct {
	client *http.Client
	opts   HTTPOptions

	mu       sync.Mutex
	limiters map[string]*AdaptiveLimiter
}

// NewHTTPFetcher creates a new HTTPFetcher with the given options.
func NewHTTPFetcher(opts HTTPOptions) *HTTPFetcher {
	if opts.UserAgent == "" {
		opts.UserAgent = "minai/1.0"
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 20
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = 0
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPFetcher{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		},
		opts:     opts,
		limiters: make(map[string]*AdaptiveLimiter),
	}
}

// limiterFor returns the adaptive limiter for the URL's host, creating one on
// first use.
func (f *HTTPFetcher) limiterFor(rawURL string) *AdaptiveLimiter {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	lim, ok := f.limiters[host]
	if !ok {
		lim = NewAdaptiveLimiter(f.opts.RateLimit, max(int(f.opts.RateLimit), 1))
		f.limiters[host] = lim
	}
	return lim
}

func (f *HTTPFetcher) observe(req *http.Request, status int, start time.Time) {
	if f.opts.Observer == nil {
		return
	}
	f.opts.Observer.ObserveRequest(req.URL.Path, status, time.Since(start).Seconds())
}

func (f *HTTPFetcher) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	lim := f.limiterFor(req.URL.String())
	requestID := req.Header.Get(RequestIDHeader)

	var lastErr *NetworkError
	for attempt := range f.opts.MaxRetries + 1 {
		if attempt > 0 {
			f.backoff(ctx, attempt-1)
		}
		if err := lim.Wait(ctx); err != nil {
			return nil, &NetworkError{URL: req.URL.String(), Err: err}
		}

		start := time.Now()
		resp, err := f.client.Do(req.Clone(ctx))
		if err != nil {
			f.observe(req, 0, start)
			lastErr = &NetworkError{URL: req.URL.String(), Err: err}
			if ctx.Err() != nil {
				return nil, lastErr
			}
			zap.L().Warn("http request failed",
				zap.String("url", req.URL.String()),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			continue
		}
		f.observe(req, resp.StatusCode, start)

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			lim.OnSuccess()
			return resp, nil
		}

		_ = resp.Body.Close()
		lastErr = &NetworkError{URL: req.URL.String(), StatusCode: resp.StatusCode}
		if resp.StatusCode == http.StatusTooManyRequests {
			lim.OnRateLimit()
		}
		if !lastErr.Transient() {
			return nil, lastErr
		}
		zap.L().Warn("http request returned retryable status",
			zap.String("url", req.URL.String()),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, lastErr
}

func (f *HTTPFetcher) backoff(ctx context.Context, attempt int) {
	base := 250 * time.Millisecond
	maxBackoff := 10 * time.Second
	d := min(time.Duration(float64(base)*math.Pow(2, float64(attempt))), maxBackoff)
	jitter := time.Duration(rand.Int64N(int64(d)/2 + 1))
	d += jitter

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Download fetches the URL and returns the response body. The caller must
// close it.
func (f *HTTPFetcher) Download(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := f.doWithRetry(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
