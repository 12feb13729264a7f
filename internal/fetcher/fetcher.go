package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for reading remote data.
type Fetcher interface {
	// Download issues a GET for url and returns the response body. Any
	// non-2xx status or transport failure is reported as a *NetworkError.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}

// RequestObserver receives one call per completed HTTP attempt.
type RequestObserver interface {
	ObserveRequest(path string, status int, seconds float64)
}
