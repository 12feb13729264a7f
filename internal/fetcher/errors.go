package fetcher

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError reports a request that did not produce a 2xx response, either
// because the server answered with another status or because the transport
// failed before a status was received (StatusCode 0).
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("network: %s returned HTTP %d", e.URL, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("network: %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("network: %s failed", e.URL)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Transient reports whether retrying the request could succeed: transport
// failures, 429 and 5xx responses.
func (e *NetworkError) Transient() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= 500
}

// IsNetworkError returns true if err (or any error in its chain) is a
// *NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// StatusCode extracts the HTTP status from a *NetworkError in err's chain, or
// 0 when there is none.
func StatusCode(err error) int {
	var ne *NetworkError
	if errors.As(err, &ne) {
		return ne.StatusCode
	}
	return 0
}
