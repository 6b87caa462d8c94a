// api/http_client.go
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"openmat-server/config"
)

// HTTPClient struct to hold the HTTP client configuration
type HTTPClient struct {
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with the given request timeout.
// A zero timeout uses the default schedule request timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = config.SCHEDULE_REQUEST_TIMEOUT
	}
	return &HTTPClient{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// GetRaw issues a single GET to url and returns the body as text.
// It never retries. A 429 yields a *RateLimitedError; transport failures and
// any other non-2xx status yield a *NetworkError.
func (c *HTTPClient) GetRaw(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests {
		return "", &RateLimitedError{URL: url, RetryAfter: res.Header.Get("Retry-After")}
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &NetworkError{
			URL:        url,
			StatusCode: res.StatusCode,
			Err:        fmt.Errorf("unexpected status code: %s", res.Status),
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", &NetworkError{URL: url, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return string(body), nil
}
