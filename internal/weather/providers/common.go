package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// retryPolicy controls exponential backoff between attempts.
type retryPolicy struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

var defaultRetry = retryPolicy{
	maxRetries:      3,
	initialInterval: 500 * time.Millisecond,
	maxInterval:     5 * time.Second,
}

var (
	errRateLimited = errors.New("rate limited by upstream")
	errServerError = errors.New("upstream server error")
	errBadStatus   = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

// newBreaker builds the circuit breaker every provider wraps its upstream with.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// fetchJSON executes a GET through the circuit breaker with retries and
// exponential backoff, returning the response for the caller to decode.
// 429 and 5xx responses count as breaker failures and are retried.
func fetchJSON(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, policy retryPolicy, url string) (*http.Response, error) {
	var lastErr error

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		result, err := cb.Execute(func() (interface{}, error) {
			resp, doErr := client.Do(req)
			if doErr != nil {
				return nil, doErr
			}
			switch {
			case resp.StatusCode == http.StatusTooManyRequests:
				resp.Body.Close()
				return nil, errRateLimited
			case resp.StatusCode >= 500:
				resp.Body.Close()
				return nil, errServerError
			case resp.StatusCode < 200 || resp.StatusCode >= 300:
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
			}
			return resp, nil
		})
		if err == nil {
			return result.(*http.Response), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		// Client errors other than 429 will not heal on retry.
		if errors.Is(err, errBadStatus) {
			return nil, err
		}

		lastErr = err
		if attempt >= policy.maxRetries {
			return nil, lastErr
		}

		delay := policy.initialInterval << uint(attempt)
		if policy.maxInterval > 0 && delay > policy.maxInterval {
			delay = policy.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}
