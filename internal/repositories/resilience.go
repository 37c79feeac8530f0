package repositories

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-insights/pkg/observe"
)

// HTTPClient is satisfied by *http.Client and by ResilientClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// BackoffConfig controls exponential backoff between attempts.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// ResilienceConfig configures one provider's outbound policy. RPS <= 0 disables rate limiting.
type ResilienceConfig struct {
	Name    string
	RPS     float64
	Burst   int
	Backoff BackoffConfig
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errCircuitOpen = errors.New("circuit breaker open")
)

// ResilientClient wraps an HTTPClient with a token bucket, a circuit breaker
// and retries. 429 and 5xx responses count as failures; other statuses are
// returned to the caller untouched.
type ResilientClient struct {
	name    string
	client  HTTPClient
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	backoff BackoffConfig
	metrics *observe.Metrics
}

func NewResilientClient(client HTTPClient, cfg ResilienceConfig, metrics *observe.Metrics) *ResilientClient {
	var limiter *rate.Limiter
	if cfg.RPS > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), burst)
	}

	backoff := cfg.Backoff
	if backoff.InitialInterval <= 0 {
		backoff.InitialInterval = 500 * time.Millisecond
	}
	if backoff.MaxInterval <= 0 {
		backoff.MaxInterval = 5 * time.Second
	}
	if backoff.MaxRetries < 0 {
		backoff.MaxRetries = 0
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 5,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &ResilientClient{
		name:    cfg.Name,
		client:  client,
		limiter: limiter,
		breaker: breaker,
		backoff: backoff,
		metrics: metrics,
	}
}

func (c *ResilientClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; ; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait canceled: %w", err)
			}
		}

		attemptReq, err := rewind(req, attempt)
		if err != nil {
			return nil, err
		}

		resp, err := c.execute(attemptReq)
		if err == nil {
			return resp, nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.observe("rejected", 0)
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt >= c.backoff.MaxRetries {
			return nil, err
		}

		delay := c.backoff.InitialInterval << attempt
		if delay > c.backoff.MaxInterval || delay <= 0 {
			delay = c.backoff.MaxInterval
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

func (c *ResilientClient) execute(req *http.Request) (*http.Response, error) {
	start := time.Now()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusTooManyRequests:
			drain(resp)
			return nil, errRateLimited
		case resp.StatusCode >= 500:
			drain(resp)
			return nil, fmt.Errorf("%w: %d", errServerError, resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		if !errors.Is(err, gobreaker.ErrOpenState) && !errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.observe("error", time.Since(start))
		}
		return nil, err
	}

	c.observe("success", time.Since(start))

	return result.(*http.Response), nil
}

func (c *ResilientClient) observe(outcome string, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.ProviderRequests.WithLabelValues(c.name, outcome).Inc()
	if elapsed > 0 {
		c.metrics.ProviderDuration.WithLabelValues(c.name).Observe(elapsed.Seconds())
	}
}

// rewind returns a request whose body can be sent again on a retry.
func rewind(req *http.Request, attempt int) (*http.Request, error) {
	if attempt == 0 || req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request body cannot be replayed")
	}

	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("failed to replay request body: %w", err)
	}

	clone := req.Clone(req.Context())
	clone.Body = body

	return clone, nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
