// Package upstream is the outbound HTTP client shared by built-in plugins. Requests go through an
// SSRF-safe client, a rate limiter, a circuit breaker per upstream host and a retry on transient failures.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/doyensec/safeurl"
	"github.com/go-pkgz/repeater/v2"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/umputun/manifold/pkg/metrics"
)

// Config defines client parameters, zero values get defaults
type Config struct {
	Timeout      time.Duration // per request
	Retries      int           // attempts on transient failures
	RateLimit    float64       // requests per second, all hosts together
	Burst        int
	MaxBodySize  int64
	UserAgent    string
	AllowPrivate bool // allow private, loopback and link-local targets
}

// StatusError is a non-2xx upstream response
type StatusError struct {
	URL  string
	Code int
}

// Error implements error
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// transient reports whether a retry may succeed
func (e *StatusError) transient() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests
}

var errPermanent = errors.New("permanent upstream failure")

type permanentError struct{ err error }

func (e *permanentError) Error() string        { return e.err.Error() }
func (e *permanentError) Unwrap() error        { return e.err }
func (e *permanentError) Is(target error) bool { return target == errPermanent }

// Client makes GET requests to upstream services
type Client struct {
	cfg         Config
	http        *http.Client
	limiter     *rate.Limiter
	metrics     *metrics.Collector
	serviceType string

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

// Option customizes a client
type Option func(c *Client)

// WithHTTPClient replaces the default SSRF-safe client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithMetrics records calls and breaker state, labeled with the service type
func WithMetrics(m *metrics.Collector, serviceType string) Option {
	return func(c *Client) { c.metrics, c.serviceType = m, serviceType }
}

// New makes a client
func New(cfg Config, opts ...Option) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retries <= 0 {
		cfg.Retries = 3
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = 32 * 1024 * 1024
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "manifold/1.0"
	}

	res := &Client{
		cfg:      cfg,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst),
		breakers: map[string]*gobreaker.CircuitBreaker[[]byte]{},
	}
	for _, opt := range opts {
		opt(res)
	}
	if res.http == nil {
		res.http = newHTTPClient(cfg)
	}
	return res
}

func newHTTPClient(cfg Config) *http.Client {
	if cfg.AllowPrivate {
		return &http.Client{Timeout: cfg.Timeout}
	}
	sc := safeurl.GetConfigBuilder().
		SetTimeout(cfg.Timeout).
		SetAllowedSchemes("http", "https").
		SetAllowedPorts(80, 443, 8080, 8443).
		Build()
	return safeurl.Client(sc).Client
}

// Get fetches rawURL and returns the response body. Transport errors, 5xx and 429 responses are
// retried; other statuses fail with *StatusError right away. call labels the request in metrics.
func (c *Client) Get(ctx context.Context, call, rawURL string, header http.Header) (body []byte, err error) {
	started := time.Now()
	defer func() { c.metrics.Upstream(c.serviceType, call, started, err) }()

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	cb := c.breaker(u.Host)

	retrier := repeater.NewBackoff(c.cfg.Retries, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err = retrier.Do(ctx, func() error {
		if werr := c.limiter.Wait(ctx); werr != nil {
			return &permanentError{fmt.Errorf("rate limit: %w", werr)}
		}
		b, rerr := cb.Execute(func() ([]byte, error) { return c.do(ctx, rawURL, header) })
		if rerr == nil {
			body = b
			return nil
		}
		var se *StatusError
		switch {
		case errors.Is(rerr, gobreaker.ErrOpenState), errors.Is(rerr, gobreaker.ErrTooManyRequests):
			return &permanentError{fmt.Errorf("%s: %w", u.Host, rerr)}
		case errors.As(rerr, &se) && !se.transient():
			return &permanentError{rerr}
		case ctx.Err() != nil:
			return &permanentError{rerr}
		}
		return rerr
	}, errPermanent)
	if err != nil {
		var pe *permanentError
		if errors.As(err, &pe) {
			return nil, pe.err
		}
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, rawURL string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &StatusError{URL: rawURL, Code: resp.StatusCode}
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read response of %s: %w", rawURL, err)
	}
	if int64(len(data)) > c.cfg.MaxBodySize {
		return nil, fmt.Errorf("response of %s exceeds %d bytes", rawURL, c.cfg.MaxBodySize)
	}
	return data, nil
}

// breaker returns the circuit breaker of a host, made on first use
func (c *Client) breaker(host string) *gobreaker.CircuitBreaker[[]byte] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if cb, ok := c.breakers[host]; ok {
		return cb
	}
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        host,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			var se *StatusError
			return err == nil || (errors.As(err, &se) && !se.transient())
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[WARN] upstream %s circuit breaker %s -> %s", name, from, to)
			c.metrics.BreakerOpen(name, to == gobreaker.StateOpen)
		},
	})
	c.breakers[host] = cb
	return cb
}
