package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of probing one URL.
type Result struct {
	// URL is the absolute URL that was requested.
	URL string `json:"url"`

	// StatusCode is the response status, 0 when no response was received.
	StatusCode int `json:"status_code,omitempty"`

	// Alive is true only for a 200 response.
	Alive bool `json:"alive"`

	// Err describes a transport failure, if any.
	Err string `json:"error,omitempty"`
}

// Reason returns a short explanation of why the URL is not alive.
func (r Result) Reason() string {
	switch {
	case r.Alive:
		return ""
	case r.Err != "":
		return r.Err
	default:
		return fmt.Sprintf("status %d", r.StatusCode)
	}
}

// Prober issues HEAD requests.
type Prober struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	headers     map[string]string
	proxyAddr   string
	concurrency int
	logger      *slog.Logger
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout bounds each HEAD request.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithHeaders adds extra request headers.
func WithHeaders(h map[string]string) Option {
	return func(p *Prober) {
		p.headers = h
	}
}

// WithProxy routes requests through a SOCKS5 proxy.
func WithProxy(addr string) Option {
	return func(p *Prober) {
		p.proxyAddr = addr
	}
}

// WithConcurrency sets the maximum number of requests in flight in CheckAll.
func WithConcurrency(n int) Option {
	return func(p *Prober) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prober) {
		p.logger = l
	}
}

// WithHTTPClient replaces the HTTP client, for example one trusting a
// private CA. The proxy and timeout options are ignored when a client is
// given.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Prober) {
		p.client = c
	}
}

// New creates a Prober. It fails only on an invalid proxy address.
func New(opts ...Option) (*Prober, error) {
	p := &Prober{
		timeout:     10 * time.Second,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}

	if p.client == nil {
		transport, err := newTransport(p.proxyAddr)
		if err != nil {
			return nil, err
		}
		p.client = &http.Client{
			Transport: transport,
			Timeout:   p.timeout,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return p, nil
}

// Check sends one HEAD request to target. It never returns an error:
// failures produce a Result with Alive false.
func (p *Prober) Check(ctx context.Context, target string) Result {
	result := Result{URL: target}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		result.Err = fmt.Sprintf("invalid request: %v", err)
		return result
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	for k, v := range p.headers {
		req.Header.Set(k, v)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		result.Err = shortError(err)
		p.logger.Debug("probe failed", "url", target, "error", err)
		return result
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	result.Alive = resp.StatusCode == http.StatusOK
	p.logger.Debug("probe completed", "url", target, "status", resp.StatusCode)
	return result
}

// CheckAll probes every target and returns the results in input order.
// When ctx is cancelled, unprobed targets are reported as not alive.
func (p *Prober) CheckAll(ctx context.Context, targets []string) []Result {
	results := make([]Result, len(targets))

	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for i, target := range targets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{URL: target, Err: err.Error()}
				return nil
			}
			results[i] = p.Check(ctx, target)
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // goroutines never return an error

	return results
}

// Target returns the absolute URL to probe for a page. Absolute raw URLs
// are used as is; relative ones are resolved against baseURL.
func Target(raw, baseURL string) (string, error) {
	raw = strings.TrimSpace(raw)
	ref, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if ref.IsAbs() {
		return raw, nil
	}
	if baseURL == "" {
		return "", ErrNoBaseURL
	}
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return "", fmt.Errorf("invalid base URL %q", baseURL)
	}
	return base.ResolveReference(ref).String(), nil
}

// shortError strips the "Head \"url\": " prefix net/http adds to errors.
func shortError(err error) string {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		if uerr.Timeout() {
			return "timeout"
		}
		return uerr.Err.Error()
	}
	return err.Error()
}
