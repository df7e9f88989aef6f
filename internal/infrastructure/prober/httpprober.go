// Package prober implements availability checks against monitored sites.
package prober

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/orris-inc/toolbox/internal/domain/monitor"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "ToolboxUptimeMonitor/1.0"
	maxRedirects     = 10
)

type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// HTTPProber issues a single HEAD request per check. It follows redirects and
// never retries.
type HTTPProber struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

func NewHTTPProber(cfg Config) *HTTPProber {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true

	return &HTTPProber{
		client: &http.Client{
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		timeout:   cfg.Timeout,
		userAgent: cfg.UserAgent,
	}
}

// Probe reports the site as up iff the final status is in [200,400). Latency
// covers the whole attempt, failures included.
func (p *HTTPProber) Probe(ctx context.Context, target string) monitor.Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	outcome := p.do(ctx, target)
	outcome.LatencyMs = time.Since(start).Milliseconds()
	return outcome
}

func (p *HTTPProber) do(ctx context.Context, target string) monitor.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return down(nil, describe(err))
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return down(nil, fmt.Sprintf("Timeout (%s)", p.timeout))
		}
		return down(nil, describe(err))
	}
	defer resp.Body.Close()

	code := resp.StatusCode
	if code >= 200 && code < 400 {
		return monitor.Outcome{IsUp: true, StatusCode: &code}
	}
	return down(&code, fmt.Sprintf("HTTP %d", code))
}

func down(code *int, msg string) monitor.Outcome {
	return monitor.Outcome{IsUp: false, StatusCode: code, Error: &msg}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// describe drops the "Head <url>:" prefix net/http adds.
func describe(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err.Error()
	}
	return err.Error()
}
