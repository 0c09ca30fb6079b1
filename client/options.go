package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file makes it easy to discover
// all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
)

// Option configures a Client during construction in New. A failing option
// aborts New with a configuration error.
type Option func(*Client) error

func invalidOption(format string, args ...any) error {
	return clienterrors.NewConfigurationError(fmt.Sprintf(format, args...))
}

// WithBaseURL points the client at another host, e.g. a test server.
// The REST prefix interface/rest/ is appended by the client.
func WithBaseURL(raw string) Option {
	return func(c *Client) error {
		u, err := url.Parse(strings.TrimSpace(raw))
		if err != nil || u.Scheme == "" || u.Host == "" {
			return invalidOption("invalid base url %q", raw)
		}
		c.baseURL = u.String()
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. Apply it before
// WithHTTPTimeout if both are used.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return invalidOption("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP request.
// The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return invalidOption("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithDebugLogging logs each request and response through zerolog when
// enabled is true.
//
// Do not enable this option in production environments: the dumps include
// access tokens and the password digest sent at sign-in.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.debug = true
		}
		return nil
	}
}

// WithLogger selects the logger used for debug output and transport
// warnings. Without it the client is silent unless debugging, which then
// uses the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) error {
		c.logger = l
		c.loggerSet = true
		return nil
	}
}

// WithTenant sets the organisation selector sent at sign-in.
func WithTenant(id string) Option {
	return func(c *Client) error {
		if err := c.SetTenant(id); err != nil {
			return invalidOption("tenant id is required")
		}
		return nil
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) error {
		if strings.TrimSpace(ua) == "" {
			return invalidOption("user agent must not be empty")
		}
		c.userAgent = ua
		return nil
	}
}

// WithRateLimit throttles outgoing requests to perSecond with the given
// burst. A burst below 1 is treated as 1.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) error {
		if perSecond <= 0 {
			return invalidOption("rate limit must be > 0")
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
		return nil
	}
}

// WithMetrics registers request counters and latency histograms on reg.
// Clients sharing a registry share the collectors.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		if reg == nil {
			return invalidOption("metrics registerer must not be nil")
		}
		m, err := newMetrics(reg)
		if err != nil {
			return invalidOption("register metrics: %v", err)
		}
		c.metrics = m
		return nil
	}
}
