package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/aeroclub/vereinsflieger-go/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}

	// debug logging wraps a copy of the caller's client
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return okResponse(`{"httpstatuscode":200}`), nil
	})
	hc := &http.Client{Transport: rt}
	var buf bytes.Buffer
	c2, err := New("key", WithHTTPClient(hc), WithDebugLogging(true), WithLogger(zerolog.New(&buf)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c2.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport")
	}
	if _, ok := hc.Transport.(*debugTransport); ok {
		t.Fatalf("caller's http.Client must not be modified")
	}

	if _, err := c2.ListPublicCalendar(context.Background(), "code"); err != nil {
		t.Fatalf("PublicCalendar: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
	out := buf.String()
	if !strings.Contains(out, "HTTP request") || !strings.Contains(out, "HTTP response") || !strings.Contains(out, "hpaccesscode=code") {
		t.Fatalf("debug log missing dumps: %s", out)
	}
}

func TestWithMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return okResponse(`{"httpstatuscode":200}`), nil
	})
	opts := []Option{WithHTTPClient(&http.Client{Transport: rt}), WithMetrics(reg)}
	c, err := New("key", opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// A second client on the same registry reuses the collectors.
	if _, err := New("key", opts...); err != nil {
		t.Fatalf("second New: %v", err)
	}
	if _, err := c.ListPublicCalendar(context.Background(), "code"); err != nil {
		t.Fatalf("PublicCalendar: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var found bool
	for _, mf := range families {
		if mf.GetName() != "vereinsflieger_client_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["endpoint"] == "calendar.list.public" && labels["outcome"] == "success" && m.GetCounter().GetValue() == 1 {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("request counter not recorded")
	}
}

func TestWithRateLimit(t *testing.T) {
	c, err := New("key", WithRateLimit(1, 0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.limiter == nil || c.limiter.Burst() != 1 {
		t.Fatalf("limiter not installed with burst 1")
	}

	// A cancelled wait is reported as a transport error.
	c2, err := New("key", WithRateLimit(0.001, 1), WithHTTPClient(&http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return okResponse(`{"httpstatuscode":200}`), nil
	})}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c2.ListPublicCalendar(context.Background(), "a"); err != nil {
		t.Fatalf("first call: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := c2.ListPublicCalendar(ctx, "b"); KindOf(err) != KindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.AppKey = "key"
	cfg.TenantID = "9"
	cfg.HTTPTimeout = 3 * time.Second
	cfg.RateLimit = 5
	cfg.BaseURL = "https://staging.example.org/"

	c, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if c.baseURL != "https://staging.example.org/" || c.http.Timeout != 3*time.Second {
		t.Fatalf("config not applied: %q %v", c.baseURL, c.http.Timeout)
	}
	if c.session.TenantID() != "9" || c.limiter == nil {
		t.Fatalf("tenant or limiter not applied")
	}

	if _, err := NewFromConfig(config.Default()); KindOf(err) != KindConfiguration {
		t.Fatalf("expected configuration error without app key, got %v", err)
	}
}
