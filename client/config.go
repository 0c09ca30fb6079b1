package client

import (
	"github.com/aeroclub/vereinsflieger-go/config"
)

// NewFromConfig constructs a Client from cfg. opts are applied after the
// options derived from cfg and may override them.
func NewFromConfig(cfg config.Config, opts ...Option) (*Client, error) {
	var base []Option
	if cfg.BaseURL != "" {
		base = append(base, WithBaseURL(cfg.BaseURL))
	}
	if cfg.TenantID != "" {
		base = append(base, WithTenant(cfg.TenantID))
	}
	if cfg.HTTPTimeout > 0 {
		base = append(base, WithHTTPTimeout(cfg.HTTPTimeout))
	}
	if cfg.Debug {
		base = append(base, WithDebugLogging(true))
	}
	if cfg.RateLimit > 0 {
		base = append(base, WithRateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	return New(cfg.AppKey, append(base, opts...)...)
}
