package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// restPrefix is where every endpoint lives below the host.
const restPrefix = "interface/rest/"

// statusOK is the domain status of a successful call.
const statusOK = 200

// DispatcherConfig configures NewDispatcher.
type DispatcherConfig struct {
	BaseURL   string
	UserAgent string
	// Limiter throttles outgoing requests when set.
	Limiter  *rate.Limiter
	Observer Observer
	// Logger receives resty's internal warnings. The zero value discards them.
	Logger zerolog.Logger
}

// Dispatcher performs requests against the service and classifies replies by
// the httpstatuscode field of the body, never by the HTTP status line.
// It keeps no per-call state and is safe for concurrent use.
type Dispatcher struct {
	rc        *resty.Client
	baseURL   string
	userAgent string
	limiter   *rate.Limiter
	observer  Observer
}

var _ Sender = (*Dispatcher)(nil)

// NewDispatcher wraps httpClient. Retries are disabled: a failed call is
// reported once.
func NewDispatcher(httpClient *http.Client, cfg DispatcherConfig) *Dispatcher {
	rc := resty.NewWithClient(httpClient).
		SetRetryCount(0).
		SetLogger(restyLogger{log: cfg.Logger})
	return &Dispatcher{
		rc:        rc,
		baseURL:   strings.TrimRight(cfg.BaseURL, "/") + "/",
		userAgent: cfg.UserAgent,
		limiter:   cfg.Limiter,
		observer:  cfg.Observer,
	}
}

// URL returns the absolute URL of a built request path.
func (d *Dispatcher) URL(path string) string {
	return d.baseURL + restPrefix + path
}

// Send performs req. GET requests carry no body; all other methods send the
// parameters form-encoded in declaration order.
func (d *Dispatcher) Send(ctx context.Context, req *request.Request) (*types.Response, error) {
	start := time.Now()
	resp, outcome, err := d.send(ctx, req)
	if d.observer != nil {
		d.observer.ObserveRequest(req.Endpoint.Name, outcome, time.Since(start))
	}
	return resp, err
}

func (d *Dispatcher) send(ctx context.Context, req *request.Request) (*types.Response, string, error) {
	op := req.Endpoint.Name
	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, OutcomeTransportError, clienterrors.NewNetworkError(op, err)
		}
	}

	r := d.rc.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())
	if d.userAgent != "" {
		r.SetHeader("User-Agent", d.userAgent)
	}
	if req.Endpoint.HasBody() {
		r.SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(req.Body())
	}

	res, err := r.Execute(req.Endpoint.Method, d.URL(req.Path))
	if err != nil {
		return nil, OutcomeTransportError, clienterrors.NewNetworkError(op, err)
	}

	raw := res.Body()
	body, err := decodeBody(raw)
	if err != nil {
		return nil, OutcomeProtocolError, clienterrors.NewProtocolError(op, raw, err)
	}

	status, ok := domainStatus(body["httpstatuscode"])
	if !ok || status != statusOK {
		return nil, OutcomeDomainError, clienterrors.NewDomainError(op, status, body, raw)
	}

	out := &types.Response{StatusCode: status, Payload: body, Raw: raw}
	if tok, ok := req.Token(); ok {
		body[endpoint.AccessTokenParam] = tok
		out.AccessToken = tok
	} else if tok, ok := body[endpoint.AccessTokenParam].(string); ok {
		out.AccessToken = tok
	}
	return out, OutcomeSuccess, nil
}

func decodeBody(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, fmt.Errorf("body is null")
	}
	return body, nil
}

// domainStatus reads httpstatuscode, which the service sends either as a
// number or as a numeric string. Fractional values are not a status.
func domainStatus(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n), true
		}
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		return integralStatus(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	case float64:
		return integralStatus(x)
	}
	return 0, false
}

func integralStatus(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// restyLogger forwards resty's internal messages to zerolog.
type restyLogger struct{ log zerolog.Logger }

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Str("component", "resty").Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "resty").Msgf(format, v...)
}
