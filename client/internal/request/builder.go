// Package request turns an endpoint descriptor plus caller arguments into a
// fully-formed request: defaults applied, required fields checked, session
// token injected, path finalized. It never performs I/O.
package request

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
)

// Args maps schema field names (and the descriptor's PathParam) to values.
// Accepted Go types: string for Text, int/int32/int64 for Int, and
// float64/float32/int/int64 for Decimal.
type Args map[string]any

// Request is a built call, ready for the dispatcher.
type Request struct {
	Endpoint endpoint.Descriptor
	// Path is relative to interface/rest/. For GET endpoints it carries the
	// parameters as a query string.
	Path   string
	Params Params
}

// Body returns the form body, empty for GET requests.
func (r *Request) Body() string {
	if !r.Endpoint.HasBody() {
		return ""
	}
	return r.Params.Encode()
}

// Token returns the access token the request carries, if any.
func (r *Request) Token() (string, bool) {
	return r.Params.Get(endpoint.AccessTokenParam)
}

// Build validates args against d and produces a Request. token is the
// current session token; it is injected first when d requires auth.
func Build(d endpoint.Descriptor, args Args, token string) (*Request, error) {
	if d.RequiresAuth && strings.TrimSpace(token) == "" {
		return nil, clienterrors.NewPreconditionError(d.Name)
	}

	if unknown := unknownArgs(d, args); len(unknown) > 0 {
		return nil, clienterrors.NewValidationError(d.Name, "unknown parameter", unknown...)
	}

	var missing []string
	path := d.Path
	if d.PathParam != "" {
		id, err := pathValue(d, args[d.PathParam])
		if err != nil {
			return nil, err
		}
		if id == "" {
			missing = append(missing, d.PathParam)
		} else {
			path = strings.Replace(path, "{id}", url.PathEscape(id), 1)
		}
	}

	var params Params
	if d.RequiresAuth {
		params.Add(endpoint.AccessTokenParam, token)
	}

	var notPositive []string
	for _, f := range d.Fields {
		raw, supplied := args[f.Name]
		if supplied && raw == nil {
			supplied = false
		}
		v, err := normalize(d.Name, f, raw, supplied)
		if err != nil {
			return nil, err
		}
		zero := isZero(v)

		if f.Required && (!supplied || (zero && !f.AllowZero && !f.Positive)) {
			missing = append(missing, f.Name)
			continue
		}
		if f.Positive && supplied && !(zero && f.OmitEmpty) && !positive(v) {
			notPositive = append(notPositive, f.Name)
			continue
		}
		if f.OmitEmpty && zero {
			continue
		}
		params.Add(f.Name, format(v))
	}

	if len(missing) > 0 {
		return nil, clienterrors.NewValidationError(d.Name, "missing required argument", missing...)
	}
	if len(notPositive) > 0 {
		return nil, clienterrors.NewValidationError(d.Name, "value must be greater than 0", notPositive...)
	}

	if !d.HasBody() && len(params) > 0 {
		path += "?" + params.Encode()
	}
	return &Request{Endpoint: d, Path: path, Params: params}, nil
}

func unknownArgs(d endpoint.Descriptor, args Args) []string {
	var out []string
	for name := range args {
		if name == d.PathParam && name != "" {
			continue
		}
		if _, ok := d.Field(name); !ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func pathValue(d endpoint.Descriptor, raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(v), nil
	case int:
		if v == 0 {
			return "", nil
		}
		return strconv.Itoa(v), nil
	case int64:
		if v == 0 {
			return "", nil
		}
		return strconv.FormatInt(v, 10), nil
	default:
		return "", clienterrors.NewValidationError(d.Name, fmt.Sprintf("unsupported identifier type %T", raw), d.PathParam)
	}
}

// normalize converts raw into the canonical Go type of f.Kind: string,
// int64 or float64.
func normalize(op string, f endpoint.Field, raw any, supplied bool) (any, error) {
	if !supplied {
		return defaultFor(f), nil
	}
	bad := func() error {
		return clienterrors.NewValidationError(op, fmt.Sprintf("unsupported type %T", raw), f.Name)
	}
	switch f.Kind {
	case endpoint.Text:
		s, ok := raw.(string)
		if !ok {
			return nil, bad()
		}
		return s, nil
	case endpoint.Int:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		}
		return nil, bad()
	case endpoint.Decimal:
		var x float64
		switch v := raw.(type) {
		case float64:
			x = v
		case float32:
			x = float64(v)
		case int:
			x = float64(v)
		case int64:
			x = float64(v)
		default:
			return nil, bad()
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, clienterrors.NewValidationError(op, "not a finite number", f.Name)
		}
		return x, nil
	}
	return nil, bad()
}

func defaultFor(f endpoint.Field) any {
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case endpoint.Int:
		return int64(0)
	case endpoint.Decimal:
		return float64(0)
	default:
		return ""
	}
}

func isZero(v any) bool {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x) == ""
	case int64:
		return x == 0
	case float64:
		return x == 0
	}
	return v == nil
}

func positive(v any) bool {
	switch x := v.(type) {
	case int64:
		return x > 0
	case float64:
		return x > 0
	}
	return false
}

func format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		s := strconv.FormatFloat(x, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return fmt.Sprint(v)
}
