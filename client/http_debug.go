package client

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport logs every request/response pair for troubleshooting.
//
// When to use:
//   - Set VEREINSFLIEGER_DEBUG=true or DEBUG=true, or pass WithDebugLogging(true)
//   - When a call is classified unexpectedly and the raw body is needed
//
// Security considerations:
//   - Dumps contain access tokens, the application key and the MD5 password
//     digest of the sign-in body
//   - Only enable in development environments
//
// Example usage:
//
//	export VEREINSFLIEGER_DEBUG=true
//	go run main.go  # Client will now log all HTTP traffic
type debugTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rid := req.Header.Get("X-Request-Id")
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		dt.log.Debug().Str("request_id", rid).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.log.Error().Err(err).Str("request_id", rid).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.log.Debug().Str("request_id", rid).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested reports whether VEREINSFLIEGER_DEBUG or DEBUG is set
// to "true" (case-sensitive).
func debugLoggingRequested() bool {
	return os.Getenv("VEREINSFLIEGER_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
