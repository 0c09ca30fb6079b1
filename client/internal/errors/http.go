package errors

import (
	"errors"
	"fmt"
)

// NewValidationError reports missing or malformed arguments.
func NewValidationError(op, msg string, fields ...string) *Error {
	return &Error{Kind: Validation, Op: op, Msg: msg, Fields: fields}
}

// NewPreconditionError reports a call that needs an authenticated session.
func NewPreconditionError(op string) *Error {
	return &Error{Kind: Precondition, Op: op, Msg: "not signed in"}
}

// NewConfigurationError reports invalid client construction.
func NewConfigurationError(msg string) *Error {
	return &Error{Kind: Configuration, Msg: msg}
}

// NewAuthenticationError reports a refused or impossible sign-in. cause may
// be nil; when it is a Domain error the result matches both sentinels.
func NewAuthenticationError(op, msg string, cause error, fields ...string) *Error {
	return &Error{Kind: Authentication, Op: op, Msg: msg, Err: cause, Fields: fields}
}

// NewNetworkError wraps a network-level failure. Context cancellation and
// deadlines are reported the same way; errors.Is(err, context.Canceled)
// still works through Unwrap.
func NewNetworkError(op string, err error) *Error {
	return &Error{Kind: Transport, Op: op, Err: fmt.Errorf("%s network error: %w", op, err)}
}

// NewProtocolError reports a body that could not be decoded.
func NewProtocolError(op string, raw []byte, err error) *Error {
	return &Error{Kind: Protocol, Op: op, Msg: "response body is not a JSON object", Raw: raw, Err: err}
}

// NewDomainError reports a non-200 httpstatuscode. The body is surfaced as-is.
func NewDomainError(op string, status int, body map[string]any, raw []byte) *Error {
	return &Error{Kind: Domain, Op: op, StatusCode: status, Body: body, Raw: raw, Msg: domainMessage(body)}
}

// AsDomain returns the first Domain error in err's chain.
func AsDomain(err error) (*Error, bool) {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return nil, false
		}
		if e.Kind == Domain {
			return e, true
		}
		err = e.Err
	}
	return nil, false
}

// domainMessage picks the human readable part of an error body, if any.
// The service is not consistent about the key it uses.
func domainMessage(body map[string]any) string {
	for _, key := range []string{"error", "message", "msg"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}
	return "request rejected by service"
}
