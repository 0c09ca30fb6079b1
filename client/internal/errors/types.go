// Package errors provides the error taxonomy for the client SDK.
// Every failure returned by the SDK is an *Error carrying a Kind, so callers
// can branch with errors.Is against the Err* sentinels.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies where in a call a failure originated.
type Kind int

const (
	// Configuration errors come from invalid client construction.
	Configuration Kind = iota + 1

	// Validation errors mean a required argument was missing or malformed.
	// They are raised before any network I/O.
	Validation

	// Precondition errors mean the call needs a signed-in session.
	Precondition

	// Authentication errors mean sign-in was refused or impossible.
	Authentication

	// Transport errors are network-level failures: refused connections,
	// timeouts, cancelled contexts.
	Transport

	// Protocol errors mean the response body was not the expected JSON object.
	Protocol

	// Domain errors mean the service answered with httpstatuscode != 200.
	Domain
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Configuration:
		return "configuration"
	case Validation:
		return "validation"
	case Precondition:
		return "precondition"
	case Authentication:
		return "authentication"
	case Transport:
		return "transport"
	case Protocol:
		return "protocol"
	case Domain:
		return "domain"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Sentinels for errors.Is. An *Error matches the sentinel of its Kind.
var (
	ErrConfiguration  = errors.New("configuration error")
	ErrValidation     = errors.New("validation error")
	ErrPrecondition   = errors.New("precondition failed")
	ErrAuthentication = errors.New("authentication failed")
	ErrTransport      = errors.New("transport error")
	ErrProtocol       = errors.New("protocol error")
	ErrDomain         = errors.New("domain error")
)

var sentinels = map[Kind]error{
	Configuration:  ErrConfiguration,
	Validation:     ErrValidation,
	Precondition:   ErrPrecondition,
	Authentication: ErrAuthentication,
	Transport:      ErrTransport,
	Protocol:       ErrProtocol,
	Domain:         ErrDomain,
}

// Error is the single concrete error type returned by the SDK.
type Error struct {
	Kind Kind
	Op   string   // endpoint or operation name, e.g. "flight.add"
	Msg  string   // short description
	// Fields lists offending argument names for Validation and Authentication errors.
	Fields []string

	// StatusCode is the domain status found in the body (Domain only).
	StatusCode int
	// Body is the full decoded response body (Domain only).
	Body map[string]any
	// Raw holds the undecoded response body (Domain and Protocol).
	Raw []byte

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}
	b.WriteString(": ")
	switch {
	case e.Msg != "":
		b.WriteString(e.Msg)
	case e.Err != nil:
		b.WriteString(e.Err.Error())
	default:
		b.WriteString(sentinels[e.Kind].Error())
	}
	if len(e.Fields) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Fields, ", "))
		b.WriteString("]")
	}
	if e.Kind == Domain {
		fmt.Fprintf(&b, " (httpstatuscode %d)", e.StatusCode)
	}
	if e.Msg != "" && e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's Kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of the outermost *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
