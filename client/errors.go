package client

import (
	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
)

// Error is the single error type returned by the client. Match its class
// with errors.Is against the sentinels below, or inspect Kind.
type Error = clienterrors.Error

// ErrorKind classifies an Error.
type ErrorKind = clienterrors.Kind

// Error kinds.
const (
	KindConfiguration  = clienterrors.Configuration
	KindValidation     = clienterrors.Validation
	KindPrecondition   = clienterrors.Precondition
	KindAuthentication = clienterrors.Authentication
	KindTransport      = clienterrors.Transport
	KindProtocol       = clienterrors.Protocol
	KindDomain         = clienterrors.Domain
)

// Re-export the sentinels so callers compare against a single symbol.
var (
	ErrConfiguration  = clienterrors.ErrConfiguration
	ErrValidation     = clienterrors.ErrValidation
	ErrPrecondition   = clienterrors.ErrPrecondition
	ErrAuthentication = clienterrors.ErrAuthentication
	ErrTransport      = clienterrors.ErrTransport
	ErrProtocol       = clienterrors.ErrProtocol
	ErrDomain         = clienterrors.ErrDomain
)

// AsDomainError returns the service rejection in err's chain, if any. Its
// Body holds the full decoded response.
func AsDomainError(err error) (*Error, bool) { return clienterrors.AsDomain(err) }

// KindOf returns the kind of the outermost *Error in err's chain, or 0.
func KindOf(err error) ErrorKind { return clienterrors.KindOf(err) }
