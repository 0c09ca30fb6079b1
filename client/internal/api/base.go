package api

import (
	"context"
	"time"

	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// Sender dispatches one built request. *Dispatcher implements it; tests
// substitute recorders.
type Sender interface {
	Send(ctx context.Context, req *request.Request) (*types.Response, error)
}

// Observer receives the outcome of every dispatched request.
type Observer interface {
	ObserveRequest(endpoint, outcome string, elapsed time.Duration)
}

// Outcomes reported to an Observer.
const (
	OutcomeSuccess        = "success"
	OutcomeDomainError    = "domain_error"
	OutcomeTransportError = "transport_error"
	OutcomeProtocolError  = "protocol_error"
)
