package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// ListAircraft lists the aircraft of the organisation.
func ListAircraft(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListAircraft, token, nil)
}

// GetAircraft fetches the aircraft callsign.
func GetAircraft(ctx context.Context, s Sender, token, callsign string) (*types.Response, error) {
	return call(ctx, s, endpoint.GetAircraft, token, request.Args{"callsign": callsign})
}

// GetMaintenance returns the maintenance status of callsign.
func GetMaintenance(ctx context.Context, s Sender, token, callsign string) (*types.Response, error) {
	return call(ctx, s, endpoint.GetMaintenance, token, request.Args{"callsign": callsign})
}
