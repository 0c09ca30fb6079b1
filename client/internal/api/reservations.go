package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// AddReservation books callsign between from and to.
func AddReservation(ctx context.Context, s Sender, token, callsign, from, to string, o types.ReservationOptions) (*types.Response, error) {
	args := request.Args{"callsign": callsign, "datefrom": from, "dateto": to}
	put(args, "uid", o.UID)
	put(args, "comment", o.Comment)
	return call(ctx, s, endpoint.AddReservation, token, args)
}

// EditReservation updates the reservation id.
func EditReservation(ctx context.Context, s Sender, token string, id int64, o types.EditReservationOptions) (*types.Response, error) {
	args := request.Args{"reservationid": id}
	put(args, "callsign", o.Callsign)
	put(args, "datefrom", o.DateFrom)
	put(args, "dateto", o.DateTo)
	put(args, "comment", o.Comment)
	return call(ctx, s, endpoint.EditReservation, token, args)
}

// DeleteReservation cancels the reservation id.
func DeleteReservation(ctx context.Context, s Sender, token string, id int64) (*types.Response, error) {
	return call(ctx, s, endpoint.DeleteReservation, token, request.Args{"reservationid": id})
}

// GetReservation fetches the reservation id.
func GetReservation(ctx context.Context, s Sender, token string, id int64) (*types.Response, error) {
	return call(ctx, s, endpoint.GetReservation, token, request.Args{"reservationid": id})
}

// ListActiveReservations lists current and future reservations.
func ListActiveReservations(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListActiveReservations, token, nil)
}
