package client

import "github.com/aeroclub/vereinsflieger-go/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	FlightOptions          = types.FlightOptions
	EditFlightOptions      = types.EditFlightOptions
	ReservationOptions     = types.ReservationOptions
	EditReservationOptions = types.EditReservationOptions
	Transaction            = types.Transaction
	EditTransactionOptions = types.EditTransactionOptions
	WorkHours              = types.WorkHours
	EditWorkHoursOptions   = types.EditWorkHoursOptions
	SaleOptions            = types.SaleOptions

	// Responses
	Response = types.Response
)

// Errors re-exported in errors.go
