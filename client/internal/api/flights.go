package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

func flightArgs(args request.Args, o types.FlightOptions) request.Args {
	put(args, "pilotname", o.PilotName)
	put(args, "uidpilot", o.UIDPilot)
	put(args, "attendantname", o.AttendantName)
	put(args, "uidattendant", o.UIDAttendant)
	put(args, "attendantname2", o.AttendantName2)
	put(args, "uidattendant2", o.UIDAttendant2)
	put(args, "attendantname3", o.AttendantName3)
	put(args, "uidattendant3", o.UIDAttendant3)
	put(args, "starttype", o.StartType)
	put(args, "departuretime", o.DepartureTime)
	put(args, "departurelocation", o.DepartureLocation)
	put(args, "arrivaltime", o.ArrivalTime)
	put(args, "arrivallocation", o.ArrivalLocation)
	put(args, "landingcount", o.LandingCount)
	put(args, "ftid", o.FlightTypeID)
	put(args, "km", o.KM)
	put(args, "chargemode", o.ChargeMode)
	put(args, "uidcharge", o.UIDCharge)
	put(args, "comment", o.Comment)
	put(args, "wid", o.WID)
	put(args, "towcallsign", o.TowCallsign)
	put(args, "towpilotname", o.TowPilotName)
	put(args, "towuidpilot", o.TowUIDPilot)
	put(args, "towtime", o.TowTime)
	put(args, "towheight", o.TowHeight)
	put(args, "offblock", o.OffBlock)
	put(args, "onblock", o.OnBlock)
	put(args, "motorstart", o.MotorStart)
	put(args, "motorend", o.MotorEnd)
	return args
}

// AddFlight records a new flight for the aircraft callsign.
func AddFlight(ctx context.Context, s Sender, token, callsign string, o types.FlightOptions) (*types.Response, error) {
	return call(ctx, s, endpoint.AddFlight, token, flightArgs(request.Args{"callsign": callsign}, o))
}

// EditFlight replaces the flight flightID.
func EditFlight(ctx context.Context, s Sender, token string, flightID int64, o types.EditFlightOptions) (*types.Response, error) {
	args := request.Args{"flightid": flightID}
	put(args, "callsign", o.Callsign)
	return call(ctx, s, endpoint.EditFlight, token, flightArgs(args, o.FlightOptions))
}

// DeleteFlight removes the flight flightID.
func DeleteFlight(ctx context.Context, s Sender, token string, flightID int64) (*types.Response, error) {
	return call(ctx, s, endpoint.DeleteFlight, token, request.Args{"flightid": flightID})
}

// GetFlight fetches the flight flightID.
func GetFlight(ctx context.Context, s Sender, token string, flightID int64) (*types.Response, error) {
	return call(ctx, s, endpoint.GetFlight, token, request.Args{"flightid": flightID})
}

// ListFlightsToday lists the flights of the current day.
func ListFlightsToday(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListFlightsToday, token, nil)
}

// ListFlightsByDate lists the flights of one day (YYYY-MM-DD).
func ListFlightsByDate(ctx context.Context, s Sender, token, date string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListFlightsByDate, token, request.Args{"dateparam": date})
}

// ListFlightsByDateRange lists flights between from and to, inclusive.
func ListFlightsByDateRange(ctx context.Context, s Sender, token, from, to string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListFlightsByDateRange, token, request.Args{"datefrom": from, "dateto": to})
}

// ListFlightsByAircraft lists the last count flights of callsign.
func ListFlightsByAircraft(ctx context.Context, s Sender, token, callsign string, count int) (*types.Response, error) {
	return call(ctx, s, endpoint.ListFlightsByAircraft, token, request.Args{"callsign": callsign, "count": count})
}

// ListMyFlights lists the last count flights of the signed-in user.
func ListMyFlights(ctx context.Context, s Sender, token string, count int) (*types.Response, error) {
	return call(ctx, s, endpoint.ListMyFlights, token, request.Args{"count": count})
}

// ListFlightsByPilot lists the last count flights of the member uid.
func ListFlightsByPilot(ctx context.Context, s Sender, token string, uid int64, count int) (*types.Response, error) {
	return call(ctx, s, endpoint.ListFlightsByPilot, token, request.Args{"uid": uid, "count": count})
}

// ListModifiedFlights lists flights changed within the last days.
func ListModifiedFlights(ctx context.Context, s Sender, token string, days int) (*types.Response, error) {
	return call(ctx, s, endpoint.ListModifiedFlights, token, request.Args{"days": days})
}

// GetFlightStatistics returns aggregated flight statistics between from and to.
func GetFlightStatistics(ctx context.Context, s Sender, token, from, to string) (*types.Response, error) {
	return call(ctx, s, endpoint.FlightStatistics, token, request.Args{"datefrom": from, "dateto": to})
}
