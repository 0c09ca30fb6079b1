package endpoint

import "net/http"

// flightFields is shared by flight.add and flight.edit, in wire order.
var flightFields = []Field{
	text("pilotname"),
	integer("uidpilot"),
	text("attendantname"),
	integer("uidattendant"),
	text("attendantname2"),
	integer("uidattendant2"),
	text("attendantname3"),
	integer("uidattendant3"),
	{Name: "starttype", Kind: Text, Default: "E"},
	text("departuretime"),
	text("departurelocation"),
	text("arrivaltime"),
	text("arrivallocation"),
	{Name: "landingcount", Kind: Int, Default: int64(1)},
	{Name: "ftid", Kind: Int, Default: int64(10)},
	integer("km"),
	integer("chargemode"),
	integer("uidcharge"),
	text("comment"),
	integer("wid"),
	text("towcallsign"),
	text("towpilotname"),
	integer("towuidpilot"),
	text("towtime"),
	integer("towheight"),
	text("offblock"),
	text("onblock"),
	decimal("motorstart"),
	decimal("motorend"),
}

func with(head []Field, tail []Field) []Field {
	out := make([]Field, 0, len(head)+len(tail))
	out = append(out, head...)
	return append(out, tail...)
}

var dateRange = []Field{requiredText("datefrom"), requiredText("dateto")}

// Authentication.
var (
	AccessToken = Descriptor{Name: "auth.accesstoken", Path: "auth/accesstoken", Method: http.MethodGet}
	SignIn      = Descriptor{
		Name:   "auth.signin",
		Path:   "auth/signin",
		Method: http.MethodPost,
		Fields: []Field{
			requiredText(AccessTokenParam),
			requiredText("appkey"),
			requiredText("username"),
			requiredText("password"),
			omitText(TenantParam),
		},
	}
	SignOut = Descriptor{Name: "auth.signout", Path: "auth/signout", Method: http.MethodDelete, RequiresAuth: true}
	GetUser = Descriptor{Name: "auth.getuser", Path: "auth/getuser", Method: http.MethodPost, RequiresAuth: true}
)

// Flights.
var (
	AddFlight = Descriptor{
		Name: "flight.add", Path: "flight/add", Method: http.MethodPost, RequiresAuth: true,
		Fields: with([]Field{requiredText("callsign")}, flightFields),
	}
	EditFlight = Descriptor{
		Name: "flight.edit", Path: "flight/edit/{id}", Method: http.MethodPut, RequiresAuth: true,
		PathParam: "flightid",
		Fields:    with([]Field{omitText("callsign")}, flightFields),
	}
	DeleteFlight = Descriptor{
		Name: "flight.delete", Path: "flight/delete/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "flightid",
	}
	GetFlight = Descriptor{
		Name: "flight.get", Path: "flight/get/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "flightid",
	}
	ListFlightsToday = Descriptor{
		Name: "flight.list.today", Path: "flight/list/today", Method: http.MethodPost, RequiresAuth: true,
	}
	ListFlightsByDate = Descriptor{
		Name: "flight.list.date", Path: "flight/list/date", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{requiredText("dateparam")},
	}
	ListFlightsByDateRange = Descriptor{
		Name: "flight.list.daterange", Path: "flight/list/daterange", Method: http.MethodPost, RequiresAuth: true,
		Fields: dateRange,
	}
	ListFlightsByAircraft = Descriptor{
		Name: "flight.list.plane", Path: "flight/list/plane", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{requiredText("callsign"), requiredInt("count")},
	}
	ListMyFlights = Descriptor{
		Name: "flight.list.myflights", Path: "flight/list/myflights", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{requiredInt("count")},
	}
	ListFlightsByPilot = Descriptor{
		Name: "flight.list.user", Path: "flight/list/user", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{requiredInt("uid"), requiredInt("count")},
	}
	ListModifiedFlights = Descriptor{
		Name: "flight.list.modified", Path: "flight/list/modified", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{requiredInt("days")},
	}
	FlightStatistics = Descriptor{
		Name: "flight.statistics.daterange", Path: "flight/statistics/daterange", Method: http.MethodPost, RequiresAuth: true,
		Fields: dateRange,
	}
)

// Calendars and persons.
var (
	PublicCalendar = Descriptor{
		Name: "calendar.list.public", Path: "calendar/list/public", Method: http.MethodPost,
		Fields: []Field{requiredText("hpaccesscode")},
	}
	MyCalendar = Descriptor{
		Name: "calendar.list.mycalendar", Path: "calendar/list/mycalendar", Method: http.MethodGet, RequiresAuth: true,
	}
	ListPersons = Descriptor{Name: "user.list", Path: "user/list", Method: http.MethodPost, RequiresAuth: true}
	GetPerson   = Descriptor{
		Name: "user.get", Path: "user/get/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "uid",
	}
)

// Reservations.
var (
	AddReservation = Descriptor{
		Name: "reservation.add", Path: "reservation/add", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{
			requiredText("callsign"),
			requiredText("datefrom"),
			requiredText("dateto"),
			text("uid"),
			text("comment"),
		},
	}
	EditReservation = Descriptor{
		Name: "reservation.edit", Path: "reservation/edit/{id}", Method: http.MethodPut, RequiresAuth: true,
		PathParam: "reservationid",
		Fields: []Field{
			text("callsign"),
			text("datefrom"),
			text("dateto"),
			text("comment"),
		},
	}
	DeleteReservation = Descriptor{
		Name: "reservation.delete", Path: "reservation/delete/{id}", Method: http.MethodDelete, RequiresAuth: true,
		PathParam: "reservationid",
	}
	GetReservation = Descriptor{
		Name: "reservation.get", Path: "reservation/get/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "reservationid",
	}
	ListActiveReservations = Descriptor{
		Name: "reservation.list.active", Path: "reservation/list/active", Method: http.MethodPost, RequiresAuth: true,
	}
)

// Accounting.
var (
	AddTransaction = Descriptor{
		Name: "account.add", Path: "account/add", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{
			requiredText("bookingdate"),
			{Name: "value", Kind: Decimal, Required: true, Positive: true},
			decimal("salestax"),
			requiredInt("debitaccount"),
			requiredInt("creditaccount"),
			integer("taxaccount"),
			integer("accountreference"),
			integer("accountreferenceid"),
			text("bookingtext"),
		},
	}
	EditTransaction = Descriptor{
		Name: "account.edit", Path: "account/edit/{id}", Method: http.MethodPut, RequiresAuth: true,
		PathParam: "transactionid",
		Fields: []Field{
			omitText("bookingdate"),
			{Name: "value", Kind: Decimal, OmitEmpty: true, Positive: true},
			omitDecimal("salestax"),
			omitText("bookingtext"),
		},
	}
	DeleteTransaction = Descriptor{
		Name: "account.delete", Path: "account/delete/{id}", Method: http.MethodDelete, RequiresAuth: true,
		PathParam: "transactionid",
	}
	GetTransaction = Descriptor{
		Name: "account.get", Path: "account/get/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "transactionid",
	}
	ListTransactionsToday = Descriptor{
		Name: "account.list.today", Path: "account/list/today", Method: http.MethodPost, RequiresAuth: true,
	}
	ListTransactionsByYear = Descriptor{
		Name: "account.list.year", Path: "account/list/year", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{requiredInt("year")},
	}
	ListTransactionsByDateRange = Descriptor{
		Name: "account.list.daterange", Path: "account/list/daterange", Method: http.MethodPost, RequiresAuth: true,
		Fields: dateRange,
	}
)

// Work hours.
var (
	AddWorkHours = Descriptor{
		Name: "workhours.add", Path: "workhours/add", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{
			requiredInt("uid"),
			requiredText("jobdate"),
			requiredText("jobtext"),
			{Name: "hours", Kind: Decimal, Required: true, AllowZero: true},
			requiredInt("category"),
			text("timefrom"),
			text("timeto"),
			integer("status"),
			text("comment"),
		},
	}
	EditWorkHours = Descriptor{
		Name: "workhours.edit", Path: "workhours/edit/{id}", Method: http.MethodPut, RequiresAuth: true,
		PathParam: "workhoursid",
		Fields: []Field{
			omitText("jobdate"),
			omitText("jobtext"),
			omitDecimal("hours"),
			omitText("comment"),
		},
	}
	DeleteWorkHours = Descriptor{
		Name: "workhours.delete", Path: "workhours/delete/{id}", Method: http.MethodDelete, RequiresAuth: true,
		PathParam: "workhoursid",
	}
	GetWorkHours = Descriptor{
		Name: "workhours.get", Path: "workhours/get/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "workhoursid",
	}
	ListWorkHoursByDateRange = Descriptor{
		Name: "workhours.list.daterange", Path: "workhours/list/daterange", Method: http.MethodPost, RequiresAuth: true,
		Fields: dateRange,
	}
	ListWorkHourCategories = Descriptor{
		Name: "workhourcategories.list", Path: "workhourcategories/list", Method: http.MethodPost, RequiresAuth: true,
	}
)

// Sales, aircraft and maintenance.
var (
	ListArticles = Descriptor{Name: "articles.list", Path: "articles/list", Method: http.MethodPost, RequiresAuth: true}
	AddSale      = Descriptor{
		Name: "sale.add", Path: "sale/add", Method: http.MethodPost, RequiresAuth: true,
		Fields: []Field{
			requiredText("bookingdate"),
			requiredText("articleid"),
			decimal("amount"),
			integer("memberid"),
			text("callsign"),
			decimal("salestax"),
			decimal("totalprice"),
			decimal("counter"),
			text("comment"),
			text("ccid"),
		},
	}
	ListAircraft = Descriptor{Name: "aircraft.list", Path: "aircraft/list", Method: http.MethodPost, RequiresAuth: true}
	GetAircraft  = Descriptor{
		Name: "aircraft.get", Path: "aircraft/get/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "callsign",
	}
	GetMaintenance = Descriptor{
		Name: "maintenance.airplane", Path: "maintenance/airplane/{id}", Method: http.MethodPost, RequiresAuth: true,
		PathParam: "callsign",
	}
)

// All lists every descriptor in the catalog.
func All() []Descriptor {
	return []Descriptor{
		AccessToken, SignIn, SignOut, GetUser,
		AddFlight, EditFlight, DeleteFlight, GetFlight,
		ListFlightsToday, ListFlightsByDate, ListFlightsByDateRange, ListFlightsByAircraft,
		ListMyFlights, ListFlightsByPilot, ListModifiedFlights, FlightStatistics,
		PublicCalendar, MyCalendar, ListPersons, GetPerson,
		AddReservation, EditReservation, DeleteReservation, GetReservation, ListActiveReservations,
		AddTransaction, EditTransaction, DeleteTransaction, GetTransaction,
		ListTransactionsToday, ListTransactionsByYear, ListTransactionsByDateRange,
		AddWorkHours, EditWorkHours, DeleteWorkHours, GetWorkHours,
		ListWorkHoursByDateRange, ListWorkHourCategories,
		ListArticles, AddSale, ListAircraft, GetAircraft, GetMaintenance,
	}
}
