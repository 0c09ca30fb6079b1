package types

// ------------------------------
// Request Types
// ------------------------------
//
// Zero values mean "not supplied": the request builder then sends the
// documented default for the field.

// FlightOptions holds the optional fields of a flight record.
type FlightOptions struct {
	PilotName      string
	UIDPilot       int64
	AttendantName  string
	UIDAttendant   int64
	AttendantName2 string
	UIDAttendant2  int64
	AttendantName3 string
	UIDAttendant3  int64
	// StartType defaults to "E" (self launch). Other values used by the
	// service include "W" (winch) and "F" (aerotow).
	StartType         string
	DepartureTime     string
	DepartureLocation string
	ArrivalTime       string
	ArrivalLocation   string
	LandingCount      int // default 1
	FlightTypeID      int // default 10
	KM                int
	ChargeMode        int
	UIDCharge         int64
	Comment           string
	WID               int64
	TowCallsign       string
	TowPilotName      string
	TowUIDPilot       int64
	TowTime           string
	TowHeight         int // metres
	OffBlock          string
	OnBlock           string
	MotorStart        float64
	MotorEnd          float64
}

// EditFlightOptions updates a flight. Callsign is only sent when set; all
// other fields are sent with their defaults, as the service replaces the
// whole record.
type EditFlightOptions struct {
	Callsign string
	FlightOptions
}

// ReservationOptions holds the optional fields of a new reservation.
type ReservationOptions struct {
	UID     string
	Comment string
}

// EditReservationOptions holds the fields of a reservation update.
type EditReservationOptions struct {
	Callsign string
	DateFrom string
	DateTo   string
	Comment  string
}

// Transaction is a new accounting entry. BookingDate, Value (> 0),
// DebitAccount and CreditAccount are required.
type Transaction struct {
	BookingDate        string
	Value              float64
	SalesTax           float64
	DebitAccount       int64
	CreditAccount      int64
	TaxAccount         int64
	AccountReference   int64
	AccountReferenceID int64
	BookingText        string
}

// EditTransactionOptions updates an accounting entry; empty fields are left
// untouched on the server.
type EditTransactionOptions struct {
	BookingDate string
	Value       float64
	SalesTax    float64
	BookingText string
}

// WorkHours is a new work-hours entry. UID, JobDate, JobText and Category
// are required; Hours is always sent and may be zero.
type WorkHours struct {
	UID      int64
	JobDate  string
	JobText  string
	Hours    float64
	Category int64
	TimeFrom string
	TimeTo   string
	Status   int
	Comment  string
}

// EditWorkHoursOptions updates a work-hours entry; empty fields are left
// untouched on the server.
type EditWorkHoursOptions struct {
	JobDate string
	JobText string
	Hours   float64
	Comment string
}

// SaleOptions holds the optional fields of a sale.
type SaleOptions struct {
	Amount     float64
	MemberID   int64 // buyer
	Callsign   string
	SalesTax   float64
	TotalPrice float64
	Counter    float64
	Comment    string
	CCID       string
}
