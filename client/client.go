package client

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/aeroclub/vereinsflieger-go/client/internal/api"
	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
	"github.com/aeroclub/vereinsflieger-go/client/internal/session"
)

// DefaultBaseURL is the public Vereinsflieger host.
const DefaultBaseURL = "https://vereinsflieger.de/"

const defaultUserAgent = "vereinsflieger-go"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to one Vereinsflieger organisation on behalf of one user.
// Methods are safe for concurrent use. Every call snapshots the session
// token when it is built; sign-in and sign-out are not serialized against
// calls in flight.
type Client struct {
	appKey    string
	baseURL   string
	userAgent string
	http      *http.Client

	debug     bool
	logger    zerolog.Logger
	loggerSet bool
	limiter   *rate.Limiter
	metrics   *metrics

	session session.Session
	sender  api.Sender
}

// New constructs a Client for the application key appKey. An empty key or a
// failing option yields a configuration error.
func New(appKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(appKey) == "" {
		return nil, clienterrors.NewConfigurationError("application key is required")
	}

	c := &Client{
		appKey:    appKey,
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		http:      &http.Client{Timeout: 30 * time.Second},
		logger:    zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.debug {
		if !c.loggerSet {
			c.logger = log.Logger
		}
		c.installDebugTransport()
	}

	cfg := api.DispatcherConfig{
		BaseURL:   c.baseURL,
		UserAgent: c.userAgent,
		Limiter:   c.limiter,
		Logger:    c.logger,
	}
	if c.metrics != nil {
		cfg.Observer = c.metrics
	}
	c.sender = api.NewDispatcher(c.http, cfg)
	return c, nil
}

// installDebugTransport wraps a copy of the http.Client so a caller-supplied
// client is left untouched.
func (c *Client) installDebugTransport() {
	hc := *c.http
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	hc.Transport = &debugTransport{base: base, log: c.logger}
	c.http = &hc
}

// --------------------------------------------------------------------
// Session
// --------------------------------------------------------------------

// SignIn obtains a fresh access token and authenticates it with username
// and password. The password is sent as its MD5 hex digest, with the tenant
// selector when one is set. A refusal by the service is reported as an
// authentication error that still matches ErrDomain.
func (c *Client) SignIn(ctx context.Context, username, password string) (*Response, error) {
	const op = "auth.signin"
	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "username")
	}
	if password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, clienterrors.NewAuthenticationError(op, "missing credentials", nil, missing...)
	}

	token, err := api.FetchAccessToken(ctx, c.sender)
	if err != nil {
		return nil, authFailure(op, err)
	}
	resp, err := api.SignIn(ctx, c.sender, token, api.Credentials{
		AppKey:         c.appKey,
		Username:       username,
		PasswordDigest: session.PasswordDigest(password),
		TenantID:       c.session.TenantID(),
	})
	if err != nil {
		return nil, authFailure(op, err)
	}
	c.session.SetToken(token)
	return resp, nil
}

func authFailure(op string, err error) error {
	if errors.Is(err, ErrDomain) {
		return clienterrors.NewAuthenticationError(op, "sign-in rejected", err)
	}
	return err
}

// SignOut invalidates the session token. The local token is dropped when the
// service accepts or refuses the sign-out, and kept when the outcome is
// unknown (transport or protocol failure).
func (c *Client) SignOut(ctx context.Context) (*Response, error) {
	token := c.session.Token()
	resp, err := api.SignOut(ctx, c.sender, token)
	if err == nil || errors.Is(err, ErrDomain) {
		c.session.ClearIf(token)
	}
	return resp, err
}

// SetTenant selects the organisation used by the next SignIn.
func (c *Client) SetTenant(id string) error {
	if strings.TrimSpace(id) == "" {
		return clienterrors.NewValidationError("session.tenant", "tenant id is required", "cid")
	}
	c.session.SetTenant(strings.TrimSpace(id))
	return nil
}

// AccessToken returns the current session token, empty when signed out.
func (c *Client) AccessToken() string { return c.session.Token() }

// SignedIn reports whether the client holds a session token.
func (c *Client) SignedIn() bool { return c.session.Token() != "" }

// GetUser returns the profile of the signed-in user.
func (c *Client) GetUser(ctx context.Context) (*Response, error) {
	return api.GetUser(ctx, c.sender, c.session.Token())
}

// --------------------------------------------------------------------
// Flights - delegated to internal/api
// --------------------------------------------------------------------

// AddFlight records a new flight of the aircraft callsign. Unset options
// take their defaults (self launch, one landing, flight type 10).
func (c *Client) AddFlight(ctx context.Context, callsign string, opts FlightOptions) (*Response, error) {
	return api.AddFlight(ctx, c.sender, c.session.Token(), callsign, opts)
}

// EditFlight replaces the flight flightID.
func (c *Client) EditFlight(ctx context.Context, flightID int64, opts EditFlightOptions) (*Response, error) {
	return api.EditFlight(ctx, c.sender, c.session.Token(), flightID, opts)
}

// DeleteFlight removes the flight flightID.
func (c *Client) DeleteFlight(ctx context.Context, flightID int64) (*Response, error) {
	return api.DeleteFlight(ctx, c.sender, c.session.Token(), flightID)
}

// GetFlight fetches the flight flightID.
func (c *Client) GetFlight(ctx context.Context, flightID int64) (*Response, error) {
	return api.GetFlight(ctx, c.sender, c.session.Token(), flightID)
}

// ListFlightsToday lists today's flights.
func (c *Client) ListFlightsToday(ctx context.Context) (*Response, error) {
	return api.ListFlightsToday(ctx, c.sender, c.session.Token())
}

// ListFlightsByDate lists the flights of date (YYYY-MM-DD).
func (c *Client) ListFlightsByDate(ctx context.Context, date string) (*Response, error) {
	return api.ListFlightsByDate(ctx, c.sender, c.session.Token(), date)
}

// ListFlightsByDateRange lists flights between from and to, inclusive.
func (c *Client) ListFlightsByDateRange(ctx context.Context, from, to string) (*Response, error) {
	return api.ListFlightsByDateRange(ctx, c.sender, c.session.Token(), from, to)
}

// ListFlightsByAircraft lists the last count flights of callsign.
func (c *Client) ListFlightsByAircraft(ctx context.Context, callsign string, count int) (*Response, error) {
	return api.ListFlightsByAircraft(ctx, c.sender, c.session.Token(), callsign, count)
}

// ListMyFlights lists the last count flights of the signed-in user.
func (c *Client) ListMyFlights(ctx context.Context, count int) (*Response, error) {
	return api.ListMyFlights(ctx, c.sender, c.session.Token(), count)
}

// ListFlightsByPilot lists the last count flights of member uid.
func (c *Client) ListFlightsByPilot(ctx context.Context, uid int64, count int) (*Response, error) {
	return api.ListFlightsByPilot(ctx, c.sender, c.session.Token(), uid, count)
}

// ListModifiedFlights lists flights changed during the last days.
func (c *Client) ListModifiedFlights(ctx context.Context, days int) (*Response, error) {
	return api.ListModifiedFlights(ctx, c.sender, c.session.Token(), days)
}

// GetFlightStatistics returns aggregated statistics between from and to.
func (c *Client) GetFlightStatistics(ctx context.Context, from, to string) (*Response, error) {
	return api.GetFlightStatistics(ctx, c.sender, c.session.Token(), from, to)
}

// --------------------------------------------------------------------
// Calendars and persons
// --------------------------------------------------------------------

// ListPublicCalendar lists public events. It works without a session.
func (c *Client) ListPublicCalendar(ctx context.Context, accessCode string) (*Response, error) {
	return api.ListPublicCalendar(ctx, c.sender, accessCode)
}

// ListMyCalendar lists the events of the signed-in user.
func (c *Client) ListMyCalendar(ctx context.Context) (*Response, error) {
	return api.ListMyCalendar(ctx, c.sender, c.session.Token())
}

// ListPersons lists the members of the organisation.
func (c *Client) ListPersons(ctx context.Context) (*Response, error) {
	return api.ListPersons(ctx, c.sender, c.session.Token())
}

// GetPerson fetches member uid.
func (c *Client) GetPerson(ctx context.Context, uid int64) (*Response, error) {
	return api.GetPerson(ctx, c.sender, c.session.Token(), uid)
}

// --------------------------------------------------------------------
// Reservations
// --------------------------------------------------------------------

// AddReservation books callsign between from and to.
func (c *Client) AddReservation(ctx context.Context, callsign, from, to string, opts ReservationOptions) (*Response, error) {
	return api.AddReservation(ctx, c.sender, c.session.Token(), callsign, from, to, opts)
}

// EditReservation updates reservation id.
func (c *Client) EditReservation(ctx context.Context, id int64, opts EditReservationOptions) (*Response, error) {
	return api.EditReservation(ctx, c.sender, c.session.Token(), id, opts)
}

// DeleteReservation cancels reservation id.
func (c *Client) DeleteReservation(ctx context.Context, id int64) (*Response, error) {
	return api.DeleteReservation(ctx, c.sender, c.session.Token(), id)
}

// GetReservation fetches reservation id.
func (c *Client) GetReservation(ctx context.Context, id int64) (*Response, error) {
	return api.GetReservation(ctx, c.sender, c.session.Token(), id)
}

// ListActiveReservations lists current and future reservations.
func (c *Client) ListActiveReservations(ctx context.Context) (*Response, error) {
	return api.ListActiveReservations(ctx, c.sender, c.session.Token())
}

// --------------------------------------------------------------------
// Accounting
// --------------------------------------------------------------------

// AddTransaction books an accounting entry. Value must be greater than 0.
func (c *Client) AddTransaction(ctx context.Context, t Transaction) (*Response, error) {
	return api.AddTransaction(ctx, c.sender, c.session.Token(), t)
}

// EditTransaction updates entry id; unset fields are not sent.
func (c *Client) EditTransaction(ctx context.Context, id int64, opts EditTransactionOptions) (*Response, error) {
	return api.EditTransaction(ctx, c.sender, c.session.Token(), id, opts)
}

// DeleteTransaction removes entry id.
func (c *Client) DeleteTransaction(ctx context.Context, id int64) (*Response, error) {
	return api.DeleteTransaction(ctx, c.sender, c.session.Token(), id)
}

// GetTransaction fetches entry id.
func (c *Client) GetTransaction(ctx context.Context, id int64) (*Response, error) {
	return api.GetTransaction(ctx, c.sender, c.session.Token(), id)
}

// ListTransactionsToday lists today's entries.
func (c *Client) ListTransactionsToday(ctx context.Context) (*Response, error) {
	return api.ListTransactionsToday(ctx, c.sender, c.session.Token())
}

// ListTransactionsByYear lists the entries of year.
func (c *Client) ListTransactionsByYear(ctx context.Context, year int) (*Response, error) {
	return api.ListTransactionsByYear(ctx, c.sender, c.session.Token(), year)
}

// ListTransactionsByDateRange lists entries between from and to.
func (c *Client) ListTransactionsByDateRange(ctx context.Context, from, to string) (*Response, error) {
	return api.ListTransactionsByDateRange(ctx, c.sender, c.session.Token(), from, to)
}

// --------------------------------------------------------------------
// Work hours
// --------------------------------------------------------------------

// AddWorkHours records a work-hours entry. Zero hours are accepted.
func (c *Client) AddWorkHours(ctx context.Context, w WorkHours) (*Response, error) {
	return api.AddWorkHours(ctx, c.sender, c.session.Token(), w)
}

// EditWorkHours updates entry id; unset fields are not sent.
func (c *Client) EditWorkHours(ctx context.Context, id int64, opts EditWorkHoursOptions) (*Response, error) {
	return api.EditWorkHours(ctx, c.sender, c.session.Token(), id, opts)
}

// DeleteWorkHours removes entry id.
func (c *Client) DeleteWorkHours(ctx context.Context, id int64) (*Response, error) {
	return api.DeleteWorkHours(ctx, c.sender, c.session.Token(), id)
}

// GetWorkHours fetches entry id.
func (c *Client) GetWorkHours(ctx context.Context, id int64) (*Response, error) {
	return api.GetWorkHours(ctx, c.sender, c.session.Token(), id)
}

// ListWorkHoursByDateRange lists entries between from and to.
func (c *Client) ListWorkHoursByDateRange(ctx context.Context, from, to string) (*Response, error) {
	return api.ListWorkHoursByDateRange(ctx, c.sender, c.session.Token(), from, to)
}

// ListWorkHourCategories lists the work categories.
func (c *Client) ListWorkHourCategories(ctx context.Context) (*Response, error) {
	return api.ListWorkHourCategories(ctx, c.sender, c.session.Token())
}

// --------------------------------------------------------------------
// Sales, aircraft and maintenance
// --------------------------------------------------------------------

// ListArticles lists the articles available for sale.
func (c *Client) ListArticles(ctx context.Context) (*Response, error) {
	return api.ListArticles(ctx, c.sender, c.session.Token())
}

// AddSale records the sale of articleID on bookingDate.
func (c *Client) AddSale(ctx context.Context, bookingDate, articleID string, opts SaleOptions) (*Response, error) {
	return api.AddSale(ctx, c.sender, c.session.Token(), bookingDate, articleID, opts)
}

// ListAircraft lists the aircraft of the organisation.
func (c *Client) ListAircraft(ctx context.Context) (*Response, error) {
	return api.ListAircraft(ctx, c.sender, c.session.Token())
}

// GetAircraft fetches aircraft callsign.
func (c *Client) GetAircraft(ctx context.Context, callsign string) (*Response, error) {
	return api.GetAircraft(ctx, c.sender, c.session.Token(), callsign)
}

// GetMaintenance returns the maintenance status of aircraft callsign.
func (c *Client) GetMaintenance(ctx context.Context, callsign string) (*Response, error) {
	return api.GetMaintenance(ctx, c.sender, c.session.Token(), callsign)
}
