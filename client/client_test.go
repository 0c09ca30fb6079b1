package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAppKey   = "app-key"
	secretDigest = "5ebe2294ecd0e0f08eab7690d2a6ee69" // md5("secret")
)

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeService answers by path below /interface/rest/ and records every
// request. Unknown paths answer with a bare success.
type fakeService struct {
	mu      sync.Mutex
	reqs    []capturedRequest
	replies map[string]string
}

func newFakeService(t *testing.T) (*fakeService, *httptest.Server) {
	t.Helper()
	fs := &fakeService{replies: map[string]string{
		"auth/accesstoken": `{"httpstatuscode":200,"accesstoken":"boot"}`,
		"auth/signin":      `{"httpstatuscode":200}`,
	}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		path := strings.TrimPrefix(r.URL.Path, "/interface/rest/")
		fs.mu.Lock()
		fs.reqs = append(fs.reqs, capturedRequest{Method: r.Method, Path: path, Query: r.URL.RawQuery, Body: string(b)})
		reply, ok := fs.replies[path]
		fs.mu.Unlock()
		if !ok {
			reply = `{"httpstatuscode":200}`
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return fs, srv
}

func (fs *fakeService) reply(path, body string) {
	fs.mu.Lock()
	fs.replies[path] = body
	fs.mu.Unlock()
}

func (fs *fakeService) requests() []capturedRequest {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]capturedRequest(nil), fs.reqs...)
}

func (fs *fakeService) last(t *testing.T) capturedRequest {
	t.Helper()
	reqs := fs.requests()
	require.NotEmpty(t, reqs)
	return reqs[len(reqs)-1]
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()
	c, err := New(testAppKey, append([]Option{WithBaseURL(srv.URL), WithHTTPClient(srv.Client())}, opts...)...)
	require.NoError(t, err)
	return c
}

func signedIn(t *testing.T, opts ...Option) (*Client, *fakeService) {
	t.Helper()
	fs, srv := newFakeService(t)
	c := newTestClient(t, srv, opts...)
	_, err := c.SignIn(context.Background(), "pilot", "secret")
	require.NoError(t, err)
	return c, fs
}

func TestNew_RequiresAppKey(t *testing.T) {
	t.Parallel()
	_, err := New("  ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNew_RejectsInvalidOptions(t *testing.T) {
	t.Parallel()
	for name, opt := range map[string]Option{
		"base url":    WithBaseURL("not a url"),
		"timeout":     WithHTTPTimeout(0),
		"http client": WithHTTPClient(nil),
		"tenant":      WithTenant(" "),
		"user agent":  WithUserAgent(""),
		"rate":        WithRateLimit(0, 1),
		"metrics":     WithMetrics(nil),
	} {
		_, err := New(testAppKey, opt)
		assert.ErrorIs(t, err, ErrConfiguration, name)
	}
}

func TestSignIn_RequestSequence(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)

	reqs := fs.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, "auth/accesstoken", reqs[0].Path)
	assert.Empty(t, reqs[0].Body)

	assert.Equal(t, http.MethodPost, reqs[1].Method)
	assert.Equal(t, "auth/signin", reqs[1].Path)
	assert.Equal(t, "accesstoken=boot&appkey=app-key&username=pilot&password="+secretDigest, reqs[1].Body)

	assert.True(t, c.SignedIn())
	assert.Equal(t, "boot", c.AccessToken())
}

func TestSignIn_SendsTenant(t *testing.T) {
	t.Parallel()
	_, fs := signedIn(t, WithTenant("42"))
	body := fs.last(t).Body
	assert.True(t, strings.HasSuffix(body, "&cid=42"), body)
}

func TestSignIn_Rejected(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	fs.reply("auth/signin", `{"httpstatuscode":401,"error":"wrong password"}`)
	c := newTestClient(t, srv)

	_, err := c.SignIn(context.Background(), "pilot", "secret")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.ErrorIs(t, err, ErrDomain)
	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, 401, de.StatusCode)
	assert.Equal(t, "wrong password", de.Body["error"])
	assert.False(t, c.SignedIn())
}

func TestSignIn_BootstrapWithoutToken(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	fs.reply("auth/accesstoken", `{"httpstatuscode":200}`)
	c := newTestClient(t, srv)

	_, err := c.SignIn(context.Background(), "pilot", "secret")
	assert.ErrorIs(t, err, ErrAuthentication)
	assert.Len(t, fs.requests(), 1)
}

func TestSignIn_MissingCredentialsNoIO(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	c := newTestClient(t, srv)

	_, err := c.SignIn(context.Background(), "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthentication)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"username", "password"}, e.Fields)
	assert.Empty(t, fs.requests())
}

func TestPreconditionWithoutSession(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	c := newTestClient(t, srv)
	ctx := context.Background()

	calls := map[string]func() (*Response, error){
		"ListAircraft": func() (*Response, error) { return c.ListAircraft(ctx) },
		"AddFlight":    func() (*Response, error) { return c.AddFlight(ctx, "D-KXYZ", FlightOptions{}) },
		"ListMyCalendar":   func() (*Response, error) { return c.ListMyCalendar(ctx) },
		"SignOut":      func() (*Response, error) { return c.SignOut(ctx) },
		"GetUser":      func() (*Response, error) { return c.GetUser(ctx) },
	}
	for name, call := range calls {
		resp, err := call()
		assert.Nil(t, resp, name)
		assert.ErrorIs(t, err, ErrPrecondition, name)
	}
	assert.Empty(t, fs.requests())
}

func TestListPublicCalendarNeedsNoSession(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	c := newTestClient(t, srv)

	_, err := c.ListPublicCalendar(context.Background(), "hp-code")
	require.NoError(t, err)
	assert.Equal(t, "hpaccesscode=hp-code", fs.last(t).Body)
}

func TestValidationNamesFieldsWithoutIO(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)
	before := len(fs.requests())

	_, err := c.AddTransaction(context.Background(), Transaction{Value: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, []string{"bookingdate", "debitaccount", "creditaccount"}, e.Fields)

	_, err = c.AddFlight(context.Background(), " ", FlightOptions{})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Len(t, fs.requests(), before)
}

func TestAddFlight_DefaultsInBody(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)

	_, err := c.AddFlight(context.Background(), "D-KXYZ", FlightOptions{PilotName: "Ann"})
	require.NoError(t, err)
	req := fs.last(t)
	assert.Equal(t, "flight/add", req.Path)

	form, err := url.ParseQuery(req.Body)
	require.NoError(t, err)
	assert.Equal(t, "boot", form.Get("accesstoken"))
	assert.Equal(t, "D-KXYZ", form.Get("callsign"))
	assert.Equal(t, "Ann", form.Get("pilotname"))
	assert.Equal(t, "E", form.Get("starttype"))
	assert.Equal(t, "1", form.Get("landingcount"))
	assert.Equal(t, "10", form.Get("ftid"))
	assert.Equal(t, "0.0", form.Get("motorstart"))
	assert.Equal(t, "0.0", form.Get("motorend"))
	assert.True(t, strings.HasPrefix(req.Body, "accesstoken=boot&callsign=D-KXYZ&"), req.Body)
}

func TestSuccessReattachesToken(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)
	fs.reply("flight/list/today", `{"httpstatuscode":"200","0":{"flid":"1"},"1":{"flid":"2"}}`)

	resp, err := c.ListFlightsToday(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "boot", resp.AccessToken)
	assert.Equal(t, "boot", resp.String("accesstoken"))
	assert.Len(t, resp.Items(), 2)
}

func TestDomainErrorCarriesBody(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)
	fs.reply("aircraft/get/D-EABC", `{"httpstatuscode":404,"error":"unknown aircraft"}`)

	resp, err := c.GetAircraft(context.Background(), "D-EABC")
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrDomain)
	de, ok := AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, 404, de.StatusCode)
	assert.Equal(t, "unknown aircraft", de.Body["error"])
}

func TestListMyCalendarIsGetWithoutBody(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)

	_, err := c.ListMyCalendar(context.Background())
	require.NoError(t, err)
	req := fs.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Empty(t, req.Body)
	assert.Equal(t, "accesstoken=boot", req.Query)
}

func TestSignOut_ClearsOnSuccess(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)

	_, err := c.SignOut(context.Background())
	require.NoError(t, err)
	req := fs.last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "accesstoken=boot", req.Body)
	assert.False(t, c.SignedIn())
}

func TestSignOut_ClearsOnDomainError(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)
	fs.reply("auth/signout", `{"httpstatuscode":401}`)

	_, err := c.SignOut(context.Background())
	assert.ErrorIs(t, err, ErrDomain)
	assert.False(t, c.SignedIn())
}

func TestSignOut_KeepsTokenOnProtocolError(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)
	fs.reply("auth/signout", `<html>maintenance</html>`)

	_, err := c.SignOut(context.Background())
	assert.ErrorIs(t, err, ErrProtocol)
	assert.True(t, c.SignedIn())
}

func TestTransportErrorIsClassified(t *testing.T) {
	t.Parallel()
	down := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	})}
	c, err := New(testAppKey, WithBaseURL("http://vf.test"), WithHTTPClient(down))
	require.NoError(t, err)

	_, err = c.SignIn(context.Background(), "pilot", "secret")
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrAuthentication)
}

func TestCancelledContext(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	c := newTestClient(t, srv)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListFlightsToday(ctx)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = c.SignIn(ctx, "pilot", "secret")
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, KindTransport, KindOf(err))
	assert.Empty(t, fs.requests())
}

func TestSetTenant(t *testing.T) {
	t.Parallel()
	fs, srv := newFakeService(t)
	c := newTestClient(t, srv)

	assert.ErrorIs(t, c.SetTenant(""), ErrValidation)
	require.NoError(t, c.SetTenant("7"))
	_, err := c.SignIn(context.Background(), "pilot", "secret")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(fs.last(t).Body, "&cid=7"))
}

func TestConcurrentCalls(t *testing.T) {
	t.Parallel()
	c, fs := signedIn(t)
	before := len(fs.requests())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.ListAircraft(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Len(t, fs.requests(), before+16)
}

func TestUserAgentHeader(t *testing.T) {
	t.Parallel()
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = io.WriteString(w, `{"httpstatuscode":200}`)
	}))
	defer srv.Close()
	c := newTestClient(t, srv, WithUserAgent("club-tool/1.0"))

	_, err := c.ListPublicCalendar(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "club-tool/1.0", got)
}
