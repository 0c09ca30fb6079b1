// Package client is a Go SDK for the Vereinsflieger REST interface.
//
// A Client holds one session. SignIn exchanges the application key and the
// user's credentials for an access token which every later call carries in
// its form body:
//
//	c, err := client.New(appKey)
//	if err != nil { ... }
//	if _, err := c.SignIn(ctx, user, password); err != nil { ... }
//	resp, err := c.ListFlightsByAircraft(ctx, "D-KXYZ", 10)
//	for _, flight := range resp.Items() { ... }
//
// The service reports success in the JSON body (httpstatuscode), not in the
// HTTP status line. Every failure is an *Error; use errors.Is with
// ErrValidation, ErrDomain and friends to tell them apart.
package client
