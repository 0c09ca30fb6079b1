//go:build integration
// +build integration

package client_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/aeroclub/vereinsflieger-go/client"
)

// TestSessionE2E signs in, performs read-only calls and signs out again.
func TestSessionE2E(t *testing.T) {
	c, err := client.NewFromConfig(liveConfig)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := c.SignIn(ctx, os.Getenv("VEREINSFLIEGER_USERNAME"), os.Getenv("VEREINSFLIEGER_PASSWORD")); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	defer func() {
		if _, err := c.SignOut(context.Background()); err != nil {
			t.Errorf("sign out: %v", err)
		}
		if c.SignedIn() {
			t.Errorf("token kept after sign out")
		}
	}()

	user, err := c.GetUser(ctx)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if user.AccessToken != c.AccessToken() {
		t.Fatalf("token not re-attached: %q", user.AccessToken)
	}

	aircraft, err := c.ListAircraft(ctx)
	if err != nil {
		t.Fatalf("list aircraft: %v", err)
	}
	t.Logf("aircraft: %d", len(aircraft.Items()))

	if _, err := c.ListFlightsToday(ctx); err != nil {
		t.Fatalf("list flights today: %v", err)
	}
}

// TestSignInRejectedE2E checks that wrong credentials surface as an
// authentication error carrying the service's reply.
func TestSignInRejectedE2E(t *testing.T) {
	c, err := client.NewFromConfig(liveConfig)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = c.SignIn(ctx, os.Getenv("VEREINSFLIEGER_USERNAME"), "definitely-not-the-password")
	if err == nil {
		t.Fatalf("expected sign-in to fail")
	}
	if client.KindOf(err) != client.KindAuthentication {
		t.Fatalf("kind = %v, err = %v", client.KindOf(err), err)
	}
	if _, ok := client.AsDomainError(err); !ok {
		t.Fatalf("expected the service reply in the error chain: %v", err)
	}
}
