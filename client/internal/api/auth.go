package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// Credentials are the sign-in inputs. PasswordDigest is the MD5 hex of the
// password; TenantID is sent as cid only when set.
type Credentials struct {
	AppKey         string
	Username       string
	PasswordDigest string
	TenantID       string
}

// FetchAccessToken obtains a fresh, not yet authenticated access token.
func FetchAccessToken(ctx context.Context, s Sender) (string, error) {
	resp, err := call(ctx, s, endpoint.AccessToken, "", nil)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", clienterrors.NewAuthenticationError(endpoint.AccessToken.Name, "response carries no accesstoken", nil)
	}
	return resp.AccessToken, nil
}

// SignIn authenticates token with the given credentials. On success the
// same token becomes the session token.
func SignIn(ctx context.Context, s Sender, token string, c Credentials) (*types.Response, error) {
	args := request.Args{
		endpoint.AccessTokenParam: token,
		"appkey":                  c.AppKey,
		"username":                c.Username,
		"password":                c.PasswordDigest,
	}
	put(args, endpoint.TenantParam, c.TenantID)
	return call(ctx, s, endpoint.SignIn, "", args)
}

// SignOut invalidates token on the server.
func SignOut(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.SignOut, token, nil)
}

// GetUser returns the profile of the signed-in user.
func GetUser(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.GetUser, token, nil)
}
