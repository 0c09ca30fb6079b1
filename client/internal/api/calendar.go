package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// ListPublicCalendar lists the public events published under the homepage
// access code. It needs no session.
func ListPublicCalendar(ctx context.Context, s Sender, accessCode string) (*types.Response, error) {
	return call(ctx, s, endpoint.PublicCalendar, "", request.Args{"hpaccesscode": accessCode})
}

// ListMyCalendar lists the events of the signed-in user.
func ListMyCalendar(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.MyCalendar, token, nil)
}

// ListPersons lists the members of the organisation.
func ListPersons(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListPersons, token, nil)
}

// GetPerson fetches the member uid.
func GetPerson(ctx context.Context, s Sender, token string, uid int64) (*types.Response, error) {
	return call(ctx, s, endpoint.GetPerson, token, request.Args{"uid": uid})
}
