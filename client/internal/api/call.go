package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	clienterrors "github.com/aeroclub/vereinsflieger-go/client/internal/errors"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// call builds and sends one request. Build failures never reach the sender,
// and a context that is already done fails as a transport error.
func call(ctx context.Context, s Sender, d endpoint.Descriptor, token string, args request.Args) (*types.Response, error) {
	req, err := request.Build(d, args, token)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, clienterrors.NewNetworkError(d.Name, err)
	}
	return s.Send(ctx, req)
}

// put adds v under name unless it is the zero value, leaving the field to
// its schema default.
func put[T comparable](args request.Args, name string, v T) {
	var zero T
	if v != zero {
		args[name] = v
	}
}
