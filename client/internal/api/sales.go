package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// ListArticles lists the articles available for sale.
func ListArticles(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListArticles, token, nil)
}

// AddSale records the sale of articleID on bookingDate.
func AddSale(ctx context.Context, s Sender, token, bookingDate, articleID string, o types.SaleOptions) (*types.Response, error) {
	args := request.Args{"bookingdate": bookingDate, "articleid": articleID}
	put(args, "amount", o.Amount)
	put(args, "memberid", o.MemberID)
	put(args, "callsign", o.Callsign)
	put(args, "salestax", o.SalesTax)
	put(args, "totalprice", o.TotalPrice)
	put(args, "counter", o.Counter)
	put(args, "comment", o.Comment)
	put(args, "ccid", o.CCID)
	return call(ctx, s, endpoint.AddSale, token, args)
}
