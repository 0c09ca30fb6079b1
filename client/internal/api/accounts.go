package api

import (
	"context"

	"github.com/aeroclub/vereinsflieger-go/client/internal/endpoint"
	"github.com/aeroclub/vereinsflieger-go/client/internal/request"
	"github.com/aeroclub/vereinsflieger-go/client/internal/types"
)

// AddTransaction books a new accounting entry.
func AddTransaction(ctx context.Context, s Sender, token string, t types.Transaction) (*types.Response, error) {
	args := request.Args{
		"bookingdate":   t.BookingDate,
		"value":         t.Value,
		"debitaccount":  t.DebitAccount,
		"creditaccount": t.CreditAccount,
	}
	put(args, "salestax", t.SalesTax)
	put(args, "taxaccount", t.TaxAccount)
	put(args, "accountreference", t.AccountReference)
	put(args, "accountreferenceid", t.AccountReferenceID)
	put(args, "bookingtext", t.BookingText)
	return call(ctx, s, endpoint.AddTransaction, token, args)
}

// EditTransaction updates the accounting entry id.
func EditTransaction(ctx context.Context, s Sender, token string, id int64, o types.EditTransactionOptions) (*types.Response, error) {
	args := request.Args{"transactionid": id}
	put(args, "bookingdate", o.BookingDate)
	put(args, "value", o.Value)
	put(args, "salestax", o.SalesTax)
	put(args, "bookingtext", o.BookingText)
	return call(ctx, s, endpoint.EditTransaction, token, args)
}

// DeleteTransaction removes the accounting entry id.
func DeleteTransaction(ctx context.Context, s Sender, token string, id int64) (*types.Response, error) {
	return call(ctx, s, endpoint.DeleteTransaction, token, request.Args{"transactionid": id})
}

// GetTransaction fetches the accounting entry id.
func GetTransaction(ctx context.Context, s Sender, token string, id int64) (*types.Response, error) {
	return call(ctx, s, endpoint.GetTransaction, token, request.Args{"transactionid": id})
}

// ListTransactionsToday lists the entries booked today.
func ListTransactionsToday(ctx context.Context, s Sender, token string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListTransactionsToday, token, nil)
}

// ListTransactionsByYear lists the entries of one accounting year.
func ListTransactionsByYear(ctx context.Context, s Sender, token string, year int) (*types.Response, error) {
	return call(ctx, s, endpoint.ListTransactionsByYear, token, request.Args{"year": year})
}

// ListTransactionsByDateRange lists entries booked between from and to.
func ListTransactionsByDateRange(ctx context.Context, s Sender, token, from, to string) (*types.Response, error) {
	return call(ctx, s, endpoint.ListTransactionsByDateRange, token, request.Args{"datefrom": from, "dateto": to})
}
