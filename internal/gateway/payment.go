package gateway

import (
	"context"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	apperrors "snadaily/internal/errors"
)

// PaymentToken is the Snap token handed to the storefront checkout widget.
type PaymentToken struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// PaymentGateway creates payment tokens with the payment provider. Calls
// are awaited, never retried; a provider error surfaces to the caller.
type PaymentGateway interface {
	CreateToken(ctx context.Context, orderID string, grossAmount int64, customerName, customerPhone string) (*PaymentToken, error)
}

type midtransGateway struct {
	client snap.Client
}

// NewMidtransGateway builds a Snap client against sandbox or production.
func NewMidtransGateway(serverKey string, production bool) PaymentGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g := &midtransGateway{}
	g.client.New(serverKey, env)
	return g
}

// CreateToken creates a Snap transaction and returns its token.
func (g *midtransGateway) CreateToken(ctx context.Context, orderID string, grossAmount int64, customerName, customerPhone string) (*PaymentToken, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: grossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Phone: customerPhone,
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return nil, apperrors.NewUpstreamError("midtrans", err)
	}

	return &PaymentToken{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
