// Package payments wraps the hosted-checkout provider used for online
// payments. Direct (front-desk) payments never touch it.
package payments

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/grandora/hotel-manager/internal/models"
)

type CheckoutGateway struct {
	prefs    preference.Client
	payments mppayment.Client
	backURL  string
}

func NewCheckoutGateway(accessToken, backURL string) (*CheckoutGateway, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &CheckoutGateway{
		prefs:    preference.NewClient(cfg),
		payments: mppayment.NewClient(cfg),
		backURL:  backURL,
	}, nil
}

// CreateCheckout registers a hosted-checkout preference for the booking
// and returns the URL the guest is redirected to.
func (g *CheckoutGateway) CreateCheckout(
	ctx context.Context,
	b *models.Booking,
	amount float64,
) (string, error) {

	title := fmt.Sprintf("Grandora booking #%d, room %s", b.ID, b.Room.RoomNumber)

	resource, err := g.prefs.Create(ctx, preference.Request{
		ExternalReference: fmt.Sprintf("BOOKING:%d", b.ID),
		Items: []preference.ItemRequest{
			{
				ID:        fmt.Sprintf("booking-%d", b.ID),
				Title:     title,
				Quantity:  1,
				UnitPrice: amount,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: g.backURL,
			Pending: g.backURL,
			Failure: g.backURL,
		},
	})
	if err != nil {
		return "", err
	}

	return resource.InitPoint, nil
}

// ConfirmedPayment resolves a provider payment ID from a webhook
// notification. It returns the booking external reference and amount only
// when the provider reports the payment approved.
func (g *CheckoutGateway) ConfirmedPayment(
	ctx context.Context,
	providerPaymentID int,
) (externalRef string, amount float64, ok bool, err error) {

	resource, err := g.payments.Get(ctx, providerPaymentID)
	if err != nil {
		return "", 0, false, err
	}

	if resource.Status != "approved" {
		return "", 0, false, nil
	}

	return resource.ExternalReference, resource.TransactionAmount, true, nil
}
