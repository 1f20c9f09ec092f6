package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Stripe applies its own retry/backoff defaults; we only pin a hard ceiling
// so a stuck connection cannot hold a request forever.
const stripeTimeout = 10 * time.Second

// StripeAdapter drives Stripe Checkout through an instance-scoped client so
// the secret key never touches package-level stripe state.
type StripeAdapter struct {
	SuccessURL string
	CancelURL  string
	api        *client.API
}

func NewStripeAdapter(secretKey, successURL, cancelURL string) *StripeAdapter {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{Timeout: stripeTimeout},
	})

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})

	return &StripeAdapter{
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		api:        api,
	}
}

func (s *StripeAdapter) CreateSession(ctx context.Context, req ChargeRequest) (string, error) {
	sess, err := s.api.CheckoutSessions.New(s.sessionParams(ctx, req))
	if err != nil {
		return "", fmt.Errorf("stripe session create: %w", err)
	}
	return sess.ID, nil
}

func (s *StripeAdapter) RetrieveSession(ctx context.Context, id string) (json.RawMessage, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	sess, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe session retrieve: %w", err)
	}

	// Prefer the wire body so the caller gets Stripe's object untouched.
	if sess.LastResponse != nil && len(sess.LastResponse.RawJSON) > 0 {
		return json.RawMessage(sess.LastResponse.RawJSON), nil
	}
	return json.Marshal(sess)
}

func (s *StripeAdapter) sessionParams(ctx context.Context, req ChargeRequest) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx, Metadata: req.Metadata},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(req.UnitAmount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(req.ProductName),
					Description: stripe.String(req.Description),
				},
			},
			Quantity: stripe.Int64(req.Quantity),
		}},
		SuccessURL:        stripe.String(s.SuccessURL),
		CancelURL:         stripe.String(s.CancelURL),
		ClientReferenceID: stripe.String(req.Reference),
	}
}
