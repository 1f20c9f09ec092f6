package payments

import (
	"context"
	"encoding/json"
)

// CheckoutGateway defines a common interface for hosted checkout providers.
type CheckoutGateway interface {
	// CreateSession opens a hosted checkout session and returns its opaque id.
	CreateSession(ctx context.Context, req ChargeRequest) (string, error)
	// RetrieveSession returns the provider's raw session object so the caller
	// sees it verbatim.
	RetrieveSession(ctx context.Context, id string) (json.RawMessage, error)
}
