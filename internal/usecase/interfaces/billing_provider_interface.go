package interfaces

import (
	"context"
	"encoding/json"

	"fieldpilot/internal/domain/entities"
)

// IBillingProvider is the command side of the external billing system
// (e.g. Mercado Pago). The portal only issues commands through it; the
// provider's asynchronous webhook events flow back through the reconciler.

type IBillingProvider interface {
	// CreatePaymentIntent asks the provider to collect the engagement's
	// total. The amount is taken from the stored engagement, never from a
	// client payload. The raw provider response is returned for audit.
	CreatePaymentIntent(ctx context.Context, e entities.Engagement) (providerRef string, providerResponse json.RawMessage, err error)
}
