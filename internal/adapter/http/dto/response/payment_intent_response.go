package response

import "encoding/json"

// PaymentIntentResponse returns the provider's reference plus its raw
// response so the frontend can drive the provider's checkout directly.
type PaymentIntentResponse struct {
	ProviderRef      string          `json:"provider_ref"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}
