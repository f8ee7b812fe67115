package request

import (
	"errors"
	"strings"

	"fieldpilot/internal/domain/entities"
)

var ErrInvalidWebhookEnvelope = errors.New("invalid webhook envelope")

// BillingWebhookRequest accepts the provider's webhook envelope in the two
// shapes seen in the wild: a flat {kind, subject_id} body and the nested
// {type, data:{id}} form. Both resolve to the same event.
type BillingWebhookRequest struct {
	Kind      string `json:"kind"`
	Type      string `json:"type"`
	SubjectID string `json:"subject_id"`
	QuoteRef  string `json:"quote_ref"`
	Data      struct {
		ID       string `json:"id"`
		QuoteRef string `json:"quote_ref"`
	} `json:"data"`
}

func (r BillingWebhookRequest) resolveKind() string {
	if v := strings.TrimSpace(r.Kind); v != "" {
		return v
	}
	return strings.TrimSpace(r.Type)
}

func (r BillingWebhookRequest) resolveSubjectID() string {
	if v := strings.TrimSpace(r.SubjectID); v != "" {
		return v
	}
	return strings.TrimSpace(r.Data.ID)
}

func (r BillingWebhookRequest) resolveQuoteRef() string {
	if v := strings.TrimSpace(r.QuoteRef); v != "" {
		return v
	}
	return strings.TrimSpace(r.Data.QuoteRef)
}

// ToBillingEvent validates the envelope shape only. Whether the kind is one
// the reconciler acts on is decided downstream, so unknown kinds still
// produce an event and get acknowledged.
func (r BillingWebhookRequest) ToBillingEvent() (entities.BillingEvent, error) {
	kind := r.resolveKind()
	subject := r.resolveSubjectID()
	if kind == "" || subject == "" {
		return entities.BillingEvent{}, ErrInvalidWebhookEnvelope
	}
	return entities.BillingEvent{
		Kind:      entities.BillingEventKind(kind),
		SubjectID: subject,
		QuoteRef:  r.resolveQuoteRef(),
	}, nil
}
