package entities

// BillingEventKind is the closed set of provider webhook kinds the
// reconciler understands. Anything else is logged and ignored upstream.

type BillingEventKind string

const (
	BillingEventQuoteAccepted  BillingEventKind = "quote.accepted"
	BillingEventQuoteFinalized BillingEventKind = "quote.finalized"
	BillingEventInvoiceCreated BillingEventKind = "invoice.created"
	BillingEventInvoicePaid    BillingEventKind = "invoice.paid"
)

// BillingEvent is the validated form of a provider webhook envelope.
//
// SubjectID is the provider's id for the quote or invoice the event is
// about. QuoteRef is only set for invoice.created and points back to the
// originating quote so the engagement can be found before its invoice ref
// is stamped.

type BillingEvent struct {
	Kind      BillingEventKind `json:"kind"`
	SubjectID string           `json:"subject_id"`
	QuoteRef  string           `json:"quote_ref,omitempty"`
}
