package entities

import "time"

// EngagementStatus is the single lifecycle enum for an engagement.
//
// A quote, a scheduled job and an invoice are the same record at different
// lifecycle stages; the status tells which stage the record is in.

type EngagementStatus string

const (
	EngagementStatusDraft             EngagementStatus = "draft"
	EngagementStatusSent              EngagementStatus = "sent"
	EngagementStatusDeclined          EngagementStatus = "declined"
	EngagementStatusRevisionRequested EngagementStatus = "revision_requested"
	EngagementStatusScheduled         EngagementStatus = "scheduled"
	EngagementStatusPaymentNeeded     EngagementStatus = "payment_needed"
	EngagementStatusPaymentOverdue    EngagementStatus = "payment_overdue"
	EngagementStatusComplete          EngagementStatus = "complete"
	EngagementStatusCanceled          EngagementStatus = "canceled"
)

// RecurrencePattern is a declarative hint on the engagement, not an active
// scheduler. The negotiated cadence lives on RecurrenceRequest.

type RecurrencePattern string

const (
	RecurrenceNone    RecurrencePattern = "none"
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
)

// LineItem is one billable unit, owned exclusively by its engagement and
// stored embedded in it. Items are mutable only while the engagement is in a
// draft-like status; the lifecycle rules enforce that, not the store.

type LineItem struct {
	Description     string `json:"description"`
	Quantity        int64  `json:"quantity"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
}

// Engagement is the central entity of the portal.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//   - GSI2 (external_quote_ref-index): external_quote_ref
//   - GSI3 (external_invoice_ref-index): external_invoice_ref
//
// Monetary representation:
//   - TotalAmountCents is derived from the line items on every write and is
//     never accepted from a client.
//
// External references:
//   - ExternalQuoteRef and ExternalInvoiceRef point into the billing
//     provider. Once the engagement is invoiced the invoice ref drives
//     reconciliation; the quote ref is kept for audit.

type Engagement struct {
	ID                 string            `json:"id"`
	OwnerID            string            `json:"owner_id"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	Status             EngagementStatus  `json:"status"`
	Recurrence         RecurrencePattern `json:"recurrence_pattern"`
	LineItems          []LineItem        `json:"line_items"`
	TotalAmountCents   int64             `json:"total_amount_cents"`
	Due                *time.Time        `json:"due,omitempty"`
	ExternalQuoteRef   string            `json:"external_quote_ref,omitempty"`
	ExternalInvoiceRef string            `json:"external_invoice_ref,omitempty"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// TotalCents recomputes the invariant total from the line items.
func (e Engagement) TotalCents() int64 {
	var total int64
	for _, it := range e.LineItems {
		total += it.Quantity * it.UnitAmountCents
	}
	return total
}
