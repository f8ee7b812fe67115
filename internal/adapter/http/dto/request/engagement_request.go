package request

import (
	"strings"
	"time"

	"fieldpilot/internal/domain/entities"
)

type LineItemRequest struct {
	Description     string `json:"description" binding:"required"`
	Quantity        int64  `json:"quantity" binding:"required"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
}

// CreateEngagementRequest is the creation payload. The total is never part
// of it; the server derives it from the line items.
type CreateEngagementRequest struct {
	OwnerID     string            `json:"owner_id" binding:"required"`
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Recurrence  string            `json:"recurrence"`
	LineItems   []LineItemRequest `json:"line_items"`
	Start       *time.Time        `json:"start"`
	End         *time.Time        `json:"end"`
	Due         *time.Time        `json:"due"`
	Send        bool              `json:"send"`
}

func (r CreateEngagementRequest) ResolveItems() []entities.LineItem {
	return resolveLineItems(r.LineItems)
}

// UpdateLineItemsRequest replaces the full item set on a draft-like
// engagement; partial edits are expressed by resending the whole list.
type UpdateLineItemsRequest struct {
	LineItems []LineItemRequest `json:"line_items" binding:"required"`
}

func (r UpdateLineItemsRequest) ResolveItems() []entities.LineItem {
	return resolveLineItems(r.LineItems)
}

func resolveLineItems(in []LineItemRequest) []entities.LineItem {
	items := make([]entities.LineItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.LineItem{
			Description:     strings.TrimSpace(it.Description),
			Quantity:        it.Quantity,
			UnitAmountCents: it.UnitAmountCents,
		})
	}
	return items
}

// SendEngagementRequest optionally carries the billing provider's id for the
// quote pushed alongside the send.
type SendEngagementRequest struct {
	QuoteRef string `json:"quote_ref"`
}

type ReviseEngagementRequest struct {
	Reason string `json:"reason" binding:"required"`
}
