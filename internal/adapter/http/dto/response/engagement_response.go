package response

import (
	"time"

	"fieldpilot/internal/domain/entities"
)

type LineItemResponse struct {
	Description     string `json:"description"`
	Quantity        int64  `json:"quantity"`
	UnitAmountCents int64  `json:"unit_amount_cents"`
}

type EngagementResponse struct {
	ID                 string             `json:"id"`
	OwnerID            string             `json:"owner_id"`
	Title              string             `json:"title"`
	Description        string             `json:"description,omitempty"`
	Status             string             `json:"status"`
	Recurrence         string             `json:"recurrence"`
	LineItems          []LineItemResponse `json:"line_items"`
	TotalAmountCents   int64              `json:"total_amount_cents"`
	Due                *time.Time         `json:"due,omitempty"`
	ExternalQuoteRef   string             `json:"external_quote_ref,omitempty"`
	ExternalInvoiceRef string             `json:"external_invoice_ref,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func FromEngagement(e entities.Engagement) EngagementResponse {
	items := make([]LineItemResponse, 0, len(e.LineItems))
	for _, it := range e.LineItems {
		items = append(items, LineItemResponse(it))
	}
	return EngagementResponse{
		ID:                 e.ID,
		OwnerID:            e.OwnerID,
		Title:              e.Title,
		Description:        e.Description,
		Status:             string(e.Status),
		Recurrence:         string(e.Recurrence),
		LineItems:          items,
		TotalAmountCents:   e.TotalAmountCents,
		Due:                e.Due,
		ExternalQuoteRef:   e.ExternalQuoteRef,
		ExternalInvoiceRef: e.ExternalInvoiceRef,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func FromEngagements(es []entities.Engagement) []EngagementResponse {
	out := make([]EngagementResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEngagement(e))
	}
	return out
}
