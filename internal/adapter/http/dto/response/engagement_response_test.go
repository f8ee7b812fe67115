package response

import (
	"encoding/json"
	"testing"
	"time"

	"fieldpilot/internal/domain/entities"
)

func TestFromEngagement(t *testing.T) {
	now := time.Now().UTC()
	due := now.Add(72 * time.Hour)
	e := entities.Engagement{
		ID:      "eng-1",
		OwnerID: "own-1",
		Title:   "Gutter cleaning",
		Status:  entities.EngagementStatusPaymentNeeded,
		LineItems: []entities.LineItem{
			{Description: "Labor", Quantity: 2, UnitAmountCents: 5000},
		},
		TotalAmountCents:   10000,
		Due:                &due,
		ExternalInvoiceRef: "inv_123",
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	resp := FromEngagement(e)
	if resp.ID != "eng-1" || resp.Status != "payment_needed" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.LineItems) != 1 || resp.LineItems[0].UnitAmountCents != 5000 {
		t.Fatalf("unexpected items: %+v", resp.LineItems)
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["external_invoice_ref"] != "inv_123" {
		t.Fatalf("unexpected body: %s", b)
	}
	if _, ok := body["external_quote_ref"]; ok {
		t.Fatalf("empty refs must be omitted: %s", b)
	}
}
