package request

import (
	"encoding/json"
	"testing"
)

func TestCreateEngagementRequest_ResolveItems(t *testing.T) {
	body := `{
		"owner_id": "own-1",
		"title": "Gutter cleaning",
		"line_items": [
			{"description": "  Labor  ", "quantity": 2, "unit_amount_cents": 5000},
			{"description": "Materials", "quantity": 1, "unit_amount_cents": 2550}
		]
	}`
	var payload CreateEngagementRequest
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := payload.ResolveItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Description != "Labor" {
		t.Fatalf("description must be trimmed, got %q", items[0].Description)
	}
	if items[0].Quantity != 2 || items[0].UnitAmountCents != 5000 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
}

func TestCreateEngagementRequest_NoItems(t *testing.T) {
	var payload CreateEngagementRequest
	if err := json.Unmarshal([]byte(`{"owner_id":"own-1","title":"Draft"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items := payload.ResolveItems(); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}
