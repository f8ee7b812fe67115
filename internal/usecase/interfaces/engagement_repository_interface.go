package interfaces

import (
	"context"

	"fieldpilot/internal/domain/entities"
)

// IEngagementRepository abstracts DynamoDB persistence for Engagement.
//
// Write semantics the usecases rely on:
//   - Create is transactional: the engagement (with its embedded line items)
//     and the optional paired calendar event commit together or not at all.
//   - Every UpdateStatus* variant is a compare-and-swap on the persisted
//     status: when the stored status no longer equals expected, the write is
//     rejected and the zero-value Engagement is returned. Callers translate
//     that into an invalid-transition error.
//   - UpdateItems carries the same CAS guard: the item replacement only
//     commits while the status still equals expected.
//   - Engagements are never deleted; cancellation is a status.

type IEngagementRepository interface {
	Create(ctx context.Context, e entities.Engagement, event *entities.CalendarEvent) (entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	ListByOwner(ctx context.Context, ownerID string, status entities.EngagementStatus) ([]entities.Engagement, error)
	GetByQuoteRef(ctx context.Context, ref string) (entities.Engagement, error)
	GetByInvoiceRef(ctx context.Context, ref string) (entities.Engagement, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.EngagementStatus) (entities.Engagement, error)
	UpdateItems(ctx context.Context, id string, expected entities.EngagementStatus, items []entities.LineItem, total int64) (entities.Engagement, error)
	UpdateStatusWithQuoteRef(ctx context.Context, id string, expected, next entities.EngagementStatus, quoteRef string) (entities.Engagement, error)
	UpdateStatusWithInvoiceRef(ctx context.Context, id string, expected, next entities.EngagementStatus, invoiceRef string) (entities.Engagement, error)
}
