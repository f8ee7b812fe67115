package interfaces

import (
	"context"

	"fieldpilot/internal/domain/entities"
)

// ICalendarEventRepository abstracts DynamoDB persistence for CalendarEvent.
//
// ListForOwner returns the events relevant to one owner's availability:
// the owner's own events plus the global blocked events, which apply to
// everyone.

type ICalendarEventRepository interface {
	Create(ctx context.Context, ev entities.CalendarEvent) (entities.CalendarEvent, error)
	ListAll(ctx context.Context) ([]entities.CalendarEvent, error)
	ListForOwner(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error)
}
