package interfaces

import (
	"context"

	"fieldpilot/internal/domain/entities"
)

// IRecurrenceRequestRepository abstracts DynamoDB persistence for
// RecurrenceRequest.
//
// UpdateStatus is a compare-and-swap like the engagement variant: a stale
// expected status yields the zero value, not an overwrite.

type IRecurrenceRequestRepository interface {
	Create(ctx context.Context, r entities.RecurrenceRequest) (entities.RecurrenceRequest, error)
	GetByID(ctx context.Context, id string) (entities.RecurrenceRequest, error)
	ListByEngagement(ctx context.Context, engagementID string) ([]entities.RecurrenceRequest, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.RecurrenceRequestStatus) (entities.RecurrenceRequest, error)
}
