package interfaces

import (
	"context"

	"fieldpilot/internal/domain/entities"
)

// INotificationDispatcher hands lifecycle and recurrence notices to the
// external delivery collaborator. The handoff is fire-and-forget: a
// returned error is logged by the caller and never fails the committed
// state change it describes.

type INotificationDispatcher interface {
	Dispatch(ctx context.Context, n entities.Notification) error
}
