package request

import "time"

// CalendarBlockRequest creates a blocked or personal time block. Job events
// cannot be created through this payload; they only exist via engagement
// creation.
type CalendarBlockRequest struct {
	Title   string    `json:"title" binding:"required"`
	Type    string    `json:"type" binding:"required"`
	OwnerID string    `json:"owner_id"`
	Start   time.Time `json:"start" binding:"required"`
	End     time.Time `json:"end" binding:"required"`
}
