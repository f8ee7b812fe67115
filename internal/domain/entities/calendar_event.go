package entities

import "time"

// CalendarEventType classifies a time block.
//
//   - job: the scheduled window for an engagement. EngagementID is required
//     and its owner must match the event's owner.
//   - blocked: an admin-imposed unavailable day. Global, no owner.
//   - personal: owner-scoped non-job time, reserved for owner-only display.

type CalendarEventType string

const (
	CalendarEventTypeJob      CalendarEventType = "job"
	CalendarEventTypeBlocked  CalendarEventType = "blocked"
	CalendarEventTypePersonal CalendarEventType = "personal"
)

// CalendarEvent is a scheduled time block.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id

type CalendarEvent struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Start        time.Time         `json:"start"`
	End          time.Time         `json:"end"`
	Type         CalendarEventType `json:"type"`
	EngagementID string            `json:"engagement_id,omitempty"`
	OwnerID      string            `json:"owner_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}
