package entities

import "time"

// RecurrenceRequestStatus is the negotiation state of a recurrence request.
// accepted and declined are terminal; changed terms require a new request.

type RecurrenceRequestStatus string

const (
	RecurrenceRequestStatusPending   RecurrenceRequestStatus = "pending"
	RecurrenceRequestStatusAccepted  RecurrenceRequestStatus = "accepted"
	RecurrenceRequestStatusDeclined  RecurrenceRequestStatus = "declined"
	RecurrenceRequestStatusCountered RecurrenceRequestStatus = "countered"
)

// RecurrenceRequest is a customer proposal to repeat a job on a cadence.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (engagement_id-index): engagement_id
//
// The model does not enforce one active request per engagement; the workflow
// treats the newest request as authoritative.

type RecurrenceRequest struct {
	ID               string                  `json:"id"`
	EngagementID     string                  `json:"engagement_id"`
	OwnerID          string                  `json:"owner_id"`
	FrequencyDays    int                     `json:"frequency_days"`
	RequestedWeekday *int                    `json:"requested_weekday,omitempty"`
	Status           RecurrenceRequestStatus `json:"status"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}
