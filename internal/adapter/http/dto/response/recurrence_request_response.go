package response

import (
	"time"

	"fieldpilot/internal/domain/entities"
)

type RecurrenceRequestResponse struct {
	ID               string    `json:"id"`
	EngagementID     string    `json:"engagement_id"`
	OwnerID          string    `json:"owner_id"`
	FrequencyDays    int       `json:"frequency_days"`
	RequestedWeekday *int      `json:"requested_weekday,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromRecurrenceRequest(r entities.RecurrenceRequest) RecurrenceRequestResponse {
	return RecurrenceRequestResponse{
		ID:               r.ID,
		EngagementID:     r.EngagementID,
		OwnerID:          r.OwnerID,
		FrequencyDays:    r.FrequencyDays,
		RequestedWeekday: r.RequestedWeekday,
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
