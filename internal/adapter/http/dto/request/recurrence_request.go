package request

// RecurrenceSubmitRequest proposes a recurring cadence for an engagement the
// owner already holds.
type RecurrenceSubmitRequest struct {
	OwnerID          string `json:"owner_id" binding:"required"`
	EngagementID     string `json:"engagement_id" binding:"required"`
	FrequencyDays    int    `json:"frequency_days" binding:"required"`
	RequestedWeekday *int   `json:"requested_weekday"`
}
