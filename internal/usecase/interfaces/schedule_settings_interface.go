package interfaces

import "context"

// IScheduleSettings exposes the admin-configured scheduling constraints.
// Modeled as a collaborator instead of inline config reads so the
// recurrence workflow can be tested with injected values.

type IScheduleSettings interface {
	// UnavailableWeekdays returns the weekdays (0=Sunday .. 6=Saturday) on
	// which recurring work cannot be booked.
	UnavailableWeekdays(ctx context.Context) ([]int, error)
}
