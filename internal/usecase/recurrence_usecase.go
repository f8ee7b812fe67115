package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRecurrenceRequestNotFound  = errors.New("recurrence request not found")
	ErrInvalidRecurrenceRequestID = errors.New("invalid recurrence request id")
	ErrInvalidFrequency           = errors.New("frequency must be at least 1 day")
	ErrInvalidWeekday             = errors.New("weekday must be between 0 and 6")
	ErrRecurrenceAlreadyResolved  = errors.New("recurrence request already resolved")
)

// UnavailableWeekdayError rejects a request whose preferred weekday the
// admin has blocked for recurring work. It carries the full unavailable set
// so the client can re-prompt without another round trip.

type UnavailableWeekdayError struct {
	Weekday     int
	Unavailable []int
}

func (e *UnavailableWeekdayError) Error() string {
	return fmt.Sprintf("weekday %d is unavailable for recurring work (unavailable: %v)", e.Weekday, e.Unavailable)
}

// IRecurrenceUseCase is the negotiation workflow: a customer proposes a
// cadence against a job they own, the admin accepts or declines. Acceptance
// records the agreement only; it schedules nothing by itself.

type IRecurrenceUseCase interface {
	Submit(ctx context.Context, ownerID, engagementID string, frequencyDays int, requestedWeekday *int) (entities.RecurrenceRequest, error)
	Accept(ctx context.Context, id string) (entities.RecurrenceRequest, error)
	Decline(ctx context.Context, id string) (entities.RecurrenceRequest, error)
	ListByEngagement(ctx context.Context, engagementID string) ([]entities.RecurrenceRequest, error)
	UnavailableWeekdays(ctx context.Context) ([]int, error)
}

type RecurrenceUseCase struct {
	repo        interfaces.IRecurrenceRequestRepository
	engagements interfaces.IEngagementRepository
	settings    interfaces.IScheduleSettings
	dispatcher  interfaces.INotificationDispatcher
}

var _ IRecurrenceUseCase = (*RecurrenceUseCase)(nil)

func NewRecurrenceUseCase(
	repo interfaces.IRecurrenceRequestRepository,
	engagements interfaces.IEngagementRepository,
	settings interfaces.IScheduleSettings,
	dispatcher interfaces.INotificationDispatcher,
) *RecurrenceUseCase {
	return &RecurrenceUseCase{repo: repo, engagements: engagements, settings: settings, dispatcher: dispatcher}
}

func (u *RecurrenceUseCase) Submit(ctx context.Context, ownerID, engagementID string, frequencyDays int, requestedWeekday *int) (entities.RecurrenceRequest, error) {
	ownerID = strings.TrimSpace(ownerID)
	engagementID = strings.TrimSpace(engagementID)
	if ownerID == "" {
		return entities.RecurrenceRequest{}, ErrInvalidOwnerID
	}
	if engagementID == "" {
		return entities.RecurrenceRequest{}, ErrInvalidEngagementID
	}
	if frequencyDays < 1 {
		return entities.RecurrenceRequest{}, ErrInvalidFrequency
	}
	if requestedWeekday != nil && (*requestedWeekday < 0 || *requestedWeekday > 6) {
		return entities.RecurrenceRequest{}, ErrInvalidWeekday
	}

	e, err := u.engagements.GetByID(ctx, engagementID)
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}
	// Ownership mismatch is reported as not-found so existence never leaks.
	if e.ID == "" || e.OwnerID != ownerID {
		return entities.RecurrenceRequest{}, ErrEngagementNotFound
	}

	unavailable, err := u.settings.UnavailableWeekdays(ctx)
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}
	if requestedWeekday != nil {
		for _, wd := range unavailable {
			if wd == *requestedWeekday {
				return entities.RecurrenceRequest{}, &UnavailableWeekdayError{Weekday: *requestedWeekday, Unavailable: unavailable}
			}
		}
	}

	now := time.Now().UTC()
	req := entities.RecurrenceRequest{
		ID:               uuid.NewString(),
		EngagementID:     engagementID,
		OwnerID:          ownerID,
		FrequencyDays:    frequencyDays,
		RequestedWeekday: requestedWeekday,
		Status:           entities.RecurrenceRequestStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, req)
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}

	u.notify(ctx, "recurrence.requested", created)
	return created, nil
}

func (u *RecurrenceUseCase) Accept(ctx context.Context, id string) (entities.RecurrenceRequest, error) {
	return u.resolve(ctx, id, entities.RecurrenceRequestStatusAccepted, "recurrence.accepted")
}

func (u *RecurrenceUseCase) Decline(ctx context.Context, id string) (entities.RecurrenceRequest, error) {
	return u.resolve(ctx, id, entities.RecurrenceRequestStatusDeclined, "recurrence.declined")
}

// resolve is terminal for the request: once accepted or declined, new terms
// need a new request.
func (u *RecurrenceUseCase) resolve(ctx context.Context, id string, next entities.RecurrenceRequestStatus, notifType string) (entities.RecurrenceRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RecurrenceRequest{}, ErrInvalidRecurrenceRequestID
	}

	req, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}
	if req.ID == "" {
		return entities.RecurrenceRequest{}, ErrRecurrenceRequestNotFound
	}
	if req.Status != entities.RecurrenceRequestStatusPending {
		return entities.RecurrenceRequest{}, ErrRecurrenceAlreadyResolved
	}

	updated, err := u.repo.UpdateStatus(ctx, id, entities.RecurrenceRequestStatusPending, next)
	if err != nil {
		return entities.RecurrenceRequest{}, err
	}
	if updated.ID == "" {
		return entities.RecurrenceRequest{}, ErrRecurrenceAlreadyResolved
	}

	u.notify(ctx, notifType, updated)
	return updated, nil
}

// ListByEngagement returns the negotiation history, newest terms last in
// store order. The newest request is the authoritative one.
func (u *RecurrenceUseCase) ListByEngagement(ctx context.Context, engagementID string) ([]entities.RecurrenceRequest, error) {
	engagementID = strings.TrimSpace(engagementID)
	if engagementID == "" {
		return nil, ErrInvalidEngagementID
	}
	return u.repo.ListByEngagement(ctx, engagementID)
}

func (u *RecurrenceUseCase) UnavailableWeekdays(ctx context.Context) ([]int, error) {
	return u.settings.UnavailableWeekdays(ctx)
}

func (u *RecurrenceUseCase) notify(ctx context.Context, typ string, req entities.RecurrenceRequest) {
	if u.dispatcher == nil {
		return
	}
	data := map[string]any{
		"recurrence_request_id": req.ID,
		"engagement_id":         req.EngagementID,
		"frequency_days":        req.FrequencyDays,
		"status":                string(req.Status),
	}
	if req.RequestedWeekday != nil {
		data["requested_weekday"] = *req.RequestedWeekday
	}
	n := entities.Notification{
		Type:     typ,
		OwnerID:  req.OwnerID,
		Data:     data,
		Channels: []string{"push", "email"},
	}
	if err := u.dispatcher.Dispatch(ctx, n); err != nil {
		log.Printf("[recurrence][usecase] notification dispatch failed type=%s request_id=%s err=%v", typ, req.ID, err)
	}
}
