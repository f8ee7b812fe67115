package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidEventTitle = errors.New("invalid event title")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrInvalidEventSpan  = errors.New("event end must be after start")
)

const dayLayout = "2006-01-02"

// Availability is the day-set view derived from calendar events. Days are
// ISO dates, sorted, and may legitimately appear in more than one set;
// display precedence is the consumer's call.

type Availability struct {
	Booked  []string `json:"booked"`
	Pending []string `json:"pending"`
	Blocked []string `json:"blocked"`
}

// IAvailabilityUseCase derives availability views from stored calendar
// events and manages the non-job time blocks. Job events are only created
// through the engagement creation transaction.

type IAvailabilityUseCase interface {
	ForOwner(ctx context.Context, ownerID string) (Availability, error)
	Global(ctx context.Context) (Availability, error)
	ListEvents(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error)
	CreateBlock(ctx context.Context, title string, eventType entities.CalendarEventType, ownerID string, start, end time.Time) (entities.CalendarEvent, error)
}

type AvailabilityUseCase struct {
	events      interfaces.ICalendarEventRepository
	engagements interfaces.IEngagementRepository
}

var _ IAvailabilityUseCase = (*AvailabilityUseCase)(nil)

func NewAvailabilityUseCase(events interfaces.ICalendarEventRepository, engagements interfaces.IEngagementRepository) *AvailabilityUseCase {
	return &AvailabilityUseCase{events: events, engagements: engagements}
}

func (u *AvailabilityUseCase) ForOwner(ctx context.Context, ownerID string) (Availability, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return Availability{}, ErrInvalidOwnerID
	}
	evs, err := u.events.ListForOwner(ctx, ownerID)
	if err != nil {
		return Availability{}, err
	}
	return u.calculate(ctx, evs)
}

func (u *AvailabilityUseCase) Global(ctx context.Context) (Availability, error) {
	evs, err := u.events.ListAll(ctx)
	if err != nil {
		return Availability{}, err
	}
	return u.calculate(ctx, evs)
}

// calculate buckets each event's start day. Blocked events block the day
// unconditionally. Job events are bucketed by the linked engagement's
// status: sent counts as pending, and any status outside
// {canceled, complete, draft} counts as booked. Personal events are not
// categorized. The rules are applied independently, so one day can land in
// several sets.
func (u *AvailabilityUseCase) calculate(ctx context.Context, evs []entities.CalendarEvent) (Availability, error) {
	booked := map[string]struct{}{}
	pending := map[string]struct{}{}
	blocked := map[string]struct{}{}

	statusCache := map[string]entities.EngagementStatus{}

	for _, ev := range evs {
		day := ev.Start.UTC().Format(dayLayout)

		switch ev.Type {
		case entities.CalendarEventTypeBlocked:
			blocked[day] = struct{}{}
		case entities.CalendarEventTypeJob:
			status, ok := statusCache[ev.EngagementID]
			if !ok {
				e, err := u.engagements.GetByID(ctx, ev.EngagementID)
				if err != nil {
					return Availability{}, err
				}
				if e.ID == "" {
					// Dangling reference; the event is skipped rather than
					// miscounted as free or busy.
					log.Printf("[availability][usecase] job event without engagement event_id=%s engagement_id=%s", ev.ID, ev.EngagementID)
					continue
				}
				status = e.Status
				statusCache[ev.EngagementID] = status
			}
			if status == entities.EngagementStatusSent {
				pending[day] = struct{}{}
			}
			switch status {
			case entities.EngagementStatusCanceled, entities.EngagementStatusComplete, entities.EngagementStatusDraft:
			default:
				booked[day] = struct{}{}
			}
		case entities.CalendarEventTypePersonal:
			// Reserved for owner-only display.
		}
	}

	return Availability{
		Booked:  sortedDays(booked),
		Pending: sortedDays(pending),
		Blocked: sortedDays(blocked),
	}, nil
}

func (u *AvailabilityUseCase) ListEvents(ctx context.Context, ownerID string) ([]entities.CalendarEvent, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return u.events.ListAll(ctx)
	}
	return u.events.ListForOwner(ctx, ownerID)
}

// CreateBlock records a blocked or personal time block. Blocked blocks are
// global and carry no owner; personal blocks require one.
func (u *AvailabilityUseCase) CreateBlock(ctx context.Context, title string, eventType entities.CalendarEventType, ownerID string, start, end time.Time) (entities.CalendarEvent, error) {
	title = strings.TrimSpace(title)
	ownerID = strings.TrimSpace(ownerID)
	if title == "" {
		return entities.CalendarEvent{}, ErrInvalidEventTitle
	}
	if !end.After(start) {
		return entities.CalendarEvent{}, ErrInvalidEventSpan
	}
	switch eventType {
	case entities.CalendarEventTypeBlocked:
		ownerID = ""
	case entities.CalendarEventTypePersonal:
		if ownerID == "" {
			return entities.CalendarEvent{}, ErrInvalidOwnerID
		}
	default:
		return entities.CalendarEvent{}, fmt.Errorf("%w: %q", ErrInvalidEventType, eventType)
	}

	ev := entities.CalendarEvent{
		ID:        uuid.NewString(),
		Title:     title,
		Start:     start.UTC(),
		End:       end.UTC(),
		Type:      eventType,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}
	return u.events.Create(ctx, ev)
}

func sortedDays(set map[string]struct{}) []string {
	days := make([]string, 0, len(set))
	for d := range set {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}
