package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/domain/lifecycle"
	"fieldpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEngagementNotFound   = errors.New("engagement not found")
	ErrInvalidEngagementID  = errors.New("invalid engagement id")
	ErrInvalidOwnerID       = errors.New("invalid owner id")
	ErrInvalidTitle         = errors.New("invalid title")
	ErrInvalidLineItems     = errors.New("invalid line items")
	ErrInvalidSchedule      = errors.New("invalid schedule window")
	ErrInvalidRecurrence    = errors.New("invalid recurrence pattern")
	ErrInvalidStatusFilter  = errors.New("invalid status filter")
	ErrMissingRevisionNote  = errors.New("revision reason is required")
	ErrItemsFrozen          = errors.New("line items are frozen once the engagement leaves the draft-like statuses")
	ErrNotAwaitingPayment   = errors.New("engagement is not awaiting payment")
	ErrEngagementStateMoved = errors.New("engagement state changed, re-fetch and retry")
)

// CreateEngagementCommand carries everything needed for the atomic creation
// protocol: the engagement row, its line items and the optional paired
// calendar event all commit in one store transaction.

type CreateEngagementCommand struct {
	OwnerID     string
	Title       string
	Description string
	Recurrence  entities.RecurrencePattern
	Items       []entities.LineItem
	Start       *time.Time
	End         *time.Time
	Due         *time.Time
	Send        bool
}

// IEngagementUseCase exposes the engagement lifecycle operations of the
// synchronous command surface. Provider-driven transitions go through
// IBillingEventUseCase instead.

type IEngagementUseCase interface {
	Create(ctx context.Context, cmd CreateEngagementCommand) (entities.Engagement, error)
	GetByID(ctx context.Context, id string) (entities.Engagement, error)
	ListByOwner(ctx context.Context, ownerID, status string) ([]entities.Engagement, error)
	UpdateItems(ctx context.Context, id string, items []entities.LineItem) (entities.Engagement, error)
	Send(ctx context.Context, id, quoteRef string) (entities.Engagement, error)
	Accept(ctx context.Context, id string) (entities.Engagement, error)
	Decline(ctx context.Context, id string) (entities.Engagement, error)
	RequestRevision(ctx context.Context, id, reason string) (entities.Engagement, error)
	Cancel(ctx context.Context, id string) (entities.Engagement, error)
	MarkOverdue(ctx context.Context, id string) (entities.Engagement, error)
	MarkPaid(ctx context.Context, id string) (entities.Engagement, error)
	CreatePaymentIntent(ctx context.Context, id string) (string, json.RawMessage, error)
}

type EngagementUseCase struct {
	repo       interfaces.IEngagementRepository
	dispatcher interfaces.INotificationDispatcher
	provider   interfaces.IBillingProvider
}

var _ IEngagementUseCase = (*EngagementUseCase)(nil)

func NewEngagementUseCase(repo interfaces.IEngagementRepository, dispatcher interfaces.INotificationDispatcher, provider interfaces.IBillingProvider) *EngagementUseCase {
	return &EngagementUseCase{repo: repo, dispatcher: dispatcher, provider: provider}
}

func (u *EngagementUseCase) Create(ctx context.Context, cmd CreateEngagementCommand) (entities.Engagement, error) {
	cmd.OwnerID = strings.TrimSpace(cmd.OwnerID)
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.OwnerID == "" {
		return entities.Engagement{}, ErrInvalidOwnerID
	}
	if cmd.Title == "" {
		return entities.Engagement{}, ErrInvalidTitle
	}

	recurrence := cmd.Recurrence
	if recurrence == "" {
		recurrence = entities.RecurrenceNone
	}
	switch recurrence {
	case entities.RecurrenceNone, entities.RecurrenceDaily, entities.RecurrenceWeekly, entities.RecurrenceMonthly:
	default:
		return entities.Engagement{}, ErrInvalidRecurrence
	}

	// Items may be absent on a draft, but any supplied item must be valid.
	for i, it := range cmd.Items {
		if strings.TrimSpace(it.Description) == "" {
			return entities.Engagement{}, fmt.Errorf("%w: item %d missing description", ErrInvalidLineItems, i)
		}
		if it.Quantity < 1 {
			return entities.Engagement{}, fmt.Errorf("%w: item %d quantity must be >= 1", ErrInvalidLineItems, i)
		}
		if it.UnitAmountCents < 0 {
			return entities.Engagement{}, fmt.Errorf("%w: item %d unit amount must be >= 0", ErrInvalidLineItems, i)
		}
	}

	// Both ends of the window or neither; a half-open window fails before
	// anything is written.
	if (cmd.Start == nil) != (cmd.End == nil) {
		return entities.Engagement{}, fmt.Errorf("%w: start and end must be supplied together", ErrInvalidSchedule)
	}
	if cmd.Start != nil && !cmd.End.After(*cmd.Start) {
		return entities.Engagement{}, fmt.Errorf("%w: end must be after start", ErrInvalidSchedule)
	}

	status := entities.EngagementStatusDraft
	if cmd.Send {
		if err := lifecycle.ValidateSendableItems(cmd.Items); err != nil {
			return entities.Engagement{}, fmt.Errorf("%w: %v", ErrInvalidLineItems, err)
		}
		status = entities.EngagementStatusSent
	}

	now := time.Now().UTC()
	e := entities.Engagement{
		ID:          uuid.NewString(),
		OwnerID:     cmd.OwnerID,
		Title:       cmd.Title,
		Description: strings.TrimSpace(cmd.Description),
		Status:      status,
		Recurrence:  recurrence,
		LineItems:   cmd.Items,
		Due:         cmd.Due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	// Total is derived server-side; client-supplied totals are never read.
	e.TotalAmountCents = e.TotalCents()

	var event *entities.CalendarEvent
	if cmd.Start != nil {
		event = &entities.CalendarEvent{
			ID:           uuid.NewString(),
			Title:        e.Title,
			Start:        cmd.Start.UTC(),
			End:          cmd.End.UTC(),
			Type:         entities.CalendarEventTypeJob,
			EngagementID: e.ID,
			OwnerID:      e.OwnerID,
			CreatedAt:    now,
		}
	}

	created, err := u.repo.Create(ctx, e, event)
	if err != nil {
		return entities.Engagement{}, err
	}

	notifType := "engagement.created"
	if cmd.Send {
		notifType = "engagement.sent"
	}
	u.notify(ctx, notifType, created, nil)
	return created, nil
}

func (u *EngagementUseCase) GetByID(ctx context.Context, id string) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	return e, nil
}

func (u *EngagementUseCase) ListByOwner(ctx context.Context, ownerID, status string) ([]entities.Engagement, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	filter := entities.EngagementStatus(strings.TrimSpace(status))
	switch filter {
	case "", entities.EngagementStatusDraft, entities.EngagementStatusSent, entities.EngagementStatusDeclined,
		entities.EngagementStatusRevisionRequested, entities.EngagementStatusScheduled,
		entities.EngagementStatusPaymentNeeded, entities.EngagementStatusPaymentOverdue,
		entities.EngagementStatusComplete, entities.EngagementStatusCanceled:
	default:
		return nil, ErrInvalidStatusFilter
	}
	return u.repo.ListByOwner(ctx, ownerID, filter)
}

// UpdateItems replaces the line items and recomputes the total. Items are
// only mutable while the engagement sits in a draft-like status; afterwards
// the quote the customer saw is immutable.
func (u *EngagementUseCase) UpdateItems(ctx context.Context, id string, items []entities.LineItem) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}
	for i, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			return entities.Engagement{}, fmt.Errorf("%w: item %d missing description", ErrInvalidLineItems, i)
		}
		if it.Quantity < 1 {
			return entities.Engagement{}, fmt.Errorf("%w: item %d quantity must be >= 1", ErrInvalidLineItems, i)
		}
		if it.UnitAmountCents < 0 {
			return entities.Engagement{}, fmt.Errorf("%w: item %d unit amount must be >= 0", ErrInvalidLineItems, i)
		}
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	if !lifecycle.ItemsMutable(e.Status) {
		return entities.Engagement{}, ErrItemsFrozen
	}

	total := entities.Engagement{LineItems: items}.TotalCents()
	updated, err := u.repo.UpdateItems(ctx, id, e.Status, items, total)
	if err != nil {
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		return entities.Engagement{}, ErrEngagementStateMoved
	}
	return updated, nil
}

// Send moves a draft (or revised) engagement out the door as a quote. The
// optional quoteRef records the billing provider's id for the pushed quote
// so later provider events can be reconciled back to this engagement.
func (u *EngagementUseCase) Send(ctx context.Context, id, quoteRef string) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	if err := lifecycle.ValidateSendableItems(e.LineItems); err != nil {
		return entities.Engagement{}, fmt.Errorf("%w: %v", ErrInvalidLineItems, err)
	}
	next, err := lifecycle.Transition(e.Status, lifecycle.ActionSend)
	if err != nil {
		return entities.Engagement{}, err
	}

	updated, err := u.repo.UpdateStatusWithQuoteRef(ctx, id, e.Status, next, strings.TrimSpace(quoteRef))
	if err != nil {
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		return entities.Engagement{}, ErrEngagementStateMoved
	}
	u.notify(ctx, "engagement.sent", updated, nil)
	return updated, nil
}

func (u *EngagementUseCase) Accept(ctx context.Context, id string) (entities.Engagement, error) {
	return u.applyAction(ctx, id, lifecycle.ActionAccept, "engagement.accepted", nil)
}

func (u *EngagementUseCase) Decline(ctx context.Context, id string) (entities.Engagement, error) {
	return u.applyAction(ctx, id, lifecycle.ActionDecline, "engagement.declined", nil)
}

// RequestRevision records the reason as an audit note on the notification,
// not on the engagement row itself.
func (u *EngagementUseCase) RequestRevision(ctx context.Context, id, reason string) (entities.Engagement, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Engagement{}, ErrMissingRevisionNote
	}
	return u.applyAction(ctx, id, lifecycle.ActionRequestRevision, "engagement.revision_requested", map[string]any{"reason": reason})
}

func (u *EngagementUseCase) Cancel(ctx context.Context, id string) (entities.Engagement, error) {
	return u.applyAction(ctx, id, lifecycle.ActionCancel, "engagement.canceled", nil)
}

// MarkOverdue is invoked by an external scheduler, never by this service's
// own clock.
func (u *EngagementUseCase) MarkOverdue(ctx context.Context, id string) (entities.Engagement, error) {
	return u.applyAction(ctx, id, lifecycle.ActionOverdue, "engagement.payment_overdue", nil)
}

func (u *EngagementUseCase) MarkPaid(ctx context.Context, id string) (entities.Engagement, error) {
	return u.applyAction(ctx, id, lifecycle.ActionPaymentSucceeded, "engagement.paid", nil)
}

// CreatePaymentIntent issues the collect command to the billing provider for
// an engagement that is awaiting payment.
func (u *EngagementUseCase) CreatePaymentIntent(ctx context.Context, id string) (string, json.RawMessage, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return "", nil, ErrInvalidEngagementID
	}
	if u.provider == nil {
		return "", nil, errors.New("billing provider not configured")
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return "", nil, err
	}
	if e.ID == "" {
		return "", nil, ErrEngagementNotFound
	}
	if e.Status != entities.EngagementStatusPaymentNeeded && e.Status != entities.EngagementStatusPaymentOverdue {
		return "", nil, ErrNotAwaitingPayment
	}

	log.Printf("[engagement][usecase] payment intent start engagement_id=%s amount_cents=%d", e.ID, e.TotalAmountCents)
	ref, resp, err := u.provider.CreatePaymentIntent(ctx, e)
	if err != nil {
		log.Printf("[engagement][usecase] payment intent failed engagement_id=%s err=%v", e.ID, err)
		return "", nil, err
	}
	log.Printf("[engagement][usecase] payment intent created engagement_id=%s provider_ref=%s", e.ID, ref)
	return ref, resp, nil
}

func (u *EngagementUseCase) applyAction(ctx context.Context, id string, action lifecycle.Action, notifType string, data map[string]any) (entities.Engagement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Engagement{}, ErrInvalidEngagementID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Engagement{}, err
	}
	if e.ID == "" {
		return entities.Engagement{}, ErrEngagementNotFound
	}
	next, err := lifecycle.Transition(e.Status, action)
	if err != nil {
		return entities.Engagement{}, err
	}

	// Conditional write: if a concurrent operation moved the status between
	// our read and this write, the store rejects it and the caller gets a
	// retryable conflict instead of a silent overwrite.
	updated, err := u.repo.UpdateStatus(ctx, id, e.Status, next)
	if err != nil {
		return entities.Engagement{}, err
	}
	if updated.ID == "" {
		return entities.Engagement{}, ErrEngagementStateMoved
	}
	u.notify(ctx, notifType, updated, data)
	return updated, nil
}

// notify is step 3 of a transition: best-effort, after commit, never fatal.
func (u *EngagementUseCase) notify(ctx context.Context, typ string, e entities.Engagement, data map[string]any) {
	if u.dispatcher == nil {
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	data["engagement_id"] = e.ID
	data["status"] = string(e.Status)
	data["title"] = e.Title

	n := entities.Notification{
		Type:     typ,
		OwnerID:  e.OwnerID,
		Data:     data,
		Channels: []string{"push", "email"},
	}
	if err := u.dispatcher.Dispatch(ctx, n); err != nil {
		log.Printf("[engagement][usecase] notification dispatch failed type=%s engagement_id=%s err=%v", typ, e.ID, err)
	}
}
