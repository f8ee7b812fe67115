package usecase

import (
	"context"
	"log"

	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/domain/lifecycle"
	"fieldpilot/internal/usecase/interfaces"
)

// IBillingEventUseCase reconciles asynchronous billing-provider events
// against engagement state.
//
// Apply never returns an error for domain-level problems: an unknown
// reference, a duplicate delivery or an out-of-order event is logged as an
// anomaly and acknowledged, because the provider has no waiting user to
// surface it to and rejecting the delivery would not make it retriable into
// correctness. Only store failures propagate, so the transport layer can
// let the provider redeliver.

type IBillingEventUseCase interface {
	Apply(ctx context.Context, ev entities.BillingEvent) error
}

type BillingEventUseCase struct {
	repo       interfaces.IEngagementRepository
	dispatcher interfaces.INotificationDispatcher
}

var _ IBillingEventUseCase = (*BillingEventUseCase)(nil)

func NewBillingEventUseCase(repo interfaces.IEngagementRepository, dispatcher interfaces.INotificationDispatcher) *BillingEventUseCase {
	return &BillingEventUseCase{repo: repo, dispatcher: dispatcher}
}

func (u *BillingEventUseCase) Apply(ctx context.Context, ev entities.BillingEvent) error {
	action, ok := actionForKind(ev.Kind)
	if !ok {
		log.Printf("[billing][reconciler] unrecognized event kind=%s subject=%s; ignoring", ev.Kind, ev.SubjectID)
		return nil
	}

	e, err := u.lookup(ctx, ev)
	if err != nil {
		return err
	}
	if e.ID == "" {
		// Not an error: the subject may belong to a flow this portal does
		// not model, or predate it.
		log.Printf("[billing][reconciler] no engagement for event kind=%s subject=%s; dropping", ev.Kind, ev.SubjectID)
		return nil
	}

	// At-least-once tolerance: a redelivered event whose work is already
	// done is a silent success, with no second notification.
	if target, ok := lifecycle.Target(action); ok && e.Status == target {
		log.Printf("[billing][reconciler] duplicate event kind=%s engagement_id=%s status=%s; no-op", ev.Kind, e.ID, e.Status)
		return nil
	}

	next, err := lifecycle.Transition(e.Status, action)
	if err != nil {
		// Out-of-order or impossible event. Operator-facing, never
		// user-facing, and the delivery is still acknowledged.
		log.Printf("[billing][reconciler] anomaly: event kind=%s engagement_id=%s status=%s not applicable: %v", ev.Kind, e.ID, e.Status, err)
		return nil
	}

	var updated entities.Engagement
	if ev.Kind == entities.BillingEventInvoiceCreated {
		updated, err = u.repo.UpdateStatusWithInvoiceRef(ctx, e.ID, e.Status, next, ev.SubjectID)
	} else {
		updated, err = u.repo.UpdateStatus(ctx, e.ID, e.Status, next)
	}
	if err != nil {
		return err
	}
	if updated.ID == "" {
		log.Printf("[billing][reconciler] anomaly: event kind=%s engagement_id=%s lost the write race; state left to the winner", ev.Kind, e.ID)
		return nil
	}

	log.Printf("[billing][reconciler] applied kind=%s engagement_id=%s %s -> %s", ev.Kind, updated.ID, e.Status, updated.Status)
	u.notify(ctx, notificationForKind(ev.Kind), updated)
	return nil
}

// lookup resolves the engagement the event is about. Quote events and
// invoice.created carry quote references; invoice.paid is matched against
// the stamped invoice reference.
func (u *BillingEventUseCase) lookup(ctx context.Context, ev entities.BillingEvent) (entities.Engagement, error) {
	switch ev.Kind {
	case entities.BillingEventQuoteAccepted, entities.BillingEventQuoteFinalized:
		return u.repo.GetByQuoteRef(ctx, ev.SubjectID)
	case entities.BillingEventInvoiceCreated:
		return u.repo.GetByQuoteRef(ctx, ev.QuoteRef)
	case entities.BillingEventInvoicePaid:
		return u.repo.GetByInvoiceRef(ctx, ev.SubjectID)
	}
	return entities.Engagement{}, nil
}

func actionForKind(kind entities.BillingEventKind) (lifecycle.Action, bool) {
	switch kind {
	case entities.BillingEventQuoteAccepted, entities.BillingEventQuoteFinalized:
		return lifecycle.ActionAccept, true
	case entities.BillingEventInvoiceCreated:
		return lifecycle.ActionInvoiceCreated, true
	case entities.BillingEventInvoicePaid:
		return lifecycle.ActionPaymentSucceeded, true
	}
	return "", false
}

func notificationForKind(kind entities.BillingEventKind) string {
	switch kind {
	case entities.BillingEventQuoteAccepted, entities.BillingEventQuoteFinalized:
		return "engagement.accepted"
	case entities.BillingEventInvoiceCreated:
		return "engagement.invoice_created"
	case entities.BillingEventInvoicePaid:
		return "engagement.paid"
	}
	return "engagement.updated"
}

func (u *BillingEventUseCase) notify(ctx context.Context, typ string, e entities.Engagement) {
	if u.dispatcher == nil {
		return
	}
	n := entities.Notification{
		Type:    typ,
		OwnerID: e.OwnerID,
		Data: map[string]any{
			"engagement_id": e.ID,
			"status":        string(e.Status),
			"title":         e.Title,
		},
		Channels: []string{"push", "email"},
	}
	if err := u.dispatcher.Dispatch(ctx, n); err != nil {
		log.Printf("[billing][reconciler] notification dispatch failed type=%s engagement_id=%s err=%v", typ, e.ID, err)
	}
}
