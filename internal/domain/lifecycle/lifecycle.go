package lifecycle

import (
	"fmt"

	"fieldpilot/internal/domain/entities"
)

// Action is a requested lifecycle transition. Customer/admin calls and
// provider events both resolve to one of these before touching the store.

type Action string

const (
	ActionSend             Action = "send"
	ActionAccept           Action = "accept"
	ActionDecline          Action = "decline"
	ActionRequestRevision  Action = "request_revision"
	ActionInvoiceCreated   Action = "invoice_created"
	ActionPaymentSucceeded Action = "payment_succeeded"
	ActionOverdue          Action = "overdue"
	ActionCancel           Action = "cancel"
)

// InvalidTransitionError signals that the persisted status is not in the
// action's allowed from-set. It is not a bug: it usually means the state
// moved under the caller, who should re-fetch and reconsider.

type InvalidTransitionError struct {
	From   entities.EngagementStatus
	Action Action
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: action %q not allowed from status %q", e.Action, e.From)
}

type rule struct {
	from []entities.EngagementStatus
	to   entities.EngagementStatus
}

// cancel is not in the table: it is allowed from every non-terminal state,
// so Transition derives it from IsTerminal instead of an enumerated list.
// send accepts revision_requested alongside draft; a revised quote goes
// back out through the same action.
var transitions = map[Action]rule{
	ActionSend: {
		from: []entities.EngagementStatus{entities.EngagementStatusDraft, entities.EngagementStatusRevisionRequested},
		to:   entities.EngagementStatusSent,
	},
	ActionAccept: {
		from: []entities.EngagementStatus{entities.EngagementStatusSent},
		to:   entities.EngagementStatusScheduled,
	},
	ActionDecline: {
		from: []entities.EngagementStatus{entities.EngagementStatusSent},
		to:   entities.EngagementStatusDeclined,
	},
	ActionRequestRevision: {
		from: []entities.EngagementStatus{entities.EngagementStatusSent},
		to:   entities.EngagementStatusRevisionRequested,
	},
	ActionInvoiceCreated: {
		from: []entities.EngagementStatus{entities.EngagementStatusScheduled},
		to:   entities.EngagementStatusPaymentNeeded,
	},
	ActionPaymentSucceeded: {
		from: []entities.EngagementStatus{entities.EngagementStatusPaymentNeeded, entities.EngagementStatusPaymentOverdue},
		to:   entities.EngagementStatusComplete,
	},
	ActionOverdue: {
		from: []entities.EngagementStatus{entities.EngagementStatusPaymentNeeded},
		to:   entities.EngagementStatusPaymentOverdue,
	},
}

// Transition resolves the target status for an action applied to the
// current persisted status, or returns InvalidTransitionError without any
// side effect.
func Transition(current entities.EngagementStatus, action Action) (entities.EngagementStatus, error) {
	if action == ActionCancel {
		if IsTerminal(current) {
			return "", &InvalidTransitionError{From: current, Action: action}
		}
		return entities.EngagementStatusCanceled, nil
	}
	r, ok := transitions[action]
	if !ok {
		return "", &InvalidTransitionError{From: current, Action: action}
	}
	for _, s := range r.from {
		if s == current {
			return r.to, nil
		}
	}
	return "", &InvalidTransitionError{From: current, Action: action}
}

// Target returns the to-status an action lands in regardless of the current
// status. The reconciler uses it for its duplicate-delivery check.
func Target(action Action) (entities.EngagementStatus, bool) {
	if action == ActionCancel {
		return entities.EngagementStatusCanceled, true
	}
	r, ok := transitions[action]
	if !ok {
		return "", false
	}
	return r.to, true
}

// IsTerminal reports whether no further transition can leave the status.
func IsTerminal(s entities.EngagementStatus) bool {
	return s == entities.EngagementStatusComplete || s == entities.EngagementStatusCanceled
}

// ItemsMutable reports whether line items may still be added, edited or
// removed. Once the engagement left the draft-like statuses the items are
// frozen.
func ItemsMutable(s entities.EngagementStatus) bool {
	return s == entities.EngagementStatusDraft || s == entities.EngagementStatusRevisionRequested
}

// ValidateSendableItems enforces the send precondition: at least one line
// item, every item with a non-empty description, quantity >= 1 and a
// non-negative unit amount.
func ValidateSendableItems(items []entities.LineItem) error {
	if len(items) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	for i, it := range items {
		if it.Description == "" {
			return fmt.Errorf("line item %d: description is required", i)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("line item %d: quantity must be >= 1", i)
		}
		if it.UnitAmountCents < 0 {
			return fmt.Errorf("line item %d: unit amount must be >= 0", i)
		}
	}
	return nil
}
