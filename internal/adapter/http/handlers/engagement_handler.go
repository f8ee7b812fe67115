package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fieldpilot/internal/adapter/http/dto/request"
	response "fieldpilot/internal/adapter/http/dto/response"
	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/domain/lifecycle"
	"fieldpilot/internal/usecase"
	"fieldpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEngagementPayload = pkg.NewDomainErrorSimple("INVALID_ENGAGEMENT_INPUT", "Invalid engagement payload", http.StatusBadRequest)
)

// EngagementHandler exposes the engagement lifecycle over HTTP. Every
// transition is a POST on the engagement resource; the webhook-driven
// transitions live in BillingWebhookHandler instead.

type EngagementHandler struct {
	usecase usecase.IEngagementUseCase
}

func NewEngagementHandler(uc usecase.IEngagementUseCase) *EngagementHandler {
	return &EngagementHandler{usecase: uc}
}

// Create handles quote/job creation, optionally sending it in the same
// request when the payload sets "send".
func (h *EngagementHandler) Create(c *gin.Context) {
	var payload request.CreateEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	cmd := usecase.CreateEngagementCommand{
		OwnerID:     payload.OwnerID,
		Title:       payload.Title,
		Description: payload.Description,
		Recurrence:  entities.RecurrencePattern(payload.Recurrence),
		Items:       payload.ResolveItems(),
		Start:       payload.Start,
		End:         payload.End,
		Due:         payload.Due,
		Send:        payload.Send,
	}

	created, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEngagement(created))
}

func (h *EngagementHandler) GetByID(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

func (h *EngagementHandler) List(c *gin.Context) {
	es, err := h.usecase.ListByOwner(c.Request.Context(), c.Query("owner_id"), c.Query("status"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngagements(es))
}

// Send accepts an optional body carrying the provider's quote reference.
// An empty body is fine: sending without a pushed quote is a valid flow.
func (h *EngagementHandler) Send(c *gin.Context) {
	var payload request.SendEngagementRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
			return
		}
	}

	e, err := h.usecase.Send(c.Request.Context(), c.Param("id"), payload.QuoteRef)
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

func (h *EngagementHandler) Accept(c *gin.Context) {
	h.applyTransition(c, h.usecase.Accept)
}

func (h *EngagementHandler) Decline(c *gin.Context) {
	h.applyTransition(c, h.usecase.Decline)
}

func (h *EngagementHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, h.usecase.Cancel)
}

func (h *EngagementHandler) MarkOverdue(c *gin.Context) {
	h.applyTransition(c, h.usecase.MarkOverdue)
}

// MarkPaid settles the invoice without a provider event, e.g. cash taken
// on site. Provider-confirmed payments arrive through the webhook instead.
func (h *EngagementHandler) MarkPaid(c *gin.Context) {
	h.applyTransition(c, h.usecase.MarkPaid)
}

// UpdateItems replaces the line items while the engagement is still
// draft-like. The server rederives the total from the new items.
func (h *EngagementHandler) UpdateItems(c *gin.Context) {
	var payload request.UpdateLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.UpdateItems(c.Request.Context(), c.Param("id"), payload.ResolveItems())
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

func (h *EngagementHandler) RequestRevision(c *gin.Context) {
	var payload request.ReviseEngagementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEngagementPayload.HTTPStatus, errInvalidEngagementPayload.ToHTTPError())
		return
	}

	e, err := h.usecase.RequestRevision(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

func (h *EngagementHandler) CreatePaymentIntent(c *gin.Context) {
	ref, resp, err := h.usecase.CreatePaymentIntent(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.PaymentIntentResponse{ProviderRef: ref, ProviderResponse: resp})
}

func (h *EngagementHandler) applyTransition(c *gin.Context, apply func(ctx context.Context, id string) (entities.Engagement, error)) {
	e, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEngagementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEngagement(e))
}

func mapEngagementError(err error) *pkg.AppError {
	var transitionErr *lifecycle.InvalidTransitionError
	switch {
	case errors.Is(err, usecase.ErrInvalidEngagementID),
		errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidLineItems),
		errors.Is(err, usecase.ErrInvalidSchedule),
		errors.Is(err, usecase.ErrInvalidRecurrence),
		errors.Is(err, usecase.ErrInvalidStatusFilter),
		errors.Is(err, usecase.ErrMissingRevisionNote):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrEngagementStateMoved):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_STATE_MOVED", "Engagement changed concurrently, re-fetch and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotAwaitingPayment):
		return pkg.NewDomainErrorSimple("NOT_AWAITING_PAYMENT", "Engagement is not awaiting payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrItemsFrozen):
		return pkg.NewDomainErrorSimple("ITEMS_FROZEN", "Line items can no longer be edited in the current status", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
