package handlers

import (
	"context"
	"errors"
	"net/http"

	request "fieldpilot/internal/adapter/http/dto/request"
	response "fieldpilot/internal/adapter/http/dto/response"
	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase"
	"fieldpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecurrencePayload = pkg.NewDomainErrorSimple("INVALID_RECURRENCE_INPUT", "Invalid recurrence request payload", http.StatusBadRequest)
)

type RecurrenceHandler struct {
	usecase usecase.IRecurrenceUseCase
}

func NewRecurrenceHandler(uc usecase.IRecurrenceUseCase) *RecurrenceHandler {
	return &RecurrenceHandler{usecase: uc}
}

func (h *RecurrenceHandler) Submit(c *gin.Context) {
	var payload request.RecurrenceSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRecurrencePayload.HTTPStatus, errInvalidRecurrencePayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Submit(c.Request.Context(), payload.OwnerID, payload.EngagementID, payload.FrequencyDays, payload.RequestedWeekday)
	if err != nil {
		// A weekday rejection carries the full unavailable set so the
		// client can re-prompt with the remaining options.
		var unavailableErr *usecase.UnavailableWeekdayError
		if errors.As(err, &unavailableErr) {
			appErr := mapRecurrenceError(err)
			c.JSON(appErr.HTTPStatus, gin.H{
				"code":                 appErr.Code,
				"message":              appErr.Message,
				"unavailable_weekdays": unavailableErr.Unavailable,
			})
			return
		}
		appErr := mapRecurrenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromRecurrenceRequest(req))
}

func (h *RecurrenceHandler) Accept(c *gin.Context) {
	h.resolve(c, h.usecase.Accept)
}

func (h *RecurrenceHandler) Decline(c *gin.Context) {
	h.resolve(c, h.usecase.Decline)
}

func (h *RecurrenceHandler) resolve(c *gin.Context, apply func(ctx context.Context, id string) (entities.RecurrenceRequest, error)) {
	req, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRecurrenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRecurrenceRequest(req))
}

// ListByEngagement returns the engagement's negotiation history.
func (h *RecurrenceHandler) ListByEngagement(c *gin.Context) {
	reqs, err := h.usecase.ListByEngagement(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRecurrenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	out := make([]response.RecurrenceRequestResponse, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, response.FromRecurrenceRequest(req))
	}
	c.JSON(http.StatusOK, out)
}

// UnavailableWeekdays lets clients disable weekdays up front instead of
// learning about them through a rejection.
func (h *RecurrenceHandler) UnavailableWeekdays(c *gin.Context) {
	days, err := h.usecase.UnavailableWeekdays(c.Request.Context())
	if err != nil {
		appErr := mapRecurrenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if days == nil {
		days = []int{}
	}
	c.JSON(http.StatusOK, gin.H{"unavailable_weekdays": days})
}

func mapRecurrenceError(err error) *pkg.AppError {
	var unavailableErr *usecase.UnavailableWeekdayError
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidEngagementID),
		errors.Is(err, usecase.ErrInvalidRecurrenceRequestID),
		errors.Is(err, usecase.ErrInvalidFrequency),
		errors.Is(err, usecase.ErrInvalidWeekday):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &unavailableErr):
		return pkg.NewDomainError("WEEKDAY_UNAVAILABLE", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEngagementNotFound):
		return pkg.NewDomainErrorSimple("ENGAGEMENT_NOT_FOUND", "Engagement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecurrenceRequestNotFound):
		return pkg.NewDomainErrorSimple("RECURRENCE_REQUEST_NOT_FOUND", "Recurrence request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRecurrenceAlreadyResolved):
		return pkg.NewDomainErrorSimple("RECURRENCE_ALREADY_RESOLVED", "Recurrence request already resolved", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
