package handlers

import (
	"errors"
	"net/http"
	"time"

	request "fieldpilot/internal/adapter/http/dto/request"
	response "fieldpilot/internal/adapter/http/dto/response"
	"fieldpilot/internal/domain/entities"
	"fieldpilot/internal/usecase"
	"fieldpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBlockPayload = pkg.NewDomainErrorSimple("INVALID_BLOCK_INPUT", "Invalid calendar block payload", http.StatusBadRequest)
)

// AvailabilityHandler serves the derived availability view, the raw event
// list, the subscribable calendar feed and the manual time blocks.

type AvailabilityHandler struct {
	usecase usecase.IAvailabilityUseCase
}

func NewAvailabilityHandler(uc usecase.IAvailabilityUseCase) *AvailabilityHandler {
	return &AvailabilityHandler{usecase: uc}
}

// Availability returns the owner-scoped view when owner_id is supplied and
// the global admin view otherwise.
func (h *AvailabilityHandler) Availability(c *gin.Context) {
	ownerID := c.Query("owner_id")

	var (
		av  usecase.Availability
		err error
	)
	if ownerID == "" {
		av, err = h.usecase.Global(c.Request.Context())
	} else {
		av, err = h.usecase.ForOwner(c.Request.Context(), ownerID)
	}
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, av)
}

func (h *AvailabilityHandler) ListEvents(c *gin.Context) {
	evs, err := h.usecase.ListEvents(c.Request.Context(), c.Query("owner_id"))
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCalendarEvents(evs))
}

// CalendarFeed renders the events as text/calendar so owners can subscribe
// from their calendar app of choice.
func (h *AvailabilityHandler) CalendarFeed(c *gin.Context) {
	evs, err := h.usecase.ListEvents(c.Request.Context(), c.Query("owner_id"))
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(response.ICSFromEvents(evs, time.Now())))
}

func (h *AvailabilityHandler) CreateBlock(c *gin.Context) {
	var payload request.CalendarBlockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBlockPayload.HTTPStatus, errInvalidBlockPayload.ToHTTPError())
		return
	}

	ev, err := h.usecase.CreateBlock(
		c.Request.Context(),
		payload.Title,
		entities.CalendarEventType(payload.Type),
		payload.OwnerID,
		payload.Start,
		payload.End,
	)
	if err != nil {
		appErr := mapAvailabilityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromCalendarEvent(ev))
}

func mapAvailabilityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOwnerID),
		errors.Is(err, usecase.ErrInvalidEventTitle),
		errors.Is(err, usecase.ErrInvalidEventType),
		errors.Is(err, usecase.ErrInvalidEventSpan):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
