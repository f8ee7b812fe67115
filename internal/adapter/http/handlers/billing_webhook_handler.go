package handlers

import (
	"log"
	"net/http"

	request "fieldpilot/internal/adapter/http/dto/request"
	"fieldpilot/internal/usecase"
	"fieldpilot/pkg"

	"github.com/gin-gonic/gin"
)

// BillingWebhookHandler receives asynchronous provider events.
//
// The contract with the provider is acknowledge-or-redeliver: anything the
// reconciler classifies as an anomaly is acknowledged with 200 so the
// provider stops retrying, and only a store failure returns 500 to request
// redelivery.

type BillingWebhookHandler struct {
	usecase usecase.IBillingEventUseCase
}

func NewBillingWebhookHandler(uc usecase.IBillingEventUseCase) *BillingWebhookHandler {
	return &BillingWebhookHandler{usecase: uc}
}

func (h *BillingWebhookHandler) Receive(c *gin.Context) {
	var payload request.BillingWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ev, err := payload.ToBillingEvent()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK", "Invalid webhook envelope", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.Apply(c.Request.Context(), ev); err != nil {
		log.Printf("[billing][webhook] apply failed kind=%s subject=%s err=%v", ev.Kind, ev.SubjectID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
