package routes

import (
	"fieldpilot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEngagements        = "/engagements"
	PathAvailability       = "/availability"
	PathCalendar           = "/calendar"
	PathRecurrenceRequests = "/recurrence-requests"
	PathWebhooks           = "/webhooks"
)

func addPortalRoutes(
	rg *gin.RouterGroup,
	engagementHandler *handlers.EngagementHandler,
	availabilityHandler *handlers.AvailabilityHandler,
	recurrenceHandler *handlers.RecurrenceHandler,
	webhookHandler *handlers.BillingWebhookHandler,
) {
	engagements := rg.Group(PathEngagements)
	{
		engagements.POST("", engagementHandler.Create)
		engagements.GET("", engagementHandler.List)
		engagements.GET("/:id", engagementHandler.GetByID)
		engagements.POST("/:id/send", engagementHandler.Send)
		engagements.POST("/:id/accept", engagementHandler.Accept)
		engagements.POST("/:id/decline", engagementHandler.Decline)
		engagements.POST("/:id/revise", engagementHandler.RequestRevision)
		engagements.POST("/:id/cancel", engagementHandler.Cancel)
		engagements.POST("/:id/overdue", engagementHandler.MarkOverdue)
		engagements.POST("/:id/paid", engagementHandler.MarkPaid)
		engagements.POST("/:id/payment-intent", engagementHandler.CreatePaymentIntent)
		engagements.PUT("/:id/items", engagementHandler.UpdateItems)
		engagements.GET("/:id/recurrence-requests", recurrenceHandler.ListByEngagement)
	}

	rg.GET(PathAvailability, availabilityHandler.Availability)

	calendar := rg.Group(PathCalendar)
	{
		calendar.GET("/events", availabilityHandler.ListEvents)
		calendar.GET("/feed", availabilityHandler.CalendarFeed)
		calendar.POST("/blocks", availabilityHandler.CreateBlock)
	}

	recurrence := rg.Group(PathRecurrenceRequests)
	{
		recurrence.POST("", recurrenceHandler.Submit)
		recurrence.GET("/unavailable-weekdays", recurrenceHandler.UnavailableWeekdays)
		recurrence.POST("/:id/accept", recurrenceHandler.Accept)
		recurrence.POST("/:id/decline", recurrenceHandler.Decline)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/billing", webhookHandler.Receive)
	}
}
