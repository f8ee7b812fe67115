package routes

import (
	_ "fieldpilot/docs" // This will be auto-generated
	"fieldpilot/internal/adapter/http/handlers"
	repository2 "fieldpilot/internal/adapter/persistence/repository"
	"fieldpilot/internal/infrastructure/database"
	"fieldpilot/internal/infrastructure/notifications"
	"fieldpilot/internal/infrastructure/payments"
	"fieldpilot/internal/infrastructure/settings"
	"fieldpilot/internal/usecase"
	"fieldpilot/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	engagementRepo := repository2.NewEngagementDynamoRepository(ddb)
	eventRepo := repository2.NewCalendarEventDynamoRepository(ddb)
	recurrenceRepo := repository2.NewRecurrenceRequestDynamoRepository(ddb)

	dispatcher := notifications.NewAsyncDispatcher(256, nil)
	scheduleSettings := settings.NewEnvScheduleSettings()

	var billingProvider interfaces.IBillingProvider
	mpProvider, err := payments.NewMercadoPagoProvider(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago provider not configured: %v", err)
	} else {
		billingProvider = mpProvider
	}

	engagementUseCase := usecase.NewEngagementUseCase(engagementRepo, dispatcher, billingProvider)
	availabilityUseCase := usecase.NewAvailabilityUseCase(eventRepo, engagementRepo)
	recurrenceUseCase := usecase.NewRecurrenceUseCase(recurrenceRepo, engagementRepo, scheduleSettings, dispatcher)
	billingEventUseCase := usecase.NewBillingEventUseCase(engagementRepo, dispatcher)

	engagementHandler := handlers.NewEngagementHandler(engagementUseCase)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityUseCase)
	recurrenceHandler := handlers.NewRecurrenceHandler(recurrenceUseCase)
	webhookHandler := handlers.NewBillingWebhookHandler(billingEventUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPortalRoutes(v1, engagementHandler, availabilityHandler, recurrenceHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
