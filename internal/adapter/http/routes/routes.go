package routes

import (
	"log"
	"os"
	"strconv"

	_ "rentora/docs" // This will be auto-generated
	"rentora/internal/adapter/http/handlers"
	"rentora/internal/adapter/http/middleware"
	repository2 "rentora/internal/adapter/persistence/repository"
	"rentora/internal/domain/entities"
	"rentora/internal/events"
	"rentora/internal/idempotency"
	"rentora/internal/infrastructure/config"
	"rentora/internal/infrastructure/database"
	"rentora/internal/infrastructure/payments"
	"rentora/internal/metrics"
	"rentora/internal/usecase"
	"rentora/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	ddb := database.ConnectDynamoDB()

	reservationRepo := repository2.NewReservationDynamoRepository(ddb)
	housingRepo := repository2.NewHousingDynamoRepository(ddb)

	metrics.Register()
	bus := events.New(zerolog.New(os.Stdout).With().Timestamp().Str("component", "events").Logger())
	registerMetricSubscribers(bus)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var idemStore idempotency.Store
	if cfg.RedisAddr != "" {
		idemStore = idempotency.NewRedisStore(cfg.RedisAddr)
	} else {
		idemStore = idempotency.NewMemoryStore()
	}

	rates := config.NewEnvRateSource()

	checkoutUseCase := usecase.NewCheckoutUseCase(reservationRepo, housingRepo, paymentGateway, bus, rates, idemStore, cfg.FrontendBaseURL)
	confirmationUseCase := usecase.NewConfirmationUseCase(reservationRepo, housingRepo, bus, rates)
	reservationUseCase := usecase.NewReservationUseCase(reservationRepo, housingRepo, bus)

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(confirmationUseCase, cfg.WebhookSecret)
	reservationHandler := handlers.NewReservationHandler(reservationUseCase)

	auth := middleware.NewAuthMiddleware(cfg.JWTSecret)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, auth, checkoutHandler, reservationHandler, webhookHandler)
}

// registerMetricSubscribers feeds the booking counters from the event bus.
// A landlord's manual confirmation counts as a confirmed booking the same as
// a payment-webhook one.
func registerMetricSubscribers(bus *events.Bus) {
	bus.On(events.BookingCreated, func(any) { metrics.IncBookingCreated() })
	bus.On(events.BookingConfirmed, func(any) { metrics.IncBookingConfirmed() })
	bus.On(events.BookingStatusUpdated, func(p any) {
		payload, ok := p.(events.BookingStatusUpdatedPayload)
		if ok && payload.Status == string(entities.ReservationStatusConfirmed) {
			metrics.IncBookingConfirmed()
		}
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
