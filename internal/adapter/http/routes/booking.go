package routes

import (
	"rentora/internal/adapter/http/handlers"
	"rentora/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPayments = "/payments"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	auth *middleware.AuthMiddleware,
	checkoutHandler *handlers.CheckoutHandler,
	reservationHandler *handlers.ReservationHandler,
	webhookHandler *handlers.WebhookHandler,
) {
	bookings := rg.Group(PathBookings, auth.RequireAuth())
	{
		bookings.POST("/checkout", checkoutHandler.CreateCheckout)
		bookings.GET("", reservationHandler.List)
		bookings.GET("/:id", reservationHandler.GetByID)
		bookings.PATCH("/:id/status", reservationHandler.UpdateStatus)
	}

	payments := rg.Group(PathPayments)
	{
		// Authenticated by HMAC signature, not by JWT.
		payments.POST("/webhook", webhookHandler.HandleWebhook)
	}
}
