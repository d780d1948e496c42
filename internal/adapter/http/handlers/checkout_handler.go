package handlers

import (
	"errors"
	"log"
	"net/http"
	request "rentora/internal/adapter/http/dto/request"
	response "rentora/internal/adapter/http/dto/response"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/usecase"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler handles HTTP requests for booking checkout sessions.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout prices a booking window, persists the pending reservation
// and returns the payment session to redirect the tenant to.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	start, end, err := payload.ResolveDates()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	log.Printf("[checkout][handler] create start tenant_id=%s housing_id=%s", actor.UserID, payload.ResolveHousingID())

	result, err := h.usecase.CreateSession(c.Request.Context(), actor, usecase.CheckoutInput{
		HousingID:      payload.ResolveHousingID(),
		StartDate:      start,
		EndDate:        end,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		log.Printf("[checkout][handler] create failed tenant_id=%s err=%v", actor.UserID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success reservation_id=%s session_id=%s replayed=%t", result.Reservation.ID, result.SessionID, result.Replayed)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHousingID), errors.Is(err, usecase.ErrInvalidBookingWindow):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotTenant):
		return pkg.NewDomainErrorSimple("TENANT_ROLE_REQUIRED", "Only tenants can book a housing", http.StatusForbidden)
	case errors.Is(err, usecase.ErrHousingNotFound):
		return pkg.NewDomainErrorSimple("HOUSING_NOT_FOUND", "Housing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
