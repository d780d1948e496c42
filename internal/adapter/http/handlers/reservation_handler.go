package handlers

import (
	"errors"
	"log"
	"net/http"
	request "rentora/internal/adapter/http/dto/request"
	response "rentora/internal/adapter/http/dto/response"
	"rentora/internal/adapter/http/middleware"
	"rentora/internal/domain/entities"
	"rentora/internal/usecase"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)

// ReservationHandler handles HTTP requests for reservation reads and the
// landlord's manual status override.

type ReservationHandler struct {
	usecase usecase.IReservationUseCase
}

func NewReservationHandler(uc usecase.IReservationUseCase) *ReservationHandler {
	return &ReservationHandler{usecase: uc}
}

// UpdateStatus lets the owning landlord confirm or cancel a pending
// reservation without going through the payment processor.
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reservationID := c.Param("id")

	var payload request.ReservationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	log.Printf("[reservation][handler] update-status start reservation_id=%s status=%s user_id=%s", reservationID, payload.ResolveStatus(), actor.UserID)

	updated, err := h.usecase.UpdateStatus(c.Request.Context(), actor, reservationID, entities.ReservationStatus(payload.ResolveStatus()))
	if err != nil {
		log.Printf("[reservation][handler] update-status failed reservation_id=%s err=%v", reservationID, err)
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[reservation][handler] update-status success reservation_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking status updated",
		"booking": response.FromReservation(updated),
	})
}

// GetByID returns a single reservation to the tenant who booked it or the
// landlord owning the housing.
func (h *ReservationHandler) GetByID(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reservationID := c.Param("id")

	reservation, err := h.usecase.GetByID(c.Request.Context(), actor, reservationID)
	if err != nil {
		log.Printf("[reservation][handler] get failed reservation_id=%s err=%v", reservationID, err)
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservation(reservation))
}

// List returns the authenticated tenant's reservations.
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reservations, err := h.usecase.ListByTenant(c.Request.Context(), actor)
	if err != nil {
		log.Printf("[reservation][handler] list failed user_id=%s err=%v", actor.UserID, err)
		appErr := mapReservationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromReservations(reservations))
}

func mapReservationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReservationID), errors.Is(err, usecase.ErrInvalidStatusValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotLandlord), errors.Is(err, usecase.ErrNotHousingOwner):
		return pkg.NewDomainErrorSimple("LANDLORD_OWNERSHIP_REQUIRED", "Only the landlord owning the housing can update this booking", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotTenant), errors.Is(err, usecase.ErrReservationAccessDenied):
		return pkg.NewDomainErrorSimple("BOOKING_ACCESS_DENIED", "Booking access denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrReservationNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("BOOKING_STATUS_LOCKED", "Booking is not pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
