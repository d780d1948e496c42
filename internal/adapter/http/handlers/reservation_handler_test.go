package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentora/internal/adapter/http/handlers/mocks"
	"rentora/internal/domain/entities"
	"rentora/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestReservationHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IReservationUseCase) *gin.Engine {
		h := NewReservationHandler(uc)
		r := gin.New()
		r.PATCH("/v1/bookings/:id/status", asActor("landlord-1", entities.RoleLandlord), h.UpdateStatus)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/res-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("foreign housing mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), usecase.Actor{UserID: "landlord-1", Role: entities.RoleLandlord}, "res-1", entities.ReservationStatusConfirmed).
			Return(entities.Reservation{}, usecase.ErrNotHousingOwner)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/res-1/status", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("not found mapped to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "res-404", entities.ReservationStatusCancelled).
			Return(entities.Reservation{}, usecase.ErrReservationNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/res-404/status", bytes.NewBufferString(`{"status":"cancelled"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("terminal state mapped to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "res-1", entities.ReservationStatusConfirmed).
			Return(entities.Reservation{}, usecase.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/res-1/status", bytes.NewBufferString(`{"status":"confirmed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success normalizes status casing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		updated := entities.Reservation{ID: "res-1", Status: entities.ReservationStatusCancelled}
		uc.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), "res-1", entities.ReservationStatusCancelled).Return(updated, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/bookings/res-1/status", bytes.NewBufferString(`{"status":" Cancelled "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if body := w.Body.String(); !bytes.Contains([]byte(body), []byte("Booking status updated")) {
			t.Fatalf("expected confirmation message, got %s", body)
		}
	})
}

func TestReservationHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.IReservationUseCase) *gin.Engine {
		h := NewReservationHandler(uc)
		r := gin.New()
		r.GET("/v1/bookings/:id", asActor("tenant-1", entities.RoleTenant), h.GetByID)
		return r
	}

	t.Run("access denied mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), gomock.Any(), "res-1").Return(entities.Reservation{}, usecase.ErrReservationAccessDenied)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/res-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIReservationUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().GetByID(gomock.Any(), usecase.Actor{UserID: "tenant-1", Role: entities.RoleTenant}, "res-1").
			Return(entities.Reservation{ID: "res-1", TenantID: "tenant-1"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/res-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestReservationHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIReservationUseCase(ctrl)
	h := NewReservationHandler(uc)

	r := gin.New()
	r.GET("/v1/bookings", asActor("tenant-1", entities.RoleTenant), h.List)

	t.Run("success", func(t *testing.T) {
		uc.EXPECT().ListByTenant(gomock.Any(), usecase.Actor{UserID: "tenant-1", Role: entities.RoleTenant}).
			Return([]entities.Reservation{{ID: "res-1"}, {ID: "res-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("repo failure mapped to 500", func(t *testing.T) {
		uc.EXPECT().ListByTenant(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
