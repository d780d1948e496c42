package handlers

import (
	"bytes"
	"context"
	"encoding/json"
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

func asActor(userID string, role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("user_role", role)
	}
}

func TestCheckoutHandler_CreateCheckout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc usecase.ICheckoutUseCase, role entities.Role) *gin.Engine {
		h := NewCheckoutHandler(uc)
		r := gin.New()
		r.POST("/v1/bookings/checkout", asActor("tenant-1", role), h.CreateCheckout)
		return r
	}

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		h := NewCheckoutHandler(uc)

		r := gin.New()
		r.POST("/v1/bookings/checkout", h.CreateCheckout)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc, entities.RoleTenant)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparseable dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc, entities.RoleTenant)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString(`{"housing_id":"h-1","start_date":"01/09/2025","end_date":"2025-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-tenant mapped to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc, entities.RoleLandlord)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrNotTenant)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString(`{"housing_id":"h-1","start_date":"2025-09-01","end_date":"2025-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("housing not found mapped to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc, entities.RoleTenant)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, usecase.ErrHousingNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString(`{"housing_id":"h-404","start_date":"2025-09-01","end_date":"2025-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success passes idempotency key through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc, entities.RoleTenant)

		uc.EXPECT().CreateSession(gomock.Any(), usecase.Actor{UserID: "tenant-1", Role: entities.RoleTenant}, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ usecase.Actor, in usecase.CheckoutInput) (usecase.CheckoutResult, error) {
				if in.HousingID != "h-1" {
					t.Fatalf("unexpected housing id %q", in.HousingID)
				}
				if in.IdempotencyKey != "key-1" {
					t.Fatalf("expected idempotency key, got %q", in.IdempotencyKey)
				}
				return usecase.CheckoutResult{
					SessionID:   "sess-1",
					RedirectURL: "https://pay.example/sess-1",
					Reservation: entities.Reservation{ID: "res-1", Status: entities.ReservationStatusPending, TotalAmount: 2100},
				}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString(`{"housing_id":" h-1 ","start_date":"2025-09-01","end_date":"2025-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if string(body["session_id"]) != `"sess-1"` {
			t.Fatalf("unexpected session id: %s", body["session_id"])
		}
		if string(body["url"]) != `"https://pay.example/sess-1"` {
			t.Fatalf("unexpected redirect url: %s", body["url"])
		}
		if _, ok := body["reservation"]; !ok {
			t.Fatalf("expected reservation in body: %s", w.Body.String())
		}
	})

	t.Run("internal error mapped to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICheckoutUseCase(ctrl)
		r := newRouter(uc, entities.RoleTenant)

		uc.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.CheckoutResult{}, errors.New("gateway down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", bytes.NewBufferString(`{"housing_id":"h-1","start_date":"2025-09-01","end_date":"2025-10-01"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
