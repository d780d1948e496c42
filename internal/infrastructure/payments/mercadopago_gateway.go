package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"rentora/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates Checkout Pro preferences: one line item, the
// reservation id as external_reference so the completion webhook can be
// reconciled, and the redirect URL (init point) handed back to the client.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreateCheckoutSession(ctx context.Context, params interfaces.CheckoutSessionParams) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("mock-%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock session created session_id=%s reservation_id=%s amount_cents=%d", id, params.ReservationID, params.AmountCents)
		return interfaces.CheckoutSession{
			ID:          id,
			RedirectURL: strings.Replace(params.SuccessURL, "{CHECKOUT_SESSION_ID}", id, 1),
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] create session start reservation_id=%s amount_cents=%d", params.ReservationID, params.AmountCents)

	// Mercado Pago takes major units; AmountCents is the integer contract
	// with the usecase layer.
	unitPrice := float64(params.AmountCents) / 100

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:        params.ReservationID,
				Title:     params.Title,
				Quantity:  1,
				UnitPrice: unitPrice,
			},
		},
		ExternalReference: params.ReservationID,
		BackURLs: &preference.BackURLsRequest{
			Success: params.SuccessURL,
			Pending: params.SuccessURL,
			Failure: params.CancelURL,
		},
		AutoReturn: "approved",
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reservation_id=%s err=%v", params.ReservationID, err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[payment][gateway] create session success session_id=%s reservation_id=%s", resp.ID, params.ReservationID)
	return interfaces.CheckoutSession{ID: resp.ID, RedirectURL: resp.InitPoint}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
