package interfaces

import "context"

// CheckoutSessionParams describes the single line item handed to the payment
// processor. AmountCents is the breakdown total converted to minor currency
// units; SuccessURL embeds the session placeholder token and the reservation
// id so both the client and the processor can reference the reservation.
type CheckoutSessionParams struct {
	ReservationID string
	Title         string
	AmountCents   int64
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the processor's representation of the pending payment.
type CheckoutSession struct {
	ID          string
	RedirectURL string
}

// IPaymentGateway abstracts the external payment processor (Mercado Pago
// Checkout). The processor is trusted to echo the reservation id back in the
// webhook's external reference; no session id is stored on the reservation.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (CheckoutSession, error)
}

// EventCheckoutCompleted is the only webhook event kind that mutates a
// reservation. Any other kind is acknowledged and counted, nothing more.
const EventCheckoutCompleted = "checkout.session.completed"

// WebhookEvent is the parsed body of a payment-processor callback. The
// handler verifies the signature over the raw body before parsing.
type WebhookEvent struct {
	ID   string           `json:"id"`
	Type string           `json:"type"`
	Data WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID                string `json:"id"`
	ExternalReference string `json:"external_reference"`
	Status            string `json:"status"`
}
