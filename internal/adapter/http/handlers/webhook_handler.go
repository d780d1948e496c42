package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"rentora/internal/infrastructure/payments"
	"rentora/internal/metrics"
	"rentora/internal/usecase"
	"rentora/internal/usecase/interfaces"
	"rentora/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles payment-processor callbacks. The route is public;
// authenticity rests entirely on the HMAC signature header.

type WebhookHandler struct {
	usecase usecase.IConfirmationUseCase
	secret  string
}

func NewWebhookHandler(uc usecase.IConfirmationUseCase, secret string) *WebhookHandler {
	return &WebhookHandler{usecase: uc, secret: secret}
}

// HandleWebhook verifies the signature and hands the event to the
// confirmation usecase. After the signature passes, the processor always
// gets a 200 ack: surfacing internal failures would only trigger redelivery
// of an event we already accepted.
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	if h.secret == "" {
		log.Printf("[webhook][handler] webhook secret not configured")
		appErr := pkg.NewDomainErrorSimple("WEBHOOK_NOT_CONFIGURED", "Webhook secret not configured", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := payments.VerifyWebhookSignature(raw, c.GetHeader(payments.SignatureHeader), h.secret); err != nil {
		log.Printf("[webhook][handler] signature rejected err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var evt interfaces.WebhookEvent
	if err := json.Unmarshal(raw, &evt); err != nil {
		log.Printf("[webhook][handler] undecodable payload err=%v", err)
		metrics.IncWebhookFailure()
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	log.Printf("[webhook][handler] event received event_id=%s type=%s", evt.ID, evt.Type)

	if err := h.usecase.ProcessEvent(c.Request.Context(), evt); err != nil {
		log.Printf("[webhook][handler] processing failed event_id=%s err=%v", evt.ID, err)
		metrics.IncWebhookFailure()
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
