package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// The webhook endpoint is unauthenticated on purpose: the gateway signs
// every delivery and the signature is verified against the raw body.
func attachPaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Post("/webhook", paymentController.GatewayWebhook)
}
