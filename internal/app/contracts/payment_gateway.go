package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, request *requests.PaymentIntentRequest) (*responses.PaymentIntentResponse, error)
	// VerifyWebhookSignature checks the HMAC signature attached to a
	// webhook delivery against the raw body.
	VerifyWebhookSignature(rawBody []byte, signature string) error
}
