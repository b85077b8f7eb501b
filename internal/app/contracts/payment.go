package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, sessionData string, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error)
	// ConfirmPayment handles the gateway's confirmation callback. The
	// rawBody and signature come straight off the webhook request.
	ConfirmPayment(ctx context.Context, rawBody []byte, signature string) error
}
