package paymentgateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var (
	gatewayServiceInstance contracts.PaymentGatewayService
	onceGatewayService     sync.Once
)

type gatewayService struct {
	BaseUrl       string
	ApiKey        string
	WebhookSecret string
	HttpClient    *http.Client
	Limiter       *rate.Limiter
	Log           *zap.Logger
}

func NewGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	onceGatewayService.Do(func() {
		instance := &gatewayService{
			BaseUrl:       internalConfig.PaymentGateway.BaseUrl,
			ApiKey:        internalConfig.PaymentGateway.ApiKey,
			WebhookSecret: internalConfig.PaymentGateway.WebhookSecret,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(rate.Limit(internalConfig.PaymentGateway.MaxRequestsPerSecond), internalConfig.PaymentGateway.MaxRequestsPerSecond),
			Log:     logger,
		}
		gatewayServiceInstance = instance
	})
	return gatewayServiceInstance
}

func (s *gatewayService) CreatePaymentIntent(ctx context.Context, request *requests.PaymentIntentRequest) (*responses.PaymentIntentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("gatewayService.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, exceptions.BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevGatewayThrottled)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrGatewayBuildRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpReq.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.ApiKey)

	resp, err := s.HttpClient.Do(httpReq)
	if err != nil {
		s.Log.Error("gatewayService.CreatePaymentIntent error from gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrGatewayCreateIntent(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, exceptions.ErrGatewayCreateIntent(fmt.Errorf("gateway returned status %d", resp.StatusCode))
	}

	intentResponse := new(responses.PaymentIntentResponse)
	if err := json.NewDecoder(resp.Body).Decode(intentResponse); err != nil {
		return nil, exceptions.ErrGatewayDecodeResponse(err)
	}

	s.Log.Info("gatewayService.CreatePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return intentResponse, nil
}

// VerifyWebhookSignature checks the hex-encoded HMAC-SHA256 of the raw
// body against the signature header sent by the gateway.
func (s *gatewayService) VerifyWebhookSignature(rawBody []byte, signature string) error {
	mac := hmac.New(sha256.New, []byte(s.WebhookSecret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return exceptions.ErrGatewayInvalidSignature(fmt.Errorf("signature mismatch"))
	}
	return nil
}
