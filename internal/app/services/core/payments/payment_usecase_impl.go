package payments

import (
	"context"
	"sync"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	GatewayService        contracts.PaymentGatewayService
	SessionService        contracts.SessionService
	EventPublisher        contracts.AppointmentEventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

func NewPaymentUsecase(
	appointmentMongoRepository contracts.AppointmentRepository,
	gatewayService contracts.PaymentGatewayService,
	sessionService contracts.SessionService,
	eventPublisher contracts.AppointmentEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			AppointmentRepository: appointmentMongoRepository,
			GatewayService:        gatewayService,
			SessionService:        sessionService,
			EventPublisher:        eventPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, sessionData string, request *requests.CreatePaymentIntent) (*responses.PaymentIntent, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePaymentIntent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil || appointment.Cancelled {
		return nil, exceptions.ErrAppointmentCancelled(nil)
	}
	if appointment.UserID != session.UserID {
		return nil, exceptions.ErrNotAppointmentOwner(nil)
	}

	// The gateway expects the smallest currency unit.
	intentRequest := &requests.PaymentIntentRequest{
		Amount:        appointment.Amount * 100,
		Currency:      uc.InternalConfig.PaymentGateway.Currency,
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
	}

	intentResponse, err := uc.GatewayService.CreatePaymentIntent(ctx, intentRequest)
	if err != nil {
		uc.Log.Error("paymentUsecase.CreatePaymentIntent error from gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.CreatePaymentIntent succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return &responses.PaymentIntent{ClientSecret: intentResponse.ClientSecret}, nil
}

// ConfirmPayment flips the payment flag on the appointment named by a
// verified gateway webhook. The flag never flows from client input.
func (uc *paymentUsecase) ConfirmPayment(ctx context.Context, rawBody []byte, signature string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ConfirmPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.GatewayService.VerifyWebhookSignature(rawBody, signature); err != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment invalid signature",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	webhook := new(requests.GatewayWebhook)
	if err := json.Unmarshal(rawBody, webhook); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if webhook.EventType != constvars.GatewayEventPaymentSucceeded {
		uc.Log.Info("paymentUsecase.ConfirmPayment ignoring event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, webhook.EventType),
		)
		return nil
	}
	if webhook.AppointmentID == "" {
		return exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevGatewayUnexpectedPayload)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, webhook.AppointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotExist(nil)
	}
	if appointment.Cancelled {
		return exceptions.ErrAppointmentCancelled(nil)
	}

	err = uc.AppointmentRepository.SetPaid(ctx, appointment.ID)
	if err != nil {
		return err
	}

	event := &contracts.AppointmentEvent{
		ID:            uuid.NewString(),
		Type:          constvars.AppointmentEventPaid,
		AppointmentID: appointment.ID,
		UserID:        appointment.UserID,
		DoctorID:      appointment.DoctorID,
		SlotDate:      appointment.SlotDate,
		SlotTime:      appointment.SlotTime,
		Amount:        appointment.Amount,
	}
	if publishErr := uc.EventPublisher.Publish(ctx, event); publishErr != nil {
		uc.Log.Error("paymentUsecase.ConfirmPayment error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(publishErr),
		)
	}

	uc.Log.Info("paymentUsecase.ConfirmPayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return nil
}
