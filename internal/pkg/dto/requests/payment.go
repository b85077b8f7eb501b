package requests

type CreatePaymentIntent struct {
	AppointmentID string `json:"appointmentId" validate:"required"`
}

// PaymentIntentRequest is the outbound gateway request. Amount is in the
// smallest currency unit.
type PaymentIntentRequest struct {
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
}

// GatewayWebhook is the confirmation callback payload delivered by the
// payment gateway after a successful charge.
type GatewayWebhook struct {
	EventType     string `json:"event_type"`
	IntentID      string `json:"intent_id"`
	AppointmentID string `json:"appointment_id"`
	UserID        string `json:"user_id"`
	Amount        int64  `json:"amount"`
}
