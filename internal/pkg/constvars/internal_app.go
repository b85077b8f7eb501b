package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_ADMIN_IDENTITY_KEY       ContextKey = "admin_identity"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "MDBK_SVC_"
)

const (
	MongoCollectionUsers        = "users"
	MongoCollectionDoctors      = "doctors"
	MongoCollectionAppointments = "appointments"
)

const (
	RoleTypePatient = "patient"
	RoleTypeDoctor  = "doctor"
	RoleTypeAdmin   = "admin"
)

const (
	// Slot keys use the original frontend wire format: dates as
	// "day_month_year" and times as "hh:mm am/pm".
	SlotLockKeyFormat = "slot-lock:%s:%s:%s"

	SessionKeyFormat = "session:%s"

	DashboardLatestAppointmentsLimit = 5
)

const (
	GatewayEventPaymentSucceeded = "payment_intent.succeeded"
)

const (
	AppointmentEventBooked    = "appointment.booked"
	AppointmentEventCancelled = "appointment.cancelled"
	AppointmentEventCompleted = "appointment.completed"
	AppointmentEventPaid      = "appointment.paid"
)
