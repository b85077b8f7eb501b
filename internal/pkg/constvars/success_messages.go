package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Auth messages
	RegisterSuccess = "registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Profile messages
	GetProfileSuccess    = "get profile successfully"
	UpdateProfileSuccess = "profile updated successfully"

	// Doctor / admin messages
	DoctorAddedSuccess         = "doctor added successfully"
	GetDoctorsSuccess          = "get doctors successfully"
	AvailabilityChangedSuccess = "availability changed"

	// Appointment messages
	AppointmentBookedSuccess    = "appointment booked successfully"
	AppointmentCancelledSuccess = "appointment cancelled"
	AppointmentCompletedSuccess = "appointment completed"
	GetAppointmentsSuccess      = "get appointments successfully"
	GetDashboardSuccess         = "get dashboard successfully"

	// Payment messages
	PaymentIntentCreatedSuccess = "payment intent created"
	PaymentConfirmedSuccess     = "payment confirmed"
)
