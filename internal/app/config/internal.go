package config

type InternalConfig struct {
	App            App
	JWT            AppJWT
	Admin          AppAdmin
	Minio          AppMinio
	RabbitMQ       AppRabbitMQ
	Booking        AppBooking
	PaymentGateway AppPaymentGateway
}

type App struct {
	Env                            string
	Port                           string
	Version                        string
	Address                        string
	Timezone                       string
	EndpointPrefix                 string
	MaxRequests                    int
	ShutdownTimeoutInSeconds       int
	MaxTimeRequestsPerSeconds      int
	RequestBodyLimitInMegabyte     int
	LoginSessionExpiredTimeInHours int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

// AppAdmin holds the single configured admin console identity. Admins
// have no database record, login compares against these values.
type AppAdmin struct {
	Email    string
	Password string
}

type AppMinio struct {
	BucketName                      string
	PublicBaseUrl                   string
	ProfilePictureMaxUploadSizeInMB int64
}

type AppRabbitMQ struct {
	AppointmentEventsQueue    string
	AppointmentEventsDLQ      string
	AppointmentEventsExchange string
}

type AppBooking struct {
	// SlotLockTTLInSeconds bounds how long a slot reservation lock may
	// be held before Redis expires it on its own.
	SlotLockTTLInSeconds int
}

type AppPaymentGateway struct {
	BaseUrl                 string
	ApiKey                  string
	WebhookSecret           string
	Currency                string
	RequestTimeoutInSeconds int
	MaxRequestsPerSecond    int
}
