package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":  "is required",
	"email":     "must be a valid email",
	"min":       "must be at least %s characters long",
	"max":       "maximum at %s characters long",
	"numeric":   "must be a number",
	"oneof":     "must be one of [%s]",
	"gt":        "must be greater than %s",
	"gte":       "must be greater than or equal to %s",
	"password":  "must be at least 8 characters long, contain at least one uppercase letter, one digit, and one special character",
	"slot_date": "must be a day_month_year date",
	"slot_time": "must be an hh:mm am/pm time",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
}

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process your request, please check your input"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "not authorized, login again"
	ErrClientNotLoggedIn                   = "you are not logged in, please login first"
	ErrClientEmailAlreadyExists            = "email already registered"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientDoctorNotAvailable            = "doctor not available"
	ErrClientSlotAlreadyBooked             = "slot already booked"
	ErrClientSlotBeingBooked               = "slot is being booked by someone else, please try again"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientNotAppointmentOwner           = "not authorized for this appointment"
	ErrClientAppointmentCancelled          = "appointment cancelled or not found"
	ErrClientInvalidImageFormat            = "invalid image, please upload a jpg, jpeg, or png file"
	ErrClientImageTooLarge                 = "image exceeds the maximum allowed size"
	ErrClientServerLongRespond             = "server takes too long to respond, please try again later"
	ErrClientInvalidWebhookSignature       = "invalid webhook signature"
)

// Developer-facing messages
const (
	ErrDevValidationFailed          = "request validation failed"
	ErrDevImageValidationFailed     = "image validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON request body"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form"
	ErrDevCannotMarshalJSON         = "cannot marshal value to JSON"
	ErrDevInvalidInput              = "invalid input"
	ErrDevMissingRequestID          = "request ID not found in request context"
	ErrDevMissingSessionData        = "session data not found in request context"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevInvalidCredentials        = "credentials do not match any record"
	ErrDevEmailAlreadyExists        = "email already exists in users collection"
	ErrDevDoctorEmailAlreadyExists  = "email already exists in doctors collection"
	ErrDevUserNotExists             = "user does not exist"
	ErrDevDoctorNotExists           = "doctor does not exist"
	ErrDevDoctorNotAvailable        = "doctor is flagged unavailable"
	ErrDevSlotAlreadyBooked         = "requested slot already present in doctor slot map"
	ErrDevSlotLockNotAcquired       = "could not acquire slot reservation lock"
	ErrDevSlotWriteConflict         = "slot map update matched no document, slot taken concurrently"
	ErrDevAppointmentNotExists      = "appointment does not exist"
	ErrDevAppointmentNotOwned       = "appointment does not belong to the caller"
	ErrDevAppointmentCancelled      = "appointment is already cancelled"
	ErrDevAuthTokenMissing          = "authorization token missing from request headers"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "failed to sign JWT token"
	ErrDevAuthInvalidSession        = "session not found or expired"
	ErrDevAuthAdminClaimMismatch    = "admin token claims do not match configured identity"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded while handling request"

	ErrDevDBFailedToFindDocument     = "mongodb failed to find document"
	ErrDevDBFailedToInsertDocument   = "mongodb failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "mongodb failed to update document"
	ErrDevDBFailedToDeleteDocument   = "mongodb failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb failed to iterate documents"
	ErrDevDBStringNotObjectID        = "string cannot be converted to mongodb ObjectID"

	ErrDevRedisSetData       = "redis failed to set data"
	ErrDevRedisGetData       = "redis failed to get data"
	ErrDevRedisDeleteData    = "redis failed to delete data"
	ErrDevRedisGetNoData     = "redis has no data for key %s"
	ErrDevRedisReleaseLock   = "redis failed to release lock"
	ErrDevRedisStoreSession  = "redis failed to store session"
	ErrDevRedisLockNotOwned  = "lock is not owned by this client"
	ErrDevRedisLockSetFailed = "redis failed to set lock key"

	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"

	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"

	ErrDevGatewayCreateIntent      = "payment gateway failed to create payment intent"
	ErrDevGatewayBuildRequest      = "failed to build payment gateway request"
	ErrDevGatewayDecodeResponse    = "failed to decode payment gateway response"
	ErrDevGatewayThrottled         = "payment gateway client-side rate limit wait failed"
	ErrDevGatewayInvalidSignature  = "webhook signature verification failed"
	ErrDevGatewayUnexpectedPayload = "webhook payload missing required fields"
)
