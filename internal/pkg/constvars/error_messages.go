package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "unauthorized access"
	ErrClientForbiddenAccess               = "forbidden access"
	ErrClientNotLoggedIn                   = "you are not logged in or your session has expired"
	ErrClientServerLongRespond             = "server took too long to respond, please try again"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientTreatmentNotFound             = "treatment not found"
	ErrClientUserNotRegistered             = "user is not registered"
	ErrClientEmailAlreadyExists            = "email already exists"
	ErrClientUserNotFound                  = "user not found"
	ErrClientDoctorNotFound                = "doctor not found"
	ErrClientInvalidImageFormat            = "invalid image format"
	ErrClientPaymentGatewayFailed          = "payment could not be processed, please try again"
	ErrClientPaymentAlreadyRecorded        = "this payment has already been recorded"
	ErrClientBookingSystemBusy             = "the booking system is busy, please try again"
	ErrClientTooManyRequests               = "too many requests, please slow down"

	// Business rejections reported with success:false and HTTP 200.
	ErrClientBookingAlreadyExistsFormat = "you already have a booking on %s"
	ErrClientSlotUnavailableFormat      = "slot %s is no longer available"
)

// Developer messages
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse request body as JSON"
	ErrDevCannotMarshalJSON          = "cannot marshal value to JSON"
	ErrDevURLParamIDValidationFailed = "url parameter '%s' is not a valid identifier"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevMissingRequestID           = "request id not found in context"
	ErrDevMissingAuthEmail           = "authenticated email not found in context"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate access token"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthEmailMismatch         = "query email does not match token email"
	ErrDevAuthNotAdmin              = "user role is not admin"
	ErrDevUserNotRegistered         = "no user registered with the given email"

	ErrDevDBFailedToFindDocument     = "database failed to find document"
	ErrDevDBFailedToInsertDocument   = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "database failed to update document"
	ErrDevDBFailedToDeleteDocument   = "database failed to delete document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string is not a valid ObjectID"
	ErrDevDBFailedToStartSession     = "database failed to start session"
	ErrDevDBTransactionFailed        = "database transaction failed"
	ErrDevDBUniqueIndexViolated      = "unique index violated"

	ErrDevRedisSetData       = "redis failed to set data"
	ErrDevRedisGetData       = "redis failed to get data"
	ErrDevRedisDeleteData    = "redis failed to delete data"
	ErrDevRedisSetNX         = "redis failed to run SETNX"
	ErrDevRedisUnlock        = "redis failed to release lock"
	ErrDevLockNotAcquired    = "could not acquire booking lock"
	ErrDevBookingExists      = "booking already exists for treatment, date and email"
	ErrDevSlotAlreadyBooked  = "slot already booked for treatment and date"
	ErrDevSlotNotInCatalog   = "requested slot is not part of the treatment catalog"
	ErrDevTreatmentNotExists = "treatment does not exist"
	ErrDevBookingNotExists   = "booking does not exist"
	ErrDevPaymentDuplicate   = "payment with the same transaction id already exists"

	ErrDevStripeCreatePaymentIntent = "stripe payment intent creation failed"
	ErrDevStripeDecodeResponse      = "failed to decode stripe response"

	ErrDevRabbitMQPublish = "rabbitmq failed to publish message"

	ErrDevMinioFailedToCreateObject  = "minio failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "minio failed to presign object in bucket %s"
	ErrDevMinioFailedToRemoveObject  = "minio failed to remove object in bucket %s"
	ErrDevImageValidationFailed      = "image validation failed"

	ErrDevInvalidInput   = "invalid input"
	ErrDevPanicRecovered = "panic recovered in request handler"
	ErrDevRateLimited    = "request rejected by rate limiter"
)
