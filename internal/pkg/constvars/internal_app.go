package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_AUTH_EMAIL_KEY           ContextKey = "auth_email"
)

const (
	MongoCollectionAppointmentOptions = "appointmentOptions"
	MongoCollectionBookings           = "bookings"
	MongoCollectionPayments           = "payments"
	MongoCollectionUsers              = "users"
	MongoCollectionDoctors            = "doctors"
)

const (
	RoleAdmin = "Admin"
)

const (
	MongoIndexBookingUniqueSlot  = "uniq_treatment_date_slot"
	MongoIndexBookingUniqueEmail = "uniq_treatment_date_email"
	MongoIndexPaymentTransaction = "uniq_transaction_id"
	MongoIndexUserEmail          = "uniq_user_email"
)

const (
	// BookingLockKeyFormat serializes intakes per (treatment, date).
	BookingLockKeyFormat = "booking_lock:%s:%s"
)

const (
	StripeCurrencyUSD            = "usd"
	StripePaymentMethodTypeCard  = "card"
	StripeAmountCentsFactor      = 100
	StripePaymentIntentsEndpoint = "/v1/payment_intents"
)

const (
	BookingConfirmationQueueName = "booking_confirmation_queue"
)

const (
	DoctorImageObjectFormat = "doctors/%s%s"
)
