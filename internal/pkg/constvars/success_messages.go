package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"

	// Appointment messages
	AppointmentOptionsGetSuccess     = "successfully got the all appointment options data"
	AppointmentSpecialtiesGetSuccess = "successfully got the all appointment specialty data"

	// Booking messages
	BookingCreateSuccess = "successfully create a new booking"
	BookingsGetSuccess   = "successfully get the all booking data"
	BookingGetSuccess    = "successfully get the single booking data"

	// Payment messages
	PaymentIntentCreateSuccess = "successfully stripe payment created"
	PaymentCreateSuccess       = "successfully add a payment"

	// User messages
	UserCreateSuccess     = "successfully create a new user"
	UsersGetSuccess       = "successfully get the all users"
	UserAdminCheckSuccess = "successfully check the user role"
	UserRoleUpdateSuccess = "successfully change the user role"
	UserDeleteSuccess     = "user deleted successfully"

	// Doctor messages
	DoctorCreateSuccess = "successfully add a new doctor"
	DoctorsGetSuccess   = "successfully get the all doctors data"
	DoctorDeleteSuccess = "doctor deleted successfully"

	// Health messages
	HealthCheckSuccess = "service is healthy"
)
