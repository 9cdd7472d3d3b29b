package bookings

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	args := m.Called(ctx, booking)
	return args.String(0), args.Error(1)
}

func (m *MockBookingRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByTreatmentAndDate(ctx context.Context, treatment, date string) ([]models.Booking, error) {
	args := m.Called(ctx, treatment, date)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByTreatmentDateEmail(ctx context.Context, treatment, date, email string) (*models.Booking, error) {
	args := m.Called(ctx, treatment, date, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

type MockAppointmentOptionRepository struct {
	mock.Mock
}

func (m *MockAppointmentOptionRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AppointmentOption), args.Error(1)
}

func (m *MockAppointmentOptionRepository) FindByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentOption), args.Error(1)
}

func (m *MockAppointmentOptionRepository) FindNames(ctx context.Context) ([]responses.AppointmentSpecialty, error) {
	args := m.Called(ctx)
	return args.Get(0).([]responses.AppointmentSpecialty), args.Error(1)
}

func (m *MockAppointmentOptionRepository) FindAllWithAvailability(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]responses.AppointmentOption), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func newTestBookingUsecase(
	bookingRepo *MockBookingRepository,
	optionRepo *MockAppointmentOptionRepository,
	lockerService *MockLockerService,
	notificationService *MockNotificationService,
) *bookingUsecase {
	return &bookingUsecase{
		BookingRepository:           bookingRepo,
		AppointmentOptionRepository: optionRepo,
		LockerService:               lockerService,
		NotificationService:         notificationService,
		InternalConfig: &config.InternalConfig{
			App: config.App{BookingLockTTLInSecond: 5},
		},
		Log: zap.NewNop(),
	}
}

func validRequest() *requests.CreateBooking {
	return &requests.CreateBooking{
		Treatment:       "Teeth Cleaning",
		AppointmentDate: "2026-09-10",
		Slot:            "08.00 AM - 08.30 AM",
		PatientName:     "Jane Roe",
		Email:           "jane@example.com",
		Phone:           "555-0100",
		Price:           60,
	}
}

func cleaningOption() *models.AppointmentOption {
	return &models.AppointmentOption{
		Name:  "Teeth Cleaning",
		Price: 60,
		Slots: []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM"},
	}
}

func TestBookingUsecase_CreateBooking(t *testing.T) {
	t.Run("creates booking and publishes confirmation", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, "booking_lock:Teeth Cleaning:2026-09-10", mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, "booking_lock:Teeth Cleaning:2026-09-10", "lock-value").Return(nil)
		bookingRepo.On("FindByTreatmentDateEmail", mock.Anything, "Teeth Cleaning", "2026-09-10", "jane@example.com").Return(nil, nil)
		optionRepo.On("FindByName", mock.Anything, "Teeth Cleaning").Return(cleaningOption(), nil)
		bookingRepo.On("FindByTreatmentAndDate", mock.Anything, "Teeth Cleaning", "2026-09-10").Return([]models.Booking{}, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.AnythingOfType("*models.Booking")).Return("64a0f2c5e1b2c3d4e5f60718", nil)
		notificationService.On("PublishBookingCreated", mock.Anything, mock.AnythingOfType("*models.Booking")).Return(nil)

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.NoError(t, err)
		assert.NotNil(t, booking)
		assert.Equal(t, "Teeth Cleaning", booking.Treatment)
		assert.False(t, booking.Paid)

		lockerService.AssertExpectations(t)
		notificationService.AssertExpectations(t)
	})

	t.Run("rejects a second booking for the same email, treatment and date", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		bookingRepo.On("FindByTreatmentDateEmail", mock.Anything, "Teeth Cleaning", "2026-09-10", "jane@example.com").
			Return(&models.Booking{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-10", Email: "jane@example.com"}, nil)

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.Nil(t, booking)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 200, customErr.StatusCode)
		assert.False(t, customErr.Success)
		assert.Contains(t, customErr.ClientMessage, "2026-09-10")

		bookingRepo.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("rejects a slot that is already taken", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		bookingRepo.On("FindByTreatmentDateEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		optionRepo.On("FindByName", mock.Anything, "Teeth Cleaning").Return(cleaningOption(), nil)
		bookingRepo.On("FindByTreatmentAndDate", mock.Anything, "Teeth Cleaning", "2026-09-10").Return([]models.Booking{
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-10", Slot: "08.00 AM - 08.30 AM", Email: "other@example.com"},
		}, nil)

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.Nil(t, booking)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 200, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "08.00 AM - 08.30 AM")
	})

	t.Run("rejects unknown treatment", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		bookingRepo.On("FindByTreatmentDateEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		optionRepo.On("FindByName", mock.Anything, "Teeth Cleaning").Return(nil, nil)

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.Nil(t, booking)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("translates a duplicate-key insert into the slot rejection", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		bookingRepo.On("FindByTreatmentDateEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		optionRepo.On("FindByName", mock.Anything, "Teeth Cleaning").Return(cleaningOption(), nil)
		bookingRepo.On("FindByTreatmentAndDate", mock.Anything, mock.Anything, mock.Anything).Return([]models.Booking{}, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.Anything).Return("", contracts.ErrDuplicateSlot)

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.Nil(t, booking)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 200, customErr.StatusCode)
		assert.Contains(t, customErr.ClientMessage, "no longer available")

		notificationService.AssertNotCalled(t, "PublishBookingCreated", mock.Anything, mock.Anything)
	})

	t.Run("returns conflict when the lock is held", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.Nil(t, booking)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 409, customErr.StatusCode)
	})

	t.Run("booking survives a failed confirmation publish", func(t *testing.T) {
		bookingRepo := new(MockBookingRepository)
		optionRepo := new(MockAppointmentOptionRepository)
		lockerService := new(MockLockerService)
		notificationService := new(MockNotificationService)
		uc := newTestBookingUsecase(bookingRepo, optionRepo, lockerService, notificationService)

		lockerService.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(true, "lock-value", nil)
		lockerService.On("Unlock", mock.Anything, mock.Anything, "lock-value").Return(nil)
		bookingRepo.On("FindByTreatmentDateEmail", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		optionRepo.On("FindByName", mock.Anything, "Teeth Cleaning").Return(cleaningOption(), nil)
		bookingRepo.On("FindByTreatmentAndDate", mock.Anything, mock.Anything, mock.Anything).Return([]models.Booking{}, nil)
		bookingRepo.On("CreateBooking", mock.Anything, mock.Anything).Return("64a0f2c5e1b2c3d4e5f60718", nil)
		notificationService.On("PublishBookingCreated", mock.Anything, mock.Anything).
			Return(exceptions.ErrRabbitMQPublishMessage(assert.AnError, "booking_confirmation_queue"))

		booking, err := uc.CreateBooking(context.Background(), validRequest())
		assert.NoError(t, err)
		assert.NotNil(t, booking)
	})
}

func TestBookingUsecase_GetBookingByID(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	uc := &bookingUsecase{BookingRepository: bookingRepo, Log: zap.NewNop()}

	t.Run("missing booking becomes not found", func(t *testing.T) {
		bookingRepo.On("FindByID", mock.Anything, "64a0f2c5e1b2c3d4e5f60799").Return(nil, nil)

		booking, err := uc.GetBookingByID(context.Background(), "64a0f2c5e1b2c3d4e5f60799")
		assert.Nil(t, booking)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
