package appointments

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

func TestAppointmentUsecase_GetAppointmentOptions(t *testing.T) {
	catalog := []models.AppointmentOption{
		{Name: "Teeth Cleaning", Price: 60, Slots: []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM", "09.00 AM - 09.30 AM"}},
		{Name: "Oral Surgery", Price: 120, Slots: []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM"}},
	}

	t.Run("removes booked slots only for the matching treatment", func(t *testing.T) {
		optionRepo := new(MockAppointmentOptionRepository)
		bookingRepo := new(MockBookingRepository)
		uc := &appointmentUsecase{
			AppointmentOptionRepository: optionRepo,
			BookingRepository:           bookingRepo,
			Log:                         zap.NewNop(),
		}

		optionRepo.On("FindAll", mock.Anything).Return(catalog, nil)
		bookingRepo.On("FindByDate", mock.Anything, "2026-09-01").Return([]models.Booking{
			{Treatment: "Teeth Cleaning", AppointmentDate: "2026-09-01", Slot: "08.30 AM - 09.00 AM"},
		}, nil)

		result, err := uc.GetAppointmentOptions(context.Background(), "2026-09-01")
		assert.NoError(t, err)
		assert.Len(t, result, 2)

		assert.Equal(t, "Teeth Cleaning", result[0].Name)
		assert.Equal(t, []string{"08.00 AM - 08.30 AM", "09.00 AM - 09.30 AM"}, result[0].Slots)

		// The same slot stays bookable for other treatments.
		assert.Equal(t, "Oral Surgery", result[1].Name)
		assert.Equal(t, []string{"08.00 AM - 08.30 AM", "08.30 AM - 09.00 AM"}, result[1].Slots)
	})

	t.Run("returns full catalog when nothing is booked", func(t *testing.T) {
		optionRepo := new(MockAppointmentOptionRepository)
		bookingRepo := new(MockBookingRepository)
		uc := &appointmentUsecase{
			AppointmentOptionRepository: optionRepo,
			BookingRepository:           bookingRepo,
			Log:                         zap.NewNop(),
		}

		optionRepo.On("FindAll", mock.Anything).Return(catalog, nil)
		bookingRepo.On("FindByDate", mock.Anything, "2026-09-02").Return([]models.Booking{}, nil)

		result, err := uc.GetAppointmentOptions(context.Background(), "2026-09-02")
		assert.NoError(t, err)
		assert.Equal(t, 3, len(result[0].Slots))
		assert.Equal(t, 2, len(result[1].Slots))
	})

	t.Run("fully booked treatment keeps empty slot list", func(t *testing.T) {
		optionRepo := new(MockAppointmentOptionRepository)
		bookingRepo := new(MockBookingRepository)
		uc := &appointmentUsecase{
			AppointmentOptionRepository: optionRepo,
			BookingRepository:           bookingRepo,
			Log:                         zap.NewNop(),
		}

		optionRepo.On("FindAll", mock.Anything).Return(catalog, nil)
		bookingRepo.On("FindByDate", mock.Anything, "2026-09-03").Return([]models.Booking{
			{Treatment: "Oral Surgery", AppointmentDate: "2026-09-03", Slot: "08.00 AM - 08.30 AM"},
			{Treatment: "Oral Surgery", AppointmentDate: "2026-09-03", Slot: "08.30 AM - 09.00 AM"},
		}, nil)

		result, err := uc.GetAppointmentOptions(context.Background(), "2026-09-03")
		assert.NoError(t, err)
		assert.Equal(t, "Oral Surgery", result[1].Name)
		assert.Empty(t, result[1].Slots)
		// The entry itself still appears in the listing.
		assert.Len(t, result, 2)
	})
}

func TestAppointmentUsecase_GetAppointmentSpecialties(t *testing.T) {
	optionRepo := new(MockAppointmentOptionRepository)
	bookingRepo := new(MockBookingRepository)
	uc := &appointmentUsecase{
		AppointmentOptionRepository: optionRepo,
		BookingRepository:           bookingRepo,
		Log:                         zap.NewNop(),
	}

	specialties := []responses.AppointmentSpecialty{{Name: "Teeth Cleaning"}, {Name: "Oral Surgery"}}
	optionRepo.On("FindNames", mock.Anything).Return(specialties, nil)

	result, err := uc.GetAppointmentSpecialties(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, specialties, result)
}
