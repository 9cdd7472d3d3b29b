package appointments

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	BookingRepository           contracts.BookingRepository
	Log                         *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	bookingRepository contracts.BookingRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentOptionRepository: appointmentOptionRepository,
			BookingRepository:           bookingRepository,
			Log:                         logger,
		}
	})
	return appointmentUsecaseInstance
}

// GetAppointmentOptions loads the full catalog and removes the slots already
// booked on the requested date. Catalog order and the relative order of the
// remaining slots are preserved.
func (uc *appointmentUsecase) GetAppointmentOptions(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	appointmentOptions, err := uc.AppointmentOptionRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := uc.BookingRepository.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookedSlots := make(map[string]map[string]struct{})
	for _, booking := range bookings {
		if bookedSlots[booking.Treatment] == nil {
			bookedSlots[booking.Treatment] = make(map[string]struct{})
		}
		bookedSlots[booking.Treatment][booking.Slot] = struct{}{}
	}

	results := make([]responses.AppointmentOption, 0, len(appointmentOptions))
	for _, option := range appointmentOptions {
		taken := bookedSlots[option.Name]
		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, ok := taken[slot]; ok {
				continue
			}
			remaining = append(remaining, slot)
		}
		results = append(results, responses.AppointmentOption{
			ID:    option.ID,
			Name:  option.Name,
			Price: option.Price,
			Slots: remaining,
		})
	}
	return results, nil
}

// GetAppointmentOptionsAggregated delegates the slot filtering to a database
// aggregation instead of doing it in application code.
func (uc *appointmentUsecase) GetAppointmentOptionsAggregated(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	return uc.AppointmentOptionRepository.FindAllWithAvailability(ctx, date)
}

func (uc *appointmentUsecase) GetAppointmentSpecialties(ctx context.Context) ([]responses.AppointmentSpecialty, error) {
	return uc.AppointmentOptionRepository.FindNames(ctx)
}
