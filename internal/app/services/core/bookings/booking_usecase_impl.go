package bookings

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository           contracts.BookingRepository
	AppointmentOptionRepository contracts.AppointmentOptionRepository
	LockerService               contracts.LockerService
	NotificationService         contracts.BookingNotificationService
	InternalConfig              *config.InternalConfig
	Log                         *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	appointmentOptionRepository contracts.AppointmentOptionRepository,
	lockerService contracts.LockerService,
	notificationService contracts.BookingNotificationService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			BookingRepository:           bookingRepository,
			AppointmentOptionRepository: appointmentOptionRepository,
			LockerService:               lockerService,
			NotificationService:         notificationService,
			InternalConfig:              internalConfig,
			Log:                         logger,
		}
	})
	return bookingUsecaseInstance
}

// CreateBooking serializes intakes per (treatment, date) behind a redis lock,
// re-checks both uniqueness rules, then inserts. The unique indexes remain the
// authoritative guard: a duplicate-key error from the insert is translated to
// the same business rejection a pre-check miss would have produced.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error) {
	lockKey := fmt.Sprintf(constvars.BookingLockKeyFormat, request.Treatment, request.AppointmentDate)
	lockTTL := time.Duration(uc.InternalConfig.App.BookingLockTTLInSecond) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingLockNotAcquired(nil)
	}
	defer func() {
		if unlockErr := uc.LockerService.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Warn("failed to release booking lock",
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(unlockErr),
			)
		}
	}()

	existing, err := uc.BookingRepository.FindByTreatmentDateEmail(ctx, request.Treatment, request.AppointmentDate, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrBookingAlreadyExists(request.AppointmentDate)
	}

	option, err := uc.AppointmentOptionRepository.FindByName(ctx, request.Treatment)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, exceptions.ErrTreatmentNotExist(nil)
	}
	if !containsSlot(option.Slots, request.Slot) {
		return nil, exceptions.ErrSlotUnavailable(request.Slot)
	}

	taken, err := uc.BookingRepository.FindByTreatmentAndDate(ctx, request.Treatment, request.AppointmentDate)
	if err != nil {
		return nil, err
	}
	for _, booked := range taken {
		if booked.Slot == request.Slot {
			return nil, exceptions.ErrSlotUnavailable(request.Slot)
		}
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		Treatment:       request.Treatment,
		AppointmentDate: request.AppointmentDate,
		Slot:            request.Slot,
		PatientName:     request.PatientName,
		Email:           request.Email,
		Phone:           request.Phone,
		Price:           request.Price,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	insertedID, err := uc.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, contracts.ErrDuplicateEmail):
			return nil, exceptions.ErrBookingAlreadyExists(request.AppointmentDate)
		case errors.Is(err, contracts.ErrDuplicateSlot):
			return nil, exceptions.ErrSlotUnavailable(request.Slot)
		default:
			return nil, err
		}
	}

	if objectID, convErr := primitive.ObjectIDFromHex(insertedID); convErr == nil {
		booking.ID = objectID
	}

	if uc.NotificationService != nil {
		if publishErr := uc.NotificationService.PublishBookingCreated(ctx, booking); publishErr != nil {
			// The booking is committed; a failed confirmation message must not
			// fail the request.
			uc.Log.Error("failed to publish booking confirmation",
				zap.String(constvars.LoggingBookingIDKey, insertedID),
				zap.Error(publishErr),
			)
		}
	}

	return booking, nil
}

func (uc *bookingUsecase) GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return uc.BookingRepository.FindByEmail(ctx, email)
}

func (uc *bookingUsecase) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	return booking, nil
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
