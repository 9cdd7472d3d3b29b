package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"errors"
)

// Sentinels distinguishing which uniqueness rule a booking insert violated.
var (
	ErrDuplicateSlot  = errors.New("slot already booked for treatment and date")
	ErrDuplicateEmail = errors.New("email already booked for treatment and date")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*models.Booking, error)
	GetBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
}

type BookingRepository interface {
	// CreateBooking returns the inserted id. A unique-index violation on
	// (treatment, appointmentDate, slot) or (treatment, appointmentDate,
	// email) is reported as ErrDuplicateSlot / ErrDuplicateEmail so the
	// usecase can translate it to the business rejection.
	CreateBooking(ctx context.Context, booking *models.Booking) (string, error)
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	FindByTreatmentAndDate(ctx context.Context, treatment, date string) ([]models.Booking, error)
	FindByTreatmentDateEmail(ctx context.Context, treatment, date, email string) (*models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindByID(ctx context.Context, bookingID string) (*models.Booking, error)
}
