package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	// GetAppointmentOptions resolves availability application-side: catalog
	// slots minus the slots already booked for the given date.
	GetAppointmentOptions(ctx context.Context, date string) ([]responses.AppointmentOption, error)
	// GetAppointmentOptionsAggregated resolves the same availability with a
	// single database aggregation pipeline (the v2 endpoint).
	GetAppointmentOptionsAggregated(ctx context.Context, date string) ([]responses.AppointmentOption, error)
	GetAppointmentSpecialties(ctx context.Context) ([]responses.AppointmentSpecialty, error)
}

type AppointmentOptionRepository interface {
	FindAll(ctx context.Context) ([]models.AppointmentOption, error)
	FindByName(ctx context.Context, name string) (*models.AppointmentOption, error)
	FindNames(ctx context.Context) ([]responses.AppointmentSpecialty, error)
	// FindAllWithAvailability runs the $lookup/$setDifference pipeline against
	// the bookings collection for the given date.
	FindAllWithAvailability(ctx context.Context, date string) ([]responses.AppointmentOption, error)
}
