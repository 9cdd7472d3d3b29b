package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
)

// BookingNotificationService hands freshly created bookings to the messaging
// layer; delivery to patients happens in a separate consumer.
type BookingNotificationService interface {
	PublishBookingCreated(ctx context.Context, booking *models.Booking) error
}
