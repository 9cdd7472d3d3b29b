package notification

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingCreatedMessage is the payload handed to the confirmation consumer.
type BookingCreatedMessage struct {
	BookingID       string `json:"booking_id"`
	Treatment       string `json:"treatment"`
	AppointmentDate string `json:"appointment_date"`
	Slot            string `json:"slot"`
	Email           string `json:"email"`
}

type bookingQueueService struct {
	ch  *amqp.Channel
	Log *zap.Logger
}

// NewBookingQueueService declares the durable confirmation queue and returns
// a publisher bound to it.
func NewBookingQueueService(conn *amqp.Connection, logger *zap.Logger) (contracts.BookingNotificationService, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		constvars.BookingConfirmationQueueName, // name
		true,                                   // durable
		false,                                  // autoDelete
		false,                                  // exclusive
		false,                                  // noWait
		nil,                                    // args
	)
	if err != nil {
		return nil, err
	}

	return &bookingQueueService{ch: ch, Log: logger}, nil
}

func (s *bookingQueueService) PublishBookingCreated(ctx context.Context, booking *models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	message := BookingCreatedMessage{
		BookingID:       booking.ID.Hex(),
		Treatment:       booking.Treatment,
		AppointmentDate: booking.AppointmentDate,
		Slot:            booking.Slot,
		Email:           booking.Email,
	}
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",                                     // exchange
		constvars.BookingConfirmationQueueName, // routing key
		false,                                  // mandatory
		false,                                  // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		s.Log.Error("bookingQueueService.PublishBookingCreated error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueNameKey, constvars.BookingConfirmationQueueName),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, constvars.BookingConfirmationQueueName)
	}

	s.Log.Info("bookingQueueService.PublishBookingCreated succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, booking.ID.Hex()),
	)
	return nil
}
