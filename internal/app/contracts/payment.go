package contracts

import (
	"context"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.StripePaymentIntent, error)
	RecordPayment(ctx context.Context, request *requests.RecordPayment) (*models.Payment, error)
}

type PaymentRepository interface {
	// CreatePaymentAndMarkBookingPaid inserts the payment and flips the
	// booking's paid flag plus transaction reference as one transaction.
	CreatePaymentAndMarkBookingPaid(ctx context.Context, payment *models.Payment) (string, error)
}

type PaymentGatewayService interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (*responses.StripePaymentIntent, error)
}
