package payments

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/requests"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentRepository     contracts.PaymentRepository
	BookingRepository     contracts.BookingRepository
	PaymentGatewayService contracts.PaymentGatewayService
	Log                   *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	paymentRepository contracts.PaymentRepository,
	bookingRepository contracts.BookingRepository,
	paymentGatewayService contracts.PaymentGatewayService,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			PaymentRepository:     paymentRepository,
			BookingRepository:     bookingRepository,
			PaymentGatewayService: paymentGatewayService,
			Log:                   logger,
		}
	})
	return paymentUsecaseInstance
}

// CreatePaymentIntent converts the treatment price to cents and asks the
// gateway for a client secret the frontend can confirm against.
func (uc *paymentUsecase) CreatePaymentIntent(ctx context.Context, request *requests.CreatePaymentIntent) (*responses.StripePaymentIntent, error) {
	amountCents := int64(request.Price) * constvars.StripeAmountCentsFactor
	return uc.PaymentGatewayService.CreatePaymentIntent(ctx, amountCents)
}

func (uc *paymentUsecase) RecordPayment(ctx context.Context, request *requests.RecordPayment) (*models.Payment, error) {
	booking, err := uc.BookingRepository.FindByID(ctx, request.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotExist(nil)
	}
	if booking.Paid {
		return nil, exceptions.ErrPaymentAlreadyRecorded(nil)
	}

	payment := &models.Payment{
		BookingID:     request.BookingID,
		Email:         request.Email,
		Amount:        request.Amount,
		TransactionID: request.TransactionID,
		CreatedAt:     time.Now().UTC(),
	}

	insertedID, err := uc.PaymentRepository.CreatePaymentAndMarkBookingPaid(ctx, payment)
	if err != nil {
		return nil, err
	}

	if objectID, convErr := primitive.ObjectIDFromHex(insertedID); convErr == nil {
		payment.ID = objectID
	}

	uc.Log.Info("payment recorded",
		zap.String(constvars.LoggingBookingIDKey, request.BookingID),
		zap.String(constvars.LoggingTransactionIDKey, request.TransactionID),
	)
	return payment, nil
}
