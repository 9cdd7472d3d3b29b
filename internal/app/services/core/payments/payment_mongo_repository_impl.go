package payments

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentMongoRepository struct {
	Client            *mongo.Client
	PaymentCollection *mongo.Collection
	BookingCollection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	database := db.Database(dbName)
	return &PaymentMongoRepository{
		Client:            db,
		PaymentCollection: database.Collection(constvars.MongoCollectionPayments),
		BookingCollection: database.Collection(constvars.MongoCollectionBookings),
	}
}

// CreatePaymentAndMarkBookingPaid runs both writes inside one mongo session so
// the payment record and the booking's paid flag never diverge.
func (repo *PaymentMongoRepository) CreatePaymentAndMarkBookingPaid(ctx context.Context, payment *models.Payment) (string, error) {
	bookingObjectID, err := primitive.ObjectIDFromHex(payment.BookingID)
	if err != nil {
		return "", exceptions.ErrMongoDBNotObjectID(err)
	}

	session, err := repo.Client.StartSession()
	if err != nil {
		return "", exceptions.ErrMongoDBStartSession(err)
	}
	defer session.EndSession(ctx)

	insertedID, err := session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		result, err := repo.PaymentCollection.InsertOne(sessCtx, payment)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, exceptions.ErrPaymentAlreadyRecorded(err)
			}
			return nil, exceptions.ErrMongoDBInsertDocument(err)
		}

		// Flip the paid flag only if it is still unset, so a concurrent
		// record attempt with a different transaction id aborts here instead
		// of producing a second payment for the same booking.
		update := bson.M{"$set": bson.M{
			"paid":          true,
			"transactionId": payment.TransactionID,
		}}
		updateResult, err := repo.BookingCollection.UpdateOne(sessCtx, bson.M{"_id": bookingObjectID, "paid": false}, update)
		if err != nil {
			return nil, exceptions.ErrMongoDBUpdateDocument(err)
		}
		if updateResult.ModifiedCount == 0 {
			return nil, exceptions.ErrPaymentAlreadyRecorded(nil)
		}

		objectID, ok := result.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, exceptions.ErrMongoDBNotObjectID(nil)
		}
		return objectID.Hex(), nil
	})
	if err != nil {
		if customErr, ok := err.(*exceptions.CustomError); ok {
			return "", customErr
		}
		return "", exceptions.ErrMongoDBTransaction(err)
	}
	return insertedID.(string), nil
}
