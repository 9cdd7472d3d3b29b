package bookings

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (repo *BookingMongoRepository) CreateBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", translateDuplicateKey(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return insertedID.Hex(), nil
}

// translateDuplicateKey maps a unique-index violation to the uniqueness rule
// it broke, using the index name embedded in the server error message.
func translateDuplicateKey(err error) error {
	message := err.Error()
	if strings.Contains(message, constvars.MongoIndexBookingUniqueEmail) {
		return contracts.ErrDuplicateEmail
	}
	return contracts.ErrDuplicateSlot
}

func (repo *BookingMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Booking, error) {
	return repo.findMany(ctx, bson.M{"appointmentDate": date})
}

func (repo *BookingMongoRepository) FindByTreatmentAndDate(ctx context.Context, treatment, date string) ([]models.Booking, error) {
	return repo.findMany(ctx, bson.M{"treatment": treatment, "appointmentDate": date})
}

func (repo *BookingMongoRepository) FindByTreatmentDateEmail(ctx context.Context, treatment, date, email string) (*models.Booking, error) {
	var booking models.Booking
	filter := bson.M{"treatment": treatment, "appointmentDate": date, "email": email}
	err := repo.Collection.FindOne(ctx, filter).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return repo.findMany(ctx, bson.M{"email": email})
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) findMany(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookingList []models.Booking
	if err := cursor.All(ctx, &bookingList); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookingList, nil
}
