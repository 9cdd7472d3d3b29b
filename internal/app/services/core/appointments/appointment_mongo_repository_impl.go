package appointments

import (
	"context"
	"doctors-portal-service/internal/app/contracts"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"doctors-portal-service/internal/pkg/dto/responses"
	"doctors-portal-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentOptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentOptionMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentOptionRepository {
	return &AppointmentOptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointmentOptions),
	}
}

func (repo *AppointmentOptionMongoRepository) FindAll(ctx context.Context) ([]models.AppointmentOption, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentOptions []models.AppointmentOption
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentOptions, nil
}

func (repo *AppointmentOptionMongoRepository) FindByName(ctx context.Context, name string) (*models.AppointmentOption, error) {
	var appointmentOption models.AppointmentOption
	err := repo.Collection.FindOne(ctx, bson.M{"name": name}).Decode(&appointmentOption)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointmentOption, nil
}

func (repo *AppointmentOptionMongoRepository) FindNames(ctx context.Context) ([]responses.AppointmentSpecialty, error) {
	findOptions := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var specialties []responses.AppointmentSpecialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return specialties, nil
}

// FindAllWithAvailability pushes the whole availability computation into the
// database: join each option with the bookings of the requested date, then
// subtract the booked slot set from the catalog slots.
func (repo *AppointmentOptionMongoRepository) FindAllWithAvailability(ctx context.Context, date string) ([]responses.AppointmentOption, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constvars.MongoCollectionBookings},
			{Key: "localField", Value: "name"},
			{Key: "foreignField", Value: "treatment"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{
						{Key: "$eq", Value: bson.A{"$appointmentDate", date}},
					}},
				}}},
			}},
			{Key: "as", Value: "booked"},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "slots", Value: 1},
			{Key: "price", Value: 1},
			{Key: "booked", Value: bson.D{
				{Key: "$map", Value: bson.D{
					{Key: "input", Value: "$booked"},
					{Key: "as", Value: "book"},
					{Key: "in", Value: "$$book.slot"},
				}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "name", Value: 1},
			{Key: "price", Value: 1},
			{Key: "slots", Value: bson.D{
				{Key: "$setDifference", Value: bson.A{"$slots", "$booked"}},
			}},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointmentOptions []responses.AppointmentOption
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointmentOptions, nil
}
