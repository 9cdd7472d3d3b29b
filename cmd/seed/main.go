package main

import (
	"context"
	"doctors-portal-service/internal/app/config"
	"doctors-portal-service/internal/app/drivers/database"
	"doctors-portal-service/internal/app/drivers/logger"
	"doctors-portal-service/internal/app/models"
	"doctors-portal-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var defaultSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
	"04.00 PM - 04.30 PM",
	"04.30 PM - 05.00 PM",
}

var catalog = []models.AppointmentOption{
	{Name: "Teeth Orthodontics", Price: 80, Slots: defaultSlots},
	{Name: "Cosmetic Dentistry", Price: 90, Slots: defaultSlots},
	{Name: "Teeth Cleaning", Price: 60, Slots: defaultSlots},
	{Name: "Cavity Protection", Price: 70, Slots: defaultSlots},
	{Name: "Pediatric Dental", Price: 50, Slots: defaultSlots},
	{Name: "Oral Surgery", Price: 120, Slots: defaultSlots},
}

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	db := mongoClient.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	defer mongoClient.Disconnect(ctx)

	if err := seedAppointmentOptions(ctx, db); err != nil {
		log.WithError(err).Fatal("failed to seed appointment options")
	}
	log.Info("appointment options seeded")

	if err := createIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("failed to create indexes")
	}
	log.Info("indexes created")
}

// seedAppointmentOptions upserts by name so rerunning the seeder never
// duplicates catalog entries.
func seedAppointmentOptions(ctx context.Context, db *mongo.Database) error {
	collection := db.Collection(constvars.MongoCollectionAppointmentOptions)
	for _, option := range catalog {
		filter := bson.M{"name": option.Name}
		update := bson.M{"$set": bson.M{
			"name":  option.Name,
			"price": option.Price,
			"slots": option.Slots,
		}}
		opts := options.Update().SetUpsert(true)
		if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	return nil
}

// createIndexes installs the unique indexes that back the double-booking
// protection, plus the supporting lookup indexes.
func createIndexes(ctx context.Context, db *mongo.Database) error {
	bookingIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "slot", Value: 1},
			},
			Options: options.Index().
				SetName(constvars.MongoIndexBookingUniqueSlot).
				SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "email", Value: 1},
			},
			Options: options.Index().
				SetName(constvars.MongoIndexBookingUniqueEmail).
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "appointmentDate", Value: 1}},
		},
	}
	if _, err := db.Collection(constvars.MongoCollectionBookings).Indexes().CreateMany(ctx, bookingIndexes); err != nil {
		return err
	}

	paymentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "transactionId", Value: 1}},
			Options: options.Index().
				SetName(constvars.MongoIndexPaymentTransaction).
				SetUnique(true),
		},
	}
	if _, err := db.Collection(constvars.MongoCollectionPayments).Indexes().CreateMany(ctx, paymentIndexes); err != nil {
		return err
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName(constvars.MongoIndexUserEmail).
				SetUnique(true),
		},
	}
	if _, err := db.Collection(constvars.MongoCollectionUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return err
	}

	return nil
}
