package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is the treatment catalog entry: a bookable clinical
// service with a price and the fixed slot template it offers every day.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price int                `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}
