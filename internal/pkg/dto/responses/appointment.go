package responses

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption carries the catalog entry with Slots already reduced to
// the remaining availability for the requested date.
type AppointmentOption struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price int                `json:"price" bson:"price"`
	Slots []string           `json:"slots" bson:"slots"`
}

type AppointmentSpecialty struct {
	Name string `json:"name" bson:"name"`
}
