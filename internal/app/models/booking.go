package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking reserves one slot of one treatment on one date for a patient.
// AppointmentDate is an opaque calendar-day string compared verbatim; no
// timezone normalization is applied anywhere.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Slot            string             `bson:"slot" json:"slot"`
	PatientName     string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price           int                `bson:"price" json:"price"`
	Paid            bool               `bson:"paid" json:"paid"`
	TransactionID   string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`

	TimeModel `bson:",inline"`
}
