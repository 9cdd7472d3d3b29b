package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	// ImageObject holds the object name inside the images bucket, not a URL.
	ImageObject string `bson:"imageObject,omitempty" json:"-"`

	TimeModel `bson:",inline"`
}
