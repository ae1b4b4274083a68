package model

import (
	"playcourt/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "courts"
	EntityName     = "court"

	FieldImage = "image"

	// ImageDirectory is the object prefix court images are stored under.
	ImageDirectory = "courts"
)

type Court struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Type        string             `bson:"type"`
	Price       float64            `bson:"price"`
	Description string             `bson:"description"`
	Image       string             `bson:"image"`
	Slots       []string           `bson:"slots"`

	model.Metadata `bson:",inline"`
}
