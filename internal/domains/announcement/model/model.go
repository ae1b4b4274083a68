package model

import (
	"playcourt/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "announcements"
	EntityName     = "announcement"
)

type Announcement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`

	model.Metadata `bson:",inline"`
}
