package model

import (
	"playcourt/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "coupons"
	EntityName     = "coupon"
)

type Coupon struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Code        string             `bson:"code"`
	Discount    float64            `bson:"discount"`
	Description string             `bson:"description"`
	ExpiresAt   string             `bson:"expiresAt,omitempty"`

	model.Metadata `bson:",inline"`
}
