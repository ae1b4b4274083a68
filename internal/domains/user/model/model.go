package model

import (
	"slices"

	"playcourt/shared/constant"
	"playcourt/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "users"
	EntityName     = "user"

	FieldEmail = "email"
	FieldRole  = "role"
)

// Roles lists every role an account may hold.
var Roles = []string{constant.RoleAdmin, constant.RoleMember, constant.RoleUser}

func ValidRole(role string) bool {
	return slices.Contains(Roles, role)
}

type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Email string             `bson:"email"`
	Photo string             `bson:"photo,omitempty"`
	Role  string             `bson:"role"`

	model.Metadata `bson:",inline"`
}
