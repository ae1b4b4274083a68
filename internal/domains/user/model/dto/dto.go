package dto

import (
	"playcourt/internal/domains/user/model"
	"playcourt/shared/constant"
	gDto "playcourt/shared/dto"
	gModel "playcourt/shared/model"
	"playcourt/shared/timezone"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateUserRequest registers an account. Any role sent by the client is ignored.
type CreateUserRequest struct {
	Name  string `json:"name"  validate:"omitempty,max=100"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo" validate:"omitempty,url"`
}

func (r *CreateUserRequest) ToModel() model.User {
	now := timezone.Now()

	return model.User{
		Name:  r.Name,
		Email: r.Email,
		Photo: r.Photo,
		Role:  constant.RoleUser,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  r.Email,
			ModifiedBy: r.Email,
		},
	}
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin member user"`
}

type UserResponse struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Photo string             `json:"photo,omitempty"`
	Role  string             `json:"role"`

	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Photo = model.Photo
	r.Role = model.Role
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.User) []UserResponse {
	res := make([]UserResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type RoleResponse struct {
	Role string `json:"role"`
}
