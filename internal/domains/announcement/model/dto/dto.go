package dto

import (
	"playcourt/internal/domains/announcement/model"
	gDto "playcourt/shared/dto"
	gModel "playcourt/shared/model"
	"playcourt/shared/timezone"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateAnnouncementRequest struct {
	Title       string `json:"title"       validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
}

func (c *CreateAnnouncementRequest) ToModel(email string) model.Announcement {
	now := timezone.Now()

	return model.Announcement{
		Title:       c.Title,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}
}

type UpdateAnnouncementRequest struct {
	Title       *string `bson:"title"       json:"title"       validate:"omitempty,min=1,max=200"`
	Description *string `bson:"description" json:"description" validate:"omitempty,max=5000"`
}

type AnnouncementResponse struct {
	ID          primitive.ObjectID `json:"_id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`

	gDto.Metadata
}

func (r *AnnouncementResponse) FromModel(model model.Announcement) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Announcement) []AnnouncementResponse {
	res := make([]AnnouncementResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
