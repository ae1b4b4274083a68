package dto

import (
	"mime/multipart"

	"playcourt/internal/domains/court/model"
	gDto "playcourt/shared/dto"
	gModel "playcourt/shared/model"
	"playcourt/shared/timezone"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCourtRequest struct {
	Name        string   `json:"name"        validate:"required,max=100"`
	Type        string   `json:"type"        validate:"required,max=50"`
	Price       float64  `json:"price"       validate:"gte=0"`
	Description string   `json:"description" validate:"omitempty,max=1000"`
	Image       string   `json:"image"       validate:"omitempty,url"`
	Slots       []string `json:"slots"       validate:"omitempty,dive,required"`
}

func (c *CreateCourtRequest) ToModel(email string) model.Court {
	slots := c.Slots
	if slots == nil {
		slots = []string{}
	}

	now := timezone.Now()

	return model.Court{
		Name:        c.Name,
		Type:        c.Type,
		Price:       c.Price,
		Description: c.Description,
		Image:       c.Image,
		Slots:       slots,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}
}

// UpdateCourtRequest is a partial update; only the fields sent are written.
type UpdateCourtRequest struct {
	Name        *string  `bson:"name"        json:"name"        validate:"omitempty,min=1,max=100"`
	Type        *string  `bson:"type"        json:"type"        validate:"omitempty,min=1,max=50"`
	Price       *float64 `bson:"price"       json:"price"       validate:"omitempty,gte=0"`
	Description *string  `bson:"description" json:"description" validate:"omitempty,max=1000"`
	Image       *string  `bson:"image"       json:"image"       validate:"omitempty,url"`
	Slots       []string `bson:"slots"       json:"slots"       validate:"omitempty,dive,required"`
}

type CourtResponse struct {
	ID          primitive.ObjectID `json:"_id"`
	Name        string             `json:"name"`
	Type        string             `json:"type"`
	Price       float64            `json:"price"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Slots       []string           `json:"slots"`

	gDto.Metadata
}

func (r *CourtResponse) FromModel(model model.Court) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Price = model.Price
	r.Description = model.Description
	r.Image = model.Image
	r.Slots = model.Slots
	r.Metadata.FromModel(model.Metadata)

	if r.Slots == nil {
		r.Slots = []string{}
	}
}

func FromModels(models []model.Court) []CourtResponse {
	res := make([]CourtResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" swaggerignore:"true" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	ModifiedCount int64  `json:"modifiedCount"`
	Image         string `json:"image"`
}
