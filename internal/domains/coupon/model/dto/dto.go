package dto

import (
	"strings"

	"playcourt/internal/domains/coupon/model"
	gDto "playcourt/shared/dto"
	gModel "playcourt/shared/model"
	"playcourt/shared/timezone"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateCouponRequest struct {
	Code        string  `json:"code"        validate:"required,alphanum,max=32"`
	Discount    float64 `json:"discount"    validate:"gt=0,lte=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ExpiresAt   string  `json:"expiresAt"   validate:"omitempty,datetime=2006-01-02"`
}

// ToModel stores codes upper-cased so lookups are case insensitive.
func (c *CreateCouponRequest) ToModel(email string) model.Coupon {
	now := timezone.Now()

	return model.Coupon{
		Code:        strings.ToUpper(c.Code),
		Discount:    c.Discount,
		Description: c.Description,
		ExpiresAt:   c.ExpiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}
}

type UpdateCouponRequest struct {
	Discount    *float64 `bson:"discount"    json:"discount"    validate:"omitempty,gt=0,lte=100"`
	Description *string  `bson:"description" json:"description" validate:"omitempty,max=500"`
	ExpiresAt   *string  `bson:"expiresAt"   json:"expiresAt"   validate:"omitempty,datetime=2006-01-02"`
}

type CouponResponse struct {
	ID          primitive.ObjectID `json:"_id"`
	Code        string             `json:"code"`
	Discount    float64            `json:"discount"`
	Description string             `json:"description"`
	ExpiresAt   string             `json:"expiresAt,omitempty"`

	gDto.Metadata
}

func (r *CouponResponse) FromModel(model model.Coupon) {
	r.ID = model.ID
	r.Code = model.Code
	r.Discount = model.Discount
	r.Description = model.Description
	r.ExpiresAt = model.ExpiresAt
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Coupon) []CouponResponse {
	res := make([]CouponResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
