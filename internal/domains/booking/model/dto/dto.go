package dto

import (
	"playcourt/internal/domains/booking/model"
	"playcourt/shared"
	gDto "playcourt/shared/dto"
	gModel "playcourt/shared/model"
	"playcourt/shared/timezone"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBookingRequest carries the client fields of a new booking. Status is
// accepted for compatibility but never stored.
type CreateBookingRequest struct {
	CourtID   string   `json:"courtId"   validate:"required"`
	CourtName string   `json:"courtName" validate:"omitempty,max=100"`
	CourtType string   `json:"courtType" validate:"omitempty,max=50"`
	UserEmail string   `json:"userEmail" validate:"omitempty,email"`
	UserName  string   `json:"userName"  validate:"omitempty,max=100"`
	Date      string   `json:"date"      validate:"required"`
	Slots     []string `json:"slots"     validate:"omitempty,dive,required"`
	Price     float64  `json:"price"     validate:"gte=0"`
	Status    string   `json:"status"    validate:"omitempty,oneof=pending confirmed approved rejected"`
}

// ToModel builds the stored booking. The status is always pending and the
// requester falls back to the authenticated email.
func (c *CreateBookingRequest) ToModel(email string) model.Booking {
	userEmail := c.UserEmail
	if userEmail == "" {
		userEmail = email
	}

	slots := c.Slots
	if slots == nil {
		slots = []string{}
	}

	now := timezone.Now()

	return model.Booking{
		CourtID:   c.CourtID,
		CourtName: c.CourtName,
		CourtType: c.CourtType,
		UserEmail: userEmail,
		UserName:  c.UserName,
		Date:      c.Date,
		Slots:     slots,
		Price:     c.Price,
		Status:    model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  email,
			ModifiedBy: email,
		},
	}
}

// UpdateStatusRequest relies on oneof alone so a missing status is reported
// with the allowed set.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"oneof=pending confirmed approved rejected"`
}

// ListFilter holds the optional exact-match filters of the booking list.
type ListFilter struct {
	Status string
	Email  string
}

func (f ListFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Status != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq})
	}

	if f.Email != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldUserEmail, Value: f.Email, Operator: gDto.FilterOperatorEq})
	}

	return gDto.FilterGroup{Filters: filters, Operator: gDto.FilterGroupOperatorAnd}
}

// ConfirmedFilter matches bookings in the confirmed view.
func ConfirmedFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.ConfirmedStatuses, Operator: gDto.FilterOperatorIn},
		},
	}
}

type BookingResponse struct {
	ID        primitive.ObjectID `json:"_id"`
	CourtID   string             `json:"courtId"`
	CourtName string             `json:"courtName"`
	CourtType string             `json:"courtType"`
	UserEmail string             `json:"userEmail"`
	UserName  string             `json:"userName"`
	Date      string             `json:"date"`
	Slots     []string           `json:"slots"`
	Price     float64            `json:"price"`
	Status    model.Status       `json:"status"`

	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CourtID = model.CourtID
	r.CourtName = model.CourtName
	r.CourtType = model.CourtType
	r.UserEmail = model.UserEmail
	r.UserName = model.UserName
	r.Date = model.Date
	r.Slots = model.Slots
	r.Price = model.Price
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)

	if r.Slots == nil {
		r.Slots = []string{}
	}
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type ConfirmedBookingsResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalPages int               `json:"totalPages"`
}

func (r *ConfirmedBookingsResponse) FromModels(models []model.Booking, total, limit int) {
	r.TotalPages = shared.CalculateTotalPage(total, limit)
	r.Bookings = FromModels(models)
}
