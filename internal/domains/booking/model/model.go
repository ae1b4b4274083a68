package model

import (
	"slices"
	"strings"

	"playcourt/shared/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionName = "bookings"
	EntityName     = "booking"

	FieldStatus    = "status"
	FieldUserEmail = "userEmail"
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Statuses lists every value a stored booking status may take.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusApproved, StatusRejected}

// ConfirmedStatuses are the states listed by the confirmed bookings view.
var ConfirmedStatuses = []Status{StatusConfirmed, StatusApproved}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// AllowedStatuses renders Statuses the way validation messages name them.
func AllowedStatuses() string {
	values := make([]string, len(Statuses))
	for idx, status := range Statuses {
		values[idx] = string(status)
	}

	return strings.Join(values, " ")
}

type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	CourtID   string             `bson:"courtId"`
	CourtName string             `bson:"courtName"`
	CourtType string             `bson:"courtType"`
	UserEmail string             `bson:"userEmail"`
	UserName  string             `bson:"userName"`
	Date      string             `bson:"date"`
	Slots     []string           `bson:"slots"`
	Price     float64            `bson:"price"`
	Status    Status             `bson:"status"`

	model.Metadata `bson:",inline"`
}
