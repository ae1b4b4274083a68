package model

import "time"

type EventType string

const (
	EventCreated       EventType = "booking.created"
	EventStatusChanged EventType = "booking.status_changed"
	EventApproved      EventType = "booking.approved"
	EventDeleted       EventType = "booking.deleted"
)

// Event is published after a booking write succeeds.
type Event struct {
	Type       EventType `json:"type"`
	BookingID  string    `json:"bookingId"`
	Status     Status    `json:"status,omitempty"`
	UserEmail  string    `json:"userEmail,omitempty"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
