package models

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingAction is a requested lifecycle transition.
type BookingAction string

const (
	ActionApprove  BookingAction = "approve"
	ActionDecline  BookingAction = "decline"
	ActionComplete BookingAction = "complete"
	ActionCancel   BookingAction = "cancel"
)

// Booking is a client's claim on a published slot. Client contact fields and
// the slot's service/date/time/duration/price are snapshots taken at creation
// time, not live links. Bookings are never deleted; cancellation is a status.
type Booking struct {
	ID          string        `json:"id" gorm:"primaryKey"`
	ArtistID    string        `json:"artist_id" gorm:"index"`
	ClientID    string        `json:"client_id" gorm:"index"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	ClientPhone string        `json:"client_phone"`
	Service     string        `json:"service"`
	Date        string        `json:"date"`
	Time        string        `json:"time"`
	Duration    float64       `json:"duration"`
	Price       float64       `json:"price"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NextStatus applies the lifecycle table:
// pending --approve--> confirmed, pending --decline--> cancelled,
// confirmed --complete--> completed, confirmed --cancel--> cancelled.
// completed and cancelled are terminal.
func (b *Booking) NextStatus(action BookingAction) (BookingStatus, error) {
	switch b.Status {
	case StatusPending:
		switch action {
		case ActionApprove:
			return StatusConfirmed, nil
		case ActionDecline:
			return StatusCancelled, nil
		}
	case StatusConfirmed:
		switch action {
		case ActionComplete:
			return StatusCompleted, nil
		case ActionCancel:
			return StatusCancelled, nil
		}
	case StatusCompleted, StatusCancelled:
		return "", fmt.Errorf("no transitions allowed from %s", b.Status)
	}
	return "", fmt.Errorf("invalid transition from %s via %s", b.Status, action)
}

// EndsAt resolves the booking's wall-clock end from its date, time and
// duration snapshot. Returns an error if the snapshot is malformed.
func (b *Booking) EndsAt(loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.Duration * float64(time.Hour))), nil
}
