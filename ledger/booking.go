package ledger

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bellavie/bella-booking/models"
	"github.com/bellavie/bella-booking/store"
	"github.com/bellavie/bella-booking/utils"
)

// BookingRequest carries the client contact snapshot and the slot reference
// for a new booking.
type BookingRequest struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	ArtistID    string `json:"artist_id"`
	SlotID      string `json:"slot_id"`
	Notes       string `json:"notes"`
}

// BookingLedger owns the booking lifecycle. It depends on the artist store to
// resolve slot references.
type BookingLedger struct {
	bookings store.BookingStore
	artists  store.ArtistStore
}

func NewBookingLedger(bookings store.BookingStore, artists store.ArtistStore) *BookingLedger {
	return &BookingLedger{bookings: bookings, artists: artists}
}

// CreateBooking snapshots the chosen slot and the client contact fields into
// a new pending booking. The consumed slot is flipped to unavailable with a
// plain read-modify-write; concurrent claims on the same slot resolve
// last-write-wins.
func (l *BookingLedger) CreateBooking(req BookingRequest) (*models.Booking, error) {
	slot, err := l.artists.GetSlot(req.ArtistID, req.SlotID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("slot %s: %w", req.SlotID, ErrNotFound)
		}
		return nil, err
	}
	if !slot.IsAvailable {
		return nil, fmt.Errorf("slot %s is no longer available: %w", req.SlotID, ErrNotFound)
	}

	booking := &models.Booking{
		ID:          utils.NewBookingID(),
		ArtistID:    req.ArtistID,
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Service:     slot.Service,
		Date:        slot.Date,
		Time:        slot.Time,
		Duration:    slot.Duration,
		Price:       slot.Price,
		Status:      models.StatusPending,
		Notes:       req.Notes,
		CreatedAt:   time.Now(),
	}
	if err := l.bookings.PutBooking(booking); err != nil {
		return nil, err
	}

	slot.IsAvailable = false
	if err := l.artists.PutSlot(slot); err != nil {
		// The booking already exists; a stale slot flag only risks a
		// second claim resolving last-write-wins.
		log.Printf("failed to mark slot %s unavailable: %v", slot.ID, err)
	}

	return booking, nil
}

// Transition applies one lifecycle action to a booking. Illegal actions leave
// the stored status unchanged.
func (l *BookingLedger) Transition(bookingID string, action models.BookingAction) (*models.Booking, error) {
	booking, err := l.bookings.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}

	next, err := booking.NextStatus(action)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidTransition)
	}

	booking.Status = next
	if err := l.bookings.PutBooking(booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ListByArtist returns an unordered snapshot of the artist's bookings.
func (l *BookingLedger) ListByArtist(artistID string) ([]models.Booking, error) {
	return l.bookings.ListBookingsByArtist(artistID)
}

// ListByClient returns an unordered snapshot of the client's bookings.
func (l *BookingLedger) ListByClient(clientID string) ([]models.Booking, error) {
	return l.bookings.ListBookingsByClient(clientID)
}

// CompleteElapsed marks confirmed bookings whose end time has passed as
// completed. Driven by the cron sweep; bookings with a malformed snapshot are
// skipped and logged rather than failing the sweep.
func (l *BookingLedger) CompleteElapsed(now time.Time) (int, error) {
	confirmed, err := l.bookings.ListBookingsByStatus(models.StatusConfirmed)
	if err != nil {
		return 0, err
	}

	completed := 0
	for i := range confirmed {
		booking := confirmed[i]
		end, err := booking.EndsAt(now.Location())
		if err != nil {
			log.Printf("skipping booking %s with malformed schedule: %v", booking.ID, err)
			continue
		}
		if end.After(now) {
			continue
		}
		if _, err := l.Transition(booking.ID, models.ActionComplete); err != nil {
			log.Printf("failed to complete booking %s: %v", booking.ID, err)
			continue
		}
		completed++
	}
	return completed, nil
}
