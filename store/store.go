package store

import (
	"errors"

	"github.com/bellavie/bella-booking/models"
)

// ErrNotFound is returned when a referenced id resolves to nothing.
var ErrNotFound = errors.New("record not found")

// ArtistStore persists artist profiles and the slots they own.
type ArtistStore interface {
	GetArtist(id string) (*models.Artist, error)
	PutArtist(artist *models.Artist) error
	ListArtists() ([]models.Artist, error)
	GetSlot(artistID, slotID string) (*models.TimeSlot, error)
	PutSlot(slot *models.TimeSlot) error
	DeleteSlot(artistID, slotID string) error
}

// BookingStore persists bookings. Bookings are only ever overwritten, never
// removed.
type BookingStore interface {
	GetBooking(id string) (*models.Booking, error)
	PutBooking(booking *models.Booking) error
	ListBookingsByArtist(artistID string) ([]models.Booking, error)
	ListBookingsByClient(clientID string) ([]models.Booking, error)
	ListBookingsByStatus(status models.BookingStatus) ([]models.Booking, error)
}

// ReviewStore persists reviews.
type ReviewStore interface {
	GetReview(id string) (*models.Review, error)
	GetReviewByBooking(bookingID string) (*models.Review, error)
	PutReview(review *models.Review) error
	ListReviewsByArtist(artistID string) ([]models.Review, error)
	ListReviews() ([]models.Review, error)
}

// UserStore persists identity records for the auth boundary.
type UserStore interface {
	GetUser(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	PutUser(user *models.User) error
}

// FavoriteStore persists a client's saved artists.
type FavoriteStore interface {
	AddFavorite(fav *models.Favorite) error
	RemoveFavorite(clientID, artistID string) error
	ListFavorites(clientID string) ([]models.Favorite, error)
}
