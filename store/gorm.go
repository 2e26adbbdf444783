package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bellavie/bella-booking/models"
)

// Gorm is the postgres-backed record store. One row per entity, keyed by id;
// slots live in their own table but are owned by the artist row.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) GetArtist(id string) (*models.Artist, error) {
	var artist models.Artist
	if err := s.db.Preload("TimeSlots").First(&artist, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &artist, nil
}

func (s *Gorm) PutArtist(artist *models.Artist) error {
	// Slots are written through PutSlot/DeleteSlot; a profile save must not
	// touch them.
	return s.db.Omit(clause.Associations).Save(artist).Error
}

func (s *Gorm) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.Preload("TimeSlots").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (s *Gorm) GetSlot(artistID, slotID string) (*models.TimeSlot, error) {
	var slot models.TimeSlot
	err := s.db.First(&slot, "id = ? AND artist_id = ?", slotID, artistID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (s *Gorm) PutSlot(slot *models.TimeSlot) error {
	return s.db.Save(slot).Error
}

func (s *Gorm) DeleteSlot(artistID, slotID string) error {
	return s.db.Where("id = ? AND artist_id = ?", slotID, artistID).
		Delete(&models.TimeSlot{}).Error
}

func (s *Gorm) GetBooking(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (s *Gorm) PutBooking(booking *models.Booking) error {
	return s.db.Save(booking).Error
}

func (s *Gorm) ListBookingsByArtist(artistID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("artist_id = ?", artistID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Gorm) ListBookingsByClient(clientID string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("client_id = ?", clientID).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Gorm) ListBookingsByStatus(status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Where("status = ?", status).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Gorm) GetReview(id string) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *Gorm) GetReviewByBooking(bookingID string) (*models.Review, error) {
	var review models.Review
	err := s.db.First(&review, "booking_id = ?", bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *Gorm) PutReview(review *models.Review) error {
	return s.db.Save(review).Error
}

func (s *Gorm) ListReviewsByArtist(artistID string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.Where("artist_id = ?", artistID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Gorm) ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.db.Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *Gorm) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Gorm) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Gorm) PutUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *Gorm) AddFavorite(fav *models.Favorite) error {
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(fav).Error
}

func (s *Gorm) RemoveFavorite(clientID, artistID string) error {
	return s.db.Where("client_id = ? AND artist_id = ?", clientID, artistID).
		Delete(&models.Favorite{}).Error
}

func (s *Gorm) ListFavorites(clientID string) ([]models.Favorite, error) {
	var favs []models.Favorite
	if err := s.db.Where("client_id = ?", clientID).Find(&favs).Error; err != nil {
		return nil, err
	}
	return favs, nil
}
