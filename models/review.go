package models

import "time"

// Review is a client's rating of a completed booking. One review per booking;
// edits overwrite in place, there is no versioning.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	BookingID string    `json:"booking_id" gorm:"uniqueIndex"`
	ArtistID  string    `json:"artist_id" gorm:"index"`
	ClientID  string    `json:"client_id" gorm:"index"`
	Rating    int       `json:"rating"` // integer 1-5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
