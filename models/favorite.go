package models

import "time"

// Favorite marks an artist saved by a client.
type Favorite struct {
	ClientID  string    `json:"client_id" gorm:"primaryKey"`
	ArtistID  string    `json:"artist_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}
