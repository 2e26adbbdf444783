package models

import "time"

const (
	RoleClient = "client"
	RoleArtist = "artist"
)

// User is an identity record. The ledger itself only consumes {id, email,
// role} from the token; the rest belongs to the identity boundary.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"unique"`
	Password  string    `json:"password,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
