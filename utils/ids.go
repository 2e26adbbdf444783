package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewBookingID builds a unique booking id from the current time plus a
// random suffix, so ids stay unique even when two bookings land on the same
// millisecond.
func NewBookingID() string {
	return fmt.Sprintf("booking-%d-%s", time.Now().UnixMilli(), shortRandom())
}

// NewSlotID builds a slot id scoped to its artist.
func NewSlotID(artistID string) string {
	return fmt.Sprintf("%s-slot-%d-%s", artistID, time.Now().UnixMilli(), shortRandom())
}

// NewReviewID returns a fresh review id.
func NewReviewID() string {
	return "review-" + uuid.NewString()
}

func shortRandom() string {
	return uuid.NewString()[:8]
}
