package ledger

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bellavie/bella-booking/models"
	"github.com/bellavie/bella-booking/store"
	"github.com/bellavie/bella-booking/utils"
)

// ReviewAggregator owns reviews and keeps each artist's aggregate rating
// derivable from the review set. After every mutation it recomputes the
// mean and count from scratch rather than maintaining a running sum, so the
// aggregate can never drift from the reviews that back it.
type ReviewAggregator struct {
	reviews  store.ReviewStore
	bookings store.BookingStore
	artists  store.ArtistStore
}

func NewReviewAggregator(reviews store.ReviewStore, bookings store.BookingStore, artists store.ArtistStore) *ReviewAggregator {
	return &ReviewAggregator{reviews: reviews, bookings: bookings, artists: artists}
}

// SubmitReview records a rating for a completed booking and refreshes the
// artist's aggregate. One review per booking; a second submission conflicts.
func (a *ReviewAggregator) SubmitReview(bookingID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}

	booking, err := a.bookings.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("booking %s: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}
	if booking.Status != models.StatusCompleted {
		return nil, fmt.Errorf("booking %s is %s, not completed: %w", bookingID, booking.Status, ErrInvalidState)
	}

	if _, err := a.reviews.GetReviewByBooking(bookingID); err == nil {
		return nil, fmt.Errorf("booking %s already reviewed: %w", bookingID, ErrConflict)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	review := &models.Review{
		ID:        utils.NewReviewID(),
		BookingID: bookingID,
		ArtistID:  booking.ArtistID,
		ClientID:  booking.ClientID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := a.reviews.PutReview(review); err != nil {
		return nil, err
	}

	if err := a.recomputeArtist(booking.ArtistID); err != nil {
		return nil, err
	}
	return review, nil
}

// EditReview overwrites an existing review in place and refreshes the
// artist's aggregate.
func (a *ReviewAggregator) EditReview(reviewID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", ErrValidation)
	}

	review, err := a.reviews.GetReview(reviewID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("review %s: %w", reviewID, ErrNotFound)
		}
		return nil, err
	}

	review.Rating = rating
	review.Comment = comment
	if err := a.reviews.PutReview(review); err != nil {
		return nil, err
	}

	if err := a.recomputeArtist(review.ArtistID); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns reviews newest first, optionally filtered by artist and
// truncated to limit when limit > 0.
func (a *ReviewAggregator) ListReviews(artistID string, limit int) ([]models.Review, error) {
	var (
		reviews []models.Review
		err     error
	)
	if artistID != "" {
		reviews, err = a.reviews.ListReviewsByArtist(artistID)
	} else {
		reviews, err = a.reviews.ListReviews()
	}
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

// recomputeArtist rescans the artist's reviews and writes the fresh mean and
// count back onto the profile.
func (a *ReviewAggregator) recomputeArtist(artistID string) error {
	reviews, err := a.reviews.ListReviewsByArtist(artistID)
	if err != nil {
		return err
	}
	artist, err := a.artists.GetArtist(artistID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("artist %s: %w", artistID, ErrNotFound)
		}
		return err
	}

	artist.ReviewCount = len(reviews)
	if len(reviews) > 0 {
		sum := 0
		for _, review := range reviews {
			sum += review.Rating
		}
		artist.Rating = roundHalfUp(float64(sum) / float64(len(reviews)))
	}

	return a.artists.PutArtist(artist)
}

// roundHalfUp rounds to one decimal, halves away from zero.
func roundHalfUp(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
