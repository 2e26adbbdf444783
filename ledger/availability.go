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

// Defaults applied to a freshly created artist profile.
var (
	defaultSpecialties = models.StringList{"Bridal Makeup", "Evening Glam"}
	defaultBio         = "Professional makeup artist specializing in bridal and special occasion makeup."
)

const (
	defaultRating     = 4.9
	defaultHourlyRate = 100
	defaultLocation   = "New York, NY"
	defaultImage      = "/api/placeholder/300/300"
)

// SlotSpec carries the artist-supplied fields of a new slot.
type SlotSpec struct {
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Duration float64 `json:"duration"`
	Service  string  `json:"service"`
	Price    float64 `json:"price"`
}

// AvailabilityLedger owns artist profiles and the slots they publish.
type AvailabilityLedger struct {
	artists store.ArtistStore
}

func NewAvailabilityLedger(artists store.ArtistStore) *AvailabilityLedger {
	return &AvailabilityLedger{artists: artists}
}

// CreateOrGetArtist returns the existing profile for artistID, or creates one
// from seed plus system defaults. Idempotent: a second call never resets the
// rating, review count or published slots.
func (l *AvailabilityLedger) CreateOrGetArtist(artistID string, seed models.Artist) (*models.Artist, error) {
	artist, err := l.artists.GetArtist(artistID)
	if err == nil {
		return artist, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	name := seed.Name
	if name == "" {
		name = "Unknown Artist"
	}
	created := &models.Artist{
		ID:          artistID,
		Name:        name,
		Email:       seed.Email,
		Specialties: defaultSpecialties,
		Rating:      defaultRating,
		ReviewCount: 0,
		HourlyRate:  defaultHourlyRate,
		Location:    defaultLocation,
		Bio:         defaultBio,
		Image:       defaultImage,
	}
	if err := l.artists.PutArtist(created); err != nil {
		return nil, err
	}

	// Seed a starter schedule so a new profile is bookable right away.
	starters := []models.TimeSlot{
		{ID: artistID + "-slot-1", ArtistID: artistID, Date: "2025-11-02", Time: "10:00", Duration: 2, Service: "Bridal Makeup", Price: 200, IsAvailable: true},
		{ID: artistID + "-slot-2", ArtistID: artistID, Date: "2025-11-02", Time: "15:00", Duration: 1.5, Service: "Evening Glam", Price: 150, IsAvailable: true},
	}
	for i := range starters {
		if err := l.artists.PutSlot(&starters[i]); err != nil {
			return nil, err
		}
	}
	created.TimeSlots = starters

	return created, nil
}

// ListArtists returns a snapshot of all artist profiles, unordered.
func (l *AvailabilityLedger) ListArtists() ([]models.Artist, error) {
	return l.artists.ListArtists()
}

func (l *AvailabilityLedger) GetArtist(artistID string) (*models.Artist, error) {
	artist, err := l.artists.GetArtist(artistID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("artist %s: %w", artistID, ErrNotFound)
	}
	return artist, err
}

// AddSlot validates and publishes a new slot for the artist. There is no
// overlap checking against the artist's existing slots.
func (l *AvailabilityLedger) AddSlot(artistID string, spec SlotSpec) (*models.TimeSlot, error) {
	if err := validateSlotSpec(spec); err != nil {
		return nil, err
	}
	if _, err := l.artists.GetArtist(artistID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("artist %s: %w", artistID, ErrNotFound)
		}
		return nil, err
	}

	slot := &models.TimeSlot{
		ID:          utils.NewSlotID(artistID),
		ArtistID:    artistID,
		Date:        spec.Date,
		Time:        spec.Time,
		Duration:    spec.Duration,
		Service:     spec.Service,
		Price:       spec.Price,
		IsAvailable: true,
	}
	if err := l.artists.PutSlot(slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func validateSlotSpec(spec SlotSpec) error {
	if spec.Duration <= 0 {
		return fmt.Errorf("duration must be positive: %w", ErrValidation)
	}
	if increments := spec.Duration * 2; increments != math.Trunc(increments) {
		return fmt.Errorf("duration must be in 0.5 hour increments: %w", ErrValidation)
	}
	if spec.Price < 0 {
		return fmt.Errorf("price must not be negative: %w", ErrValidation)
	}
	if _, err := time.Parse("2006-01-02", spec.Date); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", ErrValidation)
	}
	if _, err := time.Parse("15:04", spec.Time); err != nil {
		return fmt.Errorf("time must be HH:MM: %w", ErrValidation)
	}
	return nil
}

// RemoveSlot retracts a published slot. Removing an unknown slot is a no-op,
// not an error.
func (l *AvailabilityLedger) RemoveSlot(artistID, slotID string) error {
	return l.artists.DeleteSlot(artistID, slotID)
}

// ListSlots returns the artist's published slots.
func (l *AvailabilityLedger) ListSlots(artistID string) ([]models.TimeSlot, error) {
	artist, err := l.GetArtist(artistID)
	if err != nil {
		return nil, err
	}
	return artist.TimeSlots, nil
}

// UpdateArtist merges the non-nil fields of patch into the profile. Slots are
// never touched here.
func (l *AvailabilityLedger) UpdateArtist(artistID string, patch models.ArtistPatch) (*models.Artist, error) {
	artist, err := l.artists.GetArtist(artistID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("artist %s: %w", artistID, ErrNotFound)
		}
		return nil, err
	}

	if patch.Name != nil {
		artist.Name = *patch.Name
	}
	if patch.Email != nil {
		artist.Email = *patch.Email
	}
	if patch.Specialties != nil {
		artist.Specialties = *patch.Specialties
	}
	if patch.HourlyRate != nil {
		artist.HourlyRate = *patch.HourlyRate
	}
	if patch.Location != nil {
		artist.Location = *patch.Location
	}
	if patch.Bio != nil {
		artist.Bio = *patch.Bio
	}
	if patch.Image != nil {
		artist.Image = *patch.Image
	}

	if err := l.artists.PutArtist(artist); err != nil {
		return nil, err
	}
	return artist, nil
}
