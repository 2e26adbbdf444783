package store

import (
	"sort"
	"sync"

	"github.com/bellavie/bella-booking/models"
)

// Memory is an in-memory record store used by tests and demo runs. It honours
// the same contract as the postgres store: get-by-id, put, delete, scan-all.
// Values are copied in and out so callers never share memory with the store.
type Memory struct {
	mu        sync.RWMutex
	artists   map[string]models.Artist
	slots     map[string]models.TimeSlot
	bookings  map[string]models.Booking
	reviews   map[string]models.Review
	favorites map[string]models.Favorite
	users     map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{
		artists:   make(map[string]models.Artist),
		slots:     make(map[string]models.TimeSlot),
		bookings:  make(map[string]models.Booking),
		reviews:   make(map[string]models.Review),
		favorites: make(map[string]models.Favorite),
		users:     make(map[string]models.User),
	}
}

func (m *Memory) GetArtist(id string) (*models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	artist, ok := m.artists[id]
	if !ok {
		return nil, ErrNotFound
	}
	artist.TimeSlots = m.slotsOf(id)
	return &artist, nil
}

func (m *Memory) PutArtist(artist *models.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *artist
	stored.TimeSlots = nil
	m.artists[artist.ID] = stored
	return nil
}

func (m *Memory) ListArtists() ([]models.Artist, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	artists := make([]models.Artist, 0, len(m.artists))
	for id, artist := range m.artists {
		artist.TimeSlots = m.slotsOf(id)
		artists = append(artists, artist)
	}
	return artists, nil
}

// slotsOf collects an artist's slots; callers must hold at least a read lock.
func (m *Memory) slotsOf(artistID string) []models.TimeSlot {
	var slots []models.TimeSlot
	for _, slot := range m.slots {
		if slot.ArtistID == artistID {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	return slots
}

func (m *Memory) GetSlot(artistID, slotID string) (*models.TimeSlot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	slot, ok := m.slots[slotID]
	if !ok || slot.ArtistID != artistID {
		return nil, ErrNotFound
	}
	return &slot, nil
}

func (m *Memory) PutSlot(slot *models.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.slots[slot.ID] = *slot
	return nil
}

func (m *Memory) DeleteSlot(artistID, slotID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if slot, ok := m.slots[slotID]; ok && slot.ArtistID == artistID {
		delete(m.slots, slotID)
	}
	return nil
}

func (m *Memory) GetBooking(id string) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	booking, ok := m.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (m *Memory) PutBooking(booking *models.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookings[booking.ID] = *booking
	return nil
}

func (m *Memory) ListBookingsByArtist(artistID string) ([]models.Booking, error) {
	return m.filterBookings(func(b models.Booking) bool { return b.ArtistID == artistID })
}

func (m *Memory) ListBookingsByClient(clientID string) ([]models.Booking, error) {
	return m.filterBookings(func(b models.Booking) bool { return b.ClientID == clientID })
}

func (m *Memory) ListBookingsByStatus(status models.BookingStatus) ([]models.Booking, error) {
	return m.filterBookings(func(b models.Booking) bool { return b.Status == status })
}

func (m *Memory) filterBookings(keep func(models.Booking) bool) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var bookings []models.Booking
	for _, booking := range m.bookings {
		if keep(booking) {
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

func (m *Memory) GetReview(id string) (*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	review, ok := m.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &review, nil
}

func (m *Memory) GetReviewByBooking(bookingID string) (*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, review := range m.reviews {
		if review.BookingID == bookingID {
			r := review
			return &r, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) PutReview(review *models.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.reviews[review.ID] = *review
	return nil
}

func (m *Memory) ListReviewsByArtist(artistID string) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reviews []models.Review
	for _, review := range m.reviews {
		if review.ArtistID == artistID {
			reviews = append(reviews, review)
		}
	}
	sortReviews(reviews)
	return reviews, nil
}

func (m *Memory) ListReviews() ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	reviews := make([]models.Review, 0, len(m.reviews))
	for _, review := range m.reviews {
		reviews = append(reviews, review)
	}
	sortReviews(reviews)
	return reviews, nil
}

// sortReviews orders newest first, matching the postgres store.
func sortReviews(reviews []models.Review) {
	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func (m *Memory) GetUser(id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (m *Memory) GetUserByEmail(email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) PutUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users[user.ID] = *user
	return nil
}

func (m *Memory) AddFavorite(fav *models.Favorite) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.favorites[fav.ClientID+"/"+fav.ArtistID] = *fav
	return nil
}

func (m *Memory) RemoveFavorite(clientID, artistID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.favorites, clientID+"/"+artistID)
	return nil
}

func (m *Memory) ListFavorites(clientID string) ([]models.Favorite, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var favs []models.Favorite
	for _, fav := range m.favorites {
		if fav.ClientID == clientID {
			favs = append(favs, fav)
		}
	}
	return favs, nil
}
