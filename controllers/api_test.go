package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/ledger"
	"github.com/bellavie/bella-booking/models"
	"github.com/bellavie/bella-booking/routes"
	"github.com/bellavie/bella-booking/store"
)

func setupTestApp(t *testing.T) (*fiber.App, *store.Memory) {
	t.Helper()

	mem := store.NewMemory()
	availability := ledger.NewAvailabilityLedger(mem)
	bookings := ledger.NewBookingLedger(mem, mem)
	reviews := ledger.NewReviewAggregator(mem, mem, mem)

	app := fiber.New()
	routes.SetupAuthRoutes(app, &controllers.AuthController{Users: mem})
	routes.SetupArtistRoutes(app,
		&controllers.ArtistController{Availability: availability},
		&controllers.BookingController{Bookings: bookings})
	routes.SetupBookingRoutes(app, &controllers.BookingController{Bookings: bookings})
	routes.SetupReviewRoutes(app, &controllers.ReviewController{Reviews: reviews})
	routes.SetupFavoriteRoutes(app, &controllers.FavoriteController{Favorites: mem, Artists: mem})

	return app, mem
}

// bearer signs a token the way the auth controller does, using the default
// development secret.
func bearer(t *testing.T, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    userID,
		"email": userID + "@example.com",
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("solid_secret_key"))
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestRegisterAndLogin(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     "Amira",
		"email":    "amira@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.User
	decode(t, resp, &created)
	assert.Equal(t, models.RoleClient, created.Role)
	assert.Empty(t, created.Password)

	resp = doJSON(t, app, "POST", "/auth/register", "", fiber.Map{
		"name":     "Amira Again",
		"email":    "amira@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "amira@example.com",
		"password": "secret123",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var login struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, resp, &login)
	assert.NotEmpty(t, login.Token)

	resp = doJSON(t, app, "POST", "/auth/login", "", fiber.Map{
		"email":    "amira@example.com",
		"password": "wrong",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestArtistEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)
	artistAuth := bearer(t, "a1", models.RoleArtist)

	resp := doJSON(t, app, "POST", "/artists", artistAuth, fiber.Map{"name": "Bella"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var artist models.Artist
	decode(t, resp, &artist)
	assert.Equal(t, "a1", artist.ID)
	assert.Len(t, artist.TimeSlots, 2)

	// Clients cannot initialize artist profiles.
	resp = doJSON(t, app, "POST", "/artists", bearer(t, "c1", models.RoleClient), fiber.Map{"name": "Nope"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/artists", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var artists []models.Artist
	decode(t, resp, &artists)
	assert.Len(t, artists, 1)

	resp = doJSON(t, app, "GET", "/artists/a1", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/artists/missing", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/artists/a1", artistAuth, fiber.Map{"location": "Brooklyn, NY"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &artist)
	assert.Equal(t, "Brooklyn, NY", artist.Location)
	assert.Equal(t, "Bella", artist.Name)
}

func TestSlotEndpoints(t *testing.T) {
	app, _ := setupTestApp(t)
	artistAuth := bearer(t, "a1", models.RoleArtist)

	resp := doJSON(t, app, "POST", "/artists", artistAuth, fiber.Map{"name": "Bella"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/artists/a1/slots", artistAuth, fiber.Map{
		"date": "2025-11-02", "time": "10:00", "duration": 2, "service": "Bridal", "price": 200,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var slot models.TimeSlot
	decode(t, resp, &slot)
	assert.True(t, slot.IsAvailable)

	resp = doJSON(t, app, "POST", "/artists/a1/slots", artistAuth, fiber.Map{
		"date": "2025-11-02", "time": "10:00", "duration": 0, "service": "Bridal", "price": 200,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/artists/missing/slots", artistAuth, fiber.Map{
		"date": "2025-11-02", "time": "10:00", "duration": 2, "service": "Bridal", "price": 200,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Slot removal is idempotent: deleting a slot that never existed is 204.
	resp = doJSON(t, app, "DELETE", "/artists/a1/slots/never-existed", artistAuth, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestBookingAndReviewFlow(t *testing.T) {
	app, _ := setupTestApp(t)
	artistAuth := bearer(t, "a1", models.RoleArtist)
	clientAuth := bearer(t, "c1", models.RoleClient)

	resp := doJSON(t, app, "POST", "/artists", artistAuth, fiber.Map{"name": "Bella"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/artists/a1/slots", artistAuth, fiber.Map{
		"date": "2025-11-02", "time": "10:00", "duration": 2, "service": "Bridal", "price": 200,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var slot models.TimeSlot
	decode(t, resp, &slot)

	resp = doJSON(t, app, "POST", "/bookings", clientAuth, fiber.Map{
		"artist_id":    "a1",
		"slot_id":      slot.ID,
		"client_name":  "Amira",
		"client_email": "amira@example.com",
		"client_phone": "555-0101",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var booking models.Booking
	decode(t, resp, &booking)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "c1", booking.ClientID)
	assert.Equal(t, 200.0, booking.Price)

	// Completing before approval is an illegal transition.
	resp = doJSON(t, app, "PATCH", "/bookings/"+booking.ID, artistAuth, fiber.Map{"action": "complete"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/bookings/"+booking.ID, artistAuth, fiber.Map{"action": "approve"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
	resp = doJSON(t, app, "PATCH", "/bookings/"+booking.ID, artistAuth, fiber.Map{"action": "complete"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "PATCH", "/bookings/missing", artistAuth, fiber.Map{"action": "approve"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/reviews", clientAuth, fiber.Map{
		"booking_id": booking.ID, "rating": 5, "comment": "Great",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/reviews", clientAuth, fiber.Map{
		"booking_id": booking.ID, "rating": 3, "comment": "again",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/artists/a1", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var artist models.Artist
	decode(t, resp, &artist)
	assert.Equal(t, 5.0, artist.Rating)
	assert.Equal(t, 1, artist.ReviewCount)

	resp = doJSON(t, app, "GET", "/reviews?artistId=a1&limit=10", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var listed []models.Review
	decode(t, resp, &listed)
	assert.Len(t, listed, 1)

	resp = doJSON(t, app, "GET", "/bookings/client", clientAuth, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var mine []models.Booking
	decode(t, resp, &mine)
	assert.Len(t, mine, 1)
}

func TestBookingRequiresAuth(t *testing.T) {
	app, _ := setupTestApp(t)

	resp := doJSON(t, app, "POST", "/bookings", "", fiber.Map{"artist_id": "a1", "slot_id": "s1"})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestFavorites(t *testing.T) {
	app, _ := setupTestApp(t)
	artistAuth := bearer(t, "a1", models.RoleArtist)
	clientAuth := bearer(t, "c1", models.RoleClient)

	resp := doJSON(t, app, "POST", "/artists", artistAuth, fiber.Map{"name": "Bella"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/favorites/a1", clientAuth, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/favorites/missing", clientAuth, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/favorites", clientAuth, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var favs []models.Favorite
	decode(t, resp, &favs)
	assert.Len(t, favs, 1)

	resp = doJSON(t, app, "DELETE", "/favorites/a1", clientAuth, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "DELETE", "/favorites/a1", clientAuth, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/favorites", clientAuth, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	favs = nil
	decode(t, resp, &favs)
	assert.Empty(t, favs)
}
