package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/middleware"
	"github.com/bellavie/bella-booking/models"
)

// SetupArtistRoutes configures all artist and slot related routes
func SetupArtistRoutes(app *fiber.App, artist *controllers.ArtistController, booking *controllers.BookingController) {
	artists := app.Group("/artists")
	artists.Get("/", artist.GetAllArtists)
	artists.Post("/", middleware.Protected(), middleware.RequireRole(models.RoleArtist), artist.CreateOrGetArtist)
	artists.Get("/:id", artist.GetArtist)
	artists.Patch("/:id", middleware.Protected(), middleware.RequireRole(models.RoleArtist), artist.UpdateArtist)
	artists.Post("/:id/image", middleware.Protected(), middleware.RequireRole(models.RoleArtist), artist.UploadArtistImage)
	artists.Get("/:id/slots", artist.GetSlots)
	artists.Post("/:id/slots", middleware.Protected(), middleware.RequireRole(models.RoleArtist), artist.AddSlot)
	artists.Delete("/:id/slots/:slotId", middleware.Protected(), middleware.RequireRole(models.RoleArtist), artist.RemoveSlot)
	artists.Get("/:id/bookings", middleware.Protected(), middleware.RequireRole(models.RoleArtist), booking.GetArtistBookings)
}
