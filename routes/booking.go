package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/middleware"
)

// SetupBookingRoutes configures all booking related routes
func SetupBookingRoutes(app *fiber.App, booking *controllers.BookingController) {
	bookings := app.Group("/bookings", middleware.Protected())
	bookings.Post("/", booking.CreateBooking)
	bookings.Get("/client", booking.GetMyBookings)
	bookings.Patch("/:id", booking.TransitionBooking)
}
