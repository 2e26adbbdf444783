package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/middleware"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, auth *controllers.AuthController) {
	group := app.Group("/auth")

	// Public routes
	group.Post("/register", auth.Register)
	group.Post("/login", auth.Login)

	// Protected routes
	group.Get("/me", middleware.Protected(), auth.GetUserProfile)
	group.Post("/refresh", middleware.Protected(), auth.RefreshToken)
}
