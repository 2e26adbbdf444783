package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/middleware"
)

// SetupReviewRoutes configures all review related routes
func SetupReviewRoutes(app *fiber.App, review *controllers.ReviewController) {
	reviews := app.Group("/reviews")
	reviews.Get("/", review.GetReviews)
	reviews.Post("/", middleware.Protected(), review.SubmitReview)
	reviews.Patch("/:id", middleware.Protected(), review.EditReview)
}
