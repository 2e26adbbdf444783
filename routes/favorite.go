package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/controllers"
	"github.com/bellavie/bella-booking/middleware"
)

// SetupFavoriteRoutes configures all favorite related routes
func SetupFavoriteRoutes(app *fiber.App, favorite *controllers.FavoriteController) {
	favorites := app.Group("/favorites", middleware.Protected())
	favorites.Get("/", favorite.GetFavorites)
	favorites.Post("/:artistId", favorite.AddFavorite)
	favorites.Delete("/:artistId", favorite.RemoveFavorite)
}
