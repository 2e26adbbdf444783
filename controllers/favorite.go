package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/models"
	"github.com/bellavie/bella-booking/store"
)

// FavoriteController lets clients save artists to their dashboard.
type FavoriteController struct {
	Favorites store.FavoriteStore
	Artists   store.ArtistStore
}

func (ctl *FavoriteController) clientID(c *fiber.Ctx) (string, bool) {
	userID, ok := c.Locals("userID").(string)
	return userID, ok && userID != ""
}

// AddFavorite saves an artist for the authenticated client.
func (ctl *FavoriteController) AddFavorite(c *fiber.Ctx) error {
	clientID, ok := ctl.clientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	artistID := c.Params("artistId")
	if _, err := ctl.Artists.GetArtist(artistID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Artist not found",
		})
	}

	fav := &models.Favorite{ClientID: clientID, ArtistID: artistID}
	if err := ctl.Favorites.AddFavorite(fav); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save favorite",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fav)
}

// RemoveFavorite unsaves an artist. Removing a missing favorite succeeds.
func (ctl *FavoriteController) RemoveFavorite(c *fiber.Ctx) error {
	clientID, ok := ctl.clientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	if err := ctl.Favorites.RemoveFavorite(clientID, c.Params("artistId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove favorite",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFavorites lists the authenticated client's saved artists.
func (ctl *FavoriteController) GetFavorites(c *fiber.Ctx) error {
	clientID, ok := ctl.clientID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	favs, err := ctl.Favorites.ListFavorites(clientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch favorites",
		})
	}
	return c.JSON(favs)
}
