package controllers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/ledger"
	"github.com/bellavie/bella-booking/models"
	"github.com/bellavie/bella-booking/redis"
	"github.com/bellavie/bella-booking/utils"
)

// ArtistController serves artist profiles and slot publication.
type ArtistController struct {
	Availability *ledger.AvailabilityLedger
}

// GetAllArtists godoc
// @Summary List all artists
// @Produce json
// @Success 200 {array} models.Artist
// @Failure 500 {object} utils.ErrorResponse
// @Router /artists [get]
func (ctl *ArtistController) GetAllArtists(c *fiber.Ctx) error {
	if payload, ok := redis.GetArtists(); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(payload)
	}

	artists, err := ctl.Availability.ListArtists()
	if err != nil {
		return ledgerError(c, "Failed to fetch artists", err)
	}

	if payload, err := json.Marshal(artists); err == nil {
		redis.SetArtists(payload)
	}
	return c.JSON(artists)
}

// GetArtist godoc
// @Summary Get an artist by ID
// @Produce json
// @Param id path string true "Artist ID"
// @Success 200 {object} models.Artist
// @Failure 404 {object} utils.ErrorResponse
// @Router /artists/{id} [get]
func (ctl *ArtistController) GetArtist(c *fiber.Ctx) error {
	artist, err := ctl.Availability.GetArtist(c.Params("id"))
	if err != nil {
		return ledgerError(c, "Artist not found", err)
	}
	return c.JSON(artist)
}

// CreateOrGetArtist initializes the authenticated artist's profile, or
// returns the existing one untouched.
func (ctl *ArtistController) CreateOrGetArtist(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	var seed models.Artist
	if err := c.BodyParser(&seed); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	artist, err := ctl.Availability.CreateOrGetArtist(userID, seed)
	if err != nil {
		return ledgerError(c, "Failed to initialize artist", err)
	}
	redis.InvalidateArtists()
	return c.Status(fiber.StatusCreated).JSON(artist)
}

// UpdateArtist merges the provided profile fields into the artist record.
func (ctl *ArtistController) UpdateArtist(c *fiber.Ctx) error {
	var patch models.ArtistPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	artist, err := ctl.Availability.UpdateArtist(c.Params("id"), patch)
	if err != nil {
		return ledgerError(c, "Failed to update artist", err)
	}
	redis.InvalidateArtists()
	return c.JSON(artist)
}

// GetSlots lists the artist's published slots.
func (ctl *ArtistController) GetSlots(c *fiber.Ctx) error {
	slots, err := ctl.Availability.ListSlots(c.Params("id"))
	if err != nil {
		return ledgerError(c, "Artist not found", err)
	}
	return c.JSON(slots)
}

// AddSlot godoc
// @Summary Publish a new time slot
// @Accept json
// @Produce json
// @Param id path string true "Artist ID"
// @Success 201 {object} models.TimeSlot
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /artists/{id}/slots [post]
func (ctl *ArtistController) AddSlot(c *fiber.Ctx) error {
	var spec ledger.SlotSpec
	if err := c.BodyParser(&spec); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	slot, err := ctl.Availability.AddSlot(c.Params("id"), spec)
	if err != nil {
		return ledgerError(c, "Failed to add slot", err)
	}
	redis.InvalidateArtists()
	return c.Status(fiber.StatusCreated).JSON(slot)
}

// RemoveSlot retracts a slot. Removing a slot that is already gone succeeds.
func (ctl *ArtistController) RemoveSlot(c *fiber.Ctx) error {
	if err := ctl.Availability.RemoveSlot(c.Params("id"), c.Params("slotId")); err != nil {
		return ledgerError(c, "Failed to remove slot", err)
	}
	redis.InvalidateArtists()
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadArtistImage stores a profile image and saves its URL on the record.
func (ctl *ArtistController) UploadArtistImage(c *fiber.Ctx) error {
	artistID := c.Params("id")

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Image file is required",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to read image file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadArtistImage(file, artistID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	artist, err := ctl.Availability.UpdateArtist(artistID, models.ArtistPatch{Image: &url})
	if err != nil {
		return ledgerError(c, "Failed to save image URL", err)
	}
	redis.InvalidateArtists()
	return c.JSON(artist)
}
