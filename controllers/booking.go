package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/ledger"
	"github.com/bellavie/bella-booking/models"
	"github.com/bellavie/bella-booking/utils"
)

// BookingController serves the booking lifecycle.
type BookingController struct {
	Bookings *ledger.BookingLedger
}

// CreateBooking godoc
// @Summary Book a published slot
// @Accept json
// @Produce json
// @Success 201 {object} models.Booking
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /bookings [post]
func (ctl *BookingController) CreateBooking(c *fiber.Ctx) error {
	var req ledger.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	// The client identity comes from the token, never the body.
	if userID, ok := c.Locals("userID").(string); ok {
		req.ClientID = userID
	}

	booking, err := ctl.Bookings.CreateBooking(req)
	if err != nil {
		return ledgerError(c, "Failed to create booking", err)
	}
	return c.Status(fiber.StatusCreated).JSON(booking)
}

// TransitionBooking godoc
// @Summary Apply a lifecycle action to a booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /bookings/{id} [patch]
func (ctl *BookingController) TransitionBooking(c *fiber.Ctx) error {
	var body struct {
		Action models.BookingAction `json:"action"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if body.Action == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Action is required",
			Error:   "missing action",
		})
	}

	booking, err := ctl.Bookings.Transition(c.Params("id"), body.Action)
	if err != nil {
		return ledgerError(c, "Failed to transition booking", err)
	}
	return c.JSON(booking)
}

// GetArtistBookings lists bookings placed with an artist.
func (ctl *BookingController) GetArtistBookings(c *fiber.Ctx) error {
	bookings, err := ctl.Bookings.ListByArtist(c.Params("id"))
	if err != nil {
		return ledgerError(c, "Failed to fetch bookings", err)
	}
	return c.JSON(bookings)
}

// GetMyBookings lists the authenticated client's bookings.
func (ctl *BookingController) GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	bookings, err := ctl.Bookings.ListByClient(userID)
	if err != nil {
		return ledgerError(c, "Failed to fetch bookings", err)
	}
	return c.JSON(bookings)
}
