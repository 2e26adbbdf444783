package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/ledger"
	"github.com/bellavie/bella-booking/redis"
	"github.com/bellavie/bella-booking/utils"
)

// ReviewController serves review submission and listing.
type ReviewController struct {
	Reviews *ledger.ReviewAggregator
}

// SubmitReview godoc
// @Summary Review a completed booking
// @Accept json
// @Produce json
// @Success 201 {object} models.Review
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /reviews [post]
func (ctl *ReviewController) SubmitReview(c *fiber.Ctx) error {
	var body struct {
		BookingID string `json:"booking_id"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	review, err := ctl.Reviews.SubmitReview(body.BookingID, body.Rating, body.Comment)
	if err != nil {
		return ledgerError(c, "Failed to submit review", err)
	}
	// The artist's aggregate rating just changed.
	redis.InvalidateArtists()
	return c.Status(fiber.StatusCreated).JSON(review)
}

// EditReview overwrites an existing review in place.
func (ctl *ReviewController) EditReview(c *fiber.Ctx) error {
	var body struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	review, err := ctl.Reviews.EditReview(c.Params("id"), body.Rating, body.Comment)
	if err != nil {
		return ledgerError(c, "Failed to edit review", err)
	}
	redis.InvalidateArtists()
	return c.JSON(review)
}

// GetReviews godoc
// @Summary List reviews, newest first
// @Produce json
// @Param artistId query string false "Filter by artist"
// @Param limit query int false "Truncate to limit"
// @Success 200 {array} models.Review
// @Failure 500 {object} utils.ErrorResponse
// @Router /reviews [get]
func (ctl *ReviewController) GetReviews(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "0"))

	reviews, err := ctl.Reviews.ListReviews(c.Query("artistId"), limit)
	if err != nil {
		return ledgerError(c, "Failed to fetch reviews", err)
	}
	return c.JSON(reviews)
}
