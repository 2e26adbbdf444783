package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/bellavie/bella-booking/ledger"
	"github.com/bellavie/bella-booking/utils"
)

// ledgerError maps a ledger error onto its HTTP status: validation 400,
// not found 404, transition/state/conflict 409, everything else 500.
func ledgerError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ledger.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, ledger.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ledger.ErrInvalidTransition),
		errors.Is(err, ledger.ErrInvalidState),
		errors.Is(err, ledger.ErrConflict):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(utils.ErrorResponse{
		Message: message,
		Error:   err.Error(),
	})
}
