package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Pocten/budget-planner-backend-sub000/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError translates the service error taxonomy into an HTTP
// status. Anything outside the taxonomy is a 500 with a generic body; the
// wrapped detail stays server-side.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidArgument):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAccessDenied):
		return apiError(c, fiber.StatusForbidden, "access denied")
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyExists):
		return apiError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrLinkExpired):
		return apiError(c, fiber.StatusGone, "invite link expired")
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid " + name)
	}
	return uint(value), nil
}
