package api

import (
	"errors"

	"github.com/cyclia-app/cyclia/internal/models"
	"github.com/cyclia-app/cyclia/internal/services"
	"github.com/gofiber/fiber/v2"
)

const contextUserKey = "current_user"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

// respondServiceError maps the services error taxonomy onto HTTP statuses.
// Unknown errors become a generic 500 so internals never leak to the client.
func respondServiceError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case services.IsValidation(err):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, services.ErrNotOwner):
		return apiError(c, fiber.StatusForbidden, "forbidden")
	case services.IsNotFound(err):
		return apiError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusConflict, "email already exists")
	default:
		return apiError(c, fiber.StatusInternalServerError, fallback)
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.SendString("ok")
}
