package api

import (
	"net/url"

	"github.com/cyclia-app/cyclia/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileInput struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

type changePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type deleteAccountInput struct {
	Password string `json:"password"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}

// GetProfileByEmail keeps the legacy lookup route but only ever serves the
// caller's own record.
func (handler *Handler) GetProfileByEmail(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	rawEmail, err := url.PathUnescape(c.Params("email"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	email := services.NormalizeAuthEmail(rawEmail)
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}

	if email != services.NormalizeAuthEmail(user.Email) {
		return apiError(c, fiber.StatusForbidden, "forbidden")
	}
	return c.JSON(user)
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := profileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.auth.UpdateProfile(user.ID, input.DisplayName, input.Email)
	if err != nil {
		return respondServiceError(c, err, "failed to update profile")
	}
	return c.JSON(updated)
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changePasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.NewPassword == "" || input.NewPassword != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}

	if err := handler.auth.ChangePassword(user.ID, input.CurrentPassword, input.NewPassword); err != nil {
		return respondServiceError(c, err, "failed to change password")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := deleteAccountInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.auth.DeleteAccount(user.ID, input.Password); err != nil {
		return respondServiceError(c, err, "failed to delete account")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
