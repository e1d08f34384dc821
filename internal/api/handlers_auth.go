package api

import (
	"strings"
	"time"

	"github.com/cyclia-app/cyclia/internal/services"
	"github.com/gofiber/fiber/v2"
)

const passwordResetTokenTTL = 30 * time.Minute

type registerInput struct {
	DisplayName     string `json:"display_name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordInput struct {
	RecoveryCode string `json:"recovery_code"`
}

type resetPasswordInput struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.ConfirmPassword == "" || input.Password != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}

	user, recoveryCode, err := handler.auth.Register(input.DisplayName, input.Email, input.Password)
	if err != nil {
		return respondServiceError(c, err, "failed to register")
	}

	token, err := handler.buildAccessToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":          user,
		"token":         token,
		"recovery_code": recoveryCode,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.auth.Authenticate(input.Email, input.Password)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := handler.buildAccessToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}

func (handler *Handler) ForgotPassword(c *fiber.Ctx) error {
	const recoveryAttemptsLimit = 8
	const recoveryAttemptsWindow = 15 * time.Minute

	now := time.Now().In(handler.location)
	limiterKey := requestLimiterKey(c)
	if handler.recoveryLimiter.tooManyRecent(limiterKey, now, recoveryAttemptsLimit, recoveryAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many recovery attempts")
	}

	input := forgotPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	code := services.NormalizeRecoveryCode(input.RecoveryCode)
	if err := services.ValidateRecoveryCodeFormat(code); err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	user, err := handler.auth.FindUserByRecoveryCode(code)
	if err != nil {
		handler.recoveryLimiter.addFailure(limiterKey, now, recoveryAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid recovery code")
	}

	token, err := handler.buildPasswordResetToken(user.ID, passwordResetTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create reset token")
	}
	handler.recoveryLimiter.reset(limiterKey)

	return c.JSON(fiber.Map{"reset_token": token})
}

func (handler *Handler) ResetPassword(c *fiber.Ctx) error {
	input := resetPasswordInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	input.Token = strings.TrimSpace(input.Token)
	input.Password = strings.TrimSpace(input.Password)
	input.ConfirmPassword = strings.TrimSpace(input.ConfirmPassword)
	if input.Token == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Password != input.ConfirmPassword {
		return apiError(c, fiber.StatusBadRequest, "password mismatch")
	}

	userID, err := handler.parsePasswordResetToken(input.Token)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid reset token")
	}

	recoveryCode, err := handler.auth.ResetPassword(userID, input.Password)
	if err != nil {
		return respondServiceError(c, err, "failed to reset password")
	}

	user, err := handler.auth.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to reset password")
	}
	token, err := handler.buildAccessToken(&user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"token":         token,
		"recovery_code": recoveryCode,
	})
}
