package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetSymptomCatalog(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	symptoms, err := handler.repos.Symptoms.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch symptoms")
	}
	return c.JSON(symptoms)
}

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	stats, err := handler.stats.BuildOverview(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch stats")
	}
	return c.JSON(stats)
}

func (handler *Handler) GetCalendarMonth(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	year, err := strconv.Atoi(c.Params("year"))
	if err != nil || year < 1 || year > 9999 {
		return apiError(c, fiber.StatusBadRequest, "invalid year")
	}
	month, err := strconv.Atoi(c.Params("month"))
	if err != nil || month < 1 || month > 12 {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	days, err := handler.stats.BuildMonthView(user.ID, year, time.Month(month), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build calendar")
	}
	return c.JSON(days)
}
