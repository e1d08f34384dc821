package api

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dump, err := handler.export.BuildDump(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentDisposition, attachmentName("json"))
	return c.JSON(dump)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	buffer := &bytes.Buffer{}
	if err := handler.export.WriteCSV(user.ID, buffer); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, attachmentName("csv"))
	return c.Send(buffer.Bytes())
}

func attachmentName(extension string) string {
	return fmt.Sprintf("attachment; filename=cyclia-export-%s.%s", time.Now().Format("2006-01-02"), extension)
}
