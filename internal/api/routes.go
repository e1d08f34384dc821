package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)

	user := api.Group("/user", handler.AuthRequired)
	user.Get("", handler.GetProfile)
	user.Get("/byemail/:email", handler.GetProfileByEmail)
	user.Put("", handler.UpdateProfile)
	user.Put("/password", handler.ChangePassword)
	user.Delete("", handler.DeleteAccount)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Get("/:id", handler.GetCycle)
	cycles.Put("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)
	cycles.Post("/:id/symptoms", handler.AddCycleSymptom)
	cycles.Delete("/:id/symptoms/:assocId", handler.RemoveCycleSymptom)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("", handler.GetSymptomCatalog)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)

	calendar := api.Group("/calendar", handler.AuthRequired)
	calendar.Get("/:year/:month", handler.GetCalendarMonth)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}
