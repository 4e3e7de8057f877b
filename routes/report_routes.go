package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/middleware"
)

func ReportRoutes(app *fiber.App, h *handlers.ReportHandler) {
	api := app.Group("/api/v1")

	api.Post("/reports", middleware.Protected(), h.CreateReport)
}
