package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/middleware"
)

func AdminRoutes(app *fiber.App, h *handlers.AdminHandler) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/reports", h.ListReports)
	admin.Patch("/reports/:reportId", h.ResolveReport)
}
