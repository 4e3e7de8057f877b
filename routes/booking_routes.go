package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/middleware"
)

func BookingRoutes(app *fiber.App, h *handlers.BookingHandler) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("/me", h.GetMySessions)
	sessions.Post("", h.BookSession)
	sessions.Post("/:sessionId/confirm", h.ConfirmSession)
	sessions.Post("/:sessionId/complete", h.CompleteSession)
	sessions.Post("/:sessionId/cancel", h.CancelSession)
}
