package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/middleware"
)

func ReviewRoutes(app *fiber.App, h *handlers.ReviewHandler) {
	api := app.Group("/api/v1")

	api.Post("/reviews", middleware.Protected(), h.CreateReview)
	api.Get("/users/:userId/reviews", h.GetUserReviews)
}
