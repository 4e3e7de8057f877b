package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.AuthHandler) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/signin", h.SignIn)
	auth.Post("/signup", h.SignUp)
	auth.Post("/signout", middleware.Protected(), h.SignOut)
}
