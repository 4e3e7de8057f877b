package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/handlers"
	"github.com/skillswap/backend/middleware"
)

func OfferRoutes(app *fiber.App, h *handlers.OfferHandler) {
	api := app.Group("/api/v1")

	offers := api.Group("/offers")
	offers.Get("", h.ListOffers)
	offers.Get("/me", middleware.Protected(), h.GetMyOffers)
	offers.Get("/:offerId", h.GetOffer)
	offers.Post("", middleware.Protected(), h.CreateOffer)
	offers.Patch("/:offerId", middleware.Protected(), h.UpdateOffer)
	offers.Delete("/:offerId", middleware.Protected(), h.DeleteOffer)
}
