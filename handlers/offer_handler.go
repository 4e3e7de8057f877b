package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

type OfferHandler struct {
	catalog *store.CatalogStore
}

func NewOfferHandler(catalog *store.CatalogStore) *OfferHandler {
	return &OfferHandler{catalog: catalog}
}

type CreateOfferRequest struct {
	Title             string  `json:"title" validate:"required"`
	Description       string  `json:"description" validate:"required"`
	Category          string  `json:"category" validate:"required"`
	Duration          int     `json:"duration" validate:"required,gt=0"`
	Price             float64 `json:"price" validate:"gte=0"`
	AvailableSessions int     `json:"availableSessions" validate:"required,min=1"`
}

type UpdateOfferRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// ListOffers is the public search surface: ?q= filters title/description
// case-insensitively, ?category= filters exact. No parameters returns the
// whole catalog.
func (h *OfferHandler) ListOffers(c *fiber.Ctx) error {
	offers := h.catalog.SearchOffers(c.Query("q"), c.Query("category"))
	if offers == nil {
		offers = []models.SkillOffer{}
	}
	return c.JSON(fiber.Map{"offers": offers})
}

func (h *OfferHandler) GetOffer(c *fiber.Ctx) error {
	offer, err := h.catalog.GetOffer(c.Params("offerId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found"})
	}
	return c.JSON(fiber.Map{"offer": offer})
}

func (h *OfferHandler) GetMyOffers(c *fiber.Ctx) error {
	offers := h.catalog.GetUserOffers(currentUser(c).ID)
	if offers == nil {
		offers = []models.SkillOffer{}
	}
	return c.JSON(fiber.Map{"offers": offers})
}

func (h *OfferHandler) CreateOffer(c *fiber.Ctx) error {
	var req CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}

	offer := h.catalog.AddOffer(c.Context(), models.SkillOffer{
		TutorID:           currentUser(c).ID,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Duration:          req.Duration,
		Price:             req.Price,
		AvailableSessions: req.AvailableSessions,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"offer": offer})
}

func (h *OfferHandler) UpdateOffer(c *fiber.Ctx) error {
	var req UpdateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown category"})
	}

	offer, err := h.catalog.UpdateOffer(c.Context(), c.Params("offerId"), currentUser(c), models.OfferUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Duration:    req.Duration,
		Price:       req.Price,
	})
	switch {
	case errors.Is(err, store.ErrOfferNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found"})
	case errors.Is(err, store.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this offer"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update offer"})
	}
	return c.JSON(fiber.Map{"offer": offer})
}

func (h *OfferHandler) DeleteOffer(c *fiber.Ctx) error {
	err := h.catalog.DeleteOffer(c.Context(), c.Params("offerId"), currentUser(c))
	switch {
	case errors.Is(err, store.ErrOfferNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found"})
	case errors.Is(err, store.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You do not own this offer"})
	case err != nil:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete offer"})
	}
	return c.JSON(fiber.Map{"message": "Offer deleted"})
}
