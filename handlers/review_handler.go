package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

type ReviewHandler struct {
	catalog *store.CatalogStore
}

func NewReviewHandler(catalog *store.CatalogStore) *ReviewHandler {
	return &ReviewHandler{catalog: catalog}
}

type CreateReviewRequest struct {
	SessionID  string `json:"sessionId" validate:"required"`
	RevieweeID string `json:"revieweeId" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	review := h.catalog.AddReview(c.Context(), models.Review{
		SessionID:  req.SessionID,
		ReviewerID: currentUser(c).ID,
		RevieweeID: req.RevieweeID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"review": review})
}

// GetUserReviews lists the reviews written about a user.
func (h *ReviewHandler) GetUserReviews(c *fiber.Ctx) error {
	reviews := h.catalog.GetUserReviews(c.Params("userId"))
	if reviews == nil {
		reviews = []models.Review{}
	}
	return c.JSON(fiber.Map{"reviews": reviews})
}
