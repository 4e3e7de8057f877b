package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

type ProfileHandler struct {
	sessions *store.SessionStore
}

func NewProfileHandler(sessions *store.SessionStore) *ProfileHandler {
	return &ProfileHandler{sessions: sessions}
}

type UpdateProfileRequest struct {
	Name           *string   `json:"name,omitempty"`
	Bio            *string   `json:"bio,omitempty"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	Skills         *[]string `json:"skills,omitempty"`
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	user, ok := h.sessions.User()
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No user is signed in"})
	}
	return c.JSON(fiber.Map{"user": user})
}

func (h *ProfileHandler) UpdateProfile(c *fiber.Ctx) error {
	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	user, ok := h.sessions.UpdateProfile(c.Context(), models.ProfileUpdate{
		Name:           req.Name,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		Skills:         req.Skills,
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No user is signed in"})
	}
	return c.JSON(fiber.Map{"user": user})
}
