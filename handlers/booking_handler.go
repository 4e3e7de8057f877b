package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

type BookingHandler struct {
	catalog *store.CatalogStore
}

func NewBookingHandler(catalog *store.CatalogStore) *BookingHandler {
	return &BookingHandler{catalog: catalog}
}

type BookSessionRequest struct {
	OfferID     string    `json:"offerId" validate:"required"`
	ScheduledAt time.Time `json:"scheduledAt" validate:"required"`
}

// BookSession checks the offer's remaining capacity before booking. The
// store itself creates the session either way, so the capacity gate lives
// here at the calling boundary.
func (h *BookingHandler) BookSession(c *fiber.Ctx) error {
	var req BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	offer, err := h.catalog.GetOffer(req.OfferID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Offer not found"})
	}
	if offer.AvailableSessions <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No available sessions for this offer"})
	}

	session := h.catalog.BookSession(c.Context(), models.Session{
		OfferID:     offer.ID,
		TutorID:     offer.TutorID,
		LearnerID:   currentUser(c).ID,
		ScheduledAt: req.ScheduledAt.UTC(),
		Status:      models.SessionRequested,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"session": session})
}

func (h *BookingHandler) GetMySessions(c *fiber.Ctx) error {
	sessions := h.catalog.GetUserSessions(currentUser(c).ID)
	if sessions == nil {
		sessions = []models.Session{}
	}
	return c.JSON(fiber.Map{"sessions": sessions})
}

// ConfirmSession and CompleteSession are tutor-side transitions; the store
// enforces no transition table, so participation is checked here.
func (h *BookingHandler) ConfirmSession(c *fiber.Ctx) error {
	return h.transition(c, models.SessionConfirmed, true)
}

func (h *BookingHandler) CompleteSession(c *fiber.Ctx) error {
	return h.transition(c, models.SessionCompleted, true)
}

func (h *BookingHandler) transition(c *fiber.Ctx, status string, tutorOnly bool) error {
	session, err := h.catalog.GetSession(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	actor := currentUser(c)
	allowed := session.TutorID == actor.ID || actor.Role == models.RoleAdmin
	if !tutorOnly {
		allowed = allowed || session.LearnerID == actor.ID
	}
	if !allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not part of this session"})
	}

	updated, err := h.catalog.UpdateSession(c.Context(), session.ID, models.SessionUpdate{Status: &status})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}
	return c.JSON(fiber.Map{"session": updated})
}

// CancelSession may be called by either participant; capacity flows back to
// the offer through the store.
func (h *BookingHandler) CancelSession(c *fiber.Ctx) error {
	session, err := h.catalog.GetSession(c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	actor := currentUser(c)
	if session.TutorID != actor.ID && session.LearnerID != actor.ID && actor.Role != models.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not part of this session"})
	}

	if err := h.catalog.CancelSession(c.Context(), session.ID); err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel session"})
	}
	return c.JSON(fiber.Map{"message": "Session cancelled"})
}
