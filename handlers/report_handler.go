package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

type ReportHandler struct {
	catalog *store.CatalogStore
}

func NewReportHandler(catalog *store.CatalogStore) *ReportHandler {
	return &ReportHandler{catalog: catalog}
}

type CreateReportRequest struct {
	TargetID    string `json:"targetId" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Description string `json:"description"`
}

func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var req CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !models.ValidReportType(req.Type) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown report type"})
	}

	report := h.catalog.AddReport(c.Context(), models.Report{
		ReporterID:  currentUser(c).ID,
		TargetID:    req.TargetID,
		Type:        req.Type,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportPending,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"report": report})
}
