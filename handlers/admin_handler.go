package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

// AdminHandler backs the moderation surface. Routes using it sit behind
// AdminRequired.
type AdminHandler struct {
	catalog *store.CatalogStore
}

func NewAdminHandler(catalog *store.CatalogStore) *AdminHandler {
	return &AdminHandler{catalog: catalog}
}

type ResolveReportRequest struct {
	Status string `json:"status" validate:"required,oneof=resolved dismissed"`
}

func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	reports := h.catalog.Reports()
	if reports == nil {
		reports = []models.Report{}
	}
	return c.JSON(fiber.Map{"reports": reports})
}

func (h *AdminHandler) ResolveReport(c *fiber.Ctx) error {
	var req ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.catalog.ResolveReport(c.Context(), c.Params("reportId"), req.Status)
	if errors.Is(err, store.ErrReportNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to resolve report"})
	}
	return c.JSON(fiber.Map{"report": report})
}
