package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/chetx27/wellness-tracker/internal/dto"
	"github.com/chetx27/wellness-tracker/internal/export"
	"github.com/chetx27/wellness-tracker/internal/middleware"
	"github.com/chetx27/wellness-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ReportHandler exposes the insight engine over HTTP.
type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetReport handles GET /api/reports?days=30
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	days, _ := strconv.Atoi(c.Query("days", "0"))

	report, err := h.service.GenerateReport(userID, days)
	if err != nil {
		slog.Error("report generation failed", "user_id", userID.String(), "action", "generate_report", "error", err.Error())
		return internalError(c, "Failed to generate report")
	}

	return c.JSON(report)
}

// ExportReport handles POST /api/reports/export?days=30&format=json
func (h *ReportHandler) ExportReport(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	days, _ := strconv.Atoi(c.Query("days", "0"))
	format := c.Query("format", export.FormatJSON)

	path, err := h.service.ExportReport(userID, days, format)
	if err != nil {
		if errors.Is(err, export.ErrUnknownFormat) {
			return badRequest(c, "format must be json or csv")
		}
		slog.Error("report export failed", "user_id", userID.String(), "action", "export_report", "error", err.Error())
		return internalError(c, "Failed to export report")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ExportResponse{Path: path, Format: format})
}
