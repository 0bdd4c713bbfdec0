package handlers

import (
	"strconv"

	"github.com/chetx27/wellness-tracker/internal/dto"
	"github.com/chetx27/wellness-tracker/internal/middleware"
	"github.com/chetx27/wellness-tracker/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WellnessHandler handles HTTP requests for the three entry series.
type WellnessHandler struct {
	service *services.WellnessService
}

func NewWellnessHandler(service *services.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: service}
}

// CreateMoodEntry handles POST /api/moods
func (h *WellnessHandler) CreateMoodEntry(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateMoodEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.CreateMoodEntry(userID, req)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListMoodEntries handles GET /api/moods
func (h *WellnessHandler) ListMoodEntries(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, offset := pagination(c)
	entries, total, err := h.service.ListMoodEntries(userID, limit, offset)
	if err != nil {
		return internalError(c, "Failed to fetch mood entries")
	}

	return c.JSON(fiber.Map{
		"data": entries, "total": total,
		"limit": limit, "offset": offset,
	})
}

// DeleteMoodEntry handles DELETE /api/moods/:id
func (h *WellnessHandler) DeleteMoodEntry(c *fiber.Ctx) error {
	return h.deleteEntry(c, h.service.DeleteMoodEntry)
}

// CreateHabitEntry handles POST /api/habits
func (h *WellnessHandler) CreateHabitEntry(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateHabitEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	entry, err := h.service.CreateHabitEntry(userID, req)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(entry)
}

// ListHabitEntries handles GET /api/habits
func (h *WellnessHandler) ListHabitEntries(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, offset := pagination(c)
	entries, total, err := h.service.ListHabitEntries(userID, limit, offset)
	if err != nil {
		return internalError(c, "Failed to fetch habit entries")
	}

	return c.JSON(fiber.Map{
		"data": entries, "total": total,
		"limit": limit, "offset": offset,
	})
}

// DeleteHabitEntry handles DELETE /api/habits/:id
func (h *WellnessHandler) DeleteHabitEntry(c *fiber.Ctx) error {
	return h.deleteEntry(c, h.service.DeleteHabitEntry)
}

// CreateStudySession handles POST /api/study-sessions
func (h *WellnessHandler) CreateStudySession(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateStudySessionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	session, err := h.service.CreateStudySession(userID, req)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

// ListStudySessions handles GET /api/study-sessions
func (h *WellnessHandler) ListStudySessions(c *fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	limit, offset := pagination(c)
	sessions, total, err := h.service.ListStudySessions(userID, limit, offset)
	if err != nil {
		return internalError(c, "Failed to fetch study sessions")
	}

	return c.JSON(fiber.Map{
		"data": sessions, "total": total,
		"limit": limit, "offset": offset,
	})
}

// DeleteStudySession handles DELETE /api/study-sessions/:id
func (h *WellnessHandler) DeleteStudySession(c *fiber.Ctx) error {
	return h.deleteEntry(c, h.service.DeleteStudySession)
}

func (h *WellnessHandler) deleteEntry(c *fiber.Ctx, del func(userID, id uuid.UUID) error) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid entry ID")
	}

	if err := del(userID, entryID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Entry deleted"})
}

func pagination(c *fiber.Ctx) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: message})
}
