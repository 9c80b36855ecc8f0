package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/pkg/logger"
)

// GenerateHandler fronts the task generation endpoint. Unlike the rest of
// the API it answers with the bare {success, message, tasks} / {error}
// shape the dashboard frontend already consumes.
type GenerateHandler struct {
	generatorService services.GeneratorService
}

func NewGenerateHandler(generatorService services.GeneratorService) *GenerateHandler {
	return &GenerateHandler{generatorService: generatorService}
}

func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.GenerateTasksRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Business ID is required",
		})
	}

	if req.BusinessID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Business ID is required",
		})
	}

	// An unparseable id can never resolve, same outcome as an unknown one.
	businessID, err := uuid.Parse(req.BusinessID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	logger.InfoContext(ctx, "Task generation requested",
		"business_id", businessID,
		"user_id", req.UserID,
	)

	tasks, err := h.generatorService.GenerateTasks(ctx, businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Business not found",
			})
		}
		logger.ErrorContext(ctx, "Task generation failed", "business_id", businessID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(dto.GenerateTasksResponse{
		Success: true,
		Message: fmt.Sprintf("Generated %d tasks", len(tasks)),
		Tasks:   dto.TasksToTaskResponses(tasks),
	})
}
