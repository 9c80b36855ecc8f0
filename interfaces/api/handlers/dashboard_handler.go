package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/pkg/logger"
	"venturedesk/pkg/utils"
)

type DashboardHandler struct {
	dashboardService services.DashboardService
}

func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Get assembles the dashboard for the authenticated user. An optional
// businessId query parameter selects a specific business; otherwise the
// oldest business is used.
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var selectedBusinessID *uuid.UUID
	if raw := c.Query("businessId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid business ID")
		}
		selectedBusinessID = &id
	}

	dashboard, err := h.dashboardService.GetDashboard(ctx, userCtx.ID, selectedBusinessID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "")
		}
		logger.ErrorContext(ctx, "Failed to build dashboard", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dashboard)
}
