package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/pkg/logger"
	"venturedesk/pkg/utils"
)

type TipHandler struct {
	tipService services.TipService
}

func NewTipHandler(tipService services.TipService) *TipHandler {
	return &TipHandler{tipService: tipService}
}

// List returns a business's tips, optionally filtered by category.
func (h *TipHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	businessID, err := uuid.Parse(c.Params("businessId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid business ID")
	}

	var filter dto.TipFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	if err := utils.ValidateStruct(&filter); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tips, err := h.tipService.GetBusinessTips(ctx, businessID, filter.Category)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "Business not found")
		}
		logger.ErrorContext(ctx, "Failed to list tips", "business_id", businessID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TipsToTipResponses(tips))
}
