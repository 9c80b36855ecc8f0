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

type BusinessHandler struct {
	businessService services.BusinessService
}

func NewBusinessHandler(businessService services.BusinessService) *BusinessHandler {
	return &BusinessHandler{businessService: businessService}
}

// Create registers a business profile under the authenticated user.
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreateBusinessRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	business, err := h.businessService.CreateBusiness(ctx, userCtx.ID, &req)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return utils.ConflictResponse(c, "A business with this name already exists")
		}
		logger.ErrorContext(ctx, "Failed to create business", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.BusinessToBusinessResponse(business))
}

// GetByID returns a single business owned by the authenticated user.
func (h *BusinessHandler) GetByID(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid business ID")
	}

	business, err := h.businessService.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "Business not found")
		}
		logger.ErrorContext(ctx, "Failed to get business", "business_id", businessID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	if business.UserID != userCtx.ID {
		return utils.NotFoundResponse(c, "Business not found")
	}

	return utils.SuccessResponse(c, dto.BusinessToBusinessResponse(business))
}

// GetBySlug resolves a business by its URL slug.
func (h *BusinessHandler) GetBySlug(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	slug := c.Params("slug")
	if slug == "" {
		return utils.BadRequestResponse(c, "Slug is required")
	}

	business, err := h.businessService.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "Business not found")
		}
		logger.ErrorContext(ctx, "Failed to get business by slug", "slug", slug, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	if business.UserID != userCtx.ID {
		return utils.NotFoundResponse(c, "Business not found")
	}

	return utils.SuccessResponse(c, dto.BusinessToBusinessResponse(business))
}

// List returns all businesses owned by the authenticated user.
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	businesses, err := h.businessService.GetUserBusinesses(ctx, userCtx.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list businesses", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.BusinessesToBusinessResponses(businesses))
}

// UploadLogo stores a logo image for the business and updates its profile.
func (h *BusinessHandler) UploadLogo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid business ID")
	}

	business, err := h.businessService.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return utils.NotFoundResponse(c, "Business not found")
		}
		return utils.InternalServerErrorResponse(c)
	}
	if business.UserID != userCtx.ID {
		return utils.NotFoundResponse(c, "Business not found")
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return utils.BadRequestResponse(c, "Logo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read logo file")
	}
	defer file.Close()

	updated, err := h.businessService.UploadLogo(ctx, businessID, file, fileHeader.Filename, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload logo", "business_id", businessID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.BusinessToBusinessResponse(updated))
}
