package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
	"venturedesk/domain/ports"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/pkg/logger"
)

type BusinessServiceImpl struct {
	businessRepo repositories.BusinessRepository
	storage      ports.StoragePort
}

func NewBusinessService(businessRepo repositories.BusinessRepository, storage ports.StoragePort) services.BusinessService {
	return &BusinessServiceImpl{
		businessRepo: businessRepo,
		storage:      storage,
	}
}

func (s *BusinessServiceImpl) CreateBusiness(ctx context.Context, userID uuid.UUID, req *dto.CreateBusinessRequest) (*models.Business, error) {
	business := &models.Business{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Type:        req.Type,
		Location:    req.Location,
		Industry:    req.Industry,
		Size:        req.Size,
		Description: req.Description,
		FoundedYear: req.FoundedYear,
		Website:     req.Website,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	err := s.businessRepo.Create(ctx, business)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Slug taken, retry once with a random suffix.
		business.Slug = fmt.Sprintf("%s-%s", business.Slug, uuid.New().String()[:8])
		err = s.businessRepo.Create(ctx, business)
	}
	if err != nil {
		logger.ErrorContext(ctx, "Failed to create business", "user_id", userID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Business created",
		"business_id", business.ID,
		"user_id", userID,
		"slug", business.Slug,
	)

	return business, nil
}

func (s *BusinessServiceImpl) GetBusiness(ctx context.Context, businessID uuid.UUID) (*models.Business, error) {
	return s.businessRepo.GetByID(ctx, businessID)
}

func (s *BusinessServiceImpl) GetBusinessBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return s.businessRepo.GetBySlug(ctx, slug)
}

func (s *BusinessServiceImpl) GetUserBusinesses(ctx context.Context, userID uuid.UUID) ([]*models.Business, error) {
	return s.businessRepo.GetByUserID(ctx, userID)
}

func (s *BusinessServiceImpl) UploadLogo(ctx context.Context, businessID uuid.UUID, file io.Reader, filename, contentType string) (*models.Business, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	if s.storage == nil {
		return nil, errors.New("logo storage not configured")
	}

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".png"
	}
	storagePath := fmt.Sprintf("logos/%s%s", businessID, ext)

	url, err := s.storage.UploadFile(file, storagePath, contentType)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload logo", "business_id", businessID, "error", err)
		return nil, err
	}

	business.LogoURL = url
	business.UpdatedAt = time.Now()
	if err := s.businessRepo.Update(ctx, businessID, business); err != nil {
		logger.ErrorContext(ctx, "Failed to save logo URL", "business_id", businessID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Logo uploaded", "business_id", businessID, "url", url)

	return business, nil
}
