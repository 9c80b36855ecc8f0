package services

import (
	"context"
	"io"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
)

type BusinessService interface {
	CreateBusiness(ctx context.Context, userID uuid.UUID, req *dto.CreateBusinessRequest) (*models.Business, error)
	GetBusiness(ctx context.Context, businessID uuid.UUID) (*models.Business, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*models.Business, error)
	GetUserBusinesses(ctx context.Context, userID uuid.UUID) ([]*models.Business, error)
	UploadLogo(ctx context.Context, businessID uuid.UUID, file io.Reader, filename, contentType string) (*models.Business, error)
}
