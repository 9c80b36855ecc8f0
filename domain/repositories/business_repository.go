package repositories

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
)

type BusinessRepository interface {
	Create(ctx context.Context, business *models.Business) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error)
	GetBySlug(ctx context.Context, slug string) (*models.Business, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Business, error)
	Update(ctx context.Context, id uuid.UUID, business *models.Business) error
}
