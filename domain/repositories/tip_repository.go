package repositories

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
)

type TipRepository interface {
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Tip, error)
	GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error)
}
