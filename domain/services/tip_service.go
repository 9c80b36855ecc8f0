package services

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
)

type TipService interface {
	GetBusinessTips(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error)
}
