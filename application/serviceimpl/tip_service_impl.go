package serviceimpl

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
)

type TipServiceImpl struct {
	tipRepo      repositories.TipRepository
	businessRepo repositories.BusinessRepository
}

func NewTipService(tipRepo repositories.TipRepository, businessRepo repositories.BusinessRepository) services.TipService {
	return &TipServiceImpl{
		tipRepo:      tipRepo,
		businessRepo: businessRepo,
	}
}

func (s *TipServiceImpl) GetBusinessTips(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error) {
	if _, err := s.businessRepo.GetByID(ctx, businessID); err != nil {
		return nil, err
	}

	if category != "" {
		return s.tipRepo.GetByCategory(ctx, businessID, category)
	}
	return s.tipRepo.GetByBusinessID(ctx, businessID)
}
