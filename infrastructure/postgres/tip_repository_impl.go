package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type TipRepositoryImpl struct {
	db *gorm.DB
}

func NewTipRepository(db *gorm.DB) repositories.TipRepository {
	return &TipRepositoryImpl{db: db}
}

func (r *TipRepositoryImpl) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Tip, error) {
	var tips []*models.Tip
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("created_at ASC").Find(&tips).Error
	return tips, translateError(err)
}

func (r *TipRepositoryImpl) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error) {
	var tips []*models.Tip
	err := r.db.WithContext(ctx).Where("business_id = ? AND category = ?", businessID, category).Order("created_at ASC").Find(&tips).Error
	return tips, translateError(err)
}
