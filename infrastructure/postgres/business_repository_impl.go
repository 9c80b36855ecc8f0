package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type BusinessRepositoryImpl struct {
	db *gorm.DB
}

func NewBusinessRepository(db *gorm.DB) repositories.BusinessRepository {
	return &BusinessRepositoryImpl{db: db}
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *models.Business) error {
	return translateError(r.db.WithContext(ctx).Create(business).Error)
}

func (r *BusinessRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&business).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	var business models.Business
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&business).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &business, nil
}

func (r *BusinessRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Business, error) {
	var businesses []*models.Business
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&businesses).Error
	return businesses, translateError(err)
}

func (r *BusinessRepositoryImpl) Update(ctx context.Context, id uuid.UUID, business *models.Business) error {
	return translateError(r.db.WithContext(ctx).Where("id = ?", id).Updates(business).Error)
}
