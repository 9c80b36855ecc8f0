package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type TipRepositoryImpl struct {
	store *Store
}

func NewTipRepository(store *Store) repositories.TipRepository {
	return &TipRepositoryImpl{store: store}
}

func (r *TipRepositoryImpl) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Tip, error) {
	return r.list(ctx, func(t *models.Tip) bool {
		return t.BusinessID == businessID
	})
}

func (r *TipRepositoryImpl) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error) {
	return r.list(ctx, func(t *models.Tip) bool {
		return t.BusinessID == businessID && t.Category == category
	})
}

func (r *TipRepositoryImpl) list(ctx context.Context, match func(*models.Tip) bool) ([]*models.Tip, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var tips []*models.Tip
	for _, tip := range r.store.tips {
		if match(tip) {
			tips = append(tips, copyTip(tip))
		}
	}
	sort.Slice(tips, func(i, j int) bool {
		return tips[i].CreatedAt.Before(tips[j].CreatedAt)
	})
	return tips, nil
}
