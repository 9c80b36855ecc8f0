package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type BusinessRepositoryImpl struct {
	store *Store
}

func NewBusinessRepository(store *Store) repositories.BusinessRepository {
	return &BusinessRepositoryImpl{store: store}
}

func (r *BusinessRepositoryImpl) Create(ctx context.Context, business *models.Business) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.businesses {
		if existing.Slug == business.Slug {
			return repositories.ErrDuplicate
		}
	}
	if business.ID == uuid.Nil {
		business.ID = uuid.New()
	}
	now := time.Now()
	business.CreatedAt = now
	business.UpdatedAt = now
	r.store.businesses[business.ID] = copyBusiness(business)
	return nil
}

func (r *BusinessRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	business, ok := r.store.businesses[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return copyBusiness(business), nil
}

func (r *BusinessRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, business := range r.store.businesses {
		if business.Slug == slug {
			return copyBusiness(business), nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *BusinessRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Business, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var businesses []*models.Business
	for _, business := range r.store.businesses {
		if business.UserID == userID {
			businesses = append(businesses, copyBusiness(business))
		}
	}
	sort.Slice(businesses, func(i, j int) bool {
		return businesses[i].CreatedAt.Before(businesses[j].CreatedAt)
	})
	return businesses, nil
}

func (r *BusinessRepositoryImpl) Update(ctx context.Context, id uuid.UUID, business *models.Business) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.businesses[id]
	if !ok {
		return repositories.ErrNotFound
	}
	updated := copyBusiness(business)
	updated.ID = id
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.store.businesses[id] = updated
	return nil
}
