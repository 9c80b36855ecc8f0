package gateway

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type BusinessGateway struct {
	primary  repositories.BusinessRepository
	fallback repositories.BusinessRepository
	tracker  *Tracker
}

func NewBusinessGateway(primary, fallback repositories.BusinessRepository, tracker *Tracker) repositories.BusinessRepository {
	return &BusinessGateway{primary: primary, fallback: fallback, tracker: tracker}
}

func (g *BusinessGateway) Create(ctx context.Context, business *models.Business) error {
	_, err := failover(ctx, g.tracker, "businesses", "create",
		func() (struct{}, error) { return struct{}{}, g.primary.Create(ctx, business) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Create(ctx, business) })
	return err
}

func (g *BusinessGateway) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	return failover(ctx, g.tracker, "businesses", "get_by_id",
		func() (*models.Business, error) { return g.primary.GetByID(ctx, id) },
		func() (*models.Business, error) { return g.fallback.GetByID(ctx, id) })
}

func (g *BusinessGateway) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return failover(ctx, g.tracker, "businesses", "get_by_slug",
		func() (*models.Business, error) { return g.primary.GetBySlug(ctx, slug) },
		func() (*models.Business, error) { return g.fallback.GetBySlug(ctx, slug) })
}

func (g *BusinessGateway) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Business, error) {
	return failover(ctx, g.tracker, "businesses", "get_by_user_id",
		func() ([]*models.Business, error) { return g.primary.GetByUserID(ctx, userID) },
		func() ([]*models.Business, error) { return g.fallback.GetByUserID(ctx, userID) })
}

func (g *BusinessGateway) Update(ctx context.Context, id uuid.UUID, business *models.Business) error {
	_, err := failover(ctx, g.tracker, "businesses", "update",
		func() (struct{}, error) { return struct{}{}, g.primary.Update(ctx, id, business) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Update(ctx, id, business) })
	return err
}
