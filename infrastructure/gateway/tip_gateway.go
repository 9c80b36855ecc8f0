package gateway

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type TipGateway struct {
	primary  repositories.TipRepository
	fallback repositories.TipRepository
	tracker  *Tracker
}

func NewTipGateway(primary, fallback repositories.TipRepository, tracker *Tracker) repositories.TipRepository {
	return &TipGateway{primary: primary, fallback: fallback, tracker: tracker}
}

func (g *TipGateway) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Tip, error) {
	return failover(ctx, g.tracker, "tips", "get_by_business_id",
		func() ([]*models.Tip, error) { return g.primary.GetByBusinessID(ctx, businessID) },
		func() ([]*models.Tip, error) { return g.fallback.GetByBusinessID(ctx, businessID) })
}

func (g *TipGateway) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error) {
	return failover(ctx, g.tracker, "tips", "get_by_category",
		func() ([]*models.Tip, error) { return g.primary.GetByCategory(ctx, businessID, category) },
		func() ([]*models.Tip, error) { return g.fallback.GetByCategory(ctx, businessID, category) })
}
