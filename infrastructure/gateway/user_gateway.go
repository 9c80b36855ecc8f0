package gateway

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type UserGateway struct {
	primary  repositories.UserRepository
	fallback repositories.UserRepository
	tracker  *Tracker
}

func NewUserGateway(primary, fallback repositories.UserRepository, tracker *Tracker) repositories.UserRepository {
	return &UserGateway{primary: primary, fallback: fallback, tracker: tracker}
}

func (g *UserGateway) Create(ctx context.Context, user *models.User) error {
	_, err := failover(ctx, g.tracker, "users", "create",
		func() (struct{}, error) { return struct{}{}, g.primary.Create(ctx, user) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Create(ctx, user) })
	return err
}

func (g *UserGateway) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return failover(ctx, g.tracker, "users", "get_by_id",
		func() (*models.User, error) { return g.primary.GetByID(ctx, id) },
		func() (*models.User, error) { return g.fallback.GetByID(ctx, id) })
}

func (g *UserGateway) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return failover(ctx, g.tracker, "users", "get_by_email",
		func() (*models.User, error) { return g.primary.GetByEmail(ctx, email) },
		func() (*models.User, error) { return g.fallback.GetByEmail(ctx, email) })
}

func (g *UserGateway) Update(ctx context.Context, id uuid.UUID, user *models.User) error {
	_, err := failover(ctx, g.tracker, "users", "update",
		func() (struct{}, error) { return struct{}{}, g.primary.Update(ctx, id, user) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Update(ctx, id, user) })
	return err
}
