package gateway

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type TaskGateway struct {
	primary  repositories.TaskRepository
	fallback repositories.TaskRepository
	tracker  *Tracker
}

func NewTaskGateway(primary, fallback repositories.TaskRepository, tracker *Tracker) repositories.TaskRepository {
	return &TaskGateway{primary: primary, fallback: fallback, tracker: tracker}
}

func (g *TaskGateway) Create(ctx context.Context, task *models.Task) error {
	_, err := failover(ctx, g.tracker, "tasks", "create",
		func() (struct{}, error) { return struct{}{}, g.primary.Create(ctx, task) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Create(ctx, task) })
	return err
}

func (g *TaskGateway) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return failover(ctx, g.tracker, "tasks", "get_by_id",
		func() (*models.Task, error) { return g.primary.GetByID(ctx, id) },
		func() (*models.Task, error) { return g.fallback.GetByID(ctx, id) })
}

func (g *TaskGateway) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error) {
	return failover(ctx, g.tracker, "tasks", "get_by_business_id",
		func() ([]*models.Task, error) { return g.primary.GetByBusinessID(ctx, businessID) },
		func() ([]*models.Task, error) { return g.fallback.GetByBusinessID(ctx, businessID) })
}

func (g *TaskGateway) GetByStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*models.Task, error) {
	return failover(ctx, g.tracker, "tasks", "get_by_status",
		func() ([]*models.Task, error) { return g.primary.GetByStatus(ctx, businessID, status) },
		func() ([]*models.Task, error) { return g.fallback.GetByStatus(ctx, businessID, status) })
}

func (g *TaskGateway) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Task, error) {
	return failover(ctx, g.tracker, "tasks", "get_by_category",
		func() ([]*models.Task, error) { return g.primary.GetByCategory(ctx, businessID, category) },
		func() ([]*models.Task, error) { return g.fallback.GetByCategory(ctx, businessID, category) })
}

func (g *TaskGateway) ListRecurringCompleted(ctx context.Context) ([]*models.Task, error) {
	return failover(ctx, g.tracker, "tasks", "list_recurring_completed",
		func() ([]*models.Task, error) { return g.primary.ListRecurringCompleted(ctx) },
		func() ([]*models.Task, error) { return g.fallback.ListRecurringCompleted(ctx) })
}

func (g *TaskGateway) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	_, err := failover(ctx, g.tracker, "tasks", "update",
		func() (struct{}, error) { return struct{}{}, g.primary.Update(ctx, id, task) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Update(ctx, id, task) })
	return err
}

func (g *TaskGateway) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := failover(ctx, g.tracker, "tasks", "delete",
		func() (struct{}, error) { return struct{}{}, g.primary.Delete(ctx, id) },
		func() (struct{}, error) { return struct{}{}, g.fallback.Delete(ctx, id) })
	return err
}
