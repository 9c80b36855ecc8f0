package repositories

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error)
	GetByStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*models.Task, error)
	GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Task, error)
	// ListRecurringCompleted returns completed tasks whose frequency is not
	// "once", for the recurring-reset job.
	ListRecurringCompleted(ctx context.Context) ([]*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
