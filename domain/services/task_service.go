package services

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	GetBusinessTasks(ctx context.Context, businessID uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, error)
	// UpdateTaskStatus applies a lifecycle transition. Same-status calls are a
	// no-op; completedAt is stamped iff the new status is completed and
	// cleared when leaving it.
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	// ResetRecurringTasks reopens completed recurring tasks whose frequency
	// period has elapsed. Returns the number reopened.
	ResetRecurringTasks(ctx context.Context) (int, error)
}
