package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	return translateError(r.db.WithContext(ctx).Create(task).Error)
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("business_id = ?", businessID).Order("created_at ASC").Find(&tasks).Error
	return tasks, translateError(err)
}

func (r *TaskRepositoryImpl) GetByStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("business_id = ? AND status = ?", businessID, status).Order("created_at ASC").Find(&tasks).Error
	return tasks, translateError(err)
}

func (r *TaskRepositoryImpl) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("business_id = ? AND category = ?", businessID, category).Order("created_at ASC").Find(&tasks).Error
	return tasks, translateError(err)
}

func (r *TaskRepositoryImpl) ListRecurringCompleted(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("status = ? AND frequency <> ? AND completed_at IS NOT NULL", models.StatusCompleted, models.FrequencyOnce).
		Find(&tasks).Error
	return tasks, translateError(err)
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	// Explicit column list so a nil CompletedAt clears the column instead
	// of being skipped as a zero value.
	return translateError(r.db.WithContext(ctx).Model(&models.Task{}).Where("id = ?", id).
		Select("title", "title_key", "description", "frequency", "priority", "status",
			"due_date", "completed_at", "category", "tags", "updated_at").
		Updates(task).Error)
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error)
}
