package serviceimpl

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
	"venturedesk/domain/ports"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo     repositories.TaskRepository
	businessRepo repositories.BusinessRepository
	events       ports.TaskEventPublisher
}

func NewTaskService(taskRepo repositories.TaskRepository, businessRepo repositories.BusinessRepository, events ports.TaskEventPublisher) services.TaskService {
	return &TaskServiceImpl{
		taskRepo:     taskRepo,
		businessRepo: businessRepo,
		events:       events,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	if _, err := s.businessRepo.GetByID(ctx, req.BusinessID); err != nil {
		return nil, err
	}

	task := &models.Task{
		ID:          uuid.New(),
		BusinessID:  req.BusinessID,
		Title:       req.Title,
		Description: req.Description,
		Frequency:   defaultString(req.Frequency, models.FrequencyOnce),
		Priority:    defaultString(req.Priority, models.PriorityMedium),
		Status:      models.StatusPending,
		DueDate:     req.DueDate,
		Category:    defaultString(req.Category, models.CategoryOther),
		Tags:        models.TagList(req.Tags),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			logger.WarnContext(ctx, "Task with same title already exists",
				"business_id", req.BusinessID,
				"title", req.Title,
			)
			return nil, err
		}
		logger.ErrorContext(ctx, "Failed to create task", "business_id", req.BusinessID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "business_id", task.BusinessID)

	s.publishEvent(ctx, task, "created")

	return task, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *TaskServiceImpl) GetBusinessTasks(ctx context.Context, businessID uuid.UUID, filter *dto.TaskFilterRequest) ([]*models.Task, error) {
	if filter != nil && filter.Status != "" {
		return s.taskRepo.GetByStatus(ctx, businessID, filter.Status)
	}
	if filter != nil && filter.Category != "" {
		return s.taskRepo.GetByCategory(ctx, businessID, filter.Category)
	}
	return s.taskRepo.GetByBusinessID(ctx, businessID)
}

func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status string) (*models.Task, error) {
	if !models.IsValidStatus(status) {
		return nil, errors.New("invalid task status")
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// Same status is a no-op: no write, no event, no timestamp churn.
	if task.Status == status {
		return task, nil
	}

	task.Status = status
	if status == models.StatusCompleted {
		now := time.Now()
		task.CompletedAt = &now
	} else {
		task.CompletedAt = nil
	}
	task.UpdatedAt = time.Now()

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task status", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task status updated",
		"task_id", taskID,
		"status", status,
	)

	s.publishEvent(ctx, task, "status_changed")

	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.ErrorContext(ctx, "Failed to delete task", "task_id", taskID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID, "business_id", task.BusinessID)

	s.publishEvent(ctx, task, "deleted")

	return nil
}

// ResetRecurringTasks reopens completed recurring tasks once their frequency
// period has elapsed since completion. Due dates roll forward by one period.
func (s *TaskServiceImpl) ResetRecurringTasks(ctx context.Context) (int, error) {
	tasks, err := s.taskRepo.ListRecurringCompleted(ctx)
	if err != nil {
		return 0, err
	}

	reopened := 0
	now := time.Now()
	for _, task := range tasks {
		if task.CompletedAt == nil {
			continue
		}
		if now.Before(nextOccurrence(*task.CompletedAt, task.Frequency)) {
			continue
		}

		task.Status = models.StatusPending
		task.CompletedAt = nil
		if task.DueDate != nil {
			next := nextOccurrence(*task.DueDate, task.Frequency)
			task.DueDate = &next
		}
		task.UpdatedAt = now

		if err := s.taskRepo.Update(ctx, task.ID, task); err != nil {
			logger.WarnContext(ctx, "Failed to reopen recurring task", "task_id", task.ID, "error", err)
			continue
		}

		s.publishEvent(ctx, task, "status_changed")
		reopened++
	}

	if reopened > 0 {
		logger.InfoContext(ctx, "Recurring tasks reopened", "count", reopened)
	}

	return reopened, nil
}

// nextOccurrence returns the point one frequency period after from.
func nextOccurrence(from time.Time, frequency string) time.Time {
	switch frequency {
	case models.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return from.AddDate(0, 1, 0)
	case models.FrequencyQuarterly:
		return from.AddDate(0, 3, 0)
	case models.FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from
	}
}

func (s *TaskServiceImpl) publishEvent(ctx context.Context, task *models.Task, eventType string) {
	if s.events == nil {
		return
	}
	event := &ports.TaskEvent{
		BusinessID: task.BusinessID.String(),
		TaskID:     task.ID.String(),
		Type:       eventType,
		Status:     task.Status,
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "task_id", task.ID, "error", err)
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
