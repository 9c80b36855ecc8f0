package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/infrastructure/memory"
)

func newTaskFixture(t *testing.T) (services.TaskService, repositories.TaskRepository, uuid.UUID, *capturingPublisher) {
	t.Helper()

	store := memory.NewStore(0)
	businessRepo := memory.NewBusinessRepository(store)
	taskRepo := memory.NewTaskRepository(store)

	business := &models.Business{
		Name:        "TechNova Solutions",
		Slug:        "technova-" + uuid.New().String()[:8],
		Type:        "Consultancy",
		Size:        models.SizeMedium,
		Description: "IT consultancy.",
	}
	if err := businessRepo.Create(context.Background(), business); err != nil {
		t.Fatalf("create business: %v", err)
	}

	publisher := &capturingPublisher{}
	svc := NewTaskService(taskRepo, businessRepo, publisher)
	return svc, taskRepo, business.ID, publisher
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, _, businessID, publisher := newTaskFixture(t)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "Prepare quarterly report",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if task.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", task.Status)
	}
	if task.Frequency != models.FrequencyOnce {
		t.Errorf("frequency = %q, want once", task.Frequency)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium", task.Priority)
	}
	if task.Category != models.CategoryOther {
		t.Errorf("category = %q, want other", task.Category)
	}
	if len(publisher.events) != 1 || publisher.events[0].Type != "created" {
		t.Errorf("expected one created event, got %+v", publisher.events)
	}
}

func TestCreateTaskUnknownBusiness(t *testing.T) {
	svc, _, _, _ := newTaskFixture(t)

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: uuid.New(),
		Title:      "Orphan task",
	})
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateTaskDuplicateTitle(t *testing.T) {
	svc, _, businessID, _ := newTaskFixture(t)

	req := &dto.CreateTaskRequest{BusinessID: businessID, Title: "Renew license"}
	if _, err := svc.CreateTask(context.Background(), req); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	_, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "  RENEW LICENSE ",
	})
	if !errors.Is(err, repositories.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for case-folded title, got %v", err)
	}
}

func TestUpdateTaskStatusLifecycle(t *testing.T) {
	svc, _, businessID, publisher := newTaskFixture(t)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "Ship the newsletter",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	// pending -> completed stamps completedAt
	updated, err := svc.UpdateTaskStatus(context.Background(), task.ID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if updated.CompletedAt == nil {
		t.Fatal("completedAt should be set on completion")
	}

	// completed -> pending (reopen) clears completedAt
	updated, err = svc.UpdateTaskStatus(context.Background(), task.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("UpdateTaskStatus reopen: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatal("completedAt should be cleared when leaving completed")
	}

	// pending -> cancelled keeps completedAt nil
	updated, err = svc.UpdateTaskStatus(context.Background(), task.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("UpdateTaskStatus cancel: %v", err)
	}
	if updated.CompletedAt != nil {
		t.Fatal("completedAt should stay nil for cancelled")
	}

	// create + 3 transitions
	if len(publisher.events) != 4 {
		t.Errorf("expected 4 events, got %d", len(publisher.events))
	}
}

func TestUpdateTaskStatusSameStatusNoOp(t *testing.T) {
	svc, _, businessID, publisher := newTaskFixture(t)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "File taxes",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	eventsBefore := len(publisher.events)

	updated, err := svc.UpdateTaskStatus(context.Background(), task.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if updated.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", updated.Status)
	}
	if len(publisher.events) != eventsBefore {
		t.Error("same-status update must not publish an event")
	}
}

func TestUpdateTaskStatusInvalid(t *testing.T) {
	svc, _, businessID, _ := newTaskFixture(t)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "Some task",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if _, err := svc.UpdateTaskStatus(context.Background(), task.ID, "archived"); err == nil {
		t.Fatal("expected error for invalid status")
	}
}

func TestUpdateTaskStatusNotFound(t *testing.T) {
	svc, _, _, _ := newTaskFixture(t)

	_, err := svc.UpdateTaskStatus(context.Background(), uuid.New(), models.StatusCompleted)
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTaskPublishesEvent(t *testing.T) {
	svc, taskRepo, businessID, publisher := newTaskFixture(t)

	task, err := svc.CreateTask(context.Background(), &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "Temporary task",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := svc.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}

	if _, err := taskRepo.GetByID(context.Background(), task.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("task should be gone, got %v", err)
	}
	last := publisher.events[len(publisher.events)-1]
	if last.Type != "deleted" {
		t.Errorf("last event type = %q, want deleted", last.Type)
	}
}

func TestResetRecurringTasks(t *testing.T) {
	svc, taskRepo, businessID, _ := newTaskFixture(t)
	ctx := context.Background()

	eightDaysAgo := time.Now().AddDate(0, 0, -8)
	oldDue := time.Now().AddDate(0, 0, -9)
	weekly := &models.Task{
		BusinessID:  businessID,
		Title:       "Weekly stock count",
		Frequency:   models.FrequencyWeekly,
		Status:      models.StatusCompleted,
		CompletedAt: &eightDaysAgo,
		DueDate:     &oldDue,
	}
	if err := taskRepo.Create(ctx, weekly); err != nil {
		t.Fatalf("create weekly: %v", err)
	}

	justDone := time.Now().Add(-time.Hour)
	monthly := &models.Task{
		BusinessID:  businessID,
		Title:       "Monthly budget review",
		Frequency:   models.FrequencyMonthly,
		Status:      models.StatusCompleted,
		CompletedAt: &justDone,
	}
	if err := taskRepo.Create(ctx, monthly); err != nil {
		t.Fatalf("create monthly: %v", err)
	}

	once := &models.Task{
		BusinessID:  businessID,
		Title:       "One-off setup",
		Frequency:   models.FrequencyOnce,
		Status:      models.StatusCompleted,
		CompletedAt: &eightDaysAgo,
	}
	if err := taskRepo.Create(ctx, once); err != nil {
		t.Fatalf("create once: %v", err)
	}

	reopened, err := svc.ResetRecurringTasks(ctx)
	if err != nil {
		t.Fatalf("ResetRecurringTasks: %v", err)
	}
	if reopened != 1 {
		t.Fatalf("expected 1 reopened task, got %d", reopened)
	}

	got, err := taskRepo.GetByID(ctx, weekly.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.StatusPending {
		t.Errorf("weekly status = %q, want pending", got.Status)
	}
	if got.CompletedAt != nil {
		t.Error("weekly completedAt should be cleared")
	}
	if got.DueDate == nil || !got.DueDate.After(oldDue) {
		t.Error("weekly due date should roll forward")
	}

	got, err = taskRepo.GetByID(ctx, monthly.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != models.StatusCompleted {
		t.Errorf("monthly should stay completed inside its period, got %q", got.Status)
	}
}

func TestGetBusinessTasksFilter(t *testing.T) {
	svc, _, businessID, _ := newTaskFixture(t)
	ctx := context.Background()

	first, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "Marketing push",
		Category:   models.CategoryMarketing,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := svc.CreateTask(ctx, &dto.CreateTaskRequest{
		BusinessID: businessID,
		Title:      "Close the books",
		Category:   models.CategoryFinance,
	}); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if _, err := svc.UpdateTaskStatus(ctx, first.ID, models.StatusInProgress); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}

	byStatus, err := svc.GetBusinessTasks(ctx, businessID, &dto.TaskFilterRequest{Status: models.StatusInProgress})
	if err != nil {
		t.Fatalf("GetBusinessTasks by status: %v", err)
	}
	if len(byStatus) != 1 || byStatus[0].ID != first.ID {
		t.Fatalf("status filter returned %d tasks", len(byStatus))
	}

	byCategory, err := svc.GetBusinessTasks(ctx, businessID, &dto.TaskFilterRequest{Category: models.CategoryFinance})
	if err != nil {
		t.Fatalf("GetBusinessTasks by category: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Title != "Close the books" {
		t.Fatalf("category filter returned %d tasks", len(byCategory))
	}

	all, err := svc.GetBusinessTasks(ctx, businessID, nil)
	if err != nil {
		t.Fatalf("GetBusinessTasks all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(all))
	}
}
