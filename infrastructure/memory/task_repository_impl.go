package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type TaskRepositoryImpl struct {
	store *Store
}

func NewTaskRepository(store *Store) repositories.TaskRepository {
	return &TaskRepositoryImpl{store: store}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := models.NormalizeTitle(task.Title)
	for _, existing := range r.store.tasks {
		if existing.BusinessID == task.BusinessID && existing.TitleKey == key {
			return repositories.ErrDuplicate
		}
	}
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	task.TitleKey = key
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	r.store.tasks[task.ID] = copyTask(task)
	return nil
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	task, ok := r.store.tasks[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return copyTask(task), nil
}

func (r *TaskRepositoryImpl) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error) {
	return r.list(ctx, func(t *models.Task) bool {
		return t.BusinessID == businessID
	})
}

func (r *TaskRepositoryImpl) GetByStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*models.Task, error) {
	return r.list(ctx, func(t *models.Task) bool {
		return t.BusinessID == businessID && t.Status == status
	})
}

func (r *TaskRepositoryImpl) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Task, error) {
	return r.list(ctx, func(t *models.Task) bool {
		return t.BusinessID == businessID && t.Category == category
	})
}

func (r *TaskRepositoryImpl) ListRecurringCompleted(ctx context.Context) ([]*models.Task, error) {
	return r.list(ctx, func(t *models.Task) bool {
		return t.Status == models.StatusCompleted &&
			t.Frequency != models.FrequencyOnce &&
			t.CompletedAt != nil
	})
}

func (r *TaskRepositoryImpl) list(ctx context.Context, match func(*models.Task) bool) ([]*models.Task, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var tasks []*models.Task
	for _, task := range r.store.tasks {
		if match(task) {
			tasks = append(tasks, copyTask(task))
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.tasks[id]
	if !ok {
		return repositories.ErrNotFound
	}
	key := models.NormalizeTitle(task.Title)
	for otherID, other := range r.store.tasks {
		if otherID != id && other.BusinessID == existing.BusinessID && other.TitleKey == key {
			return repositories.ErrDuplicate
		}
	}
	updated := copyTask(task)
	updated.ID = id
	updated.BusinessID = existing.BusinessID
	updated.TitleKey = key
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	r.store.tasks[id] = updated
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.store.wait(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.store.tasks, id)
	return nil
}
