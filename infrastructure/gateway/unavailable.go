package gateway

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

// ErrPrimaryUnavailable is the standing error of a primary store that never
// came up. Every call fails over immediately.
var ErrPrimaryUnavailable = errors.New("primary store unavailable")

// The unavailable stubs stand in for the primary repositories when the
// database could not be reached at startup, so the gateways serve the
// fallback without special-casing a nil primary.

type unavailableUsers struct{}

// UnavailableUsers returns a user repository that fails every call.
func UnavailableUsers() repositories.UserRepository { return unavailableUsers{} }

func (unavailableUsers) Create(ctx context.Context, user *models.User) error {
	return ErrPrimaryUnavailable
}

func (unavailableUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableUsers) Update(ctx context.Context, id uuid.UUID, user *models.User) error {
	return ErrPrimaryUnavailable
}

type unavailableBusinesses struct{}

// UnavailableBusinesses returns a business repository that fails every call.
func UnavailableBusinesses() repositories.BusinessRepository { return unavailableBusinesses{} }

func (unavailableBusinesses) Create(ctx context.Context, business *models.Business) error {
	return ErrPrimaryUnavailable
}

func (unavailableBusinesses) GetByID(ctx context.Context, id uuid.UUID) (*models.Business, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableBusinesses) GetBySlug(ctx context.Context, slug string) (*models.Business, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableBusinesses) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Business, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableBusinesses) Update(ctx context.Context, id uuid.UUID, business *models.Business) error {
	return ErrPrimaryUnavailable
}

type unavailableTasks struct{}

// UnavailableTasks returns a task repository that fails every call.
func UnavailableTasks() repositories.TaskRepository { return unavailableTasks{} }

func (unavailableTasks) Create(ctx context.Context, task *models.Task) error {
	return ErrPrimaryUnavailable
}

func (unavailableTasks) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableTasks) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableTasks) GetByStatus(ctx context.Context, businessID uuid.UUID, status string) ([]*models.Task, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableTasks) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Task, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableTasks) ListRecurringCompleted(ctx context.Context) ([]*models.Task, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableTasks) Update(ctx context.Context, id uuid.UUID, task *models.Task) error {
	return ErrPrimaryUnavailable
}

func (unavailableTasks) Delete(ctx context.Context, id uuid.UUID) error {
	return ErrPrimaryUnavailable
}

type unavailableTips struct{}

// UnavailableTips returns a tip repository that fails every call.
func UnavailableTips() repositories.TipRepository { return unavailableTips{} }

func (unavailableTips) GetByBusinessID(ctx context.Context, businessID uuid.UUID) ([]*models.Tip, error) {
	return nil, ErrPrimaryUnavailable
}

func (unavailableTips) GetByCategory(ctx context.Context, businessID uuid.UUID, category string) ([]*models.Tip, error) {
	return nil, ErrPrimaryUnavailable
}
