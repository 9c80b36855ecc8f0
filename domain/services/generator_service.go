package services

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/models"
)

// GeneratorService turns a business profile into persisted candidate tasks
// via the remote completion call, deduplicated against existing titles.
type GeneratorService interface {
	GenerateTasks(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error)
}
