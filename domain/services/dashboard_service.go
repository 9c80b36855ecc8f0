package services

import (
	"context"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
)

// DashboardService orchestrates the dashboard fetch chain: user, then the
// user's businesses, then the selected business's tasks and tips, in that
// dependency order.
type DashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, selectedBusinessID *uuid.UUID) (*dto.DashboardResponse, error)
	// InvalidateCache drops cached dashboards after a task change event.
	InvalidateCache(ctx context.Context) error
}
