package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
	"venturedesk/infrastructure/memory"
)

func TestGetDashboard(t *testing.T) {
	store := memory.NewStore(0)
	memory.Seed(store)

	svc := NewDashboardService(
		memory.NewUserRepository(store),
		memory.NewBusinessRepository(store),
		memory.NewTaskRepository(store),
		memory.NewTipRepository(store),
		nil,
	)

	ctx := context.Background()

	t.Run("default selection is first business", func(t *testing.T) {
		dashboard, err := svc.GetDashboard(ctx, memory.SeedUserID, nil)
		if err != nil {
			t.Fatalf("GetDashboard: %v", err)
		}

		if dashboard.User.Email != "jane@example.com" {
			t.Errorf("user email = %q", dashboard.User.Email)
		}
		if len(dashboard.Businesses) != 2 {
			t.Fatalf("expected 2 businesses, got %d", len(dashboard.Businesses))
		}
		if dashboard.Selected == nil {
			t.Fatal("expected a selected business")
		}
		if dashboard.Selected.ID != dashboard.Businesses[0].ID {
			t.Error("default selection should be the first business")
		}
	})

	t.Run("counts match task statuses", func(t *testing.T) {
		dashboard, err := svc.GetDashboard(ctx, memory.SeedUserID, &memory.SeedCafeID)
		if err != nil {
			t.Fatalf("GetDashboard: %v", err)
		}

		// Cafe seed data: 2 pending, 1 in_progress, 1 completed.
		counts := dashboard.Counts
		if counts.Total != 4 {
			t.Fatalf("total = %d, want 4", counts.Total)
		}
		if counts.Pending != 2 || counts.InProgress != 1 || counts.Completed != 1 || counts.Cancelled != 0 {
			t.Errorf("counts = %+v", counts)
		}
		if counts.Pending+counts.InProgress+counts.Completed+counts.Cancelled != counts.Total {
			t.Error("status counts do not add up to total")
		}

		if len(dashboard.Tips) != 2 {
			t.Errorf("expected 2 cafe tips, got %d", len(dashboard.Tips))
		}
	})

	t.Run("explicit selection of another user's business fails", func(t *testing.T) {
		foreign := uuid.New()
		_, err := svc.GetDashboard(ctx, memory.SeedUserID, &foreign)
		if !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("unknown user fails", func(t *testing.T) {
		_, err := svc.GetDashboard(ctx, uuid.New(), nil)
		if !errors.Is(err, repositories.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestGetDashboardNoBusinesses(t *testing.T) {
	store := memory.NewStore(0)
	userRepo := memory.NewUserRepository(store)

	user := &models.User{Name: "New User", Email: "new@example.com", IsActive: true}
	if err := userRepo.Create(context.Background(), user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	svc := NewDashboardService(
		userRepo,
		memory.NewBusinessRepository(store),
		memory.NewTaskRepository(store),
		memory.NewTipRepository(store),
		nil,
	)

	dashboard, err := svc.GetDashboard(context.Background(), user.ID, nil)
	if err != nil {
		t.Fatalf("GetDashboard: %v", err)
	}
	if dashboard.Selected != nil {
		t.Error("no business should be selected")
	}
	if len(dashboard.Tasks) != 0 || len(dashboard.Tips) != 0 {
		t.Error("tasks and tips should be empty")
	}
	if dashboard.Counts.Total != 0 {
		t.Errorf("counts.Total = %d, want 0", dashboard.Counts.Total)
	}
}
