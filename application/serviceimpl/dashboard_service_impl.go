package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/dto"
	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/infrastructure/redis"
	"venturedesk/pkg/logger"
)

const dashboardCacheTTL = 30 * time.Second

type DashboardServiceImpl struct {
	userRepo     repositories.UserRepository
	businessRepo repositories.BusinessRepository
	taskRepo     repositories.TaskRepository
	tipRepo      repositories.TipRepository
	cache        *redis.Client // nil disables caching
}

func NewDashboardService(
	userRepo repositories.UserRepository,
	businessRepo repositories.BusinessRepository,
	taskRepo repositories.TaskRepository,
	tipRepo repositories.TipRepository,
	cache *redis.Client,
) services.DashboardService {
	return &DashboardServiceImpl{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		taskRepo:     taskRepo,
		tipRepo:      tipRepo,
		cache:        cache,
	}
}

// GetDashboard assembles the dashboard in dependency order: user, then the
// user's businesses, then the selected business's tasks and tips. With no
// explicit selection the first business is used.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, userID uuid.UUID, selectedBusinessID *uuid.UUID) (*dto.DashboardResponse, error) {
	cacheKey := dashboardCacheKey(userID, selectedBusinessID)
	if s.cache != nil {
		var cached dto.DashboardResponse
		if err := s.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			logger.DebugContext(ctx, "Dashboard served from cache", "user_id", userID)
			return &cached, nil
		}
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	businesses, err := s.businessRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &dto.DashboardResponse{
		User:       *dto.UserToUserResponse(user),
		Businesses: dto.BusinessesToBusinessResponses(businesses),
		Tasks:      []dto.TaskResponse{},
		Tips:       []dto.TipResponse{},
	}

	selected := pickBusiness(businesses, selectedBusinessID)
	if selected == nil {
		if selectedBusinessID != nil {
			// Explicit selection must resolve to one of the user's businesses.
			return nil, repositories.ErrNotFound
		}
		// No businesses yet; the dashboard is just the profile.
		return response, nil
	}
	response.Selected = dto.BusinessToBusinessResponse(selected)

	tasks, err := s.taskRepo.GetByBusinessID(ctx, selected.ID)
	if err != nil {
		return nil, err
	}
	response.Tasks = dto.TasksToTaskResponses(tasks)
	response.Counts = countTasks(tasks)

	tips, err := s.tipRepo.GetByBusinessID(ctx, selected.ID)
	if err != nil {
		return nil, err
	}
	response.Tips = dto.TipsToTipResponses(tips)

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, cacheKey, response, dashboardCacheTTL); err != nil {
			logger.WarnContext(ctx, "Failed to cache dashboard", "user_id", userID, "error", err)
		}
	}

	return response, nil
}

// InvalidateCache drops every cached dashboard. A task event for one business
// can affect default-selection keys of any user, so the whole keyspace goes.
// The short TTL keeps the cost of this bounded.
func (s *DashboardServiceImpl) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	deleted, err := s.cache.ScanAndDelete(ctx, "dashboard:*")
	if err != nil {
		return err
	}
	if deleted > 0 {
		logger.DebugContext(ctx, "Dashboard cache invalidated", "keys", deleted)
	}
	return nil
}

func dashboardCacheKey(userID uuid.UUID, selectedBusinessID *uuid.UUID) string {
	if selectedBusinessID != nil {
		return fmt.Sprintf("dashboard:%s:%s", userID, *selectedBusinessID)
	}
	return fmt.Sprintf("dashboard:%s:default", userID)
}

func pickBusiness(businesses []*models.Business, selectedBusinessID *uuid.UUID) *models.Business {
	if len(businesses) == 0 {
		return nil
	}
	if selectedBusinessID != nil {
		for _, business := range businesses {
			if business.ID == *selectedBusinessID {
				return business
			}
		}
		return nil
	}
	return businesses[0]
}

func countTasks(tasks []*models.Task) dto.TaskCounts {
	counts := dto.TaskCounts{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusInProgress:
			counts.InProgress++
		case models.StatusCompleted:
			counts.Completed++
		case models.StatusCancelled:
			counts.Cancelled++
		}
	}
	return counts
}
