package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	BusinessID  uuid.UUID  `json:"businessId" validate:"required"`
	Title       string     `json:"title" validate:"required,min=1,max=200"`
	Description string     `json:"description" validate:"omitempty,max=2000"`
	Frequency   string     `json:"frequency" validate:"omitempty,oneof=once daily weekly monthly quarterly yearly"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Category    string     `json:"category" validate:"omitempty,oneof=marketing finance operations legal sales customer_service human_resources technology administration strategy other"`
	DueDate     *time.Time `json:"dueDate" validate:"omitempty"`
	Tags        []string   `json:"tags" validate:"omitempty,max=10,dive,max=60"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
}

type TaskFilterRequest struct {
	Status   string `query:"status" validate:"omitempty,oneof=pending in_progress completed cancelled"`
	Category string `query:"category" validate:"omitempty,oneof=marketing finance operations legal sales customer_service human_resources technology administration strategy other"`
}

type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"businessId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Frequency   string     `json:"frequency"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// GenerateTasksRequest is the generation trigger body.
type GenerateTasksRequest struct {
	BusinessID string `json:"businessId"`
	UserID     string `json:"userId"`
}

// GenerateTasksResponse mirrors the function endpoint contract:
// {success, message, tasks[]} on success, {error} otherwise.
type GenerateTasksResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Tasks   []TaskResponse `json:"tasks"`
}
