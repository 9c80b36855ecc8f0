package dto

import (
	"time"

	"github.com/google/uuid"
)

type TipFilterRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=marketing finance operations legal sales customer_service human_resources technology administration strategy other"`
}

type TipResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"businessId"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	Source     string    `json:"source,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
