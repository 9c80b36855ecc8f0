package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBusinessRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Type        string `json:"type" validate:"required,min=2,max=100"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Industry    string `json:"industry" validate:"omitempty,max=100"`
	Size        string `json:"size" validate:"required,oneof=sole_proprietor micro small medium large enterprise"`
	Description string `json:"description" validate:"required,min=10,max=2000"`
	FoundedYear *int   `json:"foundedYear" validate:"omitempty,min=1800,max=2100"`
	Website     string `json:"website" validate:"omitempty,url,max=300"`
}

type BusinessResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Type        string    `json:"type"`
	Location    string    `json:"location"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Description string    `json:"description"`
	FoundedYear *int      `json:"foundedYear,omitempty"`
	Website     string    `json:"website,omitempty"`
	LogoURL     string    `json:"logoUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
