package models

import (
	"time"

	"github.com/google/uuid"
)

// Task/tip categories shared by both collections.
const (
	CategoryMarketing       = "marketing"
	CategoryFinance         = "finance"
	CategoryOperations      = "operations"
	CategoryLegal           = "legal"
	CategorySales           = "sales"
	CategoryCustomerService = "customer_service"
	CategoryHumanResources  = "human_resources"
	CategoryTechnology      = "technology"
	CategoryAdministration  = "administration"
	CategoryStrategy        = "strategy"
	CategoryOther           = "other"
)

// Tip is a read-only advisory note scoped to a business.
type Tip struct {
	ID         uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	Business   Business  `gorm:"foreignKey:BusinessID"`
	Title      string    `gorm:"size:200;not null"`
	Content    string
	Category   string `gorm:"size:40;default:'other';index"`
	Source     string `gorm:"size:300"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Tip) TableName() string {
	return "tips"
}
