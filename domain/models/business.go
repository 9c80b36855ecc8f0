package models

import (
	"time"

	"github.com/google/uuid"
)

// Business size buckets, smallest to largest.
const (
	SizeSoleProprietor = "sole_proprietor"
	SizeMicro          = "micro"
	SizeSmall          = "small"
	SizeMedium         = "medium"
	SizeLarge          = "large"
	SizeEnterprise     = "enterprise"
)

type Business struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	User        User      `gorm:"foreignKey:UserID"`
	Name        string    `gorm:"size:200;not null"`
	Slug        string    `gorm:"size:220;uniqueIndex;not null"`
	Type        string    `gorm:"size:100;not null"`
	Location    string    `gorm:"size:200"`
	Industry    string    `gorm:"size:100"`
	Size        string    `gorm:"size:20;default:'small'"`
	Description string
	FoundedYear *int
	Website     string `gorm:"size:300"`
	LogoURL     string `gorm:"size:500"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Business) TableName() string {
	return "businesses"
}
