package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task status lifecycle. The lifecycle is deliberately open: any status may
// follow any other, including completed -> pending (reopen).
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const (
	FrequencyOnce      = "once"
	FrequencyDaily     = "daily"
	FrequencyWeekly    = "weekly"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

type Task struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_tasks_business_title"`
	Business    Business  `gorm:"foreignKey:BusinessID"`
	Title       string    `gorm:"size:200;not null"`
	// TitleKey is the case-folded title; the composite unique index with
	// BusinessID stops concurrent generation runs from double-inserting.
	TitleKey    string `gorm:"size:200;not null;uniqueIndex:idx_tasks_business_title"`
	Description string
	Frequency   string `gorm:"size:20;default:'once'"`
	Priority    string `gorm:"size:20;default:'medium'"`
	Status      string `gorm:"size:20;default:'pending';index"`
	DueDate     *time.Time
	CompletedAt *time.Time
	Category    string   `gorm:"size:40;default:'other';index"`
	Tags        TagList  `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}

func (t *Task) BeforeSave(tx *gorm.DB) error {
	t.TitleKey = NormalizeTitle(t.Title)
	return nil
}

// NormalizeTitle case-folds a title for dedup comparison.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// IsValidStatus reports whether s is one of the four lifecycle states.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
