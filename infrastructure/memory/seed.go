package memory

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"venturedesk/domain/models"
)

// Fixed IDs so fallback responses stay stable across restarts.
var (
	SeedUserID        = uuid.MustParse("7f9c24e5-1b3a-4f6e-8d2c-0a1b2c3d4e5f")
	SeedCafeID        = uuid.MustParse("b1a2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d")
	SeedConsultancyID = uuid.MustParse("c2b3d4e5-f6a7-4b8c-9d0e-1f2a3b4c5d6e")

	seedUserPassword = "demo-password"
)

func daysAgo(n int) time.Time {
	return time.Now().AddDate(0, 0, -n)
}

func daysFromNow(n int) *time.Time {
	t := time.Now().AddDate(0, 0, n)
	return &t
}

// Seed loads the demo dataset: one owner with a cafe and a consultancy, a
// handful of tasks across every lifecycle state, and a few tips.
func Seed(store *Store) {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedUserPassword), bcrypt.DefaultCost)
	if err != nil {
		hash = []byte{}
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	store.users[SeedUserID] = &models.User{
		ID:        SeedUserID,
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Password:  string(hash),
		IsActive:  true,
		CreatedAt: daysAgo(400),
		UpdatedAt: daysAgo(400),
	}

	cafeFounded := 2020
	consultancyFounded := 2018
	store.businesses[SeedCafeID] = &models.Business{
		ID:          SeedCafeID,
		UserID:      SeedUserID,
		Name:        "Coastal Cafe",
		Slug:        "coastal-cafe",
		Type:        "Cafe",
		Location:    "San Francisco, CA",
		Industry:    "Food & Beverage",
		Size:        models.SizeSmall,
		Description: "A cozy cafe offering artisanal coffee and homemade pastries with ocean views.",
		FoundedYear: &cafeFounded,
		Website:     "https://coastalcafe.example.com",
		LogoURL:     "/placeholder.svg",
		CreatedAt:   daysAgo(370),
		UpdatedAt:   daysAgo(200),
	}
	store.businesses[SeedConsultancyID] = &models.Business{
		ID:          SeedConsultancyID,
		UserID:      SeedUserID,
		Name:        "TechNova Solutions",
		Slug:        "technova-solutions",
		Type:        "Consultancy",
		Location:    "Boston, MA",
		Industry:    "Technology",
		Size:        models.SizeMedium,
		Description: "IT consultancy specializing in cloud solutions and digital transformation.",
		FoundedYear: &consultancyFounded,
		Website:     "https://technovasolutions.example.com",
		CreatedAt:   daysAgo(340),
		UpdatedAt:   daysAgo(250),
	}

	completedAt := daysAgo(2)
	overdue := daysAgo(1)
	seedTasks := []*models.Task{
		{
			BusinessID:  SeedCafeID,
			Title:       "Update social media profiles with summer specials",
			Description: "Create engaging posts about our new summer drink menu and pastry selection for Instagram, Facebook, and Twitter.",
			Frequency:   models.FrequencyWeekly,
			Priority:    models.PriorityMedium,
			Status:      models.StatusPending,
			DueDate:     daysFromNow(3),
			Category:    models.CategoryMarketing,
			Tags:        models.TagList{"social media", "promotion", "summer"},
			CreatedAt:   daysAgo(2),
			UpdatedAt:   daysAgo(2),
		},
		{
			BusinessID:  SeedCafeID,
			Title:       "Review monthly expenses and update budget",
			Description: "Go through all receipts and invoices for the past month, categorize expenses, and update the budget spreadsheet.",
			Frequency:   models.FrequencyMonthly,
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			DueDate:     daysFromNow(1),
			Category:    models.CategoryFinance,
			Tags:        models.TagList{"budget", "accounting", "expense tracking"},
			CreatedAt:   daysAgo(5),
			UpdatedAt:   daysAgo(1),
		},
		{
			BusinessID:  SeedCafeID,
			Title:       "Schedule staff training for new POS system",
			Description: "Coordinate with the vendor to arrange a training session for all staff on how to use the new point-of-sale system.",
			Frequency:   models.FrequencyOnce,
			Priority:    models.PriorityCritical,
			Status:      models.StatusPending,
			DueDate:     daysFromNow(7),
			Category:    models.CategoryOperations,
			Tags:        models.TagList{"training", "POS", "staff development"},
			CreatedAt:   daysAgo(3),
			UpdatedAt:   daysAgo(3),
		},
		{
			BusinessID:  SeedCafeID,
			Title:       "Renew business license",
			Description: "Complete paperwork and submit payment for annual business license renewal with the city.",
			Frequency:   models.FrequencyYearly,
			Priority:    models.PriorityHigh,
			Status:      models.StatusCompleted,
			DueDate:     &overdue,
			CompletedAt: &completedAt,
			Category:    models.CategoryLegal,
			Tags:        models.TagList{"compliance", "licensing"},
			CreatedAt:   daysAgo(30),
			UpdatedAt:   daysAgo(2),
		},
		{
			BusinessID:  SeedConsultancyID,
			Title:       "Prepare quarterly client progress reports",
			Description: "Create detailed reports for all active clients showcasing project progress, milestones achieved, and next steps.",
			Frequency:   models.FrequencyQuarterly,
			Priority:    models.PriorityHigh,
			Status:      models.StatusInProgress,
			DueDate:     daysFromNow(5),
			Category:    models.CategoryOperations,
			Tags:        models.TagList{"client management", "reporting", "quarterly review"},
			CreatedAt:   daysAgo(10),
			UpdatedAt:   daysAgo(1),
		},
		{
			BusinessID:  SeedConsultancyID,
			Title:       "Update company website with new team members",
			Description: "Add profiles for new hires to the team page including photos, bios, and roles.",
			Frequency:   models.FrequencyOnce,
			Priority:    models.PriorityMedium,
			Status:      models.StatusPending,
			DueDate:     daysFromNow(2),
			Category:    models.CategoryMarketing,
			Tags:        models.TagList{"website", "team updates"},
			CreatedAt:   daysAgo(4),
			UpdatedAt:   daysAgo(4),
		},
	}
	for _, task := range seedTasks {
		task.ID = uuid.New()
		task.TitleKey = models.NormalizeTitle(task.Title)
		store.tasks[task.ID] = task
	}

	seedTips := []*models.Tip{
		{
			BusinessID: SeedCafeID,
			Title:      "Engaging Social Media Strategies for Cafes",
			Content:    "Post behind-the-scenes content of your baristas creating signature drinks. Customers love seeing the craft behind their coffee. Try to post during peak coffee hours (7-9am and 2-4pm) for maximum engagement.",
			Category:   models.CategoryMarketing,
			Source:     "Coffee Business Monthly",
			CreatedAt:  daysAgo(15),
			UpdatedAt:  daysAgo(15),
		},
		{
			BusinessID: SeedCafeID,
			Title:      "Efficient Inventory Management for Small Cafes",
			Content:    "Use the first-in, first-out (FIFO) method for all perishable items. Consider implementing a digital inventory system that can track expiration dates and automatically generate purchase orders when supplies run low.",
			Category:   models.CategoryOperations,
			Source:     "Restaurant Management Today",
			CreatedAt:  daysAgo(20),
			UpdatedAt:  daysAgo(20),
		},
		{
			BusinessID: SeedConsultancyID,
			Title:      "Maximizing Client Retention in Tech Consulting",
			Content:    "Schedule regular 'value check-ins' that aren't tied to project milestones. Use these meetings to understand evolving client needs and identify opportunities to provide additional value beyond the current scope of work.",
			Category:   models.CategorySales,
			Source:     "Tech Consulting Insider",
			CreatedAt:  daysAgo(12),
			UpdatedAt:  daysAgo(12),
		},
	}
	for _, tip := range seedTips {
		tip.ID = uuid.New()
		store.tips[tip.ID] = tip
	}
}
