package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/ports"
	"venturedesk/domain/repositories"
	"venturedesk/domain/services"
	"venturedesk/pkg/logger"
)

const generatorSystemPrompt = "You are a business assistant that generates actionable tasks for businesses. Always respond with valid JSON."

type GeneratorServiceImpl struct {
	taskRepo     repositories.TaskRepository
	businessRepo repositories.BusinessRepository
	completion   ports.CompletionPort
	events       ports.TaskEventPublisher
}

func NewGeneratorService(
	taskRepo repositories.TaskRepository,
	businessRepo repositories.BusinessRepository,
	completion ports.CompletionPort,
	events ports.TaskEventPublisher,
) services.GeneratorService {
	return &GeneratorServiceImpl{
		taskRepo:     taskRepo,
		businessRepo: businessRepo,
		completion:   completion,
		events:       events,
	}
}

func (s *GeneratorServiceImpl) GenerateTasks(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error) {
	business, err := s.businessRepo.GetByID(ctx, businessID)
	if err != nil {
		return nil, err
	}

	existing, err := s.taskRepo.GetByBusinessID(ctx, businessID)
	if err != nil {
		// Generation can proceed without the exclusion list.
		logger.WarnContext(ctx, "Failed to fetch existing tasks", "business_id", businessID, "error", err)
	}
	existingTitles := make(map[string]bool, len(existing))
	var excludeTitles []string
	for _, task := range existing {
		key := models.NormalizeTitle(task.Title)
		existingTitles[key] = true
		excludeTitles = append(excludeTitles, key)
	}

	prompt := buildGeneratorPrompt(business, excludeTitles)

	// A failed call and an unparseable response are handled the same way:
	// serve the canned per-type suggestions instead of surfacing an error.
	var candidates []taskCandidate
	content, err := s.completion.Complete(ctx, generatorSystemPrompt, prompt)
	if err == nil {
		candidates, err = parseCandidates(content)
	}
	if err != nil {
		logger.WarnContext(ctx, "Completion unusable, using canned suggestions",
			"business_id", businessID,
			"business_type", business.Type,
			"error", err,
		)
		candidates = cannedCandidates(business.Type)
	}

	logger.InfoContext(ctx, "Task candidates ready",
		"business_id", businessID,
		"count", len(candidates),
	)

	created := make([]*models.Task, 0, len(candidates))
	for _, candidate := range candidates {
		key := models.NormalizeTitle(candidate.Title)
		if key == "" || existingTitles[key] {
			logger.DebugContext(ctx, "Skipping duplicate task candidate", "title", candidate.Title)
			continue
		}
		existingTitles[key] = true

		task := &models.Task{
			ID:          uuid.New(),
			BusinessID:  businessID,
			Title:       candidate.Title,
			Description: candidate.Description,
			Frequency:   defaultString(candidate.Frequency, models.FrequencyOnce),
			Priority:    defaultString(candidate.Priority, models.PriorityMedium),
			Status:      models.StatusPending,
			DueDate:     parseDueDate(candidate.DueDate),
			Category:    defaultString(candidate.Category, models.CategoryOther),
			Tags:        normalizeTags(candidate.Tags),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}

		if err := s.taskRepo.Create(ctx, task); err != nil {
			if errors.Is(err, repositories.ErrDuplicate) {
				logger.DebugContext(ctx, "Task already inserted by concurrent run", "title", task.Title)
				continue
			}
			logger.WarnContext(ctx, "Failed to insert generated task", "title", task.Title, "error", err)
			continue
		}

		s.publishEvent(ctx, task)
		created = append(created, task)
	}

	logger.InfoContext(ctx, "Task generation finished",
		"business_id", businessID,
		"created", len(created),
	)

	return created, nil
}

func (s *GeneratorServiceImpl) publishEvent(ctx context.Context, task *models.Task) {
	if s.events == nil {
		return
	}
	event := &ports.TaskEvent{
		BusinessID: task.BusinessID.String(),
		TaskID:     task.ID.String(),
		Type:       "created",
		Status:     task.Status,
	}
	if err := s.events.PublishTaskEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event", "task_id", task.ID, "error", err)
	}
}

// taskCandidate is one suggested task as returned by the model. Tags is kept
// raw because models return either an array or a bare string.
type taskCandidate struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Frequency   string          `json:"frequency"`
	Priority    string          `json:"priority"`
	Category    string          `json:"category"`
	Tags        json.RawMessage `json:"tags"`
	DueDate     string          `json:"due_date"`
}

func buildGeneratorPrompt(business *models.Business, excludeTitles []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate 3-5 actionable business tasks for a %s business in the %s industry, named %q.\n\n",
		business.Type, business.Industry, business.Name)

	b.WriteString("Business Details:\n")
	fmt.Fprintf(&b, "- Size: %s\n", business.Size)
	fmt.Fprintf(&b, "- Location: %s\n", business.Location)
	fmt.Fprintf(&b, "- Description: %s\n", business.Description)
	if business.FoundedYear != nil {
		fmt.Fprintf(&b, "- Founded Year: %d\n", *business.FoundedYear)
	}
	if business.Website != "" {
		fmt.Fprintf(&b, "- Website: %s\n", business.Website)
	}

	b.WriteString(`
For each task, provide the following in JSON format:
1. title - A clear, concise title
2. description - Detailed description with actionable steps
3. frequency - One of: "once", "daily", "weekly", "monthly", "quarterly", "yearly"
4. priority - One of: "low", "medium", "high", "critical"
5. category - One of: "marketing", "finance", "operations", "legal", "sales", "customer_service", "human_resources", "technology", "administration", "strategy", "other"
6. tags - An array of 1-3 relevant tags as strings
7. due_date - Suggested due date in ISO format (YYYY-MM-DD), reasonable based on priority and current date

`)
	fmt.Fprintf(&b, "Avoid generating tasks with these titles: %s.\n\n", strings.Join(excludeTitles, ", "))
	b.WriteString("Format the response as a valid JSON array of task objects.")

	return b.String()
}

var (
	jsonFencePattern = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	anyFencePattern  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// extractJSONPayload pulls the JSON body out of a completion response,
// preferring an explicit json fence, then any fence, then the raw text.
func extractJSONPayload(content string) string {
	if m := jsonFencePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := anyFencePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

// parseCandidates decodes a completion response into candidates. A single
// object is accepted and wrapped into a one-element list.
func parseCandidates(content string) ([]taskCandidate, error) {
	payload := extractJSONPayload(content)

	var list []taskCandidate
	if err := json.Unmarshal([]byte(payload), &list); err == nil {
		return list, nil
	}

	var single taskCandidate
	if err := json.Unmarshal([]byte(payload), &single); err == nil {
		return []taskCandidate{single}, nil
	}

	return nil, errors.New("response is not a task array or object")
}

// normalizeTags accepts an array of strings or a bare string; anything else
// becomes an empty list.
func normalizeTags(raw json.RawMessage) models.TagList {
	if len(raw) == 0 {
		return models.TagList{}
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return models.TagList{}
		}
		return models.TagList(list)
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return models.TagList{single}
	}

	return models.TagList{}
}

// parseDueDate accepts YYYY-MM-DD or RFC3339; anything else becomes nil.
func parseDueDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t
	}
	logger.Warn("Invalid due date in task candidate, dropping", "due_date", value)
	return nil
}

// cannedCandidates returns the static per-type suggestions served when the
// completion call is unavailable.
func cannedCandidates(businessType string) []taskCandidate {
	switch businessType {
	case "Cafe":
		return []taskCandidate{
			{
				Title:       "Create seasonal menu specials",
				Description: "Develop and test new seasonal menu items using locally sourced ingredients. Focus on both beverages and food items.",
				Frequency:   models.FrequencyQuarterly,
				Priority:    models.PriorityMedium,
				Category:    models.CategoryOperations,
				Tags:        json.RawMessage(`["menu development","seasonal","local sourcing"]`),
				DueDate:     time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
			},
		}
	case "Consultancy":
		return []taskCandidate{
			{
				Title:       "Develop client onboarding process documentation",
				Description: "Create comprehensive documentation for the client onboarding process to ensure consistency and quality in service delivery.",
				Frequency:   models.FrequencyOnce,
				Priority:    models.PriorityHigh,
				Category:    models.CategoryOperations,
				Tags:        json.RawMessage(`["process improvement","documentation","client management"]`),
				DueDate:     time.Now().AddDate(0, 0, 10).Format("2006-01-02"),
			},
		}
	default:
		return nil
	}
}
