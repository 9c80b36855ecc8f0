package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/ports"
	"venturedesk/domain/repositories"
	"venturedesk/infrastructure/memory"
)

type fakeCompletion struct {
	content string
	err     error
	prompts []string
}

func (f *fakeCompletion) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	return f.content, f.err
}

type capturingPublisher struct {
	events []*ports.TaskEvent
}

func (p *capturingPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newGeneratorFixture(t *testing.T, businessType string, completion ports.CompletionPort) (*GeneratorServiceImpl, repositories.TaskRepository, uuid.UUID, *capturingPublisher) {
	t.Helper()

	store := memory.NewStore(0)
	businessRepo := memory.NewBusinessRepository(store)
	taskRepo := memory.NewTaskRepository(store)

	business := &models.Business{
		Name:        "Coastal Cafe",
		Slug:        "coastal-cafe-" + uuid.New().String()[:8],
		Type:        businessType,
		Industry:    "Food & Beverage",
		Size:        models.SizeSmall,
		Description: "A cozy cafe offering artisanal coffee.",
	}
	if err := businessRepo.Create(context.Background(), business); err != nil {
		t.Fatalf("create business: %v", err)
	}

	publisher := &capturingPublisher{}
	svc := NewGeneratorService(taskRepo, businessRepo, completion, publisher).(*GeneratorServiceImpl)
	return svc, taskRepo, business.ID, publisher
}

func TestExtractJSONPayload(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"json fence", "here you go\n```json\n[{\"title\":\"a\"}]\n```\nthanks", `[{"title":"a"}]`},
		{"plain fence", "```\n[{\"title\":\"b\"}]\n```", `[{"title":"b"}]`},
		{"json fence wins over plain", "```\nnoise\n```\n```json\n[1]\n```", "[1]"},
		{"raw json", `  [{"title":"c"}]  `, `[{"title":"c"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONPayload(tt.content); got != tt.expected {
				t.Errorf("extractJSONPayload(%q) = %q, want %q", tt.content, got, tt.expected)
			}
		})
	}
}

func TestParseCandidatesSingleObject(t *testing.T) {
	candidates, err := parseCandidates(`{"title":"Solo task","priority":"high"}`)
	if err != nil {
		t.Fatalf("parseCandidates: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Title != "Solo task" {
		t.Errorf("unexpected title %q", candidates[0].Title)
	}
}

func TestParseCandidatesInvalid(t *testing.T) {
	if _, err := parseCandidates("not json at all"); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{"array", `["a","b"]`, []string{"a", "b"}},
		{"bare string", `"solo"`, []string{"solo"}},
		{"number", `42`, []string{}},
		{"missing", ``, []string{}},
		{"null", `null`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw []byte
			if tt.raw != "" {
				raw = []byte(tt.raw)
			}
			got := normalizeTags(raw)
			if len(got) != len(tt.expected) {
				t.Fatalf("normalizeTags(%s) = %v, want %v", tt.raw, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("normalizeTags(%s)[%d] = %q, want %q", tt.raw, i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseDueDate(t *testing.T) {
	if got := parseDueDate("2026-09-15"); got == nil {
		t.Error("expected date for YYYY-MM-DD input")
	}
	if got := parseDueDate("2026-09-15T10:00:00Z"); got == nil {
		t.Error("expected date for RFC3339 input")
	}
	if got := parseDueDate("next tuesday"); got != nil {
		t.Errorf("expected nil for invalid input, got %v", got)
	}
	if got := parseDueDate(""); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestGenerateTasksDedup(t *testing.T) {
	completion := &fakeCompletion{content: `[
		{"title":"Launch loyalty program","priority":"high","category":"marketing","tags":["loyalty"]},
		{"title":"LAUNCH LOYALTY PROGRAM","priority":"low"},
		{"title":"Audit supplier contracts","category":"legal","tags":"compliance","due_date":"2026-10-01"}
	]`}
	svc, taskRepo, businessID, publisher := newGeneratorFixture(t, "Cafe", completion)

	created, err := svc.GenerateTasks(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 created tasks (case-insensitive dedup), got %d", len(created))
	}
	if len(publisher.events) != 2 {
		t.Errorf("expected 2 created events, got %d", len(publisher.events))
	}

	// Second run against the same titles creates nothing.
	created, err = svc.GenerateTasks(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GenerateTasks second run: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected idempotent second run, got %d new tasks", len(created))
	}

	tasks, err := taskRepo.GetByBusinessID(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GetByBusinessID: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 persisted tasks, got %d", len(tasks))
	}

	for _, task := range tasks {
		if task.Status != models.StatusPending {
			t.Errorf("generated task %q status = %q, want pending", task.Title, task.Status)
		}
		if task.Title == "Audit supplier contracts" {
			if len(task.Tags) != 1 || task.Tags[0] != "compliance" {
				t.Errorf("bare string tag not wrapped: %v", task.Tags)
			}
			if task.DueDate == nil {
				t.Error("expected due date to be parsed")
			}
		}
	}
}

func TestGenerateTasksFallbackCafe(t *testing.T) {
	completion := &fakeCompletion{err: errors.New("upstream unavailable")}
	svc, _, businessID, _ := newGeneratorFixture(t, "Cafe", completion)

	created, err := svc.GenerateTasks(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 canned task, got %d", len(created))
	}
	task := created[0]
	if task.Title != "Create seasonal menu specials" {
		t.Errorf("unexpected canned title %q", task.Title)
	}
	if task.Frequency != models.FrequencyQuarterly || task.Priority != models.PriorityMedium {
		t.Errorf("canned task metadata mismatch: frequency=%q priority=%q", task.Frequency, task.Priority)
	}
	if task.Category != models.CategoryOperations {
		t.Errorf("canned task category = %q, want operations", task.Category)
	}
	if len(task.Tags) != 3 || task.Tags[0] != "menu development" {
		t.Errorf("canned task tags mismatch: %v", task.Tags)
	}
	if task.DueDate == nil {
		t.Error("canned task should carry a due date")
	}
}

func TestGenerateTasksFallbackOnUnparseableResponse(t *testing.T) {
	completion := &fakeCompletion{content: "Sure! Here are some great ideas for your cafe."}
	svc, taskRepo, businessID, _ := newGeneratorFixture(t, "Cafe", completion)

	created, err := svc.GenerateTasks(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("expected 1 canned task on unparseable response, got %d", len(created))
	}
	if created[0].Title != "Create seasonal menu specials" {
		t.Errorf("unexpected canned title %q", created[0].Title)
	}

	tasks, err := taskRepo.GetByBusinessID(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GetByBusinessID: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected canned task to be persisted, got %d tasks", len(tasks))
	}
}

func TestGenerateTasksFallbackUnknownType(t *testing.T) {
	completion := &fakeCompletion{err: errors.New("upstream unavailable")}
	svc, _, businessID, _ := newGeneratorFixture(t, "Bakery", completion)

	created, err := svc.GenerateTasks(context.Background(), businessID)
	if err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected no canned tasks for unknown type, got %d", len(created))
	}
}

func TestGenerateTasksBusinessNotFound(t *testing.T) {
	completion := &fakeCompletion{content: "[]"}
	svc, _, _, _ := newGeneratorFixture(t, "Cafe", completion)

	_, err := svc.GenerateTasks(context.Background(), uuid.New())
	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGeneratorPromptExcludesExistingTitles(t *testing.T) {
	completion := &fakeCompletion{content: "[]"}
	svc, taskRepo, businessID, _ := newGeneratorFixture(t, "Cafe", completion)

	err := taskRepo.Create(context.Background(), &models.Task{
		BusinessID: businessID,
		Title:      "Renew Business License",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, err := svc.GenerateTasks(context.Background(), businessID); err != nil {
		t.Fatalf("GenerateTasks: %v", err)
	}

	if len(completion.prompts) != 1 {
		t.Fatalf("expected 1 completion call, got %d", len(completion.prompts))
	}
	prompt := completion.prompts[0]
	if !strings.Contains(prompt, "renew business license") {
		t.Errorf("prompt missing lowercased existing title:\n%s", prompt)
	}
}
