package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"venturedesk/domain/models"
	"venturedesk/domain/repositories"
)

type stubGenerator struct {
	knownBusiness uuid.UUID
	tasks         []*models.Task
}

func (s *stubGenerator) GenerateTasks(ctx context.Context, businessID uuid.UUID) ([]*models.Task, error) {
	if businessID != s.knownBusiness {
		return nil, repositories.ErrNotFound
	}
	return s.tasks, nil
}

func newGenerateApp(gen *stubGenerator) *fiber.App {
	app := fiber.New()
	app.Post("/generate-tasks", NewGenerateHandler(gen).Generate)
	return app
}

func postGenerate(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()

	req := httptest.NewRequest("POST", "/generate-tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, parsed
}

func TestGenerateEndpointContract(t *testing.T) {
	businessID := uuid.New()
	gen := &stubGenerator{
		knownBusiness: businessID,
		tasks: []*models.Task{
			{ID: uuid.New(), BusinessID: businessID, Title: "Launch loyalty program", Status: models.StatusPending},
		},
	}
	app := newGenerateApp(gen)

	t.Run("missing business id", func(t *testing.T) {
		status, body := postGenerate(t, app, `{}`)
		if status != fiber.StatusBadRequest {
			t.Fatalf("status = %d, want 400", status)
		}
		if body["error"] != "Business ID is required" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("malformed business id", func(t *testing.T) {
		status, body := postGenerate(t, app, `{"businessId":"not-a-uuid"}`)
		if status != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", status)
		}
		if body["error"] != "Business not found" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("unknown business id", func(t *testing.T) {
		status, body := postGenerate(t, app, `{"businessId":"`+uuid.New().String()+`"}`)
		if status != fiber.StatusNotFound {
			t.Fatalf("status = %d, want 404", status)
		}
		if body["error"] != "Business not found" {
			t.Errorf("error = %v", body["error"])
		}
	})

	t.Run("success", func(t *testing.T) {
		status, body := postGenerate(t, app, `{"businessId":"`+businessID.String()+`"}`)
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		if body["success"] != true {
			t.Errorf("success = %v", body["success"])
		}
		if body["message"] != "Generated 1 tasks" {
			t.Errorf("message = %v", body["message"])
		}
		tasks, ok := body["tasks"].([]any)
		if !ok || len(tasks) != 1 {
			t.Fatalf("tasks = %v", body["tasks"])
		}
	})
}
