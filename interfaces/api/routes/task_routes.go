package routes

import (
	"github.com/gofiber/fiber/v2"

	"venturedesk/interfaces/api/handlers"
	"venturedesk/interfaces/api/middleware"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks", middleware.Protected(h.JWTSecret))

	tasks.Post("/", h.TaskHandler.Create)
	tasks.Get("/:id", h.TaskHandler.Get)
	tasks.Patch("/:id/status", h.TaskHandler.UpdateStatus)
	tasks.Delete("/:id", h.TaskHandler.Delete)

	// Generation keeps the frontend's original function contract: its own
	// path, its own response shape, no envelope.
	api.Post("/generate-tasks", h.GenerateHandler.Generate)
}
