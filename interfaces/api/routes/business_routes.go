package routes

import (
	"github.com/gofiber/fiber/v2"

	"venturedesk/interfaces/api/handlers"
	"venturedesk/interfaces/api/middleware"
)

func SetupBusinessRoutes(api fiber.Router, h *handlers.Handlers) {
	businesses := api.Group("/businesses", middleware.Protected(h.JWTSecret))

	businesses.Post("/", h.BusinessHandler.Create)
	businesses.Get("/", h.BusinessHandler.List)
	businesses.Get("/slug/:slug", h.BusinessHandler.GetBySlug)
	businesses.Get("/:id", h.BusinessHandler.GetByID)
	businesses.Post("/:id/logo", h.BusinessHandler.UploadLogo)

	// Nested collections scoped to a business
	businesses.Get("/:businessId/tasks", h.TaskHandler.List)
	businesses.Get("/:businessId/tips", h.TipHandler.List)
}
