package routes

import (
	"github.com/gofiber/fiber/v2"

	"venturedesk/interfaces/api/handlers"
	"venturedesk/interfaces/api/middleware"
)

func SetupDashboardRoutes(api fiber.Router, h *handlers.Handlers) {
	dashboard := api.Group("/dashboard", middleware.Protected(h.JWTSecret))

	dashboard.Get("/", h.DashboardHandler.Get)
}
