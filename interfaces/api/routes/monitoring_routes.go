package routes

import (
	"github.com/gofiber/fiber/v2"

	"venturedesk/interfaces/api/handlers"
)

func SetupMonitoringRoutes(api fiber.Router, h *handlers.Handlers) {
	monitoring := api.Group("/monitoring")

	monitoring.Get("/health", h.MonitoringHandler.Health)
	monitoring.Get("/datasource", h.MonitoringHandler.DataSource)
	monitoring.Get("/websocket", h.MonitoringHandler.WebSocketStats)
}
