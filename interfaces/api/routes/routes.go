package routes

import (
	"github.com/gofiber/fiber/v2"

	websocketManager "venturedesk/infrastructure/websocket"
	"venturedesk/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, wsManager *websocketManager.Manager) {
	// Root health probe for load balancers
	app.Get("/health", h.MonitoringHandler.Health)

	// API version group
	api := app.Group("/api/v1")

	SetupAuthRoutes(api, h)
	SetupBusinessRoutes(api, h)
	SetupTaskRoutes(api, h)
	SetupDashboardRoutes(api, h)
	SetupMonitoringRoutes(api, h)

	// WebSocket needs app, not the api group
	SetupWebSocketRoutes(app, h, wsManager)
}
