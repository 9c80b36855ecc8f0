package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	websocketManager "venturedesk/infrastructure/websocket"
	"venturedesk/interfaces/api/handlers"
	websocketHandler "venturedesk/interfaces/api/websocket"
)

func SetupWebSocketRoutes(app *fiber.App, h *handlers.Handlers, wsManager *websocketManager.Manager) {
	wsHandler := websocketHandler.NewWebSocketHandler(wsManager, h.JWTSecret)

	app.Use("/ws", wsHandler.WebSocketUpgrade)
	app.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
