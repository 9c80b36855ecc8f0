package websocket

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	websocketManager "venturedesk/infrastructure/websocket"
	"venturedesk/pkg/logger"
	"venturedesk/pkg/utils"
)

// WebSocketHandler upgrades connections and feeds them into the manager.
// Clients join the room of the business whose task events they want
// (?room=<businessId>), authenticating via a token query parameter.
type WebSocketHandler struct {
	manager   *websocketManager.Manager
	jwtSecret string
}

func NewWebSocketHandler(manager *websocketManager.Manager, jwtSecret string) *WebSocketHandler {
	return &WebSocketHandler{
		manager:   manager,
		jwtSecret: jwtSecret,
	}
}

func (h *WebSocketHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

func (h *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	var userID uuid.UUID

	if token := c.Query("token"); token != "" {
		if userCtx, err := utils.ValidateToken(token, h.jwtSecret); err == nil {
			userID = userCtx.ID
		}
	}

	if userID == uuid.Nil {
		userID = uuid.New()
		logger.Info("WebSocket anonymous client connected", "user_id", userID)
	} else {
		logger.Info("WebSocket client connected", "user_id", userID)
	}

	roomID := c.Query("room", "")

	h.manager.RegisterClient(c, userID, roomID)
	defer h.manager.UnregisterClient(c)

	for {
		_, message, err := c.ReadMessage()
		if err != nil {
			break
		}
		h.manager.HandleMessage(c, message)
	}
}
