package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"venturedesk/infrastructure/gateway"
	"venturedesk/infrastructure/websocket"
	"venturedesk/pkg/utils"
)

// MonitoringHandler serves operational endpoints: health, the per-collection
// data source report, and websocket stats.
type MonitoringHandler struct {
	tracker   *gateway.Tracker
	wsManager *websocket.Manager
}

func NewMonitoringHandler(tracker *gateway.Tracker, wsManager *websocket.Manager) *MonitoringHandler {
	return &MonitoringHandler{
		tracker:   tracker,
		wsManager: wsManager,
	}
}

func (h *MonitoringHandler) Health(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// DataSource reports which store last served each collection, so operators
// can tell at a glance whether the API is running on the primary database
// or the seeded fallback.
func (h *MonitoringHandler) DataSource(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.Map{
		"collections": h.tracker.Snapshot(),
	})
}

func (h *MonitoringHandler) WebSocketStats(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.Map{
		"connected_clients": h.wsManager.GetTotalClients(),
	})
}
