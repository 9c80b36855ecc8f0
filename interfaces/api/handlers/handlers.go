package handlers

import (
	"venturedesk/domain/services"
	"venturedesk/infrastructure/gateway"
	"venturedesk/infrastructure/websocket"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	UserService      services.UserService
	BusinessService  services.BusinessService
	TaskService      services.TaskService
	TipService       services.TipService
	GeneratorService services.GeneratorService
	DashboardService services.DashboardService
	SourceTracker    *gateway.Tracker
	WSManager        *websocket.Manager
	JWTSecret        string
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	AuthHandler       *AuthHandler
	BusinessHandler   *BusinessHandler
	TaskHandler       *TaskHandler
	TipHandler        *TipHandler
	GenerateHandler   *GenerateHandler
	DashboardHandler  *DashboardHandler
	MonitoringHandler *MonitoringHandler
	JWTSecret         string
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		AuthHandler:       NewAuthHandler(services.UserService),
		BusinessHandler:   NewBusinessHandler(services.BusinessService),
		TaskHandler:       NewTaskHandler(services.TaskService),
		TipHandler:        NewTipHandler(services.TipService),
		GenerateHandler:   NewGenerateHandler(services.GeneratorService),
		DashboardHandler:  NewDashboardHandler(services.DashboardService),
		MonitoringHandler: NewMonitoringHandler(services.SourceTracker, services.WSManager),
		JWTSecret:         services.JWTSecret,
	}
}
