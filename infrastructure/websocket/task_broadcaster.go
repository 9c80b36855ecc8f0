package websocket

import (
	"context"
	"sync"

	"venturedesk/domain/ports"
	"venturedesk/pkg/logger"
)

// TaskBroadcaster forwards task events from messaging into the room of the
// affected business. Clients do not diff events; they refetch on any change.
type TaskBroadcaster struct {
	eventSub  ports.TaskEventSubscriber
	manager   *Manager
	running   bool
	runningMu sync.Mutex
	cancelCtx context.CancelFunc
}

func NewTaskBroadcaster(eventSub ports.TaskEventSubscriber, manager *Manager) *TaskBroadcaster {
	return &TaskBroadcaster{
		eventSub: eventSub,
		manager:  manager,
	}
}

func (tb *TaskBroadcaster) Start() error {
	tb.runningMu.Lock()
	if tb.running {
		tb.runningMu.Unlock()
		return nil
	}
	tb.running = true
	tb.runningMu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	tb.cancelCtx = cancel

	if err := tb.eventSub.Subscribe(ctx, tb.handleTaskEvent); err != nil {
		tb.runningMu.Lock()
		tb.running = false
		tb.runningMu.Unlock()
		return err
	}

	logger.Info("Task broadcaster started")
	return nil
}

func (tb *TaskBroadcaster) handleTaskEvent(event *ports.TaskEvent) {
	if event == nil || event.BusinessID == "" {
		logger.Warn("Invalid task event received")
		return
	}

	tb.manager.BroadcastToRoom(event.BusinessID, "task_event", event)

	logger.Debug("Task event broadcasted",
		"business_id", event.BusinessID,
		"task_id", event.TaskID,
		"type", event.Type,
		"clients_count", tb.manager.GetRoomClients(event.BusinessID),
	)
}

func (tb *TaskBroadcaster) Stop() {
	tb.runningMu.Lock()
	defer tb.runningMu.Unlock()

	if !tb.running {
		return
	}
	tb.running = false

	if tb.cancelCtx != nil {
		tb.cancelCtx()
	}
	if tb.eventSub != nil {
		if err := tb.eventSub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe task events", "error", err)
		}
	}

	logger.Info("Task broadcaster stopped")
}

func (tb *TaskBroadcaster) IsRunning() bool {
	tb.runningMu.Lock()
	defer tb.runningMu.Unlock()
	return tb.running
}
