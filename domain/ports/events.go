package ports

import "context"

// TaskEvent describes a change to a business's task collection. Consumers do
// not diff; any update-class event triggers a full refetch.
type TaskEvent struct {
	BusinessID string `json:"business_id"`
	TaskID     string `json:"task_id"`
	Type       string `json:"type"` // created, status_changed, deleted
	Status     string `json:"status,omitempty"`
}

// TaskEventPublisher publishes task change events scoped by business id.
type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error
}

// TaskEventHandler receives task change events.
type TaskEventHandler func(event *TaskEvent)

// TaskEventSubscriber delivers task change events for all businesses.
type TaskEventSubscriber interface {
	Subscribe(ctx context.Context, handler TaskEventHandler) error
	Unsubscribe() error
}
