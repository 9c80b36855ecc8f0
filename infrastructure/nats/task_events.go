package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"venturedesk/domain/ports"
	"venturedesk/pkg/logger"
)

// Task events are published per business so a subscriber can filter on the
// subject: tasks.events.<businessID>.
const (
	taskEventSubjectPrefix   = "tasks.events."
	taskEventSubjectWildcard = "tasks.events.*"
)

func taskEventSubject(businessID string) string {
	return taskEventSubjectPrefix + businessID
}

// TaskEventPublisher publishes task lifecycle events to NATS.
type TaskEventPublisher struct {
	client *Client
}

func NewTaskEventPublisher(client *Client) *TaskEventPublisher {
	return &TaskEventPublisher{client: client}
}

func (p *TaskEventPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal task event: %w", err)
	}

	subject := taskEventSubject(event.BusinessID)
	if err := p.client.conn.Publish(subject, data); err != nil {
		logger.Error("Failed to publish task event",
			"task_id", event.TaskID,
			"business_id", event.BusinessID,
			"error", err,
		)
		return fmt.Errorf("failed to publish task event: %w", err)
	}

	logger.InfoContext(ctx, "Task event published",
		"subject", subject,
		"task_id", event.TaskID,
		"type", event.Type,
	)
	return nil
}

// Verify interface implementation
var _ ports.TaskEventPublisher = (*TaskEventPublisher)(nil)

// TaskEventSubscriber feeds every task event into a single handler. The
// websocket hub fans events out to per-business rooms from there.
type TaskEventSubscriber struct {
	client *Client
	sub    *nats.Subscription
}

func NewTaskEventSubscriber(client *Client) *TaskEventSubscriber {
	return &TaskEventSubscriber{client: client}
}

func (s *TaskEventSubscriber) Subscribe(ctx context.Context, handler ports.TaskEventHandler) error {
	sub, err := s.client.conn.Subscribe(taskEventSubjectWildcard, func(msg *nats.Msg) {
		var event ports.TaskEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			logger.Warn("Dropping malformed task event", "subject", msg.Subject, "error", err)
			return
		}
		handler(&event)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to task events: %w", err)
	}

	s.sub = sub
	logger.Info("Subscribed to task events", "subject", taskEventSubjectWildcard)
	return nil
}

func (s *TaskEventSubscriber) Unsubscribe() error {
	if s.sub == nil {
		return nil
	}
	return s.sub.Unsubscribe()
}

// Verify interface implementation
var _ ports.TaskEventSubscriber = (*TaskEventSubscriber)(nil)
