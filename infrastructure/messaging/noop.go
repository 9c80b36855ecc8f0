// Package messaging provides no-op stand-ins used when NATS is disabled or
// unreachable, so services can publish unconditionally.
package messaging

import (
	"context"

	"venturedesk/domain/ports"
	"venturedesk/pkg/logger"
)

type NoopTaskEventPublisher struct{}

func NewNoopTaskEventPublisher() *NoopTaskEventPublisher {
	return &NoopTaskEventPublisher{}
}

func (p *NoopTaskEventPublisher) PublishTaskEvent(ctx context.Context, event *ports.TaskEvent) error {
	logger.DebugContext(ctx, "Task event dropped (messaging disabled)",
		"task_id", event.TaskID,
		"type", event.Type,
	)
	return nil
}

var _ ports.TaskEventPublisher = (*NoopTaskEventPublisher)(nil)
