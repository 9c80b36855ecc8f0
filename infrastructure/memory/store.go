// Package memory holds the seeded fallback dataset served when the primary
// database is unreachable. Every store instance owns its own maps, so tests
// and the DI container can build isolated copies.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"venturedesk/domain/models"
)

type Store struct {
	mu      sync.RWMutex
	latency time.Duration

	users      map[uuid.UUID]*models.User
	businesses map[uuid.UUID]*models.Business
	tasks      map[uuid.UUID]*models.Task
	tips       map[uuid.UUID]*models.Tip
}

// NewStore builds an empty store. latency is applied to every operation to
// mimic a real backend; zero disables it.
func NewStore(latency time.Duration) *Store {
	return &Store{
		latency:    latency,
		users:      make(map[uuid.UUID]*models.User),
		businesses: make(map[uuid.UUID]*models.Business),
		tasks:      make(map[uuid.UUID]*models.Task),
		tips:       make(map[uuid.UUID]*models.Tip),
	}
}

// wait blocks for the configured latency or until ctx is cancelled.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}

func copyBusiness(b *models.Business) *models.Business {
	c := *b
	if b.FoundedYear != nil {
		y := *b.FoundedYear
		c.FoundedYear = &y
	}
	return &c
}

func copyTask(t *models.Task) *models.Task {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := *t.CompletedAt
		c.CompletedAt = &d
	}
	c.Tags = append(models.TagList(nil), t.Tags...)
	return &c
}

func copyTip(t *models.Tip) *models.Tip {
	c := *t
	return &c
}
