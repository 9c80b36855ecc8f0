// Package gateway wraps each primary repository with a seeded in-memory
// fallback. Reads and writes go to the primary first; when it fails with a
// backend error the call is retried against the fallback and the response is
// tagged so clients can tell which source served them.
package gateway

import (
	"context"
	"errors"
	"sync"
	"time"

	"venturedesk/domain/repositories"
	"venturedesk/pkg/logger"
)

const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// Tracker keeps the last source that served each collection, for the
// monitoring endpoint.
type Tracker struct {
	mu      sync.RWMutex
	sources map[string]string
	lastAt  map[string]time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		sources: make(map[string]string),
		lastAt:  make(map[string]time.Time),
	}
}

func (t *Tracker) record(collection, source string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sources[collection] = source
	t.lastAt[collection] = time.Now()
}

// CollectionSource is one row of the monitoring snapshot.
type CollectionSource struct {
	Collection string    `json:"collection"`
	Source     string    `json:"source"`
	ObservedAt time.Time `json:"observedAt"`
}

// Snapshot returns the last observed source per collection.
func (t *Tracker) Snapshot() []CollectionSource {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]CollectionSource, 0, len(t.sources))
	for collection, source := range t.sources {
		out = append(out, CollectionSource{
			Collection: collection,
			Source:     source,
			ObservedAt: t.lastAt[collection],
		})
	}
	return out
}

// Recorder tags a single request with the source that served it. The request
// middleware puts one in the context and reads it back after the handler.
type Recorder struct {
	mu       sync.Mutex
	fallback bool
}

func (r *Recorder) markFallback() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.fallback = true
	r.mu.Unlock()
}

// Source returns "fallback" if any call in the request was served from the
// in-memory store, "primary" otherwise.
func (r *Recorder) Source() string {
	if r == nil {
		return SourcePrimary
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fallback {
		return SourceFallback
	}
	return SourcePrimary
}

type recorderKey struct{}

func ContextWithRecorder(ctx context.Context, rec *Recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, rec)
}

func recorderFrom(ctx context.Context) *Recorder {
	rec, _ := ctx.Value(recorderKey{}).(*Recorder)
	return rec
}

// shouldFailover reports whether err indicates an unavailable backend.
// Domain outcomes (not found, duplicate) and caller cancellation pass
// through untouched.
func shouldFailover(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrDuplicate) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// failover runs op against the primary and retries against the fallback when
// the primary looks unavailable.
func failover[T any](ctx context.Context, tracker *Tracker, collection, op string,
	primary, fallback func() (T, error)) (T, error) {

	result, err := primary()
	if !shouldFailover(err) {
		tracker.record(collection, SourcePrimary)
		return result, err
	}

	logger.WarnContext(ctx, "primary store unavailable, serving fallback",
		"collection", collection,
		"operation", op,
		"error", err)
	tracker.record(collection, SourceFallback)
	recorderFrom(ctx).markFallback()

	return fallback()
}
