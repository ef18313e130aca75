// Package cache holds the short-lived read-through cache in front of the
// bundle aggregation query. It is a latency optimization, never the system
// of record: expired or missing entries always go back to the store via the
// loader, and loader failures are surfaced rather than papered over with
// stale data.
package cache

import (
	"context"
	"sync"
	"time"

	"studymentor/internal/model"

	"github.com/google/uuid"
)

// Loader recomputes a bundle from the authoritative store.
type Loader interface {
	LoadBundle(ctx context.Context, topicID, userID uuid.UUID) (*model.Bundle, error)
}

// Key identifies one cached bundle. The user is part of the key: entries
// must never be served across users sharing a topic.
type Key struct {
	TopicID uuid.UUID
	UserID  uuid.UUID
}

type entry struct {
	bundle    *model.Bundle
	writtenAt time.Time
}

// BundleCache caches aggregated bundles per (topic, user) with a fixed TTL.
// The clock is injected so TTL boundaries are testable without sleeping.
// Two misses racing on the same key both recompute from the store and the
// last writer wins, which is sound because both computed from the same
// source moments apart.
type BundleCache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	loader  Loader
	ttl     time.Duration
	clock   func() time.Time
}

func NewBundleCache(loader Loader, ttl time.Duration, clock func() time.Time) *BundleCache {
	if clock == nil {
		clock = time.Now
	}
	return &BundleCache{
		entries: make(map[Key]entry),
		loader:  loader,
		ttl:     ttl,
		clock:   clock,
	}
}

// Get returns the cached bundle for (topicID, userID), recomputing through
// the loader when the entry is absent or its age has reached the TTL. The
// returned bundle is shared; callers must treat it as read-only.
func (c *BundleCache) Get(ctx context.Context, topicID, userID uuid.UUID) (*model.Bundle, error) {
	key := Key{TopicID: topicID, UserID: userID}
	now := c.clock()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && now.Sub(e.writtenAt) < c.ttl {
		return e.bundle, nil
	}

	// Loader runs outside the lock so independent keys never block each
	// other on slow recomputes.
	bundle, err := c.loader.LoadBundle(ctx, topicID, userID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{bundle: bundle, writtenAt: c.clock()}
	c.mu.Unlock()

	return bundle, nil
}

// Invalidate removes every user's entry under the given topic. Writes
// usually don't know which users hold cached copies, so the sweep is
// topic-scoped.
func (c *BundleCache) Invalidate(topicID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.TopicID == topicID {
			delete(c.entries, key)
		}
	}
}
