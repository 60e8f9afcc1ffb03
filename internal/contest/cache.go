package contest

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Pickem_Go/internal/domain"
)

// potentialCache keeps event potentials in an expiring LRU.
// Recording a result on an event drops its entry.
type potentialCache struct {
	lru *expirable.LRU[uuid.UUID, domain.EventPotential]
}

func newPotentialCache(size int, ttl time.Duration) *potentialCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &potentialCache{
		lru: expirable.NewLRU[uuid.UUID, domain.EventPotential](size, nil, ttl),
	}
}

func (c *potentialCache) Get(eventID uuid.UUID) (domain.EventPotential, bool) {
	return c.lru.Get(eventID)
}

func (c *potentialCache) Set(eventID uuid.UUID, p domain.EventPotential) {
	c.lru.Add(eventID, p)
}

func (c *potentialCache) Invalidate(eventID uuid.UUID) {
	c.lru.Remove(eventID)
}
