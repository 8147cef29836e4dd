package repository

import (
	"context"
	"fmt"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/blaisecz/wellness-outcomes/internal/metrics"
	lru "github.com/hashicorp/golang-lru"
)

// CachedUserRepository keeps recent cohorts in an LRU cache in front of
// another UserRepository. Cached cohorts are cloned on the way out.
type CachedUserRepository struct {
	next  UserRepository
	cache *lru.Cache
}

func NewCachedUserRepository(next UserRepository, size int) (*CachedUserRepository, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("create cohort cache: %w", err)
	}
	return &CachedUserRepository{next: next, cache: cache}, nil
}

func (c *CachedUserRepository) ListByOrg(ctx context.Context, orgID string) ([]domain.User, error) {
	if v, ok := c.cache.Get(orgID); ok {
		metrics.CohortCacheHits.Inc()
		return cloneUsers(v.([]domain.User)), nil
	}
	metrics.CohortCacheMisses.Inc()

	users, err := c.next.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	c.cache.Add(orgID, cloneUsers(users))
	return users, nil
}

func (c *CachedUserRepository) CountByOrg(ctx context.Context) (map[string]int, error) {
	return c.next.CountByOrg(ctx)
}

// Purge drops every cached cohort.
func (c *CachedUserRepository) Purge() {
	c.cache.Purge()
}

// Len returns the number of cached cohorts.
func (c *CachedUserRepository) Len() int {
	return c.cache.Len()
}

func cloneUsers(users []domain.User) []domain.User {
	out := make([]domain.User, len(users))
	for i := range users {
		out[i] = users[i].Clone()
	}
	return out
}
