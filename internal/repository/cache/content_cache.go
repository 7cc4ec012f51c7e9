package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cavaltron-backend/internal/domain"
	"cavaltron-backend/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "content:"

// Store is the subset of the go-redis client the cache uses
type Store interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
}

// contentCache is a read-through decorator over a ContentRepository.
// Entries expire after ttl; there is no other invalidation.
type contentCache struct {
	next  domain.ContentRepository
	store Store
	ttl   time.Duration
}

// NewContentCache wraps repo with a Redis cache. A nil store or a
// non-positive ttl returns repo unchanged.
func NewContentCache(repo domain.ContentRepository, store Store, ttl time.Duration) domain.ContentRepository {
	if store == nil || ttl <= 0 {
		return repo
	}
	return &contentCache{next: repo, store: store, ttl: ttl}
}

func (c *contentCache) GetSection(ctx context.Context, section string) (*domain.SiteContent, error) {
	return cached(ctx, c, "section:"+section, func(ctx context.Context) (*domain.SiteContent, error) {
		return c.next.GetSection(ctx, section)
	})
}

func (c *contentCache) ListContactInfo(ctx context.Context) ([]domain.ContactInfo, error) {
	return cached(ctx, c, "contact_info", c.next.ListContactInfo)
}

func (c *contentCache) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return cached(ctx, c, "skills", c.next.ListSkills)
}

func (c *contentCache) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return cached(ctx, c, "projects", c.next.ListProjects)
}

// cached serves key from Redis, falling back to load on a miss or any Redis
// error. Load errors, ErrNotFound included, are never cached.
func cached[T any](ctx context.Context, c *contentCache, key string, load func(context.Context) (T, error)) (T, error) {
	fullKey := keyPrefix + key

	raw, err := c.store.Get(ctx, fullKey).Bytes()
	if err == nil {
		var v T
		if jsonErr := json.Unmarshal(raw, &v); jsonErr == nil {
			return v, nil
		}
		logger.Log.WarnContext(ctx, "Discarding unreadable cache entry", "key", fullKey)
	} else if !errors.Is(err, goredis.Nil) {
		logger.Log.WarnContext(ctx, "Content cache read failed", "key", fullKey, "error", err)
	}

	v, err := load(ctx)
	if err != nil {
		return v, err
	}

	if payload, jsonErr := json.Marshal(v); jsonErr == nil {
		if setErr := c.store.Set(ctx, fullKey, payload, c.ttl).Err(); setErr != nil {
			logger.Log.WarnContext(ctx, "Content cache write failed", "key", fullKey, "error", setErr)
		}
	}
	return v, nil
}
