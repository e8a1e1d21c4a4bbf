package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/navhub/navhub_backend/models"
)

const (
	// RenderCacheTTL bounds how stale the aggregate render output may
	// get without an explicit sync trigger.
	RenderCacheTTL = 12 * time.Hour

	renderKeyPrefix = "render:home:"
	lastSyncKey     = "render:last_sync"
)

// RenderCache stores the assembled home-page aggregate in Redis under
// one key per viewer scope. With no Redis connection every lookup is a
// miss and writes are dropped, so reads fall through to the upstream
// store.
type RenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRenderCache(client *redis.Client) *RenderCache {
	return &RenderCache{client: client, ttl: RenderCacheTTL}
}

// Get returns the cached render output for the scope, if present and
// not expired.
func (rc *RenderCache) Get(ctx context.Context, scope string) (*models.HomePage, bool) {
	if rc.client == nil {
		return nil, false
	}

	data, err := rc.client.Get(ctx, renderKeyPrefix+scope).Bytes()
	if err != nil {
		return nil, false
	}

	var page models.HomePage
	if err := json.Unmarshal(data, &page); err != nil {
		log.Printf("Warning: dropping undecodable render cache entry for scope %q: %v", scope, err)
		rc.client.Del(ctx, renderKeyPrefix+scope)
		return nil, false
	}
	return &page, true
}

// Set stores the render output for the scope with the cache TTL.
func (rc *RenderCache) Set(ctx context.Context, scope string, page *models.HomePage) {
	if rc.client == nil {
		return
	}

	data, err := json.Marshal(page)
	if err != nil {
		log.Printf("Warning: failed to encode render cache entry: %v", err)
		return
	}
	if err := rc.client.Set(ctx, renderKeyPrefix+scope, data, rc.ttl).Err(); err != nil {
		log.Printf("Warning: failed to store render cache entry: %v", err)
	}
}

// Invalidate drops all cached render scopes and records the trigger
// time. The next read re-fetches lazily; nothing is fetched here.
func (rc *RenderCache) Invalidate(ctx context.Context) (time.Time, error) {
	now := time.Now()
	if rc.client == nil {
		return now, nil
	}

	keys, err := rc.client.Keys(ctx, renderKeyPrefix+"*").Result()
	if err != nil {
		return time.Time{}, err
	}
	if len(keys) > 0 {
		if err := rc.client.Del(ctx, keys...).Err(); err != nil {
			return time.Time{}, err
		}
	}

	if err := rc.client.Set(ctx, lastSyncKey, now.Format(time.RFC3339), 0).Err(); err != nil {
		return time.Time{}, err
	}
	return now, nil
}

// LastSync returns when the cache was last explicitly invalidated.
func (rc *RenderCache) LastSync(ctx context.Context) (time.Time, bool) {
	if rc.client == nil {
		return time.Time{}, false
	}

	stamp, err := rc.client.Get(ctx, lastSyncKey).Result()
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
