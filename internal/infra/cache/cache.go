package cache

import (
	"context"
	"log"
	"time"

	"bookly-backend/config"

	"github.com/redis/go-redis/v9"
)

var rdb *redis.Client

const providerTTL = 10 * time.Minute

func Init() {
	rdb = redis.NewClient(&redis.Options{Addr: config.REDIS_ADDR})
}

func providerKey(username string) string {
	return "provider:" + username
}

// GetProvider returns the cached public profile JSON, "" on miss or outage.
func GetProvider(ctx context.Context, username string) string {
	if rdb == nil {
		return ""
	}
	val, err := rdb.Get(ctx, providerKey(username)).Result()
	if err != nil {
		return ""
	}
	return val
}

// SetProvider caches the rendered public profile. Best-effort.
func SetProvider(ctx context.Context, username, payload string) {
	if rdb == nil {
		return
	}
	if err := rdb.Set(ctx, providerKey(username), payload, providerTTL).Err(); err != nil {
		log.Printf("cache: set %s failed: %v", username, err)
	}
}

// InvalidateProvider drops the cached profile after settings or subscription
// changes. Best-effort: a failed invalidation is logged, the TTL bounds staleness.
func InvalidateProvider(ctx context.Context, username string) {
	if rdb == nil {
		return
	}
	if err := rdb.Del(ctx, providerKey(username)).Err(); err != nil {
		log.Printf("cache: invalidate %s failed: %v", username, err)
	}
}
