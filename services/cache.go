package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/roybobrovich/meal-prep-app/logger"
)

// Cache is the process-wide search cache. Nil when Redis is not
// configured; a nil cache is inert.
var Cache *SearchCache

// SearchCache keeps USDA search responses in Redis so repeated queries
// skip the external API.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

// InitCache connects the package cache to Redis. An empty address
// leaves caching disabled; a connection failure is logged and the
// service runs without a cache.
func InitCache(addr string) {
	if addr == "" {
		logger.Info("search cache disabled, REDIS_ADDR not set")
		return
	}
	cache, err := NewSearchCache(addr)
	if err != nil {
		logger.Warn("search cache unavailable, continuing without it", "error", err)
		return
	}
	Cache = cache
	logger.Info("search cache connected", "addr", addr)
}

// NewSearchCache creates a Redis-backed cache and verifies the
// connection.
func NewSearchCache(addr string) (*SearchCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &SearchCache{client: client, ttl: time.Hour}, nil
}

func searchKey(query string) string {
	return fmt.Sprintf("usda:search:%s", strings.ToLower(strings.TrimSpace(query)))
}

// GetSearch returns the cached result for a query, if any.
func (c *SearchCache) GetSearch(ctx context.Context, query string) (*SearchResult, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, searchKey(query)).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Debug("search cache read failed", "query", query, "error", err)
		return nil, false
	}
	var result SearchResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, false
	}
	return &result, true
}

// SetSearch stores a search result with the cache TTL. Failures only
// cost the next caller an API round trip.
func (c *SearchCache) SetSearch(ctx context.Context, query string, result *SearchResult) {
	if c == nil {
		return
	}
	b, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, searchKey(query), b, c.ttl).Err(); err != nil {
		logger.Debug("search cache write failed", "query", query, "error", err)
	}
}
