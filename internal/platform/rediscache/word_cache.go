// Package rediscache provides a Redis-backed read-through cache for
// canonical word lookups. Lesson walks hammer the same vocabulary again and
// again, so caching the word row by its exact Hebrew text saves a database
// round trip per word per walk. The cache is strictly best-effort: any
// Redis failure degrades to the database.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/yardenlev/mikra-api/internal/domain"
)

// ErrCacheMiss is returned when the requested word is not in the cache.
var ErrCacheMiss = errors.New("word cache: key not found")

// wordKeyPrefix namespaces word keys in Redis.
const wordKeyPrefix = "word:text:"

// WordCache caches domain.Word values keyed by their exact Hebrew text.
type WordCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewWordCache creates a WordCache using the given client and TTL.
// If logger is nil, a default logger will be used.
func NewWordCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *WordCache {
	if client == nil {
		panic("client cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &WordCache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "word_cache")),
	}
}

// Get retrieves a cached word by its exact Hebrew text.
// Returns ErrCacheMiss when absent; any other error is a Redis failure the
// caller should treat as a miss.
func (c *WordCache) Get(ctx context.Context, hebrewText string) (*domain.Word, error) {
	data, err := c.client.Get(ctx, wordKeyPrefix+hebrewText).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("word cache get: %w", err)
	}

	var word domain.Word
	if err := json.Unmarshal(data, &word); err != nil {
		// A corrupt entry is as good as a miss; drop it so the next
		// write replaces it.
		c.logger.Warn("dropping corrupt word cache entry",
			slog.String("error", err.Error()))
		c.client.Del(ctx, wordKeyPrefix+hebrewText)
		return nil, ErrCacheMiss
	}

	return &word, nil
}

// Set stores a word under its exact Hebrew text with the configured TTL.
func (c *WordCache) Set(ctx context.Context, word *domain.Word) error {
	data, err := json.Marshal(word)
	if err != nil {
		return fmt.Errorf("word cache set: %w", err)
	}

	if err := c.client.Set(ctx, wordKeyPrefix+word.HebrewText, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("word cache set: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection. Called once at startup so a
// misconfigured cache surfaces immediately rather than as per-request
// debug noise.
func (c *WordCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("word cache ping: %w", err)
	}
	return nil
}
