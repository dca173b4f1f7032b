// Package ordercache keeps pages of the order list in Redis.
//
// Page keys carry a generation number. Invalidate increments the generation,
// which makes every stored page unreachable at once; the old keys then
// expire through their TTL. A page read from the database while a write
// commits can still be stored under the new generation, so the TTL also
// bounds how long such a page is served.
package ordercache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fastfeet/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

// Cache implements ports.OrderListCache and ports.CommitObserver.
type Cache struct {
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCache(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "OrderListCache"),
	}
}

// Get decodes the page stored under key into dest. A missing page is a
// miss, not an error.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	pageKey, err := c.pageKey(ctx, key)
	if err != nil {
		return false, err
	}

	raw, err := c.client.Get(ctx, pageKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cached page: %w", err)
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cached page: %w", err)
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any) error {
	pageKey, err := c.pageKey(ctx, key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}

	if err = c.client.Set(ctx, pageKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("write cached page: %w", err)
	}
	return nil
}

// Invalidate drops every cached page by moving to the next generation.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, keyGeneration).Err(); err != nil {
		return fmt.Errorf("bump order list generation: %w", err)
	}
	return nil
}

// AggregatesCommitted invalidates the cache when a committed unit of work
// wrote an order.
func (c *Cache) AggregatesCommitted(ctx context.Context, aggregates []any) {
	for _, aggregate := range aggregates {
		if _, ok := aggregate.(*order.Order); !ok {
			continue
		}
		if err := c.Invalidate(ctx); err != nil {
			c.logger.ErrorContext(ctx, "order list cache not invalidated", "error", err)
		}
		return
	}
}

func (c *Cache) pageKey(ctx context.Context, key string) (string, error) {
	generation, err := c.client.Get(ctx, keyGeneration).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("read order list generation: %w", err)
	}
	return fmt.Sprintf(keyPage, generation, key), nil
}
