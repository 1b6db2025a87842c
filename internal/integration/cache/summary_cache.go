// Package cache implements Redis-backed caches for the application layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// summaryTTL bounds staleness if an invalidation is ever missed.
const summaryTTL = 15 * time.Minute

// summaryCache implements the adapter.SummaryCache interface on Redis.
type summaryCache struct {
	client *redis.Client
}

// NewSummaryCache creates a Redis-backed summary cache.
func NewSummaryCache(client *redis.Client) adapter.SummaryCache {
	return &summaryCache{
		client: client,
	}
}

// Get retrieves a cached summary for a household and month, or nil on miss.
func (c *summaryCache) Get(ctx context.Context, householdID uuid.UUID, month time.Time) (*entity.SpendingSummary, error) {
	payload, err := c.client.Get(ctx, summaryKey(householdID, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var summary entity.SpendingSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		// Treat a corrupt entry as a miss.
		return nil, nil
	}
	return &summary, nil
}

// Set stores a summary for a household and month.
func (c *summaryCache) Set(ctx context.Context, householdID uuid.UUID, month time.Time, summary *entity.SpendingSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, summaryKey(householdID, month), payload, summaryTTL).Err()
}

// Invalidate drops any cached summary for a household and month.
func (c *summaryCache) Invalidate(ctx context.Context, householdID uuid.UUID, month time.Time) error {
	return c.client.Del(ctx, summaryKey(householdID, month)).Err()
}

func summaryKey(householdID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("summary:%s:%s", householdID, month.Format("2006-01"))
}

// noopSummaryCache is used when Redis is disabled. Every read is a miss.
type noopSummaryCache struct{}

// NewNoopSummaryCache creates a cache that stores nothing.
func NewNoopSummaryCache() adapter.SummaryCache {
	return noopSummaryCache{}
}

func (noopSummaryCache) Get(context.Context, uuid.UUID, time.Time) (*entity.SpendingSummary, error) {
	return nil, nil
}

func (noopSummaryCache) Set(context.Context, uuid.UUID, time.Time, *entity.SpendingSummary) error {
	return nil
}

func (noopSummaryCache) Invalidate(context.Context, uuid.UUID, time.Time) error {
	return nil
}
