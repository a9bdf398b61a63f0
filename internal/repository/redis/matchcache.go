package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/skillsync/backend/internal/domain"
)

const matchCachePrefix = "match:"

// MatchCache stores computed match results per user. Scoring fans out over
// every opposite-role user and their skill rows, so results are kept warm
// for a short TTL and invalidated whenever a user's skills change.
type MatchCache struct {
	client *Client
	ttl    time.Duration
}

// NewMatchCache creates a new match cache
func NewMatchCache(client *Client, ttl time.Duration) *MatchCache {
	return &MatchCache{client: client, ttl: ttl}
}

// Get retrieves cached match results for a user. A miss returns (nil, nil).
func (c *MatchCache) Get(ctx context.Context, username string) ([]domain.MatchResult, error) {
	data, err := c.client.rdb.Get(ctx, matchCachePrefix+username).Bytes()
	if err != nil {
		return nil, nil // cache miss
	}

	var results []domain.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match results: %w", err)
	}

	return results, nil
}

// Set caches match results for a user
func (c *MatchCache) Set(ctx context.Context, username string, results []domain.MatchResult) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal match results: %w", err)
	}

	return c.client.rdb.Set(ctx, matchCachePrefix+username, data, c.ttl).Err()
}

// Invalidate removes cached results for a user
func (c *MatchCache) Invalidate(ctx context.Context, username string) error {
	return c.client.rdb.Del(ctx, matchCachePrefix+username).Err()
}
