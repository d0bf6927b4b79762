package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ScoreCache caches computed survey total scores. Entries are invalidated on
// survey completion and on answer mutations; option score edits are covered
// by the TTL only.
type ScoreCache interface {
	Get(ctx context.Context, surveyID int64) (int, bool, error)
	Set(ctx context.Context, surveyID int64, score int) error
	Invalidate(ctx context.Context, surveyID int64) error
}

type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a Redis-backed score cache.
func NewScoreCache(client *redis.Client, ttl time.Duration) ScoreCache {
	return &scoreCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *scoreCache) key(surveyID int64) string {
	return fmt.Sprintf("survey:%d:score", surveyID)
}

func (c *scoreCache) Get(ctx context.Context, surveyID int64) (int, bool, error) {
	score, err := c.client.Get(ctx, c.key(surveyID)).Int()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return score, true, nil
}

func (c *scoreCache) Set(ctx context.Context, surveyID int64, score int) error {
	return c.client.Set(ctx, c.key(surveyID), score, c.ttl).Err()
}

func (c *scoreCache) Invalidate(ctx context.Context, surveyID int64) error {
	return c.client.Del(ctx, c.key(surveyID)).Err()
}

type noopScoreCache struct{}

// NewNoopScoreCache returns a ScoreCache that never hits. Used when Redis is
// not configured.
func NewNoopScoreCache() ScoreCache {
	return noopScoreCache{}
}

func (noopScoreCache) Get(ctx context.Context, surveyID int64) (int, bool, error) {
	return 0, false, nil
}

func (noopScoreCache) Set(ctx context.Context, surveyID int64, score int) error {
	return nil
}

func (noopScoreCache) Invalidate(ctx context.Context, surveyID int64) error {
	return nil
}
