package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"moneybrief/internal/model"

	"github.com/redis/go-redis/v9"
)

// NarrativeCache stores AI narrative jobs while they are generated and
// briefly after, so a client can poll or reconnect
type NarrativeCache interface {
	Set(ctx context.Context, job *model.NarrativeJob) error
	Get(ctx context.Context, id string) (*model.NarrativeJob, error)
}

type narrativeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewNarrativeCache creates a Redis-backed narrative job cache
func NewNarrativeCache(client *redis.Client, ttl time.Duration) NarrativeCache {
	return &narrativeCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *narrativeCache) Set(ctx context.Context, job *model.NarrativeJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, narrativePrefix+job.ID, data, c.ttl).Err()
}

func (c *narrativeCache) Get(ctx context.Context, id string) (*model.NarrativeJob, error) {
	data, err := c.client.Get(ctx, narrativePrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var job model.NarrativeJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, err
	}
	return &job, nil
}
