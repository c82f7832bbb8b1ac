package services

import (
	"context"
	"errors"
	"time"

	"github.com/DrummDaddy/Event_service/internal/config"
	"github.com/DrummDaddy/Event_service/internal/models"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

const eventSlugKeyPrefix = "event:slug:"

// RedisCache keeps BSON copies of events keyed by slug.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return NewRedisCacheWithClient(client, cfg.TTL)
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (rc *RedisCache) Ping(ctx context.Context) error {
	return rc.client.Ping(ctx).Err()
}

// Get returns the cached event for slug. A miss is (nil, nil).
func (rc *RedisCache) Get(ctx context.Context, slug string) (*models.Event, error) {
	raw, err := rc.client.Get(ctx, eventSlugKeyPrefix+slug).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var event models.Event
	if err := bson.Unmarshal(raw, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (rc *RedisCache) Set(ctx context.Context, event *models.Event) error {
	raw, err := bson.Marshal(event)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, eventSlugKeyPrefix+event.Slug, raw, rc.ttl).Err()
}

func (rc *RedisCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs))
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, eventSlugKeyPrefix+s)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
