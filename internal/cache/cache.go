package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"inmolista/server/internal/models"
)

const propertiesKey = "properties:all"

// Cache keeps the full ordered property collection in Redis between reads.
// Every mutation invalidates it; a failed Redis call degrades to a miss so
// the store remains the source of truth.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func New(addr, password string, ttl time.Duration, logger *logrus.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Cache{client: client, ttl: ttl, logger: logger}, nil
}

func (c *Cache) GetProperties(ctx context.Context) ([]models.Property, bool) {
	data, err := c.client.Get(ctx, propertiesKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.WithError(err).Warn("Cache read failed")
		return nil, false
	}

	var properties []models.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		c.logger.WithError(err).Warn("Discarding malformed cache entry")
		return nil, false
	}
	return properties, true
}

func (c *Cache) SetProperties(ctx context.Context, properties []models.Property) {
	data, err := json.Marshal(properties)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to marshal properties for cache")
		return
	}
	if err := c.client.Set(ctx, propertiesKey, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Cache write failed")
	}
}

func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, propertiesKey).Err(); err != nil {
		c.logger.WithError(err).Warn("Cache invalidation failed")
	}
}

func (c *Cache) Close() error {
	return c.client.Close()
}
