// Package cache keeps rendered product listing pages in Redis so repeated
// catalog browsing does not hit Postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/maxviazov/storefront-catalog-service/internal/config"
	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

const keyPrefix = "catalog:products:"

// NewClient connects to Redis and verifies the connection once.
func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return rdb, nil
}

// ProductCache stores listing pages as JSON under a key derived from the filter.
type ProductCache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func NewProductCache(rdb *redis.Client, ttl time.Duration, logger zerolog.Logger) *ProductCache {
	l := logger.With().Str("module", "cache").Str("component", "products").Logger()
	return &ProductCache{rdb: rdb, ttl: ttl, log: l}
}

// Key is stable for equal filters: url.Values encodes with sorted keys.
func Key(f repository.ProductFilter) string {
	v := url.Values{}
	if f.BrandID != nil {
		v.Set("brand", strconv.FormatInt(*f.BrandID, 10))
	}
	if f.TypeID != nil {
		v.Set("type", strconv.FormatInt(*f.TypeID, 10))
	}
	if f.Search != "" {
		v.Set("q", f.Search)
	}
	if f.Sort != "" {
		v.Set("sort", string(f.Sort))
	}
	v.Set("limit", strconv.Itoa(f.Page.Limit))
	v.Set("offset", strconv.Itoa(f.Page.Offset))
	return keyPrefix + v.Encode()
}

// Get returns the cached page; ok is false on a miss.
func (c *ProductCache) Get(ctx context.Context, f repository.ProductFilter) (res repository.PageResult[model.Product], ok bool, err error) {
	key := Key(f)
	b, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return res, false, nil
	}
	if err != nil {
		return res, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(b, &res); err != nil {
		// a corrupt entry is a miss; drop it so the next read repopulates
		c.log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		_ = c.rdb.Del(ctx, key).Err()
		return repository.PageResult[model.Product]{}, false, nil
	}
	return res, true, nil
}

// Set stores the page with the configured TTL.
func (c *ProductCache) Set(ctx context.Context, f repository.ProductFilter, res repository.PageResult[model.Product]) error {
	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode page: %w", err)
	}
	key := Key(f)
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	c.log.Debug().Str("key", key).Int("items", len(res.Items)).Dur("ttl", c.ttl).Msg("listing cached")
	return nil
}
