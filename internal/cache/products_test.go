package cache_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/storefront-catalog-service/internal/cache"
	"github.com/maxviazov/storefront-catalog-service/internal/config"
	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

func newCache(t *testing.T, ttl time.Duration) (*cache.ProductCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return cache.NewProductCache(rdb, ttl, zerolog.New(io.Discard)), mr
}

func TestKey_StableAndDistinct(t *testing.T) {
	brand := int64(2)
	a := repository.ProductFilter{BrandID: &brand, Search: "hat", Sort: model.SortPriceAsc, Page: repository.Page{Limit: 10, Offset: 20}}
	b := a
	otherBrand := int64(2)
	b.BrandID = &otherBrand
	assert.Equal(t, cache.Key(a), cache.Key(b))

	c := a
	c.Page.Offset = 30
	assert.NotEqual(t, cache.Key(a), cache.Key(c))

	d := a
	d.BrandID = nil
	d.TypeID = &brand
	assert.NotEqual(t, cache.Key(a), cache.Key(d))
}

func TestProductCache_MissThenHit(t *testing.T) {
	pc, mr := newCache(t, time.Minute)
	ctx := context.Background()
	f := repository.ProductFilter{Page: repository.Page{Limit: 10}}

	_, ok, err := pc.Get(ctx, f)
	require.NoError(t, err)
	assert.False(t, ok)

	page := repository.PageResult[model.Product]{
		Items: []model.Product{{ID: 1, Name: "Blue Hat", Price: 10.5, Brand: "Angular"}},
		Total: 1,
	}
	require.NoError(t, pc.Set(ctx, f, page))

	got, ok, err := pc.Get(ctx, f)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, page, got)

	mr.FastForward(2 * time.Minute)
	_, ok, err = pc.Get(ctx, f)
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire with ttl")
}

func TestProductCache_CorruptEntryIsMiss(t *testing.T) {
	pc, mr := newCache(t, time.Minute)
	f := repository.ProductFilter{Page: repository.Page{Limit: 10}}
	require.NoError(t, mr.Set(cache.Key(f), "{not json"))

	_, ok, err := pc.Get(context.Background(), f)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists(cache.Key(f)))
}

func TestProductCache_BackendDown(t *testing.T) {
	pc, mr := newCache(t, time.Minute)
	mr.Close()
	_, _, err := pc.Get(context.Background(), repository.ProductFilter{})
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	rdb, err := cache.NewClient(context.Background(), config.Redis{Addr: addr})
	require.NoError(t, err)
	_ = rdb.Close()

	// Addr is unusable once the server is closed, so reuse the saved one
	mr.Close()
	_, err = cache.NewClient(context.Background(), config.Redis{Addr: addr})
	assert.Error(t, err)
}
