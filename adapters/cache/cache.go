package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	go_store "github.com/eko/gocache/store/go_cache/v4"
	redis_store "github.com/eko/gocache/store/redis/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

// Engine is the store shared by every PrefixedCache.
type Engine struct {
	cache *cache.Cache[[]byte]
	ttl   time.Duration
}

// NewEngine picks memory or redis from cfg.Cache.Type. rdb is only used for redis.
func NewEngine(cfg config.Config, rdb *redis.Client, log logger.Logger) (*Engine, error) {
	switch cfg.Cache.Type {
	case config.CacheTypeMemory:
		log.Info("Using in-memory page cache", zap.Duration("ttl", cfg.Cache.TTL))
		return &Engine{cache: newMemoryCache(cfg.Cache.TTL), ttl: cfg.Cache.TTL}, nil
	case config.CacheTypeRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis cache requires a redis client")
		}
		log.Info("Using redis page cache", zap.Duration("ttl", cfg.Cache.TTL), zap.Int("db", cfg.Cache.RedisDB))
		return &Engine{cache: cache.New[[]byte](redis_store.NewRedis(rdb)), ttl: cfg.Cache.TTL}, nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Cache.Type)
	}
}

// NewMemoryEngine is used in tests and when redis is not configured.
func NewMemoryEngine(ttl time.Duration) *Engine {
	return &Engine{cache: newMemoryCache(ttl), ttl: ttl}
}

func (e *Engine) GetType() string {
	return e.cache.GetType()
}

func newMemoryCache(ttl time.Duration) *cache.Cache[[]byte] {
	gocacheClient := gocache.New(ttl, 2*ttl)
	return cache.New[[]byte](go_store.NewGoCache(gocacheClient))
}

// PrefixedCache stores T as JSON under prefix + key.
type PrefixedCache[T any] struct {
	engine *Engine
	prefix string
}

func NewPrefixedCache[T any](engine *Engine, prefix string) *PrefixedCache[T] {
	return &PrefixedCache[T]{engine: engine, prefix: prefix}
}

func (p *PrefixedCache[T]) key(key any) string {
	return p.prefix + fmt.Sprintf("%v", key)
}

func (p *PrefixedCache[T]) Get(ctx context.Context, key any) (T, error) {
	data, err := p.engine.cache.Get(ctx, p.key(key))
	if err != nil {
		return *new(T), err
	}
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return *new(T), err
	}
	return result, nil
}

func (p *PrefixedCache[T]) Set(ctx context.Context, key any, object T) error {
	data, err := json.Marshal(object)
	if err != nil {
		return err
	}
	return p.engine.cache.Set(ctx, p.key(key), data, store.WithExpiration(p.engine.ttl))
}

func (p *PrefixedCache[T]) Delete(ctx context.Context, key any) error {
	return p.engine.cache.Delete(ctx, p.key(key))
}
