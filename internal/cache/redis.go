package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"linkhub/internal/logger"
	"linkhub/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"
)

const DefaultTTL = 60 * time.Second

// RedisCache stores JSON-encoded listings in Redis. Every round trip goes
// through a circuit breaker.
type RedisCache struct {
	rdb redis.UniversalClient
	cb  *gobreaker.CircuitBreaker
	ttl time.Duration
	log *logger.Logger
}

var _ ListingCache = (*RedisCache)(nil)

type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewRedisCache dials lazily; the first command opens the connection.
func NewRedisCache(opts RedisOptions, log *logger.Logger) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  500 * time.Millisecond,
		ReadTimeout:  300 * time.Millisecond,
		WriteTimeout: 300 * time.Millisecond,
		MaxRetries:   -1,
	})
	return NewRedisCacheWithClient(rdb, opts.TTL, log)
}

func NewRedisCacheWithClient(rdb redis.UniversalClient, ttl time.Duration, log *logger.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = logger.Nop()
	}
	st := gobreaker.Settings{
		Name:        "redis-listing-cache",
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnw("cache_breaker_state_changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}
	return &RedisCache{rdb: rdb, cb: gobreaker.NewCircuitBreaker(st), ttl: ttl, log: log}
}

// Ping checks connectivity, bypassing the breaker.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}

// State exposes the breaker state.
func (c *RedisCache) State() gobreaker.State {
	return c.cb.State()
}

func (c *RedisCache) GetCategories(ctx context.Context, includeEmpty bool) ([]models.PublicCategory, bool) {
	var out []models.PublicCategory
	if !c.get(ctx, categoriesKey(includeEmpty), &out) {
		return nil, false
	}
	return out, true
}

func (c *RedisCache) SetCategories(ctx context.Context, includeEmpty bool, v []models.PublicCategory) {
	c.set(ctx, categoriesKey(includeEmpty), v)
}

func (c *RedisCache) GetGrouped(ctx context.Context) (*models.LinksByTag, bool) {
	var out models.LinksByTag
	if !c.get(ctx, keyGrouped, &out) {
		return nil, false
	}
	return &out, true
}

func (c *RedisCache) SetGrouped(ctx context.Context, v *models.LinksByTag) {
	if v == nil {
		return
	}
	c.set(ctx, keyGrouped, v)
}

func (c *RedisCache) Invalidate(ctx context.Context) error {
	_, err := c.cb.Execute(func() (interface{}, error) {
		return nil, c.rdb.Del(ctx, keyCategoriesAll, keyCategoriesNonEmpty, keyGrouped).Err()
	})
	if err != nil {
		return fmt.Errorf("invalidate listing cache: %w", err)
	}
	return nil
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) bool {
	val, err := c.cb.Execute(func() (interface{}, error) {
		res, err := c.rdb.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return res, nil
	})
	if err != nil {
		c.log.Warnw("cache_get_failed", "key", key, "error", err)
		return false
	}
	if val == nil {
		return false
	}
	if err := json.Unmarshal(val.([]byte), dst); err != nil {
		c.log.Warnw("cache_decode_failed", "key", key, "error", err)
		return false
	}
	return true
}

func (c *RedisCache) set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.log.Warnw("cache_encode_failed", "key", key, "error", err)
		return
	}
	_, err = c.cb.Execute(func() (interface{}, error) {
		return nil, c.rdb.Set(ctx, key, data, c.ttl).Err()
	})
	if err != nil {
		c.log.Warnw("cache_set_failed", "key", key, "error", err)
	}
}
