// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

// ErrNotFound is returned by reads when the key or field does not exist.
var ErrNotFound = errors.New("cache key not found")

type sessionContextKey struct{}

var sessionKey sessionContextKey

// session buffers writes on a transactional pipeline until Commit.
type session struct {
	pipe redis.Pipeliner
}

func sessionFromContext(ctx context.Context) *session {
	if s, ok := ctx.Value(sessionKey).(*session); ok {
		return s
	}
	return nil
}

type Config struct {
	Addr       string
	Password   string
	DB         int
	TTL        time.Duration
	UpdateOnly bool
}

type Client struct {
	rdb *redis.Client
	ttl time.Duration
	// updateOnly skips writes for keys that are not already cached, leaving
	// population to the read path.
	updateOnly bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Begin(ctx context.Context) context.Context {
	if sessionFromContext(ctx) != nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey, &session{pipe: c.rdb.TxPipeline()})
}

func (c *Client) Commit(ctx context.Context) error {
	s := sessionFromContext(ctx)
	if s == nil || s.pipe.Len() == 0 {
		return nil
	}

	if _, err := s.pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to flush cache writes: %w", err)
	}
	return nil
}

func (c *Client) Abort(ctx context.Context) {
	if s := sessionFromContext(ctx); s != nil {
		s.pipe.Discard()
	}
}

// writer returns the command target for mutating operations, the session
// pipeline when one is attached.
func (c *Client) writer(ctx context.Context) redis.Cmdable {
	if s := sessionFromContext(ctx); s != nil {
		return s.pipe
	}
	return c.rdb
}

func (c *Client) Set(ctx context.Context, key, value string) error {
	ctx, span := c.tracer.Start(ctx, "cache.Set")
	defer span.End()

	if skip, err := c.skipWrite(ctx, key); err != nil || skip {
		return err
	}

	return c.writer(ctx).Set(ctx, key, value, c.ttl).Err()
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "cache.Get")
	defer span.End()

	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get cache key: %w", err)
	}
	return val, nil
}

func (c *Client) Del(ctx context.Context, keys ...string) error {
	ctx, span := c.tracer.Start(ctx, "cache.Del")
	defer span.End()

	return c.writer(ctx).Del(ctx, keys...).Err()
}

func (c *Client) HSet(ctx context.Context, key string, values map[string]string) error {
	ctx, span := c.tracer.Start(ctx, "cache.HSet")
	defer span.End()

	if len(values) == 0 {
		return nil
	}

	if skip, err := c.skipWrite(ctx, key); err != nil || skip {
		return err
	}

	w := c.writer(ctx)
	if err := w.HSet(ctx, key, values).Err(); err != nil {
		return fmt.Errorf("failed to set cache fields: %w", err)
	}
	return w.Expire(ctx, key, c.ttl).Err()
}

func (c *Client) HGet(ctx context.Context, key, field string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "cache.HGet")
	defer span.End()

	val, err := c.rdb.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get cache field: %w", err)
	}
	return val, nil
}

// HGetAll returns every field of the hash. Redis drops a hash once its last
// field is deleted, so an empty result always means the key does not exist.
func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	ctx, span := c.tracer.Start(ctx, "cache.HGetAll")
	defer span.End()

	values, err := c.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get cache fields: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNotFound
	}
	return values, nil
}

func (c *Client) HDel(ctx context.Context, key string, fields ...string) error {
	ctx, span := c.tracer.Start(ctx, "cache.HDel")
	defer span.End()

	return c.writer(ctx).HDel(ctx, key, fields...).Err()
}

func (c *Client) Exists(ctx context.Context, key string) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.Exists")
	defer span.End()

	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cache key: %w", err)
	}
	return n > 0, nil
}

// skipWrite implements the update only mode. The existence check goes to the
// server directly, even mid session.
func (c *Client) skipWrite(ctx context.Context, key string) (bool, error) {
	if !c.updateOnly {
		return false, nil
	}

	ok, err := c.Exists(ctx, key)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

func NewClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to the cache: %w", err)
	}

	c := new(Client)
	c.rdb = rdb
	c.ttl = cfg.TTL
	c.updateOnly = cfg.UpdateOnly

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c, nil
}
