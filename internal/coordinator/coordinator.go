// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package coordinator pairs a lazily started database transaction with a
// buffered cache write session. The database commits first, the cache flush
// follows. A failed flush is logged and surfaced through the dependency
// availability metric, the committed database state stays untouched and the
// stale cache entries age out through their TTL.
package coordinator

import (
	"context"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

type txScopeContextKey struct{}

var txScopeKey txScopeContextKey

func inTransaction(ctx context.Context) bool {
	scoped, ok := ctx.Value(txScopeKey).(bool)
	return ok && scoped
}

var _ CoordinatorInterface = (*Coordinator)(nil)

type Coordinator struct {
	db    TxRunnerInterface
	cache CacheSessionInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// WithTransaction runs fn inside a shared transactional scope. The outermost
// call owns commit and rollback, nested calls run in the caller's scope.
func (c *Coordinator) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if inTransaction(ctx) {
		return fn(ctx)
	}

	ctx, span := c.tracer.Start(ctx, "coordinator.WithTransaction")
	defer span.End()

	ctx = context.WithValue(ctx, txScopeKey, true)
	if c.cache != nil {
		ctx = c.cache.Begin(ctx)
	}

	if err := c.db.WithTx(ctx, fn); err != nil {
		if c.cache != nil {
			c.cache.Abort(ctx)
		}
		return err
	}

	if c.cache != nil {
		if err := c.cache.Commit(ctx); err != nil {
			c.logger.Errorf("cache flush failed after database commit: %v", err)
			_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "cache"}, 0)
		}
	}

	return nil
}

// NewCoordinator creates a Coordinator. A nil cache disables the cache side of
// the pairing.
func NewCoordinator(db TxRunnerInterface, cache CacheSessionInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Coordinator {
	c := new(Coordinator)

	c.db = db
	c.cache = cache

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
