// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package gc implements the externally triggered garbage collection sweeps.
// Each sweep is idempotent and independent, a failing sweep is logged and the
// others still run.
package gc

import (
	"context"
	"errors"
	"time"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

var _ CollectorInterface = (*Collector)(nil)

type Collector struct {
	store    StorageInterface
	accounts AccountServiceInterface
	clock    ClockInterface

	// expiryGrace delays flagging a subscription expired past its expiry,
	// trashGrace is how long a trashed project survives before deletion.
	expiryGrace time.Duration
	trashGrace  time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run executes all sweeps. The returned error joins the sweep failures, the
// result counts what the successful sweeps processed.
func (c *Collector) Run(ctx context.Context) (*Result, error) {
	ctx, span := c.tracer.Start(ctx, "gc.Collector.Run")
	defer span.End()

	now := c.clock.Now()
	result := &Result{}
	var errs []error

	links, err := c.store.DeleteExpiredInvitationLinks(ctx, now)
	if err != nil {
		c.logger.Errorf("failed to delete expired invitation links: %v", err)
		errs = append(errs, err)
	} else {
		result.ExpiredInvitationLinks = links
	}

	subs, err := c.store.MarkSubscriptionsExpired(ctx, now.Add(-c.expiryGrace))
	if err != nil {
		c.logger.Errorf("failed to mark subscriptions expired: %v", err)
		errs = append(errs, err)
	} else {
		result.ExpiredSubscriptions = subs
	}

	deleted, err := c.deleteDueAccounts(ctx, now)
	if err != nil {
		errs = append(errs, err)
	}
	result.DeletedAccounts = deleted

	projects, err := c.store.DeleteTrashedProjects(ctx, now.Add(-c.trashGrace))
	if err != nil {
		c.logger.Errorf("failed to delete trashed projects: %v", err)
		errs = append(errs, err)
	} else {
		result.DeletedProjects = projects
	}

	return result, errors.Join(errs...)
}

// deleteDueAccounts removes accounts whose deletion request came due. Each
// account is deleted on its own, one failure does not stop the rest.
func (c *Collector) deleteDueAccounts(ctx context.Context, now time.Time) (int64, error) {
	accountIDs, err := c.store.ListDueAccountDeletions(ctx, now)
	if err != nil {
		c.logger.Errorf("failed to list due account deletions: %v", err)
		return 0, err
	}

	var deleted int64
	var errs []error
	for _, id := range accountIDs {
		if err := c.accounts.DeleteAccount(ctx, id); err != nil {
			c.logger.Errorf("failed to delete account %s: %v", id, err)
			errs = append(errs, err)
			continue
		}
		deleted++
	}

	return deleted, errors.Join(errs...)
}

func NewCollector(
	store StorageInterface,
	accounts AccountServiceInterface,
	clock ClockInterface,
	expiryGrace time.Duration,
	trashGrace time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Collector {
	c := new(Collector)

	c.store = store
	c.accounts = accounts
	c.clock = clock

	c.expiryGrace = expiryGrace
	c.trashGrace = trashGrace

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
