// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
)

// Key and field layout of the per user account view:
//
//	usr_acc<userID>    hash
//	  a                JSON array of account ids the user is linked to
//	  a<accountID>     JSON array of the user's permissions on the account
//	  p                JSON array of project ids the user belongs to
//	subscr<accountID>  JSON of the account's subscription
const (
	userKeyPrefix         = "usr_acc"
	subscriptionKeyPrefix = "subscr"

	accountsField    = "a"
	permissionsField = "a"
	projectsField    = "p"
)

// CachedSubscription is the subscription projection kept in the cache.
type CachedSubscription struct {
	ID        string    `json:"id"`
	Plan      string    `json:"plan"`
	ExpiresOn time.Time `json:"expires_on"`
	Expired   bool      `json:"expired"`
	Paused    bool      `json:"paused"`
	Canceled  bool      `json:"canceled"`
}

var _ AccountCacheInterface = (*AccountCache)(nil)

type AccountCache struct {
	client CacheClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func userKey(userID string) string {
	return userKeyPrefix + userID
}

func subscriptionKey(accountID string) string {
	return subscriptionKeyPrefix + accountID
}

func (c *AccountCache) SyncAccounts(ctx context.Context, userID string, accountIDs []string) error {
	ctx, span := c.tracer.Start(ctx, "cache.SyncAccounts")
	defer span.End()

	return c.syncField(ctx, userKey(userID), accountsField, accountIDs)
}

func (c *AccountCache) LoadAccounts(ctx context.Context, userID string) ([]string, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.LoadAccounts")
	defer span.End()

	return c.loadField(ctx, userKey(userID), accountsField)
}

func (c *AccountCache) SyncPermissions(ctx context.Context, userID, accountID string, permissions []string) error {
	ctx, span := c.tracer.Start(ctx, "cache.SyncPermissions")
	defer span.End()

	return c.syncField(ctx, userKey(userID), permissionsField+accountID, permissions)
}

func (c *AccountCache) LoadPermissions(ctx context.Context, userID, accountID string) ([]string, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.LoadPermissions")
	defer span.End()

	return c.loadField(ctx, userKey(userID), permissionsField+accountID)
}

func (c *AccountCache) SyncProjects(ctx context.Context, userID string, projectIDs []string) error {
	ctx, span := c.tracer.Start(ctx, "cache.SyncProjects")
	defer span.End()

	return c.syncField(ctx, userKey(userID), projectsField, projectIDs)
}

func (c *AccountCache) LoadProjects(ctx context.Context, userID string) ([]string, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.LoadProjects")
	defer span.End()

	return c.loadField(ctx, userKey(userID), projectsField)
}

func (c *AccountCache) SyncSubscription(ctx context.Context, accountID string, sub *CachedSubscription) error {
	ctx, span := c.tracer.Start(ctx, "cache.SyncSubscription")
	defer span.End()

	raw, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode subscription: %w", err)
	}

	return c.client.Set(ctx, subscriptionKey(accountID), string(raw))
}

func (c *AccountCache) LoadSubscription(ctx context.Context, accountID string) (*CachedSubscription, bool, error) {
	ctx, span := c.tracer.Start(ctx, "cache.LoadSubscription")
	defer span.End()

	raw, err := c.client.Get(ctx, subscriptionKey(accountID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var sub CachedSubscription
	if err := json.Unmarshal([]byte(raw), &sub); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached subscription: %w", err)
	}

	return &sub, true, nil
}

func (c *AccountCache) DeleteSubscription(ctx context.Context, accountID string) error {
	ctx, span := c.tracer.Start(ctx, "cache.DeleteSubscription")
	defer span.End()

	return c.client.Del(ctx, subscriptionKey(accountID))
}

func (c *AccountCache) DeletePermissions(ctx context.Context, userID, accountID string) error {
	ctx, span := c.tracer.Start(ctx, "cache.DeletePermissions")
	defer span.End()

	return c.client.HDel(ctx, userKey(userID), permissionsField+accountID)
}

func (c *AccountCache) DeleteUserData(ctx context.Context, userID string) error {
	ctx, span := c.tracer.Start(ctx, "cache.DeleteUserData")
	defer span.End()

	return c.client.Del(ctx, userKey(userID))
}

// syncField writes the values as a JSON array. An empty slice is written out
// as [], a cached empty list is authoritative.
func (c *AccountCache) syncField(ctx context.Context, key, field string, values []string) error {
	if values == nil {
		values = []string{}
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode cache field: %w", err)
	}

	return c.client.HSet(ctx, key, map[string]string{field: string(raw)})
}

func (c *AccountCache) loadField(ctx context.Context, key, field string) ([]string, bool, error) {
	raw, err := c.client.HGet(ctx, key, field)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache field: %w", err)
	}

	return values, true, nil
}

func NewAccountCache(client CacheClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *AccountCache {
	c := new(AccountCache)

	c.client = client

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
