// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
)

var _ AccountCacheInterface = (*NoopAccountCache)(nil)

// NoopAccountCache is used when caching is disabled. Every load is a miss and
// every sync is dropped.
type NoopAccountCache struct{}

func (NoopAccountCache) SyncAccounts(ctx context.Context, userID string, accountIDs []string) error {
	return nil
}

func (NoopAccountCache) LoadAccounts(ctx context.Context, userID string) ([]string, bool, error) {
	return nil, false, nil
}

func (NoopAccountCache) SyncPermissions(ctx context.Context, userID, accountID string, permissions []string) error {
	return nil
}

func (NoopAccountCache) LoadPermissions(ctx context.Context, userID, accountID string) ([]string, bool, error) {
	return nil, false, nil
}

func (NoopAccountCache) SyncProjects(ctx context.Context, userID string, projectIDs []string) error {
	return nil
}

func (NoopAccountCache) LoadProjects(ctx context.Context, userID string) ([]string, bool, error) {
	return nil, false, nil
}

func (NoopAccountCache) SyncSubscription(ctx context.Context, accountID string, sub *CachedSubscription) error {
	return nil
}

func (NoopAccountCache) LoadSubscription(ctx context.Context, accountID string) (*CachedSubscription, bool, error) {
	return nil, false, nil
}

func (NoopAccountCache) DeleteSubscription(ctx context.Context, accountID string) error {
	return nil
}

func (NoopAccountCache) DeletePermissions(ctx context.Context, userID, accountID string) error {
	return nil
}

func (NoopAccountCache) DeleteUserData(ctx context.Context, userID string) error {
	return nil
}

func NewNoopAccountCache() NoopAccountCache {
	return NoopAccountCache{}
}

// NoopSession stands in for the client session when caching is disabled so
// the transaction coordinator has nothing to commit.
type NoopSession struct{}

func (NoopSession) Begin(ctx context.Context) context.Context {
	return ctx
}

func (NoopSession) Commit(ctx context.Context) error {
	return nil
}

func (NoopSession) Abort(ctx context.Context) {}

func NewNoopSession() NoopSession {
	return NoopSession{}
}
