// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
)

//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_interfaces.go -source=interfaces.go

// CacheClientInterface is the low level cache surface. Mutating operations
// queue on the session pipeline when one is attached to the context, reads
// always go straight to the server.
type CacheClientInterface interface {
	// Begin attaches a buffered write session to the context. Queued writes
	// are not visible to reads until Commit.
	Begin(ctx context.Context) context.Context
	// Commit flushes the session's queued writes in a single MULTI/EXEC.
	Commit(ctx context.Context) error
	// Abort discards the session's queued writes.
	Abort(ctx context.Context)

	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	HSet(ctx context.Context, key string, values map[string]string) error
	HGet(ctx context.Context, key, field string) (string, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	Close() error
}

// AccountCacheInterface is the denormalized per user account view kept in the
// cache. Load methods report a miss with found == false, a hit with an empty
// value is authoritative.
type AccountCacheInterface interface {
	SyncAccounts(ctx context.Context, userID string, accountIDs []string) error
	LoadAccounts(ctx context.Context, userID string) ([]string, bool, error)
	SyncPermissions(ctx context.Context, userID, accountID string, permissions []string) error
	LoadPermissions(ctx context.Context, userID, accountID string) ([]string, bool, error)
	SyncProjects(ctx context.Context, userID string, projectIDs []string) error
	LoadProjects(ctx context.Context, userID string) ([]string, bool, error)
	SyncSubscription(ctx context.Context, accountID string, sub *CachedSubscription) error
	LoadSubscription(ctx context.Context, accountID string) (*CachedSubscription, bool, error)
	DeleteSubscription(ctx context.Context, accountID string) error
	DeletePermissions(ctx context.Context, userID, accountID string) error
	DeleteUserData(ctx context.Context, userID string) error
}
