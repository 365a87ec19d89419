// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package coordinator

import (
	"context"
)

//go:generate mockgen -build_flags=--mod=mod -package coordinator -destination ./mock_interfaces.go -source=interfaces.go

// CoordinatorInterface runs a function with a database transaction and a cache
// write session attached to the context. Nested calls join the outer
// transaction.
type CoordinatorInterface interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

// TxRunnerInterface is the database side of the pairing, satisfied by
// db.DBClient.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// CacheSessionInterface is the cache side of the pairing, satisfied by
// cache.Client.
type CacheSessionInterface interface {
	Begin(ctx context.Context) context.Context
	Commit(ctx context.Context) error
	Abort(ctx context.Context)
}
