// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"context"
	"time"

	"github.com/canonical/account-service/internal/cache"
	"github.com/canonical/account-service/internal/types"
)

// Status is the derived view of a subscription's lifecycle flags.
type Status struct {
	Plan          string `json:"plan"`
	Active        bool   `json:"active"`
	Expired       bool   `json:"expired"`
	Paused        bool   `json:"paused"`
	Canceled      bool   `json:"canceled"`
	InGracePeriod bool   `json:"in_grace_period"`
}

type ServiceInterface interface {
	CreateInitial(ctx context.Context, accountID string) error
	Get(ctx context.Context, accountID string) (*types.Subscription, error)
	GetStatus(ctx context.Context, accountID string) (*Status, error)

	Pause(ctx context.Context, accountID string) error
	Cancel(ctx context.Context, accountID, requestedBy string) error
	Restore(ctx context.Context, accountID string) error
	Extend(ctx context.Context, accountID string, until time.Time, paymentID *string) error
	ChangePlan(ctx context.Context, accountID, plan string, paymentID *string) error

	IsActive(ctx context.Context, accountID string) (bool, error)
}

type StorageInterface interface {
	CreateSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error)
	GetSubscriptionByAccountID(ctx context.Context, accountID string) (*types.Subscription, error)
	UpdateSubscription(ctx context.Context, sub *types.Subscription, paths []string) error
	CreateSubscriptionEvent(ctx context.Context, event *types.SubscriptionEvent) error

	CreateAccountDeletionRequest(ctx context.Context, req *types.AccountDeletionRequest) error
	DeleteAccountDeletionRequests(ctx context.Context, accountID string) error
}

type SubscriptionCacheInterface interface {
	SyncSubscription(ctx context.Context, accountID string, sub *cache.CachedSubscription) error
	LoadSubscription(ctx context.Context, accountID string) (*cache.CachedSubscription, bool, error)
	DeleteSubscription(ctx context.Context, accountID string) error
}

type CoordinatorInterface interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

type ClockInterface interface {
	Now() time.Time
}
