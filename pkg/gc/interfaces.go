// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gc

import (
	"context"
	"time"
)

// Result counts what a collection run removed or flagged.
type Result struct {
	ExpiredInvitationLinks int64 `json:"expired_invitation_links"`
	ExpiredSubscriptions   int64 `json:"expired_subscriptions"`
	DeletedAccounts        int64 `json:"deleted_accounts"`
	DeletedProjects        int64 `json:"deleted_projects"`
}

type CollectorInterface interface {
	Run(ctx context.Context) (*Result, error)
}

type StorageInterface interface {
	DeleteExpiredInvitationLinks(ctx context.Context, cutoff time.Time) (int64, error)
	MarkSubscriptionsExpired(ctx context.Context, cutoff time.Time) (int64, error)
	ListDueAccountDeletions(ctx context.Context, cutoff time.Time) ([]string, error)
	DeleteTrashedProjects(ctx context.Context, cutoff time.Time) (int64, error)
}

// AccountServiceInterface deletes accounts through the account service so the
// cached views of every member are evicted along with the rows.
type AccountServiceInterface interface {
	DeleteAccount(ctx context.Context, accountID string) error
}

type ClockInterface interface {
	Now() time.Time
}
