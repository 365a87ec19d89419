// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_interfaces.go -source=interfaces.go

type AccountStoreInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	UpdateAccountName(ctx context.Context, id, name string) error
	UpdateAccountOwner(ctx context.Context, id, ownerID string) error
	DeleteAccount(ctx context.Context, id string) error
	AccountExistsByCreator(ctx context.Context, userID string) (bool, error)
}

type MembershipStoreInterface interface {
	UpsertMembership(ctx context.Context, accountID, userID string, inviterID *string, status types.MembershipStatus) error
	GetMembership(ctx context.Context, accountID, userID string) (*types.Membership, error)
	SetMembershipStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error
	ListLinkedAccountIDs(ctx context.Context, userID string) ([]string, error)
	ListLinkedAccounts(ctx context.Context, userID string) ([]*types.Account, error)
	ListMembersByAccountID(ctx context.Context, accountID string) ([]*types.Membership, error)
}

type PermissionStoreInterface interface {
	GrantPermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error
	RevokePermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error
	RevokeAllPermissions(ctx context.Context, accountID, userID string) error
	ListPermissions(ctx context.Context, accountID, userID string) ([]types.Permission, error)
}

type InvitationStoreInterface interface {
	CreateInvitationLink(ctx context.Context, link *types.InvitationLink) (*types.InvitationLink, error)
	GetInvitationLinkByKey(ctx context.Context, accountID, secureKey string) (*types.InvitationLink, error)
	GetInvitationLinkByInvitee(ctx context.Context, accountID, inviteeID string) (*types.InvitationLink, error)
	DeleteInvitationLink(ctx context.Context, id string) error
	DeleteInvitationLinks(ctx context.Context, accountID, inviteeID string) error
	DeleteExpiredInvitationLinks(ctx context.Context, cutoff time.Time) (int64, error)
}

type SubscriptionStoreInterface interface {
	CreateSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error)
	GetSubscriptionByAccountID(ctx context.Context, accountID string) (*types.Subscription, error)
	UpdateSubscription(ctx context.Context, sub *types.Subscription, paths []string) error
	CreateSubscriptionEvent(ctx context.Context, event *types.SubscriptionEvent) error
	MarkSubscriptionsExpired(ctx context.Context, cutoff time.Time) (int64, error)
	CreateAccountDeletionRequest(ctx context.Context, req *types.AccountDeletionRequest) error
	DeleteAccountDeletionRequests(ctx context.Context, accountID string) error
	ListDueAccountDeletions(ctx context.Context, cutoff time.Time) ([]string, error)
}

type ProjectStoreInterface interface {
	AddProjectMembers(ctx context.Context, projectIDs []string, userID string) error
	RemoveProjectMembers(ctx context.Context, accountID, userID string) error
	ListProjectIDsByUserID(ctx context.Context, accountID, userID string) ([]string, error)
	ListProjectIDsByUser(ctx context.Context, userID string) ([]string, error)
	UserInProjects(ctx context.Context, projectIDs []string, userID string) (bool, error)
	GetProjectsByIDs(ctx context.Context, projectIDs []string) ([]*types.Project, error)
	DeleteTrashedProjects(ctx context.Context, cutoff time.Time) (int64, error)
}

// StorageInterface is the full persistence surface backed by PostgreSQL.
type StorageInterface interface {
	AccountStoreInterface
	MembershipStoreInterface
	PermissionStoreInterface
	InvitationStoreInterface
	SubscriptionStoreInterface
	ProjectStoreInterface
}
