// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/types"
)

type ServiceInterface interface {
	CreateAccount(ctx context.Context, name, ownerID string) (*types.Account, error)
	GetAccount(ctx context.Context, accountID string) (*types.Account, error)
	RenameAccount(ctx context.Context, accountID, name string) error
	DeleteAccount(ctx context.Context, accountID string) error
	ChangeOwner(ctx context.Context, accountID, newOwnerID string) error

	AddUser(ctx context.Context, accountID, userID string, inviterID *string, status types.MembershipStatus) error
	RemoveUser(ctx context.Context, accountID, userID, actorID, message string) error
	SetUserStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error
	GetUserStatus(ctx context.Context, accountID, userID string) (types.MembershipStatus, error)
	ListMembers(ctx context.Context, accountID string) ([]*types.Membership, error)

	GrantPermission(ctx context.Context, accountID, userID string, permission types.Permission) error
	RevokePermission(ctx context.Context, accountID, userID string, permission types.Permission) error
	RevokeAllPermissions(ctx context.Context, accountID, userID string) error
	GetPermissions(ctx context.Context, accountID, userID string) ([]types.Permission, error)
	HasPermission(ctx context.Context, accountID, userID string, permission types.Permission) (bool, error)
	HasAccess(ctx context.Context, accountID, userID string) (bool, error)

	GetUserAccountIDs(ctx context.Context, userID string) ([]string, error)
	GetUserProjectIDs(ctx context.Context, userID string) ([]string, error)
	SyncUserProjects(ctx context.Context, userID string) error
	UserHasAccount(ctx context.Context, userID string) (bool, error)

	IsUserLinked(ctx context.Context, accountID, userID string) (bool, error)
	IsUserInvited(ctx context.Context, accountID, userID string) (bool, error)
	IsUserRemoved(ctx context.Context, accountID, userID string) (bool, error)
	IsUserLeft(ctx context.Context, accountID, userID string) (bool, error)

	GetUserAccounts(ctx context.Context, userID string) ([]*types.Account, error)
	GetUserData(ctx context.Context, userID string) (*types.User, error)
	GetAccountOwner(ctx context.Context, accountID string) (*types.User, error)
	GetUserInviterData(ctx context.Context, accountID, userID string) (*types.User, error)
}

type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	UpdateAccountName(ctx context.Context, id, name string) error
	UpdateAccountOwner(ctx context.Context, id, ownerID string) error
	DeleteAccount(ctx context.Context, id string) error
	AccountExistsByCreator(ctx context.Context, userID string) (bool, error)

	UpsertMembership(ctx context.Context, accountID, userID string, inviterID *string, status types.MembershipStatus) error
	GetMembership(ctx context.Context, accountID, userID string) (*types.Membership, error)
	SetMembershipStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error
	ListLinkedAccountIDs(ctx context.Context, userID string) ([]string, error)
	ListLinkedAccounts(ctx context.Context, userID string) ([]*types.Account, error)
	ListMembersByAccountID(ctx context.Context, accountID string) ([]*types.Membership, error)

	GrantPermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error
	RevokePermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error
	RevokeAllPermissions(ctx context.Context, accountID, userID string) error
	ListPermissions(ctx context.Context, accountID, userID string) ([]types.Permission, error)

	DeleteInvitationLinks(ctx context.Context, accountID, inviteeID string) error
	RemoveProjectMembers(ctx context.Context, accountID, userID string) error
	ListProjectIDsByUser(ctx context.Context, userID string) ([]string, error)
}

type AccountCacheInterface interface {
	SyncAccounts(ctx context.Context, userID string, accountIDs []string) error
	LoadAccounts(ctx context.Context, userID string) ([]string, bool, error)
	SyncPermissions(ctx context.Context, userID, accountID string, permissions []string) error
	LoadPermissions(ctx context.Context, userID, accountID string) ([]string, bool, error)
	SyncProjects(ctx context.Context, userID string, projectIDs []string) error
	LoadProjects(ctx context.Context, userID string) ([]string, bool, error)
	DeleteSubscription(ctx context.Context, accountID string) error
	DeleteUserData(ctx context.Context, userID string) error
}

type CoordinatorInterface interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

type KratosClientInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
}

type EmailInterface interface {
	SendLeaving(ctx context.Context, to string, data mail.LeavingEmailData) error
}

// SubscriptionCreatorInterface provisions the initial subscription when an
// account is created, inside the caller's transaction.
type SubscriptionCreatorInterface interface {
	CreateInitial(ctx context.Context, accountID string) error
}
