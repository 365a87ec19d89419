// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
)

// transitions is the membership state machine. A transition to the current
// status is a no-op and always allowed.
var transitions = map[types.MembershipStatus][]types.MembershipStatus{
	types.StatusInvited: {types.StatusLinked, types.StatusLeft, types.StatusRemoved},
	types.StatusLinked:  {types.StatusLeft, types.StatusRemoved},
	types.StatusRemoved: {types.StatusInvited},
	types.StatusLeft:    {types.StatusInvited},
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store         StorageInterface
	cache         AccountCacheInterface
	tx            CoordinatorInterface
	kratos        KratosClientInterface
	emails        EmailInterface
	subscriptions SubscriptionCreatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateAccount creates an account with its owner linked, the owner
// permission set granted and the initial subscription provisioned. A user can
// create at most one account.
func (s *Service) CreateAccount(ctx context.Context, name, ownerID string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.CreateAccount")
	defer span.End()

	var created *types.Account
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.store.AccountExistsByCreator(ctx, ownerID)
		if err != nil {
			return err
		}
		if exists {
			return ErrUserHasAccount
		}

		created, err = s.store.CreateAccount(ctx, &types.Account{Name: name, OwnerID: ownerID, CreatedBy: ownerID})
		if err != nil {
			return err
		}

		if err := s.store.UpsertMembership(ctx, created.ID, ownerID, nil, types.StatusLinked); err != nil {
			return err
		}

		if err := s.store.GrantPermissions(ctx, created.ID, ownerID, ExpandPermissions(types.PermOwner)); err != nil {
			return err
		}

		if s.subscriptions != nil {
			if err := s.subscriptions.CreateInitial(ctx, created.ID); err != nil {
				return err
			}
		}

		if err := s.syncUserAccounts(ctx, ownerID); err != nil {
			return err
		}
		return s.syncUserPermissions(ctx, created.ID, ownerID)
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) GetAccount(ctx context.Context, accountID string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetAccount")
	defer span.End()

	return s.store.GetAccountByID(ctx, accountID)
}

func (s *Service) RenameAccount(ctx context.Context, accountID, name string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.RenameAccount")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		return s.store.UpdateAccountName(ctx, accountID, name)
	})
}

// DeleteAccount removes the account with everything hanging off it and evicts
// every member's cached view.
func (s *Service) DeleteAccount(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.DeleteAccount")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		members, err := s.store.ListMembersByAccountID(ctx, accountID)
		if err != nil {
			return err
		}

		if err := s.store.DeleteAccount(ctx, accountID); err != nil {
			return err
		}

		for _, m := range members {
			if err := s.cache.DeleteUserData(ctx, m.UserID); err != nil {
				return err
			}
		}
		return s.cache.DeleteSubscription(ctx, accountID)
	})
}

// ChangeOwner transfers ownership. The new owner must be linked to the
// account, the old owner keeps their other permissions.
func (s *Service) ChangeOwner(ctx context.Context, accountID, newOwnerID string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.ChangeOwner")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		acc, err := s.store.GetAccountByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc.OwnerID == newOwnerID {
			return nil
		}

		m, err := s.store.GetMembership(ctx, accountID, newOwnerID)
		if err != nil {
			return err
		}
		if m.Status != types.StatusLinked {
			return fmt.Errorf("%w: new owner has status %s", ErrInvalidTransition, m.Status)
		}

		if err := s.store.UpdateAccountOwner(ctx, accountID, newOwnerID); err != nil {
			return err
		}
		if err := s.store.GrantPermissions(ctx, accountID, newOwnerID, ExpandPermissions(types.PermOwner)); err != nil {
			return err
		}
		if err := s.store.RevokePermissions(ctx, accountID, acc.OwnerID, []types.Permission{types.PermOwner}); err != nil {
			return err
		}

		if err := s.syncUserPermissions(ctx, accountID, newOwnerID); err != nil {
			return err
		}
		return s.syncUserPermissions(ctx, accountID, acc.OwnerID)
	})
}

// AddUser attaches a user to the account with the given status. Adding an
// already attached user is a no-op.
func (s *Service) AddUser(ctx context.Context, accountID, userID string, inviterID *string, status types.MembershipStatus) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.AddUser")
	defer span.End()

	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.UpsertMembership(ctx, accountID, userID, inviterID, status); err != nil {
			return err
		}
		return s.syncUserAccounts(ctx, userID)
	})
}

// RemoveUser detaches a user from the account. Self removal records the LEFT
// status and notifies the owner, removal by someone else records REMOVED. The
// owner cannot be removed.
func (s *Service) RemoveUser(ctx context.Context, accountID, userID, actorID, message string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.RemoveUser")
	defer span.End()

	target := types.StatusRemoved
	if actorID == userID {
		target = types.StatusLeft
	}

	var acc *types.Account
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		acc, err = s.store.GetAccountByID(ctx, accountID)
		if err != nil {
			return err
		}
		if acc.OwnerID == userID {
			return ErrOwnerCannotBeRemoved
		}

		if err := s.setStatus(ctx, accountID, userID, target); err != nil {
			return err
		}

		if err := s.store.DeleteInvitationLinks(ctx, accountID, userID); err != nil {
			return err
		}
		if err := s.store.RevokeAllPermissions(ctx, accountID, userID); err != nil {
			return err
		}
		if err := s.store.RemoveProjectMembers(ctx, accountID, userID); err != nil {
			return err
		}

		if err := s.syncUserAccounts(ctx, userID); err != nil {
			return err
		}
		if err := s.syncUserProjects(ctx, userID); err != nil {
			return err
		}
		return s.cache.SyncPermissions(ctx, userID, accountID, []string{})
	})
	if err != nil {
		return err
	}

	// The farewell email goes out only once the removal is committed.
	if target == types.StatusLeft && message != "" {
		s.notifyOwnerOfLeaving(ctx, acc, userID, message)
	}

	return nil
}

func (s *Service) SetUserStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.SetUserStatus")
	defer span.End()

	if !status.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.setStatus(ctx, accountID, userID, status); err != nil {
			return err
		}
		return s.syncUserAccounts(ctx, userID)
	})
}

func (s *Service) GetUserStatus(ctx context.Context, accountID, userID string) (types.MembershipStatus, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetUserStatus")
	defer span.End()

	m, err := s.store.GetMembership(ctx, accountID, userID)
	if err != nil {
		return "", err
	}
	return m.Status, nil
}

func (s *Service) ListMembers(ctx context.Context, accountID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.ListMembers")
	defer span.End()

	return s.store.ListMembersByAccountID(ctx, accountID)
}

// GrantPermission grants a permission together with everything it implies.
func (s *Service) GrantPermission(ctx context.Context, accountID, userID string, permission types.Permission) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.GrantPermission")
	defer span.End()

	if !permission.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPermission, permission)
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.GrantPermissions(ctx, accountID, userID, ExpandPermissions(permission)); err != nil {
			return err
		}
		return s.syncUserPermissions(ctx, accountID, userID)
	})
}

// RevokePermission removes a single permission. Implied permissions granted
// alongside it are kept.
func (s *Service) RevokePermission(ctx context.Context, accountID, userID string, permission types.Permission) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.RevokePermission")
	defer span.End()

	if !permission.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidPermission, permission)
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.RevokePermissions(ctx, accountID, userID, []types.Permission{permission}); err != nil {
			return err
		}
		return s.syncUserPermissions(ctx, accountID, userID)
	})
}

func (s *Service) RevokeAllPermissions(ctx context.Context, accountID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.RevokeAllPermissions")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.RevokeAllPermissions(ctx, accountID, userID); err != nil {
			return err
		}
		return s.cache.SyncPermissions(ctx, userID, accountID, []string{})
	})
}

// GetPermissions returns the user's permissions on the account, read through
// the cache.
func (s *Service) GetPermissions(ctx context.Context, accountID, userID string) ([]types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetPermissions")
	defer span.End()

	cached, found, err := s.cache.LoadPermissions(ctx, userID, accountID)
	if err != nil {
		s.logger.Errorf("failed to load permissions from cache: %v", err)
	} else if found {
		permissions := make([]types.Permission, len(cached))
		for i, p := range cached {
			permissions[i] = types.Permission(p)
		}
		return permissions, nil
	}

	permissions, err := s.store.ListPermissions(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SyncPermissions(ctx, userID, accountID, permissionStrings(permissions)); err != nil {
		s.logger.Errorf("failed to sync permissions to cache: %v", err)
	}

	return permissions, nil
}

func (s *Service) HasPermission(ctx context.Context, accountID, userID string, permission types.Permission) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.HasPermission")
	defer span.End()

	permissions, err := s.GetPermissions(ctx, accountID, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(permissions, permission), nil
}

// HasAccess reports whether the user is linked to the account.
func (s *Service) HasAccess(ctx context.Context, accountID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.HasAccess")
	defer span.End()

	accountIDs, err := s.GetUserAccountIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	return slices.Contains(accountIDs, accountID), nil
}

// GetUserAccountIDs returns the ids of the accounts the user is linked to,
// read through the cache.
func (s *Service) GetUserAccountIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetUserAccountIDs")
	defer span.End()

	cached, found, err := s.cache.LoadAccounts(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to load accounts from cache: %v", err)
	} else if found {
		return cached, nil
	}

	accountIDs, err := s.store.ListLinkedAccountIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SyncAccounts(ctx, userID, accountIDs); err != nil {
		s.logger.Errorf("failed to sync accounts to cache: %v", err)
	}

	return accountIDs, nil
}

// GetUserProjectIDs returns the ids of the projects the user belongs to,
// read through the cache.
func (s *Service) GetUserProjectIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetUserProjectIDs")
	defer span.End()

	cached, found, err := s.cache.LoadProjects(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to load projects from cache: %v", err)
	} else if found {
		return cached, nil
	}

	projectIDs, err := s.store.ListProjectIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SyncProjects(ctx, userID, projectIDs); err != nil {
		s.logger.Errorf("failed to sync projects to cache: %v", err)
	}

	return projectIDs, nil
}

// SyncUserProjects rewrites the user's cached project list from the database
// state visible to the current transaction. Flows outside this package that
// change project membership call it before committing.
func (s *Service) SyncUserProjects(ctx context.Context, userID string) error {
	ctx, span := s.tracer.Start(ctx, "account.Service.SyncUserProjects")
	defer span.End()

	return s.syncUserProjects(ctx, userID)
}

func (s *Service) UserHasAccount(ctx context.Context, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.UserHasAccount")
	defer span.End()

	return s.store.AccountExistsByCreator(ctx, userID)
}

// IsUserLinked reports whether the user's membership is LINKED. A user
// without a membership holds no status at all.
func (s *Service) IsUserLinked(ctx context.Context, accountID, userID string) (bool, error) {
	return s.hasStatus(ctx, "account.Service.IsUserLinked", accountID, userID, types.StatusLinked)
}

func (s *Service) IsUserInvited(ctx context.Context, accountID, userID string) (bool, error) {
	return s.hasStatus(ctx, "account.Service.IsUserInvited", accountID, userID, types.StatusInvited)
}

func (s *Service) IsUserRemoved(ctx context.Context, accountID, userID string) (bool, error) {
	return s.hasStatus(ctx, "account.Service.IsUserRemoved", accountID, userID, types.StatusRemoved)
}

func (s *Service) IsUserLeft(ctx context.Context, accountID, userID string) (bool, error) {
	return s.hasStatus(ctx, "account.Service.IsUserLeft", accountID, userID, types.StatusLeft)
}

func (s *Service) hasStatus(ctx context.Context, spanName, accountID, userID string, status types.MembershipStatus) (bool, error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer span.End()

	m, err := s.store.GetMembership(ctx, accountID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return m.Status == status, nil
}

// GetUserAccounts returns the accounts the user is linked to, with the full
// account records rather than just the ids.
func (s *Service) GetUserAccounts(ctx context.Context, userID string) ([]*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetUserAccounts")
	defer span.End()

	return s.store.ListLinkedAccounts(ctx, userID)
}

// GetUserData returns the identity data behind a user id.
func (s *Service) GetUserData(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetUserData")
	defer span.End()

	return s.kratos.GetUser(ctx, userID)
}

// GetAccountOwner returns the identity data of the account owner.
func (s *Service) GetAccountOwner(ctx context.Context, accountID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetAccountOwner")
	defer span.End()

	acc, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return s.kratos.GetUser(ctx, acc.OwnerID)
}

// GetUserInviterData returns the identity data of whoever invited the user to
// the account, or nil when the user joined without an inviter.
func (s *Service) GetUserInviterData(ctx context.Context, accountID, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "account.Service.GetUserInviterData")
	defer span.End()

	m, err := s.store.GetMembership(ctx, accountID, userID)
	if err != nil {
		return nil, err
	}
	if m.InviterID == nil {
		return nil, nil
	}
	return s.kratos.GetUser(ctx, *m.InviterID)
}

// setStatus applies the membership state machine. Must run inside a
// transaction.
func (s *Service) setStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error {
	m, err := s.store.GetMembership(ctx, accountID, userID)
	if err != nil {
		return err
	}
	if m.Status == status {
		return nil
	}
	if !slices.Contains(transitions[m.Status], status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.Status, status)
	}

	return s.store.SetMembershipStatus(ctx, accountID, userID, status)
}

// syncUserAccounts rewrites the user's cached account list from the database
// state visible to the current transaction.
func (s *Service) syncUserAccounts(ctx context.Context, userID string) error {
	accountIDs, err := s.store.ListLinkedAccountIDs(ctx, userID)
	if err != nil {
		return err
	}
	return s.cache.SyncAccounts(ctx, userID, accountIDs)
}

// syncUserProjects rewrites the user's cached project list the same way.
func (s *Service) syncUserProjects(ctx context.Context, userID string) error {
	projectIDs, err := s.store.ListProjectIDsByUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.cache.SyncProjects(ctx, userID, projectIDs)
}

func (s *Service) syncUserPermissions(ctx context.Context, accountID, userID string) error {
	permissions, err := s.store.ListPermissions(ctx, accountID, userID)
	if err != nil {
		return err
	}
	return s.cache.SyncPermissions(ctx, userID, accountID, permissionStrings(permissions))
}

func (s *Service) notifyOwnerOfLeaving(ctx context.Context, acc *types.Account, userID, message string) {
	owner, err := s.kratos.GetUser(ctx, acc.OwnerID)
	if err != nil {
		s.logger.Errorf("failed to resolve account owner for leaving email: %v", err)
		return
	}
	user, err := s.kratos.GetUser(ctx, userID)
	if err != nil {
		s.logger.Errorf("failed to resolve leaving user for email: %v", err)
		return
	}

	data := mail.LeavingEmailData{
		AccountName: acc.Name,
		UserName:    fmt.Sprintf("%s %s", user.FirstName, user.LastName),
		Message:     message,
	}
	if err := s.emails.SendLeaving(ctx, owner.Email, data); err != nil {
		s.logger.Errorf("failed to send leaving email: %v", err)
	}
}

func permissionStrings(permissions []types.Permission) []string {
	out := make([]string, len(permissions))
	for i, p := range permissions {
		out[i] = string(p)
	}
	return out
}

func NewService(
	store StorageInterface,
	cache AccountCacheInterface,
	tx CoordinatorInterface,
	kratos KratosClientInterface,
	emails EmailInterface,
	subscriptions SubscriptionCreatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.store = store
	s.cache = cache
	s.tx = tx
	s.kratos = kratos
	s.emails = emails
	s.subscriptions = subscriptions

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
