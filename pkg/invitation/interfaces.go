// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/types"
)

// Signup carries the details a ghost invitee fills in when accepting.
type Signup struct {
	FirstName string
	LastName  string
}

// InvitationData is what the invitation landing page needs to render.
type InvitationData struct {
	AccountID   string    `json:"account_id"`
	AccountName string    `json:"account_name"`
	InviterName string    `json:"inviter_name"`
	Email       string    `json:"email"`
	Projects    []string  `json:"projects"`
	ExpiresOn   time.Time `json:"expires_on"`
}

type ServiceInterface interface {
	Invite(ctx context.Context, accountID, inviterID string, emails, projectIDs []string, permissions []types.Permission) error
	Accept(ctx context.Context, accountID, secureKey string, signup Signup) error
	Claim(ctx context.Context, accountID, secureKey, userID string) error
	Decline(ctx context.Context, accountID, secureKey, message string) error
	GetInvitationData(ctx context.Context, accountID, secureKey string) (*InvitationData, error)
}

type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetMembership(ctx context.Context, accountID, userID string) (*types.Membership, error)

	GrantPermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error

	CreateInvitationLink(ctx context.Context, link *types.InvitationLink) (*types.InvitationLink, error)
	GetInvitationLinkByKey(ctx context.Context, accountID, secureKey string) (*types.InvitationLink, error)
	GetInvitationLinkByInvitee(ctx context.Context, accountID, inviteeID string) (*types.InvitationLink, error)
	DeleteInvitationLink(ctx context.Context, id string) error

	AddProjectMembers(ctx context.Context, projectIDs []string, userID string) error
	UserInProjects(ctx context.Context, projectIDs []string, userID string) (bool, error)
	ListProjectIDsByUserID(ctx context.Context, accountID, userID string) ([]string, error)
	GetProjectsByIDs(ctx context.Context, projectIDs []string) ([]*types.Project, error)
}

// AccountServiceInterface is the slice of the account service the invitation
// flow drives. Going through it keeps the membership state machine and the
// cache resync in one place.
type AccountServiceInterface interface {
	AddUser(ctx context.Context, accountID, userID string, inviterID *string, status types.MembershipStatus) error
	SetUserStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error
	SyncUserProjects(ctx context.Context, userID string) error
}

type CoordinatorInterface interface {
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateGhostIdentity(ctx context.Context, email string) (string, error)
	GetUser(ctx context.Context, id string) (*types.User, error)
	ActivateGhost(ctx context.Context, id, firstName, lastName string) error
}

type EmailInterface interface {
	SendInvitation(ctx context.Context, to string, data mail.InvitationEmailData) error
	SendRefusal(ctx context.Context, to string, data mail.RefusalEmailData) error
}

type ClockInterface interface {
	Now() time.Time
}
