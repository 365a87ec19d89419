// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// MembershipStatus is the state of a user on an account.
type MembershipStatus string

const (
	StatusInvited MembershipStatus = "INVITED"
	StatusLinked  MembershipStatus = "LINKED"
	StatusRemoved MembershipStatus = "REMOVED"
	StatusLeft    MembershipStatus = "LEFT"
)

// Valid reports whether s is one of the known membership statuses.
func (s MembershipStatus) Valid() bool {
	switch s {
	case StatusInvited, StatusLinked, StatusRemoved, StatusLeft:
		return true
	}
	return false
}

// Permission is an account-level permission grant.
type Permission string

const (
	PermOwner          Permission = "OWNER"
	PermAdmin          Permission = "ADMIN"
	PermAccountManager Permission = "ACCOUNT_MANAGER"
	PermCreateProjects Permission = "CREATE_PROJECTS"
)

func (p Permission) Valid() bool {
	switch p {
	case PermOwner, PermAdmin, PermAccountManager, PermCreateProjects:
		return true
	}
	return false
}

type Account struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	OwnerID   string    `db:"owner_id"`
	CreatedBy string    `db:"created_by"`
	CreatedOn time.Time `db:"created_on"`
}

type Membership struct {
	AccountID string           `db:"account_id"`
	UserID    string           `db:"user_id"`
	InviterID *string          `db:"inviter_id"`
	Status    MembershipStatus `db:"status"`
	CreatedOn time.Time        `db:"created_on"`
}

type InvitationLink struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	InviterID string    `db:"inviter_id"`
	InviteeID string    `db:"invitee_id"`
	Email     string    `db:"email"`
	SecureKey string    `db:"secure_key"`
	ExpiresOn time.Time `db:"expires_on"`
}

type Subscription struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	Plan      string    `db:"plan"`
	ExpiresOn time.Time `db:"expires_on"`
	Expired   bool      `db:"expired"`
	Paused    bool      `db:"paused"`
	Canceled  bool      `db:"canceled"`
}

type SubscriptionEvent struct {
	ID             string    `db:"id"`
	SubscriptionID string    `db:"subscription_id"`
	FromPlan       string    `db:"from_plan"`
	ToPlan         string    `db:"to_plan"`
	Date           time.Time `db:"date"`
	ExpiresOn      time.Time `db:"expires_on"`
	PaymentID      *string   `db:"payment_id"`
}

type AccountDeletionRequest struct {
	AccountID   string    `db:"account_id"`
	RequestedBy string    `db:"requested_by"`
	DueOn       time.Time `db:"due_on"`
}

type Project struct {
	ID        string     `db:"id"`
	AccountID string     `db:"account_id"`
	Name      string     `db:"name"`
	Trashed   bool       `db:"trashed"`
	TrashedOn *time.Time `db:"trashed_on"`
}

// User is the projection of a Kratos identity consumed by this service.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Ghost     bool
}
