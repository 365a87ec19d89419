// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"errors"
)

var (
	// ErrOwnerCannotBeRemoved is returned when a removal targets the account
	// owner. Ownership has to be transferred first.
	ErrOwnerCannotBeRemoved = errors.New("account owner cannot be removed")
	// ErrUserHasAccount is returned when a user who already created an
	// account tries to create another one.
	ErrUserHasAccount = errors.New("user already has an account")
	// ErrInvalidStatus is returned for unknown membership statuses.
	ErrInvalidStatus = errors.New("invalid membership status")
	// ErrInvalidTransition is returned for status changes the membership
	// state machine does not allow.
	ErrInvalidTransition = errors.New("invalid membership status transition")
	// ErrInvalidPermission is returned for unknown permissions.
	ErrInvalidPermission = errors.New("invalid permission")
)
