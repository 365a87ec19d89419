// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import "errors"

var (
	// ErrLinkExpired is returned when a link exists but its expiry has passed.
	// Distinct from storage.ErrNotFound so callers can tell a stale link from
	// a bogus one.
	ErrLinkExpired = errors.New("invitation link expired")

	// ErrLinkMismatch is returned when a link is claimed by a user it was not
	// issued to.
	ErrLinkMismatch = errors.New("invitation link was issued to another user")

	// ErrInvalidEmail is returned when an invitee address fails validation.
	// The whole batch is rejected before any mutation.
	ErrInvalidEmail = errors.New("invalid email address")
)
