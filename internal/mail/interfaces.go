// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_interfaces.go -source=interfaces.go

// DispatcherInterface delivers a single rendered email.
type DispatcherInterface interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// EmailInterface renders and sends the account lifecycle emails.
type EmailInterface interface {
	SendInvitation(ctx context.Context, to string, data InvitationEmailData) error
	SendRefusal(ctx context.Context, to string, data RefusalEmailData) error
	SendLeaving(ctx context.Context, to string, data LeavingEmailData) error
}
