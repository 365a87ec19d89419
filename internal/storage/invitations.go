// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) CreateInvitationLink(ctx context.Context, link *types.InvitationLink) (*types.InvitationLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitationLink")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation link ID: %w", err)
	}

	var newLink types.InvitationLink
	err = s.db.Statement(ctx).
		Insert("invitation_links").
		Columns("id", "account_id", "inviter_id", "invitee_id", "email", "secure_key", "expires_on").
		Values(id.String(), link.AccountID, link.InviterID, link.InviteeID, link.Email, link.SecureKey, link.ExpiresOn).
		Suffix("RETURNING id, account_id, inviter_id, invitee_id, email, secure_key, expires_on").
		QueryRowContext(ctx).
		Scan(&newLink.ID, &newLink.AccountID, &newLink.InviterID, &newLink.InviteeID, &newLink.Email, &newLink.SecureKey, &newLink.ExpiresOn)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invitation link: %w", err)
	}

	return &newLink, nil
}

// GetInvitationLinkByKey looks up a link by its secure key, scoped to the
// account it was issued for. Expiry is not checked here, callers decide how
// stale links are handled.
func (s *Storage) GetInvitationLinkByKey(ctx context.Context, accountID, secureKey string) (*types.InvitationLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationLinkByKey")
	defer span.End()

	var link types.InvitationLink
	err := s.db.Statement(ctx).
		Select("id", "account_id", "inviter_id", "invitee_id", "email", "secure_key", "expires_on").
		From("invitation_links").
		Where(sq.Eq{"account_id": accountID, "secure_key": secureKey}).
		QueryRowContext(ctx).
		Scan(&link.ID, &link.AccountID, &link.InviterID, &link.InviteeID, &link.Email, &link.SecureKey, &link.ExpiresOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation link: %w", err)
	}

	return &link, nil
}

func (s *Storage) GetInvitationLinkByInvitee(ctx context.Context, accountID, inviteeID string) (*types.InvitationLink, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitationLinkByInvitee")
	defer span.End()

	var link types.InvitationLink
	err := s.db.Statement(ctx).
		Select("id", "account_id", "inviter_id", "invitee_id", "email", "secure_key", "expires_on").
		From("invitation_links").
		Where(sq.Eq{"account_id": accountID, "invitee_id": inviteeID}).
		QueryRowContext(ctx).
		Scan(&link.ID, &link.AccountID, &link.InviterID, &link.InviteeID, &link.Email, &link.SecureKey, &link.ExpiresOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation link: %w", err)
	}

	return &link, nil
}

func (s *Storage) DeleteInvitationLink(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitationLink")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invitation_links").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation link: %w", err)
	}
	return nil
}

// DeleteInvitationLinks removes all links issued to the invitee for the account.
func (s *Storage) DeleteInvitationLinks(ctx context.Context, accountID, inviteeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitationLinks")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("invitation_links").
		Where(sq.Eq{"account_id": accountID, "invitee_id": inviteeID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invitation links: %w", err)
	}
	return nil
}

// DeleteExpiredInvitationLinks removes links whose expiry is at or before the
// cutoff and returns the number of rows deleted.
func (s *Storage) DeleteExpiredInvitationLinks(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteExpiredInvitationLinks")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invitation_links").
		Where(sq.LtOrEq{"expires_on": cutoff}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete expired invitation links: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
