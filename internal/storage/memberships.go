// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
	"github.com/jackc/pgx/v5"
)

// UpsertMembership inserts a membership row, leaving an existing row for the
// same (account, user) pair untouched.
func (s *Storage) UpsertMembership(ctx context.Context, accountID, userID string, inviterID *string, status types.MembershipStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMembership")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("memberships").
		Columns("account_id", "user_id", "inviter_id", "status").
		Values(accountID, userID, inviterID, status).
		Suffix("ON CONFLICT (account_id, user_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert membership: %w", err)
	}

	return nil
}

func (s *Storage) GetMembership(ctx context.Context, accountID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("account_id", "user_id", "inviter_id", "status", "created_on").
		From("memberships").
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.AccountID, &m.UserID, &m.InviterID, &m.Status, &m.CreatedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) SetMembershipStatus(ctx context.Context, accountID, userID string, status types.MembershipStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetMembershipStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", status).
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set membership status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// ListLinkedAccountIDs returns the ids of the accounts the user is LINKED to.
func (s *Storage) ListLinkedAccountIDs(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLinkedAccountIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("account_id").
		From("memberships").
		Where(sq.Eq{"user_id": userID, "status": types.StatusLinked}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list account ids: %w", err)
	}
	defer rows.Close()

	accountIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan account id: %w", err)
		}
		accountIDs = append(accountIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accountIDs, nil
}

// ListLinkedAccounts returns the accounts the user is LINKED to.
func (s *Storage) ListLinkedAccounts(ctx context.Context, userID string) ([]*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLinkedAccounts")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("a.id", "a.name", "a.owner_id", "a.created_by", "a.created_on").
		From("accounts a").
		Join("memberships m ON a.id = m.account_id").
		Where(sq.Eq{"m.user_id": userID, "m.status": types.StatusLinked}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*types.Account
	for rows.Next() {
		var a types.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.OwnerID, &a.CreatedBy, &a.CreatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return accounts, nil
}

func (s *Storage) ListMembersByAccountID(ctx context.Context, accountID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByAccountID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("account_id", "user_id", "inviter_id", "status", "created_on").
		From("memberships").
		Where(sq.Eq{"account_id": accountID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.AccountID, &m.UserID, &m.InviterID, &m.Status, &m.CreatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
