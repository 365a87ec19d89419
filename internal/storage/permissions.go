// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
)

// GrantPermissions inserts the given permissions for the user on the account.
// Permissions the user already holds are left untouched.
func (s *Storage) GrantPermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error {
	ctx, span := s.tracer.Start(ctx, "storage.GrantPermissions")
	defer span.End()

	if len(permissions) == 0 {
		return nil
	}

	q := s.db.Statement(ctx).
		Insert("account_permissions").
		Columns("account_id", "user_id", "permission")
	for _, p := range permissions {
		q = q.Values(accountID, userID, p)
	}

	_, err := q.
		Suffix("ON CONFLICT (account_id, user_id, permission) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to grant permissions: %w", err)
	}

	return nil
}

func (s *Storage) RevokePermissions(ctx context.Context, accountID, userID string, permissions []types.Permission) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokePermissions")
	defer span.End()

	if len(permissions) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Delete("account_permissions").
		Where(sq.Eq{"account_id": accountID, "user_id": userID, "permission": permissions}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke permissions: %w", err)
	}

	return nil
}

func (s *Storage) RevokeAllPermissions(ctx context.Context, accountID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeAllPermissions")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("account_permissions").
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to revoke permissions: %w", err)
	}

	return nil
}

func (s *Storage) ListPermissions(ctx context.Context, accountID, userID string) ([]types.Permission, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPermissions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("permission").
		From("account_permissions").
		Where(sq.Eq{"account_id": accountID, "user_id": userID}).
		OrderBy("permission").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	permissions := []types.Permission{}
	for rows.Next() {
		var p types.Permission
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return permissions, nil
}
