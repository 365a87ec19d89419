// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccount")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID: %w", err)
	}

	var newAccount types.Account
	err = s.db.Statement(ctx).
		Insert("accounts").
		Columns("id", "name", "owner_id", "created_by").
		Values(id.String(), a.Name, a.OwnerID, a.CreatedBy).
		Suffix("RETURNING id, name, owner_id, created_by, created_on").
		QueryRowContext(ctx).
		Scan(&newAccount.ID, &newAccount.Name, &newAccount.OwnerID, &newAccount.CreatedBy, &newAccount.CreatedOn)

	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return &newAccount, nil
}

func (s *Storage) GetAccountByID(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAccountByID")
	defer span.End()

	var a types.Account
	err := s.db.Statement(ctx).
		Select("id", "name", "owner_id", "created_by", "created_on").
		From("accounts").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.Name, &a.OwnerID, &a.CreatedBy, &a.CreatedOn)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (s *Storage) UpdateAccountName(ctx context.Context, id, name string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAccountName")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("name", name).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update account name: %w", err)
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

func (s *Storage) UpdateAccountOwner(ctx context.Context, id, ownerID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAccountOwner")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("owner_id", ownerID).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update account owner: %w", err)
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

func (s *Storage) DeleteAccount(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAccount")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("accounts").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// AccountExistsByCreator reports whether the given user has already created an account.
func (s *Storage) AccountExistsByCreator(ctx context.Context, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AccountExistsByCreator")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("accounts").
		Where(sq.Eq{"created_by": userID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to count accounts: %w", err)
	}

	return count > 0, nil
}
