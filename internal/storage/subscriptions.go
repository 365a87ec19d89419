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

func (s *Storage) CreateSubscription(ctx context.Context, sub *types.Subscription) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubscription")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	var newSub types.Subscription
	err = s.db.Statement(ctx).
		Insert("subscriptions").
		Columns("id", "account_id", "plan", "expires_on", "expired", "paused", "canceled").
		Values(id.String(), sub.AccountID, sub.Plan, sub.ExpiresOn, sub.Expired, sub.Paused, sub.Canceled).
		Suffix("RETURNING id, account_id, plan, expires_on, expired, paused, canceled").
		QueryRowContext(ctx).
		Scan(&newSub.ID, &newSub.AccountID, &newSub.Plan, &newSub.ExpiresOn, &newSub.Expired, &newSub.Paused, &newSub.Canceled)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}

	return &newSub, nil
}

func (s *Storage) GetSubscriptionByAccountID(ctx context.Context, accountID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSubscriptionByAccountID")
	defer span.End()

	var sub types.Subscription
	err := s.db.Statement(ctx).
		Select("id", "account_id", "plan", "expires_on", "expired", "paused", "canceled").
		From("subscriptions").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx).
		Scan(&sub.ID, &sub.AccountID, &sub.Plan, &sub.ExpiresOn, &sub.Expired, &sub.Paused, &sub.Canceled)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// UpdateSubscription updates the fields named in paths on the subscription row.
func (s *Storage) UpdateSubscription(ctx context.Context, sub *types.Subscription, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateSubscription")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updates := make(map[string]any, len(paths))
	for _, p := range paths {
		switch p {
		case "plan":
			updates["plan"] = sub.Plan
		case "expires_on":
			updates["expires_on"] = sub.ExpiresOn
		case "expired":
			updates["expired"] = sub.Expired
		case "paused":
			updates["paused"] = sub.Paused
		case "canceled":
			updates["canceled"] = sub.Canceled
		default:
			return fmt.Errorf("unknown subscription field %q", p)
		}
	}

	res, err := s.db.Statement(ctx).
		Update("subscriptions").
		SetMap(updates).
		Where(sq.Eq{"id": sub.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
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

func (s *Storage) CreateSubscriptionEvent(ctx context.Context, event *types.SubscriptionEvent) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSubscriptionEvent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate subscription event ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("subscription_events").
		Columns("id", "subscription_id", "from_plan", "to_plan", "date", "expires_on", "payment_id").
		Values(id.String(), event.SubscriptionID, event.FromPlan, event.ToPlan, event.Date, event.ExpiresOn, event.PaymentID).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert subscription event: %w", err)
	}

	return nil
}

// MarkSubscriptionsExpired flags active subscriptions whose expiry is past the
// cutoff and returns how many rows were updated.
func (s *Storage) MarkSubscriptionsExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkSubscriptionsExpired")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("subscriptions").
		Set("expired", true).
		Where(sq.Eq{"expired": false}).
		Where(sq.LtOrEq{"expires_on": cutoff}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to mark subscriptions expired: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) CreateAccountDeletionRequest(ctx context.Context, req *types.AccountDeletionRequest) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAccountDeletionRequest")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("account_deletion_requests").
		Columns("account_id", "requested_by", "due_on").
		Values(req.AccountID, req.RequestedBy, req.DueOn).
		Suffix("ON CONFLICT (account_id) DO UPDATE SET requested_by = EXCLUDED.requested_by, due_on = EXCLUDED.due_on").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert account deletion request: %w", err)
	}

	return nil
}

func (s *Storage) DeleteAccountDeletionRequests(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAccountDeletionRequests")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("account_deletion_requests").
		Where(sq.Eq{"account_id": accountID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete account deletion requests: %w", err)
	}
	return nil
}

// ListDueAccountDeletions returns the account ids whose deletion requests came
// due at or before the cutoff.
func (s *Storage) ListDueAccountDeletions(ctx context.Context, cutoff time.Time) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDueAccountDeletions")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("account_id").
		From("account_deletion_requests").
		Where(sq.LtOrEq{"due_on": cutoff}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list due account deletions: %w", err)
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
