// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/canonical/account-service/internal/types"
)

// AddProjectMembers adds the user to each of the given projects, skipping
// projects they already belong to.
func (s *Storage) AddProjectMembers(ctx context.Context, projectIDs []string, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddProjectMembers")
	defer span.End()

	if len(projectIDs) == 0 {
		return nil
	}

	q := s.db.Statement(ctx).
		Insert("projects_users").
		Columns("project_id", "user_id")
	for _, id := range projectIDs {
		q = q.Values(id, userID)
	}

	_, err := q.
		Suffix("ON CONFLICT (project_id, user_id) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add project members: %w", err)
	}

	return nil
}

func (s *Storage) RemoveProjectMembers(ctx context.Context, accountID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveProjectMembers")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("projects_users").
		Where("project_id IN (SELECT id FROM projects WHERE account_id = ?)", accountID).
		Where(sq.Eq{"user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove project members: %w", err)
	}
	return nil
}

// ListProjectIDsByUserID returns the ids of the account's projects the user
// belongs to, trashed projects excluded.
func (s *Storage) ListProjectIDsByUserID(ctx context.Context, accountID, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectIDsByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("p.id").
		From("projects p").
		Join("projects_users pu ON p.id = pu.project_id").
		Where(sq.Eq{"p.account_id": accountID, "pu.user_id": userID, "p.trashed": false}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}
	defer rows.Close()

	projectIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan project id: %w", err)
		}
		projectIDs = append(projectIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projectIDs, nil
}

// ListProjectIDsByUser returns the ids of every project the user belongs to,
// across all accounts, trashed projects excluded. This is the authoritative
// value behind the user's cached project list.
func (s *Storage) ListProjectIDsByUser(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectIDsByUser")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("p.id").
		From("projects p").
		Join("projects_users pu ON p.id = pu.project_id").
		Where(sq.Eq{"pu.user_id": userID, "p.trashed": false}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}
	defer rows.Close()

	projectIDs := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan project id: %w", err)
		}
		projectIDs = append(projectIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projectIDs, nil
}

// UserInProjects reports whether the user is a member of every given project.
func (s *Storage) UserInProjects(ctx context.Context, projectIDs []string, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UserInProjects")
	defer span.End()

	if len(projectIDs) == 0 {
		return true, nil
	}

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("projects_users").
		Where(sq.Eq{"project_id": projectIDs, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to count project memberships: %w", err)
	}

	return count == len(projectIDs), nil
}

func (s *Storage) GetProjectsByIDs(ctx context.Context, projectIDs []string) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectsByIDs")
	defer span.End()

	if len(projectIDs) == 0 {
		return []*types.Project{}, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "account_id", "name", "trashed", "trashed_on").
		From("projects").
		Where(sq.Eq{"id": projectIDs}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	defer rows.Close()

	projects := []*types.Project{}
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.AccountID, &p.Name, &p.Trashed, &p.TrashedOn); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

// DeleteTrashedProjects removes projects trashed at or before the cutoff and
// returns the number of rows deleted.
func (s *Storage) DeleteTrashedProjects(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTrashedProjects")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("projects").
		Where(sq.Eq{"trashed": true}).
		Where(sq.LtOrEq{"trashed_on": cutoff}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete trashed projects: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
