// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/token"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/internal/types"
	"github.com/canonical/account-service/pkg/account"
)

// secureKeyLength is the length of the crypto-random key embedded in
// invitation links.
const secureKeyLength = 32

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store    StorageInterface
	accounts AccountServiceInterface
	tx       CoordinatorInterface
	kratos   KratosClientInterface
	emails   EmailInterface
	clock    ClockInterface

	linkLifetime time.Duration
	baseURL      string
	validate     *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Invite invites each email to the account, attaching the invitees to the
// given projects and granting the given permissions. All emails are validated
// before anything is mutated. Each invitee is then processed in its own
// transaction, a failure for one does not stop the others. The returned error
// joins the per-invitee failures.
func (s *Service) Invite(ctx context.Context, accountID, inviterID string, emails, projectIDs []string, permissions []types.Permission) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Invite")
	defer span.End()

	for _, email := range emails {
		if err := s.validate.Var(email, "required,email"); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidEmail, email)
		}
	}
	for _, p := range permissions {
		if !p.Valid() {
			return fmt.Errorf("%w: %s", account.ErrInvalidPermission, p)
		}
	}

	acc, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	inviter, err := s.kratos.GetUser(ctx, inviterID)
	if err != nil {
		return fmt.Errorf("failed to resolve inviter: %w", err)
	}
	projectNames, err := s.projectNames(ctx, projectIDs)
	if err != nil {
		return err
	}

	var errs []error
	for _, email := range emails {
		if err := s.invite(ctx, acc, inviter, email, projectIDs, projectNames, permissions); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", email, err))
		}
	}

	return errors.Join(errs...)
}

// invite processes a single invitee inside one transaction and sends the
// invitation email once the transaction is committed.
func (s *Service) invite(ctx context.Context, acc *types.Account, inviter *types.User, email string, projectIDs, projectNames []string, permissions []types.Permission) error {
	var link *types.InvitationLink

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		userID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
		if err != nil {
			return err
		}
		if userID == "" {
			userID, err = s.kratos.CreateGhostIdentity(ctx, email)
			if err != nil {
				return err
			}
		}

		m, err := s.store.GetMembership(ctx, acc.ID, userID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		// Permissions apply regardless of whether a new invitation goes out.
		if len(permissions) > 0 {
			if err := s.store.GrantPermissions(ctx, acc.ID, userID, account.ExpandPermissions(permissions...)); err != nil {
				return err
			}
		}

		// An invitee who is already linked and has all the requested project
		// access keeps the grant above but needs no new invitation.
		if m != nil && m.Status == types.StatusLinked {
			inProjects, err := s.store.UserInProjects(ctx, projectIDs, userID)
			if err != nil {
				return err
			}
			if inProjects {
				return nil
			}
		}

		switch {
		case m == nil:
			inviterID := inviter.ID
			if err := s.accounts.AddUser(ctx, acc.ID, userID, &inviterID, types.StatusInvited); err != nil {
				return err
			}
		case m.Status == types.StatusRemoved, m.Status == types.StatusLeft:
			if err := s.accounts.SetUserStatus(ctx, acc.ID, userID, types.StatusInvited); err != nil {
				return err
			}
		}

		if err := s.store.AddProjectMembers(ctx, projectIDs, userID); err != nil {
			return err
		}
		if len(projectIDs) > 0 {
			if err := s.accounts.SyncUserProjects(ctx, userID); err != nil {
				return err
			}
		}

		link, err = s.ensureLink(ctx, acc.ID, inviter.ID, userID, email)
		return err
	})
	if err != nil {
		return err
	}
	if link == nil {
		return nil
	}

	inviterName := fmt.Sprintf("%s %s", inviter.FirstName, inviter.LastName)
	return s.emails.SendInvitation(ctx, email, mail.InvitationEmailData{
		AccountName: acc.Name,
		InviterName: inviterName,
		Link:        s.linkURL(acc.ID, link.SecureKey),
		Projects:    projectNames,
	})
}

// ensureLink reuses the invitee's unconsumed link when one exists, otherwise
// it mints a new one with a fresh secure key.
func (s *Service) ensureLink(ctx context.Context, accountID, inviterID, inviteeID, email string) (*types.InvitationLink, error) {
	link, err := s.store.GetInvitationLinkByInvitee(ctx, accountID, inviteeID)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	key, err := token.Generate(secureKeyLength)
	if err != nil {
		return nil, err
	}

	return s.store.CreateInvitationLink(ctx, &types.InvitationLink{
		AccountID: accountID,
		InviterID: inviterID,
		InviteeID: inviteeID,
		Email:     email,
		SecureKey: key,
		ExpiresOn: s.clock.Now().Add(s.linkLifetime),
	})
}

// Accept consumes the link for a ghost invitee: the ghost identity is
// activated with the signup details, the membership is linked and the link is
// deleted.
func (s *Service) Accept(ctx context.Context, accountID, secureKey string, signup Signup) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Accept")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		link, err := s.lookupLink(ctx, accountID, secureKey)
		if err != nil {
			return err
		}

		if err := s.kratos.ActivateGhost(ctx, link.InviteeID, signup.FirstName, signup.LastName); err != nil {
			return err
		}
		if err := s.accounts.SetUserStatus(ctx, accountID, link.InviteeID, types.StatusLinked); err != nil {
			return err
		}
		return s.store.DeleteInvitationLink(ctx, link.ID)
	})
}

// Claim consumes the link for an invitee who already has a user. The link must
// have been issued to the claiming user.
func (s *Service) Claim(ctx context.Context, accountID, secureKey, userID string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Claim")
	defer span.End()

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		link, err := s.lookupLink(ctx, accountID, secureKey)
		if err != nil {
			return err
		}
		if link.InviteeID != userID {
			return ErrLinkMismatch
		}

		if err := s.accounts.SetUserStatus(ctx, accountID, userID, types.StatusLinked); err != nil {
			return err
		}
		return s.store.DeleteInvitationLink(ctx, link.ID)
	})
}

// Decline marks the invitee as LEFT, consumes the link and notifies the
// inviter once the decline is committed.
func (s *Service) Decline(ctx context.Context, accountID, secureKey, message string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Decline")
	defer span.End()

	var link *types.InvitationLink
	var acc *types.Account
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		link, err = s.lookupLink(ctx, accountID, secureKey)
		if err != nil {
			return err
		}
		acc, err = s.store.GetAccountByID(ctx, accountID)
		if err != nil {
			return err
		}

		if err := s.accounts.SetUserStatus(ctx, accountID, link.InviteeID, types.StatusLeft); err != nil {
			return err
		}
		return s.store.DeleteInvitationLink(ctx, link.ID)
	})
	if err != nil {
		return err
	}

	s.notifyInviterOfRefusal(ctx, acc, link, message)
	return nil
}

// GetInvitationData returns what the invitation landing page renders: the
// account, who invited, and the projects the invitee was added to.
func (s *Service) GetInvitationData(ctx context.Context, accountID, secureKey string) (*InvitationData, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.GetInvitationData")
	defer span.End()

	link, err := s.lookupLink(ctx, accountID, secureKey)
	if err != nil {
		return nil, err
	}

	acc, err := s.store.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	inviter, err := s.kratos.GetUser(ctx, link.InviterID)
	if err != nil {
		return nil, err
	}

	projectIDs, err := s.store.ListProjectIDsByUserID(ctx, accountID, link.InviteeID)
	if err != nil {
		return nil, err
	}
	projectNames, err := s.projectNames(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	return &InvitationData{
		AccountID:   acc.ID,
		AccountName: acc.Name,
		InviterName: fmt.Sprintf("%s %s", inviter.FirstName, inviter.LastName),
		Email:       link.Email,
		Projects:    projectNames,
		ExpiresOn:   link.ExpiresOn,
	}, nil
}

// lookupLink fetches a link by key and applies the expiry check. A missing
// link and an expired link surface as different errors.
func (s *Service) lookupLink(ctx context.Context, accountID, secureKey string) (*types.InvitationLink, error) {
	link, err := s.store.GetInvitationLinkByKey(ctx, accountID, secureKey)
	if err != nil {
		return nil, err
	}
	if s.clock.Now().After(link.ExpiresOn) {
		return nil, ErrLinkExpired
	}
	return link, nil
}

func (s *Service) projectNames(ctx context.Context, projectIDs []string) ([]string, error) {
	projects, err := s.store.GetProjectsByIDs(ctx, projectIDs)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return names, nil
}

func (s *Service) linkURL(accountID, secureKey string) string {
	return fmt.Sprintf("%s/invitations/%s/%s", s.baseURL, accountID, secureKey)
}

func (s *Service) notifyInviterOfRefusal(ctx context.Context, acc *types.Account, link *types.InvitationLink, message string) {
	inviter, err := s.kratos.GetUser(ctx, link.InviterID)
	if err != nil {
		s.logger.Errorf("failed to resolve inviter for refusal email: %v", err)
		return
	}
	invitee, err := s.kratos.GetUser(ctx, link.InviteeID)
	if err != nil {
		s.logger.Errorf("failed to resolve invitee for refusal email: %v", err)
		return
	}

	inviteeName := fmt.Sprintf("%s %s", invitee.FirstName, invitee.LastName)
	if invitee.Ghost {
		inviteeName = link.Email
	}
	data := mail.RefusalEmailData{
		AccountName: acc.Name,
		InviteeName: inviteeName,
		Message:     message,
	}
	if err := s.emails.SendRefusal(ctx, inviter.Email, data); err != nil {
		s.logger.Errorf("failed to send refusal email: %v", err)
	}
}

func NewService(
	store StorageInterface,
	accounts AccountServiceInterface,
	tx CoordinatorInterface,
	kratos KratosClientInterface,
	emails EmailInterface,
	clock ClockInterface,
	linkLifetime time.Duration,
	baseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.store = store
	s.accounts = accounts
	s.tx = tx
	s.kratos = kratos
	s.emails = emails
	s.clock = clock

	s.linkLifetime = linkLifetime
	s.baseURL = baseURL
	s.validate = validator.New()

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
