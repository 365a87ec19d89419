// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"

	"github.com/canonical/account-service/internal/clock"
	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"github.com/canonical/account-service/pkg/account"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_interfaces.go -source=./interfaces.go

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	store    *MockStorageInterface
	accounts *MockAccountServiceInterface
	tx       *MockCoordinatorInterface
	kratos   *MockKratosClientInterface
	emails   *MockEmailInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		store:    NewMockStorageInterface(ctrl),
		accounts: NewMockAccountServiceInterface(ctrl),
		tx:       NewMockCoordinatorInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		emails:   NewMockEmailInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(
		m.store, m.accounts, m.tx, m.kratos, m.emails, clock.Fixed{T: testTime},
		7*24*time.Hour, "https://app.test",
		m.tracer, m.monitor, m.logger,
	)
}

func (m *serviceMocks) expectTransaction() {
	m.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_Invite(t *testing.T) {
	acc := &types.Account{ID: "acc-1", Name: "Acme", OwnerID: "owner-1"}
	inviter := &types.User{ID: "owner-1", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}

	t.Run("new invitee gets a ghost identity and a fresh link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Invite").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(acc, nil)
		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(inviter, nil)
		m.store.EXPECT().GetProjectsByIDs(gomock.Any(), []string{"proj-1"}).
			Return([]*types.Project{{ID: "proj-1", Name: "Website"}}, nil)

		m.expectTransaction()
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return("", nil)
		m.kratos.EXPECT().CreateGhostIdentity(gomock.Any(), "bob@example.com").Return("ghost-1", nil)
		m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "ghost-1").Return(nil, storage.ErrNotFound)
		m.store.EXPECT().GrantPermissions(gomock.Any(), "acc-1", "ghost-1",
			account.ExpandPermissions(types.PermCreateProjects)).Return(nil)
		inviterID := "owner-1"
		m.accounts.EXPECT().AddUser(gomock.Any(), "acc-1", "ghost-1", &inviterID, types.StatusInvited).Return(nil)
		m.store.EXPECT().AddProjectMembers(gomock.Any(), []string{"proj-1"}, "ghost-1").Return(nil)
		m.accounts.EXPECT().SyncUserProjects(gomock.Any(), "ghost-1").Return(nil)
		m.store.EXPECT().GetInvitationLinkByInvitee(gomock.Any(), "acc-1", "ghost-1").Return(nil, storage.ErrNotFound)
		m.store.EXPECT().CreateInvitationLink(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, link *types.InvitationLink) (*types.InvitationLink, error) {
				if len(link.SecureKey) != secureKeyLength {
					t.Fatalf("expected a %d char secure key, got %q", secureKeyLength, link.SecureKey)
				}
				if !link.ExpiresOn.Equal(testTime.Add(7 * 24 * time.Hour)) {
					t.Fatalf("unexpected expiry %v", link.ExpiresOn)
				}
				return link, nil
			},
		)

		var sent mail.InvitationEmailData
		m.emails.EXPECT().SendInvitation(gomock.Any(), "bob@example.com", gomock.Any()).DoAndReturn(
			func(ctx context.Context, to string, data mail.InvitationEmailData) error {
				sent = data
				return nil
			},
		)

		err := m.service().Invite(context.Background(), "acc-1", "owner-1",
			[]string{"bob@example.com"}, []string{"proj-1"}, []types.Permission{types.PermCreateProjects})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if sent.AccountName != "Acme" || sent.InviterName != "Alice Smith" {
			t.Fatalf("unexpected email data %+v", sent)
		}
		if !strings.HasPrefix(sent.Link, "https://app.test/invitations/acc-1/") {
			t.Fatalf("unexpected invitation link %q", sent.Link)
		}
		if len(sent.Projects) != 1 || sent.Projects[0] != "Website" {
			t.Fatalf("unexpected email projects %v", sent.Projects)
		}
	})

	t.Run("linked invitee with full project access is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Invite").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(acc, nil)
		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(inviter, nil)
		m.store.EXPECT().GetProjectsByIDs(gomock.Any(), []string{"proj-1"}).
			Return([]*types.Project{{ID: "proj-1", Name: "Website"}}, nil)

		m.expectTransaction()
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return("user-2", nil)
		m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-2").
			Return(&types.Membership{AccountID: "acc-1", UserID: "user-2", Status: types.StatusLinked}, nil)
		m.store.EXPECT().UserInProjects(gomock.Any(), []string{"proj-1"}, "user-2").Return(true, nil)

		err := m.service().Invite(context.Background(), "acc-1", "owner-1",
			[]string{"bob@example.com"}, []string{"proj-1"}, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("linked invitee with full project access still gets new permissions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Invite").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(acc, nil)
		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(inviter, nil)
		m.store.EXPECT().GetProjectsByIDs(gomock.Any(), []string{"proj-1"}).
			Return([]*types.Project{{ID: "proj-1", Name: "Website"}}, nil)

		m.expectTransaction()
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return("user-2", nil)
		m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-2").
			Return(&types.Membership{AccountID: "acc-1", UserID: "user-2", Status: types.StatusLinked}, nil)
		// The grant lands even though no new invitation goes out.
		m.store.EXPECT().GrantPermissions(gomock.Any(), "acc-1", "user-2",
			account.ExpandPermissions(types.PermAdmin)).Return(nil)
		m.store.EXPECT().UserInProjects(gomock.Any(), []string{"proj-1"}, "user-2").Return(true, nil)

		err := m.service().Invite(context.Background(), "acc-1", "owner-1",
			[]string{"bob@example.com"}, []string{"proj-1"}, []types.Permission{types.PermAdmin})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("removed invitee is re-invited and reuses their link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Invite").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(acc, nil)
		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(inviter, nil)
		m.store.EXPECT().GetProjectsByIDs(gomock.Any(), nil).Return([]*types.Project{}, nil)

		m.expectTransaction()
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return("user-2", nil)
		m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-2").
			Return(&types.Membership{AccountID: "acc-1", UserID: "user-2", Status: types.StatusRemoved}, nil)
		m.accounts.EXPECT().SetUserStatus(gomock.Any(), "acc-1", "user-2", types.StatusInvited).Return(nil)
		m.store.EXPECT().AddProjectMembers(gomock.Any(), nil, "user-2").Return(nil)
		m.store.EXPECT().GetInvitationLinkByInvitee(gomock.Any(), "acc-1", "user-2").
			Return(&types.InvitationLink{ID: "link-1", AccountID: "acc-1", SecureKey: "existing-key"}, nil)

		m.emails.EXPECT().SendInvitation(gomock.Any(), "bob@example.com", mail.InvitationEmailData{
			AccountName: "Acme",
			InviterName: "Alice Smith",
			Link:        "https://app.test/invitations/acc-1/existing-key",
			Projects:    []string{},
		}).Return(nil)

		err := m.service().Invite(context.Background(), "acc-1", "owner-1",
			[]string{"bob@example.com"}, nil, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("an invalid address fails the batch before any mutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Invite").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		err := m.service().Invite(context.Background(), "acc-1", "owner-1",
			[]string{"bob@example.com", "not-an-email"}, nil, nil)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("a failing invitee does not stop the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Invite").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(acc, nil)
		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(inviter, nil)
		m.store.EXPECT().GetProjectsByIDs(gomock.Any(), nil).Return([]*types.Project{}, nil)

		m.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("kratos down"))

		m.expectTransaction()
		m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), "carol@example.com").Return("user-3", nil)
		m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-3").
			Return(&types.Membership{AccountID: "acc-1", UserID: "user-3", Status: types.StatusLinked}, nil)
		m.store.EXPECT().UserInProjects(gomock.Any(), nil, "user-3").Return(true, nil)

		err := m.service().Invite(context.Background(), "acc-1", "owner-1",
			[]string{"bob@example.com", "carol@example.com"}, nil, nil)
		if err == nil || !strings.Contains(err.Error(), "bob@example.com") {
			t.Fatalf("expected a joined error naming the failed invitee, got %v", err)
		}
	})
}

func TestService_Accept(t *testing.T) {
	link := &types.InvitationLink{
		ID:        "link-1",
		AccountID: "acc-1",
		InviterID: "owner-1",
		InviteeID: "ghost-1",
		Email:     "bob@example.com",
		SecureKey: "key-1",
		ExpiresOn: testTime.Add(time.Hour),
	}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(link, nil)
				m.kratos.EXPECT().ActivateGhost(gomock.Any(), "ghost-1", "Bob", "Jones").Return(nil)
				m.accounts.EXPECT().SetUserStatus(gomock.Any(), "acc-1", "ghost-1", types.StatusLinked).Return(nil)
				m.store.EXPECT().DeleteInvitationLink(gomock.Any(), "link-1").Return(nil)
			},
		},
		{
			name: "expired link",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				expired := *link
				expired.ExpiresOn = testTime.Add(-time.Hour)
				m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(&expired, nil)
			},
			expectedErr: ErrLinkExpired,
		},
		{
			name: "unknown link",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Accept").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(m)

			err := m.service().Accept(context.Background(), "acc-1", "key-1", Signup{FirstName: "Bob", LastName: "Jones"})

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Claim(t *testing.T) {
	link := &types.InvitationLink{
		ID:        "link-1",
		AccountID: "acc-1",
		InviteeID: "user-2",
		SecureKey: "key-1",
		ExpiresOn: testTime.Add(time.Hour),
	}

	testCases := []struct {
		name        string
		userID      string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "success",
			userID: "user-2",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(link, nil)
				m.accounts.EXPECT().SetUserStatus(gomock.Any(), "acc-1", "user-2", types.StatusLinked).Return(nil)
				m.store.EXPECT().DeleteInvitationLink(gomock.Any(), "link-1").Return(nil)
			},
		},
		{
			name:   "link issued to someone else",
			userID: "user-9",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(link, nil)
			},
			expectedErr: ErrLinkMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Claim").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(m)

			err := m.service().Claim(context.Background(), "acc-1", "key-1", tc.userID)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_Decline(t *testing.T) {
	acc := &types.Account{ID: "acc-1", Name: "Acme", OwnerID: "owner-1"}
	link := &types.InvitationLink{
		ID:        "link-1",
		AccountID: "acc-1",
		InviterID: "owner-1",
		InviteeID: "user-2",
		Email:     "bob@example.com",
		SecureKey: "key-1",
		ExpiresOn: testTime.Add(time.Hour),
	}

	expectDecline := func(m *serviceMocks) {
		m.expectTransaction()
		m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(link, nil)
		m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(acc, nil)
		m.accounts.EXPECT().SetUserStatus(gomock.Any(), "acc-1", "user-2", types.StatusLeft).Return(nil)
		m.store.EXPECT().DeleteInvitationLink(gomock.Any(), "link-1").Return(nil)
	}

	t.Run("the inviter is notified after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Decline").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		expectDecline(m)

		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").
			Return(&types.User{ID: "owner-1", Email: "alice@example.com"}, nil)
		m.kratos.EXPECT().GetUser(gomock.Any(), "user-2").
			Return(&types.User{ID: "user-2", FirstName: "Bob", LastName: "Jones"}, nil)
		m.emails.EXPECT().SendRefusal(gomock.Any(), "alice@example.com", mail.RefusalEmailData{
			AccountName: "Acme",
			InviteeName: "Bob Jones",
			Message:     "no thanks",
		}).Return(nil)

		err := m.service().Decline(context.Background(), "acc-1", "key-1", "no thanks")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("a failing refusal email does not fail the decline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.Decline").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		expectDecline(m)

		m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(nil, errors.New("kratos down"))
		m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())

		err := m.service().Decline(context.Background(), "acc-1", "key-1", "")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

func TestService_GetInvitationData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), "invitation.Service.GetInvitationData").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	link := &types.InvitationLink{
		ID:        "link-1",
		AccountID: "acc-1",
		InviterID: "owner-1",
		InviteeID: "ghost-1",
		Email:     "bob@example.com",
		SecureKey: "key-1",
		ExpiresOn: testTime.Add(time.Hour),
	}

	m.store.EXPECT().GetInvitationLinkByKey(gomock.Any(), "acc-1", "key-1").Return(link, nil)
	m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").
		Return(&types.Account{ID: "acc-1", Name: "Acme"}, nil)
	m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").
		Return(&types.User{ID: "owner-1", FirstName: "Alice", LastName: "Smith"}, nil)
	m.store.EXPECT().ListProjectIDsByUserID(gomock.Any(), "acc-1", "ghost-1").Return([]string{"proj-1"}, nil)
	m.store.EXPECT().GetProjectsByIDs(gomock.Any(), []string{"proj-1"}).
		Return([]*types.Project{{ID: "proj-1", Name: "Website"}}, nil)

	data, err := m.service().GetInvitationData(context.Background(), "acc-1", "key-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if data.AccountName != "Acme" || data.InviterName != "Alice Smith" || data.Email != "bob@example.com" {
		t.Fatalf("unexpected invitation data %+v", data)
	}
	if len(data.Projects) != 1 || data.Projects[0] != "Website" {
		t.Fatalf("unexpected projects %v", data.Projects)
	}
}
