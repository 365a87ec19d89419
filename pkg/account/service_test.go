// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"
	"errors"
	"reflect"
	"testing"

	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"

	"github.com/canonical/account-service/internal/mail"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package account -destination ./mock_interfaces.go -source=./interfaces.go

type serviceMocks struct {
	store         *MockStorageInterface
	cache         *MockAccountCacheInterface
	tx            *MockCoordinatorInterface
	kratos        *MockKratosClientInterface
	emails        *MockEmailInterface
	subscriptions *MockSubscriptionCreatorInterface
	tracer        *MockTracingInterface
	monitor       *MockMonitorInterface
	logger        *MockLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		store:         NewMockStorageInterface(ctrl),
		cache:         NewMockAccountCacheInterface(ctrl),
		tx:            NewMockCoordinatorInterface(ctrl),
		kratos:        NewMockKratosClientInterface(ctrl),
		emails:        NewMockEmailInterface(ctrl),
		subscriptions: NewMockSubscriptionCreatorInterface(ctrl),
		tracer:        NewMockTracingInterface(ctrl),
		monitor:       NewMockMonitorInterface(ctrl),
		logger:        NewMockLoggerInterface(ctrl),
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(m.store, m.cache, m.tx, m.kratos, m.emails, m.subscriptions, m.tracer, m.monitor, m.logger)
}

func (m *serviceMocks) expectTransaction() {
	m.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestService_CreateAccount(t *testing.T) {
	ownerPermissions := ExpandPermissions(types.PermOwner)

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().AccountExistsByCreator(gomock.Any(), "user-1").Return(false, nil)
				m.store.EXPECT().CreateAccount(gomock.Any(), &types.Account{Name: "Acme", OwnerID: "user-1", CreatedBy: "user-1"}).
					Return(&types.Account{ID: "acc-1", Name: "Acme", OwnerID: "user-1", CreatedBy: "user-1"}, nil)
				m.store.EXPECT().UpsertMembership(gomock.Any(), "acc-1", "user-1", nil, types.StatusLinked).Return(nil)
				m.store.EXPECT().GrantPermissions(gomock.Any(), "acc-1", "user-1", ownerPermissions).Return(nil)
				m.subscriptions.EXPECT().CreateInitial(gomock.Any(), "acc-1").Return(nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{"acc-1"}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{"acc-1"}).Return(nil)
				m.store.EXPECT().ListPermissions(gomock.Any(), "acc-1", "user-1").Return(ownerPermissions, nil)
				m.cache.EXPECT().SyncPermissions(gomock.Any(), "user-1", "acc-1", permissionStrings(ownerPermissions)).Return(nil)
			},
		},
		{
			name: "user already created an account",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().AccountExistsByCreator(gomock.Any(), "user-1").Return(true, nil)
			},
			expectedErr: ErrUserHasAccount,
		},
		{
			name: "store failure rolls up",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().AccountExistsByCreator(gomock.Any(), "user-1").Return(false, nil)
				m.store.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedErr: errors.New("connection reset"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.CreateAccount").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			acc, err := mocks.service().CreateAccount(context.Background(), "Acme", "user-1")

			if tc.expectedErr != nil {
				if err == nil || err.Error() != tc.expectedErr.Error() {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if acc == nil || acc.ID != "acc-1" {
				t.Fatalf("expected created account acc-1, got %+v", acc)
			}
		})
	}
}

func TestService_SetUserStatus(t *testing.T) {
	testCases := []struct {
		name        string
		status      types.MembershipStatus
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "linked member leaves",
			status: types.StatusLeft,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusLinked}, nil)
				m.store.EXPECT().SetMembershipStatus(gomock.Any(), "acc-1", "user-1", types.StatusLeft).Return(nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{}).Return(nil)
			},
		},
		{
			name:   "invited member accepts",
			status: types.StatusLinked,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusInvited}, nil)
				m.store.EXPECT().SetMembershipStatus(gomock.Any(), "acc-1", "user-1", types.StatusLinked).Return(nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{"acc-1"}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{"acc-1"}).Return(nil)
			},
		},
		{
			name:   "removed member can be re-invited",
			status: types.StatusInvited,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusRemoved}, nil)
				m.store.EXPECT().SetMembershipStatus(gomock.Any(), "acc-1", "user-1", types.StatusInvited).Return(nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{}).Return(nil)
			},
		},
		{
			name:   "same status is a no-op",
			status: types.StatusLinked,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusLinked}, nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{"acc-1"}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{"acc-1"}).Return(nil)
			},
		},
		{
			name:   "removed member cannot jump to linked",
			status: types.StatusLinked,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusRemoved}, nil)
			},
			expectedErr: ErrInvalidTransition,
		},
		{
			name:        "unknown status is rejected",
			status:      types.MembershipStatus("BANNED"),
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrInvalidStatus,
		},
		{
			name:   "unknown membership",
			status: types.StatusLinked,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.SetUserStatus").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			err := mocks.service().SetUserStatus(context.Background(), "acc-1", "user-1", tc.status)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestService_RemoveUser(t *testing.T) {
	account := &types.Account{ID: "acc-1", Name: "Acme", OwnerID: "owner-1"}

	expectDetach := func(m *serviceMocks, userID string, target types.MembershipStatus) {
		m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", userID).
			Return(&types.Membership{AccountID: "acc-1", UserID: userID, Status: types.StatusLinked}, nil)
		m.store.EXPECT().SetMembershipStatus(gomock.Any(), "acc-1", userID, target).Return(nil)
		m.store.EXPECT().DeleteInvitationLinks(gomock.Any(), "acc-1", userID).Return(nil)
		m.store.EXPECT().RevokeAllPermissions(gomock.Any(), "acc-1", userID).Return(nil)
		m.store.EXPECT().RemoveProjectMembers(gomock.Any(), "acc-1", userID).Return(nil)
		m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), userID).Return([]string{}, nil)
		m.cache.EXPECT().SyncAccounts(gomock.Any(), userID, []string{}).Return(nil)
		m.store.EXPECT().ListProjectIDsByUser(gomock.Any(), userID).Return([]string{}, nil)
		m.cache.EXPECT().SyncProjects(gomock.Any(), userID, []string{}).Return(nil)
		m.cache.EXPECT().SyncPermissions(gomock.Any(), userID, "acc-1", []string{}).Return(nil)
	}

	testCases := []struct {
		name        string
		userID      string
		actorID     string
		message     string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:    "admin removes a member",
			userID:  "user-1",
			actorID: "owner-1",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
				expectDetach(m, "user-1", types.StatusRemoved)
			},
		},
		{
			name:    "member leaves and the owner is notified",
			userID:  "user-1",
			actorID: "user-1",
			message: "moving on",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
				expectDetach(m, "user-1", types.StatusLeft)
				m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").
					Return(&types.User{ID: "owner-1", Email: "owner@example.com"}, nil)
				m.kratos.EXPECT().GetUser(gomock.Any(), "user-1").
					Return(&types.User{ID: "user-1", FirstName: "Bob", LastName: "Jones"}, nil)
				m.emails.EXPECT().SendLeaving(gomock.Any(), "owner@example.com", mail.LeavingEmailData{
					AccountName: "Acme",
					UserName:    "Bob Jones",
					Message:     "moving on",
				}).Return(nil)
			},
		},
		{
			name:    "member leaves without a message",
			userID:  "user-1",
			actorID: "user-1",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
				expectDetach(m, "user-1", types.StatusLeft)
			},
		},
		{
			name:    "leaving email failure does not fail the removal",
			userID:  "user-1",
			actorID: "user-1",
			message: "bye",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
				expectDetach(m, "user-1", types.StatusLeft)
				m.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(nil, errors.New("kratos down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name:    "owner cannot be removed",
			userID:  "owner-1",
			actorID: "owner-1",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
			},
			expectedErr: ErrOwnerCannotBeRemoved,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.RemoveUser").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			err := mocks.service().RemoveUser(context.Background(), "acc-1", tc.userID, tc.actorID, tc.message)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ChangeOwner(t *testing.T) {
	account := &types.Account{ID: "acc-1", Name: "Acme", OwnerID: "owner-1"}
	ownerPermissions := ExpandPermissions(types.PermOwner)

	testCases := []struct {
		name        string
		newOwnerID  string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:       "success",
			newOwnerID: "user-2",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-2").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-2", Status: types.StatusLinked}, nil)
				m.store.EXPECT().UpdateAccountOwner(gomock.Any(), "acc-1", "user-2").Return(nil)
				m.store.EXPECT().GrantPermissions(gomock.Any(), "acc-1", "user-2", ownerPermissions).Return(nil)
				m.store.EXPECT().RevokePermissions(gomock.Any(), "acc-1", "owner-1", []types.Permission{types.PermOwner}).Return(nil)
				m.store.EXPECT().ListPermissions(gomock.Any(), "acc-1", "user-2").Return(ownerPermissions, nil)
				m.cache.EXPECT().SyncPermissions(gomock.Any(), "user-2", "acc-1", permissionStrings(ownerPermissions)).Return(nil)
				m.store.EXPECT().ListPermissions(gomock.Any(), "acc-1", "owner-1").
					Return([]types.Permission{types.PermAdmin, types.PermCreateProjects}, nil)
				m.cache.EXPECT().SyncPermissions(gomock.Any(), "owner-1", "acc-1", []string{"ADMIN", "CREATE_PROJECTS"}).Return(nil)
			},
		},
		{
			name:       "transfer to the current owner is a no-op",
			newOwnerID: "owner-1",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
			},
		},
		{
			name:       "new owner must be linked",
			newOwnerID: "user-2",
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(account, nil)
				m.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-2").
					Return(&types.Membership{AccountID: "acc-1", UserID: "user-2", Status: types.StatusInvited}, nil)
			},
			expectedErr: ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.ChangeOwner").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			err := mocks.service().ChangeOwner(context.Background(), "acc-1", tc.newOwnerID)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GrantPermission(t *testing.T) {
	testCases := []struct {
		name        string
		permission  types.Permission
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:       "admin grant carries create projects",
			permission: types.PermAdmin,
			setupMocks: func(m *serviceMocks) {
				m.expectTransaction()
				m.store.EXPECT().GrantPermissions(gomock.Any(), "acc-1", "user-1",
					[]types.Permission{types.PermAdmin, types.PermCreateProjects}).Return(nil)
				m.store.EXPECT().ListPermissions(gomock.Any(), "acc-1", "user-1").
					Return([]types.Permission{types.PermAdmin, types.PermCreateProjects}, nil)
				m.cache.EXPECT().SyncPermissions(gomock.Any(), "user-1", "acc-1",
					[]string{"ADMIN", "CREATE_PROJECTS"}).Return(nil)
			},
		},
		{
			name:        "unknown permission is rejected",
			permission:  types.Permission("SUPERUSER"),
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: ErrInvalidPermission,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GrantPermission").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			err := mocks.service().GrantPermission(context.Background(), "acc-1", "user-1", tc.permission)

			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetPermissions(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*serviceMocks)
		expected   []types.Permission
	}{
		{
			name: "cache hit",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadPermissions(gomock.Any(), "user-1", "acc-1").
					Return([]string{"ADMIN", "CREATE_PROJECTS"}, true, nil)
			},
			expected: []types.Permission{types.PermAdmin, types.PermCreateProjects},
		},
		{
			name: "cache miss reads the store and syncs",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadPermissions(gomock.Any(), "user-1", "acc-1").Return(nil, false, nil)
				m.store.EXPECT().ListPermissions(gomock.Any(), "acc-1", "user-1").
					Return([]types.Permission{types.PermCreateProjects}, nil)
				m.cache.EXPECT().SyncPermissions(gomock.Any(), "user-1", "acc-1", []string{"CREATE_PROJECTS"}).Return(nil)
			},
			expected: []types.Permission{types.PermCreateProjects},
		},
		{
			name: "cache failure falls back to the store",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadPermissions(gomock.Any(), "user-1", "acc-1").
					Return(nil, false, errors.New("redis down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.store.EXPECT().ListPermissions(gomock.Any(), "acc-1", "user-1").
					Return([]types.Permission{types.PermCreateProjects}, nil)
				m.cache.EXPECT().SyncPermissions(gomock.Any(), "user-1", "acc-1", []string{"CREATE_PROJECTS"}).Return(nil)
			},
			expected: []types.Permission{types.PermCreateProjects},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetPermissions").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			permissions, err := mocks.service().GetPermissions(context.Background(), "acc-1", "user-1")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(permissions, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, permissions)
			}
		})
	}
}

func TestService_GetUserAccountIDs(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*serviceMocks)
		expected   []string
	}{
		{
			name: "cache hit",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadAccounts(gomock.Any(), "user-1").Return([]string{"acc-1", "acc-2"}, true, nil)
			},
			expected: []string{"acc-1", "acc-2"},
		},
		{
			name: "authoritative empty list from the cache",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadAccounts(gomock.Any(), "user-1").Return([]string{}, true, nil)
			},
			expected: []string{},
		},
		{
			name: "cache miss reads the store and syncs",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadAccounts(gomock.Any(), "user-1").Return(nil, false, nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{"acc-1"}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{"acc-1"}).Return(nil)
			},
			expected: []string{"acc-1"},
		},
		{
			name: "sync failure is logged, not returned",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadAccounts(gomock.Any(), "user-1").Return(nil, false, nil)
				m.store.EXPECT().ListLinkedAccountIDs(gomock.Any(), "user-1").Return([]string{"acc-1"}, nil)
				m.cache.EXPECT().SyncAccounts(gomock.Any(), "user-1", []string{"acc-1"}).Return(errors.New("redis down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expected: []string{"acc-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetUserAccountIDs").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			accountIDs, err := mocks.service().GetUserAccountIDs(context.Background(), "user-1")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(accountIDs, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, accountIDs)
			}
		})
	}
}

func TestService_GetUserProjectIDs(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*serviceMocks)
		expected   []string
	}{
		{
			name: "cache hit",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadProjects(gomock.Any(), "user-1").Return([]string{"proj-1", "proj-2"}, true, nil)
			},
			expected: []string{"proj-1", "proj-2"},
		},
		{
			name: "authoritative empty list from the cache",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadProjects(gomock.Any(), "user-1").Return([]string{}, true, nil)
			},
			expected: []string{},
		},
		{
			name: "cache miss reads the store and syncs",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadProjects(gomock.Any(), "user-1").Return(nil, false, nil)
				m.store.EXPECT().ListProjectIDsByUser(gomock.Any(), "user-1").Return([]string{"proj-1"}, nil)
				m.cache.EXPECT().SyncProjects(gomock.Any(), "user-1", []string{"proj-1"}).Return(nil)
			},
			expected: []string{"proj-1"},
		},
		{
			name: "sync failure is logged, not returned",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadProjects(gomock.Any(), "user-1").Return(nil, false, nil)
				m.store.EXPECT().ListProjectIDsByUser(gomock.Any(), "user-1").Return([]string{"proj-1"}, nil)
				m.cache.EXPECT().SyncProjects(gomock.Any(), "user-1", []string{"proj-1"}).Return(errors.New("redis down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expected: []string{"proj-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetUserProjectIDs").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mocks)

			projectIDs, err := mocks.service().GetUserProjectIDs(context.Background(), "user-1")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !reflect.DeepEqual(projectIDs, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, projectIDs)
			}
		})
	}
}

func TestService_SyncUserProjects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newServiceMocks(ctrl)
	mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.SyncUserProjects").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mocks.store.EXPECT().ListProjectIDsByUser(gomock.Any(), "user-1").Return([]string{"proj-1"}, nil)
	mocks.cache.EXPECT().SyncProjects(gomock.Any(), "user-1", []string{"proj-1"}).Return(nil)

	if err := mocks.service().SyncUserProjects(context.Background(), "user-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_MembershipPredicates(t *testing.T) {
	testCases := []struct {
		name       string
		check      func(*Service) (bool, error)
		spanName   string
		membership *types.Membership
		storeErr   error
		expected   bool
	}{
		{
			name: "linked user is linked",
			check: func(s *Service) (bool, error) {
				return s.IsUserLinked(context.Background(), "acc-1", "user-1")
			},
			spanName:   "account.Service.IsUserLinked",
			membership: &types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusLinked},
			expected:   true,
		},
		{
			name: "invited user is not linked",
			check: func(s *Service) (bool, error) {
				return s.IsUserLinked(context.Background(), "acc-1", "user-1")
			},
			spanName:   "account.Service.IsUserLinked",
			membership: &types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusInvited},
			expected:   false,
		},
		{
			name: "invited user is invited",
			check: func(s *Service) (bool, error) {
				return s.IsUserInvited(context.Background(), "acc-1", "user-1")
			},
			spanName:   "account.Service.IsUserInvited",
			membership: &types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusInvited},
			expected:   true,
		},
		{
			name: "removed user is removed",
			check: func(s *Service) (bool, error) {
				return s.IsUserRemoved(context.Background(), "acc-1", "user-1")
			},
			spanName:   "account.Service.IsUserRemoved",
			membership: &types.Membership{AccountID: "acc-1", UserID: "user-1", Status: types.StatusRemoved},
			expected:   true,
		},
		{
			name: "user without membership has no status",
			check: func(s *Service) (bool, error) {
				return s.IsUserLeft(context.Background(), "acc-1", "user-1")
			},
			spanName: "account.Service.IsUserLeft",
			storeErr: storage.ErrNotFound,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newServiceMocks(ctrl)
			mocks.tracer.EXPECT().Start(gomock.Any(), tc.spanName).
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mocks.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").Return(tc.membership, tc.storeErr)

			got, err := tc.check(mocks.service())

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got != tc.expected {
				t.Fatalf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestService_GetUserAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accounts := []*types.Account{
		{ID: "acc-1", Name: "Acme", OwnerID: "owner-1"},
		{ID: "acc-2", Name: "Globex", OwnerID: "owner-2"},
	}

	mocks := newServiceMocks(ctrl)
	mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetUserAccounts").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mocks.store.EXPECT().ListLinkedAccounts(gomock.Any(), "user-1").Return(accounts, nil)

	got, err := mocks.service().GetUserAccounts(context.Background(), "user-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, accounts) {
		t.Fatalf("expected %v, got %v", accounts, got)
	}
}

func TestService_GetAccountOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := &types.User{ID: "owner-1", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}

	mocks := newServiceMocks(ctrl)
	mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetAccountOwner").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mocks.store.EXPECT().GetAccountByID(gomock.Any(), "acc-1").
		Return(&types.Account{ID: "acc-1", Name: "Acme", OwnerID: "owner-1"}, nil)
	mocks.kratos.EXPECT().GetUser(gomock.Any(), "owner-1").Return(owner, nil)

	got, err := mocks.service().GetAccountOwner(context.Background(), "acc-1")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, owner) {
		t.Fatalf("expected %v, got %v", owner, got)
	}
}

func TestService_GetUserInviterData(t *testing.T) {
	t.Run("invited user has an inviter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		inviterID := "inviter-1"
		inviter := &types.User{ID: inviterID, FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}

		mocks := newServiceMocks(ctrl)
		mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetUserInviterData").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mocks.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "user-1").
			Return(&types.Membership{AccountID: "acc-1", UserID: "user-1", InviterID: &inviterID, Status: types.StatusInvited}, nil)
		mocks.kratos.EXPECT().GetUser(gomock.Any(), inviterID).Return(inviter, nil)

		got, err := mocks.service().GetUserInviterData(context.Background(), "acc-1", "user-1")

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !reflect.DeepEqual(got, inviter) {
			t.Fatalf("expected %v, got %v", inviter, got)
		}
	})

	t.Run("owner joined without an inviter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := newServiceMocks(ctrl)
		mocks.tracer.EXPECT().Start(gomock.Any(), "account.Service.GetUserInviterData").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mocks.store.EXPECT().GetMembership(gomock.Any(), "acc-1", "owner-1").
			Return(&types.Membership{AccountID: "acc-1", UserID: "owner-1", Status: types.StatusLinked}, nil)

		got, err := mocks.service().GetUserInviterData(context.Background(), "acc-1", "owner-1")

		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != nil {
			t.Fatalf("expected no inviter, got %v", got)
		}
	})
}
