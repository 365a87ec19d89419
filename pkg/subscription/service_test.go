// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	gomock "go.uber.org/mock/gomock"
	trace "go.opentelemetry.io/otel/trace"

	"github.com/canonical/account-service/internal/cache"
	"github.com/canonical/account-service/internal/clock"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package subscription -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package subscription -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package subscription -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package subscription -destination ./mock_interfaces.go -source=./interfaces.go

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	testExpiryGrace       = 72 * time.Hour
	testCancellationGrace = 30 * 24 * time.Hour
)

type serviceMocks struct {
	store   *MockStorageInterface
	cache   *MockSubscriptionCacheInterface
	tx      *MockCoordinatorInterface
	tracer  *MockTracingInterface
	monitor *MockMonitorInterface
	logger  *MockLoggerInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		store:   NewMockStorageInterface(ctrl),
		cache:   NewMockSubscriptionCacheInterface(ctrl),
		tx:      NewMockCoordinatorInterface(ctrl),
		tracer:  NewMockTracingInterface(ctrl),
		monitor: NewMockMonitorInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(
		m.store, m.cache, m.tx, clock.Fixed{T: testTime},
		testExpiryGrace, testCancellationGrace,
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

func TestService_CreateInitial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.CreateInitial").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.expectTransaction()

	expiresOn := testTime.Add(365 * 24 * time.Hour)
	m.store.EXPECT().CreateSubscription(gomock.Any(), &types.Subscription{
		AccountID: "acc-1",
		Plan:      "free",
		ExpiresOn: expiresOn,
	}).Return(&types.Subscription{ID: "sub-1", AccountID: "acc-1", Plan: "free", ExpiresOn: expiresOn}, nil)
	m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1", &cache.CachedSubscription{
		ID:        "sub-1",
		Plan:      "free",
		ExpiresOn: expiresOn,
	}).Return(nil)

	if err := m.service().CreateInitial(context.Background(), "acc-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_Get(t *testing.T) {
	expiresOn := testTime.Add(time.Hour)

	testCases := []struct {
		name       string
		setupMocks func(*serviceMocks)
	}{
		{
			name: "cache hit",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadSubscription(gomock.Any(), "acc-1").
					Return(&cache.CachedSubscription{ID: "sub-1", Plan: "pro", ExpiresOn: expiresOn}, true, nil)
			},
		},
		{
			name: "cache miss reads the store and syncs",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadSubscription(gomock.Any(), "acc-1").Return(nil, false, nil)
				m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").
					Return(&types.Subscription{ID: "sub-1", AccountID: "acc-1", Plan: "pro", ExpiresOn: expiresOn}, nil)
				m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1",
					&cache.CachedSubscription{ID: "sub-1", Plan: "pro", ExpiresOn: expiresOn}).Return(nil)
			},
		},
		{
			name: "cache failure falls back to the store",
			setupMocks: func(m *serviceMocks) {
				m.cache.EXPECT().LoadSubscription(gomock.Any(), "acc-1").
					Return(nil, false, errors.New("redis down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").
					Return(&types.Subscription{ID: "sub-1", AccountID: "acc-1", Plan: "pro", ExpiresOn: expiresOn}, nil)
				m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.Get").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(m)

			sub, err := m.service().Get(context.Background(), "acc-1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if sub.ID != "sub-1" || sub.Plan != "pro" {
				t.Fatalf("unexpected subscription %+v", sub)
			}
		})
	}
}

func TestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.Cancel").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.expectTransaction()

	expiresOn := testTime.Add(time.Hour)
	m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").
		Return(&types.Subscription{ID: "sub-1", AccountID: "acc-1", Plan: "pro", ExpiresOn: expiresOn}, nil)
	m.store.EXPECT().UpdateSubscription(gomock.Any(), gomock.Any(), []string{"canceled"}).DoAndReturn(
		func(ctx context.Context, sub *types.Subscription, paths []string) error {
			if !sub.Canceled {
				t.Fatal("expected the canceled flag to be set")
			}
			return nil
		},
	)
	m.store.EXPECT().CreateAccountDeletionRequest(gomock.Any(), &types.AccountDeletionRequest{
		AccountID:   "acc-1",
		RequestedBy: "owner-1",
		DueOn:       testTime.Add(testCancellationGrace),
	}).Return(nil)
	m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)

	if err := m.service().Cancel(context.Background(), "acc-1", "owner-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_Restore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.Restore").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.expectTransaction()

	m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").
		Return(&types.Subscription{ID: "sub-1", AccountID: "acc-1", Plan: "pro", Paused: true, Canceled: true}, nil)
	m.store.EXPECT().UpdateSubscription(gomock.Any(), gomock.Any(), []string{"paused", "canceled"}).DoAndReturn(
		func(ctx context.Context, sub *types.Subscription, paths []string) error {
			if sub.Paused || sub.Canceled {
				t.Fatal("expected the paused and canceled flags to be cleared")
			}
			return nil
		},
	)
	m.store.EXPECT().DeleteAccountDeletionRequests(gomock.Any(), "acc-1").Return(nil)
	m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)

	if err := m.service().Restore(context.Background(), "acc-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestService_ChangePlan(t *testing.T) {
	t.Run("records the plan change as an event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.ChangePlan").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		m.expectTransaction()

		m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").
			Return(&types.Subscription{ID: "sub-1", AccountID: "acc-1", Plan: "free", Expired: true}, nil)

		newExpiry := testTime.Add(30 * 24 * time.Hour)
		m.store.EXPECT().UpdateSubscription(gomock.Any(), gomock.Any(), []string{"plan", "expires_on", "expired"}).DoAndReturn(
			func(ctx context.Context, sub *types.Subscription, paths []string) error {
				if sub.Plan != "pro" || sub.Expired || !sub.ExpiresOn.Equal(newExpiry) {
					t.Fatalf("unexpected subscription update %+v", sub)
				}
				return nil
			},
		)
		paymentID := "pay-1"
		m.store.EXPECT().CreateSubscriptionEvent(gomock.Any(), &types.SubscriptionEvent{
			SubscriptionID: "sub-1",
			FromPlan:       "free",
			ToPlan:         "pro",
			Date:           testTime,
			ExpiresOn:      newExpiry,
			PaymentID:      &paymentID,
		}).Return(nil)
		m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)

		if err := m.service().ChangePlan(context.Background(), "acc-1", "pro", &paymentID); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("unknown plan is rejected before the transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newServiceMocks(ctrl)
		m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.ChangePlan").
			Return(context.Background(), trace.SpanFromContext(context.Background()))

		err := m.service().ChangePlan(context.Background(), "acc-1", "enterprise", nil)
		if !errors.Is(err, ErrUnknownPlan) {
			t.Fatalf("expected ErrUnknownPlan, got %v", err)
		}
	})
}

func TestService_GetStatus(t *testing.T) {
	testCases := []struct {
		name     string
		sub      *types.Subscription
		expected Status
	}{
		{
			name: "active",
			sub:  &types.Subscription{ID: "sub-1", Plan: "pro", ExpiresOn: testTime.Add(time.Hour)},
			expected: Status{
				Plan:   "pro",
				Active: true,
			},
		},
		{
			name: "expired but in grace period",
			sub:  &types.Subscription{ID: "sub-1", Plan: "pro", ExpiresOn: testTime.Add(-time.Hour)},
			expected: Status{
				Plan:          "pro",
				Active:        true,
				Expired:       true,
				InGracePeriod: true,
			},
		},
		{
			name: "expired past the grace period",
			sub:  &types.Subscription{ID: "sub-1", Plan: "pro", ExpiresOn: testTime.Add(-testExpiryGrace - time.Hour)},
			expected: Status{
				Plan:    "pro",
				Expired: true,
			},
		},
		{
			name: "paused",
			sub:  &types.Subscription{ID: "sub-1", Plan: "pro", ExpiresOn: testTime.Add(time.Hour), Paused: true},
			expected: Status{
				Plan:   "pro",
				Paused: true,
			},
		},
		{
			name: "canceled",
			sub:  &types.Subscription{ID: "sub-1", Plan: "pro", ExpiresOn: testTime.Add(time.Hour), Canceled: true},
			expected: Status{
				Plan:     "pro",
				Canceled: true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.GetStatus").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.Get").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			m.cache.EXPECT().LoadSubscription(gomock.Any(), "acc-1").Return(nil, false, nil)
			m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").Return(tc.sub, nil)
			m.cache.EXPECT().SyncSubscription(gomock.Any(), "acc-1", gomock.Any()).Return(nil)

			status, err := m.service().GetStatus(context.Background(), "acc-1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if *status != tc.expected {
				t.Fatalf("expected status %+v, got %+v", tc.expected, *status)
			}
		})
	}
}

func TestService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.tracer.EXPECT().Start(gomock.Any(), "subscription.Service.Get").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	m.cache.EXPECT().LoadSubscription(gomock.Any(), "acc-1").Return(nil, false, nil)
	m.store.EXPECT().GetSubscriptionByAccountID(gomock.Any(), "acc-1").Return(nil, storage.ErrNotFound)

	_, err := m.service().Get(context.Background(), "acc-1")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
