// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gc

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"go.opentelemetry.io/otel/trace"

	"github.com/canonical/account-service/internal/clock"
)

//go:generate mockgen -build_flags=--mod=mod -package gc -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gc -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gc -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package gc -destination ./mock_interfaces.go -source=./interfaces.go

var testTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

const (
	testExpiryGrace = 72 * time.Hour
	testTrashGrace  = 30 * 24 * time.Hour
)

type collectorMocks struct {
	store    *MockStorageInterface
	accounts *MockAccountServiceInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
}

func newCollectorMocks(ctrl *gomock.Controller) *collectorMocks {
	return &collectorMocks{
		store:    NewMockStorageInterface(ctrl),
		accounts: NewMockAccountServiceInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}
}

func (m *collectorMocks) collector() *Collector {
	return NewCollector(
		m.store,
		m.accounts,
		clock.Fixed{T: testTime},
		testExpiryGrace,
		testTrashGrace,
		m.tracer,
		m.monitor,
		m.logger,
	)
}

func TestCollector_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newCollectorMocks(ctrl)

	mocks.tracer.EXPECT().Start(gomock.Any(), "gc.Collector.Run").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mocks.store.EXPECT().DeleteExpiredInvitationLinks(gomock.Any(), testTime).Return(int64(3), nil)
	mocks.store.EXPECT().MarkSubscriptionsExpired(gomock.Any(), testTime.Add(-testExpiryGrace)).Return(int64(2), nil)
	mocks.store.EXPECT().ListDueAccountDeletions(gomock.Any(), testTime).Return([]string{"acc-1", "acc-2"}, nil)
	mocks.accounts.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(nil)
	mocks.accounts.EXPECT().DeleteAccount(gomock.Any(), "acc-2").Return(nil)
	mocks.store.EXPECT().DeleteTrashedProjects(gomock.Any(), testTime.Add(-testTrashGrace)).Return(int64(5), nil)

	result, err := mocks.collector().Run(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := Result{
		ExpiredInvitationLinks: 3,
		ExpiredSubscriptions:   2,
		DeletedAccounts:        2,
		DeletedProjects:        5,
	}
	if *result != expected {
		t.Fatalf("expected result %+v, got %+v", expected, *result)
	}
}

func TestCollector_RunContinuesAfterSweepFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newCollectorMocks(ctrl)

	mocks.tracer.EXPECT().Start(gomock.Any(), "gc.Collector.Run").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mocks.store.EXPECT().DeleteExpiredInvitationLinks(gomock.Any(), testTime).
		Return(int64(0), fmt.Errorf("connection reset"))
	mocks.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
	mocks.store.EXPECT().MarkSubscriptionsExpired(gomock.Any(), testTime.Add(-testExpiryGrace)).Return(int64(1), nil)
	mocks.store.EXPECT().ListDueAccountDeletions(gomock.Any(), testTime).Return([]string{}, nil)
	mocks.store.EXPECT().DeleteTrashedProjects(gomock.Any(), testTime.Add(-testTrashGrace)).Return(int64(0), nil)

	result, err := mocks.collector().Run(context.Background())

	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "connection reset") {
		t.Fatalf("expected error to mention the failing sweep, got %v", err)
	}
	if result.ExpiredSubscriptions != 1 {
		t.Fatalf("expected the other sweeps to run, got %+v", *result)
	}
}

func TestCollector_RunDeletesRemainingAccountsOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newCollectorMocks(ctrl)

	mocks.tracer.EXPECT().Start(gomock.Any(), "gc.Collector.Run").
		Return(context.Background(), trace.SpanFromContext(context.Background()))

	mocks.store.EXPECT().DeleteExpiredInvitationLinks(gomock.Any(), testTime).Return(int64(0), nil)
	mocks.store.EXPECT().MarkSubscriptionsExpired(gomock.Any(), testTime.Add(-testExpiryGrace)).Return(int64(0), nil)
	mocks.store.EXPECT().ListDueAccountDeletions(gomock.Any(), testTime).
		Return([]string{"acc-1", "acc-2", "acc-3"}, nil)
	mocks.accounts.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(nil)
	mocks.accounts.EXPECT().DeleteAccount(gomock.Any(), "acc-2").Return(fmt.Errorf("deadlock detected"))
	mocks.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
	mocks.accounts.EXPECT().DeleteAccount(gomock.Any(), "acc-3").Return(nil)
	mocks.store.EXPECT().DeleteTrashedProjects(gomock.Any(), testTime.Add(-testTrashGrace)).Return(int64(0), nil)

	result, err := mocks.collector().Run(context.Background())

	if err == nil {
		t.Fatal("expected an error")
	}
	if result.DeletedAccounts != 2 {
		t.Fatalf("expected 2 deleted accounts, got %d", result.DeletedAccounts)
	}
}
