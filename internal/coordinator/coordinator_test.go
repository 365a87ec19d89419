// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package coordinator

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package coordinator -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package coordinator -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package coordinator -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package coordinator -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestCoordinator_WithTransaction(t *testing.T) {
	fnErr := errors.New("fn error")
	flushErr := errors.New("flush error")

	testCases := []struct {
		name        string
		fn          func(context.Context) error
		setupMocks  func(*MockTxRunnerInterface, *MockCacheSessionInterface, *MockLoggerInterface, *MockMonitorInterface)
		expectedErr error
	}{
		{
			name: "success commits db then cache",
			fn:   func(ctx context.Context) error { return nil },
			setupMocks: func(mockDB *MockTxRunnerInterface, mockCache *MockCacheSessionInterface, mockLogger *MockLoggerInterface, mockMonitor *MockMonitorInterface) {
				mockCache.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) context.Context { return ctx })
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
				)
				mockCache.EXPECT().Commit(gomock.Any()).Return(nil)
			},
		},
		{
			name: "fn error aborts cache session",
			fn:   func(ctx context.Context) error { return fnErr },
			setupMocks: func(mockDB *MockTxRunnerInterface, mockCache *MockCacheSessionInterface, mockLogger *MockLoggerInterface, mockMonitor *MockMonitorInterface) {
				mockCache.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) context.Context { return ctx })
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
				)
				mockCache.EXPECT().Abort(gomock.Any())
			},
			expectedErr: fnErr,
		},
		{
			name: "cache flush failure does not fail the transaction",
			fn:   func(ctx context.Context) error { return nil },
			setupMocks: func(mockDB *MockTxRunnerInterface, mockCache *MockCacheSessionInterface, mockLogger *MockLoggerInterface, mockMonitor *MockMonitorInterface) {
				mockCache.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) context.Context { return ctx })
				mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
				)
				mockCache.EXPECT().Commit(gomock.Any()).Return(flushErr)
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
				mockMonitor.EXPECT().SetDependencyAvailability(map[string]string{"component": "cache"}, float64(0)).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDB := NewMockTxRunnerInterface(ctrl)
			mockCache := NewMockCacheSessionInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			c := NewCoordinator(mockDB, mockCache, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "coordinator.WithTransaction").DoAndReturn(
				func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			tc.setupMocks(mockDB, mockCache, mockLogger, mockMonitor)

			err := c.WithTransaction(context.Background(), tc.fn)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCoordinator_WithTransactionNested(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := NewMockTxRunnerInterface(ctrl)
	mockCache := NewMockCacheSessionInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	c := NewCoordinator(mockDB, mockCache, mockTracer, mockMonitor, mockLogger)

	// The outer call begins and commits exactly once, the nested call joins it.
	mockTracer.EXPECT().Start(gomock.Any(), "coordinator.WithTransaction").DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	mockCache.EXPECT().Begin(gomock.Any()).DoAndReturn(func(ctx context.Context) context.Context { return ctx })
	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	)
	mockCache.EXPECT().Commit(gomock.Any()).Return(nil)

	nestedRan := false
	err := c.WithTransaction(context.Background(), func(ctx context.Context) error {
		return c.WithTransaction(ctx, func(ctx context.Context) error {
			nestedRan = true
			return nil
		})
	})

	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !nestedRan {
		t.Error("expected nested function to run")
	}
}

func TestCoordinator_WithTransactionNoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB := NewMockTxRunnerInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	c := NewCoordinator(mockDB, nil, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "coordinator.WithTransaction").DoAndReturn(
		func(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		},
	)
	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	)

	if err := c.WithTransaction(context.Background(), func(ctx context.Context) error { return nil }); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
