// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAccountCache_LoadAccounts(t *testing.T) {
	userID := "user-123"
	cacheErr := errors.New("cache error")

	testCases := []struct {
		name          string
		setupMocks    func(*MockCacheClientInterface)
		expectedIDs   []string
		expectedFound bool
		expectedErr   error
	}{
		{
			name: "hit",
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().HGet(gomock.Any(), "usr_accuser-123", "a").Return(`["acc-1","acc-2"]`, nil)
			},
			expectedIDs:   []string{"acc-1", "acc-2"},
			expectedFound: true,
		},
		{
			name: "authoritative empty",
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().HGet(gomock.Any(), "usr_accuser-123", "a").Return(`[]`, nil)
			},
			expectedIDs:   []string{},
			expectedFound: true,
		},
		{
			name: "miss",
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().HGet(gomock.Any(), "usr_accuser-123", "a").Return("", ErrNotFound)
			},
			expectedIDs:   nil,
			expectedFound: false,
		},
		{
			name: "client error",
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().HGet(gomock.Any(), "usr_accuser-123", "a").Return("", cacheErr)
			},
			expectedErr: cacheErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockCacheClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			c := NewAccountCache(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "cache.LoadAccounts").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			ids, found, err := c.LoadAccounts(context.Background(), userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if found != tc.expectedFound {
				t.Errorf("expected found %v, got %v", tc.expectedFound, found)
			}
			if !reflect.DeepEqual(ids, tc.expectedIDs) {
				t.Errorf("expected ids %v, got %v", tc.expectedIDs, ids)
			}
		})
	}
}

func TestAccountCache_SyncAccounts(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name       string
		accountIDs []string
		setupMocks func(*MockCacheClientInterface)
	}{
		{
			name:       "values",
			accountIDs: []string{"acc-1", "acc-2"},
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().HSet(gomock.Any(), "usr_accuser-123", map[string]string{"a": `["acc-1","acc-2"]`}).Return(nil)
			},
		},
		{
			name:       "nil becomes empty list",
			accountIDs: nil,
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().HSet(gomock.Any(), "usr_accuser-123", map[string]string{"a": `[]`}).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockCacheClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			c := NewAccountCache(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "cache.SyncAccounts").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			if err := c.SyncAccounts(context.Background(), userID, tc.accountIDs); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAccountCache_SyncPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockCacheClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	c := NewAccountCache(mockClient, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "cache.SyncPermissions").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockClient.EXPECT().HSet(gomock.Any(), "usr_accuser-123", map[string]string{"aacc-1": `["ADMIN","CREATE_PROJECTS"]`}).Return(nil)

	err := c.SyncPermissions(context.Background(), "user-123", "acc-1", []string{"ADMIN", "CREATE_PROJECTS"})
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAccountCache_LoadSubscription(t *testing.T) {
	accountID := "acc-1"
	expiresOn := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMocks    func(*MockCacheClientInterface)
		expectedSub   *CachedSubscription
		expectedFound bool
	}{
		{
			name: "hit",
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().Get(gomock.Any(), "subscracc-1").
					Return(`{"id":"sub-1","plan":"pro","expires_on":"2026-10-01T00:00:00Z","expired":false,"paused":false,"canceled":false}`, nil)
			},
			expectedSub:   &CachedSubscription{ID: "sub-1", Plan: "pro", ExpiresOn: expiresOn},
			expectedFound: true,
		},
		{
			name: "miss",
			setupMocks: func(mockClient *MockCacheClientInterface) {
				mockClient.EXPECT().Get(gomock.Any(), "subscracc-1").Return("", ErrNotFound)
			},
			expectedSub:   nil,
			expectedFound: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockCacheClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			c := NewAccountCache(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "cache.LoadSubscription").Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			sub, found, err := c.LoadSubscription(context.Background(), accountID)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if found != tc.expectedFound {
				t.Errorf("expected found %v, got %v", tc.expectedFound, found)
			}
			if !reflect.DeepEqual(sub, tc.expectedSub) {
				t.Errorf("expected subscription %+v, got %+v", tc.expectedSub, sub)
			}
		})
	}
}

func TestAccountCache_DeleteUserData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockCacheClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	c := NewAccountCache(mockClient, mockTracer, mockMonitor, mockLogger)

	mockTracer.EXPECT().Start(gomock.Any(), "cache.DeleteUserData").Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockClient.EXPECT().Del(gomock.Any(), "usr_accuser-123").Return(nil)

	if err := c.DeleteUserData(context.Background(), "user-123"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
