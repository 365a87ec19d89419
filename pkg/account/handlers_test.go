// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
)

func setupAPI(t *testing.T) (*MockServiceInterface, *MockLoggerInterface, *chi.Mux) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockServiceInterface(ctrl)
	logger := NewMockLoggerInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(service, logger).RegisterEndpoints(mux)

	return service, logger, mux
}

func TestHandleCreateAccount(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"name": "Acme", "owner_id": "user-1"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CreateAccount(gomock.Any(), "Acme", "user-1").
					Return(&types.Account{ID: "acc-1", Name: "Acme", OwnerID: "user-1"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "malformed body",
			body:         `{"name": `,
			setupMocks:   func(service *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing owner",
			body:         `{"name": "Acme"}`,
			setupMocks:   func(service *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "owner already has an account",
			body: `{"name": "Acme", "owner_id": "user-1"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CreateAccount(gomock.Any(), "Acme", "user-1").Return(nil, ErrUserHasAccount)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, mux := setupAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/accounts", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, rr.Code, rr.Body.String())
			}

			if tc.expectedCode == http.StatusCreated {
				var acc types.Account
				if err := json.NewDecoder(rr.Body).Decode(&acc); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if acc.ID != "acc-1" {
					t.Fatalf("expected account acc-1, got %+v", acc)
				}
			}
		})
	}
}

func TestHandleGetAccount(t *testing.T) {
	testCases := []struct {
		name         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().GetAccount(gomock.Any(), "acc-1").
					Return(&types.Account{ID: "acc-1", Name: "Acme"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().GetAccount(gomock.Any(), "acc-1").Return(nil, storage.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, mux := setupAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodGet, "/api/v0/accounts/acc-1", nil)
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleRemoveUser(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"actor_id": "owner-1"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().RemoveUser(gomock.Any(), "acc-1", "user-1", "owner-1", "").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "self removal with message",
			body: `{"actor_id": "user-1", "message": "bye"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().RemoveUser(gomock.Any(), "acc-1", "user-1", "user-1", "bye").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing actor",
			body:         `{"message": "bye"}`,
			setupMocks:   func(service *MockServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "owner cannot be removed",
			body: `{"actor_id": "owner-1"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().RemoveUser(gomock.Any(), "acc-1", "user-1", "owner-1", "").
					Return(ErrOwnerCannotBeRemoved)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, mux := setupAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/accounts/acc-1/members/user-1/removal", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedCode, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestHandleSetUserStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		setupMocks   func(*MockServiceInterface)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"status": "LINKED"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().SetUserStatus(gomock.Any(), "acc-1", "user-1", types.StatusLinked).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid transition",
			body: `{"status": "LINKED"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().SetUserStatus(gomock.Any(), "acc-1", "user-1", types.StatusLinked).
					Return(ErrInvalidTransition)
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _, mux := setupAPI(t)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPut, "/api/v0/accounts/acc-1/members/user-1/status", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedCode {
				t.Fatalf("expected status %d, got %d", tc.expectedCode, rr.Code)
			}
		})
	}
}

func TestHandleGetPermissions(t *testing.T) {
	service, _, mux := setupAPI(t)
	service.EXPECT().GetPermissions(gomock.Any(), "acc-1", "user-1").
		Return([]types.Permission{types.PermAdmin, types.PermCreateProjects}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/accounts/acc-1/members/user-1/permissions", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body map[string][]types.Permission
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body["permissions"]) != 2 {
		t.Fatalf("expected 2 permissions, got %v", body)
	}
}

func TestHandleRevokePermission(t *testing.T) {
	service, _, mux := setupAPI(t)
	service.EXPECT().RevokePermission(gomock.Any(), "acc-1", "user-1", types.PermAdmin).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v0/accounts/acc-1/members/user-1/permissions/ADMIN", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestHandleGetUserAccounts(t *testing.T) {
	service, _, mux := setupAPI(t)
	service.EXPECT().GetUserAccountIDs(gomock.Any(), "user-1").Return([]string{"acc-1", "acc-2"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/users/user-1/accounts", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body map[string][]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body["account_ids"]) != 2 {
		t.Fatalf("expected 2 account ids, got %v", body)
	}
}

func TestHandleGetUserProjects(t *testing.T) {
	service, _, mux := setupAPI(t)
	service.EXPECT().GetUserProjectIDs(gomock.Any(), "user-1").Return([]string{"proj-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/users/user-1/projects", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body map[string][]string
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(body["project_ids"]) != 1 {
		t.Fatalf("expected 1 project id, got %v", body)
	}
}
