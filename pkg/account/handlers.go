// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/accounts", a.createAccount)
	mux.Get("/api/v0/accounts/{id}", a.getAccount)
	mux.Patch("/api/v0/accounts/{id}", a.renameAccount)
	mux.Delete("/api/v0/accounts/{id}", a.deleteAccount)
	mux.Put("/api/v0/accounts/{id}/owner", a.changeOwner)
	mux.Get("/api/v0/accounts/{id}/owner", a.getAccountOwner)

	mux.Get("/api/v0/accounts/{id}/members", a.listMembers)
	mux.Post("/api/v0/accounts/{id}/members/{userID}/removal", a.removeUser)
	mux.Put("/api/v0/accounts/{id}/members/{userID}/status", a.setUserStatus)
	mux.Get("/api/v0/accounts/{id}/members/{userID}/status", a.getUserStatus)
	mux.Get("/api/v0/accounts/{id}/members/{userID}/inviter", a.getUserInviter)

	mux.Post("/api/v0/accounts/{id}/members/{userID}/permissions", a.grantPermission)
	mux.Get("/api/v0/accounts/{id}/members/{userID}/permissions", a.getPermissions)
	mux.Delete("/api/v0/accounts/{id}/members/{userID}/permissions", a.revokeAllPermissions)
	mux.Delete("/api/v0/accounts/{id}/members/{userID}/permissions/{permission}", a.revokePermission)

	mux.Get("/api/v0/users/{userID}/accounts", a.getUserAccounts)
	mux.Get("/api/v0/users/{userID}/projects", a.getUserProjects)
}

type createAccountRequest struct {
	Name    string `json:"name" validate:"required"`
	OwnerID string `json:"owner_id" validate:"required"`
}

func (a *API) createAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	acc, err := a.service.CreateAccount(r.Context(), req.Name, req.OwnerID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusCreated, acc)
}

func (a *API) getAccount(w http.ResponseWriter, r *http.Request) {
	acc, err := a.service.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, acc)
}

type renameAccountRequest struct {
	Name string `json:"name" validate:"required"`
}

func (a *API) renameAccount(w http.ResponseWriter, r *http.Request) {
	var req renameAccountRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	if err := a.service.RenameAccount(r.Context(), chi.URLParam(r, "id"), req.Name); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := a.service.DeleteAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type changeOwnerRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (a *API) changeOwner(w http.ResponseWriter, r *http.Request) {
	var req changeOwnerRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	if err := a.service.ChangeOwner(r.Context(), chi.URLParam(r, "id"), req.UserID); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.service.ListMembers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, members)
}

type removeUserRequest struct {
	ActorID string `json:"actor_id" validate:"required"`
	Message string `json:"message"`
}

func (a *API) removeUser(w http.ResponseWriter, r *http.Request) {
	var req removeUserRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	err := a.service.RemoveUser(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"), req.ActorID, req.Message)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (a *API) setUserStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	err := a.service.SetUserStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"), types.MembershipStatus(req.Status))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) getUserStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.GetUserStatus(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, map[string]string{"status": string(status)})
}

type grantPermissionRequest struct {
	Permission string `json:"permission" validate:"required"`
}

func (a *API) grantPermission(w http.ResponseWriter, r *http.Request) {
	var req grantPermissionRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	err := a.service.GrantPermission(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"), types.Permission(req.Permission))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) getPermissions(w http.ResponseWriter, r *http.Request) {
	permissions, err := a.service.GetPermissions(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, map[string][]types.Permission{"permissions": permissions})
}

func (a *API) revokePermission(w http.ResponseWriter, r *http.Request) {
	err := a.service.RevokePermission(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"), types.Permission(chi.URLParam(r, "permission")))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) revokeAllPermissions(w http.ResponseWriter, r *http.Request) {
	if err := a.service.RevokeAllPermissions(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) getUserAccounts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if r.URL.Query().Get("expand") == "true" {
		accounts, err := a.service.GetUserAccounts(r.Context(), userID)
		if err != nil {
			a.serviceError(w, err)
			return
		}

		a.respond(w, http.StatusOK, accounts)
		return
	}

	accountIDs, err := a.service.GetUserAccountIDs(r.Context(), userID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, map[string][]string{"account_ids": accountIDs})
}

func (a *API) getUserProjects(w http.ResponseWriter, r *http.Request) {
	projectIDs, err := a.service.GetUserProjectIDs(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, map[string][]string{"project_ids": projectIDs})
}

func (a *API) getAccountOwner(w http.ResponseWriter, r *http.Request) {
	owner, err := a.service.GetAccountOwner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, owner)
}

func (a *API) getUserInviter(w http.ResponseWriter, r *http.Request) {
	inviter, err := a.service.GetUserInviterData(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "userID"))
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if inviter == nil {
		a.respond(w, http.StatusNotFound, map[string]string{"error": "user has no inviter"})
		return
	}

	a.respond(w, http.StatusOK, inviter)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return err
	}
	if err := a.validate.Struct(v); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return err
	}
	return nil
}

func (a *API) respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrUserHasAccount), errors.Is(err, ErrOwnerCannotBeRemoved):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInvalidPermission):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		a.logger.Errorf("request failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
