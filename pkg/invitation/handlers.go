// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/storage"
	"github.com/canonical/account-service/internal/types"
	"github.com/canonical/account-service/pkg/account"
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
	mux.Post("/api/v0/accounts/{id}/invitations", a.invite)
	mux.Get("/api/v0/accounts/{id}/invitations/{key}", a.getInvitationData)
	mux.Post("/api/v0/accounts/{id}/invitations/{key}/accept", a.accept)
	mux.Post("/api/v0/accounts/{id}/invitations/{key}/claim", a.claim)
	mux.Post("/api/v0/accounts/{id}/invitations/{key}/decline", a.decline)
}

type inviteRequest struct {
	Emails      []string `json:"emails" validate:"required,min=1"`
	InviterID   string   `json:"inviter_id" validate:"required"`
	ProjectIDs  []string `json:"project_ids"`
	Permissions []string `json:"permissions"`
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	permissions := make([]types.Permission, len(req.Permissions))
	for i, p := range req.Permissions {
		permissions[i] = types.Permission(p)
	}

	err := a.service.Invite(r.Context(), chi.URLParam(r, "id"), req.InviterID, req.Emails, req.ProjectIDs, permissions)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) getInvitationData(w http.ResponseWriter, r *http.Request) {
	data, err := a.service.GetInvitationData(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "key"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, data)
}

type acceptRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	err := a.service.Accept(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "key"), Signup{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type claimRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (a *API) claim(w http.ResponseWriter, r *http.Request) {
	var req claimRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	err := a.service.Claim(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "key"), req.UserID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type declineRequest struct {
	Message string `json:"message"`
}

func (a *API) decline(w http.ResponseWriter, r *http.Request) {
	var req declineRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	err := a.service.Decline(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "key"), req.Message)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
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
	case errors.Is(err, ErrLinkExpired):
		http.Error(w, err.Error(), http.StatusGone)
	case errors.Is(err, ErrLinkMismatch):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, account.ErrInvalidPermission), errors.Is(err, account.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		a.logger.Errorf("request failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
