// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package subscription

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/storage"
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
	mux.Get("/api/v0/plans", a.listPlans)

	mux.Get("/api/v0/accounts/{id}/subscription", a.getSubscription)
	mux.Get("/api/v0/accounts/{id}/subscription/status", a.getStatus)
	mux.Post("/api/v0/accounts/{id}/subscription/pause", a.pause)
	mux.Post("/api/v0/accounts/{id}/subscription/cancel", a.cancel)
	mux.Post("/api/v0/accounts/{id}/subscription/restore", a.restore)
	mux.Post("/api/v0/accounts/{id}/subscription/extend", a.extend)
	mux.Put("/api/v0/accounts/{id}/subscription/plan", a.changePlan)
}

func (a *API) listPlans(w http.ResponseWriter, r *http.Request) {
	a.respond(w, http.StatusOK, map[string][]Plan{"plans": Plans()})
}

func (a *API) getSubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := a.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, sub)
}

func (a *API) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := a.service.GetStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.respond(w, http.StatusOK, status)
}

func (a *API) pause(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Pause(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type cancelRequest struct {
	RequestedBy string `json:"requested_by" validate:"required"`
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	if err := a.service.Cancel(r.Context(), chi.URLParam(r, "id"), req.RequestedBy); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) restore(w http.ResponseWriter, r *http.Request) {
	if err := a.service.Restore(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type extendRequest struct {
	ExpiresOn time.Time `json:"expires_on" validate:"required"`
	PaymentID *string   `json:"payment_id"`
}

func (a *API) extend(w http.ResponseWriter, r *http.Request) {
	var req extendRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	if err := a.service.Extend(r.Context(), chi.URLParam(r, "id"), req.ExpiresOn, req.PaymentID); err != nil {
		a.serviceError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

type changePlanRequest struct {
	Plan      string  `json:"plan" validate:"required"`
	PaymentID *string `json:"payment_id"`
}

func (a *API) changePlan(w http.ResponseWriter, r *http.Request) {
	var req changePlanRequest
	if err := a.decode(w, r, &req); err != nil {
		return
	}

	if err := a.service.ChangePlan(r.Context(), chi.URLParam(r, "id"), req.Plan, req.PaymentID); err != nil {
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
	case errors.Is(err, ErrUnknownPlan):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		a.logger.Errorf("request failed: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
