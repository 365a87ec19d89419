// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package gc

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/account-service/internal/logging"
)

type API struct {
	collector CollectorInterface
	logger    logging.LoggerInterface
}

func NewAPI(collector CollectorInterface, logger logging.LoggerInterface) *API {
	return &API{
		collector: collector,
		logger:    logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/gc", a.run)
}

func (a *API) run(w http.ResponseWriter, r *http.Request) {
	result, err := a.collector.Run(r.Context())
	if err != nil {
		// Partial runs still return their counts, the failures are logged.
		a.logger.Errorf("garbage collection finished with errors: %v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}
