// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/account-service/internal/logging"
	"github.com/canonical/account-service/internal/monitoring"
	"github.com/canonical/account-service/internal/tracing"
	"github.com/canonical/account-service/pkg/account"
	"github.com/canonical/account-service/pkg/gc"
	"github.com/canonical/account-service/pkg/invitation"
	"github.com/canonical/account-service/pkg/metrics"
	"github.com/canonical/account-service/pkg/status"
	"github.com/canonical/account-service/pkg/subscription"
)

func NewRouter(
	accountAPI *account.API,
	invitationAPI *invitation.API,
	subscriptionAPI *subscription.API,
	gcAPI *gc.API,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		}),
	)

	router.Use(middlewares...)

	statusAPI := status.NewAPI(tracer, monitor, logger)
	metricsAPI := metrics.NewAPI(logger)

	statusAPI.RegisterEndpoints(router)
	metricsAPI.RegisterEndpoints(router)
	accountAPI.RegisterEndpoints(router)
	invitationAPI.RegisterEndpoints(router)
	subscriptionAPI.RegisterEndpoints(router)
	gcAPI.RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
