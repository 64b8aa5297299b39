// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/crm-gateway/internal/db"
	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/pkg/authentication"
	"github.com/canonical/crm-gateway/pkg/connect"
	"github.com/canonical/crm-gateway/pkg/metrics"
	"github.com/canonical/crm-gateway/pkg/status"
	"github.com/canonical/crm-gateway/pkg/tenant"
	"github.com/canonical/crm-gateway/pkg/webhooks"
)

func NewRouter(
	authenticator authentication.AuthenticatorInterface,
	tenantService tenant.ServiceInterface,
	connectService connect.ServiceInterface,
	webhookService webhooks.ServiceInterface,
	dbClient db.DBClientInterface,
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
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	connect.NewAPI(connectService, tracer, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhookService).RegisterEndpoints(router)

	tenantAPI := tenant.NewAPI(tenantService, tracer, logger)
	router.Group(func(r chi.Router) {
		// Keeps multi-statement admin actions atomic even when the
		// service layer does not open its own transaction.
		r.Use(db.TransactionMiddleware(dbClient, logger))
		tenantAPI.RegisterEndpoints(r)
	})

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(authenticator, tracer, monitor, logger).Authenticate())
		tenantAPI.RegisterAuthenticatedEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
