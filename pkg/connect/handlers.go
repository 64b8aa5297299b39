// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connect

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/tracing"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/connect/authorize", a.authorize)
	mux.Get("/api/v0/connect/callback", a.callback)
}

func (a *API) authorize(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connect.API.authorize")
	defer span.End()

	// tenant_id is empty for first-time installations
	tenantID := r.URL.Query().Get("tenant_id")

	authURL, err := a.service.BeginAuthorization(ctx, tenantID)
	if err != nil {
		a.logger.Errorf("failed to begin authorization: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "failed to start authorization")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

func (a *API) callback(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "connect.API.callback")
	defer span.End()

	state := r.URL.Query().Get("state")
	code := r.URL.Query().Get("code")
	if state == "" || code == "" {
		a.errorResponse(w, http.StatusBadRequest, "state and code are required")
		return
	}

	result, err := a.service.CompleteAuthorization(ctx, state, code)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOrExpiredState):
			a.errorResponse(w, http.StatusBadRequest, "authorization flow is invalid or has expired, please restart it")
		case errors.Is(err, ErrCodeExchangeFailed):
			a.errorResponse(w, http.StatusBadGateway, "authorization could not be completed with the CRM")
		default:
			a.logger.Errorf("failed to complete authorization: %v", err)
			a.errorResponse(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "linked",
		"result": result,
	}); err != nil {
		a.logger.Errorf("failed to encode callback response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}
