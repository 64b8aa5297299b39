// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/pkg/authentication"
)

type SignupRequest struct {
	Subdomain string `json:"subdomain" validate:"required,hostname_rfc1123,min=3,max=63"`
	Plan      string `json:"plan" validate:"required,oneof=free starter pro enterprise"`
	// CRMAPIKey is only set for direct-auth tenants. It is encrypted at
	// rest and never echoed back.
	CRMAPIKey string `json:"crm_api_key,omitempty" validate:"omitempty,min=8"`
}

type RotateKeyRequest struct {
	RotationPolicy string `json:"rotation_policy" validate:"omitempty,oneof=revoke_existing keep_existing"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		logger:   logger,
	}
}

// RegisterEndpoints mounts the administrative tenant surface.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v0/tenants", a.signup)
	router.Post("/api/v0/tenants/{id}/keys", a.rotateKey)
	router.Post("/api/v0/tenants/{id}/suspend", a.suspend)
	router.Post("/api/v0/tenants/{id}/reactivate", a.reactivate)
}

// RegisterAuthenticatedEndpoints mounts the routes that require a tenant
// identity in the request context.
func (a *API) RegisterAuthenticatedEndpoints(router chi.Router) {
	router.Get("/api/v0/tenants/self", a.self)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.signup")
	defer span.End()

	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid signup payload")
		return
	}

	result, err := a.service.Signup(ctx, req.Subdomain, req.Plan, req.CRMAPIKey)
	if err != nil {
		if errors.Is(err, ErrSubdomainTaken) {
			a.errorResponse(w, http.StatusConflict, "subdomain is already taken")
			return
		}
		a.logger.Errorf("failed to sign up tenant: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}

	// the raw API key appears in this response and nowhere else
	a.jsonResponse(w, http.StatusCreated, map[string]interface{}{
		"tenant": map[string]interface{}{
			"id":        result.Tenant.ID,
			"subdomain": result.Tenant.Subdomain,
			"plan":      result.Tenant.Plan,
			"status":    result.Tenant.Status,
		},
		"api_key": result.APIKey,
	})
}

func (a *API) rotateKey(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.rotateKey")
	defer span.End()

	tenantID := chi.URLParam(r, "id")

	req := RotateKeyRequest{RotationPolicy: "revoke_existing"}
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			a.errorResponse(w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if err := a.validate.Struct(req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, "invalid rotation payload")
		return
	}

	policy := storage.RotationRevokeExisting
	if req.RotationPolicy == "keep_existing" {
		policy = storage.RotationKeepExisting
	}

	rawKey, err := a.service.RotateAPIKey(ctx, tenantID, policy)
	if err != nil {
		a.statusError(w, err, "failed to rotate API key")
		return
	}

	a.jsonResponse(w, http.StatusCreated, map[string]interface{}{
		"api_key": rawKey,
	})
}

func (a *API) suspend(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.suspend")
	defer span.End()

	if err := a.service.SuspendTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.statusError(w, err, "failed to suspend tenant")
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]interface{}{"status": "suspended"})
}

func (a *API) reactivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.reactivate")
	defer span.End()

	if err := a.service.ReactivateTenant(ctx, chi.URLParam(r, "id")); err != nil {
		a.statusError(w, err, "failed to reactivate tenant")
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]interface{}{"status": "active"})
}

func (a *API) self(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "tenant.API.self")
	defer span.End()

	identity, ok := authentication.TenantFromContext(ctx)
	if !ok {
		a.errorResponse(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	config, err := a.service.GetTenantConfig(ctx, identity.TenantID)
	if err != nil {
		a.logger.Errorf("failed to resolve tenant config: %v", err)
		a.errorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}
	if config == nil {
		a.errorResponse(w, http.StatusNotFound, "tenant not found")
		return
	}

	// CRMAccessToken is deliberately absent from this response
	a.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"tenant_id":       config.TenantID,
		"subdomain":       config.Subdomain,
		"plan":            config.Plan,
		"auth_method":     config.AuthMethod,
		"crm_location_id": config.CRMLocationID,
	})
}

func (a *API) statusError(w http.ResponseWriter, err error, logMessage string) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.errorResponse(w, http.StatusNotFound, "tenant not found")
	case errors.Is(err, ErrInvalidTransition):
		a.errorResponse(w, http.StatusConflict, "tenant is not in a valid state for this action")
	default:
		a.logger.Errorf("%s: %v", logMessage, err)
		a.errorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

func (a *API) jsonResponse(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) errorResponse(w http.ResponseWriter, status int, message string) {
	a.jsonResponse(w, status, map[string]interface{}{
		"status":  status,
		"message": message,
	})
}
