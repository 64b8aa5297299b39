// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/tracing"
)

type Middleware struct {
	authenticator AuthenticatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the request's API key into a tenant identity and
// injects it into the request context. Responses never say which part of
// the credential failed.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			rawKey, found := m.getAPIKey(r.Header)
			if !found {
				m.errorResponse(w, http.StatusUnauthorized, "missing credentials")
				return
			}

			result, err := m.authenticator.Authenticate(ctx, rawKey)
			if err != nil {
				switch {
				case errors.Is(err, ErrInvalidCredential):
					m.errorResponse(w, http.StatusUnauthorized, "invalid credentials")
				case errors.Is(err, ErrTenantSuspended):
					m.errorResponse(w, http.StatusForbidden, "account is not active")
				default:
					m.logger.Errorf("authentication failed: %v", err)
					m.errorResponse(w, http.StatusInternalServerError, "internal error")
				}
				return
			}

			ctx = WithTenant(ctx, result)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) getAPIKey(headers http.Header) (string, bool) {
	// Only support "Bearer <key>" format (RFC 6750)
	bearer := headers.Get("Authorization")
	if bearer != "" && strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer "), true
	}

	if key := headers.Get("X-API-Key"); key != "" {
		return key, true
	}

	return "", false
}

func (m *Middleware) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  status,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(authenticator AuthenticatorInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authenticator: authenticator,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
