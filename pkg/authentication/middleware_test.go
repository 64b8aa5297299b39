// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/monitoring"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
)

func TestMiddleware_Authenticate(t *testing.T) {
	testCases := []struct {
		name            string
		setupRequest    func(*http.Request)
		setupMocks      func(*MockAuthenticatorInterface)
		expectedStatus  int
		expectedMessage string
		expectedTenant  string
	}{
		{
			name: "valid bearer key",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer crmgw_secret")
			},
			setupMocks: func(authenticator *MockAuthenticatorInterface) {
				authenticator.EXPECT().Authenticate(gomock.Any(), "crmgw_secret").
					Return(&types.TenantAuthResult{TenantID: "tenant-1", AuthMethod: types.AuthMethodDirect}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTenant: "tenant-1",
		},
		{
			name: "valid x-api-key header",
			setupRequest: func(r *http.Request) {
				r.Header.Set("X-API-Key", "crmgw_secret")
			},
			setupMocks: func(authenticator *MockAuthenticatorInterface) {
				authenticator.EXPECT().Authenticate(gomock.Any(), "crmgw_secret").
					Return(&types.TenantAuthResult{TenantID: "tenant-2", AuthMethod: types.AuthMethodOAuth}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedTenant: "tenant-2",
		},
		{
			name:            "no credentials",
			setupRequest:    func(*http.Request) {},
			setupMocks:      func(*MockAuthenticatorInterface) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "missing credentials",
		},
		{
			name: "malformed authorization header",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			},
			setupMocks:      func(*MockAuthenticatorInterface) {},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "missing credentials",
		},
		{
			name: "invalid key",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer crmgw_wrong")
			},
			setupMocks: func(authenticator *MockAuthenticatorInterface) {
				authenticator.EXPECT().Authenticate(gomock.Any(), "crmgw_wrong").
					Return(nil, ErrInvalidCredential)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "invalid credentials",
		},
		{
			name: "suspended tenant",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer crmgw_suspended")
			},
			setupMocks: func(authenticator *MockAuthenticatorInterface) {
				authenticator.EXPECT().Authenticate(gomock.Any(), "crmgw_suspended").
					Return(nil, ErrTenantSuspended)
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "account is not active",
		},
		{
			name: "backend failure is opaque",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer crmgw_secret")
			},
			setupMocks: func(authenticator *MockAuthenticatorInterface) {
				authenticator.EXPECT().Authenticate(gomock.Any(), "crmgw_secret").
					Return(nil, http.ErrHandlerTimeout)
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			authenticator := NewMockAuthenticatorInterface(ctrl)
			tc.setupMocks(authenticator)

			middleware := NewMiddleware(authenticator, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			var seenTenant string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if result, ok := TenantFromContext(r.Context()); ok {
					seenTenant = result.TenantID
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/contacts", nil)
			tc.setupRequest(req)
			rr := httptest.NewRecorder()

			middleware.Authenticate()(next).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			if tc.expectedStatus == http.StatusOK {
				if seenTenant != tc.expectedTenant {
					t.Errorf("expected tenant %q in context, got %q", tc.expectedTenant, seenTenant)
				}
				return
			}

			var body map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body["message"] != tc.expectedMessage {
				t.Errorf("expected message %q, got %q", tc.expectedMessage, body["message"])
			}
		})
	}
}
