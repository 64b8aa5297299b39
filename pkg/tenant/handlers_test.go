// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/storage"
	"github.com/canonical/crm-gateway/internal/tracing"
	"github.com/canonical/crm-gateway/internal/types"
	"github.com/canonical/crm-gateway/pkg/authentication"
)

func newTestRouter(service ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	api := NewAPI(service, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)
	api.RegisterAuthenticatedEndpoints(mux)
	return mux
}

func TestAPI_Signup(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "valid signup",
			body: `{"subdomain": "acme", "plan": "pro", "crm_api_key": "crm-secret-key"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Signup(gomock.Any(), "acme", "pro", "crm-secret-key").
					Return(&SignupResult{
						Tenant: &types.Tenant{ID: "tenant-1", Subdomain: "acme", Plan: "pro", Status: types.StatusActive},
						APIKey: "crmgw_raw-key",
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           `{`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing subdomain",
			body:           `{"plan": "pro"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown plan",
			body:           `{"subdomain": "acme", "plan": "platinum"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "subdomain with invalid characters",
			body:           `{"subdomain": "ac me!", "plan": "pro"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "subdomain taken",
			body: `{"subdomain": "acme", "plan": "pro"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().Signup(gomock.Any(), "acme", "pro", "").
					Return(nil, ErrSubdomainTaken)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}

			if tc.expectedStatus == http.StatusCreated {
				var body map[string]interface{}
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body["api_key"] != "crmgw_raw-key" {
					t.Errorf("expected the raw key in the response, got %v", body["api_key"])
				}
			}
		})
	}
}

func TestAPI_RotateKey(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "default policy revokes existing keys",
			body: "",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().RotateAPIKey(gomock.Any(), "tenant-1", storage.RotationRevokeExisting).
					Return("crmgw_rotated", nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "keep existing keys",
			body: `{"rotation_policy": "keep_existing"}`,
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().RotateAPIKey(gomock.Any(), "tenant-1", storage.RotationKeepExisting).
					Return("crmgw_rotated", nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unknown policy",
			body:           `{"rotation_policy": "burn_everything"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown tenant",
			body: "",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().RotateAPIKey(gomock.Any(), "tenant-1", storage.RotationRevokeExisting).
					Return("", storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/keys", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_StatusActions(t *testing.T) {
	t.Run("suspend", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().SuspendTenant(gomock.Any(), "tenant-1").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/suspend", nil)
		rr := httptest.NewRecorder()

		newTestRouter(service).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})

	t.Run("reactivate invalid transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().ReactivateTenant(gomock.Any(), "tenant-1").Return(ErrInvalidTransition)

		req := httptest.NewRequest(http.MethodPost, "/api/v0/tenants/tenant-1/reactivate", nil)
		rr := httptest.NewRecorder()

		newTestRouter(service).ServeHTTP(rr, req)

		if rr.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rr.Code)
		}
	})
}

func TestAPI_Self(t *testing.T) {
	t.Run("redacts the access token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().GetTenantConfig(gomock.Any(), "tenant-1").
			Return(&types.TenantConfig{
				TenantID:       "tenant-1",
				Subdomain:      "acme",
				Plan:           "pro",
				AuthMethod:     types.AuthMethodOAuth,
				CRMLocationID:  "loc-1",
				CRMAccessToken: "super-secret-token",
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/self", nil)
		req = req.WithContext(authentication.WithTenant(req.Context(), &types.TenantAuthResult{
			TenantID:   "tenant-1",
			AuthMethod: types.AuthMethodOAuth,
		}))
		rr := httptest.NewRecorder()

		newTestRouter(service).ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if strings.Contains(rr.Body.String(), "super-secret-token") {
			t.Error("access token leaked into the response")
		}
	})

	t.Run("no identity in context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants/self", nil)
		rr := httptest.NewRecorder()

		newTestRouter(service).ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rr.Code)
		}
	})
}
