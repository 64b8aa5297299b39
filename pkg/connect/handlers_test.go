// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package connect

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/crm-gateway/internal/logging"
	"github.com/canonical/crm-gateway/internal/tracing"
)

func newTestRouter(service ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	api := NewAPI(service, tracing.NewNoopTracer(), logging.NewNoopLogger())
	api.RegisterEndpoints(mux)
	return mux
}

func TestAPI_Authorize(t *testing.T) {
	t.Run("redirects to the CRM", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().BeginAuthorization(gomock.Any(), "tenant-1").
			Return("https://crm.example.com/oauth/authorize?state=abc", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/connect/authorize?tenant_id=tenant-1", nil)
		rr := httptest.NewRecorder()

		newTestRouter(service).ServeHTTP(rr, req)

		if rr.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", rr.Code)
		}
		if loc := rr.Header().Get("Location"); loc != "https://crm.example.com/oauth/authorize?state=abc" {
			t.Errorf("unexpected redirect location %q", loc)
		}
	})

	t.Run("service failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewMockServiceInterface(ctrl)
		service.EXPECT().BeginAuthorization(gomock.Any(), "").
			Return("", errors.New("state store unavailable"))

		req := httptest.NewRequest(http.MethodGet, "/api/v0/connect/authorize", nil)
		rr := httptest.NewRecorder()

		newTestRouter(service).ServeHTTP(rr, req)

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rr.Code)
		}
	})
}

func TestAPI_Callback(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "successful link",
			target: "/api/v0/connect/callback?state=abc&code=xyz",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CompleteAuthorization(gomock.Any(), "abc", "xyz").
					Return(&Result{TenantID: "tenant-1", InstallationID: "inst-1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing state",
			target:         "/api/v0/connect/callback?code=xyz",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing code",
			target:         "/api/v0/connect/callback?state=abc",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid state",
			target: "/api/v0/connect/callback?state=bad&code=xyz",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CompleteAuthorization(gomock.Any(), "bad", "xyz").
					Return(nil, ErrInvalidOrExpiredState)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "exchange failure",
			target: "/api/v0/connect/callback?state=abc&code=rejected",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CompleteAuthorization(gomock.Any(), "abc", "rejected").
					Return(nil, ErrCodeExchangeFailed)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:   "internal failure",
			target: "/api/v0/connect/callback?state=abc&code=xyz",
			setupMocks: func(service *MockServiceInterface) {
				service.EXPECT().CompleteAuthorization(gomock.Any(), "abc", "xyz").
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			tc.setupMocks(service)

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			newTestRouter(service).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}

			var body map[string]interface{}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if tc.expectedStatus == http.StatusOK {
				if body["status"] != "linked" {
					t.Errorf("expected linked status, got %v", body["status"])
				}
				return
			}

			message, _ := body["message"].(string)
			if message == "" {
				t.Error("expected an error message in the body")
			}
		})
	}
}
